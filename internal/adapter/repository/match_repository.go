package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eslsoft/deepgloss/internal/entity"
	"github.com/eslsoft/deepgloss/internal/repository"
)

type matchRepository struct {
	db *sql.DB
}

// NewMatchRepository constructs a sqlite-backed match repository.
func NewMatchRepository(db *sql.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Add(ctx context.Context, termID, sentenceID int64) error {
	var existing int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM matches WHERE term_id = ? AND sentence_id = ?`, termID, sentenceID).Scan(&existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check match: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO matches (term_id, sentence_id) VALUES (?, ?)`, termID, sentenceID)
	if err != nil && !isUniqueViolation(err) {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *matchRepository) SentencesForTerm(ctx context.Context, termID int64) ([]entity.Sentence, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.domain_id, s.content_en, s.content_cn, s.cn_explanation, s.audio_ref
		FROM sentences s
		JOIN matches m ON s.id = m.sentence_id
		WHERE m.term_id = ?`, termID)
	if err != nil {
		return nil, fmt.Errorf("sentences for term: %w", err)
	}
	defer rows.Close()
	return collectSentences(rows)
}

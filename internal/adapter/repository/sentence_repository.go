package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eslsoft/deepgloss/internal/entity"
	"github.com/eslsoft/deepgloss/internal/repository"
)

type sentenceRepository struct {
	db *sql.DB
}

// NewSentenceRepository constructs a sqlite-backed sentence repository.
func NewSentenceRepository(db *sql.DB) repository.SentenceRepository {
	return &sentenceRepository{db: db}
}

const sentenceColumns = `id, domain_id, content_en, content_cn, cn_explanation, audio_ref`

func (r *sentenceRepository) Add(ctx context.Context, domainID int64, content string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sentences (domain_id, content_en) VALUES (?, ?)`, domainID, content)
	if err == nil {
		return res.LastInsertId()
	}
	if !isUniqueViolation(err) {
		return 0, fmt.Errorf("insert sentence: %w", err)
	}

	// content_en is unique globally, so the existing row may belong to any
	// domain; its id is adopted either way.
	var id int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT id FROM sentences WHERE content_en = ?`, content).Scan(&id); err != nil {
		return 0, fmt.Errorf("lookup existing sentence: %w", err)
	}
	return id, nil
}

func (r *sentenceRepository) GetByID(ctx context.Context, id int64) (*entity.Sentence, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sentenceColumns+` FROM sentences WHERE id = ?`, id)
	sentence, err := scanSentence(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSentenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get sentence: %w", err)
	}
	return sentence, nil
}

func (r *sentenceRepository) FindByContent(ctx context.Context, content string) (*entity.Sentence, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sentenceColumns+` FROM sentences WHERE content_en = ?`, content)
	sentence, err := scanSentence(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find sentence by content: %w", err)
	}
	return sentence, nil
}

func (r *sentenceRepository) SearchByText(ctx context.Context, domainID int64, termText string) ([]entity.Sentence, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sentenceColumns+` FROM sentences WHERE domain_id = ? AND content_en LIKE ?`,
		domainID, "%"+termText+"%")
	if err != nil {
		return nil, fmt.Errorf("search sentences: %w", err)
	}
	defer rows.Close()
	return collectSentences(rows)
}

func (r *sentenceRepository) ListByDomain(ctx context.Context, domainID int64) ([]entity.Sentence, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sentenceColumns+` FROM sentences WHERE domain_id = ?`, domainID)
	if err != nil {
		return nil, fmt.Errorf("list sentences: %w", err)
	}
	defer rows.Close()
	return collectSentences(rows)
}

func (r *sentenceRepository) Update(ctx context.Context, id int64, update entity.SentenceUpdate) error {
	if update.ContentCN != nil {
		if _, err := r.db.ExecContext(ctx, `UPDATE sentences SET content_cn = ? WHERE id = ?`, *update.ContentCN, id); err != nil {
			return fmt.Errorf("update sentence translation: %w", err)
		}
	}
	if update.AudioRef != nil {
		if _, err := r.db.ExecContext(ctx, `UPDATE sentences SET audio_ref = ? WHERE id = ?`, *update.AudioRef, id); err != nil {
			return fmt.Errorf("update sentence audio: %w", err)
		}
	}
	if update.CNExplanation != nil {
		if _, err := r.db.ExecContext(ctx, `UPDATE sentences SET cn_explanation = ? WHERE id = ?`, *update.CNExplanation, id); err != nil {
			return fmt.Errorf("update sentence explanation: %w", err)
		}
	}
	return nil
}

func (r *sentenceRepository) UpsertAudio(ctx context.Context, domainID int64, content, audioRef string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sentences (domain_id, content_en, audio_ref) VALUES (?, ?, ?)
		ON CONFLICT(content_en) DO UPDATE SET audio_ref = excluded.audio_ref`,
		domainID, content, audioRef)
	if err != nil {
		return fmt.Errorf("upsert sentence audio: %w", err)
	}
	return nil
}

func scanSentence(row interface{ Scan(...any) error }) (*entity.Sentence, error) {
	var (
		s             entity.Sentence
		contentCN     sql.NullString
		cnExplanation sql.NullString
		audioRef      sql.NullString
	)
	if err := row.Scan(&s.ID, &s.DomainID, &s.ContentEN, &contentCN, &cnExplanation, &audioRef); err != nil {
		return nil, err
	}
	s.ContentCN = nullableString(contentCN)
	s.CNExplanation = nullableString(cnExplanation)
	s.AudioRef = nullableString(audioRef)
	return &s, nil
}

func collectSentences(rows *sql.Rows) ([]entity.Sentence, error) {
	var sentences []entity.Sentence
	for rows.Next() {
		s, err := scanSentence(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sentence: %w", err)
		}
		sentences = append(sentences, *s)
	}
	return sentences, rows.Err()
}

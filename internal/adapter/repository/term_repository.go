package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eslsoft/deepgloss/internal/entity"
	"github.com/eslsoft/deepgloss/internal/repository"
)

type termRepository struct {
	db *sql.DB
}

// NewTermRepository constructs a sqlite-backed term repository.
func NewTermRepository(db *sql.DB) repository.TermRepository {
	return &termRepository{db: db}
}

const termColumns = `id, domain_id, word, definition, frequency, star_level, audio_ref, image_refs, is_active`

func (r *termRepository) Add(ctx context.Context, term *entity.Term) (int64, error) {
	// Check-then-insert: the unique index on (domain_id, lower(word)) backs
	// this up under concurrent writers.
	var existing int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM terms WHERE domain_id = ? AND LOWER(word) = LOWER(?)`,
		term.DomainID, term.Word,
	).Scan(&existing)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("check term: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO terms (domain_id, word, definition, frequency, star_level, is_active) VALUES (?, ?, ?, ?, ?, 1)`,
		term.DomainID, term.Word, term.Definition, term.Frequency, term.StarLevel,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race; adopt the winner's row.
			if rerr := r.db.QueryRowContext(ctx,
				`SELECT id FROM terms WHERE domain_id = ? AND LOWER(word) = LOWER(?)`,
				term.DomainID, term.Word,
			).Scan(&existing); rerr == nil {
				return existing, nil
			}
		}
		return 0, fmt.Errorf("insert term: %w", err)
	}
	return res.LastInsertId()
}

func (r *termRepository) GetByID(ctx context.Context, id int64) (*entity.Term, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+termColumns+` FROM terms WHERE id = ?`, id)
	term, err := scanTerm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrTermNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}
	return term, nil
}

func (r *termRepository) ListByDomain(ctx context.Context, domainID int64, onlyActive bool) ([]entity.Term, error) {
	query := `SELECT ` + termColumns + ` FROM terms WHERE domain_id = ?`
	if onlyActive {
		query += ` AND is_active = 1`
	}
	rows, err := r.db.QueryContext(ctx, query, domainID)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()

	var terms []entity.Term
	for rows.Next() {
		term, err := scanTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, *term)
	}
	return terms, rows.Err()
}

func (r *termRepository) Update(ctx context.Context, id int64, update entity.TermUpdate) error {
	if update.Definition != nil {
		if _, err := r.db.ExecContext(ctx, `UPDATE terms SET definition = ? WHERE id = ?`, *update.Definition, id); err != nil {
			return fmt.Errorf("update term definition: %w", err)
		}
	}
	if update.AudioRef != nil {
		if _, err := r.db.ExecContext(ctx, `UPDATE terms SET audio_ref = ? WHERE id = ?`, *update.AudioRef, id); err != nil {
			return fmt.Errorf("update term audio: %w", err)
		}
	}
	if update.StarLevel != nil {
		if _, err := r.db.ExecContext(ctx, `UPDATE terms SET star_level = ? WHERE id = ?`, *update.StarLevel, id); err != nil {
			return fmt.Errorf("update term star level: %w", err)
		}
	}
	if update.ImageRefs != nil {
		if _, err := r.db.ExecContext(ctx, `UPDATE terms SET image_refs = ? WHERE id = ?`, entity.JoinImageRefs(update.ImageRefs), id); err != nil {
			return fmt.Errorf("update term images: %w", err)
		}
	}
	return nil
}

func (r *termRepository) BulkUpdate(ctx context.Context, terms []entity.Term) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bulk update: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		`UPDATE terms SET word = ?, definition = ?, star_level = ?, is_active = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("prepare bulk update: %w", err)
	}
	defer stmt.Close()

	for _, term := range terms {
		if _, err := stmt.ExecContext(ctx, term.Word, term.Definition, term.StarLevel, term.Active, term.ID); err != nil {
			return fmt.Errorf("bulk update term %d: %w", term.ID, err)
		}
	}
	return tx.Commit()
}

func scanTerm(row interface{ Scan(...any) error }) (*entity.Term, error) {
	var (
		term      entity.Term
		audioRef  sql.NullString
		imageRefs sql.NullString
	)
	if err := row.Scan(&term.ID, &term.DomainID, &term.Word, &term.Definition,
		&term.Frequency, &term.StarLevel, &audioRef, &imageRefs, &term.Active); err != nil {
		return nil, err
	}
	term.AudioRef = nullableString(audioRef)
	term.ImageRefs = entity.SplitImageRefs(nullableString(imageRefs))
	return &term, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eslsoft/deepgloss/internal/entity"
	"github.com/eslsoft/deepgloss/internal/repository"
)

type domainRepository struct {
	db *sql.DB
}

// NewDomainRepository constructs a sqlite-backed domain repository.
func NewDomainRepository(db *sql.DB) repository.DomainRepository {
	return &domainRepository{db: db}
}

func (r *domainRepository) Ensure(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO domain (name) VALUES (?)`, name)
	if err == nil {
		return res.LastInsertId()
	}
	if !isUniqueViolation(err) {
		return 0, fmt.Errorf("insert domain: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM domain WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("lookup existing domain: %w", err)
	}
	return id, nil
}

func (r *domainRepository) GetByID(ctx context.Context, id int64) (*entity.Domain, error) {
	var d entity.Domain
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM domain WHERE id = ?`, id).Scan(&d.ID, &d.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrDomainNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}
	return &d, nil
}

func (r *domainRepository) List(ctx context.Context) ([]entity.Domain, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM domain ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()

	var domains []entity.Domain
	for rows.Next() {
		var d entity.Domain
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan domain: %w", err)
		}
		domains = append(domains, d)
	}
	return domains, rows.Err()
}

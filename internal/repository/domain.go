package repository

import (
	"context"

	"github.com/eslsoft/deepgloss/internal/entity"
)

// DomainRepository defines data access for domain partitions.
type DomainRepository interface {
	// Ensure returns the id of the named domain, creating it when absent.
	Ensure(ctx context.Context, name string) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Domain, error)
	List(ctx context.Context) ([]entity.Domain, error)
}

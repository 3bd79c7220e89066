package contract

import (
	"context"

	"dkcash/internal/domain/query"
)

type Repository interface {
	// Create inserts the row. A duplicate contract id surfaces as a
	// *DatabaseError naming table and column.
	Create(ctx context.Context, c *Contract) error
	GetByID(ctx context.Context, id int64) (*Contract, error)
	Update(ctx context.Context, id int64, p Patch) (bool, error)
	Find(ctx context.Context, f query.Filters) ([]Contract, error)
	Delete(ctx context.Context, id int64) error
}

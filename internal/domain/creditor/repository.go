package creditor

import (
	"context"

	"dkcash/internal/domain/query"
)

type Repository interface {
	Create(ctx context.Context, c *Creditor) error
	GetByID(ctx context.Context, id int64) (*Creditor, error)
	// Update applies the non-nil fields of p and reports whether any field
	// was supplied at all. Updating an unknown id is an error.
	Update(ctx context.Context, id int64, p Patch) (bool, error)
	// Find filters with AND semantics; results are ordered by id.
	Find(ctx context.Context, f query.Filters) ([]Creditor, error)
	// Delete fails with ErrNotFound when no row matches and with
	// ErrInconsistent when more than one does.
	Delete(ctx context.Context, id int64) error
}

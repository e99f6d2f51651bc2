package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/itemhub/services/item/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
// A Limit <= 0 means "no limit" — used by full-scan callers like Search.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	Save(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// List retrieves items, optionally filtered by exact category match when
	// category is non-empty. Returns the items slice and the total count
	// (ignoring pagination).
	List(ctx context.Context, category string, opts QueryOpts) ([]*models.Item, int, error)

	// FindByName retrieves items with the given exact name.
	FindByName(ctx context.Context, name string) ([]*models.Item, error)

	// Update persists changes to an existing Item.
	Update(ctx context.Context, item *models.Item) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether an item with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

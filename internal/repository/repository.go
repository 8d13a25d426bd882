package repository

import (
	"context"

	"product-api/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data access operations.
// Every method maps to exactly one SQL statement.
type ProductRepository interface {
	// List retrieves every product in the order the store returns them.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns model.ErrProductNotFound if no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create inserts a new product and returns the store-generated ID.
	Create(ctx context.Context, in model.ProductInput) (uuid.UUID, error)

	// Update overwrites every column of the product with the given ID.
	// Returns model.ErrProductNotFound if no row was affected.
	Update(ctx context.Context, id uuid.UUID, in model.ProductInput) error

	// Delete removes the product with the given ID.
	// Returns model.ErrProductNotFound if no row was affected.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)
}

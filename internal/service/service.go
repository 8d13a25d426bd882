package service

import (
	"context"

	"product-api/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves every product.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	// Returns model.ErrProductNotFound when the product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create stores a new product and returns its generated ID.
	Create(ctx context.Context, in model.ProductInput) (uuid.UUID, error)

	// Update replaces every field of an existing product.
	// Returns model.ErrProductNotFound when the product does not exist.
	Update(ctx context.Context, id uuid.UUID, in model.ProductInput) error

	// Delete removes a product.
	// Returns model.ErrProductNotFound when the product does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)
}

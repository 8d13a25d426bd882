package catalog

import (
	"context"

	"product-api/internal/model"

	"github.com/google/uuid"
)

// Loader defines the interface for loading catalogue seed files.
type Loader interface {
	// Load reads a gzipped NDJSON seed file and returns its records in file order.
	Load(ctx context.Context, filePath string) ([]model.ProductInput, error)
}

// ProductStore is the subset of the product service the importer writes through.
type ProductStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, in model.ProductInput) (uuid.UUID, error)
}

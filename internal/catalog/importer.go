package catalog

import (
	"context"
	"fmt"

	"product-api/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Importer seeds an empty product table from catalogue files.
type Importer struct {
	loader Loader
	store  ProductStore
	logger zerolog.Logger
}

// NewImporter creates a new catalogue importer.
func NewImporter(loader Loader, store ProductStore, logger zerolog.Logger) *Importer {
	return &Importer{
		loader: loader,
		store:  store,
		logger: logger.With().Str("component", "catalog-importer").Logger(),
	}
}

// Import loads every file concurrently and then creates the records in file
// order. It does nothing when the table already holds rows. It returns the
// number of products created.
func (im *Importer) Import(ctx context.Context, files []string) (int, error) {
	if len(files) == 0 {
		return 0, nil
	}

	existing, err := im.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing products: %w", err)
	}
	if existing > 0 {
		im.logger.Info().Int64("existing", existing).Msg("product table not empty, skipping seed import")
		return 0, nil
	}

	batches := make([][]model.ProductInput, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			records, err := im.loader.Load(gctx, file)
			if err != nil {
				return fmt.Errorf("failed to load seed file %s: %w", file, err)
			}
			batches[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	created := 0
	for i, batch := range batches {
		for _, in := range batch {
			if _, err := im.store.Create(ctx, in); err != nil {
				return created, fmt.Errorf("failed to import %q from %s: %w", in.Name, files[i], err)
			}
			created++
		}
	}

	im.logger.Info().
		Int("files", len(files)).
		Int("products", created).
		Msg("catalogue seed import completed")

	return created, nil
}

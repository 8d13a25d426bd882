package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"product-api/internal/database"
	"product-api/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `id, name, details, price, stock, image, category`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
	logger         zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
// acquireTimeout bounds how long a call waits for a pooled connection; zero means no bound.
func NewProductRepository(pool *pgxpool.Pool, acquireTimeout time.Duration, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:           pool,
		acquireTimeout: acquireTimeout,
		logger:         logger.With().Str("repository", "product").Logger(),
	}
}

// withConn runs fn on a connection checked out of the pool for the duration of the call.
func (r *productRepository) withConn(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	conn, err := database.Acquire(ctx, r.pool, r.acquireTimeout)
	if err != nil {
		r.logger.Error().Err(err).Dur("acquire_timeout", r.acquireTimeout).Msg("failed to acquire connection")
		return err
	}
	defer conn.Release()

	return fn(conn)
}

// List retrieves every product in the order the store returns them.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`

	products := []model.Product{}
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to query products")
			return fmt.Errorf("failed to query products: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanProduct(rows)
			if err != nil {
				r.logger.Error().Err(err).Msg("failed to scan product row")
				return fmt.Errorf("failed to scan product: %w", err)
			}
			products = append(products, p)
		}

		if err := rows.Err(); err != nil {
			r.logger.Error().Err(err).Msg("error iterating product rows")
			return fmt.Errorf("error iterating products: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p model.Product
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		var err error
		p, err = scanProduct(conn.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
				return model.ErrProductNotFound
			}
			r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product")
			return fmt.Errorf("failed to query product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Create inserts a new product and returns the store-generated ID.
func (r *productRepository) Create(ctx context.Context, in model.ProductInput) (uuid.UUID, error) {
	query := `
		INSERT INTO products (name, details, price, stock, image, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id uuid.UUID
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx, query,
			in.Name, in.Details, in.Price, in.Stock, in.Image, in.Category,
		).Scan(&id)
		if err != nil {
			r.logger.Error().Err(err).Str("name", in.Name).Msg("failed to insert product")
			return fmt.Errorf("failed to insert product: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// Update overwrites every column of the product with the given ID.
func (r *productRepository) Update(ctx context.Context, id uuid.UUID, in model.ProductInput) error {
	query := `
		UPDATE products
		SET name = $2, details = $3, price = $4, stock = $5, image = $6, category = $7
		WHERE id = $1
	`

	return r.withConn(ctx, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, query,
			id, in.Name, in.Details, in.Price, in.Stock, in.Image, in.Category,
		)
		if err != nil {
			r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
			return fmt.Errorf("failed to update product: %w", err)
		}

		if tag.RowsAffected() == 0 {
			r.logger.Debug().Str("product_id", id.String()).Msg("no product to update")
			return model.ErrProductNotFound
		}
		return nil
	})
}

// Delete removes the product with the given ID.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	return r.withConn(ctx, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, query, id)
		if err != nil {
			r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
			return fmt.Errorf("failed to delete product: %w", err)
		}

		if tag.RowsAffected() == 0 {
			r.logger.Debug().Str("product_id", id.String()).Msg("no product to delete")
			return model.ErrProductNotFound
		}
		return nil
	})
}

// Count returns the number of stored products.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.withConn(ctx, func(conn *pgxpool.Conn) error {
		if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
			r.logger.Error().Err(err).Msg("failed to count products")
			return fmt.Errorf("failed to count products: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Details, &p.Price, &p.Stock, &p.Image, &p.Category)
	return p, err
}

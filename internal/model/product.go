package model

import "github.com/google/uuid"

// Product represents a row of the products table.
type Product struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Details  string    `json:"details" db:"details"`
	Price    float64   `json:"price" db:"price"`
	Stock    int32     `json:"stock" db:"stock"`
	Image    string    `json:"image" db:"image"`
	Category string    `json:"category" db:"category"`
}

// ProductInput carries every product column except the store-generated ID.
// It is the payload for create and full-replacement update.
type ProductInput struct {
	Name     string  `json:"name"`
	Details  string  `json:"details"`
	Price    float64 `json:"price"`
	Stock    int32   `json:"stock"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}

// WithID returns the full record for in and the given identifier.
func (in ProductInput) WithID(id uuid.UUID) Product {
	return Product{
		ID:       id,
		Name:     in.Name,
		Details:  in.Details,
		Price:    in.Price,
		Stock:    in.Stock,
		Image:    in.Image,
		Category: in.Category,
	}
}

// Input strips the identifier from p.
func (p Product) Input() ProductInput {
	return ProductInput{
		Name:     p.Name,
		Details:  p.Details,
		Price:    p.Price,
		Stock:    p.Stock,
		Image:    p.Image,
		Category: p.Category,
	}
}

package store

import "database/sql"

// POST /products – Create a new product in the catalog.
// GET /products/list – List the catalog (optionally filtered).
// GET /products/{id} – Fetch one product.
// POST /products/price – Change the price / sale price of a product.

// ErrNotFound is returned for unknown product ids. It is sql.ErrNoRows so
// callers can match either.
var ErrNotFound = sql.ErrNoRows

type Store interface {
	CreateProduct(p ProductRow) (int64, error)
	ListProducts() ([]ProductRow, error)
	GetProduct(id int64) (ProductRow, error)
	UpdatePrice(id int64, price int64, sale sql.NullInt64) error

	Close() error
}

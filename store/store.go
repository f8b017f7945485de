package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

//go:embed migrations.sql
var migrationSQL string

// ProductRow is a products table row.
type ProductRow struct {
	ID          int64
	Name        string
	Description sql.NullString
	Price       int64
	SalePrice   sql.NullInt64
	Images      []string
}

// PostgresStore is a Store backed by Postgres
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	DB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := DB.Ping(); err != nil {
		_ = DB.Close()
		return nil, err
	}
	return &PostgresStore{DB: DB}, nil
}

func (s *PostgresStore) Close() error { return s.DB.Close() }

// Migrate creates the catalog schema if it does not exist yet.
func (s *PostgresStore) Migrate() error {
	if _, err := s.DB.Exec(migrationSQL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// CreateProduct inserts a product and returns its id
func (s *PostgresStore) CreateProduct(p ProductRow) (int64, error) {
	if p.Price < 0 || (p.SalePrice.Valid && p.SalePrice.Int64 < 0) {
		return 0, errors.New("price must be >= 0")
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	var id int64
	err := s.DB.QueryRow(
		`INSERT INTO products (name, description, price, sale_price, images) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		p.Name, p.Description, p.Price, p.SalePrice, pq.Array(images),
	).Scan(&id)
	return id, err
}

func (s *PostgresStore) ListProducts() ([]ProductRow, error) {
	rows, err := s.DB.Query(`SELECT id, name, description, price, sale_price, images FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ProductRow{}
	for rows.Next() {
		var p ProductRow
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.SalePrice, pq.Array(&p.Images)); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetProduct returns sql.ErrNoRows for an unknown id.
func (s *PostgresStore) GetProduct(id int64) (ProductRow, error) {
	var p ProductRow
	err := s.DB.QueryRow(
		`SELECT id, name, description, price, sale_price, images FROM products WHERE id=$1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.SalePrice, pq.Array(&p.Images))
	return p, err
}

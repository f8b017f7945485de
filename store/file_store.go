package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"storefront/price"
)

// fileProduct is one catalog entry as written by hand. Prices are display
// text ("450.000₫"); an empty sale means no sale price.
type fileProduct struct {
	ID          int64    `yaml:"id,omitempty"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Price       string   `yaml:"price"`
	Sale        string   `yaml:"sale,omitempty"`
	Images      []string `yaml:"images,omitempty,flow"`
}

type catalogFile struct {
	Products []fileProduct `yaml:"products"`
}

// FileStore is a Store backed by a YAML catalog file. Mutations are written
// back to the file.
type FileStore struct {
	path   string
	format *price.Formatter

	mu   sync.Mutex
	rows []ProductRow
}

// NewFileStore loads path. A missing file is an empty catalog.
func NewFileStore(path string, f *price.Formatter) (*FileStore, error) {
	if f == nil {
		f = price.NewFormatter(price.DefaultLocale, price.DefaultSymbol)
	}
	s := &FileStore{path: path, format: f}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("parse catalog %s: %w", s.path, err)
	}

	var maxID int64
	for _, fp := range cf.Products {
		if fp.ID > maxID {
			maxID = fp.ID
		}
	}
	seen := make(map[int64]bool, len(cf.Products))
	for _, fp := range cf.Products {
		row := ProductRow{
			ID:     fp.ID,
			Name:   fp.Name,
			Price:  price.Parse(fp.Price),
			Images: fp.Images,
		}
		if row.ID == 0 || seen[row.ID] {
			maxID++
			row.ID = maxID
		}
		seen[row.ID] = true
		if fp.Description != "" {
			row.Description = sql.NullString{String: fp.Description, Valid: true}
		}
		if fp.Sale != "" {
			row.SalePrice = sql.NullInt64{Int64: price.Parse(fp.Sale), Valid: true}
		}
		s.rows = append(s.rows, row)
	}
	return nil
}

func (s *FileStore) save() error {
	cf := catalogFile{Products: make([]fileProduct, 0, len(s.rows))}
	for _, r := range s.rows {
		fp := fileProduct{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description.String,
			Price:       s.format.Format(r.Price),
			Images:      r.Images,
		}
		if r.SalePrice.Valid {
			fp.Sale = s.format.Format(r.SalePrice.Int64)
		}
		cf.Products = append(cf.Products, fp)
	}
	data, err := yaml.Marshal(&cf)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) CreateProduct(p ProductRow) (int64, error) {
	if p.Price < 0 || (p.SalePrice.Valid && p.SalePrice.Int64 < 0) {
		return 0, errors.New("price must be >= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, r := range s.rows {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	p.ID = maxID + 1
	p.Images = append([]string(nil), p.Images...)
	s.rows = append(s.rows, p)
	if err := s.save(); err != nil {
		s.rows = s.rows[:len(s.rows)-1]
		return 0, err
	}
	return p.ID, nil
}

func (s *FileStore) ListProducts() ([]ProductRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ProductRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *FileStore) GetProduct(id int64) (ProductRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return ProductRow{}, sql.ErrNoRows
}

func (s *FileStore) UpdatePrice(id int64, newPrice int64, sale sql.NullInt64) error {
	if newPrice < 0 || (sale.Valid && sale.Int64 < 0) {
		return errors.New("price cannot be negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID != id {
			continue
		}
		prev := s.rows[i]
		s.rows[i].Price = newPrice
		s.rows[i].SalePrice = sale
		if err := s.save(); err != nil {
			s.rows[i] = prev
			return err
		}
		return nil
	}
	return sql.ErrNoRows
}

func (s *FileStore) Close() error { return nil }

package service

import (
	"database/sql"
	"errors"
	"strings"

	"storefront/model"
	"storefront/price"
	"storefront/search"
	"storefront/store"
)

// Validation errors; the HTTP layer maps them to 400.
var (
	ErrNameRequired   = errors.New("name required")
	ErrNegativePrice  = errors.New("price must be >= 0")
	ErrSaleAbovePrice = errors.New("sale price must not exceed price")
)

type Service struct {
	store  store.Store
	format *price.Formatter
}

func NewService(s store.Store, f *price.Formatter) *Service {
	if f == nil {
		f = price.NewFormatter(price.DefaultLocale, price.DefaultSymbol)
	}
	return &Service{store: s, format: f}
}

// IsValidation reports whether err is one of the service's input errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameRequired) || errors.Is(err, ErrNegativePrice) || errors.Is(err, ErrSaleAbovePrice)
}

func validatePrice(price int64, sale *int64) error {
	if price < 0 || (sale != nil && *sale < 0) {
		return ErrNegativePrice
	}
	if sale != nil && *sale > price {
		return ErrSaleAbovePrice
	}
	return nil
}

func (s *Service) CreateProduct(p model.Product) (int64, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return 0, ErrNameRequired
	}
	if err := validatePrice(p.Price, p.SalePrice); err != nil {
		return 0, err
	}
	row := store.ProductRow{
		Name:      name,
		Price:     p.Price,
		SalePrice: nullInt(p.SalePrice),
		Images:    p.Images,
	}
	if p.Description != "" {
		row.Description = sql.NullString{String: p.Description, Valid: true}
	}
	return s.store.CreateProduct(row)
}

// ListProducts returns the catalog, keeping only products whose visible text
// contains query.
func (s *Service) ListProducts(query string) ([]model.Product, error) {
	rows, err := s.store.ListProducts()
	if err != nil {
		return nil, err
	}
	all := make([]model.Product, 0, len(rows))
	for _, r := range rows {
		all = append(all, toProduct(r))
	}
	idx := search.Filter(all, query, s.format)
	if len(idx) == len(all) {
		return all, nil
	}
	out := make([]model.Product, 0, len(idx))
	for _, i := range idx {
		out = append(out, all[i])
	}
	return out, nil
}

func (s *Service) GetProduct(id int64) (model.Product, error) {
	r, err := s.store.GetProduct(id)
	if err != nil {
		return model.Product{}, err
	}
	return toProduct(r), nil
}

func (s *Service) UpdatePrice(id int64, price int64, sale *int64) error {
	if err := validatePrice(price, sale); err != nil {
		return err
	}
	return s.store.UpdatePrice(id, price, nullInt(sale))
}

func toProduct(r store.ProductRow) model.Product {
	p := model.Product{
		ID:     r.ID,
		Name:   r.Name,
		Price:  r.Price,
		Images: r.Images,
	}
	if r.Description.Valid {
		p.Description = r.Description.String
	}
	if r.SalePrice.Valid {
		p.SalePrice = model.Int64(r.SalePrice.Int64)
	}
	return p
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

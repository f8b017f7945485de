package model

import "strings"

// DefaultProductName is shown (and added to the cart) for entries without a name.
const DefaultProductName = "Product"

// Product is one entry of the product listing.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price"`
	SalePrice   *int64   `json:"sale_price,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// DisplayName is the trimmed name, or DefaultProductName when empty.
func (p Product) DisplayName() string {
	if n := strings.TrimSpace(p.Name); n != "" {
		return n
	}
	return DefaultProductName
}

// OnSale reports whether a sale price overrides the original price.
func (p Product) OnSale() bool { return p.SalePrice != nil }

// UnitPrice is the price a cart line is created with: the sale price when
// present, otherwise the original price. It is read once, at add time.
func (p Product) UnitPrice() int64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// Int64 returns a pointer to v, for optional fields such as SalePrice.
func Int64(v int64) *int64 { return &v }

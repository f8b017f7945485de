// Package search implements the product listing text filter.
package search

import (
	"strings"

	"storefront/model"
	"storefront/price"
)

// Match reports whether query occurs in text, ignoring case. The query is
// trimmed first; an empty query matches everything.
func Match(text, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), q)
}

// VisibleText is what a product card shows: name, description and the
// displayed prices.
func VisibleText(p model.Product, f *price.Formatter) string {
	parts := []string{p.DisplayName()}
	if p.Description != "" {
		parts = append(parts, p.Description)
	}
	if p.SalePrice != nil {
		parts = append(parts, f.Format(*p.SalePrice))
	}
	parts = append(parts, f.Format(p.Price))
	return strings.Join(parts, " ")
}

// Filter returns the indexes of products matching query, in listing order.
func Filter(products []model.Product, query string, f *price.Formatter) []int {
	out := make([]int, 0, len(products))
	for i, p := range products {
		if Match(VisibleText(p, f), query) {
			out = append(out, i)
		}
	}
	return out
}

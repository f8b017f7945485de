// Package catalog reads the product listing from a running catalog API.
package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/model"
)

type Client struct {
	Base string
	HTTP *http.Client
}

func NewClient(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		Base: strings.TrimRight(base, "/"),
		HTTP: &http.Client{Timeout: timeout},
	}
}

// ListProducts fetches GET /products/list, filtered by query when non-empty.
func (c *Client) ListProducts(query string) ([]model.Product, error) {
	u := c.Base + "/products/list"
	if query != "" {
		u += "?q=" + url.QueryEscape(query)
	}
	resp, err := c.HTTP.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list products failed: %s", resp.Status)
	}
	var out []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return out, nil
}

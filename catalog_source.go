package main

import (
	"fmt"

	"storefront/catalog"
	"storefront/config"
	"storefront/price"
	"storefront/service"
	"storefront/store"
	"storefront/ui"
)

// openStore opens the product store named by cfg.Catalog.Source. Only the
// file and postgres sources are backed by a store.
func openStore(c *config.Config, f *price.Formatter) (store.Store, error) {
	switch c.Catalog.Source {
	case config.SourceFile:
		return store.NewFileStore(c.Catalog.Path, f)
	case config.SourcePostgres:
		pg, err := store.NewPostgresStore(c.Database.DSN)
		if err != nil {
			return nil, err
		}
		if c.Database.Migrate {
			if err := pg.Migrate(); err != nil {
				pg.Close()
				return nil, err
			}
		}
		return pg, nil
	}
	return nil, fmt.Errorf("catalog source %q has no local store", c.Catalog.Source)
}

// openCatalog returns what the storefront reads products from, plus a
// closer for any underlying store.
func openCatalog(c *config.Config, f *price.Formatter) (ui.Catalog, func() error, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	if c.Catalog.Source == config.SourceHTTP {
		return catalog.NewClient(c.Catalog.URL, c.GetCatalogTimeout()), func() error { return nil }, nil
	}
	st, err := openStore(c, f)
	if err != nil {
		return nil, nil, err
	}
	return service.NewService(st, f), st.Close, nil
}

func formatter(c *config.Config) *price.Formatter {
	return price.NewFormatter(c.Shop.Locale, c.Shop.CurrencySymbol)
}

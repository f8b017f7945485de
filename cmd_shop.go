package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/config"
	"storefront/logging"
	"storefront/model"
	"storefront/price"
	"storefront/ui"
)

var (
	shopQuery      string
	catalogPath    string
	catalogURL     string
	productsFilter string
)

// applyCatalogFlags lets --catalog and --catalog-url override the source.
func applyCatalogFlags(c *config.Config) {
	if catalogPath != "" {
		c.Catalog.Source = config.SourceFile
		c.Catalog.Path = catalogPath
	}
	if catalogURL != "" {
		c.Catalog.Source = config.SourceHTTP
		c.Catalog.URL = catalogURL
	}
}

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the catalog and fill a cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyCatalogFlags(cfg)
		log, err := logging.NewInteractive(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = log

		f := formatter(cfg)
		src, closeFn, err := openCatalog(cfg, f)
		if err != nil {
			return err
		}
		defer closeFn()

		m := ui.New(src, ui.Options{
			Title:            cfg.Shop.Title,
			Query:            shopQuery,
			HeroImages:       cfg.Shop.HeroImages,
			AutoplayInterval: cfg.GetAutoplayInterval(),
			Formatter:        f,
			Logger:           logger,
		})
		defer m.Close()

		logger.Info("storefront started", zap.String("source", cfg.Catalog.Source))
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("storefront: %w", err)
		}
		return nil
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Print the product listing",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyCatalogFlags(cfg)
		f := formatter(cfg)
		src, closeFn, err := openCatalog(cfg, f)
		if err != nil {
			return err
		}
		defer closeFn()

		ps, err := src.ListProducts(productsFilter)
		if err != nil {
			return err
		}
		logger.Debug("listed products", zap.Int("count", len(ps)))
		printProducts(cmd.OutOrStdout(), ps, f)
		return nil
	},
}

func printProducts(w io.Writer, ps []model.Product, f *price.Formatter) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSALE\tIMAGES")
	for _, p := range ps {
		sale := "-"
		if p.OnSale() {
			sale = f.Format(*p.SalePrice)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.DisplayName(), f.Format(p.Price), sale, strings.Join(p.Images, ","))
	}
	tw.Flush()
}

func init() {
	for _, c := range []*cobra.Command{shopCmd, productsCmd} {
		c.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (overrides catalog.path)")
		c.Flags().StringVar(&catalogURL, "catalog-url", "", "Catalog API base URL (overrides catalog.url)")
	}
	shopCmd.Flags().StringVarP(&shopQuery, "query", "q", "", "Pre-fill the search filter")
	productsCmd.Flags().StringVarP(&productsFilter, "query", "q", "", "Only list matching products")
}

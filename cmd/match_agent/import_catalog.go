package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/picture-match/internal/catalog"
	"github.com/jonathan/picture-match/internal/db"
	"github.com/spf13/cobra"
)

var importCatalogCmd = &cobra.Command{
	Use:   "import-catalog",
	Short: "Import a catalog JSON file into PostgreSQL",
	Long:  "Validates a catalog file, applies the database schema and upserts every portal, layout and item in one transaction.",
	RunE:  runImportCatalog,
}

var (
	importCatalogInput       string
	importCatalogDatabaseURL string
)

func init() {
	importCatalogCmd.Flags().StringVarP(&importCatalogInput, "in", "i", "", "Path to catalog JSON file (required)")
	importCatalogCmd.Flags().StringVar(&importCatalogDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	if err := importCatalogCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(importCatalogCmd)
}

func runImportCatalog(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := importCatalogDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	c, err := catalog.LoadFile(importCatalogInput)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}

	stats, err := database.ImportCatalog(ctx, c)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Imported %d portal(s), %d layout(s) with %d slot(s), %d item(s)\n",
		stats.Portals, stats.Layouts, stats.Slots, stats.Items)
	return nil
}

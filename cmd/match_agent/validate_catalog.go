package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/picture-match/internal/catalog"
	"github.com/jonathan/picture-match/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog",
	Short: "Validate a catalog JSON file",
	Long:  "Validates a catalog file against the catalog schema and checks IDs, codes, layout references and cell ranges.",
	RunE:  runValidateCatalog,
}

var validateCatalogInput string

func init() {
	validateCatalogCmd.Flags().StringVarP(&validateCatalogInput, "in", "i", "", "Path to catalog JSON file (required)")

	if err := validateCatalogCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCatalogCmd)
}

func runValidateCatalog(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(validateCatalogInput); os.IsNotExist(err) {
		return fmt.Errorf("catalog file not found: %s", validateCatalogInput)
	}

	c, err := catalog.LoadFile(validateCatalogInput)
	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(os.Stdout, "  %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("catalog has %d problem(s)", len(validationErr.Errors))
		}
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Catalog is valid: %d portal(s), %d layout(s), %d item(s)\n",
		len(c.Portals), len(c.Layouts), len(c.Items))
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/picture-match/internal/config"
	"github.com/jonathan/picture-match/internal/observability"
	"github.com/jonathan/picture-match/internal/session"
	"github.com/jonathan/picture-match/internal/types"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one session for a portal",
	Long: `Generates a session for a portal and writes it as JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGenerate,
}

var (
	generateConfigPath  string
	generateCatalog     string
	generateDatabaseURL string
	generatePortal      string
	generateDevice      string
	generateMode        string
	generateVariant     string
	generateSeed        int64
	generateOutput      string
	generateVerbose     bool
	generateColor       bool
)

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVarP(&generateCatalog, "catalog", "c", "", "Path to catalog JSON file")
	generateCmd.Flags().StringVar(&generateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	generateCmd.Flags().StringVarP(&generatePortal, "portal", "p", "", "Portal ID (required)")
	generateCmd.Flags().StringVar(&generateDevice, "device", "desktop", "Device class: desktop or mobile")
	generateCmd.Flags().StringVar(&generateMode, "mode", "simple", "Game mode: simple or advanced")
	generateCmd.Flags().StringVar(&generateVariant, "variant", "", "Audience variant: toddler, kids or expert")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (0 means random)")
	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Path to output Session JSON file (defaults to stdout)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print the resolved difficulty and the session layout")
	generateCmd.Flags().BoolVar(&generateColor, "color", true, "Colour verbose output")

	if err := generateCmd.MarkFlagRequired("portal"); err != nil {
		panic(fmt.Sprintf("failed to mark portal flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(generateConfigPath, func(c *config.Config) {
		if cmd.Flags().Changed("catalog") {
			c.Catalog = generateCatalog
		}
		if cmd.Flags().Changed("db-url") {
			c.DatabaseURL = generateDatabaseURL
		}
		if cmd.Flags().Changed("seed") {
			c.Seed = generateSeed
		}
		if cmd.Flags().Changed("verbose") {
			c.Verbose = generateVerbose
		}
	})
	if err != nil {
		return err
	}

	req := &types.GenerateRequest{
		PortalID: generatePortal,
		Device:   generateDevice,
		Mode:     generateMode,
		Variant:  generateVariant,
		Seed:     cfg.Seed,
	}

	res, err := generateSession(context.Background(), cfg, req)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		p := observability.NewPrinter(os.Stderr).WithColor(generateColor)
		p.PrintTotals(cfg.Totals())
		p.PrintDifficulty(req.PortalID, types.Variant(req.Variant), types.GameMode(generateMode), res.Difficulty, res.TrayTotal)
		p.PrintSession(res.Session, res.Allocation.Assignments)
	}

	// Validate output against schema (non-fatal)
	if err := session.Validate(res.Session); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Generated session does not validate against schema: %v\n", err)
	}

	return writeJSON(generateOutput, res.Session)
}

// generateSession opens the configured store and generates one session.
func generateSession(ctx context.Context, cfg config.Config, req *types.GenerateRequest) (*session.Result, error) {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	res, err := session.NewGenerator(store, cfg.Totals()).Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session: %w", err)
	}
	return res, nil
}

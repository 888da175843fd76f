package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/picture-match/internal/catalog"
	"github.com/jonathan/picture-match/internal/config"
	"github.com/jonathan/picture-match/internal/db"
)

// resolveConfig layers configuration: flag overrides win over the config
// file, which wins over the environment, which wins over the defaults.
func resolveConfig(path string, overrides func(*config.Config)) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if overrides != nil {
		overrides(&cfg)
	}

	env := config.FromEnv()
	if cfg.Catalog != "" {
		// A catalog chosen by flag or file outranks DATABASE_URL from the environment.
		env.DatabaseURL = ""
	}
	cfg = cfg.MergeWithDefaults(env)
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openStore returns the catalog store named by cfg: PostgreSQL when a
// database URL is set, otherwise the catalog file. The returned close
// function is never nil.
func openStore(ctx context.Context, cfg config.Config) (catalog.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		return database, database.Close, nil
	}

	if cfg.Catalog == "" {
		return nil, nil, fmt.Errorf("either --catalog or DATABASE_URL must be provided (via flag, config or environment)")
	}
	store, err := catalog.OpenFile(cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}

// writeJSON writes v as indented JSON to path, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

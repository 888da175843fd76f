package main

import (
	"context"
	"fmt"

	"github.com/jonathan/picture-match/internal/config"
	"github.com/jonathan/picture-match/internal/server"
	"github.com/jonathan/picture-match/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath  string
	servePort        int
	serveCatalog     string
	serveDatabaseURL string
	serveSeed        int64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the catalog, generates sessions and plays rounds over a websocket.

The catalog comes from PostgreSQL when DATABASE_URL (or --db-url) is set, otherwise from --catalog.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveCatalog, "catalog", "c", "", "Path to catalog JSON file")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", 0, "Fixed random seed for every session (0 means random)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath, func(c *config.Config) {
		if cmd.Flags().Changed("port") {
			c.Port = servePort
		}
		if cmd.Flags().Changed("catalog") {
			c.Catalog = serveCatalog
		}
		if cmd.Flags().Changed("db-url") {
			c.DatabaseURL = serveDatabaseURL
		}
		if cmd.Flags().Changed("seed") {
			c.Seed = serveSeed
		}
	})
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(context.Background(), cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		Store:     store,
		Totals:    cfg.Totals(),
		Seed:      cfg.Seed,
		RateLimit: ratelimit.LoadConfig(),
		OnClose:   closeStore,
	})
	if err != nil {
		closeStore()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

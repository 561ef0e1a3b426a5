package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/aspire/contact"
	"github.com/lixenwraith/aspire/server"
)

var (
	serveAddr string
	serveDB   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the contact submission endpoint",
	Long: fmt.Sprintf(`Serve accepts contact submissions on POST %s (alias %s)
and appends each to the contact_submissions table.`, server.PathSubmit, server.PathSubmitAlias),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "SQLite database path (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvCfg := cfg.Server
	if serveAddr != "" {
		srvCfg.Address = serveAddr
	}
	dbPath := cfg.Database.Path
	if serveDB != "" {
		dbPath = serveDB
	}

	store, err := contact.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	// Fail fast on an unusable database; the handler still ensures per request
	if err := store.EnsureTable(ctx); err != nil {
		return err
	}
	logger.Info("Database ready", zap.String("path", dbPath))

	return server.New(&srvCfg, store, logger).Run(ctx)
}

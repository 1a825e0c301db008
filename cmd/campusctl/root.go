package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/campus/internal/campus/app"
	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/sqlite"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

var (
	databaseFile string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "campusctl",
	Short: "Administer the campus service",
	Long: `campusctl works directly on the campus database, using the same
environment (and .env file) as the server.

Available commands:
  migrate    - apply schema migrations
  user       - create accounts
  events     - persist event statuses
  reminders  - email reminders for upcoming events
  results    - import result sheets`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseFile, "db", "", "database file (default: $DATABASE_FILE or campus.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(migrateCmd, userCmd, eventsCmd, remindersCmd, resultsCmd)
}

// env is what every command needs: config, logger, catalog and an open store.
type env struct {
	cfg     app.Config
	logger  *slog.Logger
	catalog *catalog.Catalog
	store   *sqlite.Store
}

func openEnv(cmd *cobra.Command) (*env, error) {
	cfg := app.LoadConfig()
	if databaseFile != "" {
		cfg.DatabaseFile = databaseFile
	}
	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := slogx.New(slogx.Config{
		Service: "campusctl",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   level,
		Format:  "text",
		Output:  os.Stderr,
	})
	cryptox.SetPepperPath(cfg.PepperFile)

	cat, err := app.LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	st, err := app.OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	cmd.SetContext(slogx.WithContext(cmd.Context(), logger))
	return &env{cfg: cfg, logger: logger, catalog: cat, store: st}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Error("error closing database", "error", err)
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// plainError reduces a validation failure to its message.
func plainError(err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return errors.New(ve.Message)
	}
	return err
}

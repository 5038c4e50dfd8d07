// ABOUTME: Root Cobra command for the ecca care tracker CLI.
// ABOUTME: Opens config, logger, database, and keystore in PersistentPreRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eccahealth/ecca/internal/auth"
	"github.com/eccahealth/ecca/internal/config"
	"github.com/eccahealth/ecca/internal/logging"
	"github.com/eccahealth/ecca/internal/securestore"
	"github.com/eccahealth/ecca/internal/settings"
	"github.com/eccahealth/ecca/internal/storage"
)

var (
	cfg     *config.Config
	logger  *zap.Logger
	db      *storage.DB
	keys    securestore.Store
	authSvc *auth.Service
	setSvc  *settings.Service
)

var rootCmd = &cobra.Command{
	Use:   "ecca",
	Short: "Elderly-care companion tracker",
	Long: `ECCA is a local tracker for elderly-care self-tracking: health
measurements, fitness activities, medications, and calendar events.

QUICK START:

  $ ecca register --name "Mary" --email mary@example.com   # First run
  $ ecca login --email mary@example.com                    # Later sessions
  $ ecca health add blood_pressure 120/80                  # Log a reading
  $ ecca meds add Lisinopril --dosage 10mg --frequency "Once daily"
  $ ecca meds taken 1                                      # Mark as taken
  $ ecca calendar add 2026-09-15 "Dr. Smith" --time "2:30 PM"
  $ ecca calendar upcoming                                 # What's next

DATA STORAGE:

  Everything lives under ~/.local/share/ecca: the SQLite database, the
  secure keystore, and the log file. Nothing leaves the device.

MCP INTEGRATION:

  Run 'ecca mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger = logging.New(cfg.GetLogFile())

		db, err = storage.Open(cfg.DBPath(), logger)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}

		keys, err = securestore.Open(cfg.KeysDir())
		if err != nil {
			_ = db.Close()
			return fmt.Errorf("open keystore: %w", err)
		}

		if _, err := securestore.EnsureDeviceID(keys); err != nil {
			logger.Warn("device id", zap.Error(err))
		}

		authSvc = auth.NewService(db, keys, logger, cfg.GetBcryptCost())
		setSvc = settings.NewService(keys, logger)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if keys != nil {
			_ = keys.Close()
		}
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireUser returns the active session's user id or an error telling the
// user to log in.
func requireUser() (int64, error) {
	id, ok := authSvc.CurrentUserID()
	if !ok {
		return 0, fmt.Errorf("not logged in: run 'ecca login' or 'ecca register' first")
	}
	return id, nil
}

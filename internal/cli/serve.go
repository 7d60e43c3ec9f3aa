package cli

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/archivist-tools/sqlite-archiver/internal/backup"
	"github.com/archivist-tools/sqlite-archiver/internal/config"
	"github.com/archivist-tools/sqlite-archiver/internal/logging"
	"github.com/archivist-tools/sqlite-archiver/internal/mailbox"
	"github.com/archivist-tools/sqlite-archiver/internal/retention"
	"github.com/archivist-tools/sqlite-archiver/internal/scheduler"
	"github.com/archivist-tools/sqlite-archiver/internal/snapshot"
	"github.com/archivist-tools/sqlite-archiver/internal/watcher"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run scheduled and change-triggered backups until interrupted",
	Long: `Run as a daemon: back up the configured database on a cron schedule,
when the database file changes, or both. Retention is applied after every
successful backup. Stops on SIGINT/SIGTERM.`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(serveConfigPath)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveConfigPath, "config", "config.yaml", "path to the serve configuration file")
}

func runServe(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	strat, err := snapshot.ParseStrategy(cfg.Backup.Strategy)
	if err != nil {
		return err
	}

	dbPath, err := filepath.Abs(cfg.Database.Path)
	if err != nil {
		return err
	}
	backupDir, err := filepath.Abs(cfg.Backup.Dir)
	if err != nil {
		return err
	}

	mgr, err := backup.NewManager(backup.Config{
		DatabasePath: dbPath,
		BackupDir:    backupDir,
	}, nil, nil, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mb := mailbox.New[scheduler.Job]()

	sched := scheduler.New(mgr, strat, retention.Policy{
		MaxAgeDays: cfg.Schedule.Retention.MaxAgeDays,
		MaxCount:   cfg.Schedule.Retention.MaxCount,
	}, mb, log)

	if cfg.Schedule.Cron != "" {
		if err := sched.StartCron(cfg.Schedule.Cron); err != nil {
			return err
		}
	}

	if cfg.Watch.Enabled {
		w := watcher.New(dbPath, cfg.Watch, log, mb)
		go func() {
			if err := w.Start(ctx); err != nil {
				log.Error("watcher stopped", "error", err)
			}
		}()
	}

	log.Info("serving", "database", dbPath, "backup_dir", backupDir)
	sched.Run(ctx)
	log.Info("shutdown complete")
	return nil
}

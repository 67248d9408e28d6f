package main

import (
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"launch-dashboard-service/internal/adapters/repositories"
	"launch-dashboard-service/internal/adapters/sources"
	"launch-dashboard-service/internal/config"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/db"
	"launch-dashboard-service/internal/platform/obs"
)

type options struct {
	target string
	dsn    string
	csv    string
	logger *zap.Logger
}

func main() {
	if _, err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "dbtool",
		Short:         "Manage the SQL copy of the launch records dataset",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := obs.NewLogger(config.Get("LOG_LEVEL", "info"))
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.target, "target", config.Get("DBTOOL_TARGET", config.SourceSQLite),
		"SQL target: sqlite or postgres")
	root.PersistentFlags().StringVar(&opts.dsn, "dsn", "",
		"connection string (default SQLITE_PATH or DATABASE_URL by target)")

	root.AddCommand(newMigrateCmd(opts), newImportCmd(opts))
	return root
}

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := opts.open()
			if err != nil {
				return err
			}
			defer conn.Close()

			opts.logger.Info("initializing database schema", zap.String("target", opts.target))
			if err := repositories.InitSchema(conn); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			opts.logger.Info("schema ready")
			return nil
		},
	}
}

func newImportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a launch records CSV into the launches table, replacing prior rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			records, err := sources.NewCSVFileSource(opts.csv).LoadLaunches(ctx)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			ds, err := domain.NewDataset(records)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			conn, err := opts.open()
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := repositories.InitSchema(conn); err != nil {
				return fmt.Errorf("import: %w", err)
			}
			if err := repositories.ReplaceLaunches(ctx, conn, ds.Records()); err != nil {
				return fmt.Errorf("import: %w", err)
			}

			opts.logger.Info("import complete",
				zap.String("csv", opts.csv),
				zap.String("target", opts.target),
				zap.Int("records", ds.Len()),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.csv, "csv", config.Get("DATASET_PATH", "data/spacex_launch_dash.csv"),
		"path of the launch records CSV")
	return cmd
}

// open resolves the target driver and connection string, then connects.
func (o *options) open() (*sqlx.DB, error) {
	var driver, dsn string
	switch o.target {
	case config.SourceSQLite:
		driver, dsn = db.DriverSQLite, config.Get("SQLITE_PATH", "data/launches.db")
	case config.SourcePostgres:
		driver, dsn = db.DriverPostgres, config.Get("DATABASE_URL", "")
	default:
		return nil, fmt.Errorf("unknown target %q (want sqlite or postgres)", o.target)
	}
	if o.dsn != "" {
		dsn = o.dsn
	}
	if dsn == "" {
		return nil, fmt.Errorf("no connection string for target %q: set --dsn", o.target)
	}

	return db.Open(driver, dsn)
}

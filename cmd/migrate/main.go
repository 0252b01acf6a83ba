// Package main implements the database migration utility for the moments
// broadcast service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/config"
	"github.com/popeskul/moments-broadcast/internal/infrastructure/migrate"
)

type options struct {
	configPath     string
	databaseURL    string
	migrationsPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply database migrations for the broadcast service",
		Long:          "Applies the SQL migrations under migrations/ to the database configured in config.yaml, DATABASE_URL or --database-url.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "postgres URL, overrides the config file")
	cmd.PersistentFlags().StringVar(&opts.migrationsPath, "path", "", "migrations directory, overrides the config file")

	cmd.AddCommand(newUpCmd(opts))
	cmd.AddCommand(newDownCmd(opts))
	cmd.AddCommand(newVersionCmd(opts))
	return cmd
}

func newUpCmd(opts *options) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 0 {
				return fmt.Errorf("--steps must not be negative")
			}
			runner, err := opts.runner()
			if err != nil {
				return err
			}
			if steps == 0 {
				err = runner.Up()
			} else {
				err = runner.Steps(steps)
			}
			if err != nil {
				return err
			}
			return printVersion(cmd, runner, "Migrated to")
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "number of migrations to apply, 0 applies all")
	return cmd
}

func newDownCmd(opts *options) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive")
			}
			runner, err := opts.runner()
			if err != nil {
				return err
			}
			if err := runner.Steps(-steps); err != nil {
				return err
			}
			return printVersion(cmd, runner, "Rolled back to")
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := opts.runner()
			if err != nil {
				return err
			}
			return printVersion(cmd, runner, "Current version:")
		},
	}
}

func printVersion(cmd *cobra.Command, runner *migrate.Runner, prefix string) error {
	version, dirty, err := runner.Version()
	if err != nil {
		return err
	}
	if dirty {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d (dirty)\n", prefix, version)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", prefix, version)
	return nil
}

// runner resolves the database URL and migrations path. Flags win over the
// config file, which is only read when something is still missing.
func (o *options) runner() (*migrate.Runner, error) {
	databaseURL := o.databaseURL
	migrationsPath := o.migrationsPath

	if databaseURL == "" || migrationsPath == "" {
		cfg, err := config.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		if databaseURL == "" {
			databaseURL = cfg.Database.GetURL()
		}
		if migrationsPath == "" {
			migrationsPath = cfg.Database.MigrationsPath
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: migrationsPath,
	}, logger), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

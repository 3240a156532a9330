// Command migrate applies the embedded SQL migrations to PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-insights/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var max int
	root.PersistentFlags().IntVar(&max, "max", 0, "Maximum number of migrations to apply (0 means all)")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.Context(), migrate.Up, max)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back migrations (one unless --max is set)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				n := max
				if n == 0 {
					n = 1
				}
				return run(cmd.Context(), migrate.Down, n)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List embedded migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				migrations, err := database.Migrations().FindMigrations()
				if err != nil {
					return fmt.Errorf("failed to read migrations: %w", err)
				}
				for _, m := range migrations {
					fmt.Fprintln(cmd.OutOrStdout(), m.Id)
				}
				return nil
			},
		},
	)
	return root
}

func run(ctx context.Context, direction migrate.MigrationDirection, max int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.NewPostgresDB(ctx, cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	defer sqlDB.Close()

	log.Println("🔄 Applying migrations...")
	n, err := database.Migrate(db, direction, max)
	if err != nil {
		return err
	}

	log.Printf("✅ Successfully applied %d migration(s)!\n", n)
	return nil
}

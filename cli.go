package main

import (
	"fmt"
	"log/slog"
	"os"
	"tierra-media/catalog"
	"tierra-media/config"
	"tierra-media/config/setup"
	"tierra-media/database"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the inhabitant catalog into an empty database",
	Long: `Load the inhabitant catalog into the database at DB_PATH.

Nothing is written when the database already holds inhabitants.
Use --file to load a YAML catalog other than the built-in one.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of inhabitants",
	Args:  cobra.NoArgs,
	RunE:  runCount,
}

var (
	seedFile  string
	countRace string
)

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML catalog to load instead of the built-in one")
	countCmd.Flags().StringVarP(&countRace, "race", "r", "", "count only inhabitants of this race")

	rootCmd.AddCommand(seedCmd, countCmd)
}

// openRepository loads config and opens a migrated database for one-shot
// commands. Logging goes to stderr so stdout stays scriptable.
func openRepository() (*database.DB, *database.Repository, error) {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: getLogLevel(cfg.LogLevel)}))

	db, err := setup.InitDatabase(cfg.DBPath, logger)
	if err != nil {
		return nil, nil, err
	}
	return db, database.NewRepository(db), nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	entries, err := catalog.Default()
	if seedFile != "" {
		data, readErr := os.ReadFile(seedFile)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", seedFile, readErr)
		}
		entries, err = catalog.Parse(data)
	}
	if err != nil {
		return err
	}

	db, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := catalog.Seed(repo, entries)
	if err != nil {
		return err
	}

	if n == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Database already populated, nothing seeded")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d inhabitants\n", n)
	return nil
}

func runCount(cmd *cobra.Command, args []string) error {
	db, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	var n int
	if countRace != "" {
		n, err = repo.CountInhabitantsByRace(countRace)
	} else {
		n, err = repo.CountInhabitants()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	mongodb "github.com/songcontest/contest-api/internal/infrastructure/db/mongo"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the MongoDB indexes the API relies on",
	Long: `Creates the unique indexes on users.email, countries.name and
competitions.year, plus the lookup indexes used by the vote cascades.
Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := mongodb.EnsureIndexes(cmd.Context(), a.db); err != nil {
			return err
		}
		a.log.Info().Msg("indexes ensured")
		return nil
	},
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/songcontest/contest-api/internal/core/service"
	mongodb "github.com/songcontest/contest-api/internal/infrastructure/db/mongo"
	"github.com/songcontest/contest-api/internal/seed"
	"github.com/songcontest/contest-api/pkg/logger"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import countries, competitions and participants from a YAML manifest",
	Long: `Reads a manifest with top-level countries, competitions and participants
lists and creates every record that does not exist yet.`,
	Example: "  contest-api seed --file data/catalog.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedFile)
		if err != nil {
			return fmt.Errorf("open manifest: %w", err)
		}
		defer f.Close()

		manifest, err := seed.Parse(f)
		if err != nil {
			return err
		}

		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		countryRepo := mongodb.NewCountryRepository(a.db)
		participantRepo := mongodb.NewParticipantRepository(a.db)
		tx := mongodb.NewTransactor(a.client, a.cfg.Mongo.Transactions)
		votes := service.NewVoteService(
			mongodb.NewUserRepository(a.db), participantRepo, tx, nil, nil, logger.Component("votes"),
		)

		loader := seed.NewLoader(
			service.NewCountryService(countryRepo, logger.Component("countries")),
			service.NewCompetitionService(mongodb.NewCompetitionRepository(a.db), countryRepo, logger.Component("competitions")),
			service.NewParticipantService(participantRepo, countryRepo, votes, tx, logger.Component("participants")),
			logger.Component("seed"),
		)

		res, err := loader.Apply(cmd.Context(), manifest)
		if err != nil {
			return err
		}
		fmt.Printf("Seed complete: %d created, %d skipped\n", res.Created, res.Skipped)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "path to the YAML manifest")
	_ = seedCmd.MarkFlagRequired("file")
}

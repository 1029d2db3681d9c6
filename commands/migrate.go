package commands

import (
	"log"

	"github.com/spf13/cobra"

	"hotel-ops-backend/config"
	"hotel-ops-backend/services"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.ConnectDatabase(settings()); err != nil {
			return err
		}
		log.Println("✅ migrations applied")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default admin employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings()
		db, err := config.ConnectDatabase(s)
		if err != nil {
			return err
		}
		return config.Seed(db, s)
	},
}

var turnDownCmd = &cobra.Command{
	Use:   "turn-down",
	Short: "Mark occupied rooms as not clean once, outside the schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDatabase(settings())
		if err != nil {
			return err
		}
		_, err = services.NewHousekeepingService(db).RunTurnDown(cmd.Context())
		return err
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, turnDownCmd)
}

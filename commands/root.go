package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hotel-ops-backend/config"
)

var (
	// Global flags
	port     string
	dbDriver string
)

var rootCmd = &cobra.Command{
	Use:   "hotel-ops",
	Short: "Hotel and restaurant operations REST backend",
	Long: `hotel-ops serves the REST API for employees, rooms, guests, menu, orders and books.

Without a subcommand it runs the server.`,
	RunE: runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&port, "port", "", "HTTP port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&dbDriver, "db-driver", "", "mysql, postgres or sqlite (overrides DB_DRIVER)")
}

// settings loads .env and the environment, then applies flag overrides.
func settings() config.Settings {
	config.LoadEnv()
	s := config.LoadSettings()
	if port != "" {
		s.Port = port
	}
	if dbDriver != "" {
		s.DBDriver = dbDriver
	}
	return s
}

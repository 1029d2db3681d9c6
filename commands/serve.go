package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"hotel-ops-backend/config"
	"hotel-ops-backend/routes"
	"hotel-ops-backend/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	s := settings()
	if s.TokenKey == "" {
		return errors.New("TOKEN_KEY environment variable is not set; cannot sign access tokens")
	}
	if s.GinMode != "" {
		gin.SetMode(s.GinMode)
	}

	db, err := config.ConnectDatabase(s)
	if err != nil {
		return err
	}
	log.Println("✅ Database connection established and migrations applied.")
	if err := config.Seed(db, s); err != nil {
		log.Printf("⚠️  seeding failed: %v", err)
	}

	housekeeping := services.NewHousekeepingService(db)
	if err := housekeeping.Start(s.HousekeepingCron); err != nil {
		return err
	}
	defer housekeeping.Stop()

	addr := ":" + s.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           routes.NewApp(db, s),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("✅ Server stopped gracefully")
	return nil
}

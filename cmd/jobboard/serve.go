package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/accessibilityjobs/jobboard/internal/config"
	"github.com/accessibilityjobs/jobboard/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the job board server",
	Long:  `Start an HTTP server that exposes the submission API, the read API, and the job detail pages.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	logger := config.NewLogger(cfg.AppEnv)

	srv, err := server.New(context.Background(), server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		GeoIPDBPath: cfg.GeoIPDBPath,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduguide/advisor/internal/catalog"
	"github.com/eduguide/advisor/internal/config"
	"github.com/eduguide/advisor/internal/engine"
	"github.com/eduguide/advisor/internal/enrich"
	"github.com/eduguide/advisor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the advising and catalog endpoints.`,
	RunE:  runServe,
}

var (
	servePort     int
	serveConfig   string
	serveResearch bool
	serveVerbose  bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVar(&serveResearch, "research", false, "Fetch live notes about candidate schools")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed request logs")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfig)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveResearch {
		cfg.Research = true
	}
	if serveVerbose {
		cfg.Verbose = true
	}
	merged := cfg.MergeWithDefaults(config.Config{})

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load college catalog: %w", err)
	}

	ctx := context.Background()
	client, err := buildClient(ctx, &merged)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	advisor := enrich.New(engine.New(cat), client, enrich.Options{
		Research:      merged.Research,
		ResearchLimit: merged.ResearchPerReq,
		Verbose:       merged.Verbose,
	})

	srv, err := server.New(server.Config{
		Port:    merged.Port,
		Advisor: advisor,
		Catalog: cat,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

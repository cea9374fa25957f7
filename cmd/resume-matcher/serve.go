package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/analyzer"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for uploading documents and running match analyses.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log := logging.Setup(cfg.LogLevel, cfg.LogPretty)

	ont, err := skills.Default()
	if err != nil {
		return fmt.Errorf("failed to load skill ontology: %w", err)
	}

	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		st = pg
	} else {
		st = store.NewMemory()
	}
	defer st.Close()

	log.Info().Str("storage", st.Kind()).Int("port", cfg.Port).Msg("starting server")

	svc := analyzer.New(st, ont, log)
	srv := server.New(server.Config{Port: cfg.Port}, svc, log)
	return srv.Start()
}

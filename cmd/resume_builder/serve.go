package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	serveConfigFile string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume builder server",
	Long: `Start an HTTP server that hosts the builder pages and the JSON API.

Drafts are enabled when DATABASE_URL (or database_url in the config file) is set.
PDF export uses a local Chrome or Chromium; set CHROME_PATH to pick the binary.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file (optional)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

// newRenderer builds the Chrome PDF renderer described by cfg.
func newRenderer(cfg config.Config) *export.ChromeRenderer {
	return &export.ChromeRenderer{
		ExecPath: cfg.ChromePath,
		Paper:    export.PaperByName(cfg.PDFPaper),
		Timeout:  cfg.PDFTimeout.Std(),
		Verbose:  cfg.Verbose,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigFile)
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := session.NewStore(session.Config{
		TTL:           cfg.SessionTTL.Std(),
		SweepInterval: cfg.SessionSweepInterval.Std(),
	}, nil)

	srvCfg := server.Config{
		Port:          cfg.Port,
		Sessions:      store,
		Exporter:      export.New(newRenderer(cfg)),
		LaTeXTemplate: cfg.Template,
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			store.Stop()
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			store.Stop()
			return fmt.Errorf("failed to prepare database schema: %w", err)
		}
		srvCfg.Drafts = database
		log.Printf("[serve] Drafts enabled")
	} else {
		log.Printf("[serve] DATABASE_URL not set, drafts disabled")
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		if database != nil {
			database.Close()
		}
		store.Stop()
		return fmt.Errorf("failed to create server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		store.Stop()
		return nil
	})

	err = g.Wait()
	if database != nil {
		database.Close()
	}
	return err
}

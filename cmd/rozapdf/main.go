// Command rozapdf renders wholesale catalog PDFs.
//
// # Usage
//
// Render a document file to a PDF:
//
//	rozapdf render -i catalog.json -o catalog.pdf
//
// Serve the render API over HTTP:
//
//	rozapdf serve --addr :8080 --workers 4
//
// Configuration is read from flags first, then from the environment
// (a .env file in the working directory is loaded when present):
//
//	ROZA_ADDR     listen address for serve (default :8080)
//	ROZA_WORKERS  render worker count for serve (default 4)
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ayhamDev/roza-catalog/assets"
	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/fonts"
	"github.com/ayhamDev/roza-catalog/srv"
	"github.com/ayhamDev/roza-catalog/worker"
)

var (
	verbose    bool
	inputPath  string
	outputPath string
	stationery string
	offline    bool
	addr       string
	workers    int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rozapdf",
	Short: "Wholesale catalog PDF generator",
	Long: `rozapdf turns a catalog document (company info, theme, categories
and products) into a print-ready A4 PDF: themed cover, table of
contents, category dividers, 3x3 product grids and a back cover.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a catalog document file to a PDF",
	RunE:  runRender,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog render API over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	renderCmd.Flags().StringVarP(&inputPath, "input", "i", "", "catalog document JSON file (required)")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "catalog.pdf", "output PDF file")
	renderCmd.Flags().StringVar(&stationery, "stationery", "", "letterhead PDF drawn under content pages")
	renderCmd.Flags().BoolVar(&offline, "offline", false, "skip remote image fetching")
	_ = renderCmd.MarkFlagRequired("input")

	serveCmd.Flags().StringVar(&addr, "addr", envString("ROZA_ADDR", ":8080"), "listen address")
	serveCmd.Flags().IntVar(&workers, "workers", envInt("ROZA_WORKERS", 4), "render worker count")

	rootCmd.AddCommand(renderCmd, serveCmd)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// buildEnv loads the catalog fonts and image pipeline shared by every
// render.
func buildEnv(ctx context.Context) (worker.Env, error) {
	reg := fonts.NewRegistry()
	if err := reg.Load(ctx); err != nil {
		return worker.Env{}, fmt.Errorf("loading fonts: %w", err)
	}
	env := worker.Env{Fonts: reg}
	if !offline {
		env.Fetcher = assets.NewFetcher()
	}
	return env, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	var doc catalog.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	if stationery != "" {
		doc.StationeryPath = stationery
	}

	env, err := buildEnv(ctx)
	if err != nil {
		return err
	}

	w := worker.New(worker.WithLogger(logger))
	defer w.Close()
	w.Install(env)

	res, err := w.Render(ctx, &doc)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	for _, warn := range res.Warnings {
		logger.Warn("document warning", zap.String("warning", warn))
	}

	if err := os.WriteFile(outputPath, res.PDF, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	logger.Info("catalog written",
		zap.String("file", outputPath),
		zap.Int("pages", res.Pages),
		zap.Int("bytes", len(res.PDF)))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	env, err := buildEnv(ctx)
	if err != nil {
		return err
	}

	pool := worker.NewPool(workers, worker.WithLogger(logger))
	defer pool.Close()
	pool.Install(env)

	server := &http.Server{
		Addr:              addr,
		Handler:           srv.New(pool, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr), zap.Int("workers", workers))
		errc <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rozapdf: %v\n", err)
		os.Exit(1)
	}
}

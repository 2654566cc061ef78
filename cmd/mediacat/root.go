package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/mediacat/mediacat/internal/catalog"
	"github.com/mediacat/mediacat/internal/config"
	"github.com/mediacat/mediacat/internal/events"
	"github.com/mediacat/mediacat/internal/metadata"
	"github.com/mediacat/mediacat/internal/omdb"
	"github.com/mediacat/mediacat/internal/store"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "mediacat",
	Short: "Personal media catalog",
	Long: `mediacat - personal media catalog

Track books, movies, games and music through their lifecycle
(planned, in progress, completed), with OMDb metadata lookup
for movies and tag probing for local audio files.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mediacat {{.Version}}\n")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// app bundles everything a command needs: config, database, event
// plumbing and the loaded catalog.
type app struct {
	cfg     *config.Config
	db      *sql.DB
	log     *slog.Logger
	bus     *events.Bus
	events  *events.Log
	catalog *catalog.Catalog
}

func openApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	eventLog := events.NewLog(db)
	bus := events.NewBus(eventLog, logger)

	// Debug tap on the bus; exits when Close closes the channel.
	go func() {
		for e := range bus.Subscribe(16) {
			logger.Debug("event",
				"type", e.EventType(), "entity", e.EntityType(), "id", e.EntityID())
		}
	}()

	cat, err := catalog.New(store.NewStore(db), bus, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return &app{
		cfg:     cfg,
		db:      db,
		log:     logger,
		bus:     bus,
		events:  eventLog,
		catalog: cat,
	}, nil
}

func (a *app) Close() {
	a.bus.Close()
	a.db.Close()
}

func (a *app) metadataService() *metadata.Service {
	client := omdb.NewClient(a.cfg.OMDb.APIKey, omdb.WithBaseURL(a.cfg.OMDb.BaseURL))
	return metadata.NewService(client, metadata.NewLookupCache(a.db), a.log)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

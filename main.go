// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/sharenote/cliparse"
	"github.com/danielhkuo/sharenote/db"
	"github.com/danielhkuo/sharenote/middleware"
	"github.com/danielhkuo/sharenote/render"
	"github.com/danielhkuo/sharenote/router"
	"github.com/danielhkuo/sharenote/store"
	"github.com/danielhkuo/sharenote/store/fsstore"
	"github.com/danielhkuo/sharenote/store/sqlstore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sharenote",
		Short:        "Share Note publishing server",
		Long:         "Serves published notes and assets and accepts authenticated uploads from the editor plugin.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	cliparse.RegisterFlags(rootCmd.Flags())

	serveCmd := &cobra.Command{
		Use:          "serve",
		Short:        "Run the HTTP server (default)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	cliparse.RegisterFlags(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd, newShortCodeCmd(), newSignCmd())
	return rootCmd
}

func runServe(cmd *cobra.Command) error {
	// Parse configuration
	cfg, err := cliparse.Load(cmd.Flags())
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return err
	}

	setupLogging(cfg.LogLevel)

	// Open the publication store
	s, closeStore, err := openStore(cfg)
	if err != nil {
		slog.Error("store setup failed", "store", cfg.StoreType, "error", err)
		return err
	}
	defer closeStore()
	slog.Info("Publication store ready", "store", cfg.StoreType)

	// Load the note template
	tmpl := render.Default()
	if cfg.TemplatePath != "" {
		tmpl, err = render.Load(cfg.TemplatePath)
		if err != nil {
			slog.Error("template load failed", "path", cfg.TemplatePath, "error", err)
			return err
		}
	}

	// Create router
	mux := router.NewRouter(s, tmpl, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "server_url", cfg.ServerURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
		return err
	}
	slog.Info("Server closed", "error", err)
	return nil
}

// setupLogging installs a text handler at the configured level.
func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		slog.Warn("unknown log level, using info", "level", level)
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func openStore(cfg cliparse.Config) (store.Store, func(), error) {
	switch cfg.StoreType {
	case cliparse.StoreSQLite, cliparse.StorePostgres:
		conn, err := db.Open(cfg.StoreType, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		// Create schema (tables)
		if err := db.CreateSchema(conn, cfg.StoreType); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return sqlstore.New(conn, cfg.StoreType), func() { conn.Close() }, nil
	case cliparse.StoreFS:
		s, err := fsstore.Open(cfg.StaticDir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/CatoAkay/cf-benchmark/internal/config"
	"github.com/CatoAkay/cf-benchmark/internal/mcp"
	"github.com/CatoAkay/cf-benchmark/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	mode := flag.String("mode", "local", "data source: local (direct database) or remote (REST API)")
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	serverURL := flag.String("server", "", "cf-benchmark server URL (remote mode)")
	userID := flag.Int("user", 1, "user ID to run as (local mode; remote mode resolves identity server-side)")
	flag.Parse()

	// Stdout carries the JSON-RPC stream, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource

	switch *mode {
	case "local":
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
	case "remote":
		if *serverURL == "" {
			fmt.Fprintf(os.Stderr, "Error: -server is required in remote mode\n")
			os.Exit(1)
		}
		ds = mcp.NewHTTPClient(*serverURL)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want local or remote)\n", *mode)
		os.Exit(1)
	}

	s := mcp.New(ds, Version, log)

	log.Info("mcp server starting", "mode", *mode, "user", *userID)
	err := mcpserver.ServeStdio(s, mcpserver.WithStdioContextFunc(func(ctx context.Context) context.Context {
		return mcp.WithUserID(ctx, *userID)
	}))
	if err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

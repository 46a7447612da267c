package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/reppulse/internal/catalog"
	"github.com/claude/reppulse/internal/config"
	reppulsemcp "github.com/claude/reppulse/internal/mcp"
	"github.com/claude/reppulse/internal/random"
	"github.com/claude/reppulse/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("reppulse-mcp", Version)
		return
	}

	// Stdout carries the MCP transport; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

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

	cat, err := catalog.Default()
	if err != nil {
		log.Error("catalog integrity check failed", "error", err)
		os.Exit(1)
	}

	srv := reppulsemcp.New(db, cat, random.Default(), Version, log)
	log.Info("MCP server starting on stdio", "version", Version)

	if err := server.ServeStdio(srv); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

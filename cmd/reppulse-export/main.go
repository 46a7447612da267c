package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude/reppulse/internal/export"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "RepPulse server URL (e.g. https://reppulse.tail1234.ts.net)")
	apiKey := flag.String("api-key", os.Getenv("REPPULSE_API_KEY"), "API key (defaults to REPPULSE_API_KEY)")
	userID := flag.Int("user", 0, "profile ID to export")
	archiveDir := flag.String("dir", "", "archive directory (default ~/.reppulse-export)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("reppulse-export", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *serverURL == "" || *userID == 0 {
		fmt.Fprintf(os.Stderr, "Usage: reppulse-export -server <URL> -user <ID> [-api-key KEY] [-dir PATH]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *apiKey == "" {
		fmt.Fprintf(os.Stderr, "Error: -api-key or REPPULSE_API_KEY is required\n")
		os.Exit(1)
	}
	*serverURL = strings.TrimRight(*serverURL, "/")

	dir := *archiveDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
		dir = filepath.Join(homeDir, ".reppulse-export")
	}

	archive, err := export.OpenArchive(dir)
	if err != nil {
		log.Error("failed to open archive", "error", err)
		os.Exit(1)
	}
	defer archive.Close()

	client := export.NewClient(*serverURL, *apiKey)
	sessions, err := client.FetchSessions(*userID, 0)
	if err != nil {
		log.Error("fetch failed", "error", err)
		os.Exit(1)
	}

	saved, skipped := 0, 0
	for _, s := range sessions {
		// Completed sessions never change again, so skip ones already archived.
		if s.Completed {
			exists, err := archive.HasSession(s.ID.String())
			if err != nil {
				log.Error("archive lookup failed", "session", s.ID, "error", err)
				os.Exit(1)
			}
			if exists {
				skipped++
				continue
			}
		}
		if err := archive.SaveSession(s); err != nil {
			log.Error("archive save failed", "session", s.ID, "error", err)
			os.Exit(1)
		}
		saved++
	}

	total, err := archive.SessionCount()
	if err != nil {
		log.Error("archive count failed", "error", err)
		os.Exit(1)
	}
	log.Info("export complete", "fetched", len(sessions), "saved", saved, "skipped", skipped, "archived_total", total)
}

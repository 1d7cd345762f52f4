package main

import (
	"fmt"
	"os"

	"github.com/chhsiching/zanmei-downloader/internal/config"
	"github.com/chhsiching/zanmei-downloader/internal/logger"
	"github.com/chhsiching/zanmei-downloader/internal/site"
	"github.com/chhsiching/zanmei-downloader/internal/site/izanmei"
	"github.com/chhsiching/zanmei-downloader/internal/tui"
)

func main() {
	settings, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI; logs go to the file only.
	log, err := logger.New(settings.LogFile, logger.ParseLevel(settings.LogLevel), false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	registry := site.NewRegistry(izanmei.New())

	if err := tui.Run(settings, registry, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

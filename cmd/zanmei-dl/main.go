package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/afero"

	"github.com/chhsiching/zanmei-downloader/internal/config"
	"github.com/chhsiching/zanmei-downloader/internal/download"
	xhttp "github.com/chhsiching/zanmei-downloader/internal/http"
	"github.com/chhsiching/zanmei-downloader/internal/logger"
	"github.com/chhsiching/zanmei-downloader/internal/progress"
	"github.com/chhsiching/zanmei-downloader/internal/renumber"
	"github.com/chhsiching/zanmei-downloader/internal/site"
	"github.com/chhsiching/zanmei-downloader/internal/site/izanmei"
)

const version = "zanmei-dl 1.0.0"

func main() {
	def := config.Default()

	// Command line flags. Defaults mirror config.Default so -help is
	// honest; only flags the user actually set override the config.
	var (
		urlFlag       = flag.String("url", "", "Album page URL to download")
		renumberDir   = flag.String("renumber-dir", "", "Renumber existing MP3 files in this directory and exit")
		outputFlag    = flag.String("output", def.OutputDir, "Output directory for downloaded songs")
		limitFlag     = flag.Int("limit", def.Limit, "Limit download to the first N songs (0 = all)")
		overwriteFlag = flag.Bool("overwrite", def.Overwrite, "Overwrite existing files instead of skipping them")
		renumberFlag  = flag.Bool("renumber", def.Renumber, "Add leading zero prefixes for proper sorting")
		timeoutFlag   = flag.Int("timeout", def.Timeout, "Request timeout in seconds")
		retriesFlag   = flag.Int("retries", def.Retries, "Number of retry attempts per URL")
		domainsFlag   = flag.String("backup-domains", strings.Join(def.BackupDomains, ","), "Comma-separated backup domains tried when the primary fails")
		delayFlag     = flag.Float64("delay", def.Delay, "Delay between downloads in seconds")
		tagFlag       = flag.Bool("tag", def.ModifyTags, "Write ID3 tags to downloaded songs")
		playlistFlag  = flag.Bool("playlist", def.CreatePlaylist, "Create an .m3u playlist for the album")
		coverFlag     = flag.Bool("cover", def.SaveCover, "Save the album cover as cover.jpg")
		verboseFlag   = flag.Bool("verbose", false, "Enable debug logging mirrored to stderr")
		configFlag    = flag.String("config", "", "Path to config file")
		versionFlag   = flag.Bool("version", false, "Print version and exit")
	)

	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	// Exactly one mode: download a URL or renumber a directory.
	if (*urlFlag == "") == (*renumberDir == "") {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  zanmei-dl -url <album page URL> [options]")
		fmt.Fprintln(os.Stderr, "  zanmei-dl -renumber-dir <directory>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "For interactive mode, use: zanmei-tui")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *urlFlag != "" && !strings.HasPrefix(*urlFlag, "http") {
		fmt.Fprintf(os.Stderr, "Invalid URL: %s\n", *urlFlag)
		os.Exit(2)
	}

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Explicit flags win over the config file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			settings.OutputDir = *outputFlag
		case "limit":
			settings.Limit = *limitFlag
		case "overwrite":
			settings.Overwrite = *overwriteFlag
		case "renumber":
			settings.Renumber = *renumberFlag
		case "timeout":
			settings.Timeout = *timeoutFlag
		case "retries":
			settings.Retries = *retriesFlag
		case "backup-domains":
			settings.BackupDomains = splitDomains(*domainsFlag)
		case "delay":
			settings.Delay = *delayFlag
		case "tag":
			settings.ModifyTags = *tagFlag
		case "playlist":
			settings.CreatePlaylist = *playlistFlag
		case "cover":
			settings.SaveCover = *coverFlag
		}
	})

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(2)
	}

	level := logger.ParseLevel(settings.LogLevel)
	if *verboseFlag {
		level = logger.LevelDebug
	}
	log, err := logger.New(settings.LogFile, level, *verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if *renumberDir != "" {
		runRenumber(*renumberDir, log)
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	client := xhttp.NewClient(settings.TimeoutDuration(), settings.UserAgent)
	registry := site.NewRegistry(izanmei.New())

	// Humans read stdout; a supervising GUI reads marker lines off
	// stderr; the log file gets the full story.
	sink := progress.Multi(
		progress.NewMarkerSink(os.Stderr),
		progress.SinkFunc(humanProgress(settings)),
	)

	manager := download.NewManager(settings, client, registry, sink, log)

	summary, err := manager.DownloadAlbum(ctx, *urlFlag)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			if summary != nil {
				fmt.Println(summary.String())
			}
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		// Resolution failures were already reported through the sink.
		os.Exit(1)
	}

	fmt.Println(summary.String())
	if !summary.AllSucceeded() {
		os.Exit(1)
	}
}

// humanProgress renders the batch for a terminal reader: an album
// header, one line per song and batch-level errors. The closing
// summary is printed by main once the batch returns.
func humanProgress(settings *config.Settings) func(progress.Event) {
	rule := strings.Repeat("=", 60)
	return func(e progress.Event) {
		switch e.Kind {
		case progress.KindAlbumStart:
			fmt.Println()
			fmt.Println(rule)
			fmt.Printf("专辑 (Album): %s\n", e.Title)
			fmt.Printf("来源 (Source): %s\n", e.Source)
			fmt.Printf("歌曲数 (Songs): %d\n", e.Total)
			fmt.Printf("输出目录 (Output): %s\n", settings.OutputDir)
			fmt.Println(rule)
			fmt.Println()
			if settings.Limit > 0 {
				n := settings.Limit
				if e.Total < n {
					n = e.Total
				}
				fmt.Printf("限制下载 (Limit): %d 首\n\n", n)
			}
		case progress.KindSongStart:
			fmt.Printf("[%d/%d] %s\n", e.Index, e.Total, e.Title)
		case progress.KindError:
			fmt.Printf("\n错误: %s\n", e.Message)
		}
	}
}

func runRenumber(dir string, log *logger.Logger) {
	report, err := renumber.New(afero.NewOsFs(), log).Run(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n完成! Summary:")
	fmt.Printf("  重命名 (Renamed): %d\n", report.Renamed)
	fmt.Printf("  跳过 (Skipped): %d\n", report.Skipped)
	fmt.Printf("  总计 (Total): %d\n", report.Total)
}

// splitDomains parses the comma-separated -backup-domains value.
func splitDomains(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	domains := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			domains = append(domains, p)
		}
	}
	return domains
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds every knob of a batch run. A Settings value is built
// once (defaults, then config file, then ZANMEI_* environment
// variables, then command-line flags) and never mutated mid-run.
type Settings struct {
	// OutputDir is where downloaded songs are written.
	OutputDir string `mapstructure:"output_dir" json:"output_dir"`

	// Timeout bounds each HTTP request, in seconds.
	Timeout int `mapstructure:"timeout" json:"timeout"`

	// Retries is the number of attempts per candidate URL.
	Retries int `mapstructure:"retries" json:"retries"`

	// Overwrite replaces existing files instead of skipping them.
	Overwrite bool `mapstructure:"overwrite" json:"overwrite"`

	// Renumber prepends zero-padded ordinal prefixes to filenames.
	Renumber bool `mapstructure:"renumber" json:"renumber"`

	// Delay is the polite pause between songs, in seconds.
	Delay float64 `mapstructure:"delay" json:"delay"`

	// Limit caps the batch to the first N songs; 0 downloads all.
	Limit int `mapstructure:"limit" json:"limit"`

	// BackupDomains are alternate origins tried when the primary URL
	// keeps failing (e.g. "https://cdn.example.com").
	BackupDomains []string `mapstructure:"backup_domains" json:"backup_domains"`

	// ModifyTags stamps ID3v2 frames on each downloaded song.
	ModifyTags bool `mapstructure:"modify_tags" json:"modify_tags"`

	// CreatePlaylist writes an .m3u for the album after the batch.
	CreatePlaylist bool `mapstructure:"create_playlist" json:"create_playlist"`

	// SaveCover downloads the album cover to cover.jpg when available.
	SaveCover bool `mapstructure:"save_cover" json:"save_cover"`

	// CoverMaxSize bounds the longer cover edge in pixels.
	CoverMaxSize int `mapstructure:"cover_max_size" json:"cover_max_size"`

	// UserAgent identifies this client to the site.
	UserAgent string `mapstructure:"user_agent" json:"user_agent"`

	// LogFile is the log destination path.
	LogFile string `mapstructure:"log_file" json:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" json:"log_level"`
}

// Default returns the settings used when no config file, environment
// variable or flag says otherwise.
func Default() *Settings {
	return &Settings{
		OutputDir:    "./downloads",
		Timeout:      60,
		Retries:      3,
		Delay:        0.5,
		CoverMaxSize: 1000,
		UserAgent:    "zanmei-downloader/1.0",
		LogFile:      "downloader.log",
		LogLevel:     "info",
	}
}

// DefaultPath returns the per-user config file location,
// e.g. ~/.config/zanmei-downloader/config.json.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "zanmei-downloader", "config.json")
}

// Load builds Settings from defaults, an optional JSON config file and
// ZANMEI_* environment variables. An explicitly given path must exist;
// the default location is allowed to be absent.
func Load(path string) (*Settings, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("timeout", def.Timeout)
	v.SetDefault("retries", def.Retries)
	v.SetDefault("overwrite", def.Overwrite)
	v.SetDefault("renumber", def.Renumber)
	v.SetDefault("delay", def.Delay)
	v.SetDefault("limit", def.Limit)
	v.SetDefault("backup_domains", def.BackupDomains)
	v.SetDefault("modify_tags", def.ModifyTags)
	v.SetDefault("create_playlist", def.CreatePlaylist)
	v.SetDefault("save_cover", def.SaveCover)
	v.SetDefault("cover_max_size", def.CoverMaxSize)
	v.SetDefault("user_agent", def.UserAgent)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("log_level", def.LogLevel)

	required := path != ""
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			if required || !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	v.SetEnvPrefix("ZANMEI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects unusable values and normalizes the forgivable ones.
func (s *Settings) Validate() error {
	if s.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if s.Retries < 0 {
		return errors.New("retries must not be negative")
	}
	if s.Delay < 0 {
		return errors.New("delay must not be negative")
	}
	if s.Limit < 0 {
		s.Limit = 0
	}
	if s.OutputDir == "" {
		s.OutputDir = "./downloads"
	}
	if s.CoverMaxSize <= 0 {
		s.CoverMaxSize = 1000
	}
	return nil
}

// Save writes the settings as pretty-printed JSON, creating parent
// directories as needed.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// TimeoutDuration returns the per-request timeout as a time.Duration.
func (s *Settings) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// DelayDuration returns the inter-song delay as a time.Duration.
func (s *Settings) DelayDuration() time.Duration {
	return time.Duration(s.Delay * float64(time.Second))
}

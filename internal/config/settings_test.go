package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "./downloads", s.OutputDir)
	require.Equal(t, 60, s.Timeout)
	require.Equal(t, 3, s.Retries)
	require.Equal(t, 0.5, s.Delay)
	require.False(t, s.Overwrite)
	require.Equal(t, 0, s.Limit)
	require.Equal(t, "downloader.log", s.LogFile)
	require.Equal(t, "info", s.LogLevel)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
  "output_dir": "/music/hymns",
  "retries": 5,
  "delay": 1.5,
  "backup_domains": ["https://cdn.example.com"],
  "modify_tags": true
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "/music/hymns", s.OutputDir)
	require.Equal(t, 5, s.Retries)
	require.Equal(t, 1.5, s.Delay)
	require.Equal(t, []string{"https://cdn.example.com"}, s.BackupDomains)
	require.True(t, s.ModifyTags)
	// untouched keys keep their defaults
	require.Equal(t, 60, s.Timeout)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ZANMEI_RETRIES", "9")
	t.Setenv("ZANMEI_OUTPUT_DIR", "/tmp/env-music")

	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 9, s.Retries)
	require.Equal(t, "/tmp/env-music", s.OutputDir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults pass", func(s *Settings) {}, false},
		{"zero timeout", func(s *Settings) { s.Timeout = 0 }, true},
		{"negative retries", func(s *Settings) { s.Retries = -1 }, true},
		{"zero retries allowed", func(s *Settings) { s.Retries = 0 }, false},
		{"negative delay", func(s *Settings) { s.Delay = -0.1 }, true},
		{"negative limit normalized", func(s *Settings) { s.Limit = -4 }, false},
		{"empty output dir normalized", func(s *Settings) { s.OutputDir = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.GreaterOrEqual(t, s.Limit, 0)
			require.NotEmpty(t, s.OutputDir)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	s := Default()
	s.OutputDir = "/music/saved"
	s.Retries = 7
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/music/saved", loaded.OutputDir)
	require.Equal(t, 7, loaded.Retries)
}

func TestDurations(t *testing.T) {
	s := &Settings{Timeout: 90, Delay: 0.25}
	require.Equal(t, 90*time.Second, s.TimeoutDuration())
	require.Equal(t, 250*time.Millisecond, s.DelayDuration())
}

package download

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/chhsiching/zanmei-downloader/internal/audio"
	"github.com/chhsiching/zanmei-downloader/internal/config"
	"github.com/chhsiching/zanmei-downloader/internal/cover"
	xhttp "github.com/chhsiching/zanmei-downloader/internal/http"
	"github.com/chhsiching/zanmei-downloader/internal/logger"
	"github.com/chhsiching/zanmei-downloader/internal/model"
	"github.com/chhsiching/zanmei-downloader/internal/progress"
	"github.com/chhsiching/zanmei-downloader/internal/site"
)

// Manager runs the engine over a whole album, strictly one song at a
// time, and reports the batch through a progress.Sink.
type Manager struct {
	fs       afero.Fs
	settings *config.Settings
	client   *xhttp.Client
	registry *site.Registry
	engine   *Engine
	sink     progress.Sink
	log      *logger.Logger
	tagger   *audio.Tagger
}

// NewManager creates a Manager writing to the real filesystem.
func NewManager(settings *config.Settings, client *xhttp.Client, registry *site.Registry, sink progress.Sink, log *logger.Logger) *Manager {
	return NewManagerWithFS(afero.NewOsFs(), settings, client, registry, sink, log)
}

// NewManagerWithFS is NewManager with an explicit filesystem.
func NewManagerWithFS(fs afero.Fs, settings *config.Settings, client *xhttp.Client, registry *site.Registry, sink progress.Sink, log *logger.Logger) *Manager {
	return &Manager{
		fs:       fs,
		settings: settings,
		client:   client,
		registry: registry,
		engine:   NewEngine(fs, client, log),
		sink:     sink,
		log:      log,
		tagger:   audio.NewTagger(),
	}
}

// ResolveAlbum fetches an album page and extracts its songs without
// downloading anything. The registry picks the adapter; an unsupported
// URL fails before any network traffic.
func (m *Manager) ResolveAlbum(ctx context.Context, pageURL string) (*model.Album, error) {
	adapter, err := m.registry.Find(pageURL)
	if err != nil {
		return nil, err
	}

	m.log.Info("Fetching album page: %s", pageURL)
	html, err := m.client.GetString(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch album page: %w", err)
	}

	m.log.Info("Parsing album information...")
	album, err := adapter.ExtractAlbum(html)
	if err != nil {
		return nil, err
	}
	album.URL = pageURL

	m.log.Info("Found album: %s (%d songs)", album.Title, len(album.Songs))
	return album, nil
}

// DownloadAlbum resolves the album behind pageURL and downloads its
// songs in page order. A resolution failure aborts the batch before
// any download and emits a single error event. Per-song failures are
// recorded in the summary and never stop the batch; only cancellation
// does, in which case the summary of the completed part is returned
// together with the context's error.
func (m *Manager) DownloadAlbum(ctx context.Context, pageURL string) (*model.Summary, error) {
	album, err := m.ResolveAlbum(ctx, pageURL)
	if err != nil {
		m.log.Error("Album download failed: %v", err)
		m.sink.Emit(progress.ErrorEvent(err.Error()))
		return nil, err
	}

	m.sink.Emit(progress.AlbumStart(album.Title, album.Source, len(album.Songs)))

	songs := album.Head(m.settings.Limit)
	summary := model.NewSummary(len(songs))

	var artwork []byte
	if album.HasArtwork() && (m.settings.SaveCover || m.settings.ModifyTags) {
		artwork = m.prepareArtwork(ctx, album)
	}

	var entries []audio.PlaylistEntry

	for i, song := range songs {
		if ctx.Err() != nil {
			m.log.Warn("Batch cancelled after %d/%d songs", i, len(songs))
			break
		}

		index := i + 1
		m.sink.Emit(progress.SongStart(index, len(songs), song.Title))

		result := m.engine.Download(ctx, m.request(song, index, len(album.Songs)))
		summary.Record(result)

		if result.Status == model.StatusSuccess && m.settings.ModifyTags {
			if err := m.tagger.SaveTags(result.Path, song, album, artwork); err != nil {
				m.log.Warn("Failed to tag %s: %v", result.Path, err)
			}
		}
		if result.Status != model.StatusFailed && result.Path != "" {
			entries = append(entries, audio.PlaylistEntry{
				Title: song.Title,
				File:  filepath.Base(result.Path),
			})
		}

		m.sink.Emit(progress.SongComplete(index, song.Title, string(result.Status), result.Size, result.Message))

		// Politeness pause between songs, skipped after the last one.
		if i < len(songs)-1 && m.settings.Delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(m.settings.DelayDuration()):
			}
		}
	}

	if m.settings.CreatePlaylist && len(entries) > 0 {
		m.writePlaylist(album.Title, entries)
	}

	m.sink.Emit(progress.AlbumComplete(summary.Success, summary.Failed, summary.Skipped, summary.Total))
	return summary, ctx.Err()
}

// request builds the engine request for one song. The prefix padding
// follows the album's full size, not the limited batch, so a partial
// download sorts consistently with a later full one.
func (m *Manager) request(song model.Song, index, albumTotal int) Request {
	return Request{
		URL:        song.URL,
		BackupURLs: BackupURLs(song.URL, m.settings.BackupDomains),
		OutputDir:  m.settings.OutputDir,
		ID:         song.ID,
		Title:      song.Title,
		Retries:    m.settings.Retries,
		Overwrite:  m.settings.Overwrite,
		Renumber:   m.settings.Renumber,
		Total:      albumTotal,
		OnProgress: func(percent int) {
			m.sink.Emit(progress.SongProgress(index, percent))
		},
	}
}

// prepareArtwork fetches and normalizes the album cover, saving it to
// the album directory when configured. Artwork problems are logged and
// yield nil; they never fail the batch and never touch the summary.
func (m *Manager) prepareArtwork(ctx context.Context, album *model.Album) []byte {
	data, err := m.client.Get(ctx, album.ArtworkURL)
	if err != nil {
		m.log.Warn("Failed to fetch artwork for %s: %v", album.Title, err)
		return nil
	}

	art, err := cover.Prepare(data, m.settings.CoverMaxSize)
	if err != nil {
		m.log.Warn("Failed to prepare artwork for %s: %v", album.Title, err)
		return nil
	}

	if m.settings.SaveCover {
		if err := m.writeCover(art); err != nil {
			m.log.Warn("Failed to save %s: %v", cover.Filename, err)
		}
	}
	return art
}

func (m *Manager) writeCover(art []byte) error {
	if err := m.fs.MkdirAll(m.settings.OutputDir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(m.settings.OutputDir, cover.Filename)
	if err := afero.WriteFile(m.fs, path, art, 0o644); err != nil {
		return err
	}
	m.log.Info("Saved album cover to %s", path)
	return nil
}

func (m *Manager) writePlaylist(title string, entries []audio.PlaylistEntry) {
	path := filepath.Join(m.settings.OutputDir, audio.M3UFilename(title))
	content := audio.BuildM3U(title, entries)

	if err := afero.WriteFile(m.fs, path, []byte(content), 0o644); err != nil {
		m.log.Warn("Failed to write playlist %s: %v", path, err)
		return
	}
	m.log.Info("Created playlist %s", path)
}

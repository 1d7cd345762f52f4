package model

import (
	"strings"
	"testing"
	"time"
)

func TestSong_Same(t *testing.T) {
	tests := []struct {
		name string
		a, b Song
		want bool
	}{
		{"equal ids", NewSong("100", "第1首 a", "u1"), NewSong("100", "第2首 b", "u2"), true},
		{"different ids", NewSong("100", "第1首 a", "u"), NewSong("101", "第1首 a", "u"), false},
		{"empty ids", NewSong("", "a", "u"), NewSong("", "b", "u"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Same(tt.b); got != tt.want {
				t.Errorf("Same() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSong_TrackNumber(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"numeric", "7", 7},
		{"missing", "", 0},
		{"garbage", "seven", 0},
		{"negative", "-3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSong("1", "title", "url")
			if tt.value != "" {
				s.Metadata["track_number"] = tt.value
			}
			if got := s.TrackNumber(); got != tt.want {
				t.Errorf("TrackNumber() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAlbum_Head(t *testing.T) {
	album := NewAlbum("Album", "https://example.com/album.html", "example.com")
	for _, id := range []string{"1", "2", "3"} {
		album.Songs = append(album.Songs, NewSong(id, "第"+id+"首", ""))
	}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero means all", 0, 3},
		{"negative means all", -1, 3},
		{"prefix", 2, 2},
		{"exact length", 3, 3},
		{"beyond length", 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := album.Head(tt.n)
			if len(got) != tt.want {
				t.Fatalf("Head(%d) returned %d songs, want %d", tt.n, len(got), tt.want)
			}
			for i := range got {
				if !got[i].Same(album.Songs[i]) {
					t.Errorf("Head(%d)[%d] = %q, want prefix order preserved", tt.n, i, got[i].ID)
				}
			}
		})
	}
}

func TestAlbum_HasArtwork(t *testing.T) {
	album := NewAlbum("Album", "url", "src")
	if album.HasArtwork() {
		t.Error("HasArtwork() should be false without an artwork URL")
	}
	album.ArtworkURL = "https://example.com/cover.jpg"
	if !album.HasArtwork() {
		t.Error("HasArtwork() should be true once ArtworkURL is set")
	}
}

func TestSummary_Record(t *testing.T) {
	s := NewSummary(4)
	s.Record(Succeeded("/tmp/a.mp3", 10, "ok"))
	s.Record(Failed("boom"))
	s.Record(Skipped("/tmp/b.mp3", "File already exists"))
	s.Record(Succeeded("/tmp/c.mp3", 20, "ok"))

	if s.Success != 2 || s.Failed != 1 || s.Skipped != 1 {
		t.Errorf("counters = %d/%d/%d, want 2/1/1", s.Success, s.Failed, s.Skipped)
	}
	if s.AllSucceeded() {
		t.Error("AllSucceeded() should be false with one failure")
	}
}

func TestSummary_AllSucceeded(t *testing.T) {
	s := NewSummary(2)
	s.Record(Succeeded("/tmp/a.mp3", 10, "ok"))
	s.Record(Skipped("/tmp/b.mp3", "File already exists"))

	if !s.AllSucceeded() {
		t.Error("AllSucceeded() should treat skips as non-failures")
	}
}

func TestSummary_String(t *testing.T) {
	s := &Summary{Success: 1, Failed: 2, Skipped: 3, Total: 6, StartedAt: time.Now()}
	out := s.String()

	for _, want := range []string{
		"下载完成! Download Summary",
		"成功 (Success): 1",
		"失败 (Failed): 2",
		"跳过 (Skipped): 3",
		"总计 (Total): 6",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q in:\n%s", want, out)
		}
	}
}

func TestDownloadStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status DownloadStatus
		want   bool
	}{
		{StatusSuccess, true},
		{StatusFailed, true},
		{StatusSkipped, true},
		{StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsTerminal(); got != tt.want {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.want)
			}
		})
	}
}

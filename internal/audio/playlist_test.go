package audio

import (
	"strings"
	"testing"
)

func TestBuildM3U(t *testing.T) {
	entries := []PlaylistEntry{
		{Title: "第1首 圣哉三一歌", File: "1_第1首 圣哉三一歌.mp3"},
		{Title: "第2首 赞美三一歌", File: "2_第2首 赞美三一歌.mp3"},
	}

	content := BuildM3U("新编赞美诗442首(001-100)", entries)

	want := "#EXTM3U\n" +
		"#PLAYLIST:新编赞美诗442首(001-100)\n" +
		"#EXTINF:-1,第1首 圣哉三一歌\n" +
		"1_第1首 圣哉三一歌.mp3\n" +
		"#EXTINF:-1,第2首 赞美三一歌\n" +
		"2_第2首 赞美三一歌.mp3\n"
	if content != want {
		t.Errorf("BuildM3U() =\n%s\nwant\n%s", content, want)
	}
}

func TestBuildM3U_NoTitle(t *testing.T) {
	content := BuildM3U("", []PlaylistEntry{{Title: "t", File: "t.mp3"}})

	if !strings.HasPrefix(content, "#EXTM3U\n") {
		t.Error("playlist should start with #EXTM3U")
	}
	if strings.Contains(content, "#PLAYLIST") {
		t.Error("empty album title should not emit a #PLAYLIST line")
	}
}

func TestBuildM3U_Empty(t *testing.T) {
	content := BuildM3U("专辑", nil)

	if strings.Contains(content, "#EXTINF") {
		t.Error("empty entry list should not emit EXTINF lines")
	}
}

func TestM3UFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"新编赞美诗442首(001-100)", "新编赞美诗442首(001-100).m3u"},
		{"hymns: vol 1", "hymns_ vol 1.m3u"},
		{"  padded  ", "padded.m3u"},
	}

	for _, tt := range tests {
		if got := M3UFilename(tt.title); got != tt.want {
			t.Errorf("M3UFilename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

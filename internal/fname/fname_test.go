package fname

import (
	"net/http"
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.mp3", "normal-file.mp3"},
		{`back\slash.mp3`, "back_slash.mp3"},
		{"fore/slash.mp3", "fore_slash.mp3"},
		{"col:on.mp3", "col_on.mp3"},
		{"st*ar.mp3", "st_ar.mp3"},
		{"quest?ion.mp3", "quest_ion.mp3"},
		{`qu"ote.mp3`, "qu_ote.mp3"},
		{"br<ack>ets.mp3", "br_ack_ets.mp3"},
		{"pi|pe.mp3", "pi_pe.mp3"},
		{"  padded.mp3  ", "padded.mp3"},
		{`\/:*?"<>|`, "_________"},
		{"第1首 圣哉三一歌.mp3", "第1首 圣哉三一歌.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if strings.ContainsAny(got, `\/:*?"<>|`) {
				t.Errorf("Sanitize(%q) left reserved characters in %q", tt.input, got)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"a/b:c.mp3",
		`every\/:*?"<>|char`,
		"   spaced   ",
		"第10首 荣耀归于真神.mp3",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestFixMojibake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii untouched", "hello.mp3", "hello.mp3"},
		{"correct utf8 untouched", "圣哉三一歌.mp3", "圣哉三一歌.mp3"},
		{"latin1 mojibake repaired", "Ã©.mp3", "é.mp3"},
		// "圣" is E5 9C A3 in UTF-8; decoded as Latin-1 that becomes
		// å + U+009C + £.
		{"cjk mojibake repaired", "å£.mp3", "圣.mp3"},
		// E5 A3 alone is not a valid UTF-8 sequence, so no repair.
		{"invalid recovered bytes untouched", "å£.mp3", "å£.mp3"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixMojibake(tt.input); got != tt.want {
				t.Errorf("FixMojibake(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractTrackNumber(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"第1首 圣哉三一歌.mp3", 1, true},
		{"第42首.mp3", 42, true},
		{"7_第7首 x.mp3", 7, true},
		{"no marker here.mp3", 0, false},
		{"第首 missing digits.mp3", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ExtractTrackNumber(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractTrackNumber(%q) = (%d, %v), want (%d, %v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTrackNumberPrefix(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		trackNumber int
		total       int
		want        string
	}{
		{"one digit", "第7首 x.mp3", 0, 9, "7_第7首 x.mp3"},
		{"two digits", "第7首 x.mp3", 0, 50, "07_第7首 x.mp3"},
		{"three digits", "第7首 x.mp3", 0, 150, "007_第7首 x.mp3"},
		{"explicit number wins", "第7首 x.mp3", 3, 9, "3_第7首 x.mp3"},
		{"no marker unchanged", "plain.mp3", 0, 9, "plain.mp3"},
		{"boundary ten", "第2首.mp3", 0, 10, "02_第2首.mp3"},
		{"boundary hundred", "第2首.mp3", 0, 100, "002_第2首.mp3"},
		{"re-application stacks", "7_第7首 x.mp3", 0, 9, "7_7_第7首 x.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrackNumberPrefix(tt.input, tt.trackNumber, tt.total)
			if got != tt.want {
				t.Errorf("TrackNumberPrefix(%q, %d, %d) = %q, want %q",
					tt.input, tt.trackNumber, tt.total, got, tt.want)
			}
		})
	}
}

func TestFromHeaders(t *testing.T) {
	withCD := func(v string) http.Header {
		h := http.Header{}
		h.Set("Content-Disposition", v)
		return h
	}

	tests := []struct {
		name   string
		header http.Header
		id     string
		title  string
		want   string
	}{
		{
			name:   "title wins over header",
			header: withCD(`attachment; filename="server.mp3"`),
			id:     "123",
			title:  "第1首 圣哉三一歌",
			want:   "第1首 圣哉三一歌.mp3",
		},
		{
			name:   "title is sanitized",
			header: http.Header{},
			title:  "a/b:c",
			want:   "a_b_c.mp3",
		},
		{
			name:   "quoted header filename",
			header: withCD(`attachment; filename="song.mp3"`),
			want:   "song.mp3",
		},
		{
			name:   "percent escapes decoded",
			header: withCD(`attachment; filename="%E5%9C%A3%E5%93%89.mp3"`),
			want:   "圣哉.mp3",
		},
		{
			name:   "rfc 5987 extended form",
			header: withCD(`attachment; filename*=UTF-8''%E5%9C%A3%E5%93%89.mp3`),
			want:   "圣哉.mp3",
		},
		{
			name:   "mojibake header repaired",
			header: withCD(`attachment; filename="Ã©.mp3"`),
			want:   "é.mp3",
		},
		{
			name:   "id fallback",
			header: http.Header{},
			id:     "16875",
			want:   "16875.mp3",
		},
		{
			name:   "placeholder fallback",
			header: http.Header{},
			want:   "unknown.mp3",
		},
		{
			name:   "malformed header falls back to id",
			header: withCD(`attachment; filename=`),
			id:     "9",
			want:   "9.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromHeaders(tt.header, tt.id, tt.title)
			if got != tt.want {
				t.Errorf("FromHeaders(%v, %q, %q) = %q, want %q",
					tt.header.Get("Content-Disposition"), tt.id, tt.title, got, tt.want)
			}
		})
	}
}

package site

import (
	"errors"
	"strings"
	"testing"

	"github.com/chhsiching/zanmei-downloader/internal/model"
)

// fakeAdapter recognizes URLs containing its name.
type fakeAdapter struct {
	name string
}

func (f *fakeAdapter) Name() string              { return f.name }
func (f *fakeAdapter) CanHandle(url string) bool { return strings.Contains(url, f.name) }
func (f *fakeAdapter) ExtractAlbum(html string) (*model.Album, error) {
	return model.NewAlbum("test", "", f.name), nil
}

func TestRegistry_Find(t *testing.T) {
	a := &fakeAdapter{name: "a.example"}
	b := &fakeAdapter{name: "b.example"}
	r := NewRegistry(a, b)

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"matches first adapter", "https://a.example/album/1.html", "a.example", false},
		{"matches second adapter", "https://b.example/album/1.html", "b.example", false},
		{"no adapter", "https://music.163.com/album/123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Find(tt.url)

			if tt.wantErr {
				if !errors.Is(err, ErrNoAdapter) {
					t.Errorf("err = %v, want ErrNoAdapter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name() != tt.want {
				t.Errorf("Find() picked %q, want %q", got.Name(), tt.want)
			}
		})
	}
}

func TestRegistry_FindPrefersFirstMatch(t *testing.T) {
	first := &fakeAdapter{name: "example"}
	second := &fakeAdapter{name: "example"}
	r := NewRegistry(first, second)

	got, err := r.Find("https://example/album/1.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Adapter(first) {
		t.Error("Find() did not return the first registered adapter")
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Find("https://a.example/"); !errors.Is(err, ErrNoAdapter) {
		t.Fatalf("empty registry err = %v, want ErrNoAdapter", err)
	}

	r.Register(&fakeAdapter{name: "a.example"})
	if _, err := r.Find("https://a.example/"); err != nil {
		t.Errorf("after Register, Find() error = %v", err)
	}
}

func TestRegistry_Sites(t *testing.T) {
	r := NewRegistry(&fakeAdapter{name: "a.example"}, &fakeAdapter{name: "b.example"})

	sites := r.Sites()
	if len(sites) != 2 || sites[0] != "a.example" || sites[1] != "b.example" {
		t.Errorf("Sites() = %v, want [a.example b.example]", sites)
	}
}

package site

import (
	"errors"

	"github.com/chhsiching/zanmei-downloader/internal/model"
)

// ErrNoAdapter is returned when no registered adapter recognizes a URL.
//
// This typically occurs when:
//   - The URL points to a site this tool does not support
//   - The URL is misspelled (wrong domain)
var ErrNoAdapter = errors.New("no adapter for url")

// Adapter extracts album information from one supported website.
//
// Implementations are stateless: CanHandle inspects only the URL string
// and ExtractAlbum parses page HTML that the caller already fetched.
// Adapters never perform network requests themselves.
type Adapter interface {
	// Name returns the site label used in logs and events
	// (e.g. "izanmei.cc").
	Name() string

	// CanHandle reports whether this adapter recognizes the URL.
	CanHandle(url string) bool

	// ExtractAlbum parses an album page and returns its songs in page
	// order. The returned album's URL field is left empty; the caller
	// fills in the page URL it fetched.
	ExtractAlbum(html string) (*model.Album, error)
}

// Registry holds the adapters available to a run, in lookup order.
//
// The registry is built explicitly by the caller; there is no global
// registration. This keeps the set of supported sites visible at the
// construction site and makes tests trivial to isolate.
//
// Example usage:
//
//	registry := site.NewRegistry(izanmei.New())
//
//	adapter, err := registry.Find(url)
//	if errors.Is(err, site.ErrNoAdapter) {
//	    fmt.Printf("unsupported site, known sites: %v\n", registry.Sites())
//	    return
//	}
type Registry struct {
	adapters []Adapter
}

// NewRegistry creates a Registry with the given adapters. Lookup order
// follows argument order.
func NewRegistry(adapters ...Adapter) *Registry {
	return &Registry{adapters: adapters}
}

// Register appends an adapter to the lookup order.
func (r *Registry) Register(a Adapter) {
	r.adapters = append(r.adapters, a)
}

// Find returns the first adapter that recognizes the URL.
//
// Returns ErrNoAdapter if none does.
func (r *Registry) Find(url string) (Adapter, error) {
	for _, a := range r.adapters {
		if a.CanHandle(url) {
			return a, nil
		}
	}
	return nil, ErrNoAdapter
}

// Sites lists the names of all registered adapters.
func (r *Registry) Sites() []string {
	names := make([]string, 0, len(r.adapters))
	for _, a := range r.adapters {
		names = append(names, a.Name())
	}
	return names
}

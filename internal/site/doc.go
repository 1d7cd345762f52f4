// Package site defines the adapter contract for supported websites and
// the registry used to pick an adapter for a URL.
//
// Each supported site implements Adapter in its own subpackage (e.g.
// site/izanmei). Adapters are pure HTML parsers: the caller fetches the
// page, the adapter turns it into a model.Album.
//
// # Choosing an Adapter
//
// Build a Registry with the adapters you want and ask it for a match:
//
//	registry := site.NewRegistry(izanmei.New())
//	adapter, err := registry.Find("https://www.izanmei.cc/album/hymns-442-1.html")
//	if err != nil {
//	    log.Fatal(err) // site.ErrNoAdapter
//	}
//	album, err := adapter.ExtractAlbum(pageHTML)
//
// Registration is explicit. Nothing in this package or its subpackages
// registers adapters as an import side effect, so a test can construct
// a registry holding only a fake.
package site

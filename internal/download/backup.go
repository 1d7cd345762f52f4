package download

import (
	"net/url"
	"strings"
)

// BackupURLs derives alternate locations for one song by substituting
// each configured backup domain into the primary URL. The path is kept
// as-is, so the song id embedded in it survives the substitution.
//
// A domain may carry its own scheme ("https://cdn.example.com") or be a
// bare host ("cdn.example.com"), in which case the primary's scheme is
// reused. Blank and unparsable domains are dropped. An unparsable
// primary yields nil: there is nothing sensible to substitute into.
//
// Example:
//
//	download.BackupURLs("https://play.xiaoh.ai/song/p/16875.mp3", []string{"https://mirror.example.com"})
//	// ["https://mirror.example.com/song/p/16875.mp3"]
func BackupURLs(primary string, domains []string) []string {
	if len(domains) == 0 {
		return nil
	}

	p, err := url.Parse(primary)
	if err != nil || p.Host == "" {
		return nil
	}

	urls := make([]string, 0, len(domains))
	for _, domain := range domains {
		d := strings.TrimSpace(domain)
		if d == "" {
			continue
		}
		if !strings.Contains(d, "://") {
			d = p.Scheme + "://" + d
		}

		b, err := url.Parse(d)
		if err != nil || b.Host == "" {
			continue
		}

		backup := *p
		backup.Scheme = b.Scheme
		backup.Host = b.Host
		urls = append(urls, backup.String())
	}
	return urls
}

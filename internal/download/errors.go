package download

import "errors"

var (
	// ErrTransport classifies faults of the HTTP layer: request
	// failures, non-200 responses and body read errors. Transport
	// faults are retried with exponential backoff and URL failover.
	ErrTransport = errors.New("transport error")

	// ErrIncomplete classifies a stream that ended with fewer bytes
	// than the declared Content-Length. The partial file is removed
	// and the attempt is retried exactly like a transport fault.
	ErrIncomplete = errors.New("incomplete download")
)

// retryable reports whether an attempt error may be resolved by trying
// again or by switching to a backup URL. Anything else (directory or
// file creation, local writes) fails the song immediately.
func retryable(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrIncomplete)
}

package model

// DownloadStatus is the terminal state of one download attempt sequence.
type DownloadStatus string

const (
	// StatusPending means the song has not reached a terminal state yet.
	StatusPending DownloadStatus = "pending"

	// StatusSuccess means the file was fully written and verified.
	StatusSuccess DownloadStatus = "success"

	// StatusFailed means no candidate URL produced a complete file.
	StatusFailed DownloadStatus = "failed"

	// StatusSkipped means the output file already existed and
	// overwriting was disabled.
	StatusSkipped DownloadStatus = "skipped"
)

// IsTerminal reports whether the status is one of the three final states.
func (s DownloadStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusSkipped
}

// DownloadResult is the single outcome the engine reports per song.
//
// Exactly one result is produced per song; it is never amended. Path
// and Size are only meaningful for success and skip outcomes.
//
// Example:
//
//	res := model.Succeeded("/music/1_第1首 圣哉三一歌.mp3", 3_145_728, "Download successful from primary")
//	if res.Status == model.StatusSuccess {
//	    fmt.Println(res.Path, res.Size)
//	}
type DownloadResult struct {
	// Status is the terminal state.
	Status DownloadStatus

	// Path is the local file location for success/skip outcomes.
	Path string

	// Size is the number of bytes written for success outcomes.
	Size int64

	// Message is a short human-readable description of the outcome.
	Message string
}

// Succeeded builds a success result.
func Succeeded(path string, size int64, message string) DownloadResult {
	return DownloadResult{Status: StatusSuccess, Path: path, Size: size, Message: message}
}

// Skipped builds a skip result for an already-present file.
func Skipped(path, reason string) DownloadResult {
	return DownloadResult{Status: StatusSkipped, Path: path, Message: reason}
}

// Failed builds a failure result.
func Failed(reason string) DownloadResult {
	return DownloadResult{Status: StatusFailed, Message: reason}
}

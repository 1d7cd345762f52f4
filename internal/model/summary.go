package model

import (
	"fmt"
	"strings"
	"time"
)

// Summary aggregates the outcomes of one batch run.
//
// The batch orchestrator records each result as it arrives; once the
// run finishes the summary is read-only. The String form is the
// human-facing report printed after a batch.
type Summary struct {
	// Success, Failed and Skipped count terminal outcomes by status.
	Success int
	Failed  int
	Skipped int

	// Total is the number of songs the batch set out to download
	// (after any limit was applied).
	Total int

	// StartedAt is when the batch began.
	StartedAt time.Time
}

// NewSummary starts a summary for a batch of total songs.
func NewSummary(total int) *Summary {
	return &Summary{Total: total, StartedAt: time.Now()}
}

// Record folds one download result into the counters.
func (s *Summary) Record(r DownloadResult) {
	switch r.Status {
	case StatusSuccess:
		s.Success++
	case StatusFailed:
		s.Failed++
	default:
		s.Skipped++
	}
}

// AllSucceeded reports whether the batch finished without failures.
// Skipped songs count as non-failures.
func (s *Summary) AllSucceeded() bool {
	return s.Failed == 0
}

// Elapsed returns the time since the batch started.
func (s *Summary) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}

// String renders the bilingual end-of-batch report.
func (s *Summary) String() string {
	elapsed := s.Elapsed().Seconds()
	speed := "N/A"
	if elapsed > 0 && s.Success > 0 {
		speed = fmt.Sprintf("%.2f 首/秒", float64(s.Success)/elapsed)
	}

	rule := strings.Repeat("=", 60)
	lines := []string{
		"",
		rule,
		"下载完成! Download Summary",
		rule,
		fmt.Sprintf("  成功 (Success): %d", s.Success),
		fmt.Sprintf("  失败 (Failed): %d", s.Failed),
		fmt.Sprintf("  跳过 (Skipped): %d", s.Skipped),
		fmt.Sprintf("  总计 (Total): %d", s.Total),
		fmt.Sprintf("  耗时 (Time): %.1f 秒", elapsed),
		fmt.Sprintf("  速度 (Speed): %s", speed),
		rule,
	}
	return strings.Join(lines, "\n")
}

package git

import "time"

// commitWindow applies the date bounds and skip/max-count paging to a
// newest-first stream of commits. Bounds are inclusive.
type commitWindow struct {
	since    *time.Time
	until    *time.Time
	skip     int
	maxCount int

	skipped int
	taken   int
}

func newCommitWindow(opts ReadOptions) *commitWindow {
	skip := opts.Skip
	if skip < 0 {
		skip = 0
	}
	return &commitWindow{
		since:    opts.Since,
		until:    opts.Until,
		skip:     skip,
		maxCount: opts.MaxCount,
	}
}

// inRange reports whether t lies within [since, until].
func (w *commitWindow) inRange(t time.Time) bool {
	if w.since != nil && t.Before(*w.since) {
		return false
	}
	if w.until != nil && t.After(*w.until) {
		return false
	}
	return true
}

// admit records a matching commit and reports whether it belongs to the page.
func (w *commitWindow) admit() bool {
	if w.skipped < w.skip {
		w.skipped++
		return false
	}
	w.taken++
	return true
}

// full reports whether the page has reached maxCount.
func (w *commitWindow) full() bool {
	return w.maxCount > 0 && w.taken >= w.maxCount
}

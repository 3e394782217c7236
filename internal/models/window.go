package models

import "time"

// WindowKind selects how a report's time window is resolved.
type WindowKind string

const (
	WindowCurrent  WindowKind = "current"
	WindowPrevious WindowKind = "previous"
	WindowRange    WindowKind = "range"
	WindowAll      WindowKind = "all"
)

// Window is a resolved report time window. A zero From or To is unbounded.
type Window struct {
	Kind WindowKind `json:"kind"`
	From time.Time  `json:"from,omitempty"`
	To   time.Time  `json:"to,omitempty"`
}

// Contains reports whether t falls inside [From, To).
func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To) {
		return false
	}
	return true
}

// CacheKey is a stable string for cache keys.
func (w Window) CacheKey() string {
	from, to := "-", "-"
	if !w.From.IsZero() {
		from = w.From.Format("2006-01-02")
	}
	if !w.To.IsZero() {
		to = w.To.Format("2006-01-02")
	}
	return string(w.Kind) + ":" + from + ":" + to
}

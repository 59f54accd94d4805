package core

import "time"

// FrameDelta returns the seconds elapsed between two frames, clamped to [0, maxDT].
// The first frame of a session has no predecessor and uses fallback.
func FrameDelta(prev, now time.Time, fallback, maxDT float64) float64 {
	dt := fallback
	if !prev.IsZero() {
		dt = now.Sub(prev).Seconds()
	}
	if dt < 0 {
		return 0
	}
	if dt > maxDT {
		return maxDT
	}
	return dt
}

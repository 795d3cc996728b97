package domain

import (
	"fmt"
	"time"
)

// TimeInterval is a half-open [Start, End) window on the UTC timeline.
// Instants are always compared in absolute time; IST is used only when a
// window is formatted for people.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval normalizes both instants to UTC.
func NewTimeInterval(start, end time.Time) TimeInterval {
	return TimeInterval{Start: start.UTC(), End: end.UTC()}
}

// IsValid reports whether the interval is non-empty (Start strictly before End).
func (i TimeInterval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Duration returns End - Start.
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether two half-open intervals share any instant.
// A window ending exactly when the other starts does not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Shift returns the interval moved forward by d.
func (i TimeInterval) Shift(d time.Duration) TimeInterval {
	return TimeInterval{Start: i.Start.Add(d), End: i.End.Add(d)}
}

// String formats the window in IST for human-facing messages.
func (i TimeInterval) String() string {
	const layout = "2006-01-02 15:04 MST"
	return fmt.Sprintf("[%s, %s)", i.Start.In(LocationIST).Format(layout), i.End.In(LocationIST).Format(layout))
}

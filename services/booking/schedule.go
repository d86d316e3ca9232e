package booking

import (
	"fmt"
	"time"
)

const dateTimeLayout = "2006-01-02 15:04:05"

// Interval is the half-open time range [Start, End) occupied by a booking.
type Interval struct {
	Start time.Time
	End   time.Time
}

// ComputeInterval combines a calendar date ("2006-01-02") and a time of day
// ("15:04" or "15:04:05") into an absolute interval of the given duration.
// Date and time are interpreted in the server's local timezone; no timezone
// conversion is performed. A parse failure is a client input error.
func ComputeInterval(date, timeOfDay string, durationMinutes int) (Interval, error) {
	if durationMinutes <= 0 {
		return Interval{}, fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}
	if len(timeOfDay) == 5 {
		timeOfDay += ":00"
	}
	start, err := time.ParseInLocation(dateTimeLayout, date+" "+timeOfDay, time.Local)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid date or time %q %q: %w", date, timeOfDay, err)
	}
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// Overlaps reports whether two half-open intervals intersect. A booking
// ending exactly when another starts does not overlap it.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// HasConflict reports whether the candidate interval intersects any of the
// existing intervals. The existing set must already be filtered to the same
// calendar date and to statuses that block the slot.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

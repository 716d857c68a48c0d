package reservation

import "time"

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Overlaps reports whether an existing reservation conflicts with a
// candidate range. The rule is the three-clause disjunction used by the
// conflict query:
//
//	(a) the existing start falls within the candidate range, or
//	(b) the existing end falls within the candidate range, or
//	(c) the existing range fully contains the candidate.
//
// Bounds are inclusive on both sides, so a reservation ending exactly on
// the candidate's start day (or starting on its end day) conflicts.
func Overlaps(existing, candidate DateRange) bool {
	if candidate.Contains(existing.Start) {
		return true
	}
	if candidate.Contains(existing.End) {
		return true
	}
	return !existing.Start.After(candidate.Start) && !existing.End.Before(candidate.End)
}

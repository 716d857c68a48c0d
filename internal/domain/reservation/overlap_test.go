package reservation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rahhal-app/tourism-api/internal/domain/reservation"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func rng(start, end string) reservation.DateRange {
	return reservation.DateRange{Start: day(start), End: day(end)}
}

func TestOverlaps(t *testing.T) {
	existing := rng("2024-06-01", "2024-06-05")

	cases := []struct {
		name      string
		candidate reservation.DateRange
		want      bool
	}{
		{"disjoint before", rng("2024-05-20", "2024-05-25"), false},
		{"disjoint after", rng("2024-06-06", "2024-06-10"), false},
		{"partial overlap at end", rng("2024-06-04", "2024-06-08"), true},
		{"partial overlap at start", rng("2024-05-28", "2024-06-02"), true},
		{"candidate contains existing", rng("2024-05-28", "2024-06-10"), true},
		{"existing contains candidate", rng("2024-06-02", "2024-06-04"), true},
		{"identical", rng("2024-06-01", "2024-06-05"), true},

		// Inclusive bounds: touching endpoints conflict.
		{"candidate starts on existing end", rng("2024-06-05", "2024-06-08"), true},
		{"candidate ends on existing start", rng("2024-05-28", "2024-06-01"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reservation.Overlaps(existing, tc.candidate))
		})
	}
}

func TestOverlapsIsSymmetricForConflicts(t *testing.T) {
	// Whenever two ranges would both be accepted, neither may overlap the
	// other, whichever one was booked first.
	a := rng("2024-06-01", "2024-06-05")
	b := rng("2024-06-06", "2024-06-10")

	assert.False(t, reservation.Overlaps(a, b))
	assert.False(t, reservation.Overlaps(b, a))

	c := rng("2024-06-05", "2024-06-07")
	assert.True(t, reservation.Overlaps(a, c))
	assert.True(t, reservation.Overlaps(c, a))
}

package query

import (
	"time"

	"github.com/go-softwarelab/common/pkg/seq"
)

// Sentinel times that mark an unset value. They are skipped by [MinTime] and
// [MaxTime].
var (
	MinValue = time.Time{}
	MaxValue = time.Date(9999, time.December, 31, 23, 59, 59, 999999900, time.UTC)
)

// MinTime returns the earliest time in source, ignoring [MinValue] and
// [MaxValue]. It returns [MinValue] when no other time is present.
func MinTime(source []time.Time) time.Time {
	return extreme(source, time.Time.Before)
}

// MaxTime returns the latest time in source, ignoring [MinValue] and
// [MaxValue]. It returns [MinValue] when no other time is present.
func MaxTime(source []time.Time) time.Time {
	return extreme(source, time.Time.After)
}

func extreme(source []time.Time, better func(a, b time.Time) bool) time.Time {
	return seq.Fold(seq.Where(seq.FromSlice(source), isSet), func(agg, t time.Time) time.Time {
		if better(t, agg) {
			return t
		}
		return agg
	}).OrElse(MinValue)
}

func isSet(t time.Time) bool {
	return !t.IsZero() && !t.Equal(MaxValue)
}

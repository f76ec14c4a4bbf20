// Package dateutil works with timestamps at millisecond precision: capturing
// the current time, comparing timestamps and picking the latest of a set.
package dateutil

import (
	"sort"
	"time"

	"github.com/k-yomo/dateutil/pkg/clock"
	"github.com/k-yomo/dateutil/pkg/timeutil"
	"github.com/pkg/errors"
)

var (
	ErrEmptyInput          = errors.New("no timestamps given")
	ErrClockUnavailable    = errors.New("clock reading unavailable")
	ErrInvalidMicroseconds = errors.New("microseconds out of range [0, 999999]")
	ErrInvalidEpoch        = errors.New("invalid epoch timestamp")
)

// NowWithMilliseconds reads c once and returns the reading rounded to
// ten-thousandths of a second, in loc. A nil loc means time.Local.
func NowWithMilliseconds(c clock.Clock, loc *time.Location) (Timestamp, error) {
	if c == nil {
		return Timestamp{}, errors.Wrap(ErrClockUnavailable, "nil clock")
	}
	reading := c.Now()
	if reading.IsZero() {
		return Timestamp{}, errors.Wrap(ErrClockUnavailable, "zero time")
	}
	rounded := timeutil.RoundToPrecision(reading, timeutil.SubsecondDigits)
	return FromTime(rounded).In(loc), nil
}

// MustNowWithMilliseconds is like NowWithMilliseconds but panics if the clock
// cannot be read.
func MustNowWithMilliseconds(c clock.Clock, loc *time.Location) Timestamp {
	ts, err := NowWithMilliseconds(c, loc)
	if err != nil {
		panic(err)
	}
	return ts
}

// Now returns the current process time with millisecond precision in the
// process default zone.
func Now() Timestamp {
	return MustNowWithMilliseconds(clock.System, time.Local)
}

// Max returns the latest of ts. The first one wins among equal timestamps.
func Max(ts ...Timestamp) (Timestamp, error) {
	if len(ts) == 0 {
		return Timestamp{}, ErrEmptyInput
	}
	latest := ts[0]
	for _, t := range ts[1:] {
		if GreaterThan(t, latest) {
			latest = t
		}
	}
	return latest, nil
}

// MakeImmutable returns v itself when it already is a Timestamp, otherwise a
// new Timestamp at the same instant and zone. v must not be a nil pointer.
func MakeImmutable(v Instant) Timestamp {
	if ts, ok := v.(Timestamp); ok {
		return ts
	}
	return Timestamp{
		sec:  v.Unix(),
		usec: micros(v),
		loc:  v.Location(),
	}
}

// Compare returns -1, 0 or 1 as left is before, equal to or after right.
// Whole seconds are compared first, then microseconds.
func Compare(left, right Instant) int {
	if ls, rs := left.Unix(), right.Unix(); ls != rs {
		return cmpInt64(ls, rs)
	}
	return cmpInt64(int64(micros(left)), int64(micros(right)))
}

func GreaterThan(left, right Instant) bool {
	return Compare(left, right) > 0
}

func GreaterThanOrEqual(left, right Instant) bool {
	return Compare(left, right) != -1
}

func LessThan(left, right Instant) bool {
	return Compare(left, right) < 0
}

func LessThanOrEqual(left, right Instant) bool {
	return Compare(left, right) != 1
}

// Sort orders ts from earliest to latest, keeping equal ones in place.
func Sort(ts []Timestamp) {
	sort.SliceStable(ts, func(i, j int) bool {
		return LessThan(ts[i], ts[j])
	})
}

func micros(v Instant) int {
	return v.Nanosecond() / int(time.Microsecond)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

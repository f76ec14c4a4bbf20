package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/k-yomo/dateutil/pkg/timeutil"
	"github.com/pkg/errors"
)

const maxMicrosecond = 999_999

// Instant is anything that points at an absolute instant in a zone.
// time.Time, *time.Time and Timestamp implement it.
type Instant interface {
	Unix() int64
	Nanosecond() int
	Location() *time.Location
}

// Timestamp is an immutable instant with microsecond resolution.
// The zone is only used for display and never takes part in ordering.
type Timestamp struct {
	sec  int64
	usec int
	loc  *time.Location
}

var _ Instant = Timestamp{}

// NewTimestamp returns the Timestamp at sec seconds and usec microseconds
// since the Unix epoch. A nil loc means time.Local.
func NewTimestamp(sec int64, usec int, loc *time.Location) (Timestamp, error) {
	if usec < 0 || usec > maxMicrosecond {
		return Timestamp{}, errors.Wrapf(ErrInvalidMicroseconds, "%d", usec)
	}
	return Timestamp{sec: sec, usec: usec, loc: locationOrLocal(loc)}, nil
}

// FromTime converts t, dropping anything below the microsecond.
func FromTime(t time.Time) Timestamp {
	return Timestamp{
		sec:  t.Unix(),
		usec: t.Nanosecond() / int(time.Microsecond),
		loc:  t.Location(),
	}
}

// ParseEpoch reads the "U.u" form: Unix seconds, optionally followed by a dot
// and up to 6 fraction digits ("1480355498.9880", "1417011228").
func ParseEpoch(s string, loc *time.Location) (Timestamp, error) {
	secStr, fracStr, hasFrac := strings.Cut(strings.TrimSpace(s), ".")
	sec, err := strconv.ParseInt(secStr, 10, 64)
	if err != nil {
		return Timestamp{}, errors.Wrapf(ErrInvalidEpoch, "%q", s)
	}
	if !hasFrac {
		return NewTimestamp(sec, 0, loc)
	}
	if fracStr == "" || len(fracStr) > 6 || strings.IndexFunc(fracStr, isNotDigit) >= 0 {
		return Timestamp{}, errors.Wrapf(ErrInvalidEpoch, "%q", s)
	}
	usec, _ := strconv.Atoi(fracStr + strings.Repeat("0", 6-len(fracStr)))
	return NewTimestamp(sec, usec, loc)
}

func isNotDigit(r rune) bool {
	return r < '0' || r > '9'
}

func (t Timestamp) Unix() int64 {
	return t.sec
}

func (t Timestamp) Microsecond() int {
	return t.usec
}

func (t Timestamp) Nanosecond() int {
	return t.usec * int(time.Microsecond)
}

func (t Timestamp) Location() *time.Location {
	return locationOrLocal(t.loc)
}

// Time returns t as a time.Time in t's zone.
func (t Timestamp) Time() time.Time {
	return time.Unix(t.sec, int64(t.Nanosecond())).In(t.Location())
}

// In returns the same instant displayed in loc.
func (t Timestamp) In(loc *time.Location) Timestamp {
	t.loc = locationOrLocal(loc)
	return t
}

// IsZero reports whether t is the Unix epoch (1970-01-01T00:00:00Z), which is
// also the zero value. It differs from time.Time.IsZero (year 1).
func (t Timestamp) IsZero() bool {
	return t.sec == 0 && t.usec == 0
}

// Equal reports whether t and u are the same instant, whatever their zones.
func (t Timestamp) Equal(u Timestamp) bool {
	return Compare(t, u) == 0
}

// Epoch renders t as "U.u", seconds and 6 microsecond digits.
func (t Timestamp) Epoch() string {
	return fmt.Sprintf("%d.%06d", t.sec, t.usec)
}

// Format renders t in its zone with a time.Time layout such as
// timeutil.RFC3339Milli.
func (t Timestamp) Format(layout string) string {
	return t.Time().Format(layout)
}

func (t Timestamp) String() string {
	return t.Format(timeutil.RFC3339Micro)
}

func locationOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

package clock

import (
	"time"

	"github.com/pkg/errors"
)

//go:generate mockgen -source=$GOFILE -destination=../../mocks/pkg/$GOPACKAGE/$GOFILE -package=mock_$GOPACKAGE

// Clock is a source of the current instant.
type Clock interface {
	Now() time.Time
}

// Now is the process clock. Tests replace it with MockTime.
var Now = time.Now

// Func adapts a function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// System reads the process clock through Now.
var System Clock = Func(func() time.Time {
	return Now()
})

// Fixed returns a Clock which always reports tm.
func Fixed(tm time.Time) Clock {
	return Func(func() time.Time {
		return tm
	})
}

func LoadLocation(timeZone string) (*time.Location, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", timeZone)
	}
	return loc, nil
}

// SetTimeZone sets the process default time zone (time.Local).
func SetTimeZone(timeZone string) error {
	loc, err := LoadLocation(timeZone)
	if err != nil {
		return err
	}
	time.Local = loc
	return nil
}

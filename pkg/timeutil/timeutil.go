package timeutil

import (
	"math"
	"time"
)

const (
	RFC3339Milli = "2006-01-02T15:04:05.999Z07:00"
	RFC3339Micro = "2006-01-02T15:04:05.000000Z07:00"
)

// SubsecondDigits is the number of decimal digits kept below the second
// when capturing the current time.
const SubsecondDigits = 4

// PrecisionUnit returns the duration of one unit of the given number of
// sub-second decimal digits (e.g. 3 => 1ms, 4 => 100µs).
// digits is clamped to [0, 9].
func PrecisionUnit(digits int) time.Duration {
	if digits < 0 {
		digits = 0
	}
	if digits > 9 {
		digits = 9
	}
	return time.Duration(math.Pow10(9 - digits))
}

// RoundToPrecision rounds t to the given number of sub-second decimal digits.
// Halfway values round up, which may carry into the next second.
func RoundToPrecision(t time.Time, digits int) time.Time {
	return t.Round(PrecisionUnit(digits))
}

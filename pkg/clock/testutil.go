package clock

import (
	"testing"
	"time"
)

func MockTime(t *testing.T, tm time.Time) {
	t.Helper()
	orig := Now
	Now = func() time.Time {
		return tm
	}
	t.Cleanup(func() {
		Now = orig
	})
}

package breach

import "time"

// Clock abstracts the time source so tests can drive phase transitions
// deterministically instead of sleeping through them.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

package clock

import (
	"time"

	"github.com/renato0307/tempo/internal/ports"
)

// SystemClock reads the wall clock
type SystemClock struct{}

// Verify interface compliance at compile time
var _ ports.Clock = SystemClock{}

// Now implements ports.Clock
func (SystemClock) Now() time.Time {
	return time.Now()
}

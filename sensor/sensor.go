package sensor

import (
	"math"
	"time"
)

// A Driver samples a temperature/humidity device once. Implementations are
// expected to block and to apply their own internal retry policy - a returned
// error means the device produced no usable data for this attempt.
type Driver interface {
	Read() (humidity float64, temperature float64, err error)
}

// Reading is a single sample from a sensor. All sensors polled in the same
// cycle share one timestamp.
type Reading struct {
	Timestamp   time.Time
	Humidity    float64
	Temperature float64
	Pin         int
}

// Fahrenheit converts the Celsius temperature of the reading.
func (r Reading) Fahrenheit() float64 {
	return r.Temperature*9.0/5.0 + 32.0
}

// Round1 rounds to one decimal, the precision used for both the local log
// and the uploaded rows.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package sensor

import (
	"testing"
	"time"
)

func TestFahrenheit(t *testing.T) {
	tests := []struct {
		celsius  float64
		expected float64
	}{
		{0.0, 32.0},
		{100.0, 212.0},
		{21.4, 70.52},
		{-40.0, -40.0},
	}

	for _, test := range tests {
		r := Reading{
			Timestamp:   time.Now(),
			Humidity:    50.0,
			Temperature: test.celsius,
			Pin:         4,
		}

		if fahrenheit := r.Fahrenheit(); fahrenheit != test.expected {
			t.Errorf("Incorrect Fahrenheit conversion for %v°C - expected:%v, got:%v", test.celsius, test.expected, fahrenheit)
		}
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		value    float64
		expected float64
	}{
		{70.52, 70.5},
		{55.25, 55.3},
		{21.0, 21.0},
		{-0.06, -0.1},
	}

	for _, test := range tests {
		if rounded := Round1(test.value); rounded != test.expected {
			t.Errorf("Incorrect rounding for %v - expected:%v, got:%v", test.value, test.expected, rounded)
		}
	}
}

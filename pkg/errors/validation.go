package errors

import (
	"math"
	"strconv"
	"strings"
)

// ValidateThreshold checks that t lies in (0, 1].
func ValidateThreshold(t float64) error {
	if math.IsNaN(t) || t <= 0 || t > 1 {
		return InvalidInput("threshold", "must be in (0, 1], got %v", t)
	}
	return nil
}

// MaxSize bounds the plot edge length in pixels.
const MaxSize = 10000

// ValidateSize checks that size is a finite edge length in (0, MaxSize].
func ValidateSize(size float64) error {
	if math.IsNaN(size) || size <= 0 || size > MaxSize {
		return InvalidInput("size", "must be in (0, %d] pixels, got %v", MaxSize, size)
	}
	return nil
}

// ValidateAngles checks that at least one angle is present.
// Angles outside [0, 180] are accepted; they compute through the general
// projection formula.
func ValidateAngles(angles []int) error {
	if len(angles) == 0 {
		return InvalidInput("angles", "at least one angle is required")
	}
	return nil
}

// ValidateCoordinate checks that v is a finite number.
func ValidateCoordinate(arg string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return InvalidInput(arg, "coordinate must be a finite number, got %v", v)
	}
	return nil
}

// ParseFloat parses s as a finite float64, attributing failures to arg.
func ParseFloat(arg, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, InvalidInput(arg, "not a number: %q", s)
	}
	if err := ValidateCoordinate(arg, v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseAngles parses a comma-separated list of integer degrees such as "0,45,90".
// Empty items are rejected; an empty string yields an empty list.
func ParseAngles(arg, s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	angles := make([]int, 0, len(parts))
	for _, p := range parts {
		a, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, InvalidInput(arg, "not an integer angle: %q", p)
		}
		angles = append(angles, a)
	}
	return angles, nil
}

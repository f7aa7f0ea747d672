package types

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// Score is an integer rating on the closed scale [MinScore, MaxScore].
type Score int

const (
	MinScore Score = 1
	MaxScore Score = 10

	// DefaultScore is the value a fresh draft starts with for every numeric field.
	DefaultScore Score = 5
)

// Validate checks if the Score is within the scale
func (s Score) Validate() error {
	if s < MinScore || s > MaxScore {
		return goerr.New("score must be between 1 and 10", goerr.V("score", int(s)))
	}
	return nil
}

// Clamp returns the score limited to [MinScore, MaxScore]
func (s Score) Clamp() Score {
	switch {
	case s < MinScore:
		return MinScore
	case s > MaxScore:
		return MaxScore
	default:
		return s
	}
}

// Int returns the score as a plain int
func (s Score) Int() int {
	return int(s)
}

// String returns the decimal representation of the score
func (s Score) String() string {
	return strconv.Itoa(int(s))
}

package types

import "github.com/m-mizutani/goerr/v2"

// Level is the three-step category derived from a Score.
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// Levels returns all levels in display order (High first)
func Levels() []Level {
	return []Level{LevelHigh, LevelMedium, LevelLow}
}

// Validate checks if the Level is one of the known values
func (l Level) Validate() error {
	switch l {
	case LevelHigh, LevelMedium, LevelLow:
		return nil
	default:
		return goerr.New("unknown level", goerr.V("level", string(l)))
	}
}

// Index returns the grid position of the level: High=0, Medium=1, Low=2.
// It returns -1 for an unknown level.
func (l Level) Index() int {
	switch l {
	case LevelHigh:
		return 0
	case LevelMedium:
		return 1
	case LevelLow:
		return 2
	default:
		return -1
	}
}

// String returns the string representation of Level
func (l Level) String() string {
	return string(l)
}

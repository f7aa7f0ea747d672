package model

import "github.com/secmon-lab/aimatrix/pkg/domain/types"

// Quadrant binds a grid cell to its display label and styling token.
type Quadrant struct {
	Cell  types.CellID
	Row   int
	Col   int
	Label string
	Token string
}

var quadrants = []Quadrant{
	{Cell: "0-0", Row: 0, Col: 0, Label: "1. Quick Wins / Must-Dos", Token: "green"},
	{Cell: "0-1", Row: 0, Col: 1, Label: "2. Strategic Investments", Token: "blue"},
	{Cell: "0-2", Row: 0, Col: 2, Label: "3. Long-Term Bets", Token: "purple"},
	{Cell: "1-0", Row: 1, Col: 0, Label: "4. Good Candidates", Token: "teal"},
	{Cell: "1-1", Row: 1, Col: 1, Label: "5. Evaluate Further", Token: "orange"},
	{Cell: "1-2", Row: 1, Col: 2, Label: "6. Reconsider / Park", Token: "red"},
	{Cell: "2-0", Row: 2, Col: 0, Label: "7. Low Priority (Easier)", Token: "gray-light"},
	{Cell: "2-1", Row: 2, Col: 1, Label: "8. Low Priority (Moderate)", Token: "gray"},
	{Cell: "2-2", Row: 2, Col: 2, Label: "9. Avoid / Sunset", Token: "gray-dark"},
}

// Quadrants returns the nine quadrants in row-major order
func Quadrants() []Quadrant {
	out := make([]Quadrant, len(quadrants))
	copy(out, quadrants)
	return out
}

// LookupQuadrant returns the quadrant bound to a cell
func LookupQuadrant(cell types.CellID) (Quadrant, bool) {
	for _, q := range quadrants {
		if q.Cell == cell {
			return q, true
		}
	}
	return Quadrant{}, false
}

// RiskToken returns the styling token for a risk level
func RiskToken(level types.Level) string {
	switch level {
	case types.LevelHigh:
		return "red"
	case types.LevelMedium:
		return "orange"
	case types.LevelLow:
		return "green"
	default:
		return "gray"
	}
}

// Legend axes
const (
	AxisImpact      = "Impact"
	AxisFeasibility = "Feasibility"
	AxisRisk        = "Risk"
)

var levelDescriptions = map[string]map[types.Level]string{
	AxisImpact: {
		types.LevelHigh:   "Significant contribution to strategic objectives.",
		types.LevelMedium: "Noticeable but not transformative benefits.",
		types.LevelLow:    "Minor improvements, less alignment with strategy.",
	},
	AxisFeasibility: {
		types.LevelHigh:   "Data ready, expertise exists, low complexity.",
		types.LevelMedium: "Some data/effort needed, moderate complexity.",
		types.LevelLow:    "Significant data gaps, high complexity, rare expertise.",
	},
	AxisRisk: {
		types.LevelLow:    "Minimal potential downsides.",
		types.LevelMedium: "Manageable risks, require attention.",
		types.LevelHigh:   "Significant potential downsides, careful consideration.",
	},
}

// LevelDescription explains what a level means on one of the legend axes.
// It returns "" for an unknown axis or level.
func LevelDescription(axis string, level types.Level) string {
	return levelDescriptions[axis][level]
}

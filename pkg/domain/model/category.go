package model

import "github.com/secmon-lab/aimatrix/pkg/domain/types"

// ScoreToCategory maps an impact or feasibility score to a level:
// High for 7 and above, Medium for 4..6, Low for 3 and below.
func ScoreToCategory(score types.Score) types.Level {
	switch {
	case score >= 7:
		return types.LevelHigh
	case score >= 4:
		return types.LevelMedium
	default:
		return types.LevelLow
	}
}

// RiskScoreToCategory maps an overall risk score to a level:
// Low for 3 and below, Medium for 4..7, High for 8 and above.
// 7 is Medium here but High in ScoreToCategory.
func RiskScoreToCategory(score types.Score) types.Level {
	switch {
	case score >= 8:
		return types.LevelHigh
	case score >= 4:
		return types.LevelMedium
	default:
		return types.LevelLow
	}
}

// CellOf returns the grid cell for an impact score (row) and a feasibility score (column)
func CellOf(impact, feasibility types.Score) types.CellID {
	return types.NewCellID(ScoreToCategory(impact), ScoreToCategory(feasibility))
}

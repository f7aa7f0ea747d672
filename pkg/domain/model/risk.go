package model

import (
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
)

// Weights of the sub-scores feeding the overall risk, in tenths.
const (
	ModelBiasRiskWeight       = 4
	CostVsRoiAssessmentWeight = 3
	TechnicalComplexityWeight = 3
)

// CalculateOverallRisk computes round(0.4*bias + 0.3*roi + 0.3*complexity),
// halves rounding away from zero, and clamps the result to the score scale.
// The sum is kept in whole tenths so that .5 cases round exactly. Inputs are
// not range checked; only the output is clamped.
func CalculateOverallRisk(bias, roi, complexity types.Score) types.Score {
	tenths := ModelBiasRiskWeight*int(bias) +
		CostVsRoiAssessmentWeight*int(roi) +
		TechnicalComplexityWeight*int(complexity)
	if tenths < 0 {
		return types.Score(-((-tenths + 5) / 10)).Clamp()
	}
	return types.Score((tenths + 5) / 10).Clamp()
}

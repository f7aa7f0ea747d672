package model

import "github.com/secmon-lab/aimatrix/pkg/domain/types"

// Form field keys of the non-numeric attributes
const (
	FieldName              = "name"
	FieldDescription       = "description"
	FieldQuickWinPotential = "quickWinPotential"
	FieldTechnologyType    = "technologyType"
)

// ScoreField describes one numeric attribute: its form key, its display
// label and where it lives in Scores.
type ScoreField struct {
	Key   string
	Label string
	ref   func(*Scores) *types.Score
}

// Get reads the attribute from s
func (f ScoreField) Get(s Scores) types.Score {
	return *f.ref(&s)
}

// Set writes the attribute into s
func (f ScoreField) Set(s *Scores, v types.Score) {
	*f.ref(s) = v
}

var scoreFields = []ScoreField{
	{Key: "overallBusinessImpact", Label: "Overall Business Impact", ref: func(s *Scores) *types.Score { return &s.OverallBusinessImpact }},
	{Key: "overallFeasibilityReadiness", Label: "Overall Feasibility / Readiness", ref: func(s *Scores) *types.Score { return &s.OverallFeasibilityReadiness }},
	{Key: "costSavingsPotential", Label: "Cost Savings Potential", ref: func(s *Scores) *types.Score { return &s.CostSavingsPotential }},
	{Key: "revenuePotential", Label: "Revenue Potential", ref: func(s *Scores) *types.Score { return &s.RevenuePotential }},
	{Key: "efficiencyImprovement", Label: "Efficiency Improvement", ref: func(s *Scores) *types.Score { return &s.EfficiencyImprovement }},
	{Key: "experienceImprovement", Label: "Experience Improvement", ref: func(s *Scores) *types.Score { return &s.ExperienceImprovement }},
	{Key: "strategicAlignment", Label: "Strategic Alignment", ref: func(s *Scores) *types.Score { return &s.StrategicAlignment }},
	{Key: "operationalAlignment", Label: "Operational Alignment", ref: func(s *Scores) *types.Score { return &s.OperationalAlignment }},
	{Key: "dataQuality", Label: "Data Quality", ref: func(s *Scores) *types.Score { return &s.DataQuality }},
	{Key: "technicalComplexity", Label: "Technical Complexity", ref: func(s *Scores) *types.Score { return &s.TechnicalComplexity }},
	{Key: "internalExpertise", Label: "Internal Expertise Availability", ref: func(s *Scores) *types.Score { return &s.InternalExpertise }},
	{Key: "userAdoptionLikelihood", Label: "User Adoption Likelihood", ref: func(s *Scores) *types.Score { return &s.UserAdoptionLikelihood }},
	{Key: "modelBiasRisk", Label: "Model Bias Risk", ref: func(s *Scores) *types.Score { return &s.ModelBiasRisk }},
	{Key: "costVsRoiAssessment", Label: "Cost vs ROI Assessment", ref: func(s *Scores) *types.Score { return &s.CostVsRoiAssessment }},
}

// ScoreFields returns the numeric attributes in form order
func ScoreFields() []ScoreField {
	out := make([]ScoreField, len(scoreFields))
	copy(out, scoreFields)
	return out
}

// LookupScoreField finds a numeric attribute by its form key
func LookupScoreField(key string) (ScoreField, bool) {
	for _, f := range scoreFields {
		if f.Key == key {
			return f, true
		}
	}
	return ScoreField{}, false
}

// FieldLabel returns the display label of any form field key
func FieldLabel(key string) string {
	switch key {
	case FieldName:
		return "Name"
	case FieldDescription:
		return "Description"
	case FieldQuickWinPotential:
		return "Quick Win Potential"
	case FieldTechnologyType:
		return "Technology Type"
	}
	if f, ok := LookupScoreField(key); ok {
		return f.Label
	}
	return key
}

// FieldKeys returns every form field key in form order
func FieldKeys() []string {
	keys := []string{FieldName, FieldDescription}
	for _, f := range scoreFields {
		keys = append(keys, f.Key)
	}
	return append(keys, FieldQuickWinPotential, FieldTechnologyType)
}

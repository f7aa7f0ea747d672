package model

import (
	"time"

	"github.com/secmon-lab/aimatrix/pkg/domain/types"
)

// Scores holds the fourteen scored attributes of an opportunity.
type Scores struct {
	OverallBusinessImpact       types.Score
	OverallFeasibilityReadiness types.Score
	CostSavingsPotential        types.Score
	RevenuePotential            types.Score
	EfficiencyImprovement       types.Score
	ExperienceImprovement       types.Score
	StrategicAlignment          types.Score
	OperationalAlignment        types.Score
	DataQuality                 types.Score
	TechnicalComplexity         types.Score
	InternalExpertise           types.Score
	UserAdoptionLikelihood      types.Score
	ModelBiasRisk               types.Score
	CostVsRoiAssessment         types.Score
}

// DefaultScores returns Scores with every attribute set to types.DefaultScore
func DefaultScores() Scores {
	var s Scores
	for _, f := range scoreFields {
		*f.ref(&s) = types.DefaultScore
	}
	return s
}

// Clamp returns a copy with every attribute limited to the score scale
func (s Scores) Clamp() Scores {
	for _, f := range scoreFields {
		p := f.ref(&s)
		*p = p.Clamp()
	}
	return s
}

// Opportunity is a scored AI-adoption candidate. It is never modified after creation.
type Opportunity struct {
	ID          int64
	Name        string
	Description string
	Scores
	QuickWinPotential bool
	TechnologyType    types.TechnologyType

	// OverallRisk is derived by CalculateOverallRisk when the record is built
	OverallRisk types.Score
	CreatedAt   time.Time
}

// OpportunityInput carries everything needed to build an Opportunity except
// the identifier and the derived risk.
type OpportunityInput struct {
	Name              string
	Description       string
	Scores            Scores
	QuickWinPotential bool
	TechnologyType    types.TechnologyType
}

// Validate checks the non-numeric attributes of the input. Scores are not
// rejected when out of range; NewOpportunity clamps them.
func (in *OpportunityInput) Validate() error {
	verr := &ValidationError{}
	if in.Name == "" {
		verr.Add(FieldName, "name is required")
	}
	if err := in.TechnologyType.Validate(); err != nil {
		verr.Add(FieldTechnologyType, "unknown technology type")
	}
	return verr.OrNil()
}

// NewOpportunity builds an immutable record with the given ID, clamping every
// score into range and computing the overall risk.
func NewOpportunity(id int64, in OpportunityInput) *Opportunity {
	scores := in.Scores.Clamp()
	return &Opportunity{
		ID:                id,
		Name:              in.Name,
		Description:       in.Description,
		Scores:            scores,
		QuickWinPotential: in.QuickWinPotential,
		TechnologyType:    in.TechnologyType,
		OverallRisk:       CalculateOverallRisk(scores.ModelBiasRisk, scores.CostVsRoiAssessment, scores.TechnicalComplexity),
	}
}

// Copy returns a detached copy of the record
func (o *Opportunity) Copy() *Opportunity {
	c := *o
	return &c
}

// ImpactLevel categorizes the overall business impact
func (o *Opportunity) ImpactLevel() types.Level {
	return ScoreToCategory(o.OverallBusinessImpact)
}

// FeasibilityLevel categorizes the overall feasibility/readiness
func (o *Opportunity) FeasibilityLevel() types.Level {
	return ScoreToCategory(o.OverallFeasibilityReadiness)
}

// RiskLevel categorizes the derived overall risk
func (o *Opportunity) RiskLevel() types.Level {
	return RiskScoreToCategory(o.OverallRisk)
}

// Cell returns the grid cell the opportunity belongs to
func (o *Opportunity) Cell() types.CellID {
	return CellOf(o.OverallBusinessImpact, o.OverallFeasibilityReadiness)
}

package model

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
)

// Draft is the in-progress form state of a not-yet-created opportunity.
// Numeric fields are kept as the raw text the user typed and are parsed on Build.
type Draft struct {
	Name              string
	Description       string
	Scores            map[string]string
	QuickWinPotential bool
	TechnologyType    string
}

// NewDraft returns a draft seeded with the form defaults
func NewDraft() *Draft {
	d := &Draft{
		Scores:         make(map[string]string, len(scoreFields)),
		TechnologyType: types.DefaultTechnologyType.String(),
	}
	for _, f := range scoreFields {
		d.Scores[f.Key] = types.DefaultScore.String()
	}
	return d
}

// Set applies a single field change. Checkbox values are coerced to bool,
// every other value is stored as text.
func (d *Draft) Set(field, value string) error {
	switch field {
	case FieldName:
		d.Name = value
	case FieldDescription:
		d.Description = value
	case FieldQuickWinPotential:
		d.QuickWinPotential = ParseCheckbox(value)
	case FieldTechnologyType:
		d.TechnologyType = value
	default:
		if _, ok := LookupScoreField(field); !ok {
			return goerr.Wrap(ErrUnknownField, "cannot set draft field", goerr.V(FieldKey, field))
		}
		d.Scores[field] = value
	}
	return nil
}

// Get returns the current text of a field
func (d *Draft) Get(field string) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldDescription:
		return d.Description
	case FieldQuickWinPotential:
		return strconv.FormatBool(d.QuickWinPotential)
	case FieldTechnologyType:
		return d.TechnologyType
	default:
		return d.Scores[field]
	}
}

// Clone returns a deep copy of the draft
func (d *Draft) Clone() *Draft {
	c := *d
	c.Scores = make(map[string]string, len(d.Scores))
	for k, v := range d.Scores {
		c.Scores[k] = v
	}
	return &c
}

// Build coerces every numeric field to an integer and returns the resulting
// input. Non-numeric text, an empty name or an unknown technology type are
// reported together in a *ValidationError.
func (d *Draft) Build() (*OpportunityInput, error) {
	verr := &ValidationError{}
	in := &OpportunityInput{
		Name:              strings.TrimSpace(d.Name),
		Description:       d.Description,
		QuickWinPotential: d.QuickWinPotential,
		TechnologyType:    types.TechnologyType(d.TechnologyType),
	}

	for _, f := range scoreFields {
		n, err := strconv.Atoi(strings.TrimSpace(d.Scores[f.Key]))
		if err != nil {
			verr.Add(f.Key, "must be a whole number between 1 and 10")
			continue
		}
		f.Set(&in.Scores, types.Score(n))
	}

	if err := in.Validate(); err != nil {
		if fe, ok := err.(*ValidationError); ok {
			verr.Fields = append(verr.Fields, fe.Fields...)
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return in, nil
}

// ParseCheckbox interprets the value a checkbox control submits
func ParseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes", "checked":
		return true
	default:
		return false
	}
}

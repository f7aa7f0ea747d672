package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
)

// FormState is the visibility of the creation form.
type FormState int

const (
	FormHidden FormState = iota
	FormVisible
)

func (s FormState) String() string {
	switch s {
	case FormHidden:
		return "hidden"
	case FormVisible:
		return "visible"
	default:
		return "unknown"
	}
}

type opportunityCreator interface {
	CreateOpportunity(ctx context.Context, input *model.OpportunityInput) (*model.Opportunity, error)
}

// Form is the two-state creation form controller holding the draft while visible.
type Form struct {
	state FormState
	draft *model.Draft
	errs  *model.ValidationError
}

func NewForm() *Form {
	return &Form{state: FormHidden}
}

func (f *Form) State() FormState {
	return f.state
}

func (f *Form) Visible() bool {
	return f.state == FormVisible
}

// Toggle flips visibility. Showing the form starts a fresh draft; hiding it
// discards the draft.
func (f *Form) Toggle() {
	if f.state == FormVisible {
		f.reset()
		return
	}
	f.state = FormVisible
	f.draft = model.NewDraft()
	f.errs = nil
}

// Change updates exactly one attribute of the draft
func (f *Form) Change(field, value string) error {
	if f.state != FormVisible {
		return goerr.Wrap(ErrFormHidden, "cannot change field", goerr.V(model.FieldKey, field))
	}
	if err := f.draft.Set(field, value); err != nil {
		return goerr.Wrap(err, "failed to change draft field")
	}
	return nil
}

// Submit coerces the draft, creates the opportunity and hides the form. On a
// validation failure the form stays visible with the draft and the field errors.
func (f *Form) Submit(ctx context.Context, creator opportunityCreator) (*model.Opportunity, error) {
	if f.state != FormVisible {
		return nil, goerr.Wrap(ErrFormHidden, "cannot submit")
	}

	input, err := f.draft.Build()
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			f.errs = verr
		}
		return nil, goerr.Wrap(err, "draft rejected")
	}

	created, err := creator.CreateOpportunity(ctx, input)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create opportunity from draft")
	}

	f.reset()
	return created, nil
}

// Cancel hides the form and discards the draft
func (f *Form) Cancel() {
	f.reset()
}

func (f *Form) reset() {
	f.state = FormHidden
	f.draft = nil
	f.errs = nil
}

// Draft returns a copy of the current draft, or nil while hidden
func (f *Form) Draft() *model.Draft {
	if f.draft == nil {
		return nil
	}
	return f.draft.Clone()
}

// Errors returns the field errors of the last rejected submission
func (f *Form) Errors() *model.ValidationError {
	return f.errs
}

// FormField is one input control of the form view.
type FormField struct {
	Key     string
	Label   string
	Kind    FieldKind
	Value   string
	Checked bool
	Error   string
}

// FieldKind selects the input control used for a field.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindTextarea FieldKind = "textarea"
	FieldKindNumber   FieldKind = "number"
	FieldKindCheckbox FieldKind = "checkbox"
	FieldKindSelect   FieldKind = "select"
)

// FormView is the render-ready state of a visible form.
type FormView struct {
	Fields          []FormField
	TechnologyTypes []types.TechnologyType
	MinScore        types.Score
	MaxScore        types.Score
	HasErrors       bool
}

// View returns the render-ready form, or nil while hidden
func (f *Form) View() *FormView {
	if f.state != FormVisible {
		return nil
	}

	v := &FormView{
		TechnologyTypes: types.TechnologyTypes(),
		MinScore:        types.MinScore,
		MaxScore:        types.MaxScore,
		HasErrors:       f.errs.OrNil() != nil,
	}

	add := func(key string, kind FieldKind) {
		v.Fields = append(v.Fields, FormField{
			Key:     key,
			Label:   model.FieldLabel(key),
			Kind:    kind,
			Value:   f.draft.Get(key),
			Checked: kind == FieldKindCheckbox && f.draft.QuickWinPotential,
			Error:   f.errs.Message(key),
		})
	}

	add(model.FieldName, FieldKindText)
	add(model.FieldDescription, FieldKindTextarea)
	for _, sf := range model.ScoreFields() {
		add(sf.Key, FieldKindNumber)
	}
	add(model.FieldQuickWinPotential, FieldKindCheckbox)
	add(model.FieldTechnologyType, FieldKindSelect)

	return v
}

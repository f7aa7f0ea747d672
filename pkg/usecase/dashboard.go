package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/utils/logging"
)

// Dashboard is the single top-level controller of an interactive session. It
// owns the creation form and the detail selection; every change goes through
// Apply so that events are handled one at a time.
type Dashboard struct {
	mu          sync.Mutex
	id          string
	opportunity *OpportunityUseCase
	form        *Form
	selected    int64
}

func NewDashboard(opportunity *OpportunityUseCase) *Dashboard {
	return &Dashboard{
		id:          uuid.Must(uuid.NewV7()).String(),
		opportunity: opportunity,
		form:        NewForm(),
	}
}

// ID returns the session identifier used to correlate log lines
func (d *Dashboard) ID() string {
	return d.id
}

// Event is a structured user interaction applied to the dashboard.
type Event interface {
	fmt.Stringer
	apply(ctx context.Context, d *Dashboard) error
}

// ToggleForm shows or hides the creation form.
type ToggleForm struct{}

// ChangeField updates one draft attribute.
type ChangeField struct {
	Field string
	Value string
}

// SubmitForm turns the draft into a new opportunity.
type SubmitForm struct{}

// CancelForm hides the form without touching the store.
type CancelForm struct{}

// SelectOpportunity opens the detail view of an opportunity.
type SelectOpportunity struct {
	ID int64
}

// ClearSelection closes the detail view.
type ClearSelection struct{}

func (ToggleForm) String() string { return "toggle_form" }
func (e ChangeField) String() string { return "change_field:" + e.Field }
func (SubmitForm) String() string { return "submit_form" }
func (CancelForm) String() string { return "cancel_form" }
func (e SelectOpportunity) String() string { return fmt.Sprintf("select:%d", e.ID) }
func (ClearSelection) String() string { return "clear_selection" }

func (ToggleForm) apply(ctx context.Context, d *Dashboard) error {
	d.form.Toggle()
	return nil
}

func (e ChangeField) apply(ctx context.Context, d *Dashboard) error {
	return d.form.Change(e.Field, e.Value)
}

func (SubmitForm) apply(ctx context.Context, d *Dashboard) error {
	_, err := d.form.Submit(ctx, d.opportunity)
	return err
}

func (CancelForm) apply(ctx context.Context, d *Dashboard) error {
	d.form.Cancel()
	return nil
}

func (e SelectOpportunity) apply(ctx context.Context, d *Dashboard) error {
	if _, err := d.opportunity.GetOpportunity(ctx, e.ID); err != nil {
		return err
	}
	d.selected = e.ID
	return nil
}

func (ClearSelection) apply(ctx context.Context, d *Dashboard) error {
	d.selected = 0
	return nil
}

// Apply handles events in order and stops at the first failure. Events
// applied before the failure stay applied.
func (d *Dashboard) Apply(ctx context.Context, events ...Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	logger := logging.From(ctx).With("session_id", d.id)
	for _, ev := range events {
		logger.Debug("dashboard event", "event", ev.String())
		if err := ev.apply(ctx, d); err != nil {
			return goerr.Wrap(err, "failed to apply dashboard event", goerr.V(EventKey, ev.String()))
		}
	}
	return nil
}

// View is the complete render-ready state of the dashboard.
type View struct {
	SessionID string
	Grid      *Grid
	Form      *FormView
	Selected  *Detail
}

// FormVisible reports whether the creation form is shown
func (v *View) FormVisible() bool {
	return v.Form != nil
}

// View recomputes the grid from the store and captures form and selection state
func (d *Dashboard) View(ctx context.Context) (*View, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	grid, err := d.opportunity.BuildGrid(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build grid")
	}

	v := &View{
		SessionID: d.id,
		Grid:      grid,
		Form:      d.form.View(),
	}

	if d.selected != 0 {
		selected, err := d.opportunity.GetOpportunity(ctx, d.selected)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to load selected opportunity")
		}
		v.Selected = NewDetail(selected)
	}

	return v, nil
}

// FormState returns the current visibility of the form
func (d *Dashboard) FormState() FormState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form.State()
}

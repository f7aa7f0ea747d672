package tui

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
	"github.com/secmon-lab/aimatrix/pkg/usecase"
	"github.com/secmon-lab/aimatrix/pkg/utils/logging"
)

// Dashboard is the interactive session the terminal UI drives
type Dashboard interface {
	Apply(ctx context.Context, events ...usecase.Event) error
	View(ctx context.Context) (*usecase.View, error)
}

const gridSize = 3

// Model is the Bubble Tea model of the dashboard. It keeps only cursor
// positions; form and selection state live in the Dashboard.
type Model struct {
	ctx       context.Context
	dashboard Dashboard
	view      *usecase.View
	styles    Styles

	// grid cursor
	row, col int
	item     int

	// form cursor and the edit buffer of the focused text field
	field int
	input textinput.Model

	status string
	width  int
}

// New creates the model and loads the initial view
func New(ctx context.Context, dashboard Dashboard) Model {
	input := textinput.New()
	input.Prompt = ""

	m := Model{
		ctx:       ctx,
		dashboard: dashboard,
		styles:    DefaultStyles(),
		input:     input,
		width:     120,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch {
		case m.formVisible():
			return m.updateForm(msg)
		case m.view != nil && m.view.Selected != nil:
			return m.updateDetail(msg)
		default:
			return m.updateGrid(msg)
		}
	}

	return m, nil
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.moveCell(-1, 0)
	case "down", "j":
		m.moveCell(1, 0)
	case "left", "h":
		m.moveCell(0, -1)
	case "right", "l":
		m.moveCell(0, 1)
	case "tab":
		m.moveItem(1)
	case "shift+tab":
		m.moveItem(-1)
	case "enter":
		if s, ok := m.focusedItem(); ok {
			m.apply(usecase.SelectOpportunity{ID: s.ID})
		}
	case "n":
		m.apply(usecase.ToggleForm{})
		m.focusField(0)
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "enter", "backspace":
		m.apply(usecase.ClearSelection{})
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.apply(usecase.CancelForm{})
		m.field = 0
		m.input.Blur()
		return m, nil
	case "ctrl+s":
		m.submit()
		return m, nil
	case "tab", "down":
		m.focusField(m.field + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusField(m.field - 1)
		return m, nil
	}

	f, ok := m.currentField()
	if !ok {
		return m, nil
	}

	switch f.Kind {
	case usecase.FieldKindCheckbox:
		if msg.String() == " " || msg.String() == "enter" {
			m.apply(usecase.ChangeField{Field: f.Key, Value: strconv.FormatBool(!f.Checked)})
		}
		return m, nil

	case usecase.FieldKindSelect:
		switch msg.String() {
		case "left", "h":
			m.apply(usecase.ChangeField{Field: f.Key, Value: cycleTechnology(f.Value, -1).String()})
		case "right", "l", " ":
			m.apply(usecase.ChangeField{Field: f.Key, Value: cycleTechnology(f.Value, 1).String()})
		}
		return m, nil
	}

	if msg.String() == "enter" {
		m.focusField(m.field + 1)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.apply(usecase.ChangeField{Field: f.Key, Value: after})
	}
	return m, cmd
}

// submit sends the form; on rejection the cursor jumps to the first invalid field
func (m *Model) submit() {
	if !m.apply(usecase.SubmitForm{}) {
		if m.view.Form != nil {
			for i, f := range m.view.Form.Fields {
				if f.Error != "" {
					m.focusField(i)
					break
				}
			}
		}
		return
	}
	m.field = 0
	m.input.Blur()
	m.status = "opportunity added"
}

// apply runs events and reloads the view. Validation failures are shown next
// to the fields; other failures go to the status line.
func (m *Model) apply(events ...usecase.Event) bool {
	err := m.dashboard.Apply(m.ctx, events...)
	m.refresh()
	if err != nil {
		if !errors.Is(err, model.ErrValidation) {
			logging.From(m.ctx).Warn("dashboard event failed", "error", err)
			m.status = err.Error()
		} else {
			m.status = "please fix the highlighted fields"
		}
		return false
	}
	m.status = ""
	return true
}

func (m *Model) refresh() {
	view, err := m.dashboard.View(m.ctx)
	if err != nil {
		logging.From(m.ctx).Error("failed to build dashboard view", "error", err)
		m.status = err.Error()
		return
	}
	m.view = view
	m.clampItem()
}

func (m *Model) formVisible() bool {
	return m.view != nil && m.view.FormVisible()
}

func (m *Model) moveCell(dr, dc int) {
	m.row = clamp(m.row+dr, 0, gridSize-1)
	m.col = clamp(m.col+dc, 0, gridSize-1)
	m.item = 0
}

func (m *Model) moveItem(delta int) {
	cell, ok := m.focusedCell()
	if !ok || cell.Empty() {
		return
	}
	n := len(cell.Items)
	m.item = ((m.item+delta)%n + n) % n
}

func (m *Model) clampItem() {
	cell, ok := m.focusedCell()
	if !ok || cell.Empty() {
		m.item = 0
		return
	}
	m.item = clamp(m.item, 0, len(cell.Items)-1)
}

func (m *Model) focusedCell() (usecase.GridCell, bool) {
	if m.view == nil || m.view.Grid == nil {
		return usecase.GridCell{}, false
	}
	return m.view.Grid.Cell(types.NewCellID(levelAt(m.row), levelAt(m.col)))
}

func (m *Model) focusedItem() (usecase.Summary, bool) {
	cell, ok := m.focusedCell()
	if !ok || m.item >= len(cell.Items) {
		return usecase.Summary{}, false
	}
	return cell.Items[m.item], true
}

func (m *Model) currentField() (usecase.FormField, bool) {
	if !m.formVisible() || m.field < 0 || m.field >= len(m.view.Form.Fields) {
		return usecase.FormField{}, false
	}
	return m.view.Form.Fields[m.field], true
}

// focusField moves the form cursor, wrapping around, and loads the edit
// buffer when the field is typed in.
func (m *Model) focusField(i int) {
	if !m.formVisible() {
		return
	}
	n := len(m.view.Form.Fields)
	m.field = ((i % n) + n) % n

	f := m.view.Form.Fields[m.field]
	switch f.Kind {
	case usecase.FieldKindText, usecase.FieldKindTextarea, usecase.FieldKindNumber:
		m.input.SetValue(f.Value)
		m.input.CursorEnd()
		m.input.Focus()
	default:
		m.input.Blur()
	}
}

func levelAt(i int) types.Level {
	return types.Levels()[i]
}

func cycleTechnology(current string, delta int) types.TechnologyType {
	all := types.TechnologyTypes()
	idx := 0
	for i, t := range all {
		if t.String() == current {
			idx = i
			break
		}
	}
	n := len(all)
	return all[((idx+delta)%n+n)%n]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

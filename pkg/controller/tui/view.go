package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
	"github.com/secmon-lab/aimatrix/pkg/usecase"
)

const (
	gridHelp   = "←↓↑→/hjkl move • tab next item • enter details • n new opportunity • q quit"
	detailHelp = "esc close • q quit"
	formHelp   = "tab/shift+tab move • space toggle • ←/→ technology • ctrl+s submit • esc cancel"
)

func (m Model) View() string {
	if m.view == nil {
		return m.styles.Error.Render(m.status) + "\n"
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("AI Opportunity Prioritization Matrix"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Business impact (rows) × feasibility (columns) • %d opportunities", m.view.Grid.Total)))
	sb.WriteString("\n\n")

	help := gridHelp
	switch {
	case m.view.Form != nil:
		sb.WriteString(m.renderForm(m.view.Form))
		help = formHelp
	case m.view.Selected != nil:
		sb.WriteString(m.renderDetail(m.view.Selected))
		help = detailHelp
	default:
		sb.WriteString(m.renderGrid(m.view.Grid))
		sb.WriteString("\n")
		sb.WriteString(m.renderLegend())
	}

	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(m.styles.Status.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Help.Render(help))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) cellWidth() int {
	w := (m.width - 2*gridSize) / gridSize
	if w < 24 {
		return 24
	}
	return w
}

func (m Model) renderGrid(grid *usecase.Grid) string {
	width := m.cellWidth()
	rows := make([]string, 0, gridSize)
	for r, row := range grid.Rows() {
		cells := make([]string, 0, gridSize)
		for c, cell := range row {
			focused := r == m.row && c == m.col
			cells = append(cells, m.renderCell(cell, focused, width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(cell usecase.GridCell, focused bool, width int) string {
	style := m.styles.Cell.Width(width).BorderForeground(tokenColor(cell.Token))
	if focused {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}

	lines := []string{m.styles.CellLabel.Foreground(tokenColor(cell.Token)).Render(cell.Label)}
	if cell.Empty() {
		lines = append(lines, m.styles.Empty.Render("No opportunities here."))
	}
	for i, item := range cell.Items {
		name := truncate(item.Name, width-22)
		if focused && i == m.item {
			name = m.styles.Focused.Render(name)
		} else {
			name = m.styles.Item.Render(name)
		}
		lines = append(lines, name+" "+badge(fmt.Sprintf("%s Risk (%d)", item.RiskLevel, item.OverallRisk.Int()), item.RiskToken))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderLegend() string {
	var parts []string
	for _, l := range types.Levels() {
		parts = append(parts, badge(l.String()+" Risk", model.RiskToken(l)))
	}
	return m.styles.Label.Render("Risk: ") + strings.Join(parts, " ")
}

func (m Model) renderDetail(d *usecase.Detail) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(d.Name))
	sb.WriteString("\n")
	if d.Description != "" {
		sb.WriteString(d.Description)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	row := func(label, value string) {
		sb.WriteString(m.styles.Label.Render(fmt.Sprintf("%-32s", label)))
		sb.WriteString(value)
		sb.WriteString("\n")
	}
	row("Quadrant", d.Quadrant.Label)
	row("Business Impact", d.Impact.String())
	row("Feasibility", d.Feasibility.String())
	row("Overall Risk", badge(fmt.Sprintf("%s (%d)", d.Risk, d.OverallRisk.Int()), d.RiskToken))
	row("Technology", d.TechnologyType.String())
	row("Quick Win Potential", yesNo(d.QuickWinPotential))
	sb.WriteString("\n")
	for _, sv := range d.ScoreValues {
		row(sv.Label, sv.Value.String())
	}

	return m.styles.Panel.BorderForeground(tokenColor(d.Quadrant.Token)).Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) renderForm(form *usecase.FormView) string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("New Opportunity"))
	sb.WriteString("\n\n")

	for i, f := range form.Fields {
		focused := i == m.field
		label := fmt.Sprintf("%-32s", f.Label)
		if focused {
			label = m.styles.Focused.Render(label)
		} else {
			label = m.styles.Label.Render(label)
		}

		var value string
		switch f.Kind {
		case usecase.FieldKindCheckbox:
			value = "[ ]"
			if f.Checked {
				value = "[x]"
			}
		case usecase.FieldKindSelect:
			value = "‹ " + f.Value + " ›"
		default:
			value = f.Value
			if focused {
				value = m.input.View()
			}
		}

		sb.WriteString(label + " " + value)
		if f.Error != "" {
			sb.WriteString("  " + m.styles.Error.Render(f.Error))
		}
		sb.WriteString("\n")
	}

	return m.styles.Panel.Render(strings.TrimRight(sb.String(), "\n"))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 4 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

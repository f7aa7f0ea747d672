package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
)

// Summary is the selectable entry rendered for an opportunity inside a grid cell.
type Summary struct {
	ID          int64
	Name        string
	OverallRisk types.Score
	RiskLevel   types.Level
	RiskToken   string
}

// GridCell is one quadrant together with the opportunities that fall into it.
type GridCell struct {
	model.Quadrant
	Items []Summary
}

// Empty reports whether the cell has no opportunities
func (c GridCell) Empty() bool {
	return len(c.Items) == 0
}

// Grid is the derived 3x3 view of the store, cells in row-major order.
type Grid struct {
	Cells []GridCell
	Total int
}

// Rows returns the cells split into three rows of three
func (g *Grid) Rows() [][]GridCell {
	rows := make([][]GridCell, 3)
	for _, c := range g.Cells {
		rows[c.Row] = append(rows[c.Row], c)
	}
	return rows
}

// Cell returns the cell with the given ID
func (g *Grid) Cell(id types.CellID) (GridCell, bool) {
	for _, c := range g.Cells {
		if c.Cell == id {
			return c, true
		}
	}
	return GridCell{}, false
}

// BuildGrid groups the store's contents by quadrant. It is recomputed on every call.
func (uc *OpportunityUseCase) BuildGrid(ctx context.Context) (*Grid, error) {
	grouped, err := uc.repo.Opportunity().GroupByCell(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to group opportunities by cell")
	}

	grid := &Grid{}
	for _, q := range model.Quadrants() {
		cell := GridCell{Quadrant: q}
		for _, o := range grouped[q.Cell] {
			cell.Items = append(cell.Items, newSummary(o))
		}
		grid.Total += len(cell.Items)
		grid.Cells = append(grid.Cells, cell)
	}
	return grid, nil
}

func newSummary(o *model.Opportunity) Summary {
	level := o.RiskLevel()
	return Summary{
		ID:          o.ID,
		Name:        o.Name,
		OverallRisk: o.OverallRisk,
		RiskLevel:   level,
		RiskToken:   model.RiskToken(level),
	}
}

// ScoreValue is one labelled numeric attribute of a detail view.
type ScoreValue struct {
	Key   string
	Label string
	Value types.Score
}

// Detail is the full record shown in the detail overlay, plus every derived category.
type Detail struct {
	*model.Opportunity
	Impact      types.Level
	Feasibility types.Level
	Risk        types.Level
	RiskToken   string
	Quadrant    model.Quadrant
	ScoreValues []ScoreValue
}

// NewDetail builds the detail view of an opportunity
func NewDetail(o *model.Opportunity) *Detail {
	q, _ := model.LookupQuadrant(o.Cell())
	d := &Detail{
		Opportunity: o,
		Impact:      o.ImpactLevel(),
		Feasibility: o.FeasibilityLevel(),
		Risk:        o.RiskLevel(),
		RiskToken:   model.RiskToken(o.RiskLevel()),
		Quadrant:    q,
	}
	for _, f := range model.ScoreFields() {
		d.ScoreValues = append(d.ScoreValues, ScoreValue{Key: f.Key, Label: f.Label, Value: f.Get(o.Scores)})
	}
	return d
}

package types

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// CellID identifies one of the nine prioritization grid cells as "{row}-{col}".
type CellID string

// NewCellID builds a CellID from an impact level (row) and a feasibility level (column)
func NewCellID(impact, feasibility Level) CellID {
	return CellID(fmt.Sprintf("%d-%d", impact.Index(), feasibility.Index()))
}

// CellIDs returns the nine cell IDs in row-major order
func CellIDs() []CellID {
	ids := make([]CellID, 0, 9)
	for _, impact := range Levels() {
		for _, feasibility := range Levels() {
			ids = append(ids, NewCellID(impact, feasibility))
		}
	}
	return ids
}

// Validate checks if the CellID is one of the nine known cells
func (c CellID) Validate() error {
	for _, id := range CellIDs() {
		if id == c {
			return nil
		}
	}
	return goerr.New("unknown cell ID", goerr.V("cell_id", string(c)))
}

// String returns the string representation of CellID
func (c CellID) String() string {
	return string(c)
}

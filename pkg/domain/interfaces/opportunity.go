package interfaces

import (
	"context"

	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
)

// OpportunityRepository is an append-only, insertion-ordered store of opportunities.
type OpportunityRepository interface {
	// Append adds a record with a preassigned ID to the end of the collection.
	// The ID must be positive and not already present.
	Append(ctx context.Context, opportunity *model.Opportunity) (*model.Opportunity, error)

	// NextID returns max(existing IDs, 0) + 1
	NextID(ctx context.Context) (int64, error)

	// Get retrieves an opportunity by ID
	Get(ctx context.Context, id int64) (*model.Opportunity, error)

	// List returns all opportunities in insertion order
	List(ctx context.Context) ([]*model.Opportunity, error)

	// GroupByCell partitions List into the nine grid cells, keeping insertion
	// order within each cell. Every cell is present in the result.
	GroupByCell(ctx context.Context) (map[types.CellID][]*model.Opportunity, error)
}

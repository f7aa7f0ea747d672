package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
)

type opportunityRepository struct {
	mu    sync.RWMutex
	order []*model.Opportunity
	byID  map[int64]*model.Opportunity
	// cells is maintained on every append so GroupByCell does not rescan the store
	cells map[types.CellID][]*model.Opportunity
	maxID int64
}

func newOpportunityRepository() *opportunityRepository {
	cells := make(map[types.CellID][]*model.Opportunity, 9)
	for _, id := range types.CellIDs() {
		cells[id] = nil
	}
	return &opportunityRepository{
		byID:  make(map[int64]*model.Opportunity),
		cells: cells,
	}
}

func (r *opportunityRepository) Append(ctx context.Context, opportunity *model.Opportunity) (*model.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if opportunity.ID <= 0 {
		return nil, goerr.Wrap(ErrInvalidID, "opportunity ID must be positive", goerr.V("id", opportunity.ID))
	}
	if _, exists := r.byID[opportunity.ID]; exists {
		return nil, goerr.Wrap(ErrDuplicateID, "opportunity already exists", goerr.V("id", opportunity.ID))
	}

	stored := opportunity.Copy()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	r.order = append(r.order, stored)
	r.byID[stored.ID] = stored
	cell := stored.Cell()
	r.cells[cell] = append(r.cells[cell], stored)
	if stored.ID > r.maxID {
		r.maxID = stored.ID
	}

	// Return a copy to prevent external modification
	return stored.Copy(), nil
}

func (r *opportunityRepository) NextID(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.maxID + 1, nil
}

func (r *opportunityRepository) Get(ctx context.Context, id int64) (*model.Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opportunity, exists := r.byID[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "opportunity not found", goerr.V("id", id))
	}

	return opportunity.Copy(), nil
}

func (r *opportunityRepository) List(ctx context.Context) ([]*model.Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyAll(r.order), nil
}

func (r *opportunityRepository) GroupByCell(ctx context.Context) (map[types.CellID][]*model.Opportunity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	grouped := make(map[types.CellID][]*model.Opportunity, len(r.cells))
	for cell, members := range r.cells {
		grouped[cell] = copyAll(members)
	}
	return grouped, nil
}

func copyAll(src []*model.Opportunity) []*model.Opportunity {
	out := make([]*model.Opportunity, len(src))
	for i, o := range src {
		out[i] = o.Copy()
	}
	return out
}

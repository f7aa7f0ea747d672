package memory

import (
	"github.com/secmon-lab/aimatrix/pkg/domain/interfaces"
)

// Sentinel errors of the in-memory backend
var (
	ErrNotFound    = interfaces.ErrNotFound
	ErrDuplicateID = interfaces.ErrDuplicateID
	ErrInvalidID   = interfaces.ErrInvalidID
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	opportunity *opportunityRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		opportunity: newOpportunityRepository(),
	}
}

func (m *Memory) Opportunity() interfaces.OpportunityRepository {
	return m.opportunity
}

// Close is a no-op; the memory backend holds nothing that needs releasing
func (m *Memory) Close() error {
	return nil
}

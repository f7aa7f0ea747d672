package usecase

import (
	"github.com/secmon-lab/aimatrix/pkg/domain/interfaces"
)

type UseCases struct {
	repo        interfaces.Repository
	Opportunity *OpportunityUseCase
	Dashboard   *Dashboard
}

type Option func(*UseCases)

// WithSessionID fixes the dashboard session ID instead of generating one
func WithSessionID(id string) Option {
	return func(uc *UseCases) {
		uc.Dashboard.id = id
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}
	uc.Opportunity = NewOpportunityUseCase(repo)
	uc.Dashboard = NewDashboard(uc.Opportunity)

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/domain/interfaces"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/utils/logging"
)

type OpportunityUseCase struct {
	repo interfaces.Repository

	// serializes NextID + Append so identifiers are never handed out twice
	mu sync.Mutex
}

func NewOpportunityUseCase(repo interfaces.Repository) *OpportunityUseCase {
	return &OpportunityUseCase{
		repo: repo,
	}
}

// CreateOpportunity assigns the next identifier, computes the overall risk and
// appends the new record to the store.
func (uc *OpportunityUseCase) CreateOpportunity(ctx context.Context, input *model.OpportunityInput) (*model.Opportunity, error) {
	if input == nil {
		return nil, goerr.New("opportunity input is required")
	}
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid opportunity input")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	id, err := uc.repo.Opportunity().NextID(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get next opportunity ID")
	}

	created, err := uc.repo.Opportunity().Append(ctx, model.NewOpportunity(id, *input))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append opportunity", goerr.V(OpportunityIDKey, id))
	}

	logging.From(ctx).Info("opportunity created",
		"id", created.ID,
		"name", created.Name,
		"cell", created.Cell(),
		"overall_risk", created.OverallRisk.Int(),
	)
	return created, nil
}

// SeedOpportunities bulk-loads inputs with identifiers assigned from their
// position (index + 1). It is meant to run once on an empty store. Every
// input is validated before the first append, so an invalid entry leaves the
// store untouched; an append failure (an ID already taken) can still leave
// the entries before it in place.
func (uc *OpportunityUseCase) SeedOpportunities(ctx context.Context, inputs []model.OpportunityInput) ([]*model.Opportunity, error) {
	for i, input := range inputs {
		if err := input.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid seed entry", goerr.V(SeedIndexKey, i))
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	seeded := make([]*model.Opportunity, 0, len(inputs))
	for i, input := range inputs {
		created, err := uc.repo.Opportunity().Append(ctx, model.NewOpportunity(int64(i+1), input))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to append seed entry", goerr.V(SeedIndexKey, i))
		}
		seeded = append(seeded, created)
	}

	logging.From(ctx).Info("opportunities seeded", "count", len(seeded))
	return seeded, nil
}

// SubmitDraft coerces a draft and creates the opportunity in one step, without
// going through a dashboard form.
func (uc *OpportunityUseCase) SubmitDraft(ctx context.Context, draft *model.Draft) (*model.Opportunity, error) {
	input, err := draft.Build()
	if err != nil {
		return nil, goerr.Wrap(err, "draft rejected")
	}
	return uc.CreateOpportunity(ctx, input)
}

func (uc *OpportunityUseCase) GetOpportunity(ctx context.Context, id int64) (*model.Opportunity, error) {
	opportunity, err := uc.repo.Opportunity().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrOpportunityNotFound, "no such opportunity", goerr.V(OpportunityIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get opportunity", goerr.V(OpportunityIDKey, id))
	}

	return opportunity, nil
}

func (uc *OpportunityUseCase) ListOpportunities(ctx context.Context) ([]*model.Opportunity, error) {
	opportunities, err := uc.repo.Opportunity().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list opportunities")
	}

	return opportunities, nil
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
	"github.com/secmon-lab/aimatrix/pkg/repository/memory"
	"github.com/secmon-lab/aimatrix/pkg/usecase"
)

func newInput(name string, impact, feasibility types.Score) model.OpportunityInput {
	scores := model.DefaultScores()
	scores.OverallBusinessImpact = impact
	scores.OverallFeasibilityReadiness = feasibility
	return model.OpportunityInput{
		Name:           name,
		Scores:         scores,
		TechnologyType: types.DefaultTechnologyType,
	}
}

func TestOpportunityUseCase_CreateOpportunity(t *testing.T) {
	t.Run("assigns sequential IDs and computes risk", func(t *testing.T) {
		uc := usecase.NewOpportunityUseCase(memory.New())
		ctx := context.Background()

		input := newInput("Automated Reporting on Asset Usage", 5, 8)
		input.Scores.ModelBiasRisk = 9
		input.Scores.CostVsRoiAssessment = 8
		input.Scores.TechnicalComplexity = 7

		first, err := uc.CreateOpportunity(ctx, &input)
		gt.NoError(t, err).Required()
		gt.Number(t, first.ID).Equal(1)
		// 0.4*9 + 0.3*8 + 0.3*7 = 8.1
		gt.Value(t, first.OverallRisk).Equal(types.Score(8))
		gt.Value(t, first.RiskLevel()).Equal(types.LevelHigh)

		second, err := uc.CreateOpportunity(ctx, &input)
		gt.NoError(t, err).Required()
		gt.Number(t, second.ID).Equal(2)
	})

	t.Run("continues after the highest existing ID", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()
		for _, id := range []int64{1, 3, 5} {
			_, err := repo.Opportunity().Append(ctx, model.NewOpportunity(id, newInput("seed", 5, 5)))
			gt.NoError(t, err).Required()
		}

		uc := usecase.NewOpportunityUseCase(repo)
		input := newInput("next", 5, 5)
		created, err := uc.CreateOpportunity(ctx, &input)
		gt.NoError(t, err).Required()
		gt.Number(t, created.ID).Equal(6)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		uc := usecase.NewOpportunityUseCase(memory.New())
		ctx := context.Background()

		input := newInput("", 5, 5)
		_, err := uc.CreateOpportunity(ctx, &input)
		gt.Error(t, err).Is(model.ErrValidation)

		_, err = uc.CreateOpportunity(ctx, nil)
		gt.Value(t, err).NotNil()

		list, err := uc.ListOpportunities(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(0)
	})
}

func TestOpportunityUseCase_SeedOpportunities(t *testing.T) {
	t.Run("assigns IDs from position and computes risk", func(t *testing.T) {
		uc := usecase.NewOpportunityUseCase(memory.New())
		ctx := context.Background()

		risky := newInput("risky", 9, 2)
		risky.Scores.ModelBiasRisk = 10
		risky.Scores.CostVsRoiAssessment = 10
		risky.Scores.TechnicalComplexity = 10

		seeded, err := uc.SeedOpportunities(ctx, []model.OpportunityInput{
			newInput("first", 8, 8),
			newInput("second", 5, 5),
			risky,
		})
		gt.NoError(t, err).Required()
		gt.Array(t, seeded).Length(3)

		for i, o := range seeded {
			gt.Number(t, o.ID).Equal(int64(i + 1))
		}
		gt.Value(t, seeded[0].OverallRisk).Equal(types.Score(5))
		gt.Value(t, seeded[2].OverallRisk).Equal(types.Score(10))

		list, err := uc.ListOpportunities(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(3)
		gt.Value(t, list[1].Name).Equal("second")
	})

	t.Run("invalid entry leaves the store empty", func(t *testing.T) {
		uc := usecase.NewOpportunityUseCase(memory.New())
		ctx := context.Background()

		_, err := uc.SeedOpportunities(ctx, []model.OpportunityInput{
			newInput("ok", 5, 5),
			newInput("also ok", 7, 7),
			newInput("", 5, 5),
		})
		gt.Error(t, err).Is(model.ErrValidation)

		list, err := uc.ListOpportunities(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(0)
	})
}

func TestOpportunityUseCase_GetOpportunity(t *testing.T) {
	uc := usecase.NewOpportunityUseCase(memory.New())
	ctx := context.Background()

	input := newInput("lookup", 5, 5)
	created, err := uc.CreateOpportunity(ctx, &input)
	gt.NoError(t, err).Required()

	got, err := uc.GetOpportunity(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Name).Equal("lookup")

	_, err = uc.GetOpportunity(ctx, 404)
	gt.Bool(t, errors.Is(err, usecase.ErrOpportunityNotFound)).True()
}

func TestOpportunityUseCase_BuildGrid(t *testing.T) {
	uc := usecase.NewOpportunityUseCase(memory.New())
	ctx := context.Background()

	_, err := uc.SeedOpportunities(ctx, []model.OpportunityInput{
		newInput("quick win", 9, 9),
		newInput("long bet", 9, 1),
		newInput("another quick win", 7, 7),
		newInput("avoid", 1, 1),
	})
	gt.NoError(t, err).Required()

	grid, err := uc.BuildGrid(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, grid.Cells).Length(9)
	gt.Number(t, grid.Total).Equal(4)

	quick, ok := grid.Cell("0-0")
	gt.Bool(t, ok).True()
	gt.Value(t, quick.Label).Equal("1. Quick Wins / Must-Dos")
	gt.Array(t, quick.Items).Length(2)
	gt.Value(t, quick.Items[0].Name).Equal("quick win")
	gt.Value(t, quick.Items[1].Name).Equal("another quick win")
	gt.Value(t, quick.Items[0].RiskLevel).Equal(types.LevelMedium)
	gt.Value(t, quick.Items[0].RiskToken).Equal("orange")

	longBet, _ := grid.Cell("0-2")
	gt.Array(t, longBet.Items).Length(1)

	evaluate, _ := grid.Cell("1-1")
	gt.Bool(t, evaluate.Empty()).True()

	rows := grid.Rows()
	gt.Array(t, rows).Length(3)
	for r, row := range rows {
		gt.Array(t, row).Length(3)
		for c, cell := range row {
			gt.Number(t, cell.Row).Equal(r)
			gt.Number(t, cell.Col).Equal(c)
		}
	}
}

func TestNewDetail(t *testing.T) {
	input := newInput("detail", 8, 4)
	input.Description = "full record"
	input.QuickWinPotential = true
	o := model.NewOpportunity(12, input)

	d := usecase.NewDetail(o)
	gt.Number(t, d.ID).Equal(12)
	gt.Value(t, d.Description).Equal("full record")
	gt.Bool(t, d.QuickWinPotential).True()
	gt.Value(t, d.Impact).Equal(types.LevelHigh)
	gt.Value(t, d.Feasibility).Equal(types.LevelMedium)
	gt.Value(t, d.Risk).Equal(types.LevelMedium)
	gt.Value(t, d.Quadrant.Cell).Equal(types.CellID("0-1"))
	gt.Array(t, d.ScoreValues).Length(14)
	gt.Value(t, d.ScoreValues[0].Value).Equal(types.Score(8))
}

func TestOpportunityUseCase_SubmitDraft(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewOpportunityUseCase(memory.New())

	draft := model.NewDraft()
	gt.NoError(t, draft.Set(model.FieldName, "  Contract review  ")).Required()
	gt.NoError(t, draft.Set("modelBiasRisk", "9")).Required()

	created, err := uc.SubmitDraft(ctx, draft)
	gt.NoError(t, err).Required()
	gt.Value(t, created.Name).Equal("Contract review")
	gt.Value(t, created.ModelBiasRisk).Equal(types.Score(9))

	bad := model.NewDraft()
	gt.NoError(t, bad.Set(model.FieldName, "x")).Required()
	gt.NoError(t, bad.Set("dataQuality", "")).Required()
	_, err = uc.SubmitDraft(ctx, bad)
	gt.Error(t, err).Is(model.ErrValidation)
}

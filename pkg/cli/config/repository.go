package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/domain/interfaces"
	"github.com/secmon-lab/aimatrix/pkg/repository/memory"
	"github.com/secmon-lab/aimatrix/pkg/usecase"
	"github.com/secmon-lab/aimatrix/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for the opportunity store and its initial contents
type Repository struct {
	seedPath string
	noSeed   bool
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed",
			Usage:       "TOML dataset loaded into the store at startup (built-in sample portfolio if omitted)",
			Category:    "Repository",
			Sources:     cli.EnvVars("AIMATRIX_SEED"),
			Destination: &r.seedPath,
		},
		&cli.BoolFlag{
			Name:        "no-seed",
			Usage:       "Start with an empty store",
			Category:    "Repository",
			Sources:     cli.EnvVars("AIMATRIX_NO_SEED"),
			Destination: &r.noSeed,
		},
	}
}

func (r Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("seed", r.seedPath),
		slog.Bool("no_seed", r.noSeed),
	)
}

// Dataset returns the dataset selected by the flags: the file given by
// --seed, otherwise the built-in one.
func (r *Repository) Dataset() (*Dataset, error) {
	if r.seedPath == "" {
		return DefaultDataset()
	}
	return LoadDataset(r.seedPath)
}

// Configure initializes the in-memory store and loads the seed dataset into it.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	repo := memory.New()
	if r.noSeed {
		logging.Default().Info("Using empty in-memory repository")
		return repo, nil
	}

	dataset, err := r.Dataset()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load seed dataset")
	}

	seeded, err := usecase.NewOpportunityUseCase(repo).SeedOpportunities(ctx, dataset.Inputs())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to seed repository")
	}

	logging.Default().Info("Using in-memory repository",
		"seed", r.seedPath,
		"count", len(seeded),
	)
	return repo, nil
}

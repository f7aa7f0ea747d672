package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/cli/config"
	"github.com/secmon-lab/aimatrix/pkg/controller/tui"
	"github.com/secmon-lab/aimatrix/pkg/usecase"
	"github.com/secmon-lab/aimatrix/pkg/utils/errutil"
	"github.com/secmon-lab/aimatrix/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdTUI(loggerCfg *config.Logger) *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"t"},
		Usage:   "Open the matrix in the terminal",
		Flags:   repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				_ = errutil.Handle(ctx, repo.Close(), "failed to close repository")
			}()

			// the terminal belongs to the UI; only file logging stays on
			if loggerCfg.WritesToTerminal() {
				logging.SetDefault(slog.New(slog.DiscardHandler))
			}

			uc := usecase.New(repo)
			return tui.Run(ctx, uc.Dashboard)
		},
	}
}

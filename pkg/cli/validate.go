package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aimatrix/pkg/cli/config"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

var errInvalidEntries = goerr.New("dataset has invalid entries")

func cmdValidate() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Validate seed datasets and show where each opportunity lands",
		ArgsUsage: "[dataset.toml ...]",
		Action: func(ctx context.Context, c *cli.Command) error {
			w := c.Root().Writer
			if w == nil {
				w = os.Stdout
			}

			paths := c.Args().Slice()
			if len(paths) == 0 {
				dataset, err := config.DefaultDataset()
				if err != nil {
					return goerr.Wrap(err, "built-in dataset is invalid")
				}
				report(w, "built-in dataset", dataset)
				return nil
			}

			var invalid int
			for _, path := range paths {
				// #nosec G304 - path is expected to be provided by CLI argument
				data, err := os.ReadFile(path)
				if err != nil {
					return goerr.Wrap(err, "failed to read dataset file", goerr.V(config.DatasetPathKey, path))
				}
				dataset, err := config.ParseDataset(data)
				if err != nil {
					return goerr.Wrap(err, "failed to parse dataset", goerr.V(config.DatasetPathKey, path))
				}
				if len(dataset.Opportunities) == 0 {
					return goerr.Wrap(config.ErrEmptyDataset, "nothing to validate", goerr.V(config.DatasetPathKey, path))
				}
				invalid += report(w, path, dataset)
			}

			if invalid > 0 {
				return goerr.Wrap(errInvalidEntries, "validation failed", goerr.V("invalid_count", invalid))
			}
			return nil
		},
	}
}

// report prints one line per entry and returns the number of invalid entries
func report(w io.Writer, title string, dataset *config.Dataset) int {
	ok := color.New(color.FgGreen)
	ng := color.New(color.FgRed)
	dim := color.New(color.Faint)
	head := color.New(color.Bold)

	_, _ = head.Fprintln(w, title)

	var invalid int
	for i, entry := range dataset.Opportunities {
		if err := entry.Validate(); err != nil {
			invalid++
			_, _ = ng.Fprintf(w, "  ✘ #%d %s\n", i+1, displayName(entry.Name))
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				for _, f := range verr.Fields {
					_, _ = ng.Fprintf(w, "      %s: %s\n", f.Field, f.Message)
				}
			}
			continue
		}

		o := model.NewOpportunity(int64(i+1), entry.ToInput())
		q, _ := model.LookupQuadrant(o.Cell())
		_, _ = ok.Fprintf(w, "  ✔ #%d %s", o.ID, o.Name)
		_, _ = dim.Fprintf(w, "  %s • risk %d (%s)\n", q.Label, o.OverallRisk.Int(), o.RiskLevel())
	}

	summary := fmt.Sprintf("%d entries, %d invalid", len(dataset.Opportunities), invalid)
	if invalid > 0 {
		_, _ = ng.Fprintln(w, summary)
	} else {
		_, _ = ok.Fprintln(w, summary)
	}
	return invalid
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

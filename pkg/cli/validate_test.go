package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/aimatrix/pkg/cli"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestRun_ValidateCommand_BuiltIn(t *testing.T) {
	err := cli.Run(context.Background(), []string{"aimatrix", "validate"}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_ValidDataset(t *testing.T) {
	path := writeFile(t, `
[[opportunity]]
name = "Invoice triage"
technology_type = "Natural Language Processing"

  [opportunity.scores]
  overallBusinessImpact = 8
  overallFeasibilityReadiness = 9
`)

	err := cli.Run(context.Background(), []string{"aimatrix", "validate", path}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidDataset(t *testing.T) {
	path := writeFile(t, `
[[opportunity]]
name = "fine"

[[opportunity]]
technology_type = "Astrology"

  [opportunity.scores]
  dataQuality = 42
`)

	err := cli.Run(context.Background(), []string{"aimatrix", "validate", path}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_MalformedDataset(t *testing.T) {
	path := writeFile(t, "[[opportunity]\nname = ")

	err := cli.Run(context.Background(), []string{"aimatrix", "validate", path}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_MissingFile(t *testing.T) {
	err := cli.Run(context.Background(), []string{"aimatrix", "validate", "/nonexistent/seed.toml"}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{"aimatrix", "--log-level", "chatty", "validate"}, "test")
	gt.Value(t, err).NotNil()
}

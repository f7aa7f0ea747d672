package config

import (
	_ "embed"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/aimatrix/pkg/domain/model"
	"github.com/secmon-lab/aimatrix/pkg/domain/types"
)

//go:embed seed/default.toml
var defaultDataset []byte

// Dataset is a list of opportunities to load into the store at startup
type Dataset struct {
	Opportunities []OpportunityEntry `toml:"opportunity"`
}

// OpportunityEntry is one opportunity of a dataset. Scores are keyed by the
// field keys used by the creation form; omitted scores take the default.
type OpportunityEntry struct {
	Name              string         `toml:"name"`
	Description       string         `toml:"description"`
	TechnologyType    string         `toml:"technology_type"`
	QuickWinPotential bool           `toml:"quick_win_potential"`
	Scores            map[string]int `toml:"scores"`
}

// Validate checks the entry and reports every problem at once
func (e *OpportunityEntry) Validate() error {
	verr := &model.ValidationError{}
	if e.Name == "" {
		verr.Add(model.FieldName, "name is required")
	}
	if e.TechnologyType != "" {
		if err := types.TechnologyType(e.TechnologyType).Validate(); err != nil {
			verr.Add(model.FieldTechnologyType, "unknown technology type")
		}
	}
	for key, v := range e.Scores {
		if _, ok := model.LookupScoreField(key); !ok {
			verr.Add(key, "unknown score field")
			continue
		}
		if err := types.Score(v).Validate(); err != nil {
			verr.Add(key, "must be between 1 and 10")
		}
	}
	return verr.OrNil()
}

// ToInput converts the entry into a creation input
func (e *OpportunityEntry) ToInput() model.OpportunityInput {
	in := model.OpportunityInput{
		Name:              e.Name,
		Description:       e.Description,
		Scores:            model.DefaultScores(),
		QuickWinPotential: e.QuickWinPotential,
		TechnologyType:    types.TechnologyType(e.TechnologyType),
	}
	if in.TechnologyType == "" {
		in.TechnologyType = types.DefaultTechnologyType
	}
	for _, f := range model.ScoreFields() {
		if v, ok := e.Scores[f.Key]; ok {
			f.Set(&in.Scores, types.Score(v))
		}
	}
	return in
}

// Validate checks every entry of the dataset
func (d *Dataset) Validate() error {
	if len(d.Opportunities) == 0 {
		return goerr.Wrap(ErrEmptyDataset, "dataset has no opportunity")
	}
	for i, entry := range d.Opportunities {
		if err := entry.Validate(); err != nil {
			return goerr.Wrap(err, "invalid opportunity entry",
				goerr.V(EntryIndexKey, i),
				goerr.V(EntryNameKey, entry.Name))
		}
	}
	return nil
}

// Inputs converts every entry in order
func (d *Dataset) Inputs() []model.OpportunityInput {
	inputs := make([]model.OpportunityInput, len(d.Opportunities))
	for i := range d.Opportunities {
		inputs[i] = d.Opportunities[i].ToInput()
	}
	return inputs
}

// ParseDataset decodes a TOML dataset without validating it
func ParseDataset(data []byte) (*Dataset, error) {
	var dataset Dataset
	if err := toml.Unmarshal(data, &dataset); err != nil {
		return nil, goerr.Wrap(ErrInvalidDataset, "failed to parse TOML dataset", goerr.V("cause", err.Error()))
	}
	return &dataset, nil
}

// LoadDataset reads, parses and validates a TOML dataset file
func LoadDataset(path string) (*Dataset, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrDatasetNotFound, "failed to read dataset file", goerr.V(DatasetPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read dataset file", goerr.V(DatasetPathKey, path))
	}

	dataset, err := ParseDataset(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset", goerr.V(DatasetPathKey, path))
	}

	if err := dataset.Validate(); err != nil {
		return nil, goerr.Wrap(err, "dataset validation failed", goerr.V(DatasetPathKey, path))
	}

	return dataset, nil
}

// DefaultDataset returns the built-in sample portfolio
func DefaultDataset() (*Dataset, error) {
	dataset, err := ParseDataset(defaultDataset)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load default dataset")
	}
	if err := dataset.Validate(); err != nil {
		return nil, goerr.Wrap(err, "default dataset is invalid")
	}
	return dataset, nil
}

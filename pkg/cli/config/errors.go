package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrDatasetNotFound  = goerr.New("dataset file not found")
	ErrInvalidDataset   = goerr.New("invalid dataset")
	ErrEmptyDataset     = goerr.New("dataset is empty")
	ErrInvalidLogLevel  = goerr.New("invalid log level")
	ErrInvalidLogFormat = goerr.New("invalid log format")
)

// Context keys for error values
const (
	DatasetPathKey = "dataset_path"
	EntryIndexKey  = "entry_index"
	EntryNameKey   = "entry_name"
	LogLevelKey    = "log_level"
	LogFormatKey   = "log_format"
)

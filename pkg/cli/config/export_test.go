package config

// NewLoggerForTest creates a Logger config without going through flags
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{level: level, format: format, output: output}
}

// NewRepositoryForTest creates a Repository config without going through flags
func NewRepositoryForTest(seedPath string, noSeed bool) *Repository {
	return &Repository{seedPath: seedPath, noSeed: noSeed}
}

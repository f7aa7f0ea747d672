package interfaces

import "github.com/m-mizutani/goerr/v2"

// Errors every repository backend reports with errors.Is-compatible wrapping
var (
	ErrNotFound    = goerr.New("not found")
	ErrDuplicateID = goerr.New("duplicate ID")
	ErrInvalidID   = goerr.New("invalid ID")
)

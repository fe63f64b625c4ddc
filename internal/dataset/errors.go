package dataset

import (
	"errors"
	"fmt"
)

// ErrNoHeader is returned when the input has no header row.
var ErrNoHeader = errors.New("dataset has no header row")

// ColumnError reports a configured column that is missing from the input.
type ColumnError struct {
	Role   string
	Column string
}

func (e *ColumnError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("no column configured for %s", e.Role)
	}
	return fmt.Sprintf("%s column %q not found in header", e.Role, e.Column)
}

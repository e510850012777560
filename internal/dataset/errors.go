package dataset

import (
	"fmt"
	"strings"
)

// Load failures are typed so handlers can turn each one into a short
// user-facing message instead of a trace.

type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("dataset file not found: %s", e.Path)
}

type MissingColumnError struct {
	Path    string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset %s missing required columns: %s", e.Path, strings.Join(e.Columns, ", "))
}

type EmptyDatasetError struct {
	Path string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("dataset is empty: %s", e.Path)
}

package usecase

import (
	"errors"
	"strings"

	"pad2skills/internal/dataset"
)

// UserMessage translates a load failure into the short message shown in
// place of the affected chart or table. Raw errors never reach the end user.
func UserMessage(err error) string {
	var missingFile *dataset.MissingFileError
	if errors.As(err, &missingFile) {
		return "Unable to load data. Please check data files."
	}

	var missingColumn *dataset.MissingColumnError
	if errors.As(err, &missingColumn) {
		return "Missing required columns: " + strings.Join(missingColumn.Columns, ", ")
	}

	var empty *dataset.EmptyDatasetError
	if errors.As(err, &empty) {
		return "The dataset is empty. Please check data files."
	}

	if errors.Is(err, ErrProjectNotFound) {
		return "Project not found."
	}
	if errors.Is(err, ErrInvalidInput) {
		return "Invalid selection."
	}
	return "Something went wrong loading this view."
}

// IsDataUnavailable reports whether err is one of the typed load failures, as
// opposed to bad input or an internal fault.
func IsDataUnavailable(err error) bool {
	var missingFile *dataset.MissingFileError
	var missingColumn *dataset.MissingColumnError
	var empty *dataset.EmptyDatasetError
	return errors.As(err, &missingFile) || errors.As(err, &missingColumn) || errors.As(err, &empty)
}

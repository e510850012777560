package repository

import (
	"pad2skills/internal/dataset"
)

// OccupationRepository serves the project-occupation table.
type OccupationRepository interface {
	Table() (*dataset.Table, error)
}

type DatasetOccupationRepository struct {
	loader *dataset.Loader
	path   string
}

func NewDatasetOccupationRepository(loader *dataset.Loader, path string) *DatasetOccupationRepository {
	return &DatasetOccupationRepository{loader: loader, path: path}
}

func (r *DatasetOccupationRepository) Table() (*dataset.Table, error) {
	return r.loader.Load(r.path, dataset.ProjectOccupationColumns...)
}

package repository

import (
	"pad2skills/internal/dataset"
)

// TrainingRepository serves the training program bundles table. The file has
// no required-column contract.
type TrainingRepository interface {
	Table() (*dataset.Table, error)
}

type DatasetTrainingRepository struct {
	loader *dataset.Loader
	path   string
}

func NewDatasetTrainingRepository(loader *dataset.Loader, path string) *DatasetTrainingRepository {
	return &DatasetTrainingRepository{loader: loader, path: path}
}

func (r *DatasetTrainingRepository) Table() (*dataset.Table, error) {
	return r.loader.Load(r.path)
}

package repository

import (
	"pad2skills/internal/dataset"
)

// SkillRepository serves the occupation-skill table.
type SkillRepository interface {
	Table() (*dataset.Table, error)
}

type DatasetSkillRepository struct {
	loader *dataset.Loader
	path   string
}

func NewDatasetSkillRepository(loader *dataset.Loader, path string) *DatasetSkillRepository {
	return &DatasetSkillRepository{loader: loader, path: path}
}

func (r *DatasetSkillRepository) Table() (*dataset.Table, error) {
	return r.loader.Load(r.path, dataset.ProjectOccupationSkillColumns...)
}

package usecase

import (
	"context"

	"pad2skills/internal/repository"
)

type TrainingBundles struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// TrainingUsecase lists training program bundles as loaded, with no column
// contract: the file is an optional companion dataset.
type TrainingUsecase interface {
	ListBundles(ctx context.Context) (TrainingBundles, error)
}

type Training struct {
	repo repository.TrainingRepository
}

func NewTrainingUsecase(repo repository.TrainingRepository) *Training {
	return &Training{repo: repo}
}

func (u *Training) ListBundles(ctx context.Context) (TrainingBundles, error) {
	table, err := u.repo.Table()
	if err != nil {
		return TrainingBundles{}, err
	}

	rows := make([][]string, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		rows = append(rows, table.Row(i))
	}
	return TrainingBundles{Columns: table.Columns(), Rows: rows}, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"pad2skills/internal/dataset"
)

type fakeStatusCache struct {
	err         error
	invalidated int
}

func (f *fakeStatusCache) Ping(context.Context) error { return f.err }

func (f *fakeStatusCache) InvalidateAggregates(context.Context) error {
	f.invalidated++
	return nil
}

func TestStatus_GetStatus(t *testing.T) {
	uc := NewStatusUsecase(
		fakeOccupationRepo{table: occupationTable()},
		fakeSkillRepo{table: skillTable()},
		fakeOccupationRepo{err: &dataset.MissingFileError{Path: "data/training_program_bundles.csv"}},
		dataset.NewLoader(nil),
		dataset.PathsIn("data"),
		&fakeStatusCache{},
	)

	st, err := uc.GetStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(st.Datasets) != 3 {
		t.Fatalf("expected 3 datasets, got %d", len(st.Datasets))
	}
	if !st.Datasets[0].OK || st.Datasets[0].Rows != 4 {
		t.Fatalf("unexpected occupation status %+v", st.Datasets[0])
	}
	if st.Datasets[2].OK {
		t.Fatalf("expected training dataset unavailable")
	}
	if st.Datasets[2].Message != "Unable to load data. Please check data files." {
		t.Fatalf("unexpected message %q", st.Datasets[2].Message)
	}

	// hydrologist rows in the skill table have no occupation counterpart.
	if st.OrphanSkillRows != 1 {
		t.Fatalf("expected 1 orphan row, got %d", st.OrphanSkillRows)
	}
	if !st.CacheHealthy {
		t.Fatalf("expected healthy cache")
	}
	if st.ServerTime.IsZero() {
		t.Fatalf("expected server time set")
	}
}

func TestStatus_CacheUnhealthy(t *testing.T) {
	uc := NewStatusUsecase(
		fakeOccupationRepo{table: occupationTable()},
		fakeSkillRepo{table: skillTable()},
		fakeOccupationRepo{table: occupationTable()},
		dataset.NewLoader(nil),
		dataset.PathsIn("data"),
		&fakeStatusCache{err: errors.New("redis unavailable")},
	)

	st, err := uc.GetStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if st.CacheHealthy {
		t.Fatalf("expected unhealthy cache")
	}
}

func TestStatus_ReloadInvalidatesAggregates(t *testing.T) {
	cache := &fakeStatusCache{}
	uc := NewStatusUsecase(
		fakeOccupationRepo{table: occupationTable()},
		fakeSkillRepo{table: skillTable()},
		fakeOccupationRepo{table: occupationTable()},
		dataset.NewLoader(nil),
		dataset.PathsIn("data"),
		cache,
	)

	st, err := uc.Reload(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected 1 invalidation, got %d", cache.invalidated)
	}
	if len(st.Datasets) != 3 {
		t.Fatalf("expected 3 datasets, got %d", len(st.Datasets))
	}
}

package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"pad2skills/internal/chart"
	"pad2skills/internal/dataset"
)

type fakeOccupationRepo struct {
	table *dataset.Table
	err   error
}

func (f fakeOccupationRepo) Table() (*dataset.Table, error) { return f.table, f.err }

func occupationTable() *dataset.Table {
	cols := []string{
		"project_id", "project_title", "short_summary", "esco_id",
		"occupation_esco", "industry_cat_label", "onet_job_zone_label", "pad_activities",
	}
	return dataset.NewTable(cols, [][]string{
		{"P1", "Grid Upgrade", "Extends the grid.", "E1", "electrician", "Energy", "Medium Preparation", "wiring substations"},
		{"P1", "Grid Upgrade", "Extends the grid.", "E2", "line worker", "Energy", "Low Preparation", "stringing lines"},
		{"P2", "Irrigation", "Builds canals.", "E1", "electrician", "Energy", "Medium Preparation", "pump stations"},
		{"P2", "Irrigation", "Builds canals.", "E3", "surveyor", "Water", "High Preparation", "canal surveys"},
	})
}

func TestOverview_Projects(t *testing.T) {
	uc := NewOverviewUsecase(fakeOccupationRepo{table: occupationTable()}, nil)

	all, err := uc.Projects(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(all, []string{"Grid Upgrade", "Irrigation"}) {
		t.Fatalf("unexpected projects %v", all)
	}

	found, err := uc.Projects(context.Background(), "irriga")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(found, []string{"Irrigation"}) {
		t.Fatalf("unexpected search result %v", found)
	}
}

func TestOverview_ProjectInfo(t *testing.T) {
	uc := NewOverviewUsecase(fakeOccupationRepo{table: occupationTable()}, nil)

	info, err := uc.ProjectInfo(context.Background(), "Irrigation")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if info.ShortSummary != "Builds canals." {
		t.Fatalf("unexpected summary %q", info.ShortSummary)
	}

	if _, err := uc.ProjectInfo(context.Background(), "Nope"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if _, err := uc.ProjectInfo(context.Background(), "ALL"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOverview_IndustryDonut_AllDedupesOccupations(t *testing.T) {
	uc := NewOverviewUsecase(fakeOccupationRepo{table: occupationTable()}, nil)

	donut, err := uc.IndustryDonut(context.Background(), "ALL")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// E1 appears in both projects but counts once; Energy has E1+E2, Water E3.
	want := []IndustryCount{
		{Industry: "Energy", Display: "Energy", Count: 2},
		{Industry: "Water", Display: "Water", Count: 1},
	}
	if !reflect.DeepEqual(donut.Industries, want) {
		t.Fatalf("expected %v, got %v", want, donut.Industries)
	}
	if donut.Chart.Kind != chart.KindDonut {
		t.Fatalf("expected donut chart, got %s", donut.Chart.Kind)
	}
}

func TestOverview_IndustryDonut_UnknownProjectIsPlaceholder(t *testing.T) {
	uc := NewOverviewUsecase(fakeOccupationRepo{table: occupationTable()}, nil)

	donut, err := uc.IndustryDonut(context.Background(), "No Such Project")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if donut.Chart.Kind != chart.KindNoData {
		t.Fatalf("expected no_data, got %s", donut.Chart.Kind)
	}
	if len(donut.Industries) != 0 {
		t.Fatalf("expected no industries, got %v", donut.Industries)
	}
}

func TestOverview_IndustryDonut_UsesCache(t *testing.T) {
	cache := newMemCache()
	uc := NewOverviewUsecase(fakeOccupationRepo{table: occupationTable()}, cache)

	if _, err := uc.IndustryDonut(context.Background(), "Grid Upgrade"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.IndustryDonut(context.Background(), "grid upgrade "); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Normalized selections share the key, so the second render is a hit.
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache write, got %d", cache.sets)
	}
	if cache.hits != 1 {
		t.Fatalf("expected 1 cache hit, got %d", cache.hits)
	}
}

func TestOverview_Details_Pagination(t *testing.T) {
	uc := NewOverviewUsecase(fakeOccupationRepo{table: occupationTable()}, nil)

	page, err := uc.Details(context.Background(), "ALL", "All Industries", 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.TotalRows != 3 || page.TotalPages != 1 {
		t.Fatalf("unexpected page meta %+v", page)
	}
	// Sorted by (industry, occupation): Energy/electrician first.
	if page.Rows[0].Occupation != "electrician" {
		t.Fatalf("unexpected first row %+v", page.Rows[0])
	}

	// Out-of-bounds pages reset to the first page.
	reset, err := uc.Details(context.Background(), "ALL", "All Industries", 9)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reset.Page != 0 {
		t.Fatalf("expected page reset, got %d", reset.Page)
	}
}

func TestOverview_ExportDetails_RoundTripsThroughLoader(t *testing.T) {
	uc := NewOverviewUsecase(fakeOccupationRepo{table: occupationTable()}, nil)

	b, name, err := uc.ExportDetails(context.Background(), "Grid Upgrade", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if name != "occupations_details.csv" {
		t.Fatalf("unexpected filename %q", name)
	}

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Industry,Occupation (ESCO),Preparation Level (O*NET)") {
		t.Fatalf("unexpected header %q", lines[0])
	}
}

func TestOverview_RepoErrorPropagates(t *testing.T) {
	repoErr := &dataset.MissingFileError{Path: "data/project_occupation_data.csv"}
	uc := NewOverviewUsecase(fakeOccupationRepo{err: repoErr}, nil)

	_, err := uc.IndustryDonut(context.Background(), "ALL")
	var missing *dataset.MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFileError, got %v", err)
	}
	if msg := UserMessage(err); msg != "Unable to load data. Please check data files." {
		t.Fatalf("unexpected user message %q", msg)
	}
}

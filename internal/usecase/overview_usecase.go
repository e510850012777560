package usecase

import (
	"context"
	"strings"

	"pad2skills/internal/chart"
	"pad2skills/internal/dataset"
	"pad2skills/internal/domain/occupation"
	"pad2skills/internal/repository"
	"pad2skills/internal/transform"
)

const detailsRowsPerPage = 10

// IndustryCount pairs an industry with its unique-occupation count and the
// truncated label the mobile UI shows.
type IndustryCount struct {
	Industry string `json:"industry"`
	Display  string `json:"display"`
	Count    int    `json:"count"`
}

type ProjectInfo struct {
	Title        string `json:"title"`
	ShortSummary string `json:"short_summary"`
}

type IndustryDonut struct {
	Chart      chart.Spec      `json:"chart"`
	Industries []IndustryCount `json:"industries"`
}

type JobRow struct {
	Industry        string `json:"industry,omitempty"`
	Occupation      string `json:"occupation_esco"`
	Preparation     string `json:"preparation_level"`
	ExampleActivity string `json:"pad_activities"`
}

type DetailsPage struct {
	Rows        []JobRow `json:"rows"`
	Page        int      `json:"page"`
	TotalPages  int      `json:"total_pages"`
	TotalRows   int      `json:"total_rows"`
	RowsPerPage int      `json:"rows_per_page"`
}

// OverviewUsecase backs the occupations overview page: project selection,
// the occupations-by-industry donut, example jobs and the details table.
type OverviewUsecase interface {
	Projects(ctx context.Context, search string) ([]string, error)
	ProjectInfo(ctx context.Context, title string) (ProjectInfo, error)
	IndustryDonut(ctx context.Context, project string) (IndustryDonut, error)
	ExampleJobs(ctx context.Context, project, industry string) ([]JobRow, error)
	Details(ctx context.Context, project, industry string, page int) (DetailsPage, error)
	ExportDetails(ctx context.Context, project, industry string) ([]byte, string, error)
}

type Overview struct {
	repo  repository.OccupationRepository
	cache AggregateCache
}

func NewOverviewUsecase(repo repository.OccupationRepository, cache AggregateCache) *Overview {
	return &Overview{repo: repo, cache: cache}
}

// Projects lists distinct project titles sorted ascending, optionally
// narrowed by a case-insensitive substring search. The ALL sentinel is the
// caller's concern; it is not part of the list.
func (u *Overview) Projects(ctx context.Context, search string) ([]string, error) {
	table, err := u.repo.Table()
	if err != nil {
		return nil, err
	}

	titles := transform.DistinctValues(table, "project_title")
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return titles, nil
	}

	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if strings.Contains(strings.ToLower(t), search) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (u *Overview) ProjectInfo(ctx context.Context, title string) (ProjectInfo, error) {
	if strings.TrimSpace(title) == "" || transform.IsAll(title) {
		return ProjectInfo{}, ErrInvalidInput
	}

	table, err := u.repo.Table()
	if err != nil {
		return ProjectInfo{}, err
	}

	rows := transform.FilterEquals(table, "project_title", title)
	if rows.Empty() {
		return ProjectInfo{}, ErrProjectNotFound
	}

	row := occupation.FromRow(rows, 0)
	return ProjectInfo{Title: row.ProjectTitle, ShortSummary: row.ShortSummary}, nil
}

// IndustryDonut aggregates unique occupations (by ESCO id) per industry for
// the selected project. Under ALL, rows are first deduped to one per
// occupation so cross-project occupations count once.
func (u *Overview) IndustryDonut(ctx context.Context, project string) (IndustryDonut, error) {
	key := AggregateCacheKey("industry_donut", project, "", false)

	var counts []transform.GroupCount
	if !cacheGet(ctx, u.cache, key, &counts) {
		table, err := u.filteredByProject(project)
		if err != nil {
			return IndustryDonut{}, err
		}
		counts = transform.AggregateUnique(table, "industry_cat_label", "esco_id")
		cacheSet(ctx, u.cache, key, counts)
	}

	industries := make([]IndustryCount, 0, len(counts))
	display := make([]transform.GroupCount, 0, len(counts))
	for _, c := range counts {
		industries = append(industries, IndustryCount{
			Industry: c.Key,
			Display:  chart.ShortenIndustry(c.Key),
			Count:    c.Count,
		})
		display = append(display, transform.GroupCount{Key: chart.ShortenIndustry(c.Key), Count: c.Count})
	}

	return IndustryDonut{
		Chart:      chart.Donut(display, "Occupation Counts by Industry"),
		Industries: industries,
	}, nil
}

func (u *Overview) ExampleJobs(ctx context.Context, project, industry string) ([]JobRow, error) {
	table, err := u.filteredByProject(project)
	if err != nil {
		return nil, err
	}
	table = transform.FilterEquals(table, "industry_cat_label", industry)

	sample := transform.Sample(table, 3)
	rows := make([]JobRow, 0, sample.Len())
	for i := 0; i < sample.Len(); i++ {
		row := occupation.FromRow(sample, i)
		rows = append(rows, JobRow{
			Occupation:      row.OccupationEsco,
			Preparation:     row.PreparationLabel,
			ExampleActivity: row.PadActivities,
		})
	}
	return rows, nil
}

func (u *Overview) Details(ctx context.Context, project, industry string, page int) (DetailsPage, error) {
	if page < 0 {
		return DetailsPage{}, ErrInvalidInput
	}

	table, err := u.detailsTable(project, industry)
	if err != nil {
		return DetailsPage{}, err
	}

	total := table.Len()
	totalPages := (total-1)/detailsRowsPerPage + 1
	if total == 0 {
		totalPages = 0
	}
	if page >= totalPages {
		page = 0
	}

	view := table.Slice(page*detailsRowsPerPage, (page+1)*detailsRowsPerPage)
	rows := make([]JobRow, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		row := occupation.FromRow(view, i)
		rows = append(rows, JobRow{
			Industry:        chart.ShortenIndustry(row.Industry),
			Occupation:      row.OccupationEsco,
			Preparation:     row.PreparationLabel,
			ExampleActivity: row.PadActivities,
		})
	}

	return DetailsPage{
		Rows:        rows,
		Page:        page,
		TotalPages:  totalPages,
		TotalRows:   total,
		RowsPerPage: detailsRowsPerPage,
	}, nil
}

// ExportDetails serializes the full filtered details table (all pages, full
// industry labels) with display column names.
func (u *Overview) ExportDetails(ctx context.Context, project, industry string) ([]byte, string, error) {
	table, err := u.detailsTable(project, industry)
	if err != nil {
		return nil, "", err
	}

	view := table.Select(
		[]string{"industry_cat_label", "occupation_esco", "onet_job_zone_label", "pad_activities"},
		map[string]string{
			"industry_cat_label":  "Industry",
			"occupation_esco":     "Occupation (ESCO)",
			"onet_job_zone_label": "Preparation Level (O*NET)",
			"pad_activities":      "Example PAD Activities",
		},
	)

	b, err := dataset.ExportCSV(view)
	if err != nil {
		return nil, "", err
	}
	return b, "occupations_details.csv", nil
}

func (u *Overview) filteredByProject(project string) (*dataset.Table, error) {
	table, err := u.repo.Table()
	if err != nil {
		return nil, err
	}
	if transform.IsAll(project) {
		return transform.DedupeBy(table, "esco_id"), nil
	}
	return transform.FilterEquals(table, "project_title", project), nil
}

func (u *Overview) detailsTable(project, industry string) (*dataset.Table, error) {
	table, err := u.filteredByProject(project)
	if err != nil {
		return nil, err
	}
	table = transform.FilterEquals(table, "industry_cat_label", industry)
	return transform.SortBy(table, "industry_cat_label", "occupation_esco"), nil
}

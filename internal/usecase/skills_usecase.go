package usecase

import (
	"context"

	"pad2skills/internal/chart"
	"pad2skills/internal/dataset"
	"pad2skills/internal/domain/skill"
	"pad2skills/internal/repository"
	"pad2skills/internal/transform"
)

const prepColumn = "preparation_category"

type SkillFilters struct {
	Projects        []string `json:"projects"`
	Industries      []string `json:"industries"`
	PrepLevels      []string `json:"preparation_levels"`
	SkillCategories []string `json:"skill_categories"`
}

type SkillRow struct {
	Occupation    string `json:"occupation_esco"`
	Preparation   string `json:"preparation_level"`
	SkillCategory string `json:"skill_category"`
	Skill         string `json:"skill"`
}

type SkillDetailsParams struct {
	Project       string
	Industry      string
	TopFive       bool
	PrepLabel     string
	SkillCategory string
	Page          int
}

type SkillDetailsPage struct {
	Rows        []SkillRow `json:"rows"`
	Page        int        `json:"page"`
	TotalPages  int        `json:"total_pages"`
	TotalRows   int        `json:"total_rows"`
	RowsPerPage int        `json:"rows_per_page"`
	// OrphanNote reminds the reader when some rows reference occupations
	// absent from the occupation table. Soft invariant; rows stay visible.
	OrphanNote string `json:"orphan_note,omitempty"`
}

// SkillsUsecase backs the skills-by-level page: the preparation-by-category
// heatmap, example skills and the filterable details table.
type SkillsUsecase interface {
	Filters(ctx context.Context) (SkillFilters, error)
	Heatmap(ctx context.Context, project, industry string, topFive bool) (chart.Spec, error)
	CategoryBar(ctx context.Context, project, industry string, topFive bool) (chart.Spec, error)
	ExampleSkills(ctx context.Context, project, industry string, topFive bool) ([]SkillRow, error)
	Details(ctx context.Context, params SkillDetailsParams) (SkillDetailsPage, error)
	ExportDetails(ctx context.Context, params SkillDetailsParams) ([]byte, string, error)
}

type Skills struct {
	repo    repository.SkillRepository
	occRepo repository.OccupationRepository
	cache   AggregateCache
}

func NewSkillsUsecase(repo repository.SkillRepository, occRepo repository.OccupationRepository, cache AggregateCache) *Skills {
	return &Skills{repo: repo, occRepo: occRepo, cache: cache}
}

func (u *Skills) Filters(ctx context.Context) (SkillFilters, error) {
	table, err := u.repo.Table()
	if err != nil {
		return SkillFilters{}, err
	}

	return SkillFilters{
		Projects:        transform.DistinctValues(table, "project_title"),
		Industries:      transform.DistinctValues(table, "industry_cat_label"),
		PrepLevels:      transform.DistinctValues(table, "onet_job_zone_label"),
		SkillCategories: transform.DistinctValues(table, "skill_category_label"),
	}, nil
}

// Heatmap cross-tabulates skill categories against preparation categories,
// with percentages normalized within each preparation column.
func (u *Skills) Heatmap(ctx context.Context, project, industry string, topFive bool) (chart.Spec, error) {
	key := AggregateCacheKey("skills_heatmap", project, industry, topFive)

	var pivot transform.Pivot
	if !cacheGet(ctx, u.cache, key, &pivot) {
		table, err := u.filtered(project, industry, topFive)
		if err != nil {
			return chart.Spec{}, err
		}
		if table.Empty() {
			return chart.NoData("No skills found for the selected filters."), nil
		}

		augmented := transform.WithDerived(table, prepColumn, func(t *dataset.Table, row int) string {
			return skill.PreparationCategory(t.Cell(row, "onet_job_zone"))
		})
		pivot = transform.PivotPercentages(augmented, "skill_category_label", prepColumn, skill.PrepOrder)
		cacheSet(ctx, u.cache, key, pivot)
	}

	for i, r := range pivot.Rows {
		pivot.Rows[i] = chart.ShortenSkillCategory(r)
	}
	return chart.Heatmap(pivot, ""), nil
}

// CategoryBar counts skill rows per category for the selection, rendered as
// a horizontal bar so category labels fit a phone screen.
func (u *Skills) CategoryBar(ctx context.Context, project, industry string, topFive bool) (chart.Spec, error) {
	key := AggregateCacheKey("skills_category_bar", project, industry, topFive)

	var counts []transform.GroupCount
	if !cacheGet(ctx, u.cache, key, &counts) {
		table, err := u.filtered(project, industry, topFive)
		if err != nil {
			return chart.Spec{}, err
		}
		counts = transform.AggregateCounts(table, "skill_category_label")
		cacheSet(ctx, u.cache, key, counts)
	}

	for i, c := range counts {
		counts[i].Key = chart.ShortenSkillCategory(c.Key)
	}
	return chart.HorizontalBar(counts, "Skills by Category"), nil
}

func (u *Skills) ExampleSkills(ctx context.Context, project, industry string, topFive bool) ([]SkillRow, error) {
	table, err := u.filtered(project, industry, topFive)
	if err != nil {
		return nil, err
	}

	sample := transform.Sample(table, 3)
	rows := make([]SkillRow, 0, sample.Len())
	for i := 0; i < sample.Len(); i++ {
		row := skill.FromRow(sample, i)
		rows = append(rows, SkillRow{
			Occupation:    row.OccupationEsco,
			Preparation:   row.PreparationLabel,
			SkillCategory: row.SkillCategory,
			Skill:         row.SkillLabel,
		})
	}
	return rows, nil
}

func (u *Skills) Details(ctx context.Context, params SkillDetailsParams) (SkillDetailsPage, error) {
	if params.Page < 0 {
		return SkillDetailsPage{}, ErrInvalidInput
	}

	table, err := u.detailsTable(params)
	if err != nil {
		return SkillDetailsPage{}, err
	}

	total := table.Len()
	totalPages := (total-1)/detailsRowsPerPage + 1
	if total == 0 {
		totalPages = 0
	}
	// Reset out-of-bounds pages instead of failing; filters shrink tables
	// between interactions.
	page := params.Page
	if page >= totalPages {
		page = 0
	}

	view := table.Slice(page*detailsRowsPerPage, (page+1)*detailsRowsPerPage)
	rows := make([]SkillRow, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		row := skill.FromRow(view, i)
		rows = append(rows, SkillRow{
			Occupation:    row.OccupationEsco,
			Preparation:   row.PreparationLabel,
			SkillCategory: row.SkillCategory,
			Skill:         row.SkillLabel,
		})
	}

	return SkillDetailsPage{
		Rows:        rows,
		Page:        page,
		TotalPages:  totalPages,
		TotalRows:   total,
		RowsPerPage: detailsRowsPerPage,
		OrphanNote:  u.orphanNote(table),
	}, nil
}

func (u *Skills) ExportDetails(ctx context.Context, params SkillDetailsParams) ([]byte, string, error) {
	table, err := u.detailsTable(params)
	if err != nil {
		return nil, "", err
	}

	view := table.Select(
		[]string{"occupation_esco", "onet_job_zone_label", "skill_category_label", "skill_label"},
		map[string]string{
			"occupation_esco":      "Occupation (ESCO)",
			"onet_job_zone_label":  "Preparation Level (O*NET)",
			"skill_category_label": "Skill Category",
			"skill_label":          "Skill",
		},
	)

	b, err := dataset.ExportCSV(view)
	if err != nil {
		return nil, "", err
	}
	return b, "skills_details_filtered.csv", nil
}

func (u *Skills) filtered(project, industry string, topFive bool) (*dataset.Table, error) {
	table, err := u.repo.Table()
	if err != nil {
		return nil, err
	}
	table = transform.FilterEquals(table, "project_title", project)
	table = transform.FilterEquals(table, "industry_cat_label", industry)
	if topFive {
		table = transform.FilterTrue(table, "top_five")
	}
	return table, nil
}

func (u *Skills) detailsTable(params SkillDetailsParams) (*dataset.Table, error) {
	table, err := u.filtered(params.Project, params.Industry, params.TopFive)
	if err != nil {
		return nil, err
	}

	if !transform.IsAll(params.PrepLabel) {
		table = transform.FilterEquals(table, "onet_job_zone_label", params.PrepLabel)
	}
	if !transform.IsAll(params.SkillCategory) {
		table = transform.FilterEquals(table, "skill_category_label", params.SkillCategory)
	}

	augmented := transform.WithDerived(table, prepColumn, func(t *dataset.Table, row int) string {
		return skill.PreparationCategory(t.Cell(row, "onet_job_zone"))
	})
	return transform.SortByRank(augmented, prepColumn, skill.PrepRank, "skill_category_label", "occupation_esco"), nil
}

// orphanNote flags skill rows whose occupation never appears in the
// occupation table. The rows stay visible.
func (u *Skills) orphanNote(table *dataset.Table) string {
	if u.occRepo == nil || table.Empty() {
		return ""
	}
	occTable, err := u.occRepo.Table()
	if err != nil {
		return ""
	}

	known := make(map[string]bool)
	for i := 0; i < occTable.Len(); i++ {
		known[occTable.Cell(i, "occupation_esco")] = true
	}

	orphans := 0
	for i := 0; i < table.Len(); i++ {
		if !known[table.Cell(i, "occupation_esco")] {
			orphans++
		}
	}
	if orphans == 0 {
		return ""
	}
	return "Some rows reference occupations missing from the occupation dataset; they are shown as-is."
}

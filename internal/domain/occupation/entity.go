package occupation

import "pad2skills/internal/dataset"

// ProjectOccupation is one (project, occupation) pair extracted from a
// Project Appraisal Document.
type ProjectOccupation struct {
	ProjectID        string
	ProjectTitle     string
	ShortSummary     string
	EscoID           string
	OccupationEsco   string
	Industry         string
	PreparationLabel string
	PadActivities    string
}

func FromRow(t *dataset.Table, row int) ProjectOccupation {
	return ProjectOccupation{
		ProjectID:        t.Cell(row, "project_id"),
		ProjectTitle:     t.Cell(row, "project_title"),
		ShortSummary:     t.Cell(row, "short_summary"),
		EscoID:           t.Cell(row, "esco_id"),
		OccupationEsco:   t.Cell(row, "occupation_esco"),
		Industry:         t.Cell(row, "industry_cat_label"),
		PreparationLabel: t.Cell(row, "onet_job_zone_label"),
		PadActivities:    t.Cell(row, "pad_activities"),
	}
}

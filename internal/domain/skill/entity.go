package skill

import (
	"strconv"
	"strings"

	"pad2skills/internal/dataset"
)

// OccupationSkill is one (occupation, skill) pair with its O*NET context.
type OccupationSkill struct {
	ProjectTitle     string
	OccupationEsco   string
	JobZone          string
	PreparationLabel string
	SkillCategory    string
	SkillLabel       string
	Industry         string
	TopFive          bool
}

func FromRow(t *dataset.Table, row int) OccupationSkill {
	return OccupationSkill{
		ProjectTitle:     t.Cell(row, "project_title"),
		OccupationEsco:   t.Cell(row, "occupation_esco"),
		JobZone:          t.Cell(row, "onet_job_zone"),
		PreparationLabel: t.Cell(row, "onet_job_zone_label"),
		SkillCategory:    t.Cell(row, "skill_category_label"),
		SkillLabel:       t.Cell(row, "skill_label"),
		Industry:         t.Cell(row, "industry_cat_label"),
		TopFive:          isTrue(t.Cell(row, "top_five")),
	}
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1":
		return true
	}
	return false
}

// Preparation categories collapse the five O*NET job zones into the three
// training-intensity buckets the heatmap renders.
const (
	PrepLow     = "Low (1-2)"
	PrepMedium  = "Medium (3)"
	PrepHigh    = "High (4-5)"
	PrepUnknown = "Unknown"
)

// PrepOrder fixes the Low < Medium < High rendering order.
var PrepOrder = []string{PrepLow, PrepMedium, PrepHigh}

// PrepRank maps categories to their sort position; Unknown sorts last.
var PrepRank = map[string]int{PrepLow: 0, PrepMedium: 1, PrepHigh: 2}

// PreparationCategory maps an O*NET job zone value (a number serialized as
// text, often with a trailing ".0") to its preparation bucket.
func PreparationCategory(jobZone string) string {
	zone, err := strconv.ParseFloat(strings.TrimSpace(jobZone), 64)
	if err != nil {
		return PrepUnknown
	}
	switch {
	case zone <= 2:
		return PrepLow
	case zone == 3:
		return PrepMedium
	default:
		return PrepHigh
	}
}

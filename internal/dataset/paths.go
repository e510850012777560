package dataset

import "path/filepath"

// File names under the data directory. These are the only persisted state of
// the dashboard.
const (
	ProjectOccupationFile      = "project_occupation_data.csv"
	ProjectOccupationSkillFile = "project_occupation_skill_data.csv"
	TrainingProgramBundlesFile = "training_program_bundles.csv"
)

// Column contracts of the two core datasets. Loading a file missing any of
// these fails with MissingColumnError instead of producing a partial table.
var (
	ProjectOccupationColumns = []string{
		"project_id",
		"project_title",
		"short_summary",
		"esco_id",
		"occupation_esco",
		"industry_cat_label",
		"onet_job_zone_label",
		"pad_activities",
	}

	ProjectOccupationSkillColumns = []string{
		"project_title",
		"occupation_esco",
		"onet_job_zone",
		"onet_job_zone_label",
		"skill_category_label",
		"skill_label",
		"industry_cat_label",
		"top_five",
	}
)

type Paths struct {
	ProjectOccupation      string
	ProjectOccupationSkill string
	TrainingProgramBundles string
}

func PathsIn(dataDir string) Paths {
	return Paths{
		ProjectOccupation:      filepath.Join(dataDir, ProjectOccupationFile),
		ProjectOccupationSkill: filepath.Join(dataDir, ProjectOccupationSkillFile),
		TrainingProgramBundles: filepath.Join(dataDir, TrainingProgramBundlesFile),
	}
}

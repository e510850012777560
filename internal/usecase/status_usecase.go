package usecase

import (
	"context"
	"time"

	"pad2skills/internal/dataset"
	"pad2skills/internal/repository"
)

type DatasetStatus struct {
	Name     string     `json:"name"`
	OK       bool       `json:"ok"`
	Rows     int        `json:"rows"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
	Message  string     `json:"message,omitempty"`
}

type Status struct {
	Datasets []DatasetStatus `json:"datasets"`
	// OrphanSkillRows counts skill rows referencing occupations absent from
	// the occupation table. Soft invariant, reported only.
	OrphanSkillRows int       `json:"orphan_skill_rows"`
	CacheHealthy    bool      `json:"cache_healthy"`
	ServerTime      time.Time `json:"server_time"`
}

// StatusUsecase reports dataset health for the status endpoint: row counts,
// load times, referential warnings and cache reachability. Reload drops the
// loaded tables and memoized aggregates so replaced CSV files take effect
// without a restart.
type StatusUsecase interface {
	GetStatus(ctx context.Context) (Status, error)
	Reload(ctx context.Context) (Status, error)
}

// StatusCache is the cache surface the status usecase needs: a health probe
// and aggregate invalidation on reload.
type StatusCache interface {
	Ping(ctx context.Context) error
	InvalidateAggregates(ctx context.Context) error
}

type StatusService struct {
	occ      repository.OccupationRepository
	skills   repository.SkillRepository
	training repository.TrainingRepository
	loader   *dataset.Loader
	paths    dataset.Paths
	cache    StatusCache
	now      func() time.Time
}

func NewStatusUsecase(
	occ repository.OccupationRepository,
	skills repository.SkillRepository,
	training repository.TrainingRepository,
	loader *dataset.Loader,
	paths dataset.Paths,
	cache StatusCache,
) *StatusService {
	return &StatusService{
		occ:      occ,
		skills:   skills,
		training: training,
		loader:   loader,
		paths:    paths,
		cache:    cache,
		now:      time.Now,
	}
}

func (u *StatusService) GetStatus(ctx context.Context) (Status, error) {
	occTable, occErr := u.occ.Table()
	skillTable, skillErr := u.skills.Table()
	trainingTable, trainingErr := u.training.Table()

	st := Status{
		Datasets: []DatasetStatus{
			u.datasetStatus("project_occupation", u.paths.ProjectOccupation, occTable, occErr),
			u.datasetStatus("project_occupation_skill", u.paths.ProjectOccupationSkill, skillTable, skillErr),
			u.datasetStatus("training_program_bundles", u.paths.TrainingProgramBundles, trainingTable, trainingErr),
		},
		ServerTime: u.now().UTC(),
	}

	if occErr == nil && skillErr == nil {
		st.OrphanSkillRows = countOrphans(occTable, skillTable)
	}

	if u.cache != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		st.CacheHealthy = u.cache.Ping(pingCtx) == nil
		cancel()
	}

	return st, nil
}

// Reload invalidates the loaded tables and the memoized aggregates, then
// reports the freshly loaded state.
func (u *StatusService) Reload(ctx context.Context) (Status, error) {
	if u.loader != nil {
		u.loader.Invalidate()
	}
	if u.cache != nil {
		_ = u.cache.InvalidateAggregates(ctx)
	}
	return u.GetStatus(ctx)
}

func (u *StatusService) datasetStatus(name, path string, table *dataset.Table, err error) DatasetStatus {
	if err != nil {
		return DatasetStatus{Name: name, OK: false, Message: UserMessage(err)}
	}

	ds := DatasetStatus{Name: name, OK: true, Rows: table.Len()}
	if at, ok := u.loader.LoadedAt(path); ok {
		ds.LoadedAt = &at
	}
	return ds
}

func countOrphans(occ, skills *dataset.Table) int {
	known := make(map[string]bool)
	for i := 0; i < occ.Len(); i++ {
		known[occ.Cell(i, "occupation_esco")] = true
	}

	orphans := 0
	for i := 0; i < skills.Len(); i++ {
		if !known[skills.Cell(i, "occupation_esco")] {
			orphans++
		}
	}
	return orphans
}

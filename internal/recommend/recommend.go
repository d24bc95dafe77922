// Package recommend ranks jobs for a worker and workers for a job.
//
// The two directions filter differently on purpose:
//
//	jobs for worker:  (skill overlap > 0 OR preferred title match) AND salary compatible
//	workers for job:  skill overlap > 0 AND (same city OR same state)
//
// Results are recomputed on every call and never cached.
package recommend

import (
	"slices"
	"strings"

	"github.com/Spigel00/work-force-matchup/internal/models"
)

// Source is the read side of the entity store.
type Source interface {
	FindWorkerByID(id string) (models.WorkerProfile, bool)
	FindJobByID(id string) (models.JobPosting, bool)
	Workers() []models.WorkerProfile
	Jobs() []models.JobPosting
}

// Engine answers recommendation queries against a Source.
type Engine struct {
	src Source
}

// NewEngine returns an Engine reading from src.
func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// JobsForWorker returns matching jobs ranked by skill overlap. An unknown
// worker yields an empty result.
func (e *Engine) JobsForWorker(workerID string) []models.JobPosting {
	worker, ok := e.src.FindWorkerByID(workerID)
	if !ok {
		return []models.JobPosting{}
	}
	return MatchJobs(worker, e.src.Jobs())
}

// WorkersForJob returns matching workers ranked by skill overlap, then by
// exact city match. An unknown job yields an empty result.
func (e *Engine) WorkersForJob(jobID string) []models.WorkerProfile {
	job, ok := e.src.FindJobByID(jobID)
	if !ok {
		return []models.WorkerProfile{}
	}
	return MatchWorkers(job, e.src.Workers())
}

// MatchJobs filters and ranks jobs for worker. Equal scores keep their
// relative order from jobs.
func MatchJobs(worker models.WorkerProfile, jobs []models.JobPosting) []models.JobPosting {
	type scored struct {
		job   models.JobPosting
		score int
	}
	candidates := make([]scored, 0, len(jobs))
	for _, job := range jobs {
		score := SkillOverlap(job.RequiredSkills, worker.Skills)
		if score == 0 && !TitleMatch(worker.PreferredJobTitles, job.Title) {
			continue
		}
		if !SalaryCompatible(worker.DesiredSalary, job.Salary) {
			continue
		}
		candidates = append(candidates, scored{job: job, score: score})
	}
	slices.SortStableFunc(candidates, func(a, b scored) int {
		return b.score - a.score
	})

	out := make([]models.JobPosting, len(candidates))
	for i, c := range candidates {
		out[i] = c.job
	}
	return out
}

// MatchWorkers filters and ranks workers for job. Both a shared skill and a
// shared city or state are required.
func MatchWorkers(job models.JobPosting, workers []models.WorkerProfile) []models.WorkerProfile {
	type scored struct {
		worker    models.WorkerProfile
		score     int
		exactCity bool
	}
	candidates := make([]scored, 0, len(workers))
	for _, w := range workers {
		score := SkillOverlap(w.Skills, job.RequiredSkills)
		if score == 0 || !LocationMatch(w.Location, job.Location) {
			continue
		}
		candidates = append(candidates, scored{
			worker:    w,
			score:     score,
			exactCity: w.Location.City == job.Location.City,
		})
	}
	slices.SortStableFunc(candidates, func(a, b scored) int {
		if a.score != b.score {
			return b.score - a.score
		}
		return boolRank(b.exactCity) - boolRank(a.exactCity)
	})

	out := make([]models.WorkerProfile, len(candidates))
	for i, c := range candidates {
		out[i] = c.worker
	}
	return out
}

// SkillOverlap counts the entries of from that also appear in against.
// Matching is exact and case-sensitive; duplicates in from count each time.
func SkillOverlap(from, against []string) int {
	n := 0
	for _, skill := range from {
		if slices.Contains(against, skill) {
			n++
		}
	}
	return n
}

// TitleMatch reports whether any preferred title is a case-insensitive
// substring of jobTitle.
func TitleMatch(preferred []string, jobTitle string) bool {
	title := strings.ToLower(jobTitle)
	for _, p := range preferred {
		if strings.Contains(title, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// SalaryCompatible reports whether a worker's desired salary fits under the
// job's advertised ceiling. Missing data on either side passes, as does a
// salary without a minimum. The ceiling is the maximum, or the minimum when
// no maximum is given. Desired salaries below the job's minimum pass.
func SalaryCompatible(desired *float64, salary *models.Salary) bool {
	if desired == nil || *desired == 0 || salary == nil {
		return true
	}
	if salary.Min == nil {
		return true
	}
	ceiling := *salary.Min
	if salary.Max != nil && *salary.Max != 0 {
		ceiling = *salary.Max
	}
	return *desired <= ceiling
}

// LocationMatch reports whether two locations share a city or a state.
func LocationMatch(a, b models.Location) bool {
	return a.City == b.City || a.State == b.State
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

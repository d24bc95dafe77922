// Package search implements the browse filters for jobs and workers. Every
// filter keeps the input order, so it can be applied to recommendation
// results without disturbing their ranking.
package search

import (
	"slices"
	"strings"

	"github.com/Spigel00/work-force-matchup/internal/models"
)

// JobQuery narrows a job listing. Empty fields do not filter.
type JobQuery struct {
	Text     string
	Location string
	Type     models.JobType
}

// WorkerQuery narrows a worker listing. Empty fields do not filter.
type WorkerQuery struct {
	Text     string
	Location string
	Skill    string
}

// Jobs returns the jobs matching q.
func Jobs(jobs []models.JobPosting, q JobQuery) []models.JobPosting {
	text := normalize(q.Text)
	loc := normalize(q.Location)
	out := make([]models.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if text != "" && !jobHasText(j, text) {
			continue
		}
		if loc != "" && !locationHas(j.Location, loc) {
			continue
		}
		if q.Type != "" && j.JobType != q.Type {
			continue
		}
		out = append(out, j)
	}
	return out
}

// Workers returns the workers matching q.
func Workers(workers []models.WorkerProfile, q WorkerQuery) []models.WorkerProfile {
	text := normalize(q.Text)
	loc := normalize(q.Location)
	skill := strings.TrimSpace(q.Skill)
	out := make([]models.WorkerProfile, 0, len(workers))
	for _, w := range workers {
		if text != "" && !workerHasText(w, text) {
			continue
		}
		if loc != "" && !locationHas(w.Location, loc) {
			continue
		}
		if skill != "" && !slices.ContainsFunc(w.Skills, func(s string) bool { return strings.EqualFold(s, skill) }) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Skills returns the sorted distinct skills across workers, for filter
// drop-downs.
func Skills(workers []models.WorkerProfile) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, w := range workers {
		for _, s := range w.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return out
}

func jobHasText(j models.JobPosting, text string) bool {
	return contains(j.Title, text) ||
		contains(j.Description, text) ||
		contains(j.CompanyName, text) ||
		anyContains(j.RequiredSkills, text)
}

func workerHasText(w models.WorkerProfile, text string) bool {
	if contains(w.Name, text) || anyContains(w.Skills, text) || contains(w.Bio, text) {
		return true
	}
	for _, exp := range w.Experience {
		if contains(exp.Title, text) || contains(exp.Company, text) {
			return true
		}
	}
	return false
}

func locationHas(l models.Location, q string) bool {
	return contains(l.City, q) || contains(l.State, q)
}

func anyContains(values []string, q string) bool {
	for _, v := range values {
		if contains(v, q) {
			return true
		}
	}
	return false
}

// contains expects q already lower-cased.
func contains(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

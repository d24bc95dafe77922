package dto

import "github.com/Spigel00/work-force-matchup/internal/models"

// JobPostingRequest carries the employer-supplied fields of a new posting.
// Id, post date, employer id and company display fields are assigned by the
// server.
type JobPostingRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Location        models.Location `json:"location"`
	Salary          *models.Salary  `json:"salary,omitempty"`
	RequiredSkills  []string        `json:"requiredSkills"`
	ExperienceLevel string          `json:"experienceLevel"`
	DeadlineDate    string          `json:"deadlineDate,omitempty"`
	JobType         models.JobType  `json:"jobType"`
}

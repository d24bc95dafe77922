package models

import "fmt"

// SalaryType is the pay period of an advertised salary.
type SalaryType string

const (
	SalaryHourly  SalaryType = "hourly"
	SalaryWeekly  SalaryType = "weekly"
	SalaryMonthly SalaryType = "monthly"
	SalaryYearly  SalaryType = "yearly"
)

// JobType is the employment arrangement of a posting.
type JobType string

const (
	JobFullTime  JobType = "full-time"
	JobPartTime  JobType = "part-time"
	JobContract  JobType = "contract"
	JobTemporary JobType = "temporary"
)

// ParseJobType converts a raw string to a JobType.
func ParseJobType(s string) (JobType, error) {
	jt := JobType(s)
	switch jt {
	case JobFullTime, JobPartTime, JobContract, JobTemporary:
		return jt, nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

// ParseSalaryType converts a raw string to a SalaryType.
func ParseSalaryType(s string) (SalaryType, error) {
	st := SalaryType(s)
	switch st {
	case SalaryHourly, SalaryWeekly, SalaryMonthly, SalaryYearly:
		return st, nil
	}
	return "", fmt.Errorf("unknown salary type %q", s)
}

// Salary is an advertised pay range; either bound may be absent.
type Salary struct {
	Min  *float64   `json:"min,omitempty"`
	Max  *float64   `json:"max,omitempty"`
	Type SalaryType `json:"type"`
}

// JobPosting is created by an employer. CompanyName and CompanyLogo are
// copied from the employer profile when the job is posted and are not
// refreshed if the profile changes later.
type JobPosting struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        Location `json:"location"`
	Salary          *Salary  `json:"salary,omitempty"`
	EmployerID      string   `json:"employerId"`
	CompanyName     string   `json:"companyName"`
	CompanyLogo     string   `json:"companyLogo,omitempty"`
	RequiredSkills  []string `json:"requiredSkills"`
	ExperienceLevel string   `json:"experienceLevel"`
	PostDate        string   `json:"postDate"`
	DeadlineDate    string   `json:"deadlineDate,omitempty"`
	JobType         JobType  `json:"jobType"`
}

package models

// WorkExperience is one entry of a worker's history. An empty EndDate marks
// the current position.
type WorkExperience struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    Location `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// Current reports whether the position is still held.
func (e WorkExperience) Current() bool { return e.EndDate == "" }

// WorkerProfile belongs to exactly one worker-role user and shares its id.
type WorkerProfile struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone,omitempty"`
	Location           Location         `json:"location"`
	Bio                string           `json:"bio,omitempty"`
	ProfilePicture     string           `json:"profilePicture,omitempty"`
	Skills             []string         `json:"skills"`
	Experience         []WorkExperience `json:"experience"`
	DesiredSalary      *float64         `json:"desiredSalary,omitempty"`
	PreferredJobTitles []string         `json:"preferredJobTitles"`
	JoinDate           string           `json:"joinDate"`
}

// Normalize replaces nil list fields with empty lists so the profile encodes
// them as [] rather than null.
func (p WorkerProfile) Normalize() WorkerProfile {
	p.Skills = emptyIfNil(p.Skills)
	p.PreferredJobTitles = emptyIfNil(p.PreferredJobTitles)
	if p.Experience == nil {
		p.Experience = []WorkExperience{}
	}
	exp := make([]WorkExperience, len(p.Experience))
	for i, e := range p.Experience {
		e.Skills = emptyIfNil(e.Skills)
		exp[i] = e
	}
	p.Experience = exp
	return p
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

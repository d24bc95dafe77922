package models

// Snapshot is the full state of the four collections, persisted and exported
// as one unit.
type Snapshot struct {
	Users     []User            `json:"users"`
	Workers   []WorkerProfile   `json:"workers"`
	Employers []EmployerProfile `json:"employers"`
	Jobs      []JobPosting      `json:"jobs"`
}

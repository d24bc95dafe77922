// Package store holds the in-memory entity collections. Lookups by id go
// through indexes; filters that need every entity scan the slices in
// insertion order.
package store

import (
	"slices"
	"sync"

	"github.com/Spigel00/work-force-matchup/internal/models"
)

// Store is the application state: users, worker profiles, employer profiles
// and job postings. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	newID     IDFunc
	users     []models.User
	workers   []models.WorkerProfile
	employers []models.EmployerProfile
	jobs      []models.JobPosting

	userIdx     map[string]int
	workerIdx   map[string]int
	employerIdx map[string]int
	jobIdx      map[string]int
}

const maxIDAttempts = 16

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides the id generator.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) { s.newID = fn }
}

// New builds a Store populated from snap.
func New(snap models.Snapshot, opts ...Option) *Store {
	s := &Store{newID: UUIDs}
	for _, opt := range opts {
		opt(s)
	}
	s.Replace(snap)
	return s
}

// Replace discards the current state and loads snap.
func (s *Store) Replace(snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = slices.Clone(snap.Users)
	s.workers = slices.Clone(snap.Workers)
	s.employers = slices.Clone(snap.Employers)
	s.jobs = slices.Clone(snap.Jobs)
	s.reindex()
}

func (s *Store) reindex() {
	s.userIdx = make(map[string]int, len(s.users))
	for i, u := range s.users {
		s.userIdx[u.ID] = i
	}
	s.workerIdx = make(map[string]int, len(s.workers))
	for i, w := range s.workers {
		s.workerIdx[w.ID] = i
	}
	s.employerIdx = make(map[string]int, len(s.employers))
	for i, e := range s.employers {
		s.employerIdx[e.ID] = i
	}
	s.jobIdx = make(map[string]int, len(s.jobs))
	for i, j := range s.jobs {
		s.jobIdx[j.ID] = i
	}
}

// Snapshot copies the four collections.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Snapshot{
		Users:     slices.Clone(s.users),
		Workers:   slices.Clone(s.workers),
		Employers: slices.Clone(s.employers),
		Jobs:      slices.Clone(s.jobs),
	}
}

// Users returns every user in insertion order.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

// Workers returns every worker profile in insertion order.
func (s *Store) Workers() []models.WorkerProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.workers)
}

// Employers returns every employer profile in insertion order.
func (s *Store) Employers() []models.EmployerProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.employers)
}

// Jobs returns every job posting in insertion order.
func (s *Store) Jobs() []models.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.jobs)
}

// FindUserByEmail matches email case-insensitively.
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if models.SameEmail(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) FindUserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.userIdx[id]; ok {
		return s.users[i], true
	}
	return models.User{}, false
}

func (s *Store) FindWorkerByID(id string) (models.WorkerProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.workerIdx[id]; ok {
		return s.workers[i], true
	}
	return models.WorkerProfile{}, false
}

func (s *Store) FindEmployerByID(id string) (models.EmployerProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.employerIdx[id]; ok {
		return s.employers[i], true
	}
	return models.EmployerProfile{}, false
}

func (s *Store) FindJobByID(id string) (models.JobPosting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.jobIdx[id]; ok {
		return s.jobs[i], true
	}
	return models.JobPosting{}, false
}

// JobsByEmployer returns the postings of one employer in posting order.
func (s *Store) JobsByEmployer(employerID string) []models.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.JobPosting
	for _, j := range s.jobs {
		if j.EmployerID == employerID {
			out = append(out, j)
		}
	}
	return out
}

// AddUser appends u under a newly generated id and returns that id.
func (s *Store) AddUser(u models.User) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.uniqueID(KindUser, s.userIdx)
	s.userIdx[u.ID] = len(s.users)
	s.users = append(s.users, u)
	return u.ID
}

// AddJob appends j under a newly generated id and returns that id.
func (s *Store) AddJob(j models.JobPosting) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	j.ID = s.uniqueID(KindJob, s.jobIdx)
	s.jobIdx[j.ID] = len(s.jobs)
	s.jobs = append(s.jobs, j)
	return j.ID
}

// PutWorker replaces the profile with the same id, or appends it.
func (s *Store) PutWorker(p models.WorkerProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.workerIdx[p.ID]; ok {
		s.workers[i] = p
		return
	}
	s.workerIdx[p.ID] = len(s.workers)
	s.workers = append(s.workers, p)
}

// PutEmployer replaces the profile with the same id, or appends it.
func (s *Store) PutEmployer(p models.EmployerProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.employerIdx[p.ID]; ok {
		s.employers[i] = p
		return
	}
	s.employerIdx[p.ID] = len(s.employers)
	s.employers = append(s.employers, p)
}

// uniqueID draws ids until one is unused in idx. A generator that keeps
// colliding is abandoned for UUIDs.
func (s *Store) uniqueID(kind string, idx map[string]int) string {
	gen := s.newID
	for attempt := 0; ; attempt++ {
		if attempt == maxIDAttempts {
			gen = UUIDs
		}
		id := gen(kind)
		if _, taken := idx[id]; !taken && id != "" {
			return id
		}
	}
}

// Package app is the controller that owns the application state. It wires the
// entity store, the persistence adapter, the session shim and the
// recommendation engine, and writes every mutation through to storage before
// returning.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Spigel00/work-force-matchup/internal/models"
	"github.com/Spigel00/work-force-matchup/internal/notify"
	"github.com/Spigel00/work-force-matchup/internal/persistence"
	"github.com/Spigel00/work-force-matchup/internal/recommend"
	"github.com/Spigel00/work-force-matchup/internal/search"
	"github.com/Spigel00/work-force-matchup/internal/seed"
	"github.com/Spigel00/work-force-matchup/internal/session"
	"github.com/Spigel00/work-force-matchup/internal/storage"
	"github.com/Spigel00/work-force-matchup/internal/store"
)

var (
	// ErrNotEmployer is returned when an anonymous or non-employer session
	// tries to post a job.
	ErrNotEmployer = errors.New("only employers can post jobs")
	// ErrProfileNotFound is returned when an employer has no profile record.
	ErrProfileNotFound = errors.New("employer profile not found")
	// ErrNotOwner is returned when a profile is edited by someone other than
	// its owner.
	ErrNotOwner = errors.New("profile can only be edited by its owner")
)

// Options configures an App. Zero values pick the defaults.
type Options struct {
	Namespace     string
	ProfilePolicy session.ProfilePolicy
	IDFunc        store.IDFunc
	Clock         func() time.Time
	Notifier      notify.Notifier
	Logger        *slog.Logger
}

// App is the single process-wide instance of the application state. It is
// created once at start-up and lives until the process exits.
type App struct {
	mu       sync.Mutex
	store    *store.Store
	persist  *persistence.Adapter
	sessions *session.Service
	engine   *recommend.Engine
	events   notify.Notifier
	now      func() time.Time
	log      *slog.Logger
}

// New loads state from kv (seed data when nothing usable is stored) and
// resumes any persisted session.
func New(ctx context.Context, kv storage.KV, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	events := opts.Notifier
	if events == nil {
		events = notify.NewLog(logger)
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	policy := opts.ProfilePolicy
	if policy == "" {
		policy = session.ProfileNone
	}

	persist := persistence.New(kv, opts.Namespace, seed.Snapshot, logger)
	snap, fromStore := persist.Load(ctx)

	var storeOpts []store.Option
	if opts.IDFunc != nil {
		storeOpts = append(storeOpts, store.WithIDFunc(opts.IDFunc))
	}
	st := store.New(snap, storeOpts...)

	sessions := session.NewService(st, persist, events,
		session.WithProfilePolicy(policy),
		session.WithClock(now),
	)
	restored := sessions.Restore(ctx)

	logger.Info("application state loaded",
		"from_storage", fromStore,
		"users", len(snap.Users),
		"workers", len(snap.Workers),
		"employers", len(snap.Employers),
		"jobs", len(snap.Jobs),
		"session_restored", restored,
	)

	return &App{
		store:    st,
		persist:  persist,
		sessions: sessions,
		engine:   recommend.NewEngine(st),
		events:   events,
		now:      now,
		log:      logger.With("component", "app"),
	}
}

func (a *App) Users() []models.User { return a.store.Users() }
func (a *App) Workers() []models.WorkerProfile { return a.store.Workers() }
func (a *App) Employers() []models.EmployerProfile { return a.store.Employers() }
func (a *App) Jobs() []models.JobPosting { return a.store.Jobs() }
func (a *App) Snapshot() models.Snapshot { return a.store.Snapshot() }

func (a *App) GetUser(id string) (models.User, bool) { return a.store.FindUserByID(id) }

func (a *App) GetWorkerProfile(id string) (models.WorkerProfile, bool) {
	return a.store.FindWorkerByID(id)
}

func (a *App) GetEmployerProfile(id string) (models.EmployerProfile, bool) {
	return a.store.FindEmployerByID(id)
}

func (a *App) GetJobByID(id string) (models.JobPosting, bool) { return a.store.FindJobByID(id) }

// JobsByEmployer lists one employer's postings in posting order.
func (a *App) JobsByEmployer(employerID string) []models.JobPosting {
	return a.store.JobsByEmployer(employerID)
}

// CurrentUser returns the authenticated user of the session.
func (a *App) CurrentUser() (models.User, bool) { return a.sessions.Current() }

// Role returns the current session's role.
func (a *App) Role() (models.UserRole, bool) { return a.sessions.Role() }

// Login starts a session for the user with email.
func (a *App) Login(ctx context.Context, email, password string) (models.User, error) {
	return a.sessions.Login(ctx, email, password)
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) { a.sessions.Logout(ctx) }

// RegisterUser creates a user and starts a session for it.
func (a *App) RegisterUser(ctx context.Context, email, password, name string, role models.UserRole) (models.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessions.Register(ctx, email, password, name, role)
}

// RecommendJobs ranks jobs for a worker.
func (a *App) RecommendJobs(workerID string) []models.JobPosting {
	return a.engine.JobsForWorker(workerID)
}

// RecommendWorkers ranks workers for a job.
func (a *App) RecommendWorkers(jobID string) []models.WorkerProfile {
	return a.engine.WorkersForJob(jobID)
}

// SearchJobs filters all jobs, or only the jobs recommended for
// recommendedFor when it names a worker.
func (a *App) SearchJobs(q search.JobQuery, recommendedFor string) []models.JobPosting {
	jobs := a.store.Jobs()
	if recommendedFor != "" {
		jobs = a.engine.JobsForWorker(recommendedFor)
	}
	return search.Jobs(jobs, q)
}

// SearchWorkers filters all workers.
func (a *App) SearchWorkers(q search.WorkerQuery) []models.WorkerProfile {
	return search.Workers(a.store.Workers(), q)
}

// Skills lists the distinct worker skills.
func (a *App) Skills() []string { return search.Skills(a.store.Workers()) }

// ExportData writes a backup of the full snapshot to w.
func (a *App) ExportData(ctx context.Context, w io.Writer) error {
	if err := a.persist.Export(w, a.store.Snapshot()); err != nil {
		return fmt.Errorf("export data: %w", err)
	}
	ev := notify.Info(notify.DataExported, "Data Exported", "Your data has been downloaded as "+persistence.ExportFilename+".")
	if u, ok := a.sessions.Current(); ok {
		ev = ev.For(u.ID)
	}
	a.events.Notify(ctx, ev)
	return nil
}

func (a *App) today() string { return models.FormatDate(a.now()) }

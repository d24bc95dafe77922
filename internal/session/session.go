// Package session simulates authentication against the in-memory user list.
//
// Passwords are accepted but never checked: a login succeeds for any known
// email. The session is either anonymous or authenticated as one user and is
// mirrored to durable storage on every transition.
//
//	anonymous ──login/register──► authenticated(user)
//	authenticated ──logout──► anonymous
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Spigel00/work-force-matchup/internal/models"
	"github.com/Spigel00/work-force-matchup/internal/notify"
)

var (
	// ErrInvalidCredentials is returned when no user has the given email.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an email already in use.
	ErrEmailTaken = errors.New("a user with this email already exists")
	// ErrInvalidRole is returned for a role outside models.UserRole.
	ErrInvalidRole = errors.New("invalid role")
)

// Directory is the part of the entity store the shim reads and writes.
type Directory interface {
	FindUserByEmail(email string) (models.User, bool)
	AddUser(u models.User) string
	PutWorker(p models.WorkerProfile)
	PutEmployer(p models.EmployerProfile)
	Snapshot() models.Snapshot
}

// Persister writes state through to durable storage. Implementations absorb
// their own failures.
type Persister interface {
	Save(ctx context.Context, snap models.Snapshot)
	LoadSession(ctx context.Context) (models.User, bool)
	SaveSession(ctx context.Context, user models.User)
	ClearSession(ctx context.Context)
}

// ProfilePolicy decides whether registration creates an empty profile.
type ProfilePolicy string

const (
	// ProfileNone leaves new users without a profile until they edit one.
	ProfileNone ProfilePolicy = "none"
	// ProfileBlank creates an empty profile matching the new user's role.
	ProfileBlank ProfilePolicy = "blank"
)

// ParseProfilePolicy converts a raw string to a ProfilePolicy.
func ParseProfilePolicy(s string) (ProfilePolicy, error) {
	p := ProfilePolicy(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ProfileNone, ProfileBlank:
		return p, nil
	}
	return "", fmt.Errorf("unknown profile policy %q", s)
}

// Service tracks the current session.
type Service struct {
	mu      sync.Mutex
	users   Directory
	persist Persister
	events  notify.Notifier
	policy  ProfilePolicy
	now     func() time.Time
	current *models.User
}

// Option configures a Service.
type Option func(*Service)

// WithProfilePolicy sets the registration profile policy. Default ProfileNone.
func WithProfilePolicy(p ProfilePolicy) Option {
	return func(s *Service) { s.policy = p }
}

// WithClock overrides the time source used for join dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService returns an anonymous Service.
func NewService(users Directory, persist Persister, events notify.Notifier, opts ...Option) *Service {
	if events == nil {
		events = notify.Discard{}
	}
	s := &Service{
		users:   users,
		persist: persist,
		events:  events,
		policy:  ProfileNone,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore resumes the persisted session, if there is one.
func (s *Service) Restore(ctx context.Context) bool {
	user, ok := s.persist.LoadSession(ctx)
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
	return true
}

// Current returns the authenticated user.
func (s *Service) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// Role returns the current user's role, or false when anonymous.
func (s *Service) Role() (models.UserRole, bool) {
	u, ok := s.Current()
	if !ok {
		return "", false
	}
	return u.Role, true
}

// Login authenticates by email alone. The password is ignored.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	user, ok := s.users.FindUserByEmail(email)
	if !ok {
		s.events.Notify(ctx, notify.Failure(notify.LoginFailed, "Login Failed", "Invalid email or password"))
		return models.User{}, ErrInvalidCredentials
	}

	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()
	s.persist.SaveSession(ctx, user)

	s.events.Notify(ctx, notify.Info(notify.LoginSucceeded, "Login Successful", fmt.Sprintf("Welcome back, %s!", user.Name)).For(user.ID))
	return user, nil
}

// Logout clears the session. Calling it while anonymous is a no-op success.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	prev := s.current
	s.current = nil
	s.mu.Unlock()
	s.persist.ClearSession(ctx)

	ev := notify.Info(notify.LoggedOut, "Logged Out", "You have been successfully logged out.")
	if prev != nil {
		ev = ev.For(prev.ID)
	}
	s.events.Notify(ctx, ev)
}

// Register creates a user and makes it the current session.
func (s *Service) Register(ctx context.Context, email, password, name string, role models.UserRole) (models.User, error) {
	if !role.Valid() {
		return models.User{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	s.mu.Lock()
	if _, taken := s.users.FindUserByEmail(email); taken {
		s.mu.Unlock()
		s.events.Notify(ctx, notify.Failure(notify.RegistrationFailed, "Registration Failed", "A user with this email already exists."))
		return models.User{}, ErrEmailTaken
	}

	user := models.User{
		Role:       role,
		Email:      strings.TrimSpace(email),
		Name:       strings.TrimSpace(name),
		JoinedDate: models.FormatDate(s.now()),
	}
	user.ID = s.users.AddUser(user)
	if s.policy == ProfileBlank {
		s.createBlankProfile(user)
	}
	s.current = &user
	s.mu.Unlock()

	s.persist.Save(ctx, s.users.Snapshot())
	s.persist.SaveSession(ctx, user)

	s.events.Notify(ctx, notify.Info(notify.RegistrationSucceeded, "Registration Successful", "Your account has been created successfully.").For(user.ID))
	return user, nil
}

func (s *Service) createBlankProfile(u models.User) {
	switch u.Role {
	case models.RoleWorker:
		s.users.PutWorker(models.WorkerProfile{
			ID:                 u.ID,
			Name:               u.Name,
			Email:              u.Email,
			Skills:             []string{},
			Experience:         []models.WorkExperience{},
			PreferredJobTitles: []string{},
			JoinDate:           u.JoinedDate,
		})
	case models.RoleEmployer:
		s.users.PutEmployer(models.EmployerProfile{
			ID:          u.ID,
			CompanyName: u.Name,
			Email:       u.Email,
			JoinDate:    u.JoinedDate,
		})
	}
}

package app

import (
	"context"

	"github.com/Spigel00/work-force-matchup/internal/models"
	"github.com/Spigel00/work-force-matchup/internal/notify"
)

// UpdateWorkerProfile replaces the worker profile id with p. Only the worker
// who owns id may do so. A missing profile is created.
func (a *App) UpdateWorkerProfile(ctx context.Context, actor *models.User, id string, p models.WorkerProfile) (models.WorkerProfile, error) {
	if !owns(actor, id, models.RoleWorker) {
		a.denyEdit(ctx, actor)
		return models.WorkerProfile{}, ErrNotOwner
	}
	p = p.Normalize()
	p.ID = id
	if p.JoinDate == "" {
		p.JoinDate = a.joinDate(id)
	}

	a.mu.Lock()
	a.store.PutWorker(p)
	a.persist.Save(ctx, a.store.Snapshot())
	a.mu.Unlock()

	a.events.Notify(ctx, notify.Info(notify.ProfileUpdated, "Profile Updated", "Your profile has been updated successfully.").For(id))
	return p, nil
}

// UpdateEmployerProfile replaces the employer profile id with p. Only the
// employer who owns id may do so. Existing job postings keep the company
// name and logo they were posted with.
func (a *App) UpdateEmployerProfile(ctx context.Context, actor *models.User, id string, p models.EmployerProfile) (models.EmployerProfile, error) {
	if !owns(actor, id, models.RoleEmployer) {
		a.denyEdit(ctx, actor)
		return models.EmployerProfile{}, ErrNotOwner
	}
	p.ID = id
	if p.JoinDate == "" {
		p.JoinDate = a.joinDate(id)
	}

	a.mu.Lock()
	a.store.PutEmployer(p)
	a.persist.Save(ctx, a.store.Snapshot())
	a.mu.Unlock()

	a.events.Notify(ctx, notify.Info(notify.ProfileUpdated, "Profile Updated", "Your company profile has been updated successfully.").For(id))
	return p, nil
}

func owns(actor *models.User, id string, role models.UserRole) bool {
	return actor != nil && actor.ID == id && actor.Role == role
}

func (a *App) denyEdit(ctx context.Context, actor *models.User) {
	ev := notify.Failure(notify.PermissionDenied, "Permission Denied", "You can only edit your own profile.")
	if actor != nil {
		ev = ev.For(actor.ID)
	}
	a.events.Notify(ctx, ev)
}

// joinDate keeps the user's registration date on the profile.
func (a *App) joinDate(id string) string {
	if u, ok := a.store.FindUserByID(id); ok && u.JoinedDate != "" {
		return u.JoinedDate
	}
	return a.today()
}

package app

import (
	"context"

	"github.com/Spigel00/work-force-matchup/internal/models"
	"github.com/Spigel00/work-force-matchup/internal/models/dto"
	"github.com/Spigel00/work-force-matchup/internal/notify"
)

// AddJobPosting posts a job as the current session user.
func (a *App) AddJobPosting(ctx context.Context, req dto.JobPostingRequest) (models.JobPosting, error) {
	var actor *models.User
	if u, ok := a.sessions.Current(); ok {
		actor = &u
	}
	return a.AddJobPostingAs(ctx, actor, req)
}

// AddJobPostingAs posts a job on behalf of actor. A nil actor is anonymous.
// The employer's company name and logo are copied onto the posting and are
// not refreshed when the profile changes later.
func (a *App) AddJobPostingAs(ctx context.Context, actor *models.User, req dto.JobPostingRequest) (models.JobPosting, error) {
	if err := requireEmployer(actor); err != nil {
		ev := notify.Failure(notify.PermissionDenied, "Permission Denied", "Only employers can post jobs.")
		if actor != nil {
			ev = ev.For(actor.ID)
		}
		a.events.Notify(ctx, ev)
		return models.JobPosting{}, err
	}

	employer, ok := a.store.FindEmployerByID(actor.ID)
	if !ok {
		a.log.Warn("employer user has no profile", "user_id", actor.ID)
		a.events.Notify(ctx, notify.Failure(notify.ProfileNotFound, "Error", "Employer profile not found.").For(actor.ID))
		return models.JobPosting{}, ErrProfileNotFound
	}

	skills := req.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	job := models.JobPosting{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		Salary:          req.Salary,
		EmployerID:      actor.ID,
		CompanyName:     employer.CompanyName,
		CompanyLogo:     employer.CompanyLogo,
		RequiredSkills:  skills,
		ExperienceLevel: req.ExperienceLevel,
		PostDate:        a.today(),
		DeadlineDate:    req.DeadlineDate,
		JobType:         req.JobType,
	}

	a.mu.Lock()
	job.ID = a.store.AddJob(job)
	a.persist.Save(ctx, a.store.Snapshot())
	a.mu.Unlock()

	a.events.Notify(ctx, notify.Info(notify.JobPosted, "Job Posted Successfully", "Your job listing has been published.").For(actor.ID))
	return job, nil
}

func requireEmployer(u *models.User) error {
	if u == nil {
		return ErrNotEmployer
	}
	switch u.Role {
	case models.RoleEmployer:
		return nil
	case models.RoleWorker:
		return ErrNotEmployer
	}
	return ErrNotEmployer
}

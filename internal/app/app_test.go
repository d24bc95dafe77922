package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Spigel00/work-force-matchup/internal/app"
	"github.com/Spigel00/work-force-matchup/internal/models"
	"github.com/Spigel00/work-force-matchup/internal/models/dto"
	"github.com/Spigel00/work-force-matchup/internal/notify"
	"github.com/Spigel00/work-force-matchup/internal/search"
	"github.com/Spigel00/work-force-matchup/internal/session"
	"github.com/Spigel00/work-force-matchup/internal/storage"
	"github.com/Spigel00/work-force-matchup/internal/storage/memory"
)

type recorder struct{ events []notify.Event }

func (r *recorder) Notify(_ context.Context, ev notify.Event) { r.events = append(r.events, ev) }

func (r *recorder) last() notify.Kind {
	if len(r.events) == 0 {
		return ""
	}
	return r.events[len(r.events)-1].Kind
}

func newApp(t *testing.T, kv storage.KV, policy session.ProfilePolicy) (*app.App, *recorder) {
	t.Helper()
	rec := &recorder{}
	a := app.New(context.Background(), kv, app.Options{
		ProfilePolicy: policy,
		Clock:         func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC) },
		Notifier:      rec,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return a, rec
}

func amount(v float64) *float64 { return &v }

func foremanRequest() dto.JobPostingRequest {
	return dto.JobPostingRequest{
		Title:           "Construction Foreman",
		Description:     "Lead a framing crew.",
		Location:        models.Location{City: "Chicago", State: "IL", Country: "USA"},
		Salary:          &models.Salary{Min: amount(60000), Max: amount(70000), Type: models.SalaryYearly},
		RequiredSkills:  []string{"Carpentry", "Framing", "Power Tools"},
		ExperienceLevel: "Senior (5+ years)",
		JobType:         models.JobFullTime,
	}
}

func TestNew_SeedsEmptyStorage(t *testing.T) {
	a, _ := newApp(t, memory.New(), "")
	if len(a.Users()) != 5 || len(a.Workers()) != 3 || len(a.Employers()) != 2 || len(a.Jobs()) != 4 {
		t.Fatalf("unexpected seed sizes: %d users %d workers %d employers %d jobs",
			len(a.Users()), len(a.Workers()), len(a.Employers()), len(a.Jobs()))
	}
	if _, ok := a.CurrentUser(); ok {
		t.Error("fresh app has a session")
	}
}

func TestAddJobPosting_Anonymous(t *testing.T) {
	kv := memory.New()
	a, rec := newApp(t, kv, "")

	_, err := a.AddJobPosting(context.Background(), foremanRequest())
	if !errors.Is(err, app.ErrNotEmployer) {
		t.Fatalf("err = %v, want ErrNotEmployer", err)
	}
	if got := len(a.Jobs()); got != 4 {
		t.Errorf("jobs = %d after denied post", got)
	}
	if _, err := kv.Get(context.Background(), storage.SnapshotKey); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("denied post wrote a snapshot: %v", err)
	}
	if rec.last() != notify.PermissionDenied {
		t.Errorf("last event = %q", rec.last())
	}
}

func TestAddJobPosting_Worker(t *testing.T) {
	a, _ := newApp(t, memory.New(), "")
	ctx := context.Background()
	if _, err := a.Login(ctx, "john.doe@example.com", ""); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := a.AddJobPosting(ctx, foremanRequest()); !errors.Is(err, app.ErrNotEmployer) {
		t.Fatalf("err = %v, want ErrNotEmployer", err)
	}
	if got := len(a.Jobs()); got != 4 {
		t.Errorf("jobs = %d after denied post", got)
	}
}

func TestAddJobPosting_EmployerWithoutProfile(t *testing.T) {
	a, rec := newApp(t, memory.New(), session.ProfileNone)
	ctx := context.Background()
	if _, err := a.RegisterUser(ctx, "new@builders.com", "", "New Builders", models.RoleEmployer); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if _, err := a.AddJobPosting(ctx, foremanRequest()); !errors.Is(err, app.ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
	if rec.last() != notify.ProfileNotFound {
		t.Errorf("last event = %q", rec.last())
	}
}

func TestAddJobPosting_BlankProfileEmployerCanPost(t *testing.T) {
	a, _ := newApp(t, memory.New(), session.ProfileBlank)
	ctx := context.Background()
	if _, err := a.RegisterUser(ctx, "new@builders.com", "", "New Builders", models.RoleEmployer); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	job, err := a.AddJobPosting(ctx, foremanRequest())
	if err != nil {
		t.Fatalf("AddJobPosting: %v", err)
	}
	if job.CompanyName != "New Builders" {
		t.Errorf("CompanyName = %q", job.CompanyName)
	}
}

func TestAddJobPosting_Employer(t *testing.T) {
	kv := memory.New()
	a, rec := newApp(t, kv, "")
	ctx := context.Background()
	if _, err := a.Login(ctx, "hr@constructioncorp.com", ""); err != nil {
		t.Fatalf("Login: %v", err)
	}

	job, err := a.AddJobPosting(ctx, foremanRequest())
	if err != nil {
		t.Fatalf("AddJobPosting: %v", err)
	}
	if job.ID == "" || job.EmployerID != "employer1" || job.CompanyName != "Construction Corp" || job.PostDate != "2026-10-19" {
		t.Errorf("posted job = %+v", job)
	}
	if rec.last() != notify.JobPosted {
		t.Errorf("last event = %q", rec.last())
	}

	jobs := a.Jobs()
	if len(jobs) != 5 || jobs[4].ID != job.ID {
		t.Fatalf("new job not appended: %d jobs", len(jobs))
	}
	if got, ok := a.GetJobByID(job.ID); !ok || got.Title != "Construction Foreman" {
		t.Errorf("GetJobByID = %+v, %v", got, ok)
	}
	if got := a.JobsByEmployer("employer1"); len(got) != 3 || got[2].ID != job.ID {
		t.Errorf("JobsByEmployer = %d jobs", len(got))
	}

	// Three shared skills outrank job1's two.
	recs := a.RecommendJobs("worker1")
	if len(recs) != 2 || recs[0].ID != job.ID || recs[1].ID != "job1" {
		t.Errorf("RecommendJobs(worker1) = %v", jobIDs(recs))
	}
	workers := a.RecommendWorkers(job.ID)
	if len(workers) != 1 || workers[0].ID != "worker1" {
		t.Errorf("RecommendWorkers = %d workers", len(workers))
	}

	reloaded, _ := newApp(t, kv, "")
	if _, ok := reloaded.GetJobByID(job.ID); !ok {
		t.Error("posted job not persisted")
	}
	if cur, ok := reloaded.CurrentUser(); !ok || cur.ID != "employer1" {
		t.Errorf("session not restored: %+v, %v", cur, ok)
	}
}

func TestAddJobPosting_ManyDistinctIDs(t *testing.T) {
	a, _ := newApp(t, memory.New(), "")
	ctx := context.Background()
	actor, _ := a.GetUser("employer2")

	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		req := foremanRequest()
		req.Title = fmt.Sprintf("Crew Lead %d", i)
		job, err := a.AddJobPostingAs(ctx, &actor, req)
		if err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
		if seen[job.ID] {
			t.Fatalf("duplicate id %s", job.ID)
		}
		seen[job.ID] = true
	}
	if got := len(a.Jobs()); got != 29 {
		t.Errorf("jobs = %d, want 29", got)
	}
}

func TestCompanyNameFrozenOnPosting(t *testing.T) {
	a, _ := newApp(t, memory.New(), "")
	ctx := context.Background()
	actor, _ := a.GetUser("employer1")

	job, err := a.AddJobPostingAs(ctx, &actor, foremanRequest())
	if err != nil {
		t.Fatalf("AddJobPostingAs: %v", err)
	}
	profile, _ := a.GetEmployerProfile("employer1")
	profile.CompanyName = "Construction Corp International"
	if _, err := a.UpdateEmployerProfile(ctx, &actor, "employer1", profile); err != nil {
		t.Fatalf("UpdateEmployerProfile: %v", err)
	}

	got, _ := a.GetJobByID(job.ID)
	if got.CompanyName != "Construction Corp" {
		t.Errorf("CompanyName = %q, want the name at posting time", got.CompanyName)
	}
	if p, _ := a.GetEmployerProfile("employer1"); p.CompanyName != "Construction Corp International" {
		t.Errorf("profile not updated: %q", p.CompanyName)
	}
}

func TestUpdateWorkerProfile(t *testing.T) {
	a, rec := newApp(t, memory.New(), "")
	ctx := context.Background()
	owner, _ := a.GetUser("worker2")
	other, _ := a.GetUser("worker1")
	employer, _ := a.GetUser("employer1")

	p := models.WorkerProfile{
		Name:     "Sarah Smith",
		Email:    "sarah.smith@example.com",
		Location: models.Location{City: "Detroit", State: "MI", Country: "USA"},
		Skills:   []string{"Electrical Wiring"},
	}

	for name, actor := range map[string]*models.User{"anonymous": nil, "other worker": &other, "employer": &employer} {
		if _, err := a.UpdateWorkerProfile(ctx, actor, "worker2", p); !errors.Is(err, app.ErrNotOwner) {
			t.Errorf("%s: err = %v, want ErrNotOwner", name, err)
		}
	}
	if rec.last() != notify.PermissionDenied {
		t.Errorf("last event = %q", rec.last())
	}

	got, err := a.UpdateWorkerProfile(ctx, &owner, "worker2", p)
	if err != nil {
		t.Fatalf("UpdateWorkerProfile: %v", err)
	}
	if got.ID != "worker2" || got.JoinDate != "2024-02-12" {
		t.Errorf("updated profile = %+v", got)
	}
	stored, _ := a.GetWorkerProfile("worker2")
	if stored.Location.City != "Detroit" || len(stored.Skills) != 1 {
		t.Errorf("stored profile = %+v", stored)
	}
	if got := len(a.Workers()); got != 3 {
		t.Errorf("workers = %d, want 3", got)
	}
}

func TestUpdateWorkerProfile_CreatesMissing(t *testing.T) {
	a, _ := newApp(t, memory.New(), session.ProfileNone)
	ctx := context.Background()
	user, err := a.RegisterUser(ctx, "apprentice@example.com", "", "Apprentice", models.RoleWorker)
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if _, err := a.UpdateWorkerProfile(ctx, &user, user.ID, models.WorkerProfile{Name: "Apprentice"}); err != nil {
		t.Fatalf("UpdateWorkerProfile: %v", err)
	}
	p, ok := a.GetWorkerProfile(user.ID)
	if !ok || p.JoinDate != "2026-10-19" {
		t.Errorf("profile = %+v, %v", p, ok)
	}
}

func TestUpdateWorkerProfile_PartialBodyStoresEmptyLists(t *testing.T) {
	kv := memory.New()
	a, _ := newApp(t, kv, "")
	ctx := context.Background()
	owner, _ := a.GetUser("worker1")

	partial := models.WorkerProfile{
		Name:       "John Doe",
		Location:   models.Location{City: "Chicago", State: "IL", Country: "USA"},
		Experience: []models.WorkExperience{{ID: "exp9", Title: "Framer"}},
	}
	if _, err := a.UpdateWorkerProfile(ctx, &owner, "worker1", partial); err != nil {
		t.Fatalf("UpdateWorkerProfile: %v", err)
	}

	raw, err := json.Marshal(a.Snapshot())
	if err != nil {
		t.Fatalf("encode snapshot: %v", err)
	}
	if bytes.Contains(raw, []byte("null")) {
		t.Errorf("snapshot contains null list: %s", raw)
	}
	stored, _ := a.GetWorkerProfile("worker1")
	if stored.Skills == nil || stored.PreferredJobTitles == nil || stored.Experience[0].Skills == nil {
		t.Errorf("stored profile has nil lists: %+v", stored)
	}

	persisted, err := kv.Get(ctx, storage.SnapshotKey)
	if err != nil {
		t.Fatalf("read persisted snapshot: %v", err)
	}
	for _, field := range []string{`"skills":[]`, `"preferredJobTitles":[]`} {
		if !bytes.Contains(persisted, []byte(field)) {
			t.Errorf("persisted snapshot lacks %s", field)
		}
	}
}

func TestSearchJobs_RecommendedFor(t *testing.T) {
	a, _ := newApp(t, memory.New(), "")
	if got := jobIDs(a.SearchJobs(search.JobQuery{}, "worker1")); len(got) != 1 || got[0] != "job1" {
		t.Errorf("recommended for worker1 = %v", got)
	}
	if got := a.SearchJobs(search.JobQuery{Text: "journeyman"}, ""); len(got) != 1 || got[0].ID != "job2" {
		t.Errorf("text search = %v", jobIDs(got))
	}
	if got := a.SearchJobs(search.JobQuery{}, "nobody"); len(got) != 0 {
		t.Errorf("unknown worker = %v", jobIDs(got))
	}
}

func TestExportData(t *testing.T) {
	a, rec := newApp(t, memory.New(), "")
	var buf bytes.Buffer
	if err := a.ExportData(context.Background(), &buf); err != nil {
		t.Fatalf("ExportData: %v", err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if len(snap.Users) != 5 || len(snap.Jobs) != 4 {
		t.Errorf("export sizes: %d users %d jobs", len(snap.Users), len(snap.Jobs))
	}
	if !bytes.Contains(buf.Bytes(), []byte("\n  \"users\"")) {
		t.Error("export is not two-space indented")
	}
	if rec.last() != notify.DataExported {
		t.Errorf("last event = %q", rec.last())
	}
}

func jobIDs(jobs []models.JobPosting) []string {
	ids := make([]string, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}

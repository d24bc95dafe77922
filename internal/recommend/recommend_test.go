package recommend_test

import (
	"reflect"
	"testing"

	"github.com/Spigel00/work-force-matchup/internal/models"
	"github.com/Spigel00/work-force-matchup/internal/recommend"
	"github.com/Spigel00/work-force-matchup/internal/seed"
	"github.com/Spigel00/work-force-matchup/internal/store"
)

func amount(v float64) *float64 { return &v }

func jobIDs(jobs []models.JobPosting) []string {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func workerIDs(workers []models.WorkerProfile) []string {
	ids := make([]string, 0, len(workers))
	for _, w := range workers {
		ids = append(ids, w.ID)
	}
	return ids
}

// ── jobs for a worker ──────────────────────────────────────────────────────

func TestMatchJobs_SkillOverlapWithSalaryCheck(t *testing.T) {
	worker := models.WorkerProfile{
		ID:                 "w",
		Skills:             []string{"Plumbing Installation", "Troubleshooting"},
		DesiredSalary:      amount(60000),
		PreferredJobTitles: []string{},
	}
	got := jobIDs(recommend.MatchJobs(worker, seed.Snapshot().Jobs))
	// job4 shares Troubleshooting but tops out at 35/hour.
	if want := []string{"job2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MatchJobs = %v, want %v", got, want)
	}
}

func TestMatchJobs_RankedByOverlapThenTitleOnly(t *testing.T) {
	worker := models.WorkerProfile{
		Skills:             []string{"Plumbing Maintenance", "Commercial Systems", "Troubleshooting", "Plumbing Installation"},
		PreferredJobTitles: []string{"HELPER"},
	}
	got := jobIDs(recommend.MatchJobs(worker, seed.Snapshot().Jobs))
	if want := []string{"job4", "job2", "job3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MatchJobs = %v, want %v", got, want)
	}
}

func TestMatchJobs_TiesKeepCollectionOrder(t *testing.T) {
	worker := models.WorkerProfile{Skills: []string{"Troubleshooting"}}
	got := jobIDs(recommend.MatchJobs(worker, seed.Snapshot().Jobs))
	if want := []string{"job2", "job4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MatchJobs = %v, want %v", got, want)
	}
}

func TestMatchJobs_SkillsAreCaseSensitive(t *testing.T) {
	worker := models.WorkerProfile{Skills: []string{"troubleshooting"}}
	if got := recommend.MatchJobs(worker, seed.Snapshot().Jobs); len(got) != 0 {
		t.Errorf("lower-case skill matched: %v", jobIDs(got))
	}
}

func TestJobsForWorker_SeedWorkers(t *testing.T) {
	e := recommend.NewEngine(store.New(seed.Snapshot()))
	cases := map[string][]string{
		"worker1": {"job1"},
		"worker2": {},
		"worker3": {"job2"},
	}
	for id, want := range cases {
		if got := jobIDs(e.JobsForWorker(id)); !reflect.DeepEqual(got, want) {
			t.Errorf("JobsForWorker(%s) = %v, want %v", id, got, want)
		}
	}
}

func TestJobsForWorker_UnknownWorker(t *testing.T) {
	e := recommend.NewEngine(store.New(seed.Snapshot()))
	got := e.JobsForWorker("nobody")
	if got == nil || len(got) != 0 {
		t.Errorf("JobsForWorker(nobody) = %#v, want empty non-nil", got)
	}
}

func TestJobsForWorker_Deterministic(t *testing.T) {
	s := store.New(seed.Snapshot())
	s.PutWorker(models.WorkerProfile{
		ID:     "w",
		Skills: []string{"Troubleshooting", "Carpentry", "Plumbing Installation"},
	})
	e := recommend.NewEngine(s)
	first := e.JobsForWorker("w")
	for i := 0; i < 10; i++ {
		if again := e.JobsForWorker("w"); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, jobIDs(first), jobIDs(again))
		}
	}
}

func TestJobsForWorker_SeesStoreChanges(t *testing.T) {
	s := store.New(seed.Snapshot())
	e := recommend.NewEngine(s)
	if got := e.JobsForWorker("worker2"); len(got) != 0 {
		t.Fatalf("precondition: worker2 has %v", jobIDs(got))
	}
	id := s.AddJob(models.JobPosting{Title: "Electrician", RequiredSkills: []string{"Electrical Wiring"}})
	if got := jobIDs(e.JobsForWorker("worker2")); !reflect.DeepEqual(got, []string{id}) {
		t.Errorf("JobsForWorker after AddJob = %v, want [%s]", got, id)
	}
}

// ── salary compatibility ───────────────────────────────────────────────────

func TestSalaryCompatible(t *testing.T) {
	cases := []struct {
		name    string
		desired *float64
		salary  *models.Salary
		want    bool
	}{
		{"no desired salary", nil, &models.Salary{Min: amount(10), Max: amount(20)}, true},
		{"zero desired salary", amount(0), &models.Salary{Min: amount(10)}, true},
		{"no job salary", amount(50000), nil, true},
		{"no minimum", amount(50000), &models.Salary{Max: amount(10)}, true},
		{"under max", amount(60000), &models.Salary{Min: amount(52000), Max: amount(68000)}, true},
		{"equal to max", amount(68000), &models.Salary{Min: amount(52000), Max: amount(68000)}, true},
		{"over max", amount(72000), &models.Salary{Min: amount(52000), Max: amount(68000)}, false},
		{"below min passes", amount(1000), &models.Salary{Min: amount(52000), Max: amount(68000)}, true},
		{"min only, under", amount(50000), &models.Salary{Min: amount(52000)}, true},
		{"min only, over", amount(60000), &models.Salary{Min: amount(52000)}, false},
		{"zero max falls back to min", amount(60000), &models.Salary{Min: amount(52000), Max: amount(0)}, false},
	}
	for _, c := range cases {
		if got := recommend.SalaryCompatible(c.desired, c.salary); got != c.want {
			t.Errorf("%s: SalaryCompatible = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestTitleMatch(t *testing.T) {
	if !recommend.TitleMatch([]string{"plumber"}, "Journeyman Plumber") {
		t.Error("substring match failed")
	}
	if recommend.TitleMatch([]string{"Master Plumber"}, "Maintenance Plumber") {
		t.Error("non-substring matched")
	}
	if recommend.TitleMatch(nil, "Anything") {
		t.Error("empty preference list matched")
	}
}

func TestSkillOverlap(t *testing.T) {
	if got := recommend.SkillOverlap([]string{"A", "B", "A"}, []string{"A"}); got != 2 {
		t.Errorf("SkillOverlap with duplicates = %d, want 2", got)
	}
	if got := recommend.SkillOverlap(nil, []string{"A"}); got != 0 {
		t.Errorf("SkillOverlap(nil) = %d", got)
	}
}

// ── workers for a job ──────────────────────────────────────────────────────

func TestMatchWorkers_LocationIsMandatory(t *testing.T) {
	job := models.JobPosting{
		RequiredSkills: []string{"Electrical Wiring"},
		Location:       models.Location{City: "Detroit", State: "MI"},
	}
	far := models.WorkerProfile{
		ID:       "far",
		Skills:   []string{"Electrical Wiring"},
		Location: models.Location{City: "Chicago", State: "IL"},
	}
	if got := recommend.MatchWorkers(job, []models.WorkerProfile{far}); len(got) != 0 {
		t.Errorf("worker outside city and state recommended: %v", workerIDs(got))
	}
}

func TestMatchWorkers_SkillIsMandatory(t *testing.T) {
	job := models.JobPosting{
		RequiredSkills: []string{"Electrical Wiring"},
		Location:       models.Location{City: "Detroit", State: "MI"},
	}
	local := models.WorkerProfile{
		ID:       "local",
		Skills:   []string{"Plumbing Installation"},
		Location: models.Location{City: "Detroit", State: "MI"},
	}
	if got := recommend.MatchWorkers(job, []models.WorkerProfile{local}); len(got) != 0 {
		t.Errorf("worker without a shared skill recommended: %v", workerIDs(got))
	}
}

func TestMatchWorkers_ExactCityBreaksTies(t *testing.T) {
	job := models.JobPosting{
		RequiredSkills: []string{"Pipe Fitting"},
		Location:       models.Location{City: "Columbus", State: "OH"},
	}
	stateOnly := models.WorkerProfile{ID: "state", Skills: []string{"Pipe Fitting"}, Location: models.Location{City: "Cincinnati", State: "OH"}}
	sameCity := models.WorkerProfile{ID: "city", Skills: []string{"Pipe Fitting"}, Location: models.Location{City: "Columbus", State: "OH"}}

	got := workerIDs(recommend.MatchWorkers(job, []models.WorkerProfile{stateOnly, sameCity}))
	if want := []string{"city", "state"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MatchWorkers = %v, want %v", got, want)
	}
}

func TestMatchWorkers_OverlapBeatsCity(t *testing.T) {
	job := models.JobPosting{
		RequiredSkills: []string{"Pipe Fitting", "Water Heaters"},
		Location:       models.Location{City: "Columbus", State: "OH"},
	}
	stateOnly := models.WorkerProfile{ID: "state", Skills: []string{"Pipe Fitting", "Water Heaters"}, Location: models.Location{City: "Dayton", State: "OH"}}
	sameCity := models.WorkerProfile{ID: "city", Skills: []string{"Pipe Fitting"}, Location: models.Location{City: "Columbus", State: "OH"}}

	got := workerIDs(recommend.MatchWorkers(job, []models.WorkerProfile{sameCity, stateOnly}))
	if want := []string{"state", "city"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MatchWorkers = %v, want %v", got, want)
	}
}

func TestWorkersForJob_SeedJobs(t *testing.T) {
	e := recommend.NewEngine(store.New(seed.Snapshot()))
	cases := map[string][]string{
		"job1": {"worker1"},
		"job2": {"worker3"},
		"job3": {},
		"job4": {},
	}
	for id, want := range cases {
		if got := workerIDs(e.WorkersForJob(id)); !reflect.DeepEqual(got, want) {
			t.Errorf("WorkersForJob(%s) = %v, want %v", id, got, want)
		}
	}
}

func TestWorkersForJob_UnknownJob(t *testing.T) {
	e := recommend.NewEngine(store.New(seed.Snapshot()))
	got := e.WorkersForJob("missing")
	if got == nil || len(got) != 0 {
		t.Errorf("WorkersForJob(missing) = %#v, want empty non-nil", got)
	}
}

// Package seed holds the built-in dataset that bootstraps the store when no
// durable snapshot exists.
package seed

import "github.com/Spigel00/work-force-matchup/internal/models"

// Snapshot returns a freshly built copy of the seed dataset. Callers may
// mutate the result freely.
func Snapshot() models.Snapshot {
	return models.Snapshot{
		Users:     users(),
		Workers:   workers(),
		Employers: employers(),
		Jobs:      jobs(),
	}
}

func users() []models.User {
	return []models.User{
		{ID: "worker1", Role: models.RoleWorker, Email: "john.doe@example.com", Name: "John Doe", JoinedDate: "2024-01-05"},
		{ID: "worker2", Role: models.RoleWorker, Email: "sarah.smith@example.com", Name: "Sarah Smith", JoinedDate: "2024-02-12"},
		{ID: "worker3", Role: models.RoleWorker, Email: "mike.jones@example.com", Name: "Mike Jones", JoinedDate: "2024-01-22"},
		{ID: "employer1", Role: models.RoleEmployer, Email: "hr@constructioncorp.com", Name: "Construction Corp", JoinedDate: "2023-11-15"},
		{ID: "employer2", Role: models.RoleEmployer, Email: "jobs@plumbingpros.com", Name: "Plumbing Pros", JoinedDate: "2023-12-10"},
	}
}

func workers() []models.WorkerProfile {
	return []models.WorkerProfile{
		{
			ID:    "worker1",
			Name:  "John Doe",
			Email: "john.doe@example.com",
			Phone: "555-123-4567",
			Location: models.Location{
				City: "Chicago", State: "IL", Country: "USA", Zip: "60601",
			},
			Bio:    "Experienced construction worker with over 10 years in residential and commercial projects.",
			Skills: []string{"Carpentry", "Framing", "Blueprint Reading", "Power Tools", "Construction Safety"},
			Experience: []models.WorkExperience{
				{
					ID:          "exp1",
					Title:       "Senior Carpenter",
					Company:     "Building Excellence Inc.",
					Location:    models.Location{City: "Chicago", State: "IL", Country: "USA"},
					StartDate:   "2018-06-01",
					Description: "Led a team of 5 carpenters on commercial building projects.",
					Skills:      []string{"Carpentry", "Team Leadership", "Commercial Construction"},
				},
				{
					ID:          "exp2",
					Title:       "Carpenter",
					Company:     "Homes & More Construction",
					Location:    models.Location{City: "Milwaukee", State: "WI", Country: "USA"},
					StartDate:   "2012-03-15",
					EndDate:     "2018-05-30",
					Description: "Worked on residential home construction and renovation projects.",
					Skills:      []string{"Residential Construction", "Renovation", "Carpentry"},
				},
			},
			DesiredSalary:      amount(65000),
			PreferredJobTitles: []string{"Senior Carpenter", "Construction Foreman", "Construction Manager"},
			JoinDate:           "2024-01-05",
		},
		{
			ID:    "worker2",
			Name:  "Sarah Smith",
			Email: "sarah.smith@example.com",
			Phone: "555-987-6543",
			Location: models.Location{
				City: "Detroit", State: "MI", Country: "USA", Zip: "48201",
			},
			Bio:    "Certified electrician with expertise in both residential and industrial electrical systems.",
			Skills: []string{"Electrical Wiring", "Circuit Installation", "Troubleshooting", "Electrical Code Compliance", "Safety Protocols"},
			Experience: []models.WorkExperience{
				{
					ID:          "exp3",
					Title:       "Journeyman Electrician",
					Company:     "PowerUp Electric",
					Location:    models.Location{City: "Detroit", State: "MI", Country: "USA"},
					StartDate:   "2019-04-01",
					Description: "Handle complex electrical installations and troubleshooting for commercial clients.",
					Skills:      []string{"Commercial Electrical", "Troubleshooting", "Installation"},
				},
				{
					ID:          "exp4",
					Title:       "Apprentice Electrician",
					Company:     "Bright Spark Electrical",
					Location:    models.Location{City: "Ann Arbor", State: "MI", Country: "USA"},
					StartDate:   "2016-09-10",
					EndDate:     "2019-03-28",
					Description: "Assisted senior electricians with installations and repairs.",
					Skills:      []string{"Residential Electrical", "Repairs", "Apprentice Work"},
				},
			},
			DesiredSalary:      amount(72000),
			PreferredJobTitles: []string{"Senior Electrician", "Electrical Supervisor", "Project Electrician"},
			JoinDate:           "2024-02-12",
		},
		{
			ID:    "worker3",
			Name:  "Mike Jones",
			Email: "mike.jones@example.com",
			Phone: "555-456-7890",
			Location: models.Location{
				City: "Columbus", State: "OH", Country: "USA", Zip: "43215",
			},
			Bio:    "Skilled plumber specialized in commercial plumbing systems and project management.",
			Skills: []string{"Plumbing Installation", "Pipe Fitting", "Drainage Systems", "Plumbing Codes", "Water Heaters"},
			Experience: []models.WorkExperience{
				{
					ID:          "exp5",
					Title:       "Master Plumber",
					Company:     "Flow Solutions Plumbing",
					Location:    models.Location{City: "Columbus", State: "OH", Country: "USA"},
					StartDate:   "2020-01-15",
					Description: "Lead plumber for major commercial projects including office buildings and restaurants.",
					Skills:      []string{"Commercial Plumbing", "Project Leadership", "Code Compliance"},
				},
				{
					ID:          "exp6",
					Title:       "Plumber",
					Company:     "City Plumbing Services",
					Location:    models.Location{City: "Cincinnati", State: "OH", Country: "USA"},
					StartDate:   "2015-06-22",
					EndDate:     "2019-12-20",
					Description: "Handled residential and small commercial plumbing installation and repairs.",
					Skills:      []string{"Residential Plumbing", "Repairs", "Customer Service"},
				},
			},
			DesiredSalary:      amount(68000),
			PreferredJobTitles: []string{"Master Plumber", "Plumbing Contractor", "Plumbing Supervisor"},
			JoinDate:           "2024-01-22",
		},
	}
}

func employers() []models.EmployerProfile {
	return []models.EmployerProfile{
		{
			ID:          "employer1",
			CompanyName: "Construction Corp",
			Email:       "hr@constructioncorp.com",
			Phone:       "555-222-3333",
			Location:    models.Location{City: "Chicago", State: "IL", Country: "USA", Zip: "60602"},
			Description: "Leading commercial construction company with projects across the Midwest.",
			Industry:    "Construction",
			CompanySize: "51-200 employees",
			Website:     "https://www.constructioncorp-example.com",
			JoinDate:    "2023-11-15",
		},
		{
			ID:          "employer2",
			CompanyName: "Plumbing Pros",
			Email:       "jobs@plumbingpros.com",
			Phone:       "555-444-5555",
			Location:    models.Location{City: "Columbus", State: "OH", Country: "USA", Zip: "43220"},
			Description: "Full-service plumbing company specializing in residential and commercial projects.",
			Industry:    "Plumbing",
			CompanySize: "11-50 employees",
			Website:     "https://www.plumbingpros-example.com",
			JoinDate:    "2023-12-10",
		},
	}
}

func jobs() []models.JobPosting {
	return []models.JobPosting{
		{
			ID:              "job1",
			Title:           "Senior Carpenter",
			Description:     "We're seeking an experienced carpenter to join our team for commercial building projects. Must have 5+ years of experience in commercial construction, with strong knowledge of building codes and safety protocols.",
			Location:        models.Location{City: "Chicago", State: "IL", Country: "USA"},
			Salary:          &models.Salary{Min: amount(60000), Max: amount(75000), Type: models.SalaryYearly},
			EmployerID:      "employer1",
			CompanyName:     "Construction Corp",
			RequiredSkills:  []string{"Carpentry", "Commercial Construction", "Blueprint Reading", "Team Leadership"},
			ExperienceLevel: "Senior (5+ years)",
			PostDate:        "2024-03-20",
			DeadlineDate:    "2024-05-20",
			JobType:         models.JobFullTime,
		},
		{
			ID:              "job2",
			Title:           "Journeyman Plumber",
			Description:     "Seeking a licensed journeyman plumber for residential and commercial service work. Must have knowledge of local plumbing codes, troubleshooting skills, and excellent customer service.",
			Location:        models.Location{City: "Columbus", State: "OH", Country: "USA"},
			Salary:          &models.Salary{Min: amount(52000), Max: amount(68000), Type: models.SalaryYearly},
			EmployerID:      "employer2",
			CompanyName:     "Plumbing Pros",
			RequiredSkills:  []string{"Plumbing Installation", "Troubleshooting", "Customer Service", "Code Knowledge"},
			ExperienceLevel: "Journeyman (3+ years)",
			PostDate:        "2024-03-25",
			JobType:         models.JobFullTime,
		},
		{
			ID:              "job3",
			Title:           "Construction Helper",
			Description:     "Entry-level position assisting carpenters and other tradespeople on commercial construction sites. No experience necessary, but must have reliable transportation and be willing to learn.",
			Location:        models.Location{City: "Chicago", State: "IL", Country: "USA"},
			Salary:          &models.Salary{Min: amount(18), Max: amount(22), Type: models.SalaryHourly},
			EmployerID:      "employer1",
			CompanyName:     "Construction Corp",
			RequiredSkills:  []string{"Physical Strength", "Dependability", "Basic Tool Knowledge"},
			ExperienceLevel: "Entry Level",
			PostDate:        "2024-04-01",
			DeadlineDate:    "2024-04-30",
			JobType:         models.JobFullTime,
		},
		{
			ID:              "job4",
			Title:           "Maintenance Plumber",
			Description:     "Part-time plumber needed for regular maintenance of plumbing systems in commercial buildings. Flexible hours, perfect for experienced plumbers looking for additional work.",
			Location:        models.Location{City: "Cincinnati", State: "OH", Country: "USA"},
			Salary:          &models.Salary{Min: amount(25), Max: amount(35), Type: models.SalaryHourly},
			EmployerID:      "employer2",
			CompanyName:     "Plumbing Pros",
			RequiredSkills:  []string{"Plumbing Maintenance", "Commercial Systems", "Troubleshooting"},
			ExperienceLevel: "Mid-level (2+ years)",
			PostDate:        "2024-03-28",
			JobType:         models.JobPartTime,
		},
	}
}

func amount(v float64) *float64 { return &v }

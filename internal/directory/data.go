package directory

import "github.com/raiyan/alumni-network/internal/model"

// seedProfiles is the demo dataset. Order matters: search results preserve
// it, and the tests assert on it.
var seedProfiles = []model.AlumniProfile{
	{
		ID:          "1",
		Name:        "Sarah Mitchell",
		Designation: "Senior Software Engineer",
		Company:     "Google",
		Location:    "San Francisco, CA",
		Batch:       2018,
		Skills:      []string{"React", "Node.js", "Python", "ML"},
		IsMentor:    true,
	},
	{
		ID:          "2",
		Name:        "Michael Chen",
		Designation: "Product Manager",
		Company:     "Meta",
		Location:    "New York, NY",
		Batch:       2017,
		Skills:      []string{"Product Strategy", "Analytics", "Agile"},
		IsMentor:    true,
	},
	{
		ID:          "3",
		Name:        "Emily Rodriguez",
		Designation: "Data Scientist",
		Company:     "Netflix",
		Location:    "Los Angeles, CA",
		Batch:       2019,
		Skills:      []string{"Python", "TensorFlow", "SQL", "Tableau"},
		IsMentor:    false,
	},
	{
		ID:          "4",
		Name:        "James Wilson",
		Designation: "CTO",
		Company:     "TechStart Inc.",
		Location:    "Austin, TX",
		Batch:       2012,
		Skills:      []string{"Leadership", "Architecture", "Cloud"},
		IsMentor:    true,
	},
	{
		ID:          "5",
		Name:        "Priya Sharma",
		Designation: "UX Designer",
		Company:     "Airbnb",
		Location:    "Seattle, WA",
		Batch:       2020,
		Skills:      []string{"Figma", "User Research", "Prototyping"},
		IsMentor:    false,
	},
	{
		ID:          "6",
		Name:        "David Kim",
		Designation: "DevOps Engineer",
		Company:     "Amazon",
		Location:    "Seattle, WA",
		Batch:       2016,
		Skills:      []string{"AWS", "Kubernetes", "Docker", "Terraform"},
		IsMentor:    true,
	},
	{
		ID:          "7",
		Name:        "Lisa Thompson",
		Designation: "Marketing Director",
		Company:     "Salesforce",
		Location:    "Chicago, IL",
		Batch:       2014,
		Skills:      []string{"Digital Marketing", "Brand Strategy", "SEO"},
		IsMentor:    false,
	},
	{
		ID:          "8",
		Name:        "Alex Johnson",
		Designation: "Full Stack Developer",
		Company:     "Stripe",
		Location:    "Remote",
		Batch:       2021,
		Skills:      []string{"TypeScript", "React", "PostgreSQL"},
		IsMentor:    false,
	},
}

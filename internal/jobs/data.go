package jobs

import "github.com/raiyan/alumni-network/internal/model"

// seedPostings is the demo dataset, board order preserved by Search.
var seedPostings = []model.JobPosting{
	{
		ID:           "1",
		Title:        "Senior Frontend Developer",
		Company:      "Google",
		Location:     "San Francisco, CA",
		Type:         "Full-time",
		Salary:       "$150k - $200k",
		Posted:       "2 days ago",
		Description:  "Join our team to build the next generation of web experiences. Work with React, TypeScript, and cutting-edge technologies.",
		Requirements: []string{"5+ years React experience", "TypeScript proficiency", "System design skills"},
		PostedBy:     "Sarah Mitchell (Alumni '18)",
		IsRemote:     true,
	},
	{
		ID:           "2",
		Title:        "Product Manager",
		Company:      "Meta",
		Location:     "New York, NY",
		Type:         "Full-time",
		Salary:       "$140k - $180k",
		Posted:       "1 week ago",
		Description:  "Lead product strategy for our social commerce initiatives. Work with cross-functional teams to ship impactful features.",
		Requirements: []string{"3+ years PM experience", "Technical background", "Strong analytics skills"},
		PostedBy:     "Michael Chen (Alumni '17)",
		IsRemote:     false,
	},
	{
		ID:           "3",
		Title:        "Data Science Intern",
		Company:      "Netflix",
		Location:     "Los Angeles, CA",
		Type:         "Internship",
		Salary:       "$50/hour",
		Posted:       "3 days ago",
		Description:  "Summer internship opportunity to work on recommendation algorithms and content analytics.",
		Requirements: []string{"Currently pursuing MS/PhD", "Python & ML experience", "Statistical modeling"},
		PostedBy:     "Emily Rodriguez (Alumni '19)",
		IsRemote:     true,
	},
	{
		ID:           "4",
		Title:        "DevOps Engineer",
		Company:      "Amazon",
		Location:     "Seattle, WA",
		Type:         "Full-time",
		Salary:       "$130k - $170k",
		Posted:       "5 days ago",
		Description:  "Build and maintain cloud infrastructure for AWS services. Focus on reliability and scalability.",
		Requirements: []string{"AWS certification preferred", "Kubernetes experience", "CI/CD expertise"},
		PostedBy:     "David Kim (Alumni '16)",
		IsRemote:     false,
	},
	{
		ID:           "5",
		Title:        "UX Designer",
		Company:      "Airbnb",
		Location:     "Remote",
		Type:         "Full-time",
		Salary:       "$120k - $160k",
		Posted:       "1 day ago",
		Description:  "Design beautiful and intuitive experiences for millions of travelers and hosts worldwide.",
		Requirements: []string{"4+ years UX design", "Figma expertise", "Portfolio required"},
		PostedBy:     "Priya Sharma (Alumni '20)",
		IsRemote:     true,
	},
	{
		ID:           "6",
		Title:        "Machine Learning Engineer",
		Company:      "Tesla",
		Location:     "Austin, TX",
		Type:         "Full-time",
		Salary:       "$160k - $220k",
		Posted:       "4 days ago",
		Description:  "Work on computer vision and autonomous driving systems. Push the boundaries of AI.",
		Requirements: []string{"Deep learning expertise", "Computer vision", "C++ proficiency"},
		PostedBy:     "James Wilson (Alumni '12)",
		IsRemote:     false,
	},
}

package events

import "github.com/raiyan/alumni-network/internal/model"

// seedEvents is the demo dataset, listing order preserved by Search.
var seedEvents = []model.Event{
	{
		ID:           "1",
		Title:        "Tech Talk: AI in Healthcare",
		Description:  "Join us for an insightful session on how artificial intelligence is transforming healthcare. Industry experts will share real-world applications and future trends.",
		Date:         "Dec 20, 2025",
		Time:         "2:00 PM - 4:00 PM",
		Location:     "Virtual (Zoom)",
		Type:         model.EventWebinar,
		Attendees:    156,
		MaxAttendees: 200,
		Speaker:      "Dr. Emily Chen, Google Health",
		IsPast:       false,
	},
	{
		ID:           "2",
		Title:        "Annual Alumni Meetup 2025",
		Description:  "The biggest networking event of the year! Connect with fellow alumni, enjoy great food, and celebrate our community.",
		Date:         "Dec 25, 2025",
		Time:         "6:00 PM - 10:00 PM",
		Location:     "Grand Ballroom, University Campus",
		Type:         model.EventInPerson,
		Attendees:    342,
		MaxAttendees: 500,
		IsPast:       false,
	},
	{
		ID:           "3",
		Title:        "Career Workshop: Resume Building",
		Description:  "Learn how to craft a compelling resume that gets noticed by top recruiters. Hands-on workshop with personalized feedback.",
		Date:         "Jan 5, 2026",
		Time:         "10:00 AM - 12:00 PM",
		Location:     "Career Center, Room 201",
		Type:         model.EventWorkshop,
		Attendees:    45,
		MaxAttendees: 50,
		Speaker:      "HR Team from Microsoft",
		IsPast:       false,
	},
	{
		ID:           "4",
		Title:        "Startup Pitch Night",
		Description:  "Watch alumni entrepreneurs pitch their startups to a panel of investors. Great opportunity to learn and network.",
		Date:         "Jan 15, 2026",
		Time:         "5:00 PM - 8:00 PM",
		Location:     "Innovation Hub",
		Type:         model.EventNetworking,
		Attendees:    89,
		MaxAttendees: 150,
		Speaker:      "Various Alumni Founders",
		IsPast:       false,
	},
	{
		ID:           "5",
		Title:        "Industry Panel: Future of Remote Work",
		Description:  "Leaders from top tech companies discuss how remote work is evolving and what it means for your career.",
		Date:         "Nov 10, 2025",
		Time:         "3:00 PM - 5:00 PM",
		Location:     "Virtual (Teams)",
		Type:         model.EventWebinar,
		Attendees:    234,
		MaxAttendees: 250,
		Speaker:      "Panel of Industry Leaders",
		IsPast:       true,
	},
	{
		ID:           "6",
		Title:        "Homecoming Weekend 2025",
		Description:  "Celebrate homecoming with games, reunions, and festivities. All alumni and families welcome!",
		Date:         "Oct 15, 2025",
		Time:         "All Day",
		Location:     "University Campus",
		Type:         model.EventInPerson,
		Attendees:    1200,
		MaxAttendees: 2000,
		IsPast:       true,
	},
}

package model

// EventType is the event's category badge.
type EventType string

const (
	EventWebinar    EventType = "webinar"
	EventInPerson   EventType = "in-person"
	EventWorkshop   EventType = "workshop"
	EventNetworking EventType = "networking"
)

// Event is one entry in the events listing.
//
// Events are static records. Registration does not mutate them — the attendee
// counts are part of the seed data, and "registering" is an acknowledgement,
// not a state change. Date and Time stay as display strings because that is
// all the listing contract needs; the past/upcoming split is carried by the
// explicit IsPast flag, not by parsing dates.
type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Location     string    `json:"location"`
	Type         EventType `json:"type"`
	Attendees    int       `json:"attendees"`
	MaxAttendees int       `json:"maxAttendees"`
	Speaker      string    `json:"speaker,omitempty"`
	IsPast       bool      `json:"isPast"`
}

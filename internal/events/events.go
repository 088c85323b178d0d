// Package events is the events listing: static records, the search contract
// over them, and side-effect-free registration.
package events

import (
	"github.com/raiyan/alumni-network/internal/apperror"
	"github.com/raiyan/alumni-network/internal/model"
	"github.com/raiyan/alumni-network/internal/query"
)

// Time filter selections. Unlike the dropdown filters, this one's sentinel
// is "all" — the UI defaults to "upcoming", but "all" means no constraint.
const (
	FilterAll      = "all"
	FilterUpcoming = "upcoming"
	FilterPast     = "past"
)

// Query is one events search. Zero value = upcoming-and-past, no text.
type Query struct {
	Text   string
	Filter string // FilterAll, FilterUpcoming, or FilterPast
}

// Confirmation is the result of registering for an event. Registration is an
// acknowledgement, not a state change — the attendee counts are static seed
// data, so the record is untouched.
type Confirmation struct {
	EventID string `json:"eventId"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Calendar holds the event records.
type Calendar struct {
	events []model.Event
}

// New returns a Calendar over the built-in seed events.
func New() *Calendar {
	return &Calendar{events: seedEvents}
}

// NewWithEvents returns a Calendar over the given records. Used in tests.
func NewWithEvents(events []model.Event) *Calendar {
	return &Calendar{events: events}
}

// All returns every event in original order.
func (c *Calendar) All() []model.Event {
	out := make([]model.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Total is the size of the full dataset.
func (c *Calendar) Total() int {
	return len(c.events)
}

// Search returns the events matching all active criteria, in original order.
// The text query looks at title and description. The time filter applies
// regardless of text: "upcoming" excludes every past event, "past" excludes
// every upcoming one.
func (c *Calendar) Search(q Query) []model.Event {
	pred := query.And(
		query.Text(q.Text, func(e model.Event) []string {
			return []string{e.Title, e.Description}
		}),
		timeFilter(q.Filter),
	)
	return query.Filter(c.events, pred)
}

// timeFilter maps the three-way selection onto a predicate. An unknown
// selection behaves like the sentinel — the listing should not blank out on
// a stale query parameter.
func timeFilter(selected string) query.Predicate[model.Event] {
	switch selected {
	case FilterUpcoming:
		return func(e model.Event) bool { return !e.IsPast }
	case FilterPast:
		return func(e model.Event) bool { return e.IsPast }
	default:
		return func(model.Event) bool { return true }
	}
}

// Get returns the event with the given id, or false.
func (c *Calendar) Get(id string) (model.Event, bool) {
	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return model.Event{}, false
}

// Register acknowledges a registration for the event. Nothing is stored and
// no counter moves; the confirmation is the entire effect.
func (c *Calendar) Register(id string) (*Confirmation, error) {
	event, ok := c.Get(id)
	if !ok {
		return nil, apperror.NotFound("event", id)
	}
	return &Confirmation{
		EventID: event.ID,
		Title:   event.Title,
		Message: "Registration successful! You're registered for " + event.Title + ".",
	}, nil
}

// Package jobs is the job board: static postings, the search contract over
// them, and the local save/apply actions.
//
// Saves are per-user UI toggles held in memory — they survive neither a
// restart nor a second server. Applying starts nothing; it returns an
// acknowledgement the front end can toast.
package jobs

import (
	"sync"

	"github.com/raiyan/alumni-network/internal/apperror"
	"github.com/raiyan/alumni-network/internal/model"
	"github.com/raiyan/alumni-network/internal/query"
)

// Sentinel selections for the two dropdown filters.
const (
	SentinelAllTypes     = "All Types"
	SentinelAllLocations = "All Locations"
)

// Types is the employment-type dropdown, sentinel first.
var Types = []string{SentinelAllTypes, "Full-time", "Part-time", "Internship", "Contract"}

// Locations is the location dropdown, sentinel first. These are substrings,
// not exact values: "Seattle" matches "Seattle, WA".
var Locations = []string{SentinelAllLocations, "Remote", "San Francisco", "New York", "Seattle", "Austin"}

// RemoteLocation is the special dropdown value that also matches any posting
// whose remote flag is set, whatever its literal location says.
const RemoteLocation = "Remote"

// Query is one job search. Zero value = everything.
type Query struct {
	Text     string
	Type     string
	Location string
}

// Acknowledgement is the result of applying for a posting.
type Acknowledgement struct {
	JobID   string `json:"jobId"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Board holds the postings and the per-user saved sets.
type Board struct {
	postings []model.JobPosting

	mu    sync.Mutex
	saved map[string]map[string]bool // sessionID → jobID → saved
}

// New returns a Board over the built-in seed postings.
func New() *Board {
	return NewWithPostings(seedPostings)
}

// NewWithPostings returns a Board over the given records. Used in tests.
func NewWithPostings(postings []model.JobPosting) *Board {
	return &Board{
		postings: postings,
		saved:    make(map[string]map[string]bool),
	}
}

// All returns every posting in original order.
func (b *Board) All() []model.JobPosting {
	out := make([]model.JobPosting, len(b.postings))
	copy(out, b.postings)
	return out
}

// Total is the size of the full dataset.
func (b *Board) Total() int {
	return len(b.postings)
}

// Search returns the postings matching all active criteria, in original
// order. The text query looks at title, company, and description. The
// location filter is a substring match — and for "Remote" it additionally
// matches any posting with the remote flag set, even one whose location
// string is a city.
func (b *Board) Search(q Query) []model.JobPosting {
	location := query.Contains(q.Location, SentinelAllLocations, func(j model.JobPosting) string {
		return j.Location
	})
	if q.Location == RemoteLocation {
		location = query.Or(location, func(j model.JobPosting) bool {
			return j.IsRemote
		})
	}

	pred := query.And(
		query.Text(q.Text, func(j model.JobPosting) []string {
			return []string{j.Title, j.Company, j.Description}
		}),
		query.Equals(q.Type, SentinelAllTypes, func(j model.JobPosting) string {
			return j.Type
		}),
		location,
	)
	return query.Filter(b.postings, pred)
}

// Get returns the posting with the given id, or false.
func (b *Board) Get(id string) (model.JobPosting, bool) {
	for _, j := range b.postings {
		if j.ID == id {
			return j, true
		}
	}
	return model.JobPosting{}, false
}

// ToggleSave flips the saved state of a posting for one user and returns the
// new state (true = now saved).
func (b *Board) ToggleSave(sessionID, jobID string) (bool, error) {
	if _, ok := b.Get(jobID); !ok {
		return false, apperror.NotFound("job", jobID)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	set := b.saved[sessionID]
	if set == nil {
		set = make(map[string]bool)
		b.saved[sessionID] = set
	}
	if set[jobID] {
		delete(set, jobID)
		return false, nil
	}
	set[jobID] = true
	return true, nil
}

// Saved returns the ids of the postings a user has saved, in board order.
func (b *Board) Saved(sessionID string) []string {
	b.mu.Lock()
	set := b.saved[sessionID]
	b.mu.Unlock()

	out := make([]string, 0, len(set))
	for _, j := range b.postings {
		if set[j.ID] {
			out = append(out, j.ID)
		}
	}
	return out
}

// Apply acknowledges an application for the posting. Nothing is stored.
func (b *Board) Apply(jobID string) (*Acknowledgement, error) {
	job, ok := b.Get(jobID)
	if !ok {
		return nil, apperror.NotFound("job", jobID)
	}
	return &Acknowledgement{
		JobID:   job.ID,
		Title:   job.Title,
		Message: "Application started. You're applying for " + job.Title + " at " + job.Company + ".",
	}, nil
}

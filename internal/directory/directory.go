// Package directory is the alumni directory: a static set of profiles and
// the search contract over them.
//
// The records are read-only seed data — there is no profile CRUD in this
// system. All the behavior is in Search, which wires this dataset's field
// selectors into the shared query engine.
package directory

import (
	"github.com/raiyan/alumni-network/internal/model"
	"github.com/raiyan/alumni-network/internal/query"
)

// SentinelAll is the "no constraint" selection for both the company and
// batch filters ("All Companies" / "All Batches" in the UI).
const SentinelAll = "All"

// Companies is the company dropdown, sentinel first. "Other" is a real
// option that matches nothing in the seed data — company matching is exact,
// so it only ever matches a profile whose company is literally "Other".
var Companies = []string{SentinelAll, "Google", "Meta", "Netflix", "Amazon", "Airbnb", "Other"}

// Batches is the graduation-batch dropdown, sentinel first.
var Batches = []string{SentinelAll, "2012-2015", "2016-2018", "2019-2021", "2022+"}

// batchBuckets maps each dropdown option to its year range.
var batchBuckets = map[string]query.Range{
	"2012-2015": {Min: 2012, Max: 2015},
	"2016-2018": {Min: 2016, Max: 2018},
	"2019-2021": {Min: 2019, Max: 2021},
	"2022+":     {Min: 2022},
}

// Query is one directory search: free text plus the three filters.
// Zero value = everything (empty text, sentinels, toggle off).
type Query struct {
	Text        string
	Company     string
	Batch       string
	MentorsOnly bool
}

// Directory holds the profile records.
type Directory struct {
	profiles []model.AlumniProfile
}

// New returns a Directory over the built-in seed profiles.
func New() *Directory {
	return &Directory{profiles: seedProfiles}
}

// NewWithProfiles returns a Directory over the given records. Used in tests.
func NewWithProfiles(profiles []model.AlumniProfile) *Directory {
	return &Directory{profiles: profiles}
}

// All returns every profile in original order.
func (d *Directory) All() []model.AlumniProfile {
	out := make([]model.AlumniProfile, len(d.profiles))
	copy(out, d.profiles)
	return out
}

// Total is the size of the full dataset (the "Showing X of Y" denominator).
func (d *Directory) Total() int {
	return len(d.profiles)
}

// Search returns the profiles matching all active criteria, in original
// order. The text query looks at name, company, and each skill tag.
func (d *Directory) Search(q Query) []model.AlumniProfile {
	pred := query.And(
		query.Text(q.Text, func(p model.AlumniProfile) []string {
			fields := []string{p.Name, p.Company}
			return append(fields, p.Skills...)
		}),
		query.Equals(q.Company, SentinelAll, func(p model.AlumniProfile) string {
			return p.Company
		}),
		query.InRange(q.Batch, SentinelAll, batchBuckets, func(p model.AlumniProfile) int {
			return p.Batch
		}),
		query.Toggle(q.MentorsOnly, func(p model.AlumniProfile) bool {
			return p.IsMentor
		}),
	)
	return query.Filter(d.profiles, pred)
}

// Get returns the profile with the given id, or false.
func (d *Directory) Get(id string) (model.AlumniProfile, bool) {
	for _, p := range d.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return model.AlumniProfile{}, false
}

package jobs

import (
	"errors"
	"reflect"
	"testing"

	"github.com/raiyan/alumni-network/internal/apperror"
)

func jobTitles(t *testing.T, q Query) []string {
	t.Helper()
	b := New()
	results := b.Search(q)
	out := make([]string, 0, len(results))
	for _, j := range results {
		out = append(out, j.Title)
	}
	return out
}

func TestSearch_DefaultQueryReturnsEverything(t *testing.T) {
	b := New()
	results := b.Search(Query{})
	if len(results) != b.Total() {
		t.Fatalf("Search(zero query) returned %d of %d postings", len(results), b.Total())
	}
	if !reflect.DeepEqual(results, b.All()) {
		t.Error("Search(zero query) changed the original order")
	}
}

func TestSearch_TextOverTitleCompanyDescription(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"title match", "frontend", []string{"Senior Frontend Developer"}},
		{"company match", "tesla", []string{"Machine Learning Engineer"}},
		{"description match", "recommendation", []string{"Data Science Intern"}},
		{"no match", "cobol", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jobTitles(t, Query{Text: tt.text})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSearch_TypeFilterIsExact(t *testing.T) {
	got := jobTitles(t, Query{Type: "Internship"})
	if want := []string{"Data Science Intern"}; !reflect.DeepEqual(got, want) {
		t.Errorf("type filter = %v, want %v", got, want)
	}
}

func TestSearch_LocationIsSubstringMatch(t *testing.T) {
	// "Seattle" must match "Seattle, WA".
	got := jobTitles(t, Query{Location: "Seattle"})
	if want := []string{"DevOps Engineer"}; !reflect.DeepEqual(got, want) {
		t.Errorf("location filter = %v, want %v", got, want)
	}
}

func TestSearch_RemoteMatchesFlagAndLiteralLocation(t *testing.T) {
	// "Remote" includes the posting whose location IS "Remote" (UX Designer)
	// and every posting whose remote flag is set even though its location is
	// a city (Frontend in SF, Intern in LA).
	got := jobTitles(t, Query{Location: "Remote"})
	want := []string{"Senior Frontend Developer", "Data Science Intern", "UX Designer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("location=Remote = %v, want %v", got, want)
	}
}

func TestSearch_FiltersCombineWithAND(t *testing.T) {
	b := New()

	narrow := b.Search(Query{Text: "work", Location: "Remote"})
	wider := b.Search(Query{Text: "work"})
	if len(narrow) > len(wider) {
		t.Errorf("adding a filter grew results: %d > %d", len(narrow), len(wider))
	}
	for _, j := range narrow {
		if !j.IsRemote && j.Location != "Remote" {
			t.Errorf("%q escaped the remote filter", j.Title)
		}
	}
}

func TestToggleSave(t *testing.T) {
	b := New()

	saved, err := b.ToggleSave("session-1", "2")
	if err != nil {
		t.Fatalf("ToggleSave() error = %v", err)
	}
	if !saved {
		t.Error("first toggle should save")
	}

	saved, err = b.ToggleSave("session-1", "2")
	if err != nil {
		t.Fatalf("ToggleSave() error = %v", err)
	}
	if saved {
		t.Error("second toggle should unsave")
	}
}

func TestToggleSave_IsPerUser(t *testing.T) {
	b := New()

	if _, err := b.ToggleSave("session-1", "1"); err != nil {
		t.Fatalf("ToggleSave() error = %v", err)
	}
	if _, err := b.ToggleSave("session-1", "3"); err != nil {
		t.Fatalf("ToggleSave() error = %v", err)
	}

	if got := b.Saved("session-1"); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Errorf("Saved(session-1) = %v, want [1 3]", got)
	}
	if got := b.Saved("session-2"); len(got) != 0 {
		t.Errorf("Saved(session-2) = %v, want empty — saves must not leak across users", got)
	}
}

func TestToggleSave_UnknownJob(t *testing.T) {
	b := New()
	if _, err := b.ToggleSave("session-1", "404"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("ToggleSave(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestApply(t *testing.T) {
	b := New()

	ack, err := b.Apply("5")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if ack.JobID != "5" || ack.Title != "UX Designer" {
		t.Errorf("acknowledgement = %+v", ack)
	}

	if _, err := b.Apply("404"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Apply(unknown) error = %v, want ErrNotFound", err)
	}
}

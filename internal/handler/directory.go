package handler

import (
	"log/slog"
	"net/http"

	"github.com/raiyan/alumni-network/internal/directory"
	"github.com/raiyan/alumni-network/internal/model"
)

// DirectoryHandler serves the alumni directory listing.
type DirectoryHandler struct {
	dir    *directory.Directory
	logger *slog.Logger
}

func NewDirectoryHandler(dir *directory.Directory, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{dir: dir, logger: logger}
}

// listResponse is the shared envelope for all three listings: the matching
// records plus the counts the UI's "Showing X of Y" line needs.
type listResponse[T any] struct {
	Records []T `json:"records"`
	Count   int `json:"count"`
	Total   int `json:"total"`
}

// HandleList returns the profiles matching the query parameters.
//
// HTTP: GET /api/alumni?q=&company=&batch=&mentorsOnly=true
//
// Missing parameters mean "no constraint": an absent company/batch behaves
// like its sentinel, an absent q matches everything. Zero matches is a 200
// with an empty records array.
func (h *DirectoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	results := h.dir.Search(directory.Query{
		Text:        params.Get("q"),
		Company:     params.Get("company"),
		Batch:       params.Get("batch"),
		MentorsOnly: params.Get("mentorsOnly") == "true",
	})

	writeJSON(w, http.StatusOK, listResponse[model.AlumniProfile]{
		Records: results,
		Count:   len(results),
		Total:   h.dir.Total(),
	})
}

// HandleFilters returns the directory's dropdown options, sentinel first,
// so the UI renders the same choices the search contract understands.
//
// HTTP: GET /api/alumni/filters
func (h *DirectoryHandler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Companies []string `json:"companies"`
		Batches   []string `json:"batches"`
	}{
		Companies: directory.Companies,
		Batches:   directory.Batches,
	})
}

// HandleGet returns a single profile.
//
// HTTP: GET /api/alumni/{id}
func (h *DirectoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	profile, ok := h.dir.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "alumni profile not found with id " + id,
		})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/raiyan/alumni-network/internal/auth"
	"github.com/raiyan/alumni-network/internal/jobs"
	"github.com/raiyan/alumni-network/internal/model"
)

// JobsHandler serves the job board listing plus the save/apply actions.
type JobsHandler struct {
	board  *jobs.Board
	logger *slog.Logger
}

func NewJobsHandler(board *jobs.Board, logger *slog.Logger) *JobsHandler {
	return &JobsHandler{board: board, logger: logger}
}

// jobListResponse extends the listing envelope with the caller's saved job
// ids so the UI can mark bookmarks without a second request. Saved is only
// populated when the request carries a valid session.
type jobListResponse struct {
	listResponse[model.JobPosting]
	Saved []string `json:"saved,omitempty"`
}

type saveResponse struct {
	JobID string `json:"jobId"`
	Saved bool   `json:"saved"`
}

// HandleList returns the postings matching the query parameters.
//
// HTTP: GET /api/jobs?q=&type=&location=
func (h *JobsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	results := h.board.Search(jobs.Query{
		Text:     params.Get("q"),
		Type:     params.Get("type"),
		Location: params.Get("location"),
	})

	resp := jobListResponse{
		listResponse: listResponse[model.JobPosting]{
			Records: results,
			Count:   len(results),
			Total:   h.board.Total(),
		},
	}
	if sessionID, ok := auth.SessionIDFromContext(r.Context()); ok {
		resp.Saved = h.board.Saved(sessionID)
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleFilters returns the board's dropdown options, sentinel first.
//
// HTTP: GET /api/jobs/filters
func (h *JobsHandler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Types     []string `json:"types"`
		Locations []string `json:"locations"`
	}{
		Types:     jobs.Types,
		Locations: jobs.Locations,
	})
}

// HandleGet returns a single posting.
//
// HTTP: GET /api/jobs/{id}
func (h *JobsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	posting, ok := h.board.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "job posting not found with id " + id,
		})
		return
	}
	writeJSON(w, http.StatusOK, posting)
}

// HandleSave toggles the caller's bookmark on a posting and reports the
// resulting state.
//
// HTTP: POST /api/jobs/{id}/save (authenticated)
func (h *JobsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := auth.SessionIDFromContext(r.Context())
	if !ok {
		// RequireAuth guards this route; reaching here without a session
		// means the route was wired wrong.
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "authentication required",
		})
		return
	}

	id := r.PathValue("id")
	saved, err := h.board.ToggleSave(sessionID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saveResponse{JobID: id, Saved: saved})
}

// HandleApply acknowledges an application for a posting. Like event
// registration this is an acknowledgement only: nothing is submitted
// anywhere.
//
// HTTP: POST /api/jobs/{id}/apply (authenticated)
func (h *JobsHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	ack, err := h.board.Apply(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ack)
}

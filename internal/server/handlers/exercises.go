package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
	ferrors "git.home.luguber.info/inful/sportcal/internal/foundation/errors"
	"git.home.luguber.info/inful/sportcal/internal/server/responses"
	"git.home.luguber.info/inful/sportcal/internal/service"
)

// ExerciseHandlers contains the exercise API handlers.
type ExerciseHandlers struct {
	svc          *service.ExerciseService
	errorAdapter *ferrors.HTTPErrorAdapter
}

// NewExerciseHandlers creates the exercise handler set.
func NewExerciseHandlers(svc *service.ExerciseService) *ExerciseHandlers {
	return &ExerciseHandlers{
		svc:          svc,
		errorAdapter: ferrors.NewHTTPErrorAdapter(slog.Default()),
	}
}

// HandleList handles GET /exercises?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *ExerciseHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.svc.List(r.Context(), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}

	out := make([]responses.ExerciseResponse, 0, len(exercises))
	for _, ex := range exercises {
		out = append(out, responses.NewExerciseResponse(ex))
	}
	h.writeOr500(w, r, http.StatusOK, out)
}

// HandleDailySummary handles GET /exercises/daily-summary?from=...&to=...
func (h *ExerciseHandlers) HandleDailySummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.Summarize(r.Context(), r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}

	out := make([]responses.DailySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, responses.NewDailySummaryResponse(s))
	}
	h.writeOr500(w, r, http.StatusOK, out)
}

// createExerciseRequest is the POST /exercises payload. Progress is
// intentionally not accepted; new exercises always start at zero.
type createExerciseRequest struct {
	Date   string  `json:"date"`
	Type   string  `json:"type"`
	Title  string  `json:"title"`
	Target float64 `json:"target"`
}

// HandleCreate handles POST /exercises.
func (h *ExerciseHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, ferrors.ValidationError("request body must be valid JSON").Build())
		return
	}

	ex, err := h.svc.Create(r.Context(), calendar.CreateRequest{
		Date:   req.Date,
		Type:   req.Type,
		Title:  req.Title,
		Target: req.Target,
	})
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}

	resp := responses.NewExerciseResponse(ex)
	w.Header().Set("Location", "/exercises/"+resp.ID)
	h.writeOr500(w, r, http.StatusCreated, resp)
}

// updateProgressRequest is the PATCH /exercises/{id}/progress payload.
type updateProgressRequest struct {
	Progress float64 `json:"progress"`
}

// HandleUpdateProgress handles PATCH /exercises/{id}/progress.
func (h *ExerciseHandlers) HandleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req updateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, ferrors.ValidationError("request body must be valid JSON").Build())
		return
	}

	ex, err := h.svc.UpdateProgress(r.Context(), r.PathValue("id"), req.Progress)
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	h.writeOr500(w, r, http.StatusOK, responses.NewExerciseResponse(ex))
}

func (h *ExerciseHandlers) writeOr500(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := writeJSONPretty(w, r, status, v); err != nil {
		internalErr := ferrors.WrapError(err, ferrors.CategoryInternal, "failed to write response").Build()
		h.errorAdapter.WriteErrorResponse(w, r, internalErr)
	}
}

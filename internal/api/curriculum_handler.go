package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/curricuforge/internal/api/shared"
	"github.com/phrazzld/curricuforge/internal/domain"
	"github.com/phrazzld/curricuforge/internal/service"
	"github.com/phrazzld/curricuforge/internal/view"
)

// CurriculumGenerator runs the curriculum pipeline for one submission.
type CurriculumGenerator interface {
	Generate(ctx context.Context, form domain.RawCurriculumForm) service.Outcome
}

// CurriculumHandler handles the curriculum form and API requests.
type CurriculumHandler struct {
	curricula CurriculumGenerator
	pages     *view.Renderer
	logger    *slog.Logger
}

// NewCurriculumHandler creates a new CurriculumHandler.
func NewCurriculumHandler(curricula CurriculumGenerator, pages *view.Renderer, logger *slog.Logger) *CurriculumHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CurriculumHandler{
		curricula: curricula,
		pages:     pages,
		logger:    logger.With("component", "curriculum_handler"),
	}
}

// ShowForm handles GET / requests.
func (h *CurriculumHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return h.pages.Form(out, view.FormPage{})
	})
}

// GenerateForm handles form submissions on POST /generate and POST /.
// A rejected submission re-renders the form with the message inline; a
// generation failure renders the result page with the error.
func (h *CurriculumHandler) GenerateForm(w http.ResponseWriter, r *http.Request) {
	if err := shared.ParseForm(w, r); err != nil {
		shared.LogError(r, http.StatusBadRequest, "Invalid form submission", err)
		shared.RespondWithHTML(w, r, http.StatusBadRequest, func(out io.Writer) error {
			return h.pages.Form(out, view.FormPage{Error: "Invalid form submission"})
		})
		return
	}

	form := domain.RawCurriculumForm{
		Subject:  r.PostForm.Get("subject"),
		Level:    r.PostForm.Get("level"),
		Duration: r.PostForm.Get("duration"),
		Goal:     r.PostForm.Get("goal"),
	}

	outcome := h.curricula.Generate(r.Context(), form)
	if outcome.Result.OK() {
		req := outcome.Request
		h.logger.DebugContext(r.Context(), "rendering curriculum",
			"trace_id", shared.GetTraceID(r.Context()),
			"subject", req.Subject)
		shared.RespondWithHTML(w, r, http.StatusOK, func(out io.Writer) error {
			return h.pages.Result(out, view.ResultPage{
				Subject:    req.Subject,
				Level:      req.Level.String(),
				Duration:   req.Duration,
				Goal:       req.Goal,
				Curriculum: view.SanitizeCurriculum(outcome.Result.Text()),
			})
		})
		return
	}

	err := outcome.Result.Err()
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	shared.LogError(r, status, message, err)

	if status == http.StatusBadRequest {
		shared.RespondWithHTML(w, r, status, func(out io.Writer) error {
			return h.pages.Form(out, view.FormPage{
				Subject:  form.Subject,
				Level:    form.Level,
				Duration: form.Duration,
				Goal:     form.Goal,
				Error:    message,
			})
		})
		return
	}

	page := view.ResultPage{
		Error:   message,
		TraceID: shared.GetTraceID(r.Context()),
	}
	if req := outcome.Request; req != nil {
		page.Subject = req.Subject
		page.Level = req.Level.String()
		page.Duration = req.Duration
		page.Goal = req.Goal
	}
	shared.RespondWithHTML(w, r, status, func(out io.Writer) error {
		return h.pages.Result(out, page)
	})
}

// GenerateJSON handles POST /api/curricula requests.
func (h *CurriculumHandler) GenerateJSON(w http.ResponseWriter, r *http.Request) {
	var req CurriculumRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	outcome := h.curricula.Generate(r.Context(), req.toForm())
	if !outcome.Result.OK() {
		err := outcome.Result.Err()
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, curriculumToResponse(outcome.Request, outcome.Result.Text()))
}

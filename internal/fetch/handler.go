package fetch

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/halee5027/RecruitNova/internal/queue"
	"github.com/halee5027/RecruitNova/internal/screening"
	"github.com/halee5027/RecruitNova/internal/shared/server/middleware"
	"github.com/halee5027/RecruitNova/internal/shared/server/respond"
)

// Handler exposes the fetch collaborator over HTTP. When a job description
// accompanies the URL, the fetched document is screened in the same call.
// With a queue configured, async requests are handed off to the worker
// instead of being downloaded inline.
type Handler struct {
	Fetcher *Fetcher
	Svc     *screening.Service
	Queue   queue.Client
}

// NewHandler constructs a Handler.
func NewHandler(fetcher *Fetcher, svc *screening.Service) *Handler {
	return &Handler{Fetcher: fetcher, Svc: svc}
}

// RegisterRoutes attaches fetch routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/fetch", h.fetch)
}

type fetchRequest struct {
	URL            string `json:"url"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	RequiredYears  *int   `json:"required_years"`
	Async          bool   `json:"async"`
}

type fetchResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message,omitempty"`
	Filename  string            `json:"filename,omitempty"`
	Size      int               `json:"size,omitempty"`
	Valid     bool              `json:"valid"`
	Detail    string            `json:"detail,omitempty"`
	Screening *screening.Result `json:"screening,omitempty"`
}

func (h *Handler) fetch(c *gin.Context) {
	var req fetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.URL == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "url is required", nil)
		return
	}

	if req.Async && h.Queue != nil {
		h.enqueue(c, req)
		return
	}

	result := h.Fetcher.FromURL(c.Request.Context(), req.URL)
	if result.Status != "success" {
		respond.JSON(c, http.StatusOK, fetchResponse{
			Status:  result.Status,
			Message: result.Message,
		})
		return
	}

	valid, detail := ValidateContent(result.Content)
	resp := fetchResponse{
		Status:   result.Status,
		Filename: result.Filename,
		Size:     result.Size,
		Valid:    valid,
		Detail:   detail,
	}

	if valid && req.JobDescription != "" && h.Svc != nil {
		years := screening.DefaultRequiredYears
		if req.RequiredYears != nil && *req.RequiredYears >= 0 {
			years = *req.RequiredYears
		}
		screened, err := h.Svc.Screen(c.Request.Context(), result.Content, result.Filename, req.JobTitle, req.JobDescription, years)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to screen fetched resume", nil)
			return
		}
		resp.Screening = &screened
	}

	respond.OK(c, resp)
}

// enqueue hands the job to the worker and returns the screening ID the
// report will land under.
func (h *Handler) enqueue(c *gin.Context, req fetchRequest) {
	if req.JobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required for async screening", nil)
		return
	}

	years := screening.DefaultRequiredYears
	if req.RequiredYears != nil && *req.RequiredYears >= 0 {
		years = *req.RequiredYears
	}

	msg := queue.Message{
		ScreeningID:    uuid.NewString(),
		SourceURL:      req.URL,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		RequiredYears:  years,
		RequestID:      middleware.RequestIDFromContext(c),
		EnqueuedAt:     time.Now().UTC().Format(time.RFC3339),
		Version:        1,
	}
	if err := h.Queue.Send(c.Request.Context(), msg); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to enqueue screening job", nil)
		return
	}

	respond.JSON(c, http.StatusAccepted, gin.H{
		"status":       "queued",
		"screening_id": msg.ScreeningID,
	})
}

package insights

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halee5027/RecruitNova/internal/shared/server/respond"
)

// Handler wires the advisory endpoints to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the advisory routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", h.optimize)
	rg.POST("/predictions/performance", h.performance)
	rg.POST("/predictions/growth", h.growth)
}

type optimizeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
	Seed           *int64 `json:"seed"`
}

func (h *Handler) optimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ResumeText == "" || req.JobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume_text and job_description are required", nil)
		return
	}

	if req.Seed != nil {
		respond.OK(c, h.Svc.OptimizeSeeded(req.ResumeText, req.JobDescription, *req.Seed))
		return
	}
	respond.OK(c, h.Svc.Optimize(req.ResumeText, req.JobDescription))
}

type predictionRequest struct {
	ResumeText string `json:"resume_text"`
}

func (h *Handler) performance(c *gin.Context) {
	var req predictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ResumeText == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume_text is required", nil)
		return
	}

	respond.OK(c, h.Svc.PredictPerformance(req.ResumeText))
}

func (h *Handler) growth(c *gin.Context) {
	var req predictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ResumeText == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume_text is required", nil)
		return
	}

	respond.OK(c, h.Svc.PredictGrowth(req.ResumeText))
}

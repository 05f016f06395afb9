package screening

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/halee5027/RecruitNova/internal/shared/server/respond"
)

const (
	maxUploadSize = 10 << 20 // 10MB per resume
	maxBatchFiles = 25
)

// Handler wires HTTP handlers to the screening service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches screening routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/screenings", h.screen)
	rg.POST("/screenings/batch", h.screenBatch)
	rg.GET("/screenings", h.list)
	rg.GET("/screenings/:id", h.get)
}

func (h *Handler) screen(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	jobDescription := c.PostForm("job_description")
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	result, err := h.Svc.Screen(
		c.Request.Context(),
		data,
		fileHeader.Filename,
		c.PostForm("job_title"),
		jobDescription,
		requiredYears(c),
	)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to screen resume", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, result)
}

func (h *Handler) screenBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart form is required", nil)
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "at least one file is required", nil)
		return
	}
	if len(files) > maxBatchFiles {
		respond.Error(c, http.StatusBadRequest, "validation_error", "too many files in one batch", nil)
		return
	}
	jobDescription := c.PostForm("job_description")
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}

	items := make([]BatchItem, 0, len(files))
	for _, fh := range files {
		data, err := readUpload(fh)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file "+fh.Filename, nil)
			return
		}
		items = append(items, BatchItem{Data: data, Filename: fh.Filename})
	}

	results, err := h.Svc.ScreenBatch(
		c.Request.Context(),
		items,
		c.PostForm("job_title"),
		jobDescription,
		requiredYears(c),
	)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to screen batch", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"count":   len(results),
		"results": results,
	})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "screening id is required", nil)
		return
	}

	result, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "screening not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch screening", nil)
		}
		return
	}

	respond.OK(c, result)
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	results, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list screenings", nil)
		return
	}

	respond.OK(c, gin.H{
		"count":   len(results),
		"results": results,
	})
}

// requiredYears parses the required_years form field, defaulting when
// absent or malformed.
func requiredYears(c *gin.Context) int {
	v := c.PostForm("required_years")
	if v == "" {
		return DefaultRequiredYears
	}
	years, err := strconv.Atoi(v)
	if err != nil || years < 0 {
		return DefaultRequiredYears
	}
	return years
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadSize))
}

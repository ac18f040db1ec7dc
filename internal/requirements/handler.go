package requirements

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yoshida28/sekkot/internal/shared/metrics"
	"github.com/Yoshida28/sekkot/internal/shared/server/middleware"
	"github.com/Yoshida28/sekkot/internal/shared/server/respond"
	"github.com/Yoshida28/sekkot/internal/shared/util"
)

// Handler wires HTTP handlers to the upload orchestrator and workflow.
type Handler struct {
	Uploader *Uploader
	Repo     Repo
}

// NewHandler constructs a Handler.
func NewHandler(uploader *Uploader, repo Repo) *Handler {
	return &Handler{Uploader: uploader, Repo: repo}
}

// RegisterRoutes attaches requirement routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/requirements/upload", h.upload)
	rg.POST("/requirements", h.submit)
	rg.GET("/requirements", h.list)
}

// upload accepts a multipart file, validates it and stores it. Anyone may
// upload; authentication is only demanded at submit time.
func (h *Handler) upload(c *gin.Context) {
	// Leave headroom for multipart framing around the 10 MiB file cap.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxFileBytes+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		metrics.IncUploadRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		metrics.IncUploadRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	if err := ValidateFile(fileName, fileHeader.Size); err != nil {
		metrics.IncUploadRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{
			"allowedExtensions": AllowedExtensions(),
			"maxFileBytes":      MaxFileBytes,
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	started := metrics.NowMillis()
	result, err := h.Uploader.Upload(c.Request.Context(), requestOwner(c), fileName, file, fileHeader.Size)
	metrics.ObserveUploadDurationMs(metrics.NowMillis() - started)
	if err != nil {
		switch {
		case errors.Is(err, ErrUploadInFlight):
			respond.Error(c, http.StatusConflict, "upload_in_flight", err.Error(), nil)
		default:
			respond.Error(c, http.StatusBadGateway, "storage_error", uploadErrorMessage(err), nil)
		}
		return
	}

	c.Set("uploadKey", result.Key)
	respond.JSON(c, http.StatusCreated, UploadResponse{
		FileURL:  result.URL,
		FileName: result.FileName,
	})
}

// submit runs one submission attempt. Identity is resolved here, at the
// moment of use, not when the form was first opened.
func (h *Handler) submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	form := Form{
		Phase:          PhaseEditing,
		Description:    req.Description,
		UploadInFlight: h.Uploader.InFlight(requestOwner(c)),
	}
	if strings.TrimSpace(req.FileURL) != "" {
		form.Upload = &UploadResult{
			URL:      req.FileURL,
			FileName: req.FileName,
		}
	}

	wf := NewWorkflow(ginIdentity{c: c}, h.Repo)
	next, rec, err := wf.Submit(c.Request.Context(), form)
	if err != nil {
		metrics.IncSubmissionRejected()
		switch {
		case errors.Is(err, ErrDescriptionRequired), errors.Is(err, ErrFileRequired):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrUploadInFlight):
			respond.Error(c, http.StatusConflict, "upload_in_flight", err.Error(), nil)
		case errors.Is(err, ErrAuthRequired):
			respond.Error(c, http.StatusUnauthorized, "auth_required", err.Error(), gin.H{
				"phase":  next.Phase.String(),
				"signIn": "/api/v1/auth/google/start",
			})
		default:
			respond.Error(c, http.StatusBadGateway, "persistence_error", err.Error(), gin.H{
				"phase": next.Phase.String(),
			})
		}
		return
	}

	metrics.IncSubmissionAccepted()
	c.Set("requirementId", rec.ID)
	respond.JSON(c, http.StatusCreated, gin.H{
		"phase":       next.Phase.String(),
		"requirement": toResponse(rec),
	})
}

// list returns the caller's own submissions.
func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "auth_required", "sign in required", nil)
		return
	}

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

	recs, err := h.Repo.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list requirements", nil)
		return
	}

	resp := make([]RequirementResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toResponse(rec))
	}
	respond.JSON(c, http.StatusOK, resp)
}

// ginIdentity resolves the current identity from the request context.
type ginIdentity struct {
	c *gin.Context
}

func (g ginIdentity) CurrentUser(ctx context.Context) (Identity, bool, error) {
	_ = ctx
	id := middleware.UserIDFromContext(g.c)
	if id == "" {
		return Identity{}, false, nil
	}
	return Identity{
		ID:    id,
		Email: middleware.UserEmailFromContext(g.c),
	}, true, nil
}

// requestOwner keys single-flight tracking: the signed-in user when there
// is one, otherwise the client address.
func requestOwner(c *gin.Context) string {
	if id := middleware.UserIDFromContext(c); id != "" {
		return id
	}
	return c.ClientIP()
}

func uploadErrorMessage(err error) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return "upload failed"
	}
	return err.Error()
}

package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lendwise/admin-console/internal/api/middleware"
	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// maxUploadBytes bounds what the gateway will buffer for one file.
const maxUploadBytes = 25 << 20

// UploadHandler runs the two-step object-storage flow: ask the upstream for
// a presigned PUT URL, then push the raw bytes straight to storage.
type UploadHandler struct {
	uploads ports.UploadAPI
	audit   ports.AuditSink
}

func NewUploadHandler(uploads ports.UploadAPI, audit ports.AuditSink) *UploadHandler {
	return &UploadHandler{uploads: uploads, audit: audit}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /uploads with a multipart "file" field.
//
// @Summary      Upload a file to object storage
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      201   {object}  uploadResponse
// @Failure      400   {object}  map[string]string
// @Router       /uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)
	presigned, err := h.uploads.PresignedURL(ctx, sess, fh.Filename, contentType)
	if err != nil {
		return err
	}
	if err := h.uploads.PutObject(ctx, presigned.UploadURL, data, contentType); err != nil {
		return err
	}

	h.audit.Emit(domain.AuditEntry{
		ID:        uuid.NewString(),
		SessionID: sess.ID,
		Actor:     sess.Email,
		Action:    domain.AuditUpload,
		Target:    fh.Filename,
		CreatedAt: time.Now().UTC(),
	})
	return c.JSON(http.StatusCreated, uploadResponse{URL: presigned.PublicURL})
}

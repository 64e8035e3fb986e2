package handlers

import (
	"io"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"lciportal_backend/internal/storage"
	"lciportal_backend/pkg/apperrors"
)

// FileHandler streams stored uploads back to the browser.
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     store,
	}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/uploads/:filename", h.Download)
}

// Download serves one stored file by its generated name. Only a bare
// filename is accepted: anything resembling a path is rejected before it
// reaches the storage layer.
func (h *FileHandler) Download(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" || filename != path.Base(filename) || strings.Contains(filename, "..") {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid file name"))
		return
	}

	ctx := c.Request.Context()

	exists, err := h.storage.Exists(ctx, filename)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	if !exists {
		h.HandleServiceError(c, apperrors.NewNotFoundError("File not found"))
		return
	}

	reader, err := h.storage.Get(ctx, filename)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out; nothing sensible left to send.
		_ = c.Error(err)
	}
}

package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler writes AppErrors as JSON responses. With Debug off the
// wrapped cause of 5xx errors is stripped before serialization so internal
// detail never leaks in production mode.
type GinErrorHandler struct {
	Debug bool
}

var defaultHandler = &GinErrorHandler{Debug: true}

// SetDebug configures the package-level handler once at startup.
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		slog.Error("server error", "code", err.Code, "error", err.Error())
		if !h.Debug {
			err = New(CodeInternalError, "Internal server error", err.HTTPCode)
		}
	}

	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}

// HandleError responds with the given AppError on a Gin context.
func HandleError(c *gin.Context, err *AppError) {
	defaultHandler.HandleGinError(c, err)
}

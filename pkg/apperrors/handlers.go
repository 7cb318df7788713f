package apperrors

import (
	"log"

	"flohmarkt_backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope. LocalizedMessage carries the
// user-facing Arabic (or requested-language) text; Error keeps the machine
// readable code and developer message.
type ErrorResponse struct {
	Error            *AppError `json:"error"`
	LocalizedMessage string    `json:"localized_message"`
}

// GinErrorHandler renders AppErrors as JSON responses.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if !h.Debug {
			appErr.Message = "Internal server error"
			appErr.Details = nil
		}
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("Server error: %v", appErr.Unwrap())
	}

	lang := i18n.PickLanguage(c.GetHeader("Accept-Language"))
	c.JSON(appErr.HTTPCode, ErrorResponse{
		Error:            appErr,
		LocalizedMessage: i18n.ForError(lang, appErr.Domain, string(appErr.Code)),
	})
}

// HandleError is the shortcut used by handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

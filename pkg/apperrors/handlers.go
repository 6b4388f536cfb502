package apperrors

import (
	"sitecraft_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - единый конверт ошибки для клиента:
// {"success": false, "error": "<message>"}
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError переводит ошибку в HTTP-ответ с единым конвертом.
// Не-AppError считается внутренней: причина уходит в лог, клиенту - общий текст.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr, "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Error:   appErr.Message,
		Details: appErr.Details,
	})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

package middleware

import (
	"net/http"

	"sales/errors"
	"sales/response"
	"sales/services/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler chuyển lỗi mà handler đẩy vào c.Errors thành response
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusForError(err)
		requestID := GetRequestID(c)

		if status >= http.StatusInternalServerError {
			log.Error("[%s] %s %s: %v", requestID, c.Request.Method, c.Request.URL.Path, err)
			response.ServerError(c)
			return
		}

		log.Debug("[%s] %s %s: %v", requestID, c.Request.Method, c.Request.URL.Path, err)
		message := errors.GetAppError(err).Message
		switch status {
		case http.StatusNotFound:
			response.NotFound(c, message)
		case http.StatusConflict:
			response.Conflict(c, message)
		default:
			response.BadRequest(c, message)
		}
	}
}

// StatusForError ánh xạ mã lỗi của AppError sang HTTP status
func StatusForError(err error) int {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return http.StatusInternalServerError
	}

	switch appErr.Code {
	case errors.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case errors.ErrCodeDBDuplicate:
		return http.StatusConflict
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidCategory:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

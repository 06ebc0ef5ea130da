package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookmanager/internal/shared/apperror"
)

const internalErrorMessage = "internal server error"

// ErrorBody is the payload of every failed request
type ErrorBody struct {
	Error string `json:"error"`
}

// Success writes data as the whole response body
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error maps err through the apperror taxonomy.
// 5xx causes are logged and replaced by a generic message.
func Error(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)

	event := log.Warn()
	message := err.Error()
	if status >= http.StatusInternalServerError {
		event = log.Error()
		message = internalErrorMessage
	}
	event.
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Err(err).
		Msg("request failed")

	ErrorResponse(c, status, message)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: message})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, internalErrorMessage)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/docspot/booking-api/pkg/errors"
)

// Response is the uniform envelope for every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

func NewSuccessMessage(message string) *Response {
	return &Response{
		Success: true,
		Message: message,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Success: false,
		Message: message,
	}
}

// Error converts a service error into the envelope. Internal failures are
// logged with their cause; the client only sees a generic message.
func Error(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	if appErr.Code == apperrors.CodeInternal {
		log.Error().
			Err(appErr.Err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("request failed")
	}
	c.JSON(appErr.StatusCode(), NewErrorResponse(appErr.Message))
}

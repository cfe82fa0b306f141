package common

import (
	"github.com/gin-gonic/gin"
	"simplisafe.com/falcon/core"
)

// ErrorResponse is the uniform error body: a kind tag plus the message.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewErrorResponse(kind core.ErrorKind, message string) *ErrorResponse {
	return &ErrorResponse{
		Type:    string(kind),
		Message: message,
	}
}

// AbortWithError translates any error into the uniform response. Unknown
// errors become ServerError. The error is also attached to the context so
// the request logger can emit it.
func AbortWithError(c *gin.Context, err error) {
	e := core.AsError(err)
	_ = c.Error(e)
	c.AbortWithStatusJSON(e.Status, NewErrorResponse(e.Kind, e.Message))
}

// AbortWithBindingError translates a binding/validation failure into a
// ValidationError response. Validation runs before any model is touched.
func AbortWithBindingError(c *gin.Context, err error) {
	AbortWithError(c, core.ValidationError(FormatBindingError(err)))
}

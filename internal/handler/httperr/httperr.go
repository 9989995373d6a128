package httperr

import (
	"github.com/gin-gonic/gin"

	"dropdeck/internal/pkg/errs"
)

// Response is the public error body. Status rides along for the error
// middleware and is never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// New builds a Response with the given status and public message.
func New(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the public error body and records the cause on the
// context for the logging middleware. When err is nil the public message
// stands in as the recorded cause.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := New(status, msg)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

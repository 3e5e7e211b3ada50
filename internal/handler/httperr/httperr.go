package httperr

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is where the request logger leaves the request id on the gin context.
const RequestIDKey = "request_id"

type Body struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type Response struct {
	Status    int    `json:"-"`
	Error     Body   `json:"error"`
	RequestID string `json:"requestId,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

func New(c *gin.Context, status int, code, msg string, detail any) Response {
	return Response{
		Status:    status,
		Error:     Body{Code: code, Message: msg},
		RequestID: c.GetString(RequestIDKey),
		Detail:    detail,
	}
}

// AbortWithError keeps err on the gin context for the request log; only msg reaches the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, "", err, msg, detail)
}

// AbortWithCode is AbortWithError with a stable machine-readable code for clients.
func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	resp := New(c, status, code, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

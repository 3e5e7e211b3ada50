package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"stelwing-booking/internal/handler/httperr"
	"stelwing-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 12

// ErrorHandler renders the last public error when a handler recorded one
// without writing a body, and a generic 500 for anything else left unwritten.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError,
			httperr.New(c, http.StatusInternalServerError, "internal", "Internal server error", nil))
	}
}

// Recovery turns a panic into a 500 and logs where it came from.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			logger.Error("recovered from panic",
				"request_id", c.GetString(httperr.RequestIDKey),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
				"stack", errs.ExtractStackLines(errs.Wrap(err, "panic"), panicStackLines),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httperr.New(c, http.StatusInternalServerError, "internal", "Internal server error", nil))
		}()
		c.Next()
	}
}

package middleware

import (
	"net"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"linkdeck/internal/shared/constants"
	"linkdeck/internal/shared/logger"
	"linkdeck/internal/shared/utils"
)

// Recovery turns panics into 500 responses. Broken client connections are
// logged without writing a response since the peer is already gone.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if isBrokenConnection(recovered) {
			logger.Error("connection broken during request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		logger.Error("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"headers", redactedHeaders(c),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, 500, constants.ErrMsgInternalServerError)
	})
}

// redactedHeaders dumps the request headers with the Authorization value
// masked.
func redactedHeaders(c *gin.Context) []string {
	raw, _ := httputil.DumpRequest(c.Request, false)
	headers := strings.Split(string(raw), "\r\n")
	for i, header := range headers {
		name, _, found := strings.Cut(header, ":")
		if found && name == "Authorization" {
			headers[i] = name + ": *"
		}
	}
	return headers
}

func isBrokenConnection(err interface{}) bool {
	opErr, ok := err.(*net.OpError)
	if !ok {
		return false
	}
	sysErr, ok := opErr.Err.(*os.SyscallError)
	if !ok {
		return false
	}

	msg := strings.ToLower(sysErr.Error())
	for _, s := range []string{"connection reset by peer", "broken pipe", "connection refused"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// ErrorHandler converts errors attached to the gin context into API
// responses, collapsing unknown errors to a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		logger.Error("handler error occurred",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err)

		if !c.Writer.Written() {
			utils.ErrorResponseWithError(c, err)
		}
	}
}

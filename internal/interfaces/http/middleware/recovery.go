package middleware

import (
	"errors"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/photobooth/internal/infrastructure/metrics"
	"github.com/orris-inc/photobooth/internal/shared/logger"
	"github.com/orris-inc/photobooth/internal/shared/utils"
)

// Recovery turns handler panics into a 500 envelope. A client that went
// away mid-upload is logged without a stack and gets no response.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		if isBrokenConnection(recovered) {
			log.Warnw("client connection lost during request",
				"route", route,
				"method", c.Request.Method,
				"request_id", c.GetString(RequestIDKey),
				"error", recovered)
			c.Abort()
			return
		}

		metrics.PanicRecovered(route)

		log.Errorw("panic recovered",
			"route", route,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(RequestIDKey),
			"content_type", c.ContentType(),
			"content_length", c.Request.ContentLength,
			"has_authorization", c.GetHeader("Authorization") != "",
			"error", recovered,
			"stack", string(debug.Stack()))

		if c.Writer.Written() {
			c.Abort()
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
		c.Abort()
	})
}

var brokenConnectionMessages = []string{
	"connection reset by peer",
	"broken pipe",
}

func isBrokenConnection(recovered interface{}) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	if errors.Is(err, http.ErrAbortHandler) {
		return true
	}

	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if !errors.As(opErr, &sysErr) {
		return false
	}

	msg := strings.ToLower(sysErr.Error())
	for _, s := range brokenConnectionMessages {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

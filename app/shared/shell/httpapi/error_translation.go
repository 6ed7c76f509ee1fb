package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
)

// ErrPanicRecovered wraps the value of a panic raised while serving a request.
var ErrPanicRecovered = errors.New("panic recovered")

const (
	logMsgUnhandledFault = "unhandled fault while serving request"

	logAttrMethod = "method"
	logAttrPath   = "path"
	logAttrError  = "error"
)

// ErrorTranslation turns the faults attached to the gin context into responses.
//
// A *shell.ValidationFailedError becomes 400 with all field failures.
// Any other fault is logged with its detail and becomes 500 with a generic message.
// Requests without faults are left untouched.
func ErrorTranslation(logger shell.ContextualLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var validationErr *shell.ValidationFailedError
		if errors.As(err, &validationErr) {
			writeJSON(c, http.StatusBadRequest, ValidationFailedResponse{
				Message: MsgValidationFailed,
				Errors:  validationErr.Failures,
			})

			return
		}

		if logger != nil {
			logger.ErrorContext(c.Request.Context(), logMsgUnhandledFault,
				logAttrMethod, c.Request.Method,
				logAttrPath, c.Request.URL.Path,
				logAttrError, c.Errors.String(),
			)
		}

		if c.Writer.Written() {
			return
		}

		writeJSON(c, http.StatusInternalServerError, MessageResponse{Message: MsgSomethingWentWrong})
	}
}

// Recovery converts a panic into a fault on the context, so that ErrorTranslation,
// registered before it, answers with 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		c.Abort()
		_ = c.Error(fmt.Errorf("%w: %v", ErrPanicRecovered, recovered))
	})
}

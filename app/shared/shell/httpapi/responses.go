package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell"
)

// Response bodies of the ErrorTranslation middleware.
const (
	MsgValidationFailed   = "Validation failed"
	MsgSomethingWentWrong = "Something went wrong"
)

// MessageResponse is the body of a 500 response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationFailedResponse is the body of a 400 response caused by rejected input.
type ValidationFailedResponse struct {
	Message string               `json:"message"`
	Errors  []shell.FieldFailure `json:"errors"`
}

// respondCommand translates the outcome of a command. Commands carry no value,
// so success is answered with an empty 200.
func respondCommand(c *gin.Context, result shell.Result[shell.Unit], err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !result.IsSuccess {
		writeFailure(c, result.Error)
		return
	}

	writeEmpty(c)
}

// respondQuery translates the outcome of a query. isAbsent reports whether a successful
// result carries no value, which is answered with 404.
func respondQuery[T any](c *gin.Context, result shell.Result[T], err error, isAbsent func(T) bool) {
	if err != nil {
		_ = c.Error(err)
		return
	}

	if !result.IsSuccess {
		writeFailure(c, result.Error)
		return
	}

	if isAbsent(result.Value) {
		c.Status(http.StatusNotFound)
		return
	}

	writeJSON(c, http.StatusOK, result.Value)
}

// writeFailure answers an unsuccessful Result with its error message as plain text.
func writeFailure(c *gin.Context, message string) {
	c.String(http.StatusBadRequest, "%s", message)
}

func isNilPointer[T any](value *T) bool {
	return value == nil
}

func isNilSlice[T any](value []T) bool {
	return value == nil
}

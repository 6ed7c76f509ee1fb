package httpapi

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
)

const contentTypeJSON = "application/json; charset=utf-8"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON encodes body and writes it with the given status.
// An encoding failure is attached to the context and left to the ErrorTranslation middleware.
func writeJSON(c *gin.Context, status int, body any) {
	encoded, err := json.Marshal(body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Data(status, contentTypeJSON, encoded)
}

func writeEmpty(c *gin.Context) {
	c.Status(http.StatusOK)
}

func readJSON(body io.Reader, target any) error {
	return json.NewDecoder(body).Decode(target)
}

package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Options returns a handler for OPTIONS requests that announces
// the allowed methods in the allow header.
func Options(methods ...string) gin.HandlerFunc {
	allow := strings.Join(append([]string{http.MethodOptions}, methods...), ", ")

	return func(c *gin.Context) {
		c.Header("allow", allow)
		c.Status(http.StatusNoContent)
	}
}

var (
	OptionsGet            = Options(http.MethodGet)
	OptionsPost           = Options(http.MethodPost)
	OptionsGetPost        = Options(http.MethodGet, http.MethodPost)
	OptionsGetPatchDelete = Options(http.MethodGet, http.MethodPatch, http.MethodDelete)
)

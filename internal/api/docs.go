package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed docs/openapi.yaml
var openAPISpec []byte

//go:embed docs/index.html
var docsPage []byte

// registerDocs serves the interactive API documentation: a Swagger UI
// page backed by the static OpenAPI description of the three report
// endpoints.
func registerDocs(r *gin.Engine) {
	r.GET("/apidocs/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", docsPage)
	})
	r.GET("/apidocs/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", openAPISpec)
	})
}

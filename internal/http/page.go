// README: Embedded demo page (persona picker, request form, rendered plan).
package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"tabiplan/internal/persona"
)

//go:embed templates/index.tmpl
var pageFS embed.FS

var pageTemplate = template.Must(template.ParseFS(pageFS, "templates/index.tmpl"))

// handlePage serves GET /.
func (s *Server) handlePage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Personas": persona.All(),
		"Model":    s.modelTag,
	})
}

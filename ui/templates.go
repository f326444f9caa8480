package ui

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFiles, "templates/*.html")
}

// renderTemplate executes a template into a buffer first so a failing
// template never leaves a half-written page behind.
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.log.Error("template rendering failed", "template", templateName, "error", err)
		c.String(500, "Template rendering failed")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.log.Debug("failed to write template response", "template", templateName, "error", err)
	}
}

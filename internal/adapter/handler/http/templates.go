package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/cogniwork_web/internal/core/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func loadTemplates() (*template.Template, error) {
	return template.New("pages").ParseFS(templateFS, "templates/*.tmpl")
}

// pageData carries the fields every page layout reads.
func pageData(theme domain.Theme, title string, extra gin.H) gin.H {
	data := gin.H{
		"Theme": theme,
		"Title": title,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

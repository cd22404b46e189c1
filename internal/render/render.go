package render

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer turns handler data into HTML pages. Handlers never format
// output themselves; they hand plain structs to a named template.
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		logrus.WithError(err).WithField("template", name).Error("template render failed")
	}
}

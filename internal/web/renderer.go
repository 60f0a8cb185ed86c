package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
)

var functions = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
}

// TemplateRenderer renders parsed HTML templates into a buffer first so a
// template error never produces a half-written response.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer(dir string) (*TemplateRenderer, error) {
	ts, err := template.New("").Funcs(functions).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &TemplateRenderer{templates: ts}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	buf := new(bytes.Buffer)
	if err := r.templates.ExecuteTemplate(buf, name, data); err != nil {
		return err
	}

	_, err := buf.WriteTo(w)
	return err
}

// Package page renders the portfolio sections from embedded templates.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/css/*.css static/js/*.js static/images/*.svg
var staticFS embed.FS

// Static returns the assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
		"add":  func(a, b int) int { return a + b },
	}
}

// Templates parses the embedded template set.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := Templates()
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: t}, nil
}

// Render writes the full page.
func (r *Renderer) Render(w io.Writer, v View) error {
	if err := r.tmpl.ExecuteTemplate(w, "index.html", v); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}

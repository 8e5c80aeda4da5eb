// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"pct":  func(v float64) string { return fmt.Sprintf("%.2f%%", v) },
	"secs": func(v float64) string { return fmt.Sprintf("%.1fs", v) },
	"px":   func(v float64) string { return fmt.Sprintf("%.1fpx", v) },
	"pad2": func(n int) string { return fmt.Sprintf("%02d", n) },
}

// Templates parses every page template.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return t, nil
}

// Static returns the bundled assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Package views holds the server-rendered HTML pages.
package views

import (
	"embed"
	"html/template"
	"time"

	"airline/internal/utils"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"datetime": func(t time.Time) string { return utils.FormatDateTime(t) },
	"date":     func(t time.Time) string { return utils.FormatDate(t) },
	"soles":    utils.FormatSoles,
}

// Load parses every embedded page. Pages are addressed by file name, e.g. "index.html".
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// MustLoad is Load for program start-up, where a broken template is fatal.
func MustLoad() *template.Template {
	return template.Must(Load())
}

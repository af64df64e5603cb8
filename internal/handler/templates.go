package handler

import (
	"embed"
	"html/template"
	"strings"

	"github.com/ncobase/taskboard/internal/structs"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"priorityClass": func(p structs.Priority) string {
		return "priority-" + strings.ToLower(p.String())
	},
}

// parseTemplates loads every page and partial from the embedded templates.
func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

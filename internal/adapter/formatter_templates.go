package adapter

import (
	"embed"
	"html/template"
	"strings"
	"sync"
)

//go:embed templates/*.tmpl
var pageTemplateFS embed.FS

var (
	pageTemplates *template.Template
	pageOnce      sync.Once
	pageErr       error
)

// PageTemplates returns the parsed HTML page set. Parsing happens once per process.
func PageTemplates() (*template.Template, error) {
	pageOnce.Do(func() {
		funcMap := template.FuncMap{
			"join": strings.Join,
		}
		tmpl := template.New("pages").Funcs(funcMap)
		pageTemplates, pageErr = tmpl.ParseFS(pageTemplateFS, "templates/*.tmpl")
	})

	return pageTemplates, pageErr
}

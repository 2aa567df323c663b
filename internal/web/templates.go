package web

import (
	"embed"
	"html/template"

	"go-course-portal/internal/auth"
)

//go:embed templates/*.html
var templateFS embed.FS

type fieldData struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Error    string
	Disabled bool
}

var funcs = template.FuncMap{
	"field": func(name, label, kind string, v auth.FormView) fieldData {
		return fieldData{
			Name:     name,
			Label:    label,
			Type:     kind,
			Value:    v.Values[name],
			Error:    v.Errors[name],
			Disabled: v.IsSubmitting,
		}
	},
	"resetField": func(name, label string, v *auth.ResetView) fieldData {
		return fieldData{
			Name:     name,
			Label:    label,
			Type:     "text",
			Value:    v.Values[name],
			Error:    v.Errors[name],
			Disabled: v.IsSubmitting,
		}
	},
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

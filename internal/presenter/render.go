package presenter

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// RenderDetail writes the job detail page for a view.
func RenderDetail(w io.Writer, view JobView) error {
	return pageTemplates.ExecuteTemplate(w, "detail.html", view)
}

// RenderNotFound writes the not-found page shown for unknown or unapproved
// job ids.
func RenderNotFound(w io.Writer) error {
	return pageTemplates.ExecuteTemplate(w, "notfound.html", nil)
}

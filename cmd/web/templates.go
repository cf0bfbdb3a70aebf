// cmd/web/templates.go
// This file is the presentation collaborator: an embedded template cache and
// a buffered render helper. Pages are written to a buffer first so a template
// failure can still become a clean 500 instead of a half-written response.
package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"

	"bookinventory/internal/data"
	"bookinventory/internal/validator"
)

//go:embed templates
var templateFS embed.FS

// navLink is one entry in the shared navigation bar.
type navLink struct {
	Href string
	Text string
}

// templateData carries everything a page can display. Only the fields a given
// page uses are populated; Form echoes the raw submitted values back so the
// user never retypes valid fields.
type templateData struct {
	Links       []navLink
	Title       string
	ID          int64
	Book        *data.Book
	Books       []*data.Book
	Category    *data.Category
	Categories  []*data.Category
	Form        any
	FieldErrors []validator.FieldError
	TopError    string
	StatusCode  int
	Message     string
	Detail      string
}

// newTemplateCache parses every page template against the base layout once at
// startup and returns them keyed by file name.
func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(templateFS, "templates/pages/*.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).ParseFS(templateFS, "templates/base.tmpl", page)
		if err != nil {
			return nil, err
		}

		cache[name] = ts
	}

	return cache, nil
}

// render writes the named page with the given status code. On a template
// failure it falls back to a plain 500 so render errors can never recurse
// through the error page.
func (app *applicationDependencies) render(w http.ResponseWriter, r *http.Request, status int, page string, td templateData) {
	ts, ok := app.templates[page]
	if !ok {
		app.logError(r, http.StatusInternalServerError, fmt.Errorf("template %q does not exist", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	err := ts.ExecuteTemplate(buf, "base", td)
	if err != nil {
		app.logError(r, http.StatusInternalServerError, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Package assets embeds the landing page template and stylesheet and
// renders the former through the corpus's Handlebars engine.
package assets

import (
	"embed"
	"fmt"
	"sync"

	"github.com/aymerick/raymond"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed embedded
var embedded embed.FS

const (
	landingTemplatePath = "embedded/index.html.hbs"
	stylesheetPath      = "embedded/trafdat.css"
)

var registerHelpersOnce sync.Once

// registerHelpers installs the "titlecase" Handlebars helper used by the
// landing page to display district codes with a leading capital.
func registerHelpers() {
	registerHelpersOnce.Do(func() {
		titleCaser := cases.Title(language.English)
		raymond.RegisterHelper("titlecase", func(s string) string {
			return titleCaser.String(s)
		})
	})
}

// Renderer renders the embedded landing page with live data and serves
// the embedded stylesheet unchanged.
type Renderer struct {
	Version string

	template   *raymond.Template
	stylesheet []byte
}

// NewRenderer parses the embedded template once; subsequent Landing
// calls reuse the parsed template.
func NewRenderer(version string) (*Renderer, error) {
	registerHelpers()

	tmplSrc, err := embedded.ReadFile(landingTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("reading landing page template: %w", err)
	}
	tmpl, err := raymond.Parse(string(tmplSrc))
	if err != nil {
		return nil, fmt.Errorf("parsing landing page template: %w", err)
	}
	css, err := embedded.ReadFile(stylesheetPath)
	if err != nil {
		return nil, fmt.Errorf("reading stylesheet: %w", err)
	}
	return &Renderer{Version: version, template: tmpl, stylesheet: css}, nil
}

// Landing renders the landing page with the given district list.
func (r *Renderer) Landing(districts []string) ([]byte, error) {
	ctx := map[string]interface{}{
		"version":   r.Version,
		"districts": districts,
	}
	out, err := r.template.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("rendering landing page: %w", err)
	}
	return []byte(out), nil
}

// Stylesheet returns the embedded stylesheet bytes.
func (r *Renderer) Stylesheet() []byte {
	return r.stylesheet
}

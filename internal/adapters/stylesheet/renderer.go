// Package stylesheet renders the CSS and HTML preview of a compiled font.
package stylesheet

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"os"
	"strings"
	"text/template"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Source is one src entry of the @font-face rule.
type Source struct {
	URL    string
	Format string
}

// GlyphRule is the selector data of one glyph.
type GlyphRule struct {
	Name string
	// Codepoint is lower-case hex without prefix, e.g. "f101".
	Codepoint string
}

// Data is the value passed to stylesheet templates, including custom ones.
type Data struct {
	FontName     string
	BaseSelector string
	ClassPrefix  string
	Sources      []Source
	Glyphs       []GlyphRule
}

// PreviewData is the value passed to HTML preview templates.
type PreviewData struct {
	Data
	// BaseClass is BaseSelector without its leading dot.
	BaseClass  string
	Stylesheet htmltemplate.CSS
}

// Renderer renders stylesheets and previews from Go templates.
type Renderer struct {
	css  *template.Template
	html *htmltemplate.Template
}

// New creates a Renderer with the built-in templates.
func New() *Renderer {
	return &Renderer{
		css:  template.Must(template.ParseFS(templates, "templates/css.tmpl")),
		html: htmltemplate.Must(htmltemplate.ParseFS(templates, "templates/html.tmpl")),
	}
}

// NewData builds template data. urls maps each format to its published file
// name; formats without a url are left out of the src list. Each url carries
// a digest of the font content so browsers refetch changed fonts.
func NewData(
	req *domain.GenerationRequest,
	glyphs []domain.Glyph,
	fonts map[domain.Format][]byte,
	urls map[domain.Format]string,
) Data {
	data := Data{
		FontName:     req.FontName,
		BaseSelector: req.Template.BaseSelector,
		ClassPrefix:  req.Template.ClassPrefix,
	}

	for _, format := range req.Formats {
		name, ok := urls[format]
		if !ok {
			continue
		}
		url := joinURL(req.CSSFontsURL, name) + "?" + fmt.Sprintf("%016x", xxhash.Sum64(fonts[format]))
		switch format {
		case domain.FormatEOT:
			url += "#iefix"
		case domain.FormatSVG:
			url += "#" + req.FontName
		}
		data.Sources = append(data.Sources, Source{URL: url, Format: format.CSSHint()})
	}

	seen := make(map[string]bool, len(glyphs))
	for _, g := range glyphs {
		if seen[g.Name] {
			continue
		}
		seen[g.Name] = true
		data.Glyphs = append(data.Glyphs, GlyphRule{Name: g.Name, Codepoint: fmt.Sprintf("%x", g.Codepoint)})
	}
	return data
}

// CSS renders the stylesheet, using the request's custom template when set.
func (r *Renderer) CSS(req *domain.GenerationRequest, data Data) (string, error) {
	tmpl := r.css
	if req.CSSTemplate != nil {
		custom, err := loadTextTemplate(*req.CSSTemplate)
		if err != nil {
			return "", err
		}
		tmpl = custom
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrStylesheetFailed, err.Error()), "font", req.FontName)
	}
	return buf.String(), nil
}

// HTML renders the preview page around an already rendered stylesheet.
func (r *Renderer) HTML(req *domain.GenerationRequest, data Data, css string) (string, error) {
	tmpl := r.html
	if req.HTMLTemplate != nil {
		custom, err := loadHTMLTemplate(*req.HTMLTemplate)
		if err != nil {
			return "", err
		}
		tmpl = custom
	}

	preview := PreviewData{
		Data:       data,
		BaseClass:  strings.TrimPrefix(data.BaseSelector, "."),
		Stylesheet: htmltemplate.CSS(css), //nolint:gosec // stylesheet is generated by us
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, preview); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrStylesheetFailed, err.Error()), "font", req.FontName)
	}
	return buf.String(), nil
}

func loadTextTemplate(path string) (*template.Template, error) {
	src, err := os.ReadFile(path) //nolint:gosec // template path comes from the bundle
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStylesheetFailed, err.Error()), "path", path)
	}
	tmpl, err := template.New(path).Parse(string(src))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStylesheetFailed, err.Error()), "path", path)
	}
	return tmpl, nil
}

func loadHTMLTemplate(path string) (*htmltemplate.Template, error) {
	src, err := os.ReadFile(path) //nolint:gosec // template path comes from the bundle
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStylesheetFailed, err.Error()), "path", path)
	}
	tmpl, err := htmltemplate.New(path).Parse(string(src))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStylesheetFailed, err.Error()), "path", path)
	}
	return tmpl, nil
}

func joinURL(base, name string) string {
	if base == "" {
		return name
	}
	return strings.TrimSuffix(base, "/") + "/" + name
}

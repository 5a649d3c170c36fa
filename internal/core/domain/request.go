package domain

import (
	"path/filepath"
	"strings"
)

// DefaultFontHeight avoids precision loss when converting small vector glyphs.
const DefaultFontHeight = 1000

// FirstCodepoint is the first codepoint handed out to glyphs without an override.
const FirstCodepoint rune = 0xF101

// TemplateOptions control selector naming in the generated stylesheet.
type TemplateOptions struct {
	BaseSelector string `json:"baseSelector"`
	ClassPrefix  string `json:"classPrefix"`
}

// GenerationRequest is the normalized input to a font compiler.
// Optional fields are pointers so that an unset option is never forwarded.
type GenerationRequest struct {
	FontName      string                    `json:"fontName"`
	Files         []string                  `json:"files"`
	Formats       []Format                  `json:"formats"`
	FontHeight    float64                   `json:"fontHeight"`
	Codepoints    map[string]rune           `json:"codepoints"`
	Template      TemplateOptions           `json:"templateOptions"`
	Dest          string                    `json:"dest"`
	CSSDest       *string                   `json:"cssDest,omitempty"`
	HTML          bool                      `json:"html"`
	HTMLDest      *string                   `json:"htmlDest,omitempty"`
	HTMLTemplate  *string                   `json:"htmlTemplate,omitempty"`
	CSSTemplate   *string                   `json:"cssTemplate,omitempty"`
	WriteFiles    bool                      `json:"writeFiles"`
	CSSFontsURL   string                    `json:"cssFontsUrl"`
	FormatOptions map[string]map[string]any `json:"formatOptions"`
	Rename        RenameStrategy            `json:"-"`

	FixedWidth         *bool    `json:"fixedWidth,omitempty"`
	CenterHorizontally *bool    `json:"centerHorizontally,omitempty"`
	Normalize          *bool    `json:"normalize,omitempty"`
	Round              *float64 `json:"round,omitempty"`
	Descent            *float64 `json:"descent,omitempty"`
}

// GlyphName returns the glyph identifier for a source path.
func (r *GenerationRequest) GlyphName(path string) string {
	if r.Rename == nil {
		return BasenameRename{}.GlyphName(path)
	}
	return r.Rename.GlyphName(path)
}

// Glyphs pairs every input file with its name and assigned codepoint, in input order.
func (r *GenerationRequest) Glyphs() []Glyph {
	glyphs := make([]Glyph, len(r.Files))
	for i, file := range r.Files {
		glyphs[i] = Glyph{Name: r.GlyphName(file), Path: file}
	}
	AssignCodepoints(glyphs, r.Codepoints)
	return glyphs
}

// RenameStrategy maps a glyph source path to a glyph identifier.
type RenameStrategy interface {
	GlyphName(path string) string
}

// BasenameRename strips the directory and the ".svg" extension.
type BasenameRename struct{}

// GlyphName implements RenameStrategy.
func (BasenameRename) GlyphName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".svg")
}

// RenameFunc adapts a plain function to RenameStrategy.
type RenameFunc func(path string) string

// GlyphName implements RenameStrategy.
func (f RenameFunc) GlyphName(path string) string {
	return f(path)
}

// Glyph is a single named input of a font.
type Glyph struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Codepoint rune   `json:"codepoint"`
}

// AssignCodepoints fills in glyph codepoints. Overrides win; every other glyph
// receives the next free codepoint counting up from FirstCodepoint, in order.
// A glyph name seen twice keeps the codepoint of its first occurrence.
func AssignCodepoints(glyphs []Glyph, overrides map[string]rune) {
	used := make(map[rune]bool, len(overrides))
	for _, cp := range overrides {
		used[cp] = true
	}

	assigned := make(map[string]rune, len(glyphs))
	next := FirstCodepoint
	for i := range glyphs {
		name := glyphs[i].Name
		if cp, ok := overrides[name]; ok {
			glyphs[i].Codepoint = cp
			continue
		}
		if cp, ok := assigned[name]; ok {
			glyphs[i].Codepoint = cp
			continue
		}
		for used[next] {
			next++
		}
		glyphs[i].Codepoint = next
		assigned[name] = next
		used[next] = true
	}
}

// CodepointMap returns the name to codepoint mapping of the given glyphs.
func CodepointMap(glyphs []Glyph) map[string]rune {
	out := make(map[string]rune, len(glyphs))
	for _, g := range glyphs {
		out[g.Name] = g.Codepoint
	}
	return out
}

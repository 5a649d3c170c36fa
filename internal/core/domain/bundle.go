package domain

import (
	"encoding/json"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// BundleConfig is one layer of font bundle options. It is used both for the
// bundle's own document and for options supplied by the invoking build step.
// A nil field means the option was not given in this layer.
type BundleConfig struct {
	Files              []string                  `json:"files" yaml:"files"`
	FontName           *string                   `json:"fontName" yaml:"fontName"`
	Types              FormatList                `json:"types" yaml:"types"`
	Formats            FormatList                `json:"formats" yaml:"formats"`
	FontHeight         *float64                  `json:"fontHeight" yaml:"fontHeight"`
	Codepoints         map[string]rune           `json:"codepoints" yaml:"codepoints"`
	BaseSelector       *string                   `json:"baseSelector" yaml:"baseSelector"`
	ClassPrefix        *string                   `json:"classPrefix" yaml:"classPrefix"`
	ScssFile           *Toggle                   `json:"scssFile" yaml:"scssFile"`
	Dest               *string                   `json:"dest" yaml:"dest"`
	HTML               *bool                     `json:"html" yaml:"html"`
	HTMLDest           *string                   `json:"htmlDest" yaml:"htmlDest"`
	HTMLTemplate       *string                   `json:"htmlTemplate" yaml:"htmlTemplate"`
	CSSTemplate        *string                   `json:"cssTemplate" yaml:"cssTemplate"`
	WriteFiles         *bool                     `json:"writeFiles" yaml:"writeFiles"`
	CSSFontsPath       *string                   `json:"cssFontsPath" yaml:"cssFontsPath"`
	FormatOptions      map[string]map[string]any `json:"formatOptions" yaml:"formatOptions"`
	EmitCodepoints     EmitCodepoints            `json:"emitCodepoints" yaml:"emitCodepoints"`
	FixedWidth         *bool                     `json:"fixedWidth" yaml:"fixedWidth"`
	CenterHorizontally *bool                     `json:"centerHorizontally" yaml:"centerHorizontally"`
	Normalize          *bool                     `json:"normalize" yaml:"normalize"`
	Round              *float64                  `json:"round" yaml:"round"`
	Descent            *float64                  `json:"descent" yaml:"descent"`

	// Rename maps a glyph source path to its glyph name. Documents cannot
	// carry functions, so only programmatic callers set it.
	Rename RenameStrategy `json:"-" yaml:"-"`
}

// FormatIDs returns the requested format identifiers; "types" wins over "formats".
func (c *BundleConfig) FormatIDs() FormatList {
	if c.Types != nil {
		return c.Types
	}
	return c.Formats
}

// Merge overlays higher on top of lower and returns a new layer. Every option
// present in higher wins; options absent from higher are taken from lower.
// Either argument may be nil.
func Merge(lower, higher *BundleConfig) *BundleConfig {
	if lower == nil {
		lower = &BundleConfig{}
	}
	if higher == nil {
		higher = &BundleConfig{}
	}

	merged := &BundleConfig{
		Files:              pickSlice(higher.Files, lower.Files),
		FontName:           pick(higher.FontName, lower.FontName),
		FontHeight:         pick(higher.FontHeight, lower.FontHeight),
		BaseSelector:       pick(higher.BaseSelector, lower.BaseSelector),
		ClassPrefix:        pick(higher.ClassPrefix, lower.ClassPrefix),
		ScssFile:           pick(higher.ScssFile, lower.ScssFile),
		Dest:               pick(higher.Dest, lower.Dest),
		HTML:               pick(higher.HTML, lower.HTML),
		HTMLDest:           pick(higher.HTMLDest, lower.HTMLDest),
		HTMLTemplate:       pick(higher.HTMLTemplate, lower.HTMLTemplate),
		CSSTemplate:        pick(higher.CSSTemplate, lower.CSSTemplate),
		WriteFiles:         pick(higher.WriteFiles, lower.WriteFiles),
		CSSFontsPath:       pick(higher.CSSFontsPath, lower.CSSFontsPath),
		EmitCodepoints:     pickEnabled(higher.EmitCodepoints, lower.EmitCodepoints),
		FixedWidth:         pick(higher.FixedWidth, lower.FixedWidth),
		CenterHorizontally: pick(higher.CenterHorizontally, lower.CenterHorizontally),
		Normalize:          pick(higher.Normalize, lower.Normalize),
		Round:              pick(higher.Round, lower.Round),
		Descent:            pick(higher.Descent, lower.Descent),
		Rename:             lower.Rename,
	}

	if ids := higher.FormatIDs(); ids != nil {
		merged.Types = ids
	} else {
		merged.Types = lower.FormatIDs()
	}

	merged.Codepoints = lower.Codepoints
	if higher.Codepoints != nil {
		merged.Codepoints = higher.Codepoints
	}
	merged.FormatOptions = lower.FormatOptions
	if higher.FormatOptions != nil {
		merged.FormatOptions = higher.FormatOptions
	}
	if higher.Rename != nil {
		merged.Rename = higher.Rename
	}

	return merged
}

func pick[T any](higher, lower *T) *T {
	if higher != nil {
		return higher
	}
	return lower
}

func pickSlice[S ~[]E, E any](higher, lower S) S {
	if higher != nil {
		return higher
	}
	return lower
}

// Toggle is an option that is either a boolean switch or a path.
type Toggle struct {
	Enabled bool
	Path    string
}

// IsTrue reports whether the toggle was given as an explicit true.
func (t *Toggle) IsTrue() bool {
	return t != nil && t.Enabled && t.Path == ""
}

// UnmarshalJSON accepts a boolean or a string.
func (t *Toggle) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*t = Toggle{Enabled: b}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return zerr.Wrap(err, "expected a boolean or a path")
	}
	*t = Toggle{Enabled: s != "", Path: s}
	return nil
}

// UnmarshalYAML accepts a boolean or a string.
func (t *Toggle) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == "!!bool" {
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		*t = Toggle{Enabled: b}
		return nil
	}
	*t = Toggle{Enabled: value.Value != "", Path: value.Value}
	return nil
}

// pickEnabled keeps the higher layer only when it enables emission, so an
// explicit false in the higher layer falls through to the lower one.
func pickEnabled(higher, lower EmitCodepoints) EmitCodepoints {
	if len(higher) > 0 {
		return higher
	}
	return lower
}

package domain

import (
	"encoding/json"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format identifies an output font encoding.
type Format string

const (
	// FormatEOT is the Embedded OpenType format.
	FormatEOT Format = "eot"
	// FormatWOFF is the Web Open Font Format.
	FormatWOFF Format = "woff"
	// FormatWOFF2 is the Web Open Font Format 2.0.
	FormatWOFF2 Format = "woff2"
	// FormatTTF is the TrueType format.
	FormatTTF Format = "ttf"
	// FormatSVG is the SVG font format.
	FormatSVG Format = "svg"
)

// DefaultFormats returns the formats produced when a bundle does not choose any,
// in emission order.
func DefaultFormats() []Format {
	return []Format{FormatEOT, FormatWOFF, FormatWOFF2, FormatTTF, FormatSVG}
}

// ParseFormat converts a format identifier into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatEOT, FormatWOFF, FormatWOFF2, FormatTTF, FormatSVG:
		return f, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownFormat, "invalid format"), "format", s)
	}
}

// Extension returns the file extension used for published artifacts, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// CSSHint returns the value used in the stylesheet's format() descriptor.
func (f Format) CSSHint() string {
	switch f {
	case FormatEOT:
		return "embedded-opentype"
	case FormatTTF:
		return "truetype"
	default:
		return string(f)
	}
}

// FileName returns the published file name for a font in this format.
func (f Format) FileName(fontName string) string {
	return fontName + "." + f.Extension()
}

// FormatList is a list of format identifiers as written in a bundle document.
// A scalar value decodes to a single-element list.
type FormatList []string

// UnmarshalJSON accepts either a string or a list of strings.
func (l *FormatList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = FormatList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return zerr.Wrap(err, "formats must be a string or a list of strings")
	}
	*l = many
	return nil
}

// UnmarshalYAML accepts either a scalar or a sequence.
func (l *FormatList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*l = FormatList{value.Value}
		return nil
	}
	var many []string
	if err := value.Decode(&many); err != nil {
		return zerr.Wrap(err, "formats must be a string or a list of strings")
	}
	*l = many
	return nil
}

// Formats parses every entry of the list.
func (l FormatList) Formats() ([]Format, error) {
	out := make([]Format, 0, len(l))
	for _, s := range l {
		f, err := ParseFormat(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

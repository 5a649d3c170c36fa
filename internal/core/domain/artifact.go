package domain

import "time"

// Timestamps are the access, modify and change times carried by a published entry.
type Timestamps struct {
	Atime time.Time `json:"atime,omitzero"`
	Mtime time.Time `json:"mtime,omitzero"`
	Ctime time.Time `json:"ctime,omitzero"`
}

// StylesheetFunc renders stylesheet text given the published file name of each format.
type StylesheetFunc func(urls map[Format]string) (string, error)

// CompilationResult is what a font compiler hands back for one request.
type CompilationResult struct {
	// Fonts holds the binary font for every requested format.
	Fonts map[Format][]byte
	// Glyphs lists the compiled glyphs with their final codepoints, in input order.
	Glyphs []Glyph
	// Stylesheet renders the stylesheet referencing the published font names.
	Stylesheet StylesheetFunc
}

// PublishedArtifact is a font binary written into the virtual filesystem.
type PublishedArtifact struct {
	Path    string
	Format  Format
	Content []byte
	Times   Timestamps
}

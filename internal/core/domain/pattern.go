package domain

import "strings"

// globMeta lists the characters that turn a pattern into a glob expression.
const globMeta = "*?[{"

// IsGlob reports whether the pattern contains glob metacharacters.
func IsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, globMeta)
}

// Dependencies are the paths a resolved bundle must be rebuilt for.
type Dependencies struct {
	// Files holds literal patterns exactly as they were written.
	Files []string `json:"files,omitempty"`
	// Directories holds absolute, trailing-separated directories covering glob expansions.
	Directories []string `json:"directories,omitempty"`
}

// ResolvedFileSet is the outcome of expanding a bundle's file patterns.
type ResolvedFileSet struct {
	// Files are absolute paths in pattern order. Overlapping patterns yield duplicates.
	Files        []string
	Dependencies Dependencies
}

package domain

import (
	"path/filepath"
	"time"
)

// BuildInfo represents the outcome of the last successful build of a bundle.
type BuildInfo struct {
	Bundle       string       `json:"bundle,omitzero"`
	InputHash    string       `json:"input_hash,omitzero"`
	Dependencies Dependencies `json:"dependencies,omitzero"`
	Outputs      []string     `json:"outputs,omitempty"`
	OutDir       string       `json:"out_dir,omitzero"`
	Compiler     string       `json:"compiler,omitzero"`
	Timestamp    time.Time    `json:"timestamp,omitzero"`
}

// DefaultStorePath returns the directory of the build info store, relative to the working directory.
func DefaultStorePath() string {
	return filepath.Join(".fontpack", "builds")
}

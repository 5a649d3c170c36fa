package ports

import "go.trai.ch/fontpack/internal/core/domain"

// ConfigParser turns a bundle document into a plain options layer.
//
//go:generate mockgen -source=config_parser.go -destination=mocks/mock_config_parser.go -package=mocks
type ConfigParser interface {
	// Load reads and parses the document at path.
	Load(path string) (*domain.BundleConfig, error)

	// Parse decodes a document. The name selects the document language by extension.
	Parse(name string, data []byte) (*domain.BundleConfig, error)
}

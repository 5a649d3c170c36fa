// Package config parses bundle documents into options layers.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigParser = (*Parser)(nil)

// Parser implements ports.ConfigParser for JSON (with comments), YAML and TOML documents.
type Parser struct {
	logger ports.Logger
}

// NewParser creates a new Parser. Unknown document keys are reported to log.
func NewParser(log ports.Logger) *Parser {
	return &Parser{logger: log}
}

// Load reads the document at path and parses it.
func (p *Parser) Load(path string) (*domain.BundleConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}
	return p.Parse(path, data)
}

// Parse decodes data using the language implied by name.
func (p *Parser) Parse(name string, data []byte) (*domain.BundleConfig, error) {
	switch DetectLanguage(name) {
	case LanguageJSON:
		return p.parseJSON(name, data)
	case LanguageYAML:
		return p.parseYAML(name, data)
	case LanguageTOML:
		return p.parseTOML(name, data)
	}

	if cfg, err := p.parseJSON(name, data); err == nil {
		return cfg, nil
	}
	if cfg, err := p.parseYAML(name, data); err == nil {
		return cfg, nil
	}
	return nil, zerr.With(
		zerr.Wrap(domain.ErrUnsupportedConfigFormat, "document is neither JSON nor YAML"),
		"path", name,
	)
}

func (p *Parser) parseJSON(name string, data []byte) (*domain.BundleConfig, error) {
	stripped := jsonc.ToJSON(data)

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(stripped, &keys); err != nil {
		return nil, parseError(name, err)
	}
	p.checkKeys(name, mapKeys(keys))

	var cfg domain.BundleConfig
	if err := json.Unmarshal(stripped, &cfg); err != nil {
		return nil, parseError(name, err)
	}
	return &cfg, nil
}

func (p *Parser) parseYAML(name string, data []byte) (*domain.BundleConfig, error) {
	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, parseError(name, err)
	}
	if keys == nil {
		return nil, parseError(name, zerr.New("document is empty"))
	}
	p.checkKeys(name, mapKeys(keys))

	var cfg domain.BundleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, parseError(name, err)
	}
	return &cfg, nil
}

// parseTOML decodes into a generic table and re-encodes it as JSON, so the
// option types only need to know how to decode JSON.
func (p *Parser) parseTOML(name string, data []byte) (*domain.BundleConfig, error) {
	var table map[string]any
	if _, err := toml.Decode(string(data), &table); err != nil {
		return nil, parseError(name, err)
	}
	p.checkKeys(name, mapKeys(table))

	encoded, err := json.Marshal(table)
	if err != nil {
		return nil, parseError(name, err)
	}

	var cfg domain.BundleConfig
	if err := json.Unmarshal(encoded, &cfg); err != nil {
		return nil, parseError(name, err)
	}
	return &cfg, nil
}

func (p *Parser) checkKeys(name string, keys []string) {
	if p.logger == nil {
		return
	}
	for _, key := range keys {
		switch {
		case key == renameKey:
			p.logger.Warn(fmt.Sprintf("%s: option %q can only be set programmatically, ignoring", name, key))
		case !knownKeys[key]:
			p.logger.Warn(fmt.Sprintf("%s: unknown option %q", name, key))
		}
	}
}

func parseError(name string, err error) error {
	return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", name)
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

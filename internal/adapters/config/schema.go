package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"go.trai.ch/fontpack/internal/core/domain"
)

// Language identifies the syntax of a bundle document.
type Language string

const (
	// LanguageJSON is JSON, optionally with comments and trailing commas.
	LanguageJSON Language = "json"
	// LanguageYAML is YAML.
	LanguageYAML Language = "yaml"
	// LanguageTOML is TOML.
	LanguageTOML Language = "toml"
	// LanguageUnknown is tried as JSON first and then as YAML.
	LanguageUnknown Language = ""
)

// DetectLanguage picks the document language from the file extension.
func DetectLanguage(name string) Language {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".jsonc", ".font", ".fontrc":
		return LanguageJSON
	case ".yaml", ".yml":
		return LanguageYAML
	case ".toml":
		return LanguageTOML
	default:
		return LanguageUnknown
	}
}

// renameKey names the option that only programmatic callers can set.
const renameKey = "rename"

// knownKeys holds every top-level key a bundle document may use.
var knownKeys = func() map[string]bool {
	keys := map[string]bool{renameKey: true}
	t := reflect.TypeFor[domain.BundleConfig]()
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys[name] = true
		}
	}
	return keys
}()

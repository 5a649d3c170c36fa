package transform

import (
	"maps"
	"path/filepath"

	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	defaultClassPrefix  = "icon-"
	defaultBaseSelector = ".icon"
	defaultCSSFontsPath = "./"
)

// Normalize merges defaults, caller options and the bundle's own options, in
// increasing precedence, into a GenerationRequest. files is the resolved
// input list; path-valued options are resolved against baseDir when present.
func Normalize(raw, caller *domain.BundleConfig, files []string, baseDir string) (*domain.GenerationRequest, error) {
	merged := domain.Merge(caller, raw)
	if merged.FontName == nil {
		return nil, zerr.Wrap(domain.ErrMissingFontName, "option 'fontName' is required")
	}

	formats := domain.DefaultFormats()
	if ids := merged.FormatIDs(); ids != nil {
		parsed, err := ids.Formats()
		if err != nil {
			return nil, err
		}
		formats = parsed
	}

	req := &domain.GenerationRequest{
		FontName:           *merged.FontName,
		Files:              files,
		Formats:            formats,
		FontHeight:         valueOr(merged.FontHeight, domain.DefaultFontHeight),
		Codepoints:         map[string]rune{},
		CSSFontsURL:        valueOr(merged.CSSFontsPath, defaultCSSFontsPath),
		FormatOptions:      merged.FormatOptions,
		HTML:               valueOr(merged.HTML, false),
		WriteFiles:         valueOr(merged.WriteFiles, false),
		Rename:             merged.Rename,
		FixedWidth:         merged.FixedWidth,
		CenterHorizontally: merged.CenterHorizontally,
		Normalize:          merged.Normalize,
		Round:              merged.Round,
		Descent:            merged.Descent,
		Template: domain.TemplateOptions{
			ClassPrefix:  valueOr(merged.ClassPrefix, defaultClassPrefix),
			BaseSelector: valueOr(merged.BaseSelector, ""),
		},
	}

	if req.Template.BaseSelector == "" {
		req.Template.BaseSelector = defaultBaseSelector
	}
	if merged.Codepoints != nil {
		req.Codepoints = maps.Clone(merged.Codepoints)
	}
	if req.Rename == nil {
		req.Rename = domain.BasenameRename{}
	}

	if merged.Dest != nil {
		req.Dest = resolve(baseDir, *merged.Dest)
	}
	req.HTMLDest = resolveOptional(baseDir, merged.HTMLDest)
	req.CSSTemplate = resolveOptional(baseDir, merged.CSSTemplate)
	req.HTMLTemplate = resolveOptional(baseDir, merged.HTMLTemplate)

	switch {
	case merged.ScssFile.IsTrue():
		dest := ""
		if merged.Dest != nil {
			dest = *merged.Dest
		}
		scss := resolve(baseDir, filepath.Join(dest, req.FontName+".scss"))
		req.CSSDest = &scss
	case merged.ScssFile != nil && merged.ScssFile.Path != "":
		req.CSSDest = resolveOptional(baseDir, &merged.ScssFile.Path)
	}

	return req, nil
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

func resolve(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, filepath.FromSlash(p))
}

func resolveOptional(baseDir string, p *string) *string {
	if p == nil {
		return nil
	}
	resolved := resolve(baseDir, *p)
	return &resolved
}

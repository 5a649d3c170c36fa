// Package transform turns a font bundle into published fonts and a stylesheet.
package transform

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Input is one transform invocation.
type Input struct {
	// Source is the path of the bundle document.
	Source string
	// BaseDir anchors relative patterns and paths. Defaults to the directory of Source.
	BaseDir string
	// Config is the bundle's own options layer.
	Config *domain.BundleConfig
	// Options is the caller's options layer.
	Options *domain.BundleConfig
}

// Transformer runs the resolve, normalize, compile, publish pipeline.
type Transformer struct {
	resolver ports.PatternResolver
	compiler ports.FontCompiler
	emitter  ports.CodepointEmitter
	logger   ports.Logger
}

// New creates a new Transformer.
func New(
	resolver ports.PatternResolver,
	compiler ports.FontCompiler,
	emitter ports.CodepointEmitter,
	log ports.Logger,
) *Transformer {
	return &Transformer{
		resolver: resolver,
		compiler: compiler,
		emitter:  emitter,
		logger:   log,
	}
}

// WithCompiler returns a copy of the transformer using compiler.
func (t *Transformer) WithCompiler(compiler ports.FontCompiler) *Transformer {
	clone := *t
	clone.compiler = compiler
	return &clone
}

// Transform builds one bundle and returns its stylesheet.
//
// Dependencies discovered during resolution are registered on host before
// Transform returns, including when it fails after resolution.
func (t *Transformer) Transform(ctx context.Context, host ports.Host, in Input) (string, error) {
	times, err := host.Timestamps(in.Source)
	if err != nil {
		return "", err
	}

	baseDir := in.BaseDir
	if baseDir == "" {
		baseDir = filepath.Dir(in.Source)
	}

	merged := domain.Merge(in.Options, in.Config)
	if merged.FontName == nil {
		return "", zerr.With(
			zerr.Wrap(domain.ErrMissingFontName, "option 'fontName' is required"),
			"bundle", in.Source,
		)
	}

	set, err := t.resolver.Resolve(merged.Files, baseDir)
	if set != nil {
		registerDependencies(host, set.Dependencies)
	}
	if err != nil {
		return "", err
	}

	req, err := Normalize(in.Config, in.Options, set.Files, baseDir)
	if err != nil {
		return "", zerr.With(err, "bundle", in.Source)
	}
	if req.CSSTemplate != nil {
		host.AddDependency(*req.CSSTemplate)
	}

	result, err := t.compiler.Compile(ctx, req)
	if err != nil {
		return "", err
	}

	urls, published, err := Publish(host, req, baseDir, result.Fonts, times)
	if err != nil {
		return "", err
	}

	req.Codepoints = domain.CodepointMap(result.Glyphs)
	if targets := merged.EmitCodepoints; len(targets) > 0 {
		if err := t.emitter.Emit(ctx, host, targets, req, in.Options); err != nil {
			return "", err
		}
	}

	t.logger.Info(fmt.Sprintf("published %d fonts for %s (%d glyphs)", len(published), req.FontName, len(result.Glyphs)))

	return result.Stylesheet(urls)
}

func registerDependencies(tracker ports.DependencyTracker, deps domain.Dependencies) {
	for _, file := range deps.Files {
		tracker.AddDependency(file)
	}
	for _, dir := range deps.Directories {
		tracker.AddContextDependency(dir)
	}
}

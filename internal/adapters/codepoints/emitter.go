// Package codepoints emits glyph name to codepoint mapping files.
package codepoints

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CodepointEmitter = (*Emitter)(nil)

// Emitter implements ports.CodepointEmitter.
type Emitter struct {
	logger ports.Logger
}

// NewEmitter creates a new Emitter.
func NewEmitter(log ports.Logger) *Emitter {
	return &Emitter{logger: log}
}

// Emit renders the request's codepoints once per target and hands each file to host.
func (e *Emitter) Emit(
	ctx context.Context,
	host ports.AssetEmitter,
	targets domain.EmitCodepoints,
	req *domain.GenerationRequest,
	caller *domain.BundleConfig,
) error {
	var fallback domain.CodepointTarget
	if caller != nil && len(caller.EmitCodepoints) > 0 {
		fallback = caller.EmitCodepoints[0]
	}

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		name, content, err := Render(withFallback(target, fallback), req)
		if err != nil {
			return err
		}
		if err := host.EmitFile(name, content); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrCodepointEmitFailed, err.Error()), "file", name)
		}
		e.logger.Info(fmt.Sprintf("emitted codepoints for %s to %s", req.FontName, name))
	}
	return nil
}

func withFallback(target, fallback domain.CodepointTarget) domain.CodepointTarget {
	if target.FileName == "" {
		target.FileName = fallback.FileName
	}
	if target.FileName == "" {
		target.FileName = domain.DefaultCodepointsFileName
	}
	if target.Type == "" {
		target.Type = fallback.Type
	}
	return target
}

// Render returns the interpolated file name and the content of one target.
func Render(target domain.CodepointTarget, req *domain.GenerationRequest) (string, []byte, error) {
	typ, err := domain.ParseCodepointType(string(target.Type))
	if err != nil {
		return "", nil, err
	}

	mapping := req.Codepoints
	if mapping == nil {
		mapping = map[string]rune{}
	}
	// Map keys are marshaled in sorted order, keeping the output stable.
	encoded, err := json.MarshalIndent(mapping, "", "  ")
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to encode codepoints")
	}

	var content string
	switch typ {
	case domain.CodepointsWeb:
		fontName, _ := json.Marshal(req.FontName) //nolint:errchkjson // strings always encode
		content = "if (typeof webfontIconCodepoints === 'undefined') {\n" +
			"  webfontIconCodepoints = {};\n" +
			"}\n" +
			"webfontIconCodepoints[" + string(fontName) + "] = " + string(encoded) + ";\n"
	case domain.CodepointsCommonJS:
		content = "module.exports = " + string(encoded) + ";\n"
	case domain.CodepointsJSON:
		content = string(encoded) + "\n"
	}

	name := interpolate(target.FileName, req.FontName, []byte(content))
	return name, []byte(content), nil
}

func interpolate(pattern, fontName string, content []byte) string {
	return strings.NewReplacer(
		"[fontname]", fontName,
		"[hash]", fmt.Sprintf("%016x", xxhash.Sum64(content)),
	).Replace(pattern)
}

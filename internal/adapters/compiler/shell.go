// Package compiler runs an external font compiler command.
package compiler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adnsv/go-utils/filesystem"
	"go.trai.ch/fontpack/internal/adapters/stylesheet"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// EnvCompiler overrides the default compiler command line.
	EnvCompiler = "FONTPACK_COMPILER"
	// EnvOutDir names the scratch directory the compiler writes fonts into.
	EnvOutDir = "FONTPACK_OUT_DIR"
	// EnvFontName carries the font name, for compilers that ignore stdin.
	EnvFontName = "FONTPACK_FONT_NAME"
	// DefaultCommand is run when no compiler command is configured.
	DefaultCommand = "fontpack-compile"
	// CodepointsFile is the optional file through which a compiler reports
	// the codepoints it actually assigned.
	CodepointsFile = "codepoints.json"
)

var _ ports.FontCompiler = (*Compiler)(nil)

// Compiler implements ports.FontCompiler by running a command.
//
// The command receives the request as JSON on stdin and writes one
// <fontName>.<ext> file per requested format into $FONTPACK_OUT_DIR.
type Compiler struct {
	command  []string
	logger   ports.Logger
	renderer *stylesheet.Renderer
}

// NewCompiler creates a Compiler running command.
func NewCompiler(log ports.Logger, renderer *stylesheet.Renderer, command []string) *Compiler {
	return &Compiler{
		command:  command,
		logger:   log,
		renderer: renderer,
	}
}

// CommandFromEnv returns the compiler command line configured in the environment.
func CommandFromEnv() []string {
	if v := strings.TrimSpace(os.Getenv(EnvCompiler)); v != "" {
		return strings.Fields(v)
	}
	return []string{DefaultCommand}
}

// WithCommand returns a copy of the compiler running command instead.
func (c *Compiler) WithCommand(command []string) ports.FontCompiler {
	clone := *c
	clone.command = command
	return &clone
}

// Command returns the command line the compiler runs.
func (c *Compiler) Command() []string {
	return c.command
}

// request is the document written to the compiler's stdin.
type request struct {
	*domain.GenerationRequest
	Glyphs []domain.Glyph `json:"glyphs"`
	OutDir string         `json:"outDir"`
}

// Compile runs the command and collects its fonts.
func (c *Compiler) Compile(ctx context.Context, req *domain.GenerationRequest) (*domain.CompilationResult, error) {
	if len(c.command) == 0 {
		return nil, zerr.Wrap(domain.ErrCompilerNotConfigured, "empty compiler command")
	}

	for _, tmpl := range []*string{req.CSSTemplate, req.HTMLTemplate} {
		if tmpl == nil {
			continue
		}
		if err := filesystem.ValidateFileExists(*tmpl); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "template not found"), "path", *tmpl)
		}
	}

	outDir, err := os.MkdirTemp("", "fontpack-"+req.FontName+"-*")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create compiler scratch directory")
	}
	defer os.RemoveAll(outDir) //nolint:errcheck // Best effort cleanup

	glyphs := req.Glyphs()
	if err := c.run(ctx, req, glyphs, outDir); err != nil {
		return nil, err
	}

	fonts := make(map[domain.Format][]byte, len(req.Formats))
	for _, format := range req.Formats {
		path := filepath.Join(outDir, format.FileName(req.FontName))
		data, err := os.ReadFile(path) //nolint:gosec // Path is inside our scratch directory
		if err != nil {
			return nil, zerr.With(
				zerr.With(zerr.Wrap(domain.ErrMissingFontOutput, err.Error()), "format", string(format)),
				"font", req.FontName,
			)
		}
		fonts[format] = data
	}

	if err := applyReportedCodepoints(filepath.Join(outDir, CodepointsFile), glyphs); err != nil {
		return nil, err
	}

	result := &domain.CompilationResult{
		Fonts:  fonts,
		Glyphs: glyphs,
		Stylesheet: func(urls map[domain.Format]string) (string, error) {
			return c.renderer.CSS(req, stylesheet.NewData(req, glyphs, fonts, urls))
		},
	}

	if req.WriteFiles {
		if err := c.writeFiles(req, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (c *Compiler) run(ctx context.Context, req *domain.GenerationRequest, glyphs []domain.Glyph, outDir string) error {
	payload, err := json.Marshal(request{GenerationRequest: req, Glyphs: glyphs, OutDir: outDir})
	if err != nil {
		return zerr.Wrap(err, "failed to encode compiler request")
	}

	name := c.command[0]
	args := c.command[1:]

	cmdEnv := resolveEnvironment(os.Environ(), map[string]string{
		EnvOutDir:   outDir,
		EnvFontName: req.FontName,
	})

	// Resolve the executable path using the new environment's PATH
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Env = cmdEnv
	cmd.Stdin = bytes.NewReader(payload)

	stdoutLog := &logWriter{logger: c.logger, level: "info"}
	stderrLog := &logWriter{logger: c.logger, level: "warn"}
	cmd.Stdout = stdoutLog
	cmd.Stderr = stderrLog

	runErr := cmd.Run()
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	if runErr != nil {
		exitCode := -1 // Unknown or signal
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(
			zerr.With(zerr.Wrap(domain.ErrCompilerFailed, runErr.Error()), "exit_code", exitCode),
			"font", req.FontName,
		)
	}
	return nil
}

// applyReportedCodepoints overrides glyph codepoints with the compiler's report, if any.
func applyReportedCodepoints(path string, glyphs []domain.Glyph) error {
	data, err := os.ReadFile(path) //nolint:gosec // Path is inside our scratch directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read reported codepoints"), "path", path)
	}

	var reported map[string]rune
	if err := json.Unmarshal(data, &reported); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to decode reported codepoints"), "path", path)
	}
	for i := range glyphs {
		if cp, ok := reported[glyphs[i].Name]; ok {
			glyphs[i].Codepoint = cp
		}
	}
	return nil
}

func (c *Compiler) writeFiles(req *domain.GenerationRequest, result *domain.CompilationResult) error {
	if req.Dest == "" {
		return zerr.With(zerr.New("option 'writeFiles' requires 'dest'"), "font", req.FontName)
	}
	if err := os.MkdirAll(req.Dest, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination"), "path", req.Dest)
	}

	urls := make(map[domain.Format]string, len(req.Formats))
	for _, format := range req.Formats {
		name := format.FileName(req.FontName)
		urls[format] = name
		if err := write(filepath.Join(req.Dest, name), result.Fonts[format]); err != nil {
			return err
		}
	}

	data := stylesheet.NewData(req, result.Glyphs, result.Fonts, urls)
	css, err := c.renderer.CSS(req, data)
	if err != nil {
		return err
	}
	cssDest := filepath.Join(req.Dest, req.FontName+".css")
	if req.CSSDest != nil {
		cssDest = *req.CSSDest
	}
	if err := write(cssDest, []byte(css)); err != nil {
		return err
	}

	if req.HTML {
		html, err := c.renderer.HTML(req, data, css)
		if err != nil {
			return err
		}
		htmlDest := filepath.Join(req.Dest, req.FontName+".html")
		if req.HTMLDest != nil {
			htmlDest = *req.HTMLDest
		}
		if err := write(htmlDest, []byte(html)); err != nil {
			return err
		}
	}

	c.logger.Info(fmt.Sprintf("wrote %s to %s", req.FontName, req.Dest))
	return nil
}

func write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	if err := filesystem.WriteFileIfChanged(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}

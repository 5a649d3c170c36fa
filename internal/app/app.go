// Package app implements the application layer for fontpack.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"go.trai.ch/fontpack/internal/adapters/host"
	"go.trai.ch/fontpack/internal/adapters/vfs"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/fontpack/internal/engine/transform"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultOutDir is the output directory used when none is given.
const DefaultOutDir = "dist"

var (
	builtColor  = color.New(color.FgGreen, color.Bold)
	cachedColor = color.New(color.FgBlue)
	failedColor = color.New(color.FgRed, color.Bold)
)

// commandSetter is implemented by compilers whose command line can be replaced.
type commandSetter interface {
	WithCommand(command []string) ports.FontCompiler
}

// commandReporter is implemented by compilers that expose their command line.
type commandReporter interface {
	Command() []string
}

// App represents the main application logic.
type App struct {
	parser      ports.ConfigParser
	transformer *transform.Transformer
	compiler    ports.FontCompiler
	logger      ports.Logger
	store       ports.BuildInfoStore
	hasher      ports.Hasher
	verifier    ports.Verifier
	out         io.Writer
}

// New creates a new App instance.
func New(
	parser ports.ConfigParser,
	transformer *transform.Transformer,
	compiler ports.FontCompiler,
	log ports.Logger,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	verifier ports.Verifier,
) *App {
	return &App{
		parser:      parser,
		transformer: transformer,
		compiler:    compiler,
		logger:      log,
		store:       store,
		hasher:      hasher,
		verifier:    verifier,
		out:         os.Stdout,
	}
}

// WithOutput sets the writer the build summary is printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// OutDir receives the flushed fonts, stylesheets and codepoint files.
	OutDir string
	// OptionsFile is a bundle document used as the caller options layer.
	OptionsFile string
	// Compiler replaces the configured compiler command line.
	Compiler string
	// CacheShape selects the virtual filesystem read cache.
	CacheShape string
	// Jobs bounds the number of bundles built at once. Zero means one per CPU.
	Jobs int
	// NoCache rebuilds every bundle regardless of recorded build info.
	NoCache bool
}

type status int

const (
	statusBuilt status = iota
	statusCached
	statusFailed
)

type outcome struct {
	status status
	err    error
}

// Build transforms every bundle document and flushes the outputs to disk.
// Bundles are independent: a failing bundle does not stop the others.
func (a *App) Build(ctx context.Context, bundles []string, opts BuildOptions) error {
	if len(bundles) == 0 {
		return domain.ErrNoBundlesSpecified
	}

	cache, err := vfs.NewReadCache(vfs.CacheShape(opts.CacheShape))
	if err != nil {
		return err
	}
	overlay := vfs.NewOverlay(cache)

	outDir := opts.OutDir
	if outDir == "" {
		outDir = DefaultOutDir
	}
	outDir, err = filepath.Abs(outDir)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve output directory")
	}

	var caller *domain.BundleConfig
	var sources []string
	if opts.OptionsFile != "" {
		optionsPath, err := filepath.Abs(opts.OptionsFile)
		if err != nil {
			return zerr.Wrap(err, "failed to resolve options file")
		}
		caller, err = a.parser.Load(optionsPath)
		if err != nil {
			return zerr.Wrap(err, "failed to load caller options")
		}
		sources = append(sources, optionsPath)
	}

	tr, err := a.transformerFor(opts.Compiler)
	if err != nil {
		return err
	}
	command := a.commandLine(opts.Compiler)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	outcomes := make([]outcome, len(bundles))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, bundle := range bundles {
		g.Go(func() error {
			st, err := a.buildBundle(ctx, tr, overlay, bundleJob{
				path:     bundle,
				caller:   caller,
				sources:  sources,
				outDir:   outDir,
				compiler: command,
				noCache:  opts.NoCache,
			})
			if err != nil {
				a.logger.Error(zerr.With(err, "bundle", bundle))
				st = statusFailed
			}
			mu.Lock()
			outcomes[i] = outcome{status: st, err: err}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return a.summarize(bundles, outcomes)
}

func (a *App) transformerFor(command string) (*transform.Transformer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return a.transformer, nil
	}
	setter, ok := a.compiler.(commandSetter)
	if !ok {
		return nil, zerr.Wrap(domain.ErrCompilerNotConfigured, "compiler does not accept a command line")
	}
	return a.transformer.WithCompiler(setter.WithCommand(fields)), nil
}

// commandLine is the compiler command line bundles are built with, or "" when
// the compiler does not expose one.
func (a *App) commandLine(override string) string {
	if fields := strings.Fields(override); len(fields) > 0 {
		return strings.Join(fields, " ")
	}
	if r, ok := a.compiler.(commandReporter); ok {
		return strings.Join(r.Command(), " ")
	}
	return ""
}

type bundleJob struct {
	path     string
	caller   *domain.BundleConfig
	sources  []string
	outDir   string
	compiler string
	noCache  bool
}

func (a *App) buildBundle(
	ctx context.Context,
	tr *transform.Transformer,
	overlay *vfs.Overlay,
	job bundleJob,
) (status, error) {
	source, err := filepath.Abs(job.path)
	if err != nil {
		return statusFailed, zerr.Wrap(err, "failed to resolve bundle path")
	}
	baseDir := filepath.Dir(source)
	sources := append([]string{source}, job.sources...)

	if !job.noCache && a.upToDate(source, sources, baseDir, job) {
		return statusCached, nil
	}

	cfg, err := a.parser.Load(source)
	if err != nil {
		return statusFailed, err
	}

	h := host.New(overlay, baseDir, job.outDir)
	css, err := tr.Transform(ctx, h, transform.Input{
		Source:  source,
		BaseDir: baseDir,
		Config:  cfg,
		Options: job.caller,
	})
	if err != nil {
		return statusFailed, err
	}

	if err := h.EmitFile(stylesheetName(source), []byte(css)); err != nil {
		return statusFailed, err
	}
	outputs, err := h.Flush()
	if err != nil {
		return statusFailed, err
	}

	deps := h.Dependencies()
	hash, err := a.hasher.ComputeInputHash(sources, deps, baseDir)
	if err != nil {
		return statusFailed, err
	}
	if err := a.store.Put(domain.BuildInfo{
		Bundle:       source,
		InputHash:    hash,
		Dependencies: deps,
		Outputs:      outputs,
		OutDir:       job.outDir,
		Compiler:     job.compiler,
		Timestamp:    time.Now(),
	}); err != nil {
		return statusFailed, err
	}

	return statusBuilt, nil
}

// upToDate reports whether the recorded build of source matches the job's
// output directory and compiler. Its inputs must hash the same and every
// recorded output must still be on disk.
func (a *App) upToDate(source string, sources []string, baseDir string, job bundleJob) bool {
	info, err := a.store.Get(source)
	if err != nil || info == nil {
		return false
	}
	if info.OutDir != job.outDir || info.Compiler != job.compiler {
		return false
	}
	hash, err := a.hasher.ComputeInputHash(sources, info.Dependencies, baseDir)
	if err != nil || hash != info.InputHash {
		return false
	}
	ok, err := a.verifier.VerifyOutputs(baseDir, info.Outputs)
	return err == nil && ok
}

// stylesheetName is the bundle's file name with its extension replaced by ".css".
func stylesheetName(source string) string {
	name := filepath.Base(source)
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".css"
}

func (a *App) summarize(bundles []string, outcomes []outcome) error {
	var errs []error
	for i, bundle := range bundles {
		switch outcomes[i].status {
		case statusBuilt:
			_, _ = builtColor.Fprint(a.out, "built ")
		case statusCached:
			_, _ = cachedColor.Fprint(a.out, "cached")
		case statusFailed:
			_, _ = failedColor.Fprint(a.out, "failed")
			errs = append(errs, outcomes[i].err)
		}
		_, _ = fmt.Fprintf(a.out, " %s\n", bundle)
	}

	if len(errs) == 0 {
		return nil
	}
	return zerr.With(
		zerr.Wrap(domain.ErrBuildFailed, errors.Join(errs...).Error()),
		"failed", len(errs),
	)
}

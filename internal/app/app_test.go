package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fontpack/internal/adapters/cas"
	"go.trai.ch/fontpack/internal/adapters/codepoints"
	"go.trai.ch/fontpack/internal/adapters/compiler"
	"go.trai.ch/fontpack/internal/adapters/config"
	"go.trai.ch/fontpack/internal/adapters/fs"
	"go.trai.ch/fontpack/internal/adapters/logger"
	"go.trai.ch/fontpack/internal/adapters/stylesheet"
	"go.trai.ch/fontpack/internal/app"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports/mocks"
	"go.trai.ch/fontpack/internal/engine/transform"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	parser   *mocks.MockConfigParser
	resolver *mocks.MockPatternResolver
	compiler *mocks.MockFontCompiler
	logger   *mocks.MockLogger
	store    *mocks.MockBuildInfoStore
	hasher   *mocks.MockHasher
	verifier *mocks.MockVerifier
	out      *bytes.Buffer
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		parser:   mocks.NewMockConfigParser(ctrl),
		resolver: mocks.NewMockPatternResolver(ctrl),
		compiler: mocks.NewMockFontCompiler(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		store:    mocks.NewMockBuildInfoStore(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		verifier: mocks.NewMockVerifier(ctrl),
		out:      &bytes.Buffer{},
	}
	tr := transform.New(f.resolver, f.compiler, codepoints.NewEmitter(f.logger), f.logger)
	f.app = app.New(f.parser, tr, f.compiler, f.logger, f.store, f.hasher, f.verifier).WithOutput(f.out)
	return f
}

func fakeCompile(_ context.Context, req *domain.GenerationRequest) (*domain.CompilationResult, error) {
	fonts := make(map[domain.Format][]byte, len(req.Formats))
	for _, format := range req.Formats {
		fonts[format] = []byte(string(format))
	}
	return &domain.CompilationResult{
		Fonts:  fonts,
		Glyphs: req.Glyphs(),
		Stylesheet: func(urls map[domain.Format]string) (string, error) {
			return "/* " + urls[domain.FormatTTF] + " */", nil
		},
	}, nil
}

func TestApp_Build_NoBundles(t *testing.T) {
	f := newFixture(t)

	err := f.app.Build(context.Background(), nil, app.BuildOptions{})
	assert.ErrorIs(t, err, domain.ErrNoBundlesSpecified)
}

func TestApp_Build_UnknownCacheShape(t *testing.T) {
	f := newFixture(t)

	err := f.app.Build(context.Background(), []string{"a.font"}, app.BuildOptions{CacheShape: "weak"})
	assert.ErrorIs(t, err, domain.ErrUnknownCacheShape)
}

func TestApp_Build_CompilerOverrideUnsupported(t *testing.T) {
	f := newFixture(t)

	err := f.app.Build(context.Background(), []string{"a.font"}, app.BuildOptions{Compiler: "fontforge -script"})
	assert.ErrorIs(t, err, domain.ErrCompilerNotConfigured)
}

func TestApp_Build(t *testing.T) {
	f := newFixture(t)

	srcDir := t.TempDir()
	outDir := t.TempDir()
	bundle := filepath.Join(srcDir, "set1.font")
	require.NoError(t, os.WriteFile(bundle, []byte("{}"), 0o600))

	f.store.EXPECT().Get(bundle).Return(nil, nil)
	f.parser.EXPECT().Load(bundle).Return(&domain.BundleConfig{
		FontName: ptr("set1"),
		Files:    []string{"a.svg"},
		Types:    domain.FormatList{"ttf"},
	}, nil)
	f.resolver.EXPECT().Resolve([]string{"a.svg"}, srcDir).Return(&domain.ResolvedFileSet{
		Files:        []string{filepath.Join(srcDir, "a.svg")},
		Dependencies: domain.Dependencies{Files: []string{"a.svg"}},
	}, nil)
	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(fakeCompile)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.hasher.EXPECT().ComputeInputHash([]string{bundle}, domain.Dependencies{Files: []string{"a.svg"}}, srcDir).Return("hash", nil)
	f.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(info domain.BuildInfo) error {
		assert.Equal(t, bundle, info.Bundle)
		assert.Equal(t, "hash", info.InputHash)
		assert.ElementsMatch(t, []string{
			filepath.Join(outDir, "set1.ttf"),
			filepath.Join(outDir, "set1.css"),
		}, info.Outputs)
		return nil
	})

	err := f.app.Build(context.Background(), []string{bundle}, app.BuildOptions{OutDir: outDir})
	require.NoError(t, err)

	css, err := os.ReadFile(filepath.Join(outDir, "set1.css"))
	require.NoError(t, err)
	assert.Equal(t, "/* set1.ttf */", string(css))
	assert.FileExists(t, filepath.Join(outDir, "set1.ttf"))
	assert.Contains(t, f.out.String(), "built")
	assert.Contains(t, f.out.String(), bundle)
}

func TestApp_Build_SkipsUpToDateBundle(t *testing.T) {
	f := newFixture(t)

	bundle := filepath.Join(t.TempDir(), "set1.font")
	outDir := t.TempDir()
	info := &domain.BuildInfo{
		Bundle:       bundle,
		InputHash:    "hash",
		Dependencies: domain.Dependencies{Directories: []string{"/icons/"}},
		Outputs:      []string{filepath.Join(outDir, "set1.ttf")},
		OutDir:       outDir,
	}

	f.store.EXPECT().Get(bundle).Return(info, nil)
	f.hasher.EXPECT().ComputeInputHash([]string{bundle}, info.Dependencies, filepath.Dir(bundle)).Return("hash", nil)
	f.verifier.EXPECT().VerifyOutputs(filepath.Dir(bundle), info.Outputs).Return(true, nil)

	err := f.app.Build(context.Background(), []string{bundle}, app.BuildOptions{OutDir: outDir})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "cached")
}

func TestApp_Build_RebuildsForOtherOutDir(t *testing.T) {
	f := newFixture(t)

	srcDir := t.TempDir()
	bundle := filepath.Join(srcDir, "set1.font")
	previous := t.TempDir()
	outDir := t.TempDir()

	// The hasher is only consulted after the build, so a stale record never reaches it.
	f.store.EXPECT().Get(bundle).Return(&domain.BuildInfo{
		Bundle:    bundle,
		InputHash: "hash",
		Outputs:   []string{filepath.Join(previous, "set1.ttf")},
		OutDir:    previous,
	}, nil)
	f.parser.EXPECT().Load(bundle).Return(&domain.BundleConfig{FontName: ptr("set1"), Types: domain.FormatList{"ttf"}}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), srcDir).Return(&domain.ResolvedFileSet{}, nil)
	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(fakeCompile)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.hasher.EXPECT().ComputeInputHash([]string{bundle}, gomock.Any(), srcDir).Return("hash", nil)
	f.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(info domain.BuildInfo) error {
		assert.Equal(t, outDir, info.OutDir)
		return nil
	})

	err := f.app.Build(context.Background(), []string{bundle}, app.BuildOptions{OutDir: outDir})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "built")
	assert.FileExists(t, filepath.Join(outDir, "set1.ttf"))
}

func TestApp_Build_FailureDoesNotStopOtherBundles(t *testing.T) {
	f := newFixture(t)

	srcDir := t.TempDir()
	broken := filepath.Join(srcDir, "broken.font")
	good := filepath.Join(srcDir, "good.font")

	f.parser.EXPECT().Load(broken).Return(nil, errors.New("unexpected token"))
	f.parser.EXPECT().Load(good).Return(&domain.BundleConfig{FontName: ptr("good"), Types: domain.FormatList{"ttf"}}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), srcDir).Return(&domain.ResolvedFileSet{}, nil)
	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(fakeCompile)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Error(gomock.Any()).Times(1)
	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), gomock.Any(), srcDir).Return("hash", nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	err := f.app.Build(context.Background(), []string{broken, good}, app.BuildOptions{
		OutDir:  t.TempDir(),
		NoCache: true,
		Jobs:    1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Contains(t, err.Error(), "unexpected token")
	assert.Contains(t, f.out.String(), "failed")
	assert.Contains(t, f.out.String(), "built")
}

func TestApp_Build_CallerOptions(t *testing.T) {
	f := newFixture(t)

	srcDir := t.TempDir()
	bundle := filepath.Join(srcDir, "set1.font")
	options := filepath.Join(srcDir, "fontpack.yaml")

	f.parser.EXPECT().Load(options).Return(&domain.BundleConfig{
		Types:          domain.FormatList{"woff"},
		EmitCodepoints: domain.EmitCodepoints{{FileName: "[fontname].json", Type: domain.CodepointsJSON}},
	}, nil)
	f.parser.EXPECT().Load(bundle).Return(&domain.BundleConfig{FontName: ptr("set1")}, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), srcDir).Return(&domain.ResolvedFileSet{}, nil)
	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req *domain.GenerationRequest) (*domain.CompilationResult, error) {
			assert.Equal(t, []domain.Format{domain.FormatWOFF}, req.Formats)
			return fakeCompile(ctx, req)
		},
	)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.hasher.EXPECT().ComputeInputHash([]string{bundle, options}, gomock.Any(), srcDir).Return("hash", nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	outDir := t.TempDir()
	err := f.app.Build(context.Background(), []string{bundle}, app.BuildOptions{
		OutDir:      outDir,
		OptionsFile: options,
		NoCache:     true,
	})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "set1.woff"))
	assert.FileExists(t, filepath.Join(outDir, "set1.json"))
}

// compileScript writes one placeholder font per requested format.
const compileScript = `cat >/dev/null
for ext in ttf woff; do printf "$FONTPACK_FONT_NAME" > "$FONTPACK_OUT_DIR/$FONTPACK_FONT_NAME.$ext"; done`

func TestApp_Build_RebuildsWhenWatchedDirectoryChanges(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, slog.LevelInfo)
	fontCompiler := compiler.NewCompiler(log, stylesheet.New(), []string{"sh", "-c", compileScript})
	store, err := cas.NewStore(t.TempDir())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	tr := transform.New(fs.NewResolver(), fontCompiler, codepoints.NewEmitter(log), log)
	a := app.New(config.NewParser(log), tr, fontCompiler, log, store, fs.NewHasher(fs.NewWalker()), fs.NewVerifier()).
		WithOutput(out)

	srcDir := t.TempDir()
	outDir := t.TempDir()
	icons := filepath.Join(srcDir, "icons")
	require.NoError(t, os.MkdirAll(icons, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(icons, "home.svg"), []byte("<svg/>"), 0o600))

	bundle := filepath.Join(srcDir, "set1.font")
	doc := `{
		// glyphs
		"fontName": "set1",
		"files": ["icons/*.svg"],
		"types": ["ttf", "woff"],
		"emitCodepoints": true
	}`
	require.NoError(t, os.WriteFile(bundle, []byte(doc), 0o600))

	build := func() string {
		t.Helper()
		out.Reset()
		require.NoError(t, a.Build(context.Background(), []string{bundle}, app.BuildOptions{OutDir: outDir}))
		return out.String()
	}

	assert.Contains(t, build(), "built")
	for _, name := range []string{"set1.ttf", "set1.woff", "set1.css", "set1.codepoints.js"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
	css, err := os.ReadFile(filepath.Join(outDir, "set1.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".icon-home:before")

	assert.Contains(t, build(), "cached")

	require.NoError(t, os.WriteFile(filepath.Join(icons, "star.svg"), []byte("<svg/>"), 0o600))
	assert.Contains(t, build(), "built")

	css, err = os.ReadFile(filepath.Join(outDir, "set1.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".icon-star:before")
}

func TestApp_Build_RebuildsWhenOutDirOrCompilerChanges(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, slog.LevelInfo)
	fontCompiler := compiler.NewCompiler(log, stylesheet.New(), []string{"sh", "-c", compileScript})
	store, err := cas.NewStore(t.TempDir())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	tr := transform.New(fs.NewResolver(), fontCompiler, codepoints.NewEmitter(log), log)
	a := app.New(config.NewParser(log), tr, fontCompiler, log, store, fs.NewHasher(fs.NewWalker()), fs.NewVerifier()).
		WithOutput(out)

	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "home.svg"), []byte("<svg/>"), 0o600))
	bundle := filepath.Join(srcDir, "set1.font")
	require.NoError(t, os.WriteFile(bundle, []byte(`{"fontName": "set1", "files": ["home.svg"], "types": ["ttf"]}`), 0o600))

	build := func(opts app.BuildOptions) string {
		t.Helper()
		out.Reset()
		require.NoError(t, a.Build(context.Background(), []string{bundle}, opts))
		return out.String()
	}

	first := t.TempDir()
	second := t.TempDir()

	assert.Contains(t, build(app.BuildOptions{OutDir: first}), "built")
	assert.Contains(t, build(app.BuildOptions{OutDir: first}), "cached")

	assert.Contains(t, build(app.BuildOptions{OutDir: second}), "built")
	assert.FileExists(t, filepath.Join(second, "set1.ttf"))
	assert.FileExists(t, filepath.Join(second, "set1.css"))

	assert.Contains(t, build(app.BuildOptions{OutDir: second, Compiler: "sh " + writeScript(t)}), "built")
}

// writeScript stores compileScript in a file and returns its path.
func writeScript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compile.sh")
	require.NoError(t, os.WriteFile(path, []byte(compileScript+"\n"), 0o600))
	return path
}

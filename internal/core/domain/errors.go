package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingFontName is returned when a bundle does not declare a font name.
	ErrMissingFontName = zerr.New("missing required option 'fontName'")

	// ErrUnknownFormat is returned when a bundle requests an unsupported output format.
	ErrUnknownFormat = zerr.New("unknown font format")

	// ErrConfigReadFailed is returned when a bundle document cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read bundle config")

	// ErrConfigParseFailed is returned when a bundle document cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse bundle config")

	// ErrUnsupportedConfigFormat is returned when no parser is registered for a bundle document.
	ErrUnsupportedConfigFormat = zerr.New("unsupported bundle config format")

	// ErrBadPattern is returned when a glob pattern is malformed.
	ErrBadPattern = zerr.New("malformed glob pattern")

	// ErrCompilerNotConfigured is returned when no external font compiler command is set.
	ErrCompilerNotConfigured = zerr.New("font compiler command not configured")

	// ErrCompilerFailed is returned when the external font compiler exits unsuccessfully.
	ErrCompilerFailed = zerr.New("font compiler failed")

	// ErrMissingFontOutput is returned when the compiler did not produce a requested format.
	ErrMissingFontOutput = zerr.New("font compiler produced no output for format")

	// ErrStylesheetFailed is returned when the stylesheet template cannot be rendered.
	ErrStylesheetFailed = zerr.New("failed to render stylesheet")

	// ErrPublicationFailed is returned when an artifact cannot be written to the virtual filesystem.
	ErrPublicationFailed = zerr.New("failed to publish font artifact")

	// ErrCodepointEmitFailed is returned when a codepoint mapping file cannot be emitted.
	ErrCodepointEmitFailed = zerr.New("failed to emit codepoints")

	// ErrUnknownCodepointType is returned when a codepoint target requests an unsupported file type.
	ErrUnknownCodepointType = zerr.New("unknown codepoint file type")

	// ErrUnknownCacheShape is returned when an unsupported read cache shape is selected.
	ErrUnknownCacheShape = zerr.New("unknown read cache shape")

	// ErrNoBundlesSpecified is returned when the build command receives no bundle documents.
	ErrNoBundlesSpecified = zerr.New("no bundles specified")

	// ErrBuildFailed is returned when one or more bundles fail to build.
	ErrBuildFailed = zerr.New("build failed")

	// ErrStoreReadFailed is returned when the build info store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info store")

	// ErrStoreWriteFailed is returned when the build info store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info store")
)

package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fontpack/internal/app"
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports/mocks"
	"go.trai.ch/fontpack/internal/engine/transform"
	"go.uber.org/mock/gomock"
)

type mockSet struct {
	logger      *mocks.MockLogger
	application *app.App
}

func newMocks(t *testing.T) mockSet {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockCompiler := mocks.NewMockFontCompiler(ctrl)
	tr := transform.New(mocks.NewMockPatternResolver(ctrl), mockCompiler, mocks.NewMockCodepointEmitter(ctrl), mockLogger)

	application := app.New(
		mocks.NewMockConfigParser(ctrl),
		tr,
		mockCompiler,
		mockLogger,
		mocks.NewMockBuildInfoStore(ctrl),
		mocks.NewMockHasher(ctrl),
		mocks.NewMockVerifier(ctrl),
	)
	return mockSet{logger: mockLogger, application: application}
}

func provide(m mockSet) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    m.application,
			Logger: m.logger,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	m := newMocks(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provide(m))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	m := newMocks(t)
	m.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrUnknownCacheShape)
	})

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build", "set1.font", "--cache-shape", "weak"}, stderr, provide(m))
	assert.Equal(t, 1, exitCode)
}

// TestRun_Options verifies that options are applied to the app before execution.
func TestRun_Options(t *testing.T) {
	m := newMocks(t)

	applied := false
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provide(m), func(a *app.App) {
		applied = a != nil
	})
	assert.Equal(t, 0, exitCode)
	assert.True(t, applied)
}

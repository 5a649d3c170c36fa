package logger_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"go.trai.ch/fontpack/internal/adapters/logger"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr
	defer func() { os.Stderr = originalStderr }()

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		return "", err
	}
	output := <-done
	return output, r.Close()
}

func TestLogger_Info(t *testing.T) {
	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		logger.New().Info("compiled set1")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "compiled set1") {
		t.Errorf("Expected output to contain 'compiled set1', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger.NewWithWriter(&buf, slog.LevelInfo).Error(os.ErrPermission)

	output := buf.String()
	if !strings.Contains(output, "permission denied") {
		t.Errorf("Expected output to contain 'permission denied', got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Expected output to contain 'ERROR', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	logger.NewWithWriter(&buf, slog.LevelInfo).Warn("glyph skipped")

	if !strings.Contains(buf.String(), "WARN") || !strings.Contains(buf.String(), "glyph skipped") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, slog.LevelWarn)
	lg.Info("hidden")
	lg.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("info record should be filtered, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn record missing, got: %s", buf.String())
	}
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first, slog.LevelInfo)
	lg.SetOutput(&second)
	lg.Info("redirected")

	if first.Len() != 0 {
		t.Errorf("expected no output on the original writer, got: %s", first.String())
	}
	if !strings.Contains(second.String(), "redirected") {
		t.Errorf("expected redirected output, got: %s", second.String())
	}
}

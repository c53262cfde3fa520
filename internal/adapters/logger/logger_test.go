package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"go.trai.ch/remake/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer

	lg := logger.New()
	lg.SetOutput(&buf)
	lg.Info("some message")

	output := buf.String()
	if !strings.Contains(output, "some message") {
		t.Errorf("expected output to contain 'some message', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer

	lg := logger.New()
	lg.SetOutput(&buf)
	lg.Error(os.ErrPermission)

	output := buf.String()
	if !strings.Contains(output, "permission denied") {
		t.Errorf("expected output to contain 'permission denied', got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("expected output to contain 'ERROR', got: %s", output)
	}
}

func TestLogger_DebugSuppressed(t *testing.T) {
	var buf bytes.Buffer

	lg := logger.New()
	lg.SetOutput(&buf)
	lg.Debug("invisible")

	if output := buf.String(); output != "" {
		t.Errorf("expected debug output to be suppressed, got: %s", output)
	}
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer

	lg := logger.New()
	lg.SetOutput(&first)
	lg.Info("goes to first")

	lg.SetOutput(&second)
	lg.Info("goes to second")

	if !strings.Contains(first.String(), "goes to first") {
		t.Errorf("expected first buffer to contain the first message, got: %s", first.String())
	}
	if strings.Contains(first.String(), "goes to second") {
		t.Errorf("expected first buffer to miss the second message, got: %s", first.String())
	}
	if !strings.Contains(second.String(), "goes to second") {
		t.Errorf("expected second buffer to contain the second message, got: %s", second.String())
	}
}

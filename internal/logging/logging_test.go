package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger, err := New(debug, "test")
		if err != nil {
			t.Fatalf("New(%v) error = %v", debug, err)
		}
		if logger == nil {
			t.Fatalf("New(%v) returned nil logger", debug)
		}
		if got := logger.Core().Enabled(zapcore.DebugLevel); got != debug {
			t.Errorf("New(%v) debug enabled = %v, want %v", debug, got, debug)
		}
	}
}

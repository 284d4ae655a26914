package util

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	LogError("play alarm", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing logged for nil error, got %q", buf.String())
	}
	LogError("play alarm", errors.New("boom"))
	if !strings.Contains(buf.String(), "play alarm: boom") {
		t.Fatalf("unexpected log output: %q", buf.String())
	}
}

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewText(&buf, slog.LevelDebug), &buf
}

func TestSlogLogger_LevelsWriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=dbg", "a=1",
		"level=INFO", "msg=inf", "b=2",
		"level=WARN", "msg=wrn", "c=3",
		"level=ERROR", "msg=err", "d=4",
	} {
		require.Contains(t, out, want)
	}
}

func TestSlogLogger_WithAddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	child := log.With("req_id", "123")
	child.Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	require.Contains(t, out, "req_id=123")
	require.Contains(t, out, "k=v")
}

func TestNop_DiscardsEverything(t *testing.T) {
	log := NewNop()
	// must not panic and must accept With chaining
	log.With("a", 1).Error(context.Background(), "ignored")
	require.NotPanics(t, func() {
		log.Info(context.Background(), "ignored", "k", strings.Repeat("x", 10))
	})
}

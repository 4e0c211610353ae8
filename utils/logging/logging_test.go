package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/paillier/utils/logging"
)

func TestLogging(t *testing.T) {

	ctx := context.Background()

	t.Run("Slog", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger := logging.New(slog.New(handler)).With("component", "keygen")

		logger.Debug(ctx, "rejected candidate pair", logging.Redacted("p"), "attempt", 3)

		out := buf.String()
		require.Contains(t, out, "rejected candidate pair")
		require.Contains(t, out, "component=keygen")
		require.Contains(t, out, "p="+logging.Placeholder())
		require.Contains(t, out, "attempt=3")
	})

	t.Run("LevelFiltering", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
		logger := logging.New(slog.New(handler))
		logger.Debug(ctx, "dropped")
		logger.Info(ctx, "kept")
		require.NotContains(t, buf.String(), "dropped")
		require.Contains(t, buf.String(), "kept")
	})

	t.Run("Discard", func(t *testing.T) {
		logger := logging.Discard().With("k", "v")
		require.NotPanics(t, func() {
			logger.Debug(ctx, "a")
			logger.Info(ctx, "b")
		})
	})

	t.Run("Default", func(t *testing.T) {
		var buf bytes.Buffer
		prev := slog.Default()
		defer slog.SetDefault(prev)
		slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

		logging.New(nil).With("k", "v").Info(ctx, "to default")
		require.Contains(t, buf.String(), "to default")
		require.Contains(t, buf.String(), "k=v")
	})
}

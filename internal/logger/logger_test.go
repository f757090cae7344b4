package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefault_BeforeInitialize(t *testing.T) {
	assert.NotNil(t, Default())
	assert.NotPanics(t, func() {
		Info("not initialized")
		ErrorCtx(context.Background(), errors.New("boom"))
	})
}

func TestInitialize_WithoutSentry(t *testing.T) {
	require.NoError(t, Initialize(Config{Debug: true}))
	assert.NotNil(t, Default())
	assert.NotPanics(t, func() {
		DebugCtx(context.Background(), "debug")
		Named("processor").Info("named")
		Flush(0)
	})
}

func TestWithScope(t *testing.T) {
	ctx := WithScope(context.Background(), map[string]string{"chain": "kusama"})

	hub := sentry.GetHubFromContext(ctx)
	require.NotNil(t, hub)
	assert.NotSame(t, sentry.CurrentHub(), hub)

	nested := WithScope(ctx, map[string]string{"block": "42"})
	assert.NotSame(t, hub, sentry.GetHubFromContext(nested))
}

func TestScoped(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithScope(context.Background(), map[string]string{"position": "12-1"})

	Scoped(ctx, zap.New(core)).Error("commit failed", zap.String("chain", "kusama"))

	entries := logs.FilterMessage("commit failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "kusama", entries[0].ContextMap()["chain"])
}

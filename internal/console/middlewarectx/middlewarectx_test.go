package middlewarectx_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-manager/internal/console/middlewarectx"
	"github.com/magabrotheeeer/subscription-manager/internal/console/router"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRequestID(t *testing.T) {
	var ids []string

	r := router.New()
	r.Use(middlewarectx.RequestID)
	r.HandleFunc("list", func(ctx context.Context, _ io.Writer, _ string) {
		ids = append(ids, middlewarectx.GetReqID(ctx))
	})

	require.NoError(t, r.Dispatch(context.Background(), io.Discard, "list"))
	require.NoError(t, r.Dispatch(context.Background(), io.Discard, "list"))

	require.Len(t, ids, 2)
	for _, id := range ids {
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
	assert.NotEqual(t, ids[0], ids[1])
}

func TestGetReqID_Missing(t *testing.T) {
	assert.Empty(t, middlewarectx.GetReqID(context.Background()))
}

func TestLogger(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := router.New()
	r.Use(middlewarectx.RequestID, middlewarectx.Logger(log))
	r.HandleFunc("stats", func(_ context.Context, w io.Writer, _ string) {
		_, _ = io.WriteString(w, "ok")
	})

	var out bytes.Buffer
	require.NoError(t, r.Dispatch(context.Background(), &out, "stats"))

	assert.Equal(t, "ok", out.String())
	assert.Contains(t, logs.String(), "command completed")
	assert.Contains(t, logs.String(), "command=stats")
	assert.Contains(t, logs.String(), "request_id=")
}

func TestRecoverer(t *testing.T) {
	r := router.New()
	r.Use(middlewarectx.Recoverer(newNoopLogger()))
	r.HandleFunc("show", func(_ context.Context, _ io.Writer, _ string) {
		panic("boom")
	})

	var out bytes.Buffer
	assert.NotPanics(t, func() {
		require.NoError(t, r.Dispatch(context.Background(), &out, "show"))
	})
	assert.Equal(t, "Алдаа: дотоод алдаа\n", out.String())
}

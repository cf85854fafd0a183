package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := NewLoggerWithSlog(slog.New(slog.NewJSONHandler(&buf, nil)))
	fallback := NewDiscardLogger()

	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	ctx := IntoContext(context.Background(), base.With("request_id", "req-7"))
	FromContext(ctx, fallback).Named("dispatcher").Infow("notification dispatched", "user_id", 11)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-7", record["request_id"])
	assert.Equal(t, "dispatcher", record["logger"])
	assert.Equal(t, 11.0, record["user_id"])
}

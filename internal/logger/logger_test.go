package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		log.SetOutput(os.Stdout)
		log.SetLevel(logrus.InfoLevel)
	})
	return &buf
}

func TestTraceIDFromContext(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", TraceIDFromContext(ctx))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}

func TestWarnCtx_IncludesTraceID(t *testing.T) {
	buf := captureJSON(t)

	WarnCtx(WithTraceID(context.Background(), "trace-1"), "bad input")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Equal(t, "bad input", entry["msg"])
	assert.Equal(t, "warning", entry["level"])
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	captureJSON(t)

	Setup("verbose", "production")

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestSetFile_EmptyPathIsNoop(t *testing.T) {
	closer := SetFile(FileOptions{})
	assert.NoError(t, closer.Close())
}

func TestSetFile_WritesRotatedFile(t *testing.T) {
	captureJSON(t)
	path := filepath.Join(t.TempDir(), "fwi.log")

	closer := SetFile(FileOptions{Path: path, MaxSizeMB: 1})
	Info("model loaded")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "model loaded")
}

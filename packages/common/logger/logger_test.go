package logger

import (
	"bytes"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferCloser struct {
	mu sync.Mutex
	bytes.Buffer
}

func (b *bufferCloser) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Buffer.Write(p)
}

func (b *bufferCloser) Close() error { return nil }

type recordingLogger struct {
	mu      sync.Mutex
	entries []*LogEntry
}

func (r *recordingLogger) log(entry *LogEntry) {
	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()
}

func (r *recordingLogger) Log(entry *LogEntry) { r.log(entry) }

func TestFileLogger(t *testing.T) {
	t.Run("writes json lines", func(t *testing.T) {
		out := new(bufferCloser)
		l := NewFileLogger("test")
		l.SetOutput(out)

		require.NoError(t, l.Start())

		src := NewSource("TEST", l)
		src.Info("first", Meta{"path": "/v1/books/all"})
		src.Error("second", "boom", nil)
		src.Debug("skipped", nil)

		require.NoError(t, l.Stop())

		lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)

		var entry map[string]any
		require.NoError(t, jsoniter.Unmarshal(lines[1], &entry))
		assert.Equal(t, "ERROR", entry["level"])
		assert.Equal(t, "TEST", entry["source"])
		assert.Equal(t, "boom", entry["error"])
		assert.Equal(t, "hobbes", entry["service"])
	})

	t.Run("start and stop twice", func(t *testing.T) {
		l := NewFileLogger("test")

		assert.Error(t, l.Stop())
		require.NoError(t, l.Start())
		assert.Error(t, l.Start())
		require.NoError(t, l.Stop())
	})

	t.Run("transmissions", func(t *testing.T) {
		l := NewFileLogger("test")
		rec := new(recordingLogger)

		assert.Error(t, l.NewTransmission(nil))
		assert.Error(t, l.NewTransmission(l))
		require.NoError(t, l.NewTransmission(rec))
		assert.Error(t, l.NewTransmission(rec))

		// not started logger still forwards logs
		NewSource("TEST", l).Warning("forwarded", nil)

		require.Len(t, rec.entries, 1)
		assert.Equal(t, "forwarded", rec.entries[0].Message)

		require.NoError(t, l.RemoveTransmission(rec))
		assert.Error(t, l.RemoveTransmission(rec))
	})

	t.Run("trace and debug are toggled", func(t *testing.T) {
		l := NewFileLogger("test")
		rec := new(recordingLogger)
		require.NoError(t, l.NewTransmission(rec))

		src := NewSource("TEST", l)

		src.Trace("hidden", nil)
		Trace.Store(true)
		defer Trace.Store(false)
		src.Trace("visible", nil)

		require.Len(t, rec.entries, 1)
		assert.Equal(t, "TRACE", rec.entries[0].Level)
	})
}

func TestLogEntry(t *testing.T) {
	e := NewLogEntry(InfoLogLevel, "SRC", "msg", "ignored", Meta{"method": "GET", "path": "/health"})

	assert.Empty(t, e.Error)
	assert.Equal(t, "[SRC: INFO] msg (GET /health)", e.String())
}

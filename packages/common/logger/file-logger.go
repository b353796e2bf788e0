package logger

import (
	"context"
	"errors"
	"hobbes/packages/common/structs"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

var errLogger = NewSource("LOG", Stderr)

// Satisfies ConcurrentLogger and ForwardingLogger interfaces.
// Writes logs as JSON lines into a file, writing is done by worker pool.
type FileLogger struct {
	name          string
	isRunning     atomic.Bool
	mu            sync.RWMutex
	out           io.WriteCloser
	writeMu       sync.Mutex
	transmissions []Logger
	pool          atomic.Pointer[structs.WorkerPool]
	streams       sync.Pool
}

// Creates new file logger. Won't do any IO till Open() is called.
func NewFileLogger(name string) *FileLogger {
	return &FileLogger{
		name:          name,
		transmissions: []Logger{},
		streams: sync.Pool{
			New: func() any {
				return jsoniter.NewStream(jsoniter.ConfigFastest, nil, 1024)
			},
		},
	}
}

// Opens (or creates) "<dir>/<name>.log" and uses it as logs destination.
func (l *FileLogger) Open(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(
		filepath.Join(dir, l.name+".log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644, // -rw-r--r--
	)
	if err != nil {
		return err
	}

	l.SetOutput(f)

	return nil
}

// Sets logs destination. Previous destination (if any) won't be closed.
func (l *FileLogger) SetOutput(out io.WriteCloser) {
	l.writeMu.Lock()
	l.out = out
	l.writeMu.Unlock()
}

// Starts worker pool which writes logs. Doesn't block.
func (l *FileLogger) Start() error {
	if !l.isRunning.CompareAndSwap(false, true) {
		return errors.New("logger already started")
	}

	// canceled WorkerPool can't be started, so each start needs a new one
	pool := structs.NewWorkerPool(context.Background(), structs.NewChanWaiter())
	l.pool.Store(pool)

	go pool.Start(1)

	return nil
}

// Stops logger. All pending logs will be written before closing the output.
func (l *FileLogger) Stop() error {
	if !l.isRunning.CompareAndSwap(true, false) {
		return errors.New("logger isn't started, hence can't be stopped")
	}

	if err := l.pool.Swap(nil).Cancel(); err != nil {
		return err
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	if l.out == nil {
		return nil
	}

	err := l.out.Close()
	l.out = nil

	return err
}

func (l *FileLogger) write(entry *LogEntry) {
	stream := l.streams.Get().(*jsoniter.Stream)
	defer l.streams.Put(stream)

	stream.Reset(nil)
	stream.Error = nil

	stream.WriteVal(entry)
	if stream.Error != nil {
		errLogger.Error("failed to write log", stream.Error.Error(), nil)
		return
	}

	// Without this all logs will be written in single line
	stream.WriteRaw("\n")

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	if l.out == nil {
		return
	}

	if _, err := l.out.Write(stream.Buffer()); err != nil {
		errLogger.Error("failed to write log", err.Error(), nil)
	}
}

func (l *FileLogger) log(entry *LogEntry) {
	pool := l.pool.Load()
	if pool == nil {
		return
	}

	if err := pool.Push(&logTask{entry: entry, handler: l.write}); err != nil {
		// pool was canceled in between, log synchronously
		l.write(entry)
	}
}

func (l *FileLogger) Log(entry *LogEntry) {
	l.mu.RLock()
	transmissions := l.transmissions
	l.mu.RUnlock()

	if !preprocess(entry, transmissions) {
		return
	}

	// Immediately handle panic or fatal log
	if entry.rawLevel >= FatalLogLevel {
		l.write(entry)
		handleCritical(entry)
	}

	l.log(entry)
}

func (l *FileLogger) NewTransmission(logger Logger) error {
	if logger == nil {
		return errors.New("received nil instead of logger")
	}

	if fl, ok := logger.(*FileLogger); ok && fl == l {
		return errors.New("can't create transmission for self")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if slices.Contains(l.transmissions, logger) {
		return errors.New("this logger already has transmission")
	}

	// copy on write, so readers may use old slice without lock
	l.transmissions = append(slices.Clone(l.transmissions), logger)

	return nil
}

func (l *FileLogger) RemoveTransmission(logger Logger) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.Index(l.transmissions, logger)
	if idx == -1 {
		return errors.New("transmission to this logger doesn't exist")
	}

	l.transmissions = slices.Delete(slices.Clone(l.transmissions), idx, idx+1)

	return nil
}

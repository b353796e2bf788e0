package tasks

import (
	"context"
	"errors"
	"fmt"
	"hobbes/packages/common/encoding/json"
	"hobbes/packages/common/structs"
	"sync"
	"time"
)

// Processes task arguments and returns task result.
// Returned error causes retry.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

type Options struct {
	Workers    int
	MaxRetries int
	// Delay before the first retry
	Countdown time.Duration
	// If true, every next retry delay is twice as long as previous one
	RetryBackoff bool
	// How long single dequeue blocks. Defaults to 1 second.
	PollTimeout time.Duration
}

const maxRetryDelay = time.Minute * 10

var ErrNoHandlers = errors.New("no task handlers registered")

type Worker struct {
	broker   *Broker
	opt      Options
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewWorker(broker *Broker, opt Options) *Worker {
	if opt.PollTimeout <= 0 {
		opt.PollTimeout = time.Second
	}
	opt.Workers = max(opt.Workers, 1)

	return &Worker{
		broker:   broker,
		opt:      opt,
		handlers: make(map[string]Handler),
	}
}

// Registers handler for tasks with specified name.
// Panics if handler for this name already registered.
func (w *Worker) Register(name string, handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.handlers[name]; exists {
		panic("task handler already registered: " + name)
	}

	w.handlers[name] = handler
}

func (w *Worker) handler(name string) (Handler, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	h, ok := w.handlers[name]
	return h, ok
}

// Consumes tasks till ctx is done.
// Tasks that are already taken from the queue are processed before return.
func (w *Worker) Run(ctx context.Context) error {
	w.mu.RLock()
	n := len(w.handlers)
	w.mu.RUnlock()

	if n == 0 {
		return ErrNoHandlers
	}

	log.Info(fmt.Sprintf("Starting worker (queue: %s, workers: %d)...", w.broker.queue, w.opt.Workers), nil)

	pool := structs.NewWorkerPool(context.Background(), structs.NewChanWaiter())

	poolDone := make(chan struct{})
	go func() {
		pool.Start(w.opt.Workers)
		close(poolDone)
	}()

	// in-flight tasks must not be interrupted by shutdown
	taskCtx := context.WithoutCancel(ctx)

	// limits amount of tasks taken from the queue to the amount of workers
	slots := make(chan struct{}, w.opt.Workers)

	log.Info("Starting worker: OK", nil)

consume:
	for {
		select {
		case <-ctx.Done():
			break consume
		case slots <- struct{}{}:
		}

		meta, err := w.broker.Dequeue(ctx, w.opt.PollTimeout)
		if err != nil {
			<-slots
			if ctx.Err() != nil {
				break consume
			}
			log.Error("Failed to dequeue task", err.Error(), nil)
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
			continue
		}
		if meta == nil {
			<-slots
			continue
		}

		pool.Push(structs.TaskFunc(func() {
			defer func() { <-slots }()
			w.process(taskCtx, meta)
		}))
	}

	log.Info("Stopping worker...", nil)

	pool.Cancel()
	<-poolDone

	log.Info("Stopping worker: OK", nil)

	return nil
}

func (w *Worker) retryDelay(retry int) time.Duration {
	if !w.opt.RetryBackoff || retry <= 1 {
		return w.opt.Countdown
	}

	delay := w.opt.Countdown
	for i := 1; i < retry && delay < maxRetryDelay; i++ {
		delay *= 2
	}

	return min(delay, maxRetryDelay)
}

func (w *Worker) execute(ctx context.Context, handler Handler, args json.RawMessage) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	return handler(ctx, args)
}

func (w *Worker) process(ctx context.Context, meta *Meta) {
	logMeta := meta.logMeta()

	handler, ok := w.handler(meta.Name)
	if !ok {
		log.Error("Failed to process task", "unknown task: "+meta.Name, logMeta)
		meta.State = StateFailure
		meta.Error = "unknown task: " + meta.Name
		w.save(ctx, meta)
		return
	}

	log.Trace("Processing task...", logMeta)

	meta.State = StateStarted
	w.save(ctx, meta)

	result, err := w.execute(ctx, handler, meta.Args)
	if err == nil {
		raw, e := json.Marshal(result)
		if e != nil {
			err = e
		} else {
			meta.State = StateSuccess
			meta.Result = raw
			meta.Error = ""
			w.save(ctx, meta)
			log.Trace("Processing task: OK", logMeta)
			return
		}
	}

	meta.Error = err.Error()

	if meta.Retries < w.opt.MaxRetries {
		meta.Retries++
		meta.State = StateRetry

		delay := w.retryDelay(meta.Retries)

		log.Warning(fmt.Sprintf("Task failed, retry %d/%d in %s: %s", meta.Retries, w.opt.MaxRetries, delay, err.Error()), logMeta)

		if e := w.broker.schedule(ctx, meta, delay); e != nil {
			log.Error("Failed to schedule task retry", e.Error(), logMeta)
		}
		return
	}

	log.Error("Task failed all retries", err.Error(), logMeta)

	meta.State = StateFailure
	w.save(ctx, meta)
}

func (w *Worker) save(ctx context.Context, meta *Meta) {
	if err := w.broker.save(ctx, meta); err != nil {
		log.Error("Failed to save task state", err.Error(), meta.logMeta())
	}
}

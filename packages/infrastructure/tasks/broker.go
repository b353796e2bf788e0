package tasks

import (
	"context"
	"errors"
	"hobbes/packages/common/encoding/json"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/util"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tasks:"

// Stores tasks in redis:
//   - "tasks:<queue>" list of ids ready for processing;
//   - "tasks:<queue>:delayed" sorted set of ids scored by unix ms when they are due;
//   - "tasks:meta:<id>" JSON encoded Meta.
type Broker struct {
	client    *redis.Client
	queue     string
	resultTTL time.Duration
}

// Meta of finished tasks expires after resultTTL, zero means never.
func NewBroker(client *redis.Client, queue string, resultTTL time.Duration) *Broker {
	return &Broker{
		client:    client,
		queue:     queue,
		resultTTL: resultTTL,
	}
}

func (b *Broker) queueKey() string {
	return keyPrefix + b.queue
}

func (b *Broker) delayedKey() string {
	return keyPrefix + b.queue + ":delayed"
}

func metaKey(id string) string {
	return keyPrefix + "meta:" + id
}

func (b *Broker) ttl(state State) time.Duration {
	if state.IsFinal() {
		return b.resultTTL
	}
	return 0
}

func (b *Broker) save(ctx context.Context, meta *Meta) error {
	meta.UpdatedAt = util.NowUTC()

	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}

	return b.client.Set(ctx, metaKey(meta.ID), data, b.ttl(meta.State)).Err()
}

// Creates new task and pushes it into the queue.
func (b *Broker) Enqueue(ctx context.Context, name string, args any) (*Meta, *Error.Status) {
	rawArgs, err := json.Marshal(args)
	if err != nil {
		return nil, Error.StatusInternalError
	}

	now := util.NowUTC()

	meta := &Meta{
		ID:        uuid.NewString(),
		Name:      name,
		Args:      rawArgs,
		State:     StatePending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return nil, Error.StatusInternalError
	}

	_, err = b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, metaKey(meta.ID), data, 0)
		pipe.LPush(ctx, b.queueKey(), meta.ID)
		return nil
	})
	if err != nil {
		log.Error("Failed to enqueue task "+name, err.Error(), meta.logMeta())
		return nil, Error.StatusServiceUnavailable
	}

	log.Trace("Enqueued task "+name, meta.logMeta())

	return meta, nil
}

// Saves meta and puts task into the delayed set, it will be pushed
// back into the queue once delay is elapsed.
func (b *Broker) schedule(ctx context.Context, meta *Meta, delay time.Duration) error {
	if err := b.save(ctx, meta); err != nil {
		return err
	}

	if delay <= 0 {
		return b.client.LPush(ctx, b.queueKey(), meta.ID).Err()
	}

	due := time.Now().Add(delay).UnixMilli()

	return b.client.ZAdd(ctx, b.delayedKey(), redis.Z{
		Score:  float64(due),
		Member: meta.ID,
	}).Err()
}

// Moves all due tasks from the delayed set into the queue.
func (b *Broker) promote(ctx context.Context) error {
	ids, err := b.client.ZRangeByScore(ctx, b.delayedKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(time.Now().UnixMilli(), 10),
	}).Result()
	if err != nil {
		return err
	}

	for _, id := range ids {
		// Only one of the concurrent consumers succeeds in removing the id
		removed, err := b.client.ZRem(ctx, b.delayedKey(), id).Result()
		if err != nil {
			return err
		}
		if removed == 0 {
			continue
		}
		if err := b.client.LPush(ctx, b.queueKey(), id).Err(); err != nil {
			return err
		}
	}

	return nil
}

// Waits at most timeout for the next task.
// Returns nil meta and nil error if there was no task.
func (b *Broker) Dequeue(ctx context.Context, timeout time.Duration) (*Meta, error) {
	if err := b.promote(ctx); err != nil {
		return nil, err
	}

	res, err := b.client.BRPop(ctx, timeout, b.queueKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	// res[0] is the key, res[1] is the value
	meta, err := b.meta(ctx, res[1])
	if err != nil {
		return nil, err
	}

	return meta, nil
}

func (b *Broker) meta(ctx context.Context, id string) (*Meta, error) {
	data, err := b.client.Get(ctx, metaKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	meta, err := json.Unmarshal[Meta](data)
	if err != nil {
		return nil, err
	}

	return &meta, nil
}

// Returns current state of the task.
func (b *Broker) Meta(ctx context.Context, id string) (*Meta, *Error.Status) {
	if err := uuid.Validate(id); err != nil {
		return nil, ErrTaskNotFound
	}

	meta, err := b.meta(ctx, id)
	if err != nil {
		if err == ErrTaskNotFound {
			return nil, ErrTaskNotFound
		}
		log.Error("Failed to get task "+id, err.Error(), nil)
		return nil, Error.StatusServiceUnavailable
	}

	return meta, nil
}

// Enqueues new task with the same name and args as the finished task with specified id.
func (b *Broker) Replay(ctx context.Context, id string) (*Meta, *Error.Status) {
	meta, err := b.Meta(ctx, id)
	if err != nil {
		return nil, err
	}

	if !meta.State.IsFinal() {
		return nil, ErrTaskNotFinished
	}

	log.Info("Replaying task "+meta.Name, meta.logMeta())

	return b.Enqueue(ctx, meta.Name, meta.Args)
}

package redis

import (
	"context"
	"errors"
	"fmt"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var cacheLogger = logger.NewSource("CACHE", logger.Default)

type Options struct {
	Addr             string
	Password         string
	DB               int
	SocketTimeout    time.Duration
	OperationTimeout time.Duration
	TTL              time.Duration
}

type Driver struct {
	client           *redis.Client
	operationTimeout time.Duration
	ttl              time.Duration
	isConnected      bool
}

func New(opt Options) *Driver {
	return &Driver{
		client: redis.NewClient(&redis.Options{
			Addr:        opt.Addr,
			Password:    opt.Password,
			DB:          opt.DB,
			ReadTimeout: opt.SocketTimeout,
		}),
		operationTimeout: opt.OperationTimeout,
		ttl:              opt.TTL,
	}
}

// Underlying client, may be shared with other redis based components.
func (d *Driver) Client() *redis.Client {
	return d.client
}

func (d *Driver) Connect(ctx context.Context) error {
	if d.isConnected {
		return errors.New("connection already established")
	}

	cacheLogger.Info("Connecting to cache...", nil)

	ctx, cancel := d.timeoutContext(ctx, 1)
	defer cancel()

	if err := d.client.Ping(ctx).Err(); err != nil {
		return err
	}

	cacheLogger.Info("Connecting to cache: OK", nil)

	d.isConnected = true

	return nil
}

func (d *Driver) Close() *Error.Status {
	cacheLogger.Info("Disconnecting from cache...", nil)

	if err := d.client.Close(); err != nil {
		return Error.NewStatusError(
			err.Error(),
			http.StatusInternalServerError,
		)
	}

	cacheLogger.Info("Disconnecting from cache: OK", nil)

	d.isConnected = false

	return nil
}

// Context with operation timeout multiplied by factor.
func (d *Driver) timeoutContext(ctx context.Context, factor int) (context.Context, context.CancelFunc) {
	if d.operationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.operationTimeout*time.Duration(factor))
}

// Logs given action and error.
// Returns err converted to *Error.Status.
func logAndConvert(action string, err error) *Error.Status {
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			cacheLogger.Error("Request failed", "TIMEOUT: "+action, nil)
			return Error.StatusTimeout
		}
		cacheLogger.Error("Request failed", "Failed to "+action+": "+err.Error(), nil)
		return Error.StatusInternalError
	}

	cacheLogger.Trace(action, nil)

	return nil
}

// Returns false on miss and on any error.
func (d *Driver) Get(ctx context.Context, key string) (string, bool) {
	ctx, cancel := d.timeoutContext(ctx, 1)
	defer cancel()

	cachedData, err := d.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		cacheLogger.Trace("Miss: "+key, nil)
		return "", false
	}

	return cachedData, logAndConvert("Get: "+key, err) == nil
}

// go-redis driver can handle only this types:
// string, bool, []byte, int, int64, float64, time.Time
func (d *Driver) Set(ctx context.Context, key string, value any) *Error.Status {
	switch value.(type) {
	case string, bool, []byte, int, int64, float64, time.Time:
	default:
		return logAndConvert("Set: "+key, fmt.Errorf("invalid cache value type: %T", value))
	}

	ctx, cancel := d.timeoutContext(ctx, 1)
	defer cancel()

	err := d.client.Set(ctx, key, value, d.ttl).Err()

	return logAndConvert("Set: "+key, err)
}

func (d *Driver) Delete(ctx context.Context, keys ...string) *Error.Status {
	ctx, cancel := d.timeoutContext(ctx, 1)
	defer cancel()

	err := d.client.Unlink(ctx, keys...).Err()

	return logAndConvert("Delete: "+strings.Join(keys, ","), err)
}

func (d *Driver) FlushAll(ctx context.Context) *Error.Status {
	ctx, cancel := d.timeoutContext(ctx, 1)
	defer cancel()

	err := d.client.FlushAll(ctx).Err()

	return logAndConvert("Flush All", err)
}

const deletePatternAction = "Delete Pattern: "

const unlinkBatchSize = 500

// Deletes all keys matching pattern.
// Keys are collected by a full SCAN first and unlinked afterwards in batches,
// so deletion doesn't shift the cursor of the ongoing scan.
func (d *Driver) DeletePattern(ctx context.Context, pattern string) *Error.Status {
	// scanning may take a while
	ctx, cancel := d.timeoutContext(ctx, 5)
	defer cancel()

	var keys []string

	iter := d.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return logAndConvert(deletePatternAction+pattern, err)
	}

	for batch := range slices.Chunk(keys, unlinkBatchSize) {
		if err := d.client.Unlink(ctx, batch...).Err(); err != nil {
			return logAndConvert(deletePatternAction+pattern, err)
		}
	}

	cacheLogger.Trace("Deleted "+strconv.Itoa(len(keys))+" keys with pattern: "+pattern, nil)

	return logAndConvert(deletePatternAction+pattern, nil)
}

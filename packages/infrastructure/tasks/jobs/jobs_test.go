package jobs

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/infrastructure/email"
	"hobbes/packages/infrastructure/tasks"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []email.Message
	err  *Error.Status
}

func (s *fakeSender) Send(ctx context.Context, msg email.Message) *Error.Status {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func TestAdd(t *testing.T) {
	cases := []struct {
		name string
		args string
		want int64
		err  error
	}{
		{"positive", `{"x":2,"y":3}`, 5, nil},
		{"negative", `{"x":-2,"y":-3}`, -5, nil},
		{"overflow", `{"x":9223372036854775807,"y":1}`, 0, ErrOverflow},
		{"underflow", `{"x":-9223372036854775808,"y":-1}`, 0, ErrOverflow},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, err := add(context.Background(), []byte(c.args))
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, result)
		})
	}

	_, err := add(context.Background(), []byte(`{"x":"1"}`))
	assert.Error(t, err)

	result, err := add(context.Background(), []byte(`{"x":`+"9223372036854775806"+`,"y":1}`))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), result)
}

func TestInventoryBooks(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		result, err := inventoryBooks(context.Background(), []byte(
			`{"title":"Dune","isbn":"978-0441013593","genre":"sci-fi","condition":"good"}`,
		))
		require.NoError(t, err)
		assert.Equal(t, true, result)
	})

	t.Run("blank field", func(t *testing.T) {
		_, err := inventoryBooks(context.Background(), []byte(
			`{"title":" ","isbn":"978-0441013593","genre":"sci-fi","condition":"good"}`,
		))
		require.Error(t, err)

		status, ok := err.(*Error.Status)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, status.Status())
	})

	t.Run("malformed args", func(t *testing.T) {
		_, err := inventoryBooks(context.Background(), []byte(`[]`))
		assert.Error(t, err)
	})
}

func TestSendEmail(t *testing.T) {
	args := []byte(`{"recipient":"reader@example.com","subject":"Hello","body":"New books arrived"}`)

	t.Run("without mailer", func(t *testing.T) {
		result, err := sendEmail(nil)(context.Background(), args)
		require.NoError(t, err)
		assert.Equal(t, true, result)
	})

	t.Run("with mailer", func(t *testing.T) {
		sender := new(fakeSender)

		_, err := sendEmail(sender)(context.Background(), args)
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "reader@example.com", sender.sent[0].To)
		assert.Equal(t, "Hello", sender.sent[0].Subject)
	})

	t.Run("delivery failure", func(t *testing.T) {
		sender := &fakeSender{err: Error.StatusServiceUnavailable}

		_, err := sendEmail(sender)(context.Background(), args)
		assert.Equal(t, Error.StatusServiceUnavailable, err)
	})

	t.Run("invalid recipient", func(t *testing.T) {
		sender := new(fakeSender)

		_, err := sendEmail(sender)(context.Background(), []byte(`{"recipient":"nope","subject":"Hello"}`))
		assert.Error(t, err)
		assert.Empty(t, sender.sent)
	})
}

func TestRegisteredJobs(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	broker := tasks.NewBroker(client, "jobs", time.Hour)
	worker := tasks.NewWorker(broker, tasks.Options{Workers: 2})

	Register(worker, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	meta, e := broker.Enqueue(context.Background(), Add, AddArgs{X: 40, Y: 2})
	require.Nil(t, e)

	require.Eventually(t, func() bool {
		m, err := broker.Meta(context.Background(), meta.ID)
		if err != nil || m.State != tasks.StateSuccess {
			return false
		}
		return string(m.Result) == "42"
	}, time.Second*10, time.Millisecond*20)
}

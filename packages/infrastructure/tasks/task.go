// Redis backed task queue with retries.
package tasks

import (
	"hobbes/packages/common/encoding/json"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"net/http"
	"time"
)

var log = logger.NewSource("TASKS", logger.Default)

type State string

const (
	StatePending State = "PENDING"
	StateStarted State = "STARTED"
	StateRetry   State = "RETRY"
	StateSuccess State = "SUCCESS"
	StateFailure State = "FAILURE"
)

// Reports whether task with this state won't be processed anymore.
func (s State) IsFinal() bool {
	return s == StateSuccess || s == StateFailure
}

// Task state as it's stored in the broker.
type Meta struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Args      json.RawMessage `json:"args"`
	State     State           `json:"state"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
	Retries   int             `json:"retries"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (m *Meta) logMeta() logger.Meta {
	return logger.Meta{
		"task_id": m.ID,
		"task":    m.Name,
	}
}

var ErrTaskNotFound = Error.NewStatusError(
	"Task wasn't found",
	http.StatusNotFound,
)

var ErrTaskNotFinished = Error.NewStatusError(
	"Task is still in progress and can't be replayed",
	http.StatusConflict,
)

// Tasks processed by the worker.
package jobs

import (
	"context"
	"errors"
	"hobbes/packages/common/encoding/json"
	"hobbes/packages/common/logger"
	"hobbes/packages/core/book"
	BookDTO "hobbes/packages/core/book/DTO"
	"hobbes/packages/infrastructure/email"
	"hobbes/packages/infrastructure/tasks"
)

var log = logger.NewSource("JOBS", logger.Default)

const (
	InventoryBooks = "inventory_books"
	SendEmail      = "send_email"
	Add            = "add"
)

type AddArgs struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// Registers all tasks in the worker.
// If mailer is nil, send_email only logs messages.
func Register(w *tasks.Worker, mailer email.Sender) {
	w.Register(InventoryBooks, inventoryBooks)
	w.Register(SendEmail, sendEmail(mailer))
	w.Register(Add, add)
}

func inventoryBooks(ctx context.Context, args json.RawMessage) (any, error) {
	payload, err := json.Unmarshal[BookDTO.Payload](args)
	if err != nil {
		return nil, err
	}

	if e := book.ValidatePayload(&payload); e != nil {
		return nil, e
	}

	log.Info("Book inventoried: "+payload.Title, logger.Meta{
		"isbn":      payload.ISBN,
		"genre":     payload.Genre,
		"condition": payload.Condition,
	})

	return true, nil
}

func sendEmail(mailer email.Sender) tasks.Handler {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		msg, err := json.Unmarshal[email.Message](args)
		if err != nil {
			return nil, err
		}

		if e := msg.Validate(); e != nil {
			return nil, e
		}

		if mailer == nil {
			log.Info("Sending email to "+msg.To+" with subject '"+msg.Subject+"'", nil)
			return true, nil
		}

		if e := mailer.Send(ctx, msg); e != nil {
			return nil, e
		}

		return true, nil
	}
}

var ErrOverflow = errors.New("integer overflow")

func add(ctx context.Context, args json.RawMessage) (any, error) {
	a, err := json.Unmarshal[AddArgs](args)
	if err != nil {
		return nil, err
	}

	sum := a.X + a.Y
	if (a.Y > 0 && sum < a.X) || (a.Y < 0 && sum > a.X) {
		return nil, ErrOverflow
	}

	return sum, nil
}

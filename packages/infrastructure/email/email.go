package email

import (
	"context"
	"errors"
	"fmt"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"hobbes/packages/common/structs"
	"net/http"
	"net/mail"
	"slices"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"
	"gopkg.in/gomail.v2"
)

var log = logger.NewSource("EMAIL", logger.Default)

type Message struct {
	To      string `json:"recipient"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (m Message) Validate() *Error.Status {
	if _, err := mail.ParseAddress(m.To); err != nil {
		return Error.NewStatusError("Invalid recipient: "+m.To, http.StatusBadRequest)
	}
	if m.Subject == "" {
		return Error.NewStatusError("Email subject is missing", http.StatusBadRequest)
	}
	return nil
}

type Sender interface {
	Send(ctx context.Context, msg Message) *Error.Status
}

type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	// Max time for the single email delivery, zero means no limit
	SendTimeout time.Duration
}

var validSMTPPorts = []int{587, 25, 465, 2525}

type Mailer struct {
	from    string
	timeout time.Duration
	send    func(msg *gomail.Message) error
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func NewMailer(opt Options) (*Mailer, error) {
	if !slices.Contains(validSMTPPorts, opt.Port) {
		return nil, errors.New("invalid SMTP port: " + strconv.Itoa(opt.Port))
	}

	dialer := gomail.NewDialer(opt.Host, opt.Port, opt.Username, opt.Password)

	return newMailer(opt.Username, opt.SendTimeout, dialer.DialAndSend), nil
}

func newMailer(from string, timeout time.Duration, send func(msg ...*gomail.Message) error) *Mailer {
	return &Mailer{
		from:    from,
		timeout: timeout,
		send: func(msg *gomail.Message) error {
			return send(msg)
		},
		breaker: gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:        "SMTP",
			Interval:    time.Minute,
			Timeout:     time.Second * 30,
			MaxRequests: 3,
		}),
	}
}

func (m *Mailer) Send(ctx context.Context, msg Message) *Error.Status {
	if err := msg.Validate(); err != nil {
		return err
	}

	html, err := renderHTML(msg)
	if err != nil {
		return Error.StatusInternalError
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/plain", msg.Body)
	message.AddAlternative("text/html", html)

	meta := logger.Meta{"recipient": msg.To}

	log.Trace("Sending email...", meta)

	_, err = m.breaker.Execute(func() (struct{}, error) {
		return structs.WithTimeout(ctx, m.timeout, func(context.Context) (struct{}, error) {
			return struct{}{}, m.send(message)
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			log.Error("Email has been blocked by circuit breaker", err.Error(), meta)
			return Error.StatusServiceUnavailable
		case err == Error.StatusTimeout:
			log.Error("Email sending timeout", fmt.Sprintf("exceeded %s", m.timeout), meta)
			return Error.StatusTimeout
		default:
			log.Error("Failed to send email", err.Error(), meta)
			return Error.StatusServiceUnavailable
		}
	}

	log.Info("Email sent to "+msg.To, nil)

	return nil
}

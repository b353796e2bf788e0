package main

import (
	"hobbes/cmd/app"
	"hobbes/packages/common/config"
	"hobbes/packages/common/logger"
	"hobbes/packages/infrastructure/email"
	"hobbes/packages/infrastructure/tasks"
	"hobbes/packages/infrastructure/tasks/jobs"

	"github.com/akamensky/argparse"
)

var log = logger.NewSource("WORKER", logger.Default)

func main() {
	parser := argparse.NewParser("hobbes-worker", "Background tasks worker of the hobbes inventory service")
	args := app.RegisterArgs(parser)
	noEmail := parser.Flag("n", "no-email", &argparse.Options{
		Help: "Don't deliver emails, only log them",
	})
	app.ParseArgs(parser)

	app.StartInit()
	app.InitDefault(args)
	defer app.StopLogger()

	ctx, stop := app.SignalContext()
	defer stop()

	cacheDriver := app.ConnectCache(ctx)

	worker := tasks.NewWorker(app.NewBroker(cacheDriver), tasks.Options{
		Workers:      config.Tasks.Workers,
		MaxRetries:   config.Tasks.MaxRetries,
		Countdown:    config.Tasks.Countdown(),
		RetryBackoff: config.Tasks.RetryBackoff,
	})

	var mailer email.Sender
	if !*noEmail {
		m, err := email.NewMailer(email.Options{
			Host:        config.Email.SmtpHost,
			Port:        config.Email.SmtpPort,
			Username:    config.Secret.MailerEmail,
			Password:    config.Secret.MailerEmailPassword,
			SendTimeout: config.Email.SendTimeout(),
		})
		if err != nil {
			log.Fatal("Failed to create mailer", err.Error(), nil)
		}
		mailer = m
	}

	jobs.Register(worker, mailer)

	app.EndInit()

	log.Info("Worker started, queue: "+config.Tasks.Queue, nil)

	if err := worker.Run(ctx); err != nil {
		log.Error("Worker stopped with error", err.Error(), nil)
	}

	app.Shutdown(nil, cacheDriver)
}

package components

import (
	"context"

	"stayhub/internal/infra/mail"
	"stayhub/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(
			mail.NewSMTPMailer,
			fx.As(new(worker.Mailer)),
		),
		worker.NewDispatcher,
	),
	fx.Invoke(startDispatcher),
)

func startDispatcher(lc fx.Lifecycle, dispatcher *worker.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return dispatcher.Start()
		},
		OnStop: func(_ context.Context) error {
			dispatcher.Stop()
			return nil
		},
	})
}

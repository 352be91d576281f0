package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"paygate/config"
	deliverycontext "paygate/internal/delivery/context"
	"paygate/internal/domain/entity"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/service"
	"paygate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// webhookService implements the WebhookUsecase interface.
type webhookService struct {
	ledger    usecase.LedgerUsecase
	publisher service.EventPublisher
	timeout   time.Duration
	inflight  sync.WaitGroup
	logger    *slog.Logger
}

// WebhookServiceParams holds dependencies for WebhookService, injected by Fx.
type WebhookServiceParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Ledger    usecase.LedgerUsecase
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewWebhookService is the constructor for webhookService. With a disabled
// publisher, events are settled on a background goroutine that is drained
// when the application stops.
func NewWebhookService(params WebhookServiceParams) usecase.WebhookUsecase {
	srv := &webhookService{
		ledger:    params.Ledger,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Settlement != nil {
		srv.timeout = params.Config.Settlement.Timeout
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.drain,
	})

	return srv
}

func (srv *webhookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch returns immediately. The event outlives the request, so it runs on
// a context detached from the request's cancellation.
func (srv *webhookService) Dispatch(ctx context.Context, event *service.ChargeEvent) {
	detached := context.WithoutCancel(ctx)

	srv.inflight.Add(1)
	go func() {
		defer srv.inflight.Done()

		if srv.publisher.Enabled() {
			err := srv.publisher.PublishChargeEvent(detached, event)
			if err == nil {
				return
			}
			srv.log(detached).Warn("Failed to publish charge event, settling in-process",
				slog.String("tx_ref", event.Reference),
				slog.Any("error", err),
			)
		}

		srv.settle(detached, event)
	}()
}

func (srv *webhookService) settle(ctx context.Context, event *service.ChargeEvent) {
	if srv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	if err := srv.ProcessChargeEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to settle charge event",
			slog.String("tx_ref", event.Reference),
			slog.Any("error", err),
		)
	}
}

// ProcessChargeEvent completes the transaction for a successful charge.
// Redelivery rewrites the same terminal status.
func (srv *webhookService) ProcessChargeEvent(ctx context.Context, event *service.ChargeEvent) error {
	logger := srv.log(ctx).With(slog.String("tx_ref", event.Reference))

	if !event.IsSuccessfulCharge() {
		logger.Info("Ignoring charge event",
			slog.String("event", event.Event),
			slog.String("status", event.Status),
		)

		return nil
	}

	if _, err := srv.ledger.FetchTransactionByReference(ctx, event.Reference); err != nil {
		if errors.Is(err, domainerrors.ErrTransactionNotFound) {
			logger.Warn("No transaction for charge reference")

			return nil
		}

		return errors.Wrap(err, "failed to look up transaction")
	}

	if _, err := srv.ledger.CompleteTransaction(ctx, event.Reference, entity.TransactionStatusSuccessful); err != nil {
		if errors.Is(err, domainerrors.ErrTransactionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to complete transaction")
	}

	logger.Info("Charge settled")

	return nil
}

// drain waits for in-process settlements or until ctx ends.
func (srv *webhookService) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		srv.logger.Warn("Charge settlements still running at shutdown")

		return errors.WithStack(ctx.Err())
	}
}

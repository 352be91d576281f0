package impl

import (
	"context"
	"testing"
	"time"

	"paygate/config"
	"paygate/internal/domain/entity"
	domainerrors "paygate/internal/domain/errors"
	"paygate/internal/domain/service"
	mockService "paygate/internal/mocks/service"
	mockUsecase "paygate/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newWebhook(t *testing.T, ledger *mockUsecase.MockLedgerUsecase, publisher service.EventPublisher) *webhookService {
	cfg := &config.Config{Settlement: &config.SettlementConfig{Timeout: time.Second}}

	return NewWebhookService(WebhookServiceParams{
		Lc:        fxtest.NewLifecycle(t),
		Config:    cfg,
		Ledger:    ledger,
		Publisher: publisher,
		Logger:    newTestLogger(),
	}).(*webhookService)
}

// disabledPublisher stands in for the unconfigured Pub/Sub publisher.
func disabledPublisher(t *testing.T) *mockService.MockEventPublisher {
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().Enabled().Return(false).Maybe()

	return publisher
}

func successEvent(ref string) *service.ChargeEvent {
	return &service.ChargeEvent{
		Event:     service.ChargeEventCompleted,
		Reference: ref,
		Status:    service.ChargeStatusSuccessful,
	}
}

func TestWebhookService_ProcessChargeEvent_Completes(t *testing.T) {
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	srv := newWebhook(t, ledger, disabledPublisher(t))
	ctx := context.Background()

	ledger.EXPECT().FetchTransactionByReference(ctx, "ref-1").Return(&entity.Transaction{Reference: "ref-1"}, nil)
	ledger.EXPECT().CompleteTransaction(ctx, "ref-1", entity.TransactionStatusSuccessful).Return(&entity.Transaction{}, nil)

	require.NoError(t, srv.ProcessChargeEvent(ctx, successEvent("ref-1")))
}

func TestWebhookService_ProcessChargeEvent_Idempotent(t *testing.T) {
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	srv := newWebhook(t, ledger, disabledPublisher(t))
	ctx := context.Background()

	ledger.EXPECT().FetchTransactionByReference(ctx, "ref-1").Return(&entity.Transaction{Reference: "ref-1"}, nil).Times(2)
	ledger.EXPECT().CompleteTransaction(ctx, "ref-1", entity.TransactionStatusSuccessful).Return(&entity.Transaction{}, nil).Times(2)

	require.NoError(t, srv.ProcessChargeEvent(ctx, successEvent("ref-1")))
	require.NoError(t, srv.ProcessChargeEvent(ctx, successEvent("ref-1")))
}

func TestWebhookService_ProcessChargeEvent_IgnoredEvents(t *testing.T) {
	events := []*service.ChargeEvent{
		{Event: "transfer.completed", Reference: "ref-1", Status: service.ChargeStatusSuccessful},
		{Event: service.ChargeEventCompleted, Reference: "ref-1", Status: "failed"},
		{Reference: "ref-1"},
	}

	for _, event := range events {
		ledger := mockUsecase.NewMockLedgerUsecase(t)
		srv := newWebhook(t, ledger, disabledPublisher(t))

		assert.NoError(t, srv.ProcessChargeEvent(context.Background(), event))
	}
}

func TestWebhookService_ProcessChargeEvent_UnknownReference(t *testing.T) {
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	srv := newWebhook(t, ledger, disabledPublisher(t))
	ctx := context.Background()

	ledger.EXPECT().FetchTransactionByReference(ctx, "ghost").Return(nil, domainerrors.ErrTransactionNotFound)

	assert.NoError(t, srv.ProcessChargeEvent(ctx, successEvent("ghost")))
}

func TestWebhookService_ProcessChargeEvent_StoreFailureSurfaces(t *testing.T) {
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	srv := newWebhook(t, ledger, disabledPublisher(t))
	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find")

	ledger.EXPECT().FetchTransactionByReference(ctx, "ref-1").Return(nil, storeErr)

	err := srv.ProcessChargeEvent(ctx, successEvent("ref-1"))
	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
}

func TestWebhookService_Dispatch_InProcess(t *testing.T) {
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	srv := newWebhook(t, ledger, disabledPublisher(t))

	ledger.EXPECT().FetchTransactionByReference(mock.Anything, "ref-1").Return(&entity.Transaction{}, nil)
	ledger.EXPECT().CompleteTransaction(mock.Anything, "ref-1", entity.TransactionStatusSuccessful).Return(&entity.Transaction{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	srv.Dispatch(ctx, successEvent("ref-1"))
	// Request cancellation must not abort settlement.
	cancel()

	require.NoError(t, srv.drain(context.Background()))
}

func TestWebhookService_Dispatch_Published(t *testing.T) {
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)
	srv := newWebhook(t, ledger, publisher)
	event := successEvent("ref-1")

	publisher.EXPECT().Enabled().Return(true)
	publisher.EXPECT().PublishChargeEvent(mock.Anything, event).Return(nil)

	srv.Dispatch(context.Background(), event)

	require.NoError(t, srv.drain(context.Background()))
}

func TestWebhookService_Dispatch_PublishFailureFallsBack(t *testing.T) {
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)
	srv := newWebhook(t, ledger, publisher)
	event := successEvent("ref-1")

	publisher.EXPECT().Enabled().Return(true)
	publisher.EXPECT().PublishChargeEvent(mock.Anything, event).Return(errors.New("topic not found"))
	ledger.EXPECT().FetchTransactionByReference(mock.Anything, "ref-1").Return(&entity.Transaction{}, nil)
	ledger.EXPECT().CompleteTransaction(mock.Anything, "ref-1", entity.TransactionStatusSuccessful).Return(&entity.Transaction{}, nil)

	srv.Dispatch(context.Background(), event)

	require.NoError(t, srv.drain(context.Background()))
}

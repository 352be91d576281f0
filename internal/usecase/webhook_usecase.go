package usecase

import (
	"context"

	"paygate/internal/domain/service"
)

// WebhookUsecase settles ledger rows from gateway charge notifications.
type WebhookUsecase interface {
	// Dispatch hands an accepted event to settlement without waiting for it.
	Dispatch(ctx context.Context, event *service.ChargeEvent)
	// ProcessChargeEvent completes the matching transaction for a successful
	// charge. Ignored events and unknown references are not errors.
	ProcessChargeEvent(ctx context.Context, event *service.ChargeEvent) error
}

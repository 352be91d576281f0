package service

import (
	"context"
	"time"
)

// Gateway webhook values that settle a transaction.
const (
	ChargeEventCompleted   = "charge.completed"
	ChargeStatusSuccessful = "successful"
)

// ChargeEvent is an accepted gateway webhook handed to settlement.
type ChargeEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Event      string    `json:"event"`
	Reference  string    `json:"tx_ref"`
	Status     string    `json:"status"`
	GatewayID  int64     `json:"gateway_id,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// IsSuccessfulCharge reports whether the event reports a completed, successful charge.
func (e *ChargeEvent) IsSuccessfulCharge() bool {
	return e.Event == ChargeEventCompleted && e.Status == ChargeStatusSuccessful
}

// EventPublisher hands charge events to the settlement worker
type EventPublisher interface {
	// PublishChargeEvent publishes a charge event for async settlement
	PublishChargeEvent(ctx context.Context, event *ChargeEvent) error

	// Enabled reports whether events leave the process; a disabled publisher
	// leaves settlement to the caller.
	Enabled() bool

	// Close releases any resources held by the publisher
	Close() error
}

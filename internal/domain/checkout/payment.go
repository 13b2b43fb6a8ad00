package checkout

import (
	"context"

	"turfbook/internal/domain/booking"

	"github.com/google/uuid"
)

type PaymentOutcome string

const (
	PaymentConfirmed PaymentOutcome = "confirmed"
	PaymentCancelled PaymentOutcome = "cancelled"
	PaymentFailed    PaymentOutcome = "failed"
)

func (o PaymentOutcome) IsValid() bool {
	switch o {
	case PaymentConfirmed, PaymentCancelled, PaymentFailed:
		return true
	default:
		return false
	}
}

type PaymentRequest struct {
	BookingID uuid.UUID
	Amount    booking.Money
}

// PaymentGateway is the external payment collaborator. This core defines
// the request/response shape only; transaction logic lives behind it.
type PaymentGateway interface {
	Charge(ctx context.Context, req PaymentRequest) (PaymentOutcome, error)
}

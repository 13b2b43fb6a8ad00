package payment

import (
	"context"
	"log/slog"

	"turfbook/internal/domain/checkout"
)

// SandboxGateway stands in for the external payment collaborator. It
// confirms every charge; real transaction logic never lives in this
// service.
type SandboxGateway struct{}

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{}
}

func (g *SandboxGateway) Charge(_ context.Context, req checkout.PaymentRequest) (checkout.PaymentOutcome, error) {
	slog.Info("sandbox payment charged",
		"booking_id", req.BookingID.String(),
		"amount_paise", req.Amount.Paise(),
	)
	return checkout.PaymentConfirmed, nil
}

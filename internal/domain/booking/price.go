package booking

import "errors"

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

type PaymentMethod string

const (
	// PayAdvance charges a flat advance now and the remainder at the venue.
	PayAdvance PaymentMethod = "advance"
	// PayFull charges the whole slot price up front.
	PayFull PaymentMethod = "full"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PayAdvance, PayFull:
		return true
	default:
		return false
	}
}

// Policy holds the payment-policy constants. AdvanceAmount is a flat
// per-booking figure, independent of duration.
type Policy struct {
	AdvanceAmount  Money
	ConvenienceFee Money
}

func NewPolicy(advanceAmount, convenienceFee Money) Policy {
	return Policy{
		AdvanceAmount:  advanceAmount,
		ConvenienceFee: convenienceFee,
	}
}

// Breakdown is the derived price record for a selection under one payment
// method. Pure function of its inputs; recomputed on every change.
type Breakdown struct {
	SlotPrice      Money
	Discount       Money
	Method         PaymentMethod
	AdvanceAmount  Money
	PayableAtVenue Money
	ConvenienceFee Money
	PayableAmount  Money
}

// Quote computes the breakdown for a selection. discount is the already
// validated coupon amount; it never exceeds the slot price.
func (p Policy) Quote(sel Selection, method PaymentMethod, discount Money) (Breakdown, error) {
	if !method.IsValid() {
		return Breakdown{}, ErrInvalidPaymentMethod
	}

	slotPrice := sel.SlotPrice()
	if discount.Paise() > slotPrice.Paise() {
		discount = slotPrice
	}

	bd := Breakdown{
		SlotPrice:      slotPrice,
		Discount:       discount,
		Method:         method,
		ConvenienceFee: p.ConvenienceFee,
	}

	switch method {
	case PayAdvance:
		bd.AdvanceAmount = p.AdvanceAmount
		bd.PayableAtVenue = slotPrice.SubFloor(p.AdvanceAmount)
		bd.PayableAmount = p.AdvanceAmount.Add(p.ConvenienceFee)
	case PayFull:
		bd.AdvanceAmount = NewMoney(0)
		bd.PayableAtVenue = NewMoney(0)
		bd.PayableAmount = slotPrice.SubFloor(discount).Add(p.ConvenienceFee)
	}

	return bd, nil
}

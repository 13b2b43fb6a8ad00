package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrAmbiguousDiscount      = errors.New("discount must be either a fixed amount or a percentage")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	amountOffPaise *int64
	percentOff     *float64
}

func NewFixedDiscount(amountOffPaise int64) (Discount, error) {
	if amountOffPaise < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOffPaise: &amountOffPaise}, nil
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(amountOffPaise *int64, percentOff *float64) (Discount, error) {
	if (amountOffPaise != nil) == (percentOff != nil) {
		return Discount{}, ErrAmbiguousDiscount
	}
	if amountOffPaise != nil {
		return NewFixedDiscount(*amountOffPaise)
	}
	return NewPercentageDiscount(*percentOff)
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) AmountOffPaise() int64 {
	if d.amountOffPaise != nil {
		return *d.amountOffPaise
	}
	return 0
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

// AmountFor returns the discount value for a price, capped at the price.
func (d Discount) AmountFor(pricePaise int64) int64 {
	if d.IsPercentage() {
		return int64(float64(pricePaise) * (d.PercentOff() / 100.0))
	}
	if d.AmountOffPaise() > pricePaise {
		return pricePaise
	}
	return d.AmountOffPaise()
}

package promocode

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrEmptyCode                = errors.New("code must not be empty")
	ErrEmptyInfluencerName      = errors.New("influencer name must not be empty")
	ErrInvalidDiscountType      = errors.New("discount type must be percentage or amount")
	ErrDiscountValueNotNumber   = errors.New("discount value must be a finite number")
	ErrDiscountValueNotPositive = errors.New("discount value must be positive")
	ErrPercentageNotInteger     = errors.New("percentage discount must be a whole number")
	ErrPercentageOutOfRange     = errors.New("percentage discount must be between 1 and 100")
	ErrAmountOutOfRange         = errors.New("amount discount must be between 0.01 and 10000.00")
	ErrInvalidDuration          = errors.New("duration must be once, forever or repeating")
	ErrCodeAlreadyInactive      = errors.New("promo code is already inactive")
)

// Code is the canonical form of a promotional code: upper-cased and trimmed.
// Uniqueness comparisons and storage always use this form.
type Code string

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Code(""), ErrEmptyCode
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountAmount:
		return true
	default:
		return false
	}
}

func (t DiscountType) String() string {
	return string(t)
}

type Duration string

const (
	DurationOnce      Duration = "once"
	DurationForever   Duration = "forever"
	DurationRepeating Duration = "repeating"
)

func (d Duration) IsValid() bool {
	switch d {
	case DurationOnce, DurationForever, DurationRepeating:
		return true
	default:
		return false
	}
}

func (d Duration) String() string {
	return string(d)
}

func NewDuration(s string) (Duration, error) {
	d := Duration(s)
	if !d.IsValid() {
		return "", ErrInvalidDuration
	}
	return d, nil
}

const (
	minAmountDiscount = 0.01
	maxAmountDiscount = 10000.00
	minPercentage     = 1
	maxPercentage     = 100
)

type Discount struct {
	kind  DiscountType
	value float64
}

// NewDiscount validates a discount against the rules for its type.
// Amount values are rounded half-up to cents before the range check so that
// boundary inputs like 0.009 and 10000.004 are judged on their stored form.
// Percentage values are never rounded; non-integers are rejected outright.
func NewDiscount(kind string, value float64) (Discount, error) {
	t := DiscountType(kind)
	if !t.IsValid() {
		return Discount{}, ErrInvalidDiscountType
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Discount{}, ErrDiscountValueNotNumber
	}
	if value <= 0 {
		return Discount{}, ErrDiscountValueNotPositive
	}

	switch t {
	case DiscountPercentage:
		if value != math.Trunc(value) {
			return Discount{}, ErrPercentageNotInteger
		}
		if value < minPercentage || value > maxPercentage {
			return Discount{}, ErrPercentageOutOfRange
		}
	case DiscountAmount:
		value = roundToCents(value)
		if value < minAmountDiscount || value > maxAmountDiscount {
			return Discount{}, ErrAmountOutOfRange
		}
	}

	return Discount{kind: t, value: value}, nil
}

func ReconstructDiscount(kind DiscountType, value float64) Discount {
	return Discount{kind: kind, value: value}
}

func (d Discount) Type() DiscountType { return d.kind }
func (d Discount) Value() float64     { return d.value }

func (d Discount) IsPercentage() bool {
	return d.kind == DiscountPercentage
}

// math.Round rounds half away from zero, which is round-half-up for the
// positive values allowed here.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FieldOf maps a validation error to the request field it refers to.
// Handlers use it to build field-level error details.
func FieldOf(err error) string {
	switch {
	case errors.Is(err, ErrEmptyCode):
		return "code"
	case errors.Is(err, ErrEmptyInfluencerName):
		return "influencerName"
	case errors.Is(err, ErrInvalidDiscountType):
		return "discountType"
	case errors.Is(err, ErrDiscountValueNotNumber),
		errors.Is(err, ErrDiscountValueNotPositive),
		errors.Is(err, ErrPercentageNotInteger),
		errors.Is(err, ErrPercentageOutOfRange),
		errors.Is(err, ErrAmountOutOfRange):
		return "discountValue"
	case errors.Is(err, ErrInvalidDuration):
		return "duration"
	default:
		return ""
	}
}

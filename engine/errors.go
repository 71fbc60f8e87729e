package engine

import (
	"errors"
	"fmt"
	"strconv"

	"lightning-exchange/domain"
)

// Sentinel reasons a submission can be rejected for. Callers match on
// the "Invalid order: <reason>" prefix, so these strings are exact,
// not merely descriptive.
var (
	ErrInvalidQuantity = errors.New("Quantity must be greater than 0")
	ErrInvalidSymbol   = errors.New("Symbol cannot be empty")
	ErrInvalidPrice    = errors.New("Price must be greater than 0")
	ErrMissingPrice    = errors.New("Limit order requires price")
)

// ValidationError is returned by SubmitOrder when an order fails
// admission. It wraps one of the sentinels above so callers can both
// errors.Is against a specific reason and print the diagnostic
// message verbatim.
type ValidationError struct {
	Reason   error
	Symbol   string
	Side     domain.Side
	Price    *int64
	Quantity int64
}

func (e *ValidationError) Error() string {
	price := "none"
	if e.Price != nil {
		price = strconv.FormatInt(*e.Price, 10)
	}
	return fmt.Sprintf("Invalid order: %s; (symbol=%s, side=%s, price=%s, quantity=%d)",
		e.Reason.Error(), e.Symbol, e.Side, price, e.Quantity)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

func newValidationError(reason error, o domain.Order) *ValidationError {
	return &ValidationError{
		Reason:   reason,
		Symbol:   o.Symbol,
		Side:     o.Side,
		Price:    o.Price,
		Quantity: o.Quantity,
	}
}

// validate runs the admission checks in a fixed order, short-circuiting
// on the first failure. Validation happens before id/timestamp
// assignment, so a rejected order never advances the id counter.
func validate(o domain.Order) *ValidationError {
	if o.Quantity <= 0 {
		return newValidationError(ErrInvalidQuantity, o)
	}
	if o.Symbol == "" {
		return newValidationError(ErrInvalidSymbol, o)
	}
	if o.Type == domain.Limit {
		if o.Price == nil {
			return newValidationError(ErrMissingPrice, o)
		}
		if *o.Price <= 0 {
			return newValidationError(ErrInvalidPrice, o)
		}
	}
	return nil
}

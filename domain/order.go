// Package domain holds the value types shared by the order book and
// the matching engine: orders, trades, and their enumerations.
package domain

import "fmt"

// Side is which side of the book an order rests on.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// OrderType distinguishes market orders (no price, never rest) from
// limit orders (price cap/floor, unfilled remainder rests).
type OrderType int

const (
	Limit OrderType = iota
	Market
)

func (t OrderType) String() string {
	switch t {
	case Limit:
		return "LIMIT"
	case Market:
		return "MARKET"
	default:
		return "UNKNOWN"
	}
}

// Order is a single submission. ID and Timestamp are engine-assigned;
// callers build orders with NewLimitOrder/NewMarketOrder, which leave
// both zero. Price is nil for market orders and holds a positive
// minor-unit value for limit orders.
type Order struct {
	ID        uint64
	Symbol    string
	Side      Side
	Type      OrderType
	Price     *int64 // present iff Type == Limit
	Quantity  int64  // mutated downward during matching
	Timestamp int64  // nanoseconds since epoch, engine-assigned
}

// NewLimitOrder builds a limit order with ID and Timestamp unset.
func NewLimitOrder(symbol string, side Side, price, quantity int64) Order {
	p := price
	return Order{
		Symbol:   symbol,
		Side:     side,
		Type:     Limit,
		Price:    &p,
		Quantity: quantity,
	}
}

// NewMarketOrder builds a market order with ID and Timestamp unset.
func NewMarketOrder(symbol string, side Side, quantity int64) Order {
	return Order{
		Symbol:   symbol,
		Side:     side,
		Type:     Market,
		Quantity: quantity,
	}
}

// String renders an order for diagnostics: formatting is not a
// correctness concern and is observable only by a driver.
func (o Order) String() string {
	if o.Type == Market {
		return fmt.Sprintf("Order #%d: %s MARKET %d qty", o.ID, o.Side, o.Quantity)
	}
	price := int64(0)
	if o.Price != nil {
		price = *o.Price
	}
	return fmt.Sprintf("Order #%d: %s LIMIT %d %d qty", o.ID, o.Side, price, o.Quantity)
}

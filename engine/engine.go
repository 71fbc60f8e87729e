// Package engine is the facade external collaborators submit orders
// and cancellations through. It owns a per-symbol book registry, the
// order-id and trade-sequence counters, and the admission validation
// that precedes matching.
package engine

import (
	"time"

	"lightning-exchange/domain"
	"lightning-exchange/matching"
	"lightning-exchange/orderbook"
)

// Engine is a single, independent matching engine instance. It is not
// a process-wide singleton: every Engine has its own id/sequence
// counters and its own books, and neither resets nor persists across
// process restarts.
type Engine struct {
	books        map[string]*orderbook.OrderBook
	nextOrderID  uint64
	nextTradeSeq int64
	now          func() time.Time
}

// New creates an empty engine. next_order_id starts at 1.
func New() *Engine {
	return &Engine{
		books:        make(map[string]*orderbook.OrderBook),
		nextOrderID:  1,
		nextTradeSeq: 1,
		now:          time.Now,
	}
}

// SubmitOrder validates o, assigns it an id and timestamp, dispatches
// it to the book for its symbol (creating the book on first use), and
// returns the trades produced, in the order they occurred. Empty
// trades with a nil error is a valid, successful outcome. A rejected
// order never advances the id counter.
func (e *Engine) SubmitOrder(o domain.Order) ([]domain.Trade, error) {
	if verr := validate(o); verr != nil {
		return nil, verr
	}

	o.ID = e.nextOrderID
	e.nextOrderID++
	o.Timestamp = e.now().UnixNano()

	book := e.bookFor(o.Symbol)
	trades := matching.Match(book, &o, e.nextTradeTimestamp)
	return trades, nil
}

// CancelOrder removes orderID from symbol's book, if present. Unknown
// symbol or unknown id both return false; it never fails.
func (e *Engine) CancelOrder(symbol string, orderID uint64) bool {
	book, ok := e.books[symbol]
	if !ok {
		return false
	}
	return book.CancelOrder(orderID)
}

// GetOrderBook returns symbol's book, or ok=false if no order has
// ever been submitted for it.
func (e *Engine) GetOrderBook(symbol string) (*orderbook.OrderBook, bool) {
	book, ok := e.books[symbol]
	return book, ok
}

func (e *Engine) bookFor(symbol string) *orderbook.OrderBook {
	book, ok := e.books[symbol]
	if !ok {
		book = orderbook.NewOrderBook(symbol)
		e.books[symbol] = book
	}
	return book
}

// nextTradeTimestamp hands out the trade-sequence value recorded on
// each Trade. It is a plain monotonic counter rather than a
// wall-clock call per match, which keeps ordering deterministic.
func (e *Engine) nextTradeTimestamp() int64 {
	ts := e.nextTradeSeq
	e.nextTradeSeq++
	return ts
}

// Package matching implements the price-time priority sweep: given an
// incoming order and the book it crosses, it walks the opposite side's
// candidate price levels best-first, consumes FIFO queues, and emits
// trades at the resting side's price.
package matching

import (
	"lightning-exchange/domain"
	"lightning-exchange/orderbook"
)

// Match applies order against book: it sweeps opposite-side liquidity,
// mutates order.Quantity downward as fills occur, and inserts any
// unfilled limit remainder into the same-side book. A market order's
// unfilled remainder is discarded; it never rests. nextTimestamp
// supplies each trade's timestamp/sequence value.
func Match(book *orderbook.OrderBook, order *domain.Order, nextTimestamp func() int64) []domain.Trade {
	var trades []domain.Trade
	if order.Side == domain.Buy {
		trades = matchBuy(book, order, nextTimestamp)
	} else {
		trades = matchSell(book, order, nextTimestamp)
	}

	if order.Quantity > 0 && order.Type == domain.Limit {
		book.AddOrder(*order)
	}
	return trades
}

// matchBuy sweeps ask levels ascending. For a limit buy at price p,
// candidates are asks <= p; for a market buy, all asks.
func matchBuy(book *orderbook.OrderBook, order *domain.Order, nextTimestamp func() int64) []domain.Trade {
	var trades []domain.Trade
	for _, price := range book.AskLevels(order.Price) {
		if order.Quantity == 0 {
			break
		}
		for order.Quantity > 0 {
			resting, ok := book.PopAskHead(price)
			if !ok {
				break
			}
			qty := min(order.Quantity, resting.Quantity)
			trades = append(trades, domain.NewTrade(order.ID, resting.ID, price, qty, nextTimestamp()))
			order.Quantity -= qty
			resting.Quantity -= qty
			if resting.Quantity > 0 {
				// Head wasn't exhausted, so the aggressor must be.
				// This level can't produce any further match.
				book.PushAskFront(resting)
				break
			}
		}
	}
	return trades
}

// matchSell sweeps bid levels descending. For a limit sell at price
// p, candidates are bids >= p; for a market sell, all bids.
func matchSell(book *orderbook.OrderBook, order *domain.Order, nextTimestamp func() int64) []domain.Trade {
	var trades []domain.Trade
	for _, price := range book.BidLevels(order.Price) {
		if order.Quantity == 0 {
			break
		}
		for order.Quantity > 0 {
			resting, ok := book.PopBidHead(price)
			if !ok {
				break
			}
			qty := min(order.Quantity, resting.Quantity)
			trades = append(trades, domain.NewTrade(resting.ID, order.ID, price, qty, nextTimestamp()))
			order.Quantity -= qty
			resting.Quantity -= qty
			if resting.Quantity > 0 {
				book.PushBidFront(resting)
				break
			}
		}
	}
	return trades
}

// Package orderbook implements the per-symbol price-time priority
// book: two ordered price maps (bids descending, asks ascending),
// each holding FIFO queues of resting orders, plus a location index
// for O(log P) cancellation.
package orderbook

import (
	"container/list"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"

	"lightning-exchange/domain"
)

// priceLevel is all resting orders at one (symbol, side, price),
// ordered FIFO. It exists only while its queue is non-empty. The
// OrderBook eagerly drops a level's tree entry once its queue drains.
type priceLevel struct {
	price  int64
	orders *list.List // FIFO queue of domain.Order
}

func newPriceLevel(price int64) *priceLevel {
	return &priceLevel{price: price, orders: list.New()}
}

// location is where a resting order physically lives, recorded so a
// cancel can reach the right queue in O(log P) instead of scanning
// every level on both sides.
type location struct {
	side  domain.Side
	price int64
}

// OrderBook is one symbol's book.
type OrderBook struct {
	symbol string
	bids   *rbt.Tree[int64, *priceLevel] // best (highest) first
	asks   *rbt.Tree[int64, *priceLevel] // best (lowest) first
	index  map[uint64]location
}

// NewOrderBook creates an empty book for symbol.
func NewOrderBook(symbol string) *OrderBook {
	descending := func(a, b int64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	}
	ascending := func(a, b int64) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	return &OrderBook{
		symbol: symbol,
		bids:   rbt.NewWith[int64, *priceLevel](descending),
		asks:   rbt.NewWith[int64, *priceLevel](ascending),
		index:  make(map[uint64]location),
	}
}

// Symbol returns the instrument this book is for.
func (b *OrderBook) Symbol() string {
	return b.symbol
}

// AddOrder appends order to the back of its (side, price) queue,
// creating the level if absent. Preconditions: Type == Limit,
// Price != nil, Quantity > 0; anything else is silently ignored.
func (b *OrderBook) AddOrder(o domain.Order) {
	if o.Type != domain.Limit || o.Price == nil || o.Quantity <= 0 {
		return
	}
	tree := b.treeFor(o.Side)
	level, ok := tree.Get(*o.Price)
	if !ok {
		level = newPriceLevel(*o.Price)
		tree.Put(*o.Price, level)
	}
	level.orders.PushBack(o)
	b.index[o.ID] = location{side: o.Side, price: *o.Price}
}

// CancelOrder removes orderID from whichever queue the location
// index says it lives in. Returns false if the id is unknown.
func (b *OrderBook) CancelOrder(orderID uint64) bool {
	loc, ok := b.index[orderID]
	if !ok {
		return false
	}
	delete(b.index, orderID)

	tree := b.treeFor(loc.side)
	level, ok := tree.Get(loc.price)
	if !ok {
		return true
	}
	for e := level.orders.Front(); e != nil; e = e.Next() {
		if e.Value.(domain.Order).ID == orderID {
			level.orders.Remove(e)
			break
		}
	}
	if level.orders.Len() == 0 {
		tree.Remove(loc.price)
	}
	return true
}

// BestBid returns the highest resting buy price, if any.
func (b *OrderBook) BestBid() (int64, bool) {
	node := b.bids.Left()
	if node == nil {
		return 0, false
	}
	return node.Key, true
}

// BestAsk returns the lowest resting sell price, if any.
func (b *OrderBook) BestAsk() (int64, bool) {
	node := b.asks.Left()
	if node == nil {
		return 0, false
	}
	return node.Key, true
}

// BidLevels enumerates bid price levels best-first (descending). If
// limit is non-nil, only levels >= *limit are returned: the
// candidates a sell order at that limit price can cross.
func (b *OrderBook) BidLevels(limit *int64) []int64 {
	return levelsWhile(b.bids, func(price int64) bool {
		return limit == nil || price >= *limit
	})
}

// AskLevels enumerates ask price levels best-first (ascending). If
// limit is non-nil, only levels <= *limit are returned: the
// candidates a buy order at that limit price can cross.
func (b *OrderBook) AskLevels(limit *int64) []int64 {
	return levelsWhile(b.asks, func(price int64) bool {
		return limit == nil || price <= *limit
	})
}

// levelsWhile snapshots the candidate price keys up front so callers
// can mutate the tree safely while iterating. Both trees iterate
// best-first by construction, so once cond turns false the remaining
// keys cannot satisfy it either and iteration stops.
func levelsWhile(tree *rbt.Tree[int64, *priceLevel], cond func(int64) bool) []int64 {
	var prices []int64
	it := tree.Iterator()
	for it.Next() {
		if !cond(it.Key()) {
			break
		}
		prices = append(prices, it.Key())
	}
	return prices
}

// PopBidHead removes and returns the oldest resting order at the
// given bid price, dropping the level if it becomes empty.
func (b *OrderBook) PopBidHead(price int64) (domain.Order, bool) {
	return b.popHead(b.bids, price)
}

// PushBidFront re-inserts a partially-filled bid at the front of its
// price level's queue, preserving its original time priority.
func (b *OrderBook) PushBidFront(o domain.Order) {
	b.pushFront(b.bids, o)
}

// PopAskHead removes and returns the oldest resting order at the
// given ask price, dropping the level if it becomes empty.
func (b *OrderBook) PopAskHead(price int64) (domain.Order, bool) {
	return b.popHead(b.asks, price)
}

// PushAskFront re-inserts a partially-filled ask at the front of its
// price level's queue, preserving its original time priority.
func (b *OrderBook) PushAskFront(o domain.Order) {
	b.pushFront(b.asks, o)
}

func (b *OrderBook) popHead(tree *rbt.Tree[int64, *priceLevel], price int64) (domain.Order, bool) {
	level, ok := tree.Get(price)
	if !ok || level.orders.Len() == 0 {
		return domain.Order{}, false
	}
	front := level.orders.Front()
	o := front.Value.(domain.Order)
	level.orders.Remove(front)
	delete(b.index, o.ID)
	if level.orders.Len() == 0 {
		tree.Remove(price)
	}
	return o, true
}

func (b *OrderBook) pushFront(tree *rbt.Tree[int64, *priceLevel], o domain.Order) {
	level, ok := tree.Get(*o.Price)
	if !ok {
		level = newPriceLevel(*o.Price)
		tree.Put(*o.Price, level)
	}
	level.orders.PushFront(o)
	b.index[o.ID] = location{side: o.Side, price: *o.Price}
}

func (b *OrderBook) treeFor(side domain.Side) *rbt.Tree[int64, *priceLevel] {
	if side == domain.Buy {
		return b.bids
	}
	return b.asks
}

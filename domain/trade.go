package domain

import "fmt"

// Trade is an immutable record of one match. It is created only by
// the matcher and ownership passes to the caller in the returned
// slice; nothing in this module mutates a Trade after construction.
type Trade struct {
	BuyerOrderID  uint64
	SellerOrderID uint64
	Price         int64
	Quantity      int64
	Timestamp     int64
}

// NewTrade constructs a Trade. Price is always the resting order's
// limit price, so price improvement goes to the aggressor.
func NewTrade(buyerOrderID, sellerOrderID uint64, price, quantity, timestamp int64) Trade {
	return Trade{
		BuyerOrderID:  buyerOrderID,
		SellerOrderID: sellerOrderID,
		Price:         price,
		Quantity:      quantity,
		Timestamp:     timestamp,
	}
}

func (t Trade) String() string {
	return fmt.Sprintf("Trade: %d shares @ %d (Buy #%d, Sell #%d)",
		t.Quantity, t.Price, t.BuyerOrderID, t.SellerOrderID)
}

package domain

import "testing"

func TestNewLimitOrderSetsPrice(t *testing.T) {
	o := NewLimitOrder("AAPL", Buy, 15000, 100)

	if o.Type != Limit {
		t.Fatalf("expected Limit order, got %v", o.Type)
	}
	if o.Price == nil {
		t.Fatal("expected price to be set on limit order")
	}
	if *o.Price != 15000 {
		t.Errorf("expected price 15000, got %d", *o.Price)
	}
	if o.ID != 0 || o.Timestamp != 0 {
		t.Errorf("expected id/timestamp unset until engine assigns them, got id=%d ts=%d", o.ID, o.Timestamp)
	}
}

func TestNewMarketOrderHasNoPrice(t *testing.T) {
	o := NewMarketOrder("AAPL", Sell, 50)

	if o.Type != Market {
		t.Fatalf("expected Market order, got %v", o.Type)
	}
	if o.Price != nil {
		t.Errorf("expected nil price on market order, got %v", *o.Price)
	}
}

func TestOrderString(t *testing.T) {
	limit := NewLimitOrder("AAPL", Buy, 15000, 100)
	limit.ID = 1
	if got, want := limit.String(), "Order #1: Buy LIMIT 15000 100 qty"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	market := NewMarketOrder("AAPL", Sell, 50)
	market.ID = 2
	if got, want := market.String(), "Order #2: Sell MARKET 50 qty"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

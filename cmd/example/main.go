// Command example is a minimal, synchronous illustration of the
// engine's public contract. It is not part of the matching core and
// carries no tests of its own; it is a thin caller of the library.
package main

import (
	"fmt"

	"lightning-exchange/domain"
	"lightning-exchange/engine"
)

func main() {
	e := engine.New()

	fmt.Println("Submitting resting sell: 100 @ 15000")
	if _, err := e.SubmitOrder(domain.NewLimitOrder("AAPL", domain.Sell, 15000, 100)); err != nil {
		fmt.Println("rejected:", err)
		return
	}

	fmt.Println("Submitting crossing buy: 100 @ 15000")
	trades, err := e.SubmitOrder(domain.NewLimitOrder("AAPL", domain.Buy, 15000, 100))
	if err != nil {
		fmt.Println("rejected:", err)
		return
	}
	for _, trade := range trades {
		fmt.Println(trade)
	}

	book, ok := e.GetOrderBook("AAPL")
	if !ok {
		return
	}
	if bid, ok := book.BestBid(); ok {
		fmt.Println("best bid:", bid)
	} else {
		fmt.Println("best bid: none")
	}
	if ask, ok := book.BestAsk(); ok {
		fmt.Println("best ask:", ask)
	} else {
		fmt.Println("best ask: none")
	}
}

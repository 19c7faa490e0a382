package orderbook

import "github.com/shopspring/decimal"

// TradeInfo is one leg of a match. The price is the leg's own resting
// price, so the two legs of a trade may differ when the incoming order
// crossed the book favorably; price improvement is not shared.
type TradeInfo struct {
	OrderID  OrderID
	Price    Price
	Quantity Quantity
}

// Notional returns price * quantity for the leg.
func (ti TradeInfo) Notional() decimal.Decimal {
	return decimal.NewFromInt32(int32(ti.Price)).Mul(decimal.NewFromInt(int64(ti.Quantity)))
}

// Trade records a single match step: one ask leg and one bid leg for
// the same executed quantity. Trades are immutable and never stored by
// the book.
type Trade struct {
	Ask TradeInfo
	Bid TradeInfo
}

package orderbook

// Order is a single resting or incoming order. The book owns the order
// exclusively once it has been submitted; callers keep only the ID for
// later cancel/modify requests and must not touch the fields again.
type Order struct {
	ID                OrderID
	Side              Side
	Type              OrderType
	Price             Price
	InitialQuantity   Quantity
	RemainingQuantity Quantity

	// Intrusive FIFO links, owned by the price level the order rests in.
	next *Order
	prev *Order
}

// IsFilled reports whether the order has no remaining quantity.
func (o *Order) IsFilled() bool {
	return o.RemainingQuantity == 0
}

// Fill decrements the remaining quantity. Filling more than the
// remaining quantity is an invariant breach in the matching loop and
// panics with ErrOverfill rather than clamping.
func (o *Order) Fill(quantity Quantity) {
	if quantity > o.RemainingQuantity {
		panic(ErrOverfill)
	}
	o.RemainingQuantity -= quantity
}

// PriceAdjust reprices a market order at its matched price and
// reclassifies it to GoodTillCancel. It happens exactly once, before
// the order is inserted into the book; afterwards the order is
// indistinguishable from a genuine GTC order. Calling it on any other
// type panics with ErrNotMarketOrder.
func (o *Order) PriceAdjust(price Price) {
	if o.Type != Market {
		panic(ErrNotMarketOrder)
	}
	o.Type = GoodTillCancel
	o.Price = price
}

// OrderModify is a cancel-and-replace request: the target order is
// canceled and re-submitted with the same ID, side and type at the new
// price and quantity, losing its time priority.
type OrderModify struct {
	OrderID  OrderID
	Price    Price
	Quantity Quantity
}

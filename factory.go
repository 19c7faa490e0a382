package orderbook

import "sync/atomic"

// OrderFactory assigns order IDs and builds orders from the external
// side/type tokens. IDs come from a single atomic counter, so
// concurrent calls produce globally unique, monotonically increasing
// IDs.
type OrderFactory struct {
	nextID atomic.Uint64
}

func NewOrderFactory() *OrderFactory {
	return &OrderFactory{}
}

// CreateOrder builds an order with a freshly allocated ID. An
// unrecognized side or type token yields (nil, error); that is a
// user-input problem, not a book-state one.
func (f *OrderFactory) CreateOrder(side, orderType string, quantity Quantity, price Price) (*Order, error) {
	s, err := ParseSide(side)
	if err != nil {
		return nil, err
	}

	t, err := ParseOrderType(orderType)
	if err != nil {
		return nil, err
	}

	return &Order{
		ID:                OrderID(f.nextID.Add(1)),
		Side:              s,
		Type:              t,
		Price:             price,
		InitialQuantity:   quantity,
		RemainingQuantity: quantity,
	}, nil
}

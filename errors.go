package orderbook

import "errors"

var (
	ErrUnknownSide      = errors.New("unknown side")
	ErrUnknownOrderType = errors.New("unknown order type")

	// ErrOverfill and ErrNotMarketOrder indicate contract violations.
	// They are used as panic values, never returned.
	ErrOverfill       = errors.New("order cannot be filled more than its remaining quantity")
	ErrNotMarketOrder = errors.New("only market orders can adjust price")
)

package orderbook

// Price is a signed tick price. Negative prices are allowed (spreads,
// some futures), which is why the type is signed.
type Price int32

// Quantity is an order quantity in lots.
type Quantity uint32

// OrderID uniquely identifies an order. IDs are assigned once by the
// factory and never reused.
type OrderID uint64

type Side int8

const (
	Buy Side = iota
	Sell
)

// ParseSide converts the external "Buy"/"Sell" token to a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "Buy":
		return Buy, nil
	case "Sell":
		return Sell, nil
	default:
		return 0, ErrUnknownSide
	}
}

func (s Side) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

type OrderType int8

const (
	GoodTillCancel OrderType = iota
	FillAndKill
	FillOrKill
	Market
	GoodForDay
)

// ParseOrderType converts the external order-type token ("GTC", "FAK",
// "FOK", "M", "GFD") to an OrderType.
func ParseOrderType(s string) (OrderType, error) {
	switch s {
	case "GTC":
		return GoodTillCancel, nil
	case "FAK":
		return FillAndKill, nil
	case "FOK":
		return FillOrKill, nil
	case "M":
		return Market, nil
	case "GFD":
		return GoodForDay, nil
	default:
		return 0, ErrUnknownOrderType
	}
}

func (t OrderType) String() string {
	switch t {
	case GoodTillCancel:
		return "Good Till Cancel"
	case FillAndKill:
		return "Fill And Kill"
	case FillOrKill:
		return "Fill Or Kill"
	case Market:
		return "Market"
	case GoodForDay:
		return "Good For Day"
	default:
		return "Unknown"
	}
}

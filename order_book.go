package orderbook

import (
	"slices"
	"sync"
	"time"

	"github.com/rs/xid"
)

// LevelInfo is one aggregated price level: the price and the sum of
// the remaining quantities resting there.
type LevelInfo struct {
	Price    Price
	Quantity Quantity
}

// OrderBook is a single-instrument limit order book with price-time
// priority. Two actors operate on it concurrently: the submission path
// (Add/Cancel/Modify/GetLevelInfos) and the background day-order
// pruner. All of them share one mutex domain; read-only snapshots take
// the read lock.
type OrderBook struct {
	id  string
	mu  sync.RWMutex
	now func() time.Time

	asks *sideBook
	bids *sideBook

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewOrderBook creates an empty book and starts its day-order pruner.
// Callers must Close the book when done with it.
func NewOrderBook() *OrderBook {
	return newOrderBook(time.Now)
}

func newOrderBook(now func() time.Time) *OrderBook {
	b := &OrderBook{
		id:   xid.New().String(),
		now:  now,
		asks: newAskBook(),
		bids: newBidBook(),
		done: make(chan struct{}),
	}

	b.wg.Add(1)
	go b.pruneDayOrders()

	return b
}

// Close signals the pruner to stop and waits for it to terminate. It
// is idempotent and must be called before the book is discarded.
func (b *OrderBook) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
	b.wg.Wait()
}

// AddOrder runs the admission checks for the order's type, rests it at
// the back of its price level and runs the matching loop. It returns
// the trades the submission produced, possibly none. A rejected order
// (duplicate ID, unmet FAK/FOK/Market precondition) leaves the book
// untouched and returns no trades.
func (b *OrderBook) AddOrder(order *Order) []Trade {
	if order == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.addOrder(order)
}

func (b *OrderBook) addOrder(order *Order) []Trade {
	if b.asks.order(order.ID) != nil || b.bids.order(order.ID) != nil {
		return nil
	}

	own, opposite := b.sides(order.Side)

	if order.Type == Market {
		// Priced at the farthest resting opposite price so the order
		// can sweep the whole opposite side.
		price, ok := opposite.worstPrice()
		if !ok {
			return nil
		}
		order.PriceAdjust(price)
	}

	if order.Type == FillAndKill && !opposite.crosses(order.Price) {
		return nil
	}

	if order.Type == FillOrKill && !opposite.hasCrossableQuantity(order.Price, order.RemainingQuantity) {
		return nil
	}

	own.insertOrder(order)
	return b.match()
}

func (b *OrderBook) sides(side Side) (own, opposite *sideBook) {
	if side == Buy {
		return b.bids, b.asks
	}
	return b.asks, b.bids
}

// match pairs the front orders of the best ask and best bid levels
// while the sides cross, emitting one trade per step. Each leg
// executes at its own resting price.
func (b *OrderBook) match() []Trade {
	var trades []Trade

	for {
		askPrice, ok := b.asks.bestPrice()
		if !ok {
			break
		}
		bidPrice, ok := b.bids.bestPrice()
		if !ok {
			break
		}
		if askPrice > bidPrice {
			break
		}

		ask := b.asks.frontOrder()
		bid := b.bids.frontOrder()

		quantity := min(ask.RemainingQuantity, bid.RemainingQuantity)
		b.asks.fill(ask, quantity)
		b.bids.fill(bid, quantity)

		trades = append(trades, Trade{
			Ask: TradeInfo{OrderID: ask.ID, Price: ask.Price, Quantity: quantity},
			Bid: TradeInfo{OrderID: bid.ID, Price: bid.Price, Quantity: quantity},
		})

		if ask.IsFilled() {
			b.asks.removeOrder(ask)
		}
		if bid.IsFilled() {
			b.bids.removeOrder(bid)
		}
	}

	// A FillAndKill order left at the front of either best level after
	// matching must not rest.
	if front := b.asks.frontOrder(); front != nil && front.Type == FillAndKill {
		b.cancelOrder(front.ID)
	}
	if front := b.bids.frontOrder(); front != nil && front.Type == FillAndKill {
		b.cancelOrder(front.ID)
	}

	return trades
}

// CancelOrder removes the order with the given ID from the book. An
// unknown ID, including one already consumed by a match, is a no-op.
func (b *OrderBook) CancelOrder(id OrderID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cancelOrder(id)
}

// CancelOrders cancels a batch of IDs under a single lock acquisition.
func (b *OrderBook) CancelOrders(ids []OrderID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, id := range ids {
		b.cancelOrder(id)
	}
}

func (b *OrderBook) cancelOrder(id OrderID) {
	if order := b.bids.order(id); order != nil {
		b.bids.removeOrder(order)
		return
	}
	if order := b.asks.order(id); order != nil {
		b.asks.removeOrder(order)
	}
}

// ModifyOrder cancels the target order and re-submits it with the same
// ID, side and type at the request's price and quantity, through the
// full AddOrder path. The replacement re-runs admission and matching,
// so a modify can itself trade, be rejected, or re-queue with lower
// time priority. An unknown ID is a no-op.
func (b *OrderBook) ModifyOrder(mod OrderModify) []Trade {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing := b.bids.order(mod.OrderID)
	if existing == nil {
		existing = b.asks.order(mod.OrderID)
	}
	if existing == nil {
		return nil
	}

	side, orderType := existing.Side, existing.Type
	b.cancelOrder(mod.OrderID)

	return b.addOrder(&Order{
		ID:                mod.OrderID,
		Side:              side,
		Type:              orderType,
		Price:             mod.Price,
		InitialQuantity:   mod.Quantity,
		RemainingQuantity: mod.Quantity,
	})
}

// GetLevelInfos returns a point-in-time aggregation of both sides, one
// (price, quantity) pair per occupied level. Bids are in descending
// price order; asks are aggregated ascending and reversed to
// descending, the display-ladder convention where the best ask sits
// adjacent to the best bid.
func (b *OrderBook) GetLevelInfos() (asks, bids []LevelInfo) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	asks = b.asks.levelInfos()
	slices.Reverse(asks)
	bids = b.bids.levelInfos()
	return asks, bids
}

// Size returns the number of resting orders across both sides.
func (b *OrderBook) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.asks.orderCount() + b.bids.orderCount()
}

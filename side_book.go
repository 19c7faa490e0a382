package orderbook

import "github.com/huandu/skiplist"

// priceLevel is the FIFO queue of resting orders at one price, linked
// through the orders' intrusive pointers. totalQuantity is the running
// sum of the orders' remaining quantities.
type priceLevel struct {
	price         Price
	totalQuantity Quantity
	head          *Order
	tail          *Order
	count         int
}

// sideBook holds one side of the book: a skiplist of price levels in
// best-price-first order, a price -> element map for O(log n) level
// access, and an id -> order index for O(1) lookup and removal. An ID
// absent from the index means the order is not on this side.
type sideBook struct {
	side        Side
	totalOrders int
	depthList   *skiplist.SkipList
	priceList   map[Price]*skiplist.Element
	orders      map[OrderID]*Order
}

// newBidBook creates the buy side. Levels are sorted by price in
// descending order (highest bid first).
func newBidBook() *sideBook {
	return &sideBook{
		side: Buy,
		depthList: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			p1, _ := lhs.(Price)
			p2, _ := rhs.(Price)

			if p1 < p2 {
				return 1
			} else if p1 > p2 {
				return -1
			}

			return 0
		})),
		priceList: make(map[Price]*skiplist.Element),
		orders:    make(map[OrderID]*Order),
	}
}

// newAskBook creates the sell side. Levels are sorted by price in
// ascending order (lowest ask first).
func newAskBook() *sideBook {
	return &sideBook{
		side: Sell,
		depthList: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			p1, _ := lhs.(Price)
			p2, _ := rhs.(Price)

			if p1 > p2 {
				return 1
			} else if p1 < p2 {
				return -1
			}

			return 0
		})),
		priceList: make(map[Price]*skiplist.Element),
		orders:    make(map[OrderID]*Order),
	}
}

// order finds a resting order by its ID.
func (sb *sideBook) order(id OrderID) *Order {
	return sb.orders[id]
}

// insertOrder appends an order at the back of its price level,
// creating the level if absent, and records it in the index.
func (sb *sideBook) insertOrder(order *Order) {
	el, ok := sb.priceList[order.Price]
	if ok {
		level, _ := el.Value.(*priceLevel)
		order.prev = level.tail
		order.next = nil
		level.tail.next = order
		level.tail = order
		level.totalQuantity += order.RemainingQuantity
		level.count++
	} else {
		level := &priceLevel{
			price:         order.Price,
			totalQuantity: order.RemainingQuantity,
			head:          order,
			tail:          order,
			count:         1,
		}
		order.next = nil
		order.prev = nil
		sb.priceList[order.Price] = sb.depthList.Set(order.Price, level)
	}

	sb.orders[order.ID] = order
	sb.totalOrders++
}

// removeOrder unlinks an order from its level, drops the level when it
// becomes empty, and clears the index entry.
func (sb *sideBook) removeOrder(order *Order) {
	el, ok := sb.priceList[order.Price]
	if !ok {
		return
	}
	level, _ := el.Value.(*priceLevel)

	if _, ok := sb.orders[order.ID]; !ok {
		return
	}

	if order.prev != nil {
		order.prev.next = order.next
	} else {
		level.head = order.next
	}

	if order.next != nil {
		order.next.prev = order.prev
	} else {
		level.tail = order.prev
	}

	order.next = nil
	order.prev = nil

	level.totalQuantity -= order.RemainingQuantity
	level.count--
	delete(sb.orders, order.ID)
	sb.totalOrders--

	if level.count == 0 {
		sb.depthList.RemoveElement(el)
		delete(sb.priceList, order.Price)
	}
}

// fill decrements an order's remaining quantity in place, keeping its
// level's running total consistent. Priority is unaffected.
func (sb *sideBook) fill(order *Order, quantity Quantity) {
	if el, ok := sb.priceList[order.Price]; ok {
		level, _ := el.Value.(*priceLevel)
		level.totalQuantity -= quantity
	}
	order.Fill(quantity)
}

// frontOrder returns the first order of the best level, or nil when
// the side is empty.
func (sb *sideBook) frontOrder() *Order {
	el := sb.depthList.Front()
	if el == nil {
		return nil
	}

	level, _ := el.Value.(*priceLevel)
	return level.head
}

// bestPrice returns the best price on this side (lowest ask, highest
// bid).
func (sb *sideBook) bestPrice() (Price, bool) {
	el := sb.depthList.Front()
	if el == nil {
		return 0, false
	}
	return el.Value.(*priceLevel).price, true
}

// worstPrice returns the farthest price on this side (highest ask,
// lowest bid). Market orders are priced here: sweep-to-the-back
// pricing, not best-price pricing.
func (sb *sideBook) worstPrice() (Price, bool) {
	el := sb.depthList.Back()
	if el == nil {
		return 0, false
	}
	return el.Value.(*priceLevel).price, true
}

// crosses reports whether the best price on this side crosses the
// given opposite-side price.
func (sb *sideBook) crosses(price Price) bool {
	best, ok := sb.bestPrice()
	if !ok {
		return false
	}
	if sb.side == Sell {
		return best <= price
	}
	return best >= price
}

// hasCrossableQuantity reports whether at least quantity lots rest on
// this side at prices crossing the given price, summed from the best
// level outward.
func (sb *sideBook) hasCrossableQuantity(price Price, quantity Quantity) bool {
	var available uint64
	for el := sb.depthList.Front(); el != nil; el = el.Next() {
		level, _ := el.Value.(*priceLevel)
		if sb.side == Sell && level.price > price ||
			sb.side == Buy && level.price < price {
			break
		}

		available += uint64(level.totalQuantity)
		if available >= uint64(quantity) {
			return true
		}
	}
	return false
}

// levelInfos aggregates the side into (price, quantity) pairs in the
// side's natural order: ascending for asks, descending for bids.
func (sb *sideBook) levelInfos() []LevelInfo {
	infos := make([]LevelInfo, 0, len(sb.priceList))
	for el := sb.depthList.Front(); el != nil; el = el.Next() {
		level, _ := el.Value.(*priceLevel)
		infos = append(infos, LevelInfo{Price: level.price, Quantity: level.totalQuantity})
	}
	return infos
}

// orderCount returns the number of resting orders on this side.
func (sb *sideBook) orderCount() int {
	return sb.totalOrders
}

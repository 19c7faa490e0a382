package orderbook

import "github.com/igrmk/treemap/v2"

// AggregatedBook is a display-side read model of the book: price
// levels and their aggregated quantities, without individual orders.
// It is rebuilt from GetLevelInfos snapshots and never touches the
// live book, so display callers can query it freely while the engine
// keeps matching.
type AggregatedBook struct {
	ask *treemap.TreeMap[Price, Quantity]
	bid *treemap.TreeMap[Price, Quantity]
}

// NewAggregatedBook creates an empty aggregated view. Asks iterate in
// ascending price order, bids in descending order, so Walk visits each
// side best-price-first.
func NewAggregatedBook() *AggregatedBook {
	return &AggregatedBook{
		ask: treemap.NewWithKeyCompare[Price, Quantity](func(a, b Price) bool {
			return a < b
		}),
		bid: treemap.NewWithKeyCompare[Price, Quantity](func(a, b Price) bool {
			return a > b
		}),
	}
}

// Rebuild replaces the view's contents with a level snapshot, as
// produced by OrderBook.GetLevelInfos. Level ordering in the input is
// irrelevant; the maps re-sort.
func (ab *AggregatedBook) Rebuild(asks, bids []LevelInfo) {
	ab.ask.Clear()
	for _, info := range asks {
		ab.ask.Set(info.Price, info.Quantity)
	}

	ab.bid.Clear()
	for _, info := range bids {
		ab.bid.Set(info.Price, info.Quantity)
	}
}

// Depth returns the aggregated quantity at a price level, or zero when
// the level is not occupied.
func (ab *AggregatedBook) Depth(side Side, price Price) Quantity {
	quantity, _ := ab.tree(side).Get(price)
	return quantity
}

// BestAsk returns the lowest occupied ask level.
func (ab *AggregatedBook) BestAsk() (LevelInfo, bool) {
	return best(ab.ask)
}

// BestBid returns the highest occupied bid level.
func (ab *AggregatedBook) BestBid() (LevelInfo, bool) {
	return best(ab.bid)
}

// Walk visits one side's levels best-price-first until fn returns
// false.
func (ab *AggregatedBook) Walk(side Side, fn func(LevelInfo) bool) {
	for it := ab.tree(side).Iterator(); it.Valid(); it.Next() {
		if !fn(LevelInfo{Price: it.Key(), Quantity: it.Value()}) {
			return
		}
	}
}

// Len returns the number of occupied levels on one side.
func (ab *AggregatedBook) Len(side Side) int {
	return ab.tree(side).Len()
}

func (ab *AggregatedBook) tree(side Side) *treemap.TreeMap[Price, Quantity] {
	if side == Buy {
		return ab.bid
	}
	return ab.ask
}

func best(tree *treemap.TreeMap[Price, Quantity]) (LevelInfo, bool) {
	it := tree.Iterator()
	if !it.Valid() {
		return LevelInfo{}, false
	}
	return LevelInfo{Price: it.Key(), Quantity: it.Value()}, true
}

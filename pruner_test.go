package orderbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock pins the book's clock just before the 16:00 cutoff so the
// pruner fires within milliseconds of real time.
func fakeClock(beforeCutoff time.Duration) func() time.Time {
	base := time.Date(2026, time.March, 4, pruneHour, 0, 0, 0, time.Local).Add(-beforeCutoff)
	return func() time.Time { return base }
}

func TestPruneDayOrders(t *testing.T) {
	book := newOrderBook(fakeClock(50 * time.Millisecond))
	defer book.Close()
	factory := NewOrderFactory()

	gfdBuy := mustCreate(t, factory, "Buy", "GFD", 1, 90)
	gfdSell := mustCreate(t, factory, "Sell", "GFD", 1, 110)
	gtc := mustCreate(t, factory, "Buy", "GTC", 1, 80)
	book.AddOrder(gfdBuy)
	book.AddOrder(gfdSell)
	book.AddOrder(gtc)
	require.Equal(t, 3, book.Size())

	assert.Eventually(t, func() bool {
		return book.Size() == 1
	}, time.Second, 5*time.Millisecond)

	// Only the GoodForDay orders were pruned.
	_, bids := book.GetLevelInfos()
	require.Len(t, bids, 1)
	assert.Equal(t, Price(80), bids[0].Price)
	assertBookConsistent(t, book)
}

func TestPruneSparesReclassifiedMarketOrder(t *testing.T) {
	book := newOrderBook(fakeClock(50 * time.Millisecond))
	defer book.Close()
	factory := NewOrderFactory()

	book.AddOrder(mustCreate(t, factory, "Sell", "GTC", 50, 100))

	// The market remainder rests as GoodTillCancel at its matched
	// price and survives the prune.
	market := mustCreate(t, factory, "Buy", "M", 100, 0)
	trades := book.AddOrder(market)
	require.Len(t, trades, 1)
	require.Equal(t, GoodTillCancel, market.Type)

	book.AddOrder(mustCreate(t, factory, "Sell", "GFD", 1, 200))
	require.Equal(t, 2, book.Size())

	assert.Eventually(t, func() bool {
		return book.Size() == 1
	}, time.Second, 5*time.Millisecond)

	_, bids := book.GetLevelInfos()
	require.Len(t, bids, 1)
	assert.Equal(t, LevelInfo{Price: 100, Quantity: 50}, bids[0])
}

func TestCloseStopsPruner(t *testing.T) {
	book := newOrderBook(fakeClock(time.Hour))
	factory := NewOrderFactory()

	book.AddOrder(mustCreate(t, factory, "Buy", "GFD", 1, 90))

	done := make(chan struct{})
	go func() {
		book.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close did not terminate the pruner promptly")
	}

	// Closed before the cutoff: no final prune runs.
	assert.Equal(t, 1, book.Size())

	// Close is idempotent.
	book.Close()
}

func TestNextCutoffRollsOver(t *testing.T) {
	before := time.Date(2026, time.March, 4, 9, 30, 0, 0, time.Local)
	after := time.Date(2026, time.March, 4, 17, 0, 0, 0, time.Local)

	morning := &OrderBook{now: func() time.Time { return before }}
	assert.Equal(t, time.Date(2026, time.March, 4, pruneHour, 0, 0, 0, time.Local), morning.nextCutoff())

	evening := &OrderBook{now: func() time.Time { return after }}
	assert.Equal(t, time.Date(2026, time.March, 5, pruneHour, 0, 0, 0, time.Local), evening.nextCutoff())
}

package orderbook

import "time"

// pruneHour is the local-time hour at which resting GoodForDay orders
// expire.
const pruneHour = 16

// pruneDayOrders wakes at each daily cutoff, collects the IDs of every
// resting GoodForDay order under the read lock, then cancels them as
// one batch. The wait is interruptible by Close, which is the only
// cancellation mechanism; on close the loop exits without a final
// prune.
func (b *OrderBook) pruneDayOrders() {
	defer b.wg.Done()

	for {
		timer := time.NewTimer(b.nextCutoff().Sub(b.now()))

		select {
		case <-b.done:
			timer.Stop()
			return
		case <-timer.C:
		}

		var ids []OrderID
		b.mu.RLock()
		for id, order := range b.asks.orders {
			if order.Type == GoodForDay {
				ids = append(ids, id)
			}
		}
		for id, order := range b.bids.orders {
			if order.Type == GoodForDay {
				ids = append(ids, id)
			}
		}
		b.mu.RUnlock()

		if len(ids) > 0 {
			b.CancelOrders(ids)
			logger.Info("day orders pruned", "book_id", b.id, "count", len(ids))
		}
	}
}

// nextCutoff returns the next 16:00 local-time instant: today's if it
// has not passed yet, otherwise tomorrow's.
func (b *OrderBook) nextCutoff() time.Time {
	now := b.now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), pruneHour, 0, 0, 0, now.Location())
	if !now.Before(cutoff) {
		cutoff = cutoff.AddDate(0, 0, 1)
	}
	return cutoff
}

package orderbook

import (
	"time"

	"github.com/gammazero/deque"
	"github.com/google/btree"
)

// Entry is a resting offer inside the book. The book only keeps what matching
// needs; the repository owns the full offer record.
type Entry struct {
	OfferID    string
	UserID     string
	Price      int64
	CreatedAt  time.Time
	ValidUntil time.Time
}

// Expired reports whether the entry is past its validUntil at the given time.
func (e Entry) Expired(now time.Time) bool {
	return now.After(e.ValidUntil)
}

// priceLevel holds all resting entries at one price in arrival order.
type priceLevel struct {
	price int64
	queue *deque.Deque[Entry]
}

// bookSide is one side of the book: a btree of price levels (ascending by
// price) plus an offerID index for O(1) level lookup on removal.
type bookSide struct {
	levels *btree.BTreeG[*priceLevel]
	index  map[string]*priceLevel
}

func newBookSide() *bookSide {
	return &bookSide{
		levels: btree.NewG(2, func(a, b *priceLevel) bool { return a.price < b.price }),
		index:  make(map[string]*priceLevel),
	}
}

func (s *bookSide) add(e Entry) {
	probe := &priceLevel{price: e.Price}
	lvl, ok := s.levels.Get(probe)
	if !ok {
		lvl = &priceLevel{price: e.Price, queue: deque.New[Entry]()}
		s.levels.ReplaceOrInsert(lvl)
	}
	lvl.queue.PushBack(e)
	s.index[e.OfferID] = lvl
}

func (s *bookSide) remove(offerID string) bool {
	lvl, ok := s.index[offerID]
	if !ok {
		return false
	}
	delete(s.index, offerID)

	i := lvl.queue.Index(func(e Entry) bool { return e.OfferID == offerID })
	if i < 0 {
		return false
	}
	lvl.queue.Remove(i)
	if lvl.queue.Len() == 0 {
		s.levels.Delete(lvl)
	}
	return true
}

// best walks levels in the given direction and returns the first entry that
// has not expired. Expired entries are skipped, not removed; the sweeper
// removes them.
func (s *bookSide) best(now time.Time, descending bool) (Entry, bool) {
	var found Entry
	ok := false
	visit := func(lvl *priceLevel) bool {
		for i := 0; i < lvl.queue.Len(); i++ {
			e := lvl.queue.At(i)
			if !e.Expired(now) {
				found = e
				ok = true
				return false
			}
		}
		return true
	}
	if descending {
		s.levels.Descend(visit)
	} else {
		s.levels.Ascend(visit)
	}
	return found, ok
}

// depth counts non-expired entries on the side.
func (s *bookSide) depth(now time.Time) int {
	n := 0
	s.levels.Ascend(func(lvl *priceLevel) bool {
		for i := 0; i < lvl.queue.Len(); i++ {
			if !lvl.queue.At(i).Expired(now) {
				n++
			}
		}
		return true
	})
	return n
}

// Book holds the resting bids and asks for one (product, size variant)
// market. It is not safe for concurrent use; the matching engine serializes
// all access per market.
type Book struct {
	bids *bookSide
	asks *bookSide
}

// NewBook creates an empty order book for one market.
func NewBook() *Book {
	return &Book{
		bids: newBookSide(),
		asks: newBookSide(),
	}
}

// AddBid rests a bid in the book.
func (b *Book) AddBid(e Entry) { b.bids.add(e) }

// AddAsk rests an ask in the book.
func (b *Book) AddAsk(e Entry) { b.asks.add(e) }

// BestBid returns the highest-priced non-expired bid, earliest first within a
// price level.
func (b *Book) BestBid(now time.Time) (Entry, bool) {
	return b.bids.best(now, true)
}

// BestAsk returns the lowest-priced non-expired ask, earliest first within a
// price level.
func (b *Book) BestAsk(now time.Time) (Entry, bool) {
	return b.asks.best(now, false)
}

// RemoveBid removes a resting bid by offer ID.
func (b *Book) RemoveBid(offerID string) bool { return b.bids.remove(offerID) }

// RemoveAsk removes a resting ask by offer ID.
func (b *Book) RemoveAsk(offerID string) bool { return b.asks.remove(offerID) }

// Depth returns the count of non-expired resting offers per side.
func (b *Book) Depth(now time.Time) (bids, asks int) {
	return b.bids.depth(now), b.asks.depth(now)
}

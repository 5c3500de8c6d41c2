package orderbook

import (
	"strings"
	"sync"

	"github.com/tidwall/btree"

	"github.com/MarcelRaschke/ccxt/common/crypto"
	"github.com/MarcelRaschke/ccxt/common/number"
)

// Level is one price level of an order book side
type Level struct {
	Price  float64
	Amount float64
}

// Less implements btree.Item ordered by price ascending
func (l *Level) Less(than btree.Item, ctx interface{}) bool {
	return l.Price < than.(*Level).Price
}

const btreeDegrees = 32

// OrderBook keeps both sides of a market indexed by price
type OrderBook struct {
	sync.Mutex
	symbol    string
	bids      *btree.BTree
	asks      *btree.BTree
	nonce     int64
	timestamp int64
}

// New returns an empty OrderBook of the symbol
func New(symbol string) *OrderBook {
	return &OrderBook{
		symbol: symbol,
		bids:   btree.New(btreeDegrees, nil),
		asks:   btree.New(btreeDegrees, nil),
	}
}

// Symbol returns the market symbol of the book
func (ob *OrderBook) Symbol() string {
	return ob.symbol
}

// Nonce returns the nonce of the last applied update
func (ob *OrderBook) Nonce() int64 {
	ob.Lock()
	defer ob.Unlock()
	return ob.nonce
}

// Timestamp returns the timestamp of the last applied update
func (ob *OrderBook) Timestamp() int64 {
	ob.Lock()
	defer ob.Unlock()
	return ob.timestamp
}

// Load replaces the book with the snapshot
func (ob *OrderBook) Load(bids, asks []Level, nonce, timestamp int64) {
	ob.Lock()
	defer ob.Unlock()
	ob.bids = btree.New(btreeDegrees, nil)
	ob.asks = btree.New(btreeDegrees, nil)
	for i := range bids {
		applyLevel(ob.bids, bids[i])
	}
	for i := range asks {
		applyLevel(ob.asks, asks[i])
	}
	ob.nonce = nonce
	ob.timestamp = timestamp
}

// Update applies absolute deltas to the book. A level with a zero amount is
// removed. Updates with a nonce at or below the applied one are rejected.
func (ob *OrderBook) Update(bids, asks []Level, nonce, timestamp int64) error {
	ob.Lock()
	defer ob.Unlock()
	if nonce <= ob.nonce {
		return ErrOutOfOrderNonce
	}
	for i := range bids {
		applyLevel(ob.bids, bids[i])
	}
	for i := range asks {
		applyLevel(ob.asks, asks[i])
	}
	ob.nonce = nonce
	ob.timestamp = timestamp
	return nil
}

func applyLevel(tree *btree.BTree, lv Level) {
	if lv.Amount <= 0 {
		tree.Delete(&Level{Price: lv.Price})
		return
	}
	cp := lv
	tree.ReplaceOrInsert(&cp)
}

// BestBid returns the highest bid of the book
func (ob *OrderBook) BestBid() (Level, bool) {
	ob.Lock()
	defer ob.Unlock()
	if item := ob.bids.Max(); item != nil {
		return *item.(*Level), true
	}
	return Level{}, false
}

// BestAsk returns the lowest ask of the book
func (ob *OrderBook) BestAsk() (Level, bool) {
	ob.Lock()
	defer ob.Unlock()
	if item := ob.asks.Min(); item != nil {
		return *item.(*Level), true
	}
	return Level{}, false
}

// Bids returns up to limit bid levels from the best price down. A limit of
// zero returns every level.
func (ob *OrderBook) Bids(limit int) []Level {
	ob.Lock()
	defer ob.Unlock()
	out := []Level{}
	ob.bids.Descend(func(item btree.Item) bool {
		out = append(out, *item.(*Level))
		return limit <= 0 || len(out) < limit
	})
	return out
}

// Asks returns up to limit ask levels from the best price up. A limit of
// zero returns every level.
func (ob *OrderBook) Asks(limit int) []Level {
	ob.Lock()
	defer ob.Unlock()
	out := []Level{}
	ob.asks.Ascend(func(item btree.Item) bool {
		out = append(out, *item.(*Level))
		return limit <= 0 || len(out) < limit
	})
	return out
}

// Snapshot is a copied depth view of the book
type Snapshot struct {
	Symbol    string  `json:"symbol"`
	Bids      []Level `json:"bids"`
	Asks      []Level `json:"asks"`
	Nonce     int64   `json:"nonce"`
	Timestamp int64   `json:"timestamp"`
}

// Snapshot copies up to limit levels of both sides
func (ob *OrderBook) Snapshot(limit int) *Snapshot {
	return &Snapshot{
		Symbol:    ob.symbol,
		Bids:      ob.Bids(limit),
		Asks:      ob.Asks(limit),
		Nonce:     ob.Nonce(),
		Timestamp: ob.Timestamp(),
	}
}

// checksumDepth is the number of levels per side covered by Checksum
const checksumDepth = 10

// Checksum returns the CRC-32 of the top levels of both sides, asks first,
// each level written as price:amount.
func (ob *OrderBook) Checksum() int32 {
	parts := []string{}
	for _, lv := range ob.Asks(checksumDepth) {
		parts = append(parts, number.NumberToString(lv.Price)+":"+number.NumberToString(lv.Amount))
	}
	for _, lv := range ob.Bids(checksumDepth) {
		parts = append(parts, number.NumberToString(lv.Price)+":"+number.NumberToString(lv.Amount))
	}
	return crypto.Crc32([]byte(strings.Join(parts, ":")))
}

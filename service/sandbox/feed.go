package sandbox

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"

	"github.com/MarcelRaschke/ccxt/common/number"
	"github.com/MarcelRaschke/ccxt/common/rlog"
	"github.com/MarcelRaschke/ccxt/common/timeutil"
	"github.com/MarcelRaschke/ccxt/common/util"
	"github.com/MarcelRaschke/ccxt/exchange/orderbook"
)

// handleFeed upgrades the connection and serves channel subscriptions
func (s *Sandbox) handleFeed(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	out := make(chan []byte, 256)
	done := make(chan struct{})
	subscribed := map[string]bool{}
	defer func() {
		s.Lock()
		for channel := range subscribed {
			delete(s.feeds[channel], out)
		}
		s.Unlock()
		close(done)
	}()

	go func() {
		for {
			select {
			case bs := <-out:
				if err := conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, bs); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return nil
		}
		var req map[string]interface{}
		if err := json.Unmarshal(data, &req); err != nil {
			rlog.Printf("sandbox feed %+v\n", err)
			continue
		}
		op := util.SafeString(req, "op", "")
		channel := util.SafeString(req, "channel", "")
		switch op {
		case "subscribe":
			s.Lock()
			if s.feeds[channel] == nil {
				s.feeds[channel] = map[chan []byte]bool{}
			}
			s.feeds[channel][out] = true
			s.Unlock()
			subscribed[channel] = true
			s.pushSnapshot(channel, out)
		case "unsubscribe":
			s.Lock()
			delete(s.feeds[channel], out)
			s.Unlock()
			delete(subscribed, channel)
		}
	}
}

// pushSnapshot sends the current book of an orderbook channel
func (s *Sandbox) pushSnapshot(channel string, out chan []byte) {
	id, ok := channelMarket(channel)
	if !ok {
		return
	}
	book, has := s.books[id]
	if !has {
		return
	}
	snap := book.Snapshot(0)
	s.send(out, map[string]interface{}{
		"channel":   channel,
		"type":      "snapshot",
		"bids":      levelPairs(snap.Bids),
		"asks":      levelPairs(snap.Asks),
		"nonce":     snap.Nonce,
		"timestamp": timeutil.Milliseconds(),
	})
}

func channelMarket(channel string) (string, bool) {
	const prefix = "orderbook:"
	if len(channel) <= len(prefix) || channel[:len(prefix)] != prefix {
		return "", false
	}
	return channel[len(prefix):], true
}

func (s *Sandbox) send(out chan []byte, payload map[string]interface{}) {
	bs, err := json.Marshal(payload)
	if err != nil {
		rlog.Printf("sandbox send %+v\n", err)
		return
	}
	select {
	case out <- bs:
	default:
	}
}

// broadcast delivers the payload to every subscriber of the channel
func (s *Sandbox) broadcast(channel string, payload map[string]interface{}) {
	payload["channel"] = channel
	s.Lock()
	outs := make([]chan []byte, 0, len(s.feeds[channel]))
	for out := range s.feeds[channel] {
		outs = append(outs, out)
	}
	s.Unlock()
	for _, out := range outs {
		s.send(out, payload)
	}
}

func amountFloat(am *number.Amount) float64 {
	f, err := strconv.ParseFloat(am.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// levelAt returns the resting amount at the price of the side
func levelAt(book *orderbook.OrderBook, side string, price float64) float64 {
	levels := book.Bids(0)
	if side == "sell" {
		levels = book.Asks(0)
	}
	for _, lv := range levels {
		if lv.Price == price {
			return lv.Amount
		}
	}
	return 0
}

// addLiquidity rests the amount at the price and publishes the delta
func (s *Sandbox) addLiquidity(marketID, side string, price, amount *number.Amount) {
	book := s.books[marketID]
	p := amountFloat(price)
	lv := orderbook.Level{
		Price:  p,
		Amount: levelAt(book, side, p) + amountFloat(amount),
	}
	s.applyDelta(marketID, side, lv)
}

// takeLiquidity consumes the amount from the best level and publishes the
// delta
func (s *Sandbox) takeLiquidity(marketID, side string, best orderbook.Level, amount *number.Amount) {
	restingSide := "sell"
	if side == "sell" {
		restingSide = "buy"
	}
	lv := orderbook.Level{
		Price:  best.Price,
		Amount: best.Amount - amountFloat(amount),
	}
	s.applyDelta(marketID, restingSide, lv)
}

// removeLiquidity takes the amount off the price level and publishes the
// delta
func (s *Sandbox) removeLiquidity(marketID, side string, price, amount *number.Amount) {
	book := s.books[marketID]
	p := amountFloat(price)
	lv := orderbook.Level{
		Price:  p,
		Amount: levelAt(book, side, p) - amountFloat(amount),
	}
	s.applyDelta(marketID, side, lv)
}

func (s *Sandbox) applyDelta(marketID, side string, lv orderbook.Level) {
	book := s.books[marketID]
	bids := []orderbook.Level{}
	asks := []orderbook.Level{}
	if side == "buy" {
		bids = append(bids, lv)
	} else {
		asks = append(asks, lv)
	}
	nonce := book.Nonce() + 1
	ts := timeutil.Milliseconds()
	if err := book.Update(bids, asks, nonce, ts); err != nil {
		rlog.Printf("sandbox applyDelta %+v\n", err)
		return
	}
	s.broadcast("orderbook:"+marketID, map[string]interface{}{
		"type":      "update",
		"bids":      levelPairs(bids),
		"asks":      levelPairs(asks),
		"nonce":     nonce,
		"timestamp": ts,
	})
}

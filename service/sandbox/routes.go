package sandbox

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/labstack/echo"

	"github.com/MarcelRaschke/ccxt/common/crypto"
	"github.com/MarcelRaschke/ccxt/common/number"
	"github.com/MarcelRaschke/ccxt/common/timeutil"
	"github.com/MarcelRaschke/ccxt/common/util"
	"github.com/MarcelRaschke/ccxt/exchange/orderbook"
)

func (s *Sandbox) routes() {
	api := s.e.Group("/api/v1")
	api.GET("/time", s.handleTime)
	api.GET("/markets", s.handleMarkets)
	api.GET("/currencies", s.handleCurrencies)
	api.GET("/ticker/:id", s.handleTicker)
	api.GET("/depth", s.handleDepth)

	signed := api.Group("", s.verifySignature)
	signed.POST("/order", s.handleCreateOrder)
	signed.DELETE("/order/:id", s.handleCancelOrder)
	signed.GET("/balance", s.handleBalance)

	s.e.GET("/ws", s.handleFeed)
}

// verifySignature checks the auth headers the same way the client signer
// builds them
func (s *Sandbox) verifySignature(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		apiKey := req.Header.Get("X-API-KEY")
		ts := req.Header.Get("X-TIMESTAMP")
		sig := req.Header.Get("X-SIGNATURE")
		if apiKey != s.config.APIKey || len(ts) == 0 || len(sig) == 0 {
			return c.JSON(http.StatusUnauthorized, errBody(ErrBadSignature.Error()))
		}
		body := []byte{}
		if req.Body != nil {
			bs, err := ioutil.ReadAll(req.Body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errBody(err.Error()))
			}
			body = bs
			req.Body = ioutil.NopCloser(bytes.NewReader(bs))
		}
		payload := ts + req.Method + req.URL.RequestURI() + string(body)
		expected := crypto.HmacHex([]byte(payload), []byte(s.config.Secret), crypto.AlgoSha256)
		if sig != expected {
			return c.JSON(http.StatusUnauthorized, errBody(ErrBadSignature.Error()))
		}
		return next(c)
	}
}

func errBody(msg string) map[string]interface{} {
	return map[string]interface{}{
		"error": msg,
	}
}

func (s *Sandbox) handleTime(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"serverTime": timeutil.Milliseconds(),
	})
}

func (s *Sandbox) handleMarkets(c echo.Context) error {
	list := []map[string]interface{}{}
	for _, m := range s.markets {
		list = append(list, map[string]interface{}{
			"id":              m.ID,
			"symbol":          m.Symbol,
			"base":            m.Base,
			"quote":           m.Quote,
			"active":          true,
			"pricePrecision":  m.PricePrecision,
			"amountPrecision": m.AmountPrecision,
			"minAmount":       m.MinAmount,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"markets": list,
	})
}

func (s *Sandbox) handleCurrencies(c echo.Context) error {
	seen := map[string]bool{}
	list := []map[string]interface{}{}
	for _, m := range s.markets {
		for _, code := range []string{m.Base, m.Quote} {
			if seen[code] {
				continue
			}
			seen[code] = true
			list = append(list, map[string]interface{}{
				"id":        code,
				"code":      code,
				"precision": 8,
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"currencies": list,
	})
}

func (s *Sandbox) handleTicker(c echo.Context) error {
	id := c.Param("id")
	s.Lock()
	m, has := s.byID[id]
	s.Unlock()
	if !has {
		return c.JSON(http.StatusBadRequest, errBody(ErrUnknownMarket.Error()))
	}
	book := s.books[id]
	res := map[string]interface{}{
		"symbol":    m.ID,
		"last":      s.lastPrice(id).String(),
		"timestamp": timeutil.Milliseconds(),
	}
	if bid, has := book.BestBid(); has {
		res["bid"] = bid.Price
	}
	if ask, has := book.BestAsk(); has {
		res["ask"] = ask.Price
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Sandbox) lastPrice(id string) *number.Amount {
	s.Lock()
	defer s.Unlock()
	return s.last[id]
}

func (s *Sandbox) handleDepth(c echo.Context) error {
	id := c.QueryParam("symbol")
	book, has := s.books[id]
	if !has {
		return c.JSON(http.StatusBadRequest, errBody(ErrUnknownMarket.Error()))
	}
	limit := 0
	if v := c.QueryParam("limit"); len(v) > 0 {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errBody(err.Error()))
		}
		limit = n
	}
	snap := book.Snapshot(limit)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"symbol":    id,
		"bids":      levelPairs(snap.Bids),
		"asks":      levelPairs(snap.Asks),
		"nonce":     snap.Nonce,
		"timestamp": timeutil.Milliseconds(),
	})
}

func levelPairs(levels []orderbook.Level) [][]float64 {
	out := [][]float64{}
	for _, lv := range levels {
		out = append(out, []float64{lv.Price, lv.Amount})
	}
	return out
}

func (s *Sandbox) handleCreateOrder(c echo.Context) error {
	defer c.Request().Body.Close()
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	var req map[string]interface{}
	if err := dec.Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errBody(err.Error()))
	}

	id := util.SafeString(req, "symbol", "")
	side := util.SafeStringLower(req, "side", "")
	orderType := util.SafeStringLower(req, "type", "limit")
	s.Lock()
	m, has := s.byID[id]
	s.Unlock()
	if !has {
		return c.JSON(http.StatusBadRequest, errBody(ErrUnknownMarket.Error()))
	}
	if side != "buy" && side != "sell" {
		return c.JSON(http.StatusBadRequest, errBody(ErrInvalidOrder.Error()))
	}

	amount, err := number.ParseAmount(util.SafeString(req, "amount", ""))
	if err != nil || amount.IsZero() {
		return c.JSON(http.StatusBadRequest, errBody(ErrInvalidOrder.Error()))
	}
	if len(m.MinAmount) > 0 {
		min := number.MustParseAmount(m.MinAmount)
		if amount.Less(min) {
			return c.JSON(http.StatusBadRequest, errBody(ErrInvalidOrder.Error()))
		}
	}

	switch orderType {
	case "limit":
		price, err := number.ParseAmount(util.SafeString(req, "price", ""))
		if err != nil || price.IsZero() {
			return c.JSON(http.StatusBadRequest, errBody(ErrInvalidOrder.Error()))
		}
		return s.placeLimit(c, m, side, price, amount)
	case "market":
		return s.placeMarket(c, m, side, amount)
	default:
		return c.JSON(http.StatusBadRequest, errBody(ErrInvalidOrder.Error()))
	}
}

// cost returns price * amount at the fixed point scale
func cost(price, amount *number.Amount) *number.Amount {
	return price.Mul(amount).DivC(number.FractionalMax)
}

func (s *Sandbox) placeLimit(c echo.Context, m *MarketDef, side string, price, amount *number.Amount) error {
	lock := m.Base
	need := amount
	if side == "buy" {
		lock = m.Quote
		need = cost(price, amount)
	}
	s.Lock()
	if s.free(lock).Less(need) {
		s.Unlock()
		return c.JSON(http.StatusBadRequest, errBody(ErrInsufficientFunds.Error()))
	}
	s.balances[lock] = s.free(lock).Sub(need)
	s.locked[lock] = s.used(lock).Add(need)
	s.Unlock()

	entry := &orderEntry{
		id:        strconv.FormatInt(s.nextID(), 10),
		marketID:  m.ID,
		side:      side,
		orderType: "limit",
		status:    "open",
		price:     price,
		amount:    amount,
		filled:    number.NewAmount(0, 0),
		timestamp: timeutil.Milliseconds(),
	}
	s.Lock()
	s.orders[entry.id] = entry
	s.Unlock()

	s.addLiquidity(m.ID, side, price, amount)
	return c.JSON(http.StatusOK, orderJSON(entry))
}

func (s *Sandbox) placeMarket(c echo.Context, m *MarketDef, side string, amount *number.Amount) error {
	book := s.books[m.ID]
	var best orderbook.Level
	var has bool
	if side == "buy" {
		best, has = book.BestAsk()
	} else {
		best, has = book.BestBid()
	}
	if !has {
		return c.JSON(http.StatusBadRequest, errBody(ErrInvalidOrder.Error()))
	}
	price := number.MustParseAmount(number.NumberToString(best.Price))
	avail := number.MustParseAmount(number.NumberToString(best.Amount))
	if avail.Less(amount) {
		return c.JSON(http.StatusBadRequest, errBody(ErrInvalidOrder.Error()))
	}

	pay := m.Quote
	need := cost(price, amount)
	recv := m.Base
	got := amount
	if side == "sell" {
		pay, recv = m.Base, m.Quote
		need, got = amount, cost(price, amount)
	}
	s.Lock()
	if s.free(pay).Less(need) {
		s.Unlock()
		return c.JSON(http.StatusBadRequest, errBody(ErrInsufficientFunds.Error()))
	}
	s.balances[pay] = s.free(pay).Sub(need)
	s.balances[recv] = s.free(recv).Add(got)
	s.last[m.ID] = price
	s.Unlock()

	s.takeLiquidity(m.ID, side, best, amount)

	entry := &orderEntry{
		id:        strconv.FormatInt(s.nextID(), 10),
		marketID:  m.ID,
		side:      side,
		orderType: "market",
		status:    "closed",
		price:     price,
		amount:    amount,
		filled:    amount,
		timestamp: timeutil.Milliseconds(),
	}
	s.Lock()
	s.orders[entry.id] = entry
	s.Unlock()
	return c.JSON(http.StatusOK, orderJSON(entry))
}

func (s *Sandbox) handleCancelOrder(c echo.Context) error {
	id := c.Param("id")
	s.Lock()
	entry, has := s.orders[id]
	if !has {
		s.Unlock()
		return c.JSON(http.StatusNotFound, errBody("order "+id+" not found"))
	}
	// check and transition under one lock so a second cancel cannot
	// release the funds again
	if entry.status != "open" {
		s.Unlock()
		return c.JSON(http.StatusBadRequest, errBody(ErrInvalidOrder.Error()))
	}
	entry.status = "canceled"
	m := s.byID[entry.marketID]
	remaining := entry.amount.Sub(entry.filled)
	release := remaining
	code := m.Base
	if entry.side == "buy" {
		code = m.Quote
		release = cost(entry.price, remaining)
	}
	s.locked[code] = s.used(code).Sub(release)
	s.balances[code] = s.free(code).Add(release)
	s.Unlock()

	s.removeLiquidity(entry.marketID, entry.side, entry.price, remaining)
	return c.JSON(http.StatusOK, orderJSON(entry))
}

func (s *Sandbox) handleBalance(c echo.Context) error {
	s.Lock()
	balances := map[string]interface{}{}
	for code, free := range s.balances {
		balances[code] = map[string]interface{}{
			"free": free.String(),
			"used": s.used(code).String(),
		}
	}
	s.Unlock()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"balances": balances,
	})
}

func orderJSON(entry *orderEntry) map[string]interface{} {
	return map[string]interface{}{
		"id":        entry.id,
		"symbol":    entry.marketID,
		"side":      entry.side,
		"type":      entry.orderType,
		"status":    entry.status,
		"price":     entry.price.String(),
		"amount":    entry.amount.String(),
		"filled":    entry.filled.String(),
		"timestamp": entry.timestamp,
	}
}

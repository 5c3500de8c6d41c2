package exchange

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/MarcelRaschke/ccxt/common/util"
	"github.com/MarcelRaschke/ccxt/exchange/orderbook"
)

// FetchTime returns the venue clock in milliseconds
func (ex *Exchange) FetchTime(ctx context.Context) (int64, error) {
	res, err := ex.Request(ctx, http.MethodGet, "/api/v1/time", nil, false)
	if err != nil {
		return 0, err
	}
	ts := util.SafeInteger(res, "serverTime", -1)
	if ts < 0 {
		return 0, errors.Wrap(ErrBadResponse, "serverTime missing")
	}
	return ts, nil
}

// FetchTicker returns the normalized ticker of the symbol
func (ex *Exchange) FetchTicker(ctx context.Context, symbol string) (*Ticker, error) {
	market, err := ex.Market(symbol)
	if err != nil {
		return nil, err
	}
	res, err := ex.Request(ctx, http.MethodGet, "/api/v1/ticker/"+market.ID, nil, false)
	if err != nil {
		return nil, err
	}
	return ParseTicker(res, symbol), nil
}

// FetchOrderBook returns a depth snapshot of the symbol
func (ex *Exchange) FetchOrderBook(ctx context.Context, symbol string, limit int) (*orderbook.Snapshot, error) {
	market, err := ex.Market(symbol)
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{
		"symbol": market.ID,
	}
	if limit > 0 {
		params["limit"] = int64(limit)
	}
	res, err := ex.Request(ctx, http.MethodGet, "/api/v1/depth", params, false)
	if err != nil {
		return nil, err
	}
	book := orderbook.New(symbol)
	book.Load(
		parseLevels(util.SafeList(res, "bids")),
		parseLevels(util.SafeList(res, "asks")),
		util.SafeInteger(res, "nonce", 0),
		util.SafeTimestamp(res, "timestamp", 0),
	)
	return book.Snapshot(limit), nil
}

func parseLevels(raw []interface{}) []orderbook.Level {
	out := make([]orderbook.Level, 0, len(raw))
	for _, v := range raw {
		pair, ok := v.([]interface{})
		if !ok || len(pair) < 2 {
			continue
		}
		entry := map[string]interface{}{
			"price":  pair[0],
			"amount": pair[1],
		}
		out = append(out, orderbook.Level{
			Price:  util.SafeFloat(entry, "price", 0),
			Amount: util.SafeFloat(entry, "amount", 0),
		})
	}
	return out
}

// CreateOrder places an order and returns the normalized result
func (ex *Exchange) CreateOrder(ctx context.Context, symbol, orderType, side string, amount, price float64) (*Order, error) {
	market, err := ex.Market(symbol)
	if err != nil {
		return nil, err
	}
	amountStr, err := ex.AmountToPrecision(symbol, amount)
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{
		"symbol": market.ID,
		"type":   orderType,
		"side":   side,
		"amount": amountStr,
	}
	if orderType == "limit" {
		priceStr, err := ex.PriceToPrecision(symbol, price)
		if err != nil {
			return nil, err
		}
		params["price"] = priceStr
	}
	res, err := ex.Request(ctx, http.MethodPost, "/api/v1/order", params, true)
	if err != nil {
		return nil, err
	}
	return ParseOrder(res, symbol), nil
}

// CancelOrder cancels the order of the id
func (ex *Exchange) CancelOrder(ctx context.Context, id, symbol string) (*Order, error) {
	market, err := ex.Market(symbol)
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{
		"symbol": market.ID,
	}
	res, err := ex.Request(ctx, http.MethodDelete, "/api/v1/order/"+id, params, true)
	if err != nil {
		return nil, err
	}
	return ParseOrder(res, symbol), nil
}

// FetchBalance returns the funds of the account by currency code
func (ex *Exchange) FetchBalance(ctx context.Context) (map[string]*Balance, error) {
	res, err := ex.Request(ctx, http.MethodGet, "/api/v1/balance", nil, true)
	if err != nil {
		return nil, err
	}
	balances := util.SafeMap(res, "balances")
	if balances == nil {
		return nil, errors.Wrap(ErrBadResponse, "balances missing")
	}
	return ParseBalances(balances)
}

package exchange

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRaw(t *testing.T, payload string) map[string]interface{} {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	var m map[string]interface{}
	require.NoError(t, dec.Decode(&m))
	return m
}

func TestParseMarket(t *testing.T) {
	m := ParseMarket(decodeRaw(t, `{
		"id": "BTCUSDT", "symbol": "BTC/USDT", "base": "btc", "quote": "usdt",
		"pricePrecision": 2, "amountPrecision": 6, "minAmount": 0.0001
	}`))
	assert.Equal(t, "BTCUSDT", m.ID)
	assert.Equal(t, "BTC/USDT", m.Symbol)
	assert.Equal(t, "BTC", m.Base)
	assert.Equal(t, "USDT", m.Quote)
	assert.True(t, m.Active)
	assert.Equal(t, 2, m.PricePrecision)
	assert.Equal(t, 6, m.AmountPrecision)
	assert.Equal(t, 0.0001, m.MinAmount)

	bare := ParseMarket(decodeRaw(t, `{"id": "X"}`))
	assert.Equal(t, 8, bare.PricePrecision)
	assert.Equal(t, 8, bare.AmountPrecision)
}

func TestParseTicker(t *testing.T) {
	tk := ParseTicker(decodeRaw(t, `{
		"last": "42000.5", "bid": 41999, "ask": 42001, "timestamp": 714862627000
	}`), "BTC/USDT")
	assert.Equal(t, "BTC/USDT", tk.Symbol)
	assert.Equal(t, 42000.5, tk.Last)
	assert.Equal(t, 41999.0, tk.Bid)
	assert.Equal(t, 42001.0, tk.Ask)
	assert.Equal(t, "1992-08-26T20:57:07.000Z", tk.Datetime)
}

func TestParseOrder(t *testing.T) {
	o := ParseOrder(decodeRaw(t, `{
		"id": "17", "side": "BUY", "type": "LIMIT", "status": "open",
		"price": "41000", "amount": "0.5", "filled": "0.2", "timestamp": 1600000000123
	}`), "BTC/USDT")
	assert.Equal(t, "17", o.ID)
	assert.Equal(t, "buy", o.Side)
	assert.Equal(t, "limit", o.Type)
	assert.Equal(t, 41000.0, o.Price)
	assert.Equal(t, 0.5, o.Amount)
	assert.Equal(t, 0.2, o.Filled)
	assert.InDelta(t, 0.3, o.Remaining, 1e-12)
	assert.Equal(t, int64(1600000000123), o.Timestamp)
}

func TestParseBalances(t *testing.T) {
	out, err := ParseBalances(decodeRaw(t, `{
		"BTC": {"free": "2.5", "used": "0.5"},
		"USDT": {"free": "100000", "used": "0"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "2.5", out["BTC"].Free.String())
	assert.Equal(t, "0.5", out["BTC"].Used.String())
	assert.Equal(t, "3", out["BTC"].Total.String())
	assert.Equal(t, "100000", out["USDT"].Total.String())

	_, err = ParseBalances(decodeRaw(t, `{"BTC": {"free": "x"}}`))
	assert.Error(t, err)
}

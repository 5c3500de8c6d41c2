package exchange

import (
	"github.com/MarcelRaschke/ccxt/common/number"
	"github.com/MarcelRaschke/ccxt/common/timeutil"
	"github.com/MarcelRaschke/ccxt/common/util"
)

// ParseMarket normalizes a raw market description
func ParseMarket(m map[string]interface{}) *Market {
	return &Market{
		ID:              util.SafeString(m, "id", ""),
		Symbol:          util.SafeString(m, "symbol", ""),
		Base:            util.SafeStringUpper(m, "base", ""),
		Quote:           util.SafeStringUpper(m, "quote", ""),
		Active:          util.SafeBool(m, "active", true),
		AmountPrecision: int(util.SafeInteger(m, "amountPrecision", 8)),
		PricePrecision:  int(util.SafeInteger(m, "pricePrecision", 8)),
		TickSize:        util.SafeString(m, "tickSize", ""),
		MinAmount:       util.SafeFloat(m, "minAmount", 0),
		Info:            m,
	}
}

// ParseCurrency normalizes a raw currency description
func ParseCurrency(m map[string]interface{}) *Currency {
	return &Currency{
		ID:        util.SafeString(m, "id", ""),
		Code:      util.SafeStringUpper(m, "code", ""),
		Precision: int(util.SafeInteger(m, "precision", 8)),
		Info:      m,
	}
}

// ParseTicker normalizes a raw ticker of the symbol
func ParseTicker(m map[string]interface{}, symbol string) *Ticker {
	ts := util.SafeTimestamp(m, "timestamp", 0)
	return &Ticker{
		Symbol:     symbol,
		Timestamp:  ts,
		Datetime:   timeutil.ISO8601(ts),
		Last:       util.SafeFloat(m, "last", 0),
		Bid:        util.SafeFloat(m, "bid", 0),
		Ask:        util.SafeFloat(m, "ask", 0),
		High:       util.SafeFloat(m, "high", 0),
		Low:        util.SafeFloat(m, "low", 0),
		BaseVolume: util.SafeFloat(m, "baseVolume", 0),
		Info:       m,
	}
}

// ParseOrder normalizes a raw order of the symbol
func ParseOrder(m map[string]interface{}, symbol string) *Order {
	amount := util.SafeFloat(m, "amount", 0)
	filled := util.SafeFloat(m, "filled", 0)
	return &Order{
		ID:        util.SafeString(m, "id", ""),
		Symbol:    symbol,
		Side:      util.SafeStringLower(m, "side", ""),
		Type:      util.SafeStringLower(m, "type", ""),
		Status:    util.SafeStringLower(m, "status", "open"),
		Price:     util.SafeFloat(m, "price", 0),
		Amount:    amount,
		Filled:    filled,
		Remaining: amount - filled,
		Timestamp: util.SafeTimestamp(m, "timestamp", 0),
		Info:      m,
	}
}

// ParseTrade normalizes a raw trade of the symbol
func ParseTrade(m map[string]interface{}, symbol string) *Trade {
	return &Trade{
		ID:        util.SafeString(m, "id", ""),
		OrderID:   util.SafeString(m, "orderId", ""),
		Symbol:    symbol,
		Side:      util.SafeStringLower(m, "side", ""),
		Price:     util.SafeFloat(m, "price", 0),
		Amount:    util.SafeFloat(m, "amount", 0),
		Timestamp: util.SafeTimestamp(m, "timestamp", 0),
		Info:      m,
	}
}

// ParseBalances normalizes a raw balance map of currency code to the
// free/used pair written as decimal strings
func ParseBalances(m map[string]interface{}) (map[string]*Balance, error) {
	out := map[string]*Balance{}
	for code := range m {
		entry := util.SafeMap(m, code)
		if entry == nil {
			continue
		}
		free, err := number.ParseAmount(util.SafeString(entry, "free", "0"))
		if err != nil {
			return nil, err
		}
		used, err := number.ParseAmount(util.SafeString(entry, "used", "0"))
		if err != nil {
			return nil, err
		}
		out[code] = &Balance{
			Free:  free,
			Used:  used,
			Total: free.Add(used),
		}
	}
	return out, nil
}

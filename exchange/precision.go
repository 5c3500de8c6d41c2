package exchange

import (
	"strconv"

	"github.com/MarcelRaschke/ccxt/common/number"
)

// AmountToPrecision truncates the amount to the precision of the market
func (ex *Exchange) AmountToPrecision(symbol string, amount float64) (string, error) {
	market, err := ex.Market(symbol)
	if err != nil {
		return "", err
	}
	return number.DecimalToPrecision(
		number.NumberToString(amount),
		number.Truncate,
		strconv.Itoa(market.AmountPrecision),
		number.DecimalPlaces,
		number.NoPadding,
	)
}

// PriceToPrecision rounds the price to the precision of the market. A market
// with a tick size uses it instead of the decimal-place count.
func (ex *Exchange) PriceToPrecision(symbol string, price float64) (string, error) {
	market, err := ex.Market(symbol)
	if err != nil {
		return "", err
	}
	if len(market.TickSize) > 0 {
		return number.DecimalToPrecision(
			number.NumberToString(price),
			number.Round,
			market.TickSize,
			number.TickSize,
			number.NoPadding,
		)
	}
	return number.DecimalToPrecision(
		number.NumberToString(price),
		number.Round,
		strconv.Itoa(market.PricePrecision),
		number.DecimalPlaces,
		number.NoPadding,
	)
}

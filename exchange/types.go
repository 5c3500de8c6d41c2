package exchange

import (
	"github.com/MarcelRaschke/ccxt/common/number"
)

// Market describes one tradable market of the venue
type Market struct {
	ID              string                 `json:"id"`
	Symbol          string                 `json:"symbol"`
	Base            string                 `json:"base"`
	Quote           string                 `json:"quote"`
	Active          bool                   `json:"active"`
	AmountPrecision int                    `json:"amountPrecision"`
	PricePrecision  int                    `json:"pricePrecision"`
	TickSize        string                 `json:"tickSize,omitempty"`
	MinAmount       float64                `json:"minAmount"`
	Info            map[string]interface{} `json:"info,omitempty"`
}

// Currency describes one currency of the venue
type Currency struct {
	ID        string                 `json:"id"`
	Code      string                 `json:"code"`
	Precision int                    `json:"precision"`
	Info      map[string]interface{} `json:"info,omitempty"`
}

// Ticker is a normalized market ticker
type Ticker struct {
	Symbol     string                 `json:"symbol"`
	Timestamp  int64                  `json:"timestamp"`
	Datetime   string                 `json:"datetime"`
	Last       float64                `json:"last"`
	Bid        float64                `json:"bid"`
	Ask        float64                `json:"ask"`
	High       float64                `json:"high"`
	Low        float64                `json:"low"`
	BaseVolume float64                `json:"baseVolume"`
	Info       map[string]interface{} `json:"info,omitempty"`
}

// Order is a normalized order
type Order struct {
	ID        string                 `json:"id"`
	Symbol    string                 `json:"symbol"`
	Side      string                 `json:"side"`
	Type      string                 `json:"type"`
	Status    string                 `json:"status"`
	Price     float64                `json:"price"`
	Amount    float64                `json:"amount"`
	Filled    float64                `json:"filled"`
	Remaining float64                `json:"remaining"`
	Timestamp int64                  `json:"timestamp"`
	Info      map[string]interface{} `json:"info,omitempty"`
}

// Trade is a normalized public or private trade
type Trade struct {
	ID        string                 `json:"id"`
	OrderID   string                 `json:"orderId,omitempty"`
	Symbol    string                 `json:"symbol"`
	Side      string                 `json:"side"`
	Price     float64                `json:"price"`
	Amount    float64                `json:"amount"`
	Timestamp int64                  `json:"timestamp"`
	Info      map[string]interface{} `json:"info,omitempty"`
}

// Balance keeps the funds of one currency as exact amounts
type Balance struct {
	Free  *number.Amount `json:"free"`
	Used  *number.Amount `json:"used"`
	Total *number.Amount `json:"total"`
}

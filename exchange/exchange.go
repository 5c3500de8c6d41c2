package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bluele/gcache"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/MarcelRaschke/ccxt/common/timeutil"
	"github.com/MarcelRaschke/ccxt/common/util"
)

// Config is the static setup of an Exchange
type Config struct {
	Name       string
	APIKey     string
	Secret     string
	BaseURL    string
	WSURL      string
	Timeout    time.Duration
	RateLimit  time.Duration
	Burst      float64
	MarketsTTL time.Duration
}

const marketsCacheKey = "markets"

type marketsEntry struct {
	markets     map[string]*Market
	marketsByID map[string]*Market
	currencies  map[string]*Currency
}

// Exchange is the base client of a venue
type Exchange struct {
	sync.Mutex
	config      Config
	client      *http.Client
	signer      Signer
	throttler   *Throttler
	marketCache gcache.Cache
	markets     map[string]*Market
	marketsByID map[string]*Market
	currencies  map[string]*Currency
}

// New returns an Exchange of the config
func New(cfg Config) *Exchange {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 50 * time.Millisecond
	}
	if cfg.Burst < 1 {
		cfg.Burst = 5
	}
	if cfg.MarketsTTL <= 0 {
		cfg.MarketsTTL = time.Hour
	}
	ex := &Exchange{
		config:      cfg,
		client:      &http.Client{Timeout: cfg.Timeout},
		signer:      NewHmacSigner(cfg.APIKey, cfg.Secret),
		throttler:   NewThrottler(cfg.RateLimit, cfg.Burst),
		marketCache: gcache.New(1).LRU().Build(),
	}
	return ex
}

// SetSigner replaces the request signer
func (ex *Exchange) SetSigner(s Signer) {
	ex.Lock()
	defer ex.Unlock()
	ex.signer = s
}

// Name returns the venue name of the client
func (ex *Exchange) Name() string {
	return ex.config.Name
}

// Request throttles, signs and performs one REST call and decodes the JSON
// response into a generic map. Numbers are kept as json.Number.
func (ex *Exchange) Request(ctx context.Context, method, path string, params map[string]interface{}, signed bool) (map[string]interface{}, error) {
	if err := ex.throttler.Wait(ctx, 1); err != nil {
		return nil, err
	}

	reqURL := strings.TrimRight(ex.config.BaseURL, "/") + path
	var body string
	if len(params) > 0 {
		if method == http.MethodGet || method == http.MethodDelete {
			values := url.Values{}
			for _, k := range util.Keys(params) {
				values.Set(k, util.SafeString(params, k, ""))
			}
			reqURL += "?" + values.Encode()
		} else {
			bs, err := json.Marshal(params)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			body = string(bs)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader([]byte(body)))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if signed {
		sr := &SignRequest{
			Method:    method,
			Path:      req.URL.RequestURI(),
			Body:      body,
			Timestamp: timeutil.Nonce(),
			Headers:   req.Header,
		}
		if err := ex.signer.Sign(sr); err != nil {
			return nil, err
		}
	}

	res, err := ex.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrExchangeNotAvailable, err.Error())
	}
	defer res.Body.Close()

	bs, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(ErrBadResponse, err.Error())
	}
	if res.StatusCode != http.StatusOK {
		return nil, httpError(res.StatusCode, bs)
	}

	dec := json.NewDecoder(bytes.NewReader(bs))
	dec.UseNumber()
	out := map[string]interface{}{}
	if err := dec.Decode(&out); err != nil {
		return nil, errors.Wrap(ErrBadResponse, err.Error())
	}
	return out, nil
}

// httpError maps the response status to the error taxonomy keeping the
// response text as context
func httpError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	switch status {
	case http.StatusBadRequest:
		return errors.Wrap(ErrBadRequest, msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Wrap(ErrAuthentication, msg)
	case http.StatusNotFound:
		return errors.Wrap(ErrOrderNotFound, msg)
	case http.StatusTooManyRequests:
		return errors.Wrap(ErrRateLimitExceeded, msg)
	default:
		return errors.Wrap(ErrExchangeNotAvailable, msg)
	}
}

// LoadMarkets fetches and caches the markets and the currencies of the
// venue. The cached registry is reused until the TTL passes unless reload
// is set.
func (ex *Exchange) LoadMarkets(ctx context.Context, reload bool) (map[string]*Market, error) {
	if !reload {
		if v, err := ex.marketCache.Get(marketsCacheKey); err == nil {
			entry := v.(*marketsEntry)
			ex.install(entry)
			return entry.markets, nil
		}
	}

	var rawMarkets, rawCurrencies []interface{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := ex.Request(gctx, http.MethodGet, "/api/v1/markets", nil, false)
		if err != nil {
			return err
		}
		rawMarkets = util.SafeList(res, "markets")
		return nil
	})
	g.Go(func() error {
		res, err := ex.Request(gctx, http.MethodGet, "/api/v1/currencies", nil, false)
		if err != nil {
			return err
		}
		rawCurrencies = util.SafeList(res, "currencies")
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entry := &marketsEntry{
		markets:     map[string]*Market{},
		marketsByID: map[string]*Market{},
		currencies:  map[string]*Currency{},
	}
	for _, raw := range rawMarkets {
		m, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		market := ParseMarket(m)
		entry.markets[market.Symbol] = market
		entry.marketsByID[market.ID] = market
	}
	for _, raw := range rawCurrencies {
		m, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		currency := ParseCurrency(m)
		entry.currencies[currency.Code] = currency
	}
	if err := ex.marketCache.SetWithExpire(marketsCacheKey, entry, ex.config.MarketsTTL); err != nil {
		return nil, errors.WithStack(err)
	}
	ex.install(entry)
	return entry.markets, nil
}

func (ex *Exchange) install(entry *marketsEntry) {
	ex.Lock()
	defer ex.Unlock()
	ex.markets = entry.markets
	ex.marketsByID = entry.marketsByID
	ex.currencies = entry.currencies
}

// Market returns the loaded market of the symbol
func (ex *Exchange) Market(symbol string) (*Market, error) {
	ex.Lock()
	defer ex.Unlock()
	if m, has := ex.markets[symbol]; has {
		return m, nil
	}
	return nil, errors.Wrap(ErrMarketNotFound, symbol)
}

// MarketByID returns the loaded market of the venue specific id
func (ex *Exchange) MarketByID(id string) (*Market, error) {
	ex.Lock()
	defer ex.Unlock()
	if m, has := ex.marketsByID[id]; has {
		return m, nil
	}
	return nil, errors.Wrap(ErrMarketNotFound, id)
}

// Currencies returns the loaded currencies sorted by code
func (ex *Exchange) Currencies() []*Currency {
	ex.Lock()
	defer ex.Unlock()
	out := make([]*Currency, 0, len(ex.currencies))
	for _, c := range ex.currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
	return out
}

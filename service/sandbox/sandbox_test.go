package sandbox

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcelRaschke/ccxt/common/crypto"
	"github.com/MarcelRaschke/ccxt/common/timeutil"
)

func testSandbox(t *testing.T) (*Sandbox, *httptest.Server) {
	fixture := &Fixture{
		Markets: []*MarketDef{
			{
				ID:              "BTCUSDT",
				Symbol:          "BTC/USDT",
				Base:            "BTC",
				Quote:           "USDT",
				PricePrecision:  2,
				AmountPrecision: 6,
				MinAmount:       "0.0001",
				InitialPrice:    "42000",
			},
		},
		Balances: map[string]string{
			"BTC":  "2.5",
			"USDT": "100000",
		},
	}
	s, err := NewFromFixture(Config{APIKey: "key", Secret: "secret"}, fixture)
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return s, srv
}

func getJSON(t *testing.T, url string) (int, map[string]interface{}) {
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res.StatusCode, out
}

func TestLoadFixtureFile(t *testing.T) {
	path := filepath.Join("testdata", "markets.yml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fixture missing: %v", err)
	}
	s, err := New(Config{APIKey: "k", Secret: "s"}, path)
	require.NoError(t, err)
	assert.NotEmpty(t, s.markets)

	_, err = New(Config{}, filepath.Join("testdata", "missing.yml"))
	assert.Error(t, err)
}

func TestEmptyFixtureRejected(t *testing.T) {
	_, err := NewFromFixture(Config{}, &Fixture{})
	assert.Error(t, err)
}

func TestPublicEndpoints(t *testing.T) {
	_, srv := testSandbox(t)

	status, body := getJSON(t, srv.URL+"/api/v1/time")
	assert.Equal(t, http.StatusOK, status)
	assert.Greater(t, body["serverTime"].(float64), float64(1600000000000))

	status, body = getJSON(t, srv.URL+"/api/v1/markets")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["markets"], 1)

	status, body = getJSON(t, srv.URL+"/api/v1/currencies")
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["currencies"], 2)

	status, body = getJSON(t, srv.URL+"/api/v1/ticker/BTCUSDT")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "42000", body["last"])

	status, _ = getJSON(t, srv.URL+"/api/v1/ticker/NOPE")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = getJSON(t, srv.URL+"/api/v1/depth?symbol=BTCUSDT")
	assert.Equal(t, http.StatusOK, status)
	assert.NotNil(t, body["bids"])
	assert.NotNil(t, body["asks"])

	status, _ = getJSON(t, srv.URL+"/api/v1/depth?symbol=NOPE")
	assert.Equal(t, http.StatusBadRequest, status)
}

func newSignedRequest(srv *httptest.Server, secret, method, path, body string) (*http.Request, error) {
	req, err := http.NewRequest(method, srv.URL+path, bytes.NewReader([]byte(body)))
	if err != nil {
		return nil, err
	}
	ts := strconv.FormatInt(timeutil.Nonce(), 10)
	sig := crypto.HmacHex([]byte(ts+method+path+body), []byte(secret), crypto.AlgoSha256)
	req.Header.Set("X-API-KEY", "key")
	req.Header.Set("X-TIMESTAMP", ts)
	req.Header.Set("X-SIGNATURE", sig)
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func signedRequest(t *testing.T, srv *httptest.Server, secret, method, path, body string) *http.Response {
	req, err := newSignedRequest(srv, secret, method, path, body)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return res
}

func TestSignatureRequired(t *testing.T) {
	_, srv := testSandbox(t)

	res, err := http.Get(srv.URL + "/api/v1/balance")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res = signedRequest(t, srv, "wrong", http.MethodGet, "/api/v1/balance", "")
	res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res = signedRequest(t, srv, "secret", http.MethodGet, "/api/v1/balance", "")
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	bs, err := ioutil.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "balances")
}

func TestCreateOrderValidation(t *testing.T) {
	_, srv := testSandbox(t)

	cases := []string{
		`{"symbol":"NOPE","side":"buy","type":"limit","price":"1","amount":"1"}`,
		`{"symbol":"BTCUSDT","side":"hold","type":"limit","price":"1","amount":"1"}`,
		`{"symbol":"BTCUSDT","side":"buy","type":"limit","price":"41000","amount":"0.00001"}`,
		`{"symbol":"BTCUSDT","side":"buy","type":"limit","price":"0","amount":"1"}`,
		`{"symbol":"BTCUSDT","side":"buy","type":"stop","price":"1","amount":"1"}`,
		`{"symbol":"BTCUSDT","side":"buy","type":"market","amount":"1"}`,
	}
	for _, body := range cases {
		res := signedRequest(t, srv, "secret", http.MethodPost, "/api/v1/order", body)
		res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	}
}

func TestOrderMovesBalances(t *testing.T) {
	s, srv := testSandbox(t)

	body := `{"symbol":"BTCUSDT","side":"buy","type":"limit","price":"41000","amount":"0.5"}`
	res := signedRequest(t, srv, "secret", http.MethodPost, "/api/v1/order", body)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	var order map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&order))
	assert.Equal(t, "open", order["status"])

	s.Lock()
	free := s.free("USDT").String()
	used := s.used("USDT").String()
	s.Unlock()
	assert.Equal(t, "79500", free)
	assert.Equal(t, "20500", used)

	id := order["id"].(string)
	res = signedRequest(t, srv, "secret", http.MethodDelete, "/api/v1/order/"+id, "")
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	s.Lock()
	free = s.free("USDT").String()
	used = s.used("USDT").String()
	s.Unlock()
	assert.Equal(t, "100000", free)
	assert.Equal(t, "0", used)

	res = signedRequest(t, srv, "secret", http.MethodDelete, "/api/v1/order/"+id, "")
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "a canceled order cannot cancel again")

	res = signedRequest(t, srv, "secret", http.MethodDelete, "/api/v1/order/999", "")
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestConcurrentCancelsReleaseOnce(t *testing.T) {
	s, srv := testSandbox(t)

	body := `{"symbol":"BTCUSDT","side":"buy","type":"limit","price":"41000","amount":"0.5"}`
	res := signedRequest(t, srv, "secret", http.MethodPost, "/api/v1/order", body)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	var order map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&order))
	id := order["id"].(string)

	const racers = 8
	statuses := make(chan int, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, err := newSignedRequest(srv, "secret", http.MethodDelete, "/api/v1/order/"+id, "")
			if err != nil {
				statuses <- 0
				return
			}
			r, err := http.DefaultClient.Do(req)
			if err != nil {
				statuses <- 0
				return
			}
			r.Body.Close()
			statuses <- r.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	succeeded := 0
	for code := range statuses {
		if code == http.StatusOK {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one cancel may win")

	s.Lock()
	free := s.free("USDT").String()
	used := s.used("USDT").String()
	s.Unlock()
	assert.Equal(t, "100000", free, "locked funds released exactly once")
	assert.Equal(t, "0", used)
}

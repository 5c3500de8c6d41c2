package sandbox

import (
	"io/ioutil"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/MarcelRaschke/ccxt/common/number"
	"github.com/MarcelRaschke/ccxt/exchange/orderbook"
)

// MarketDef is one market of the fixture
type MarketDef struct {
	ID              string `yaml:"id"`
	Symbol          string `yaml:"symbol"`
	Base            string `yaml:"base"`
	Quote           string `yaml:"quote"`
	PricePrecision  int    `yaml:"pricePrecision"`
	AmountPrecision int    `yaml:"amountPrecision"`
	MinAmount       string `yaml:"minAmount"`
	InitialPrice    string `yaml:"initialPrice"`
}

// Fixture is the yaml setup of the venue
type Fixture struct {
	Markets  []*MarketDef      `yaml:"markets"`
	Balances map[string]string `yaml:"balances"`
}

// Config sets up a Sandbox
type Config struct {
	APIKey string
	Secret string
}

type orderEntry struct {
	id        string
	marketID  string
	side      string
	orderType string
	status    string
	price     *number.Amount
	amount    *number.Amount
	filled    *number.Amount
	timestamp int64
}

// Sandbox is an in-process venue used to test the client layers against
type Sandbox struct {
	sync.Mutex
	e        *echo.Echo
	config   Config
	markets  []*MarketDef
	byID     map[string]*MarketDef
	books    map[string]*orderbook.OrderBook
	last     map[string]*number.Amount
	balances map[string]*number.Amount
	locked   map[string]*number.Amount
	orders   map[string]*orderEntry
	lastID   int64
	upgrader websocket.Upgrader
	feeds    map[string]map[chan []byte]bool
}

// New returns a Sandbox loaded from the fixture
func New(cfg Config, fixturePath string) (*Sandbox, error) {
	bs, err := ioutil.ReadFile(fixturePath)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var fixture Fixture
	if err := yaml.Unmarshal(bs, &fixture); err != nil {
		return nil, errors.WithStack(err)
	}
	return NewFromFixture(cfg, &fixture)
}

// NewFromFixture returns a Sandbox of the fixture
func NewFromFixture(cfg Config, fixture *Fixture) (*Sandbox, error) {
	if len(fixture.Markets) == 0 {
		return nil, errors.WithStack(ErrEmptyFixture)
	}
	s := &Sandbox{
		e:        echo.New(),
		config:   cfg,
		byID:     map[string]*MarketDef{},
		books:    map[string]*orderbook.OrderBook{},
		last:     map[string]*number.Amount{},
		balances: map[string]*number.Amount{},
		locked:   map[string]*number.Amount{},
		orders:   map[string]*orderEntry{},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		feeds: map[string]map[chan []byte]bool{},
	}
	s.e.HideBanner = true
	for _, m := range fixture.Markets {
		s.markets = append(s.markets, m)
		s.byID[m.ID] = m
		s.books[m.ID] = orderbook.New(m.Symbol)
		if len(m.InitialPrice) > 0 {
			price, err := number.ParseAmount(m.InitialPrice)
			if err != nil {
				return nil, err
			}
			s.last[m.ID] = price
		} else {
			s.last[m.ID] = number.NewAmount(0, 0)
		}
	}
	for code, v := range fixture.Balances {
		am, err := number.ParseAmount(v)
		if err != nil {
			return nil, err
		}
		s.balances[code] = am
		s.locked[code] = number.NewAmount(0, 0)
	}
	s.routes()
	return s, nil
}

// Handler exposes the venue as an http.Handler for in-process tests
func (s *Sandbox) Handler() http.Handler {
	return s.e
}

// Run starts the venue on the bind address
func (s *Sandbox) Run(bind string) error {
	return s.e.Start(bind)
}

func (s *Sandbox) nextID() int64 {
	s.Lock()
	defer s.Unlock()
	s.lastID++
	return s.lastID
}

func (s *Sandbox) free(code string) *number.Amount {
	if am, has := s.balances[code]; has {
		return am
	}
	return number.NewAmount(0, 0)
}

func (s *Sandbox) used(code string) *number.Amount {
	if am, has := s.locked[code]; has {
		return am
	}
	return number.NewAmount(0, 0)
}

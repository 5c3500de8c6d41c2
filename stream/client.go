package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/MarcelRaschke/ccxt/common/rlog"
	"github.com/MarcelRaschke/ccxt/common/util"
)

// Message is one decoded feed payload
type Message map[string]interface{}

// Client manages send and recv of one websocket feed connection
type Client struct {
	sync.Mutex
	conn      *websocket.Conn
	url       string
	isClose   bool
	pingCount uint64
	subs      map[string][]chan Message
	done      chan struct{}
}

// Dial connects to the feed and starts the ping and read loops
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c := &Client{
		conn: conn,
		url:  url,
		subs: map[string][]chan Message{},
		done: make(chan struct{}),
	}
	conn.EnableWriteCompression(false)
	conn.SetPongHandler(func(appData string) error {
		atomic.StoreUint64(&c.pingCount, 0)
		return nil
	})

	go func() {
		defer c.Close()

		pingCountLimit := uint64(3)
		for !c.closed() {
			c.Lock()
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				c.Unlock()
				return
			}
			c.Unlock()
			if atomic.AddUint64(&c.pingCount, 1) > pingCountLimit {
				return
			}
			time.Sleep(3 * time.Second)
		}
	}()
	go c.readLoop()
	return c, nil
}

func (c *Client) closed() bool {
	c.Lock()
	defer c.Unlock()
	return c.isClose
}

// Close closes the connection and every subscription channel
func (c *Client) Close() {
	c.Lock()
	if c.isClose {
		c.Unlock()
		return
	}
	c.isClose = true
	close(c.done)
	for _, chs := range c.subs {
		for _, ch := range chs {
			close(ch)
		}
	}
	c.subs = map[string][]chan Message{}
	c.Unlock()
	c.conn.Close()
}

// Done is closed when the connection has shut down
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Subscribe requests the channel from the feed and returns the delivery
// channel of its messages
func (c *Client) Subscribe(channel string) (<-chan Message, error) {
	if c.closed() {
		return nil, errors.WithStack(ErrClosed)
	}
	ch := make(chan Message, 64)
	c.Lock()
	c.subs[channel] = append(c.subs[channel], ch)
	c.Unlock()
	req := map[string]interface{}{
		"op":      "subscribe",
		"channel": channel,
	}
	if err := c.send(req); err != nil {
		c.Lock()
		chs := c.subs[channel]
		for i, v := range chs {
			if v == ch {
				c.subs[channel] = append(chs[:i], chs[i+1:]...)
				break
			}
		}
		c.Unlock()
		return nil, err
	}
	return ch, nil
}

// Unsubscribe stops the channel with the feed. Delivery channels stay open
// until the connection closes.
func (c *Client) Unsubscribe(channel string) error {
	req := map[string]interface{}{
		"op":      "unsubscribe",
		"channel": channel,
	}
	return c.send(req)
}

func (c *Client) send(v interface{}) error {
	bs, err := json.Marshal(v)
	if err != nil {
		return errors.WithStack(err)
	}
	c.Lock()
	defer c.Unlock()
	if c.isClose {
		return errors.WithStack(ErrClosed)
	}
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return errors.WithStack(err)
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, bs); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (c *Client) readLoop() {
	defer c.Close()

	for {
		_, rb, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		dec := json.NewDecoder(bytes.NewReader(rb))
		dec.UseNumber()
		var msg Message
		if err := dec.Decode(&msg); err != nil {
			rlog.Printf("%v readLoop %+v\n", c.url, err)
			continue
		}
		channel := util.SafeString(msg, "channel", "")
		if len(channel) == 0 {
			continue
		}
		// deliver under the lock so Close cannot close a channel with a
		// send in flight
		c.Lock()
		if c.isClose {
			c.Unlock()
			return
		}
		for _, ch := range c.subs[channel] {
			select {
			case ch <- msg:
			default:
			}
		}
		c.Unlock()
	}
}

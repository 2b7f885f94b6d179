// Package chat owns the persistent assistant connection: the
// connect/reconnect state machine, the transcript for the current
// session, and the side-effect callbacks that let the composing layer
// refresh sibling stores when the assistant mutates data mid-turn.
package chat

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/codycoggins/istari/internal/model"
)

type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
)

type EventKind string

const (
	EventConnected    EventKind = "connected"
	EventDisconnected EventKind = "disconnected"
	EventMessage      EventKind = "message"
)

// Event is delivered on C() so the UI can re-render. Message is set
// only for EventMessage.
type Event struct {
	Kind    EventKind
	Message model.Message
}

// Callbacks fire from the channel's goroutine when an inbound frame
// flags a server-side side effect. They are the only way the channel
// reaches other components; it never touches a store directly.
type Callbacks struct {
	OnTodoChanged   func()
	OnMemoryCreated func()
}

type Config struct {
	URL         string
	BackoffBase time.Duration
	BackoffCap  time.Duration
	BufferSize  int
	Callbacks   Callbacks
	Logger      *zap.Logger
}

func DefaultConfig(url string) Config {
	return Config{
		URL:         url,
		BackoffBase: time.Second,
		BackoffCap:  30 * time.Second,
		BufferSize:  64,
	}
}

// outbound and inbound are the wire frames.
type outbound struct {
	Message string `json:"message"`
}

type inbound struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	TodoCreated   bool      `json:"todo_created"`
	TodoUpdated   bool      `json:"todo_updated"`
	MemoryCreated bool      `json:"memory_created"`
}

type Channel struct {
	cfg    Config
	dialer *websocket.Dialer
	logger *zap.Logger

	mu           sync.Mutex
	conn         *websocket.Conn
	state        State
	attempts     int
	messages     []model.Message
	pending      bool
	started      bool
	stopped      bool
	eventsClosed bool

	events  chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	dropped uint64
}

func NewChannel(cfg Config) *Channel {
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}
	if cfg.BackoffCap <= 0 {
		cfg.BackoffCap = 30 * time.Second
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Channel{
		cfg:    cfg,
		dialer: websocket.DefaultDialer,
		logger: logger,
		state:  StateDisconnected,
		events: make(chan Event, cfg.BufferSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// C delivers connection and message events. Consumers that fall behind
// lose events, not messages: the transcript is always read via
// Messages().
func (c *Channel) C() <-chan Event {
	return c.events
}

func (c *Channel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.started = true
	go c.run()
}

// Stop cancels any pending reconnect wait and closes the transport. No
// reconnect attempts happen afterwards.
func (c *Channel) Stop() {
	c.mu.Lock()
	if !c.started || c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	conn := c.conn
	close(c.stopCh)
	c.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
	<-c.doneCh
}

func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Channel) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

func (c *Channel) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Channel) Dropped() uint64 {
	return atomic.LoadUint64(&c.dropped)
}

// Send transmits one chat turn. Silently dropped unless connected. The
// user message is appended optimistically and never rolled back; there
// is no per-message retry, only full reconnection.
func (c *Channel) Send(content string) {
	c.mu.Lock()
	if c.state != StateConnected || c.conn == nil {
		c.mu.Unlock()
		return
	}
	msg := model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	c.messages = append(c.messages, msg)
	c.pending = true
	conn := c.conn
	c.mu.Unlock()

	if err := conn.WriteJSON(outbound{Message: content}); err != nil {
		// The read loop will observe the broken transport and reconnect.
		c.logger.Warn("send failed", zap.Error(err))
	}
	c.emit(Event{Kind: EventMessage, Message: msg})
}

// ReconnectDelay is the backoff schedule: min(base * 2^attempts, cap).
// The attempt counter resets to zero on every successful connection.
func ReconnectDelay(base, cap time.Duration, attempts int) time.Duration {
	if attempts >= 32 {
		return cap
	}
	delay := base << uint(attempts)
	if delay <= 0 || delay > cap {
		return cap
	}
	return delay
}

func (c *Channel) run() {
	defer close(c.doneCh)
	defer func() {
		c.mu.Lock()
		c.eventsClosed = true
		close(c.events)
		c.mu.Unlock()
	}()

	for {
		select {
		case <-c.stopCh:
			return
		default:
		}

		c.setState(StateConnecting)
		conn, resp, err := c.dialer.Dial(c.cfg.URL, nil)
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		if err != nil {
			c.setState(StateDisconnected)
			c.emit(Event{Kind: EventDisconnected})
			if !c.waitBackoff() {
				return
			}
			continue
		}

		c.mu.Lock()
		if c.stopped {
			c.mu.Unlock()
			_ = conn.Close()
			return
		}
		c.conn = conn
		c.state = StateConnected
		c.attempts = 0
		c.mu.Unlock()
		c.logger.Info("channel connected", zap.String("url", c.cfg.URL))
		c.emit(Event{Kind: EventConnected})

		c.readLoop(conn)

		c.mu.Lock()
		c.conn = nil
		c.state = StateDisconnected
		c.pending = false
		stopped := c.stopped
		c.mu.Unlock()
		c.emit(Event{Kind: EventDisconnected})
		if stopped {
			return
		}
		c.logger.Info("channel disconnected")
		if !c.waitBackoff() {
			return
		}
	}
}

// waitBackoff sleeps for the current backoff delay. Returns false when
// the channel was stopped during the wait.
func (c *Channel) waitBackoff() bool {
	c.mu.Lock()
	delay := ReconnectDelay(c.cfg.BackoffBase, c.cfg.BackoffCap, c.attempts)
	c.attempts++
	attempt := c.attempts
	c.mu.Unlock()
	c.logger.Debug("reconnect scheduled",
		zap.Duration("delay", delay),
		zap.Int("attempt", attempt))

	timer := time.NewTimer(delay)
	select {
	case <-timer.C:
		return true
	case <-c.stopCh:
		if !timer.Stop() {
			<-timer.C
		}
		return false
	}
}

func (c *Channel) readLoop(conn *websocket.Conn) {
	for {
		var frame inbound
		if err := conn.ReadJSON(&frame); err != nil {
			// Errors force closure; recovery is always a full reconnect.
			_ = conn.Close()
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("read failed", zap.Error(err))
			}
			return
		}

		msg := model.Message{
			ID:            frame.ID,
			Role:          model.RoleAssistant,
			Content:       frame.Content,
			CreatedAt:     frame.CreatedAt,
			TodoCreated:   frame.TodoCreated || frame.TodoUpdated,
			MemoryCreated: frame.MemoryCreated,
		}

		c.mu.Lock()
		c.messages = append(c.messages, msg)
		c.pending = false
		cb := c.cfg.Callbacks
		c.mu.Unlock()

		if frame.TodoCreated || frame.TodoUpdated {
			if cb.OnTodoChanged != nil {
				cb.OnTodoChanged()
			}
		}
		if frame.MemoryCreated {
			if cb.OnMemoryCreated != nil {
				cb.OnMemoryCreated()
			}
		}
		c.emit(Event{Kind: EventMessage, Message: msg})
	}
}

func (c *Channel) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Channel) emit(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.eventsClosed {
		atomic.AddUint64(&c.dropped, 1)
		return
	}
	select {
	case c.events <- ev:
	default:
		atomic.AddUint64(&c.dropped, 1)
	}
}

package query

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/udisondev/deathfx/internal/constants"
	"github.com/udisondev/deathfx/internal/deatheffect"
	"github.com/udisondev/deathfx/internal/effect"
	"github.com/udisondev/deathfx/internal/protocol"
	"github.com/udisondev/deathfx/internal/query/packet"
)

// Client is a synchronous query client. Requests on one Client are
// serialized; it is safe for concurrent use.
type Client struct {
	conn    net.Conn
	timeout time.Duration

	mu      sync.Mutex
	readBuf []byte
	scratch []byte
}

// Dial connects to a query server at addr.
// timeout bounds each request round trip (0 = no deadline).
func Dial(ctx context.Context, addr string, timeout time.Duration) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}
	return NewClient(conn, timeout), nil
}

// NewClient wraps an established connection.
func NewClient(conn net.Conn, timeout time.Duration) *Client {
	return &Client{
		conn:    conn,
		timeout: timeout,
		readBuf: make([]byte, constants.MaxPacketSize),
		scratch: make([]byte, constants.DefaultSendBufSize),
	}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// roundTrip sends the request built by encode and returns a copy of the reply payload.
func (c *Client) roundTrip(ctx context.Context, encode func(w *packet.Writer)) ([]byte, error) {
	w := packet.Get()
	defer w.Put()
	encode(w)

	c.mu.Lock()
	defer c.mu.Unlock()

	deadline := time.Time{}
	if c.timeout > 0 {
		deadline = time.Now().Add(c.timeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("setting deadline: %w", err)
	}

	stop := context.AfterFunc(ctx, func() {
		// unblock pending I/O
		_ = c.conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	if err := protocol.WritePayload(c.conn, c.scratch, w.Bytes()); err != nil {
		return nil, err
	}
	payload, err := protocol.ReadPacket(c.conn, c.readBuf)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return append([]byte(nil), payload...), nil
}

// ClassifyDeath asks the service for the death effect type.
func (c *Client) ClassifyDeath(ctx context.Context, req *ClassifyDeathRequest) (deatheffect.Result, error) {
	reply, err := c.roundTrip(ctx, req.Encode)
	if err != nil {
		return deatheffect.NoResult, fmt.Errorf("classify death: %w", err)
	}
	return ParseDeathEffectType(reply)
}

// ActiveEffects lists the base effects of snap that are currently active.
func (c *Client) ActiveEffects(ctx context.Context, snap effect.Snapshot, includeInactive bool) ([]uint32, error) {
	req := &ActiveEffectsRequest{IncludeInactive: includeInactive, Effects: snap}
	reply, err := c.roundTrip(ctx, req.Encode)
	if err != nil {
		return nil, fmt.Errorf("active effects: %w", err)
	}
	return ParseEffectList(reply)
}

// HasArchetype reports whether snap has an effect with the given archetype.
func (c *Client) HasArchetype(ctx context.Context, snap effect.Snapshot, archetype string) (bool, error) {
	req := &HasArchetypeRequest{Archetype: archetype, Effects: snap}
	reply, err := c.roundTrip(ctx, req.Encode)
	if err != nil {
		return false, fmt.Errorf("has archetype: %w", err)
	}
	return ParseArchetypeFound(reply)
}

// Ping checks that the service is alive.
func (c *Client) Ping(ctx context.Context) error {
	reply, err := c.roundTrip(ctx, func(w *packet.Writer) {
		_ = w.WriteByte(OpcodePing)
	})
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if _, err := replyReader(reply, OpcodePong); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

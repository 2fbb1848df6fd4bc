// Package client sends single control commands to a bridge, the same way
// ssmgr does: one signed frame per connection, one response back.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/coder/quartz"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/protocol"
)

type Client struct {
	address string
	key     string
	clock   quartz.Clock
	dialer  net.Dialer
}

// New returns a client for the control server at address. Frames are signed
// with key and stamped with clock.Now().
func New(address, key string, clock quartz.Clock, timeout time.Duration) *Client {
	return &Client{
		address: address,
		key:     key,
		clock:   clock,
		dialer:  net.Dialer{Timeout: timeout},
	}
}

// Do sends req and waits for the response. A non-zero response code is not
// an error; the caller inspects Response.Code.
func (c *Client) Do(ctx context.Context, req protocol.Request) (protocol.Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return protocol.Response{}, fmt.Errorf("marshal request: %w", err)
	}

	frame, err := protocol.EncodeRequest(payload, c.key, c.clock.Now())
	if err != nil {
		return protocol.Response{}, err
	}

	conn, err := c.dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return protocol.Response{}, fmt.Errorf("dial %s: %w", c.address, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if _, err := conn.Write(frame); err != nil {
		return protocol.Response{}, fmt.Errorf("send request: %w", err)
	}

	resp, err := protocol.ReadResponse(conn)
	if err != nil {
		if ctx.Err() != nil {
			return protocol.Response{}, ctx.Err()
		}
		return protocol.Response{}, err
	}
	return resp, nil
}

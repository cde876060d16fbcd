package websocket

import (
	"context"
	"net/url"

	"golang.org/x/net/websocket"

	"github.com/robotalks/skibot.go/pkg/l1"
	"github.com/robotalks/skibot.go/pkg/l1/comm"
)

// Connector implements l1.Connector dialing a gateway endpoint.
// A gateway exposes a single controller, so discovery is not
// available and the controller ref is ignored on connect.
type Connector struct {
	URL string
}

// NewConnector creates a Connector from a ws:// or wss:// URL.
func NewConnector(rawURL string) (*Connector, error) {
	if _, err := url.Parse(rawURL); err != nil {
		return nil, err
	}
	return &Connector{URL: rawURL}, nil
}

// Discover implements Connector. Direct endpoints are not discoverable.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	return nil, nil
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	ws, err := websocket.Dial(c.URL, "", "http://localhost/")
	if err != nil {
		return nil, err
	}
	conn := &ControllerConn{}
	conn.Init(New(ws))
	return conn, nil
}

// ControllerConn implements ControllerConn over websocket.
type ControllerConn struct {
	comm.ControllerConn
}

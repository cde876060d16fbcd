package websocket

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/skibot.go/pkg/framework"
	"github.com/robotalks/skibot.go/pkg/l1/comm"
)

// Gateway serves direct websocket connections to a controller,
// without a broker in between. Each connection feeds the control loop
// through its own registrar pipe, and events are fanned out to all
// active connections.
type Gateway struct {
	Addr string

	ctx   context.Context
	lock  sync.RWMutex
	conns map[*comm.Registrar]struct{}
}

// NewGateway creates a Gateway listening on addr.
func NewGateway(addr string) *Gateway {
	return &Gateway{Addr: addr, conns: make(map[*comm.Registrar]struct{})}
}

// SendEvent implements Registrar. A write failure on one connection
// doesn't block the others, the connection is torn down by its own
// pipe on the read side.
func (g *Gateway) SendEvent(ctx context.Context, msg fx.Message) error {
	g.lock.RLock()
	conns := make([]*comm.Registrar, 0, len(g.conns))
	for conn := range g.conns {
		conns = append(conns, conn)
	}
	g.lock.RUnlock()
	for _, conn := range conns {
		if err := conn.SendEvent(ctx, msg); err != nil {
			glog.V(2).Infof("ws send event: %v", err)
		}
	}
	return nil
}

// AddToLoop implements LoopAdder.
func (g *Gateway) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(g)
}

// Run implements Runnable.
func (g *Gateway) Run(ctx context.Context) error {
	g.ctx = ctx
	server := &http.Server{
		Addr:    g.Addr,
		Handler: websocket.Handler(g.handle),
	}
	return fx.RunWithContextCloser(ctx, server, server.ListenAndServe)
}

func (g *Gateway) handle(conn *websocket.Conn) {
	reg := &comm.Registrar{}
	reg.Init(New(conn))
	g.lock.Lock()
	g.conns[reg] = struct{}{}
	g.lock.Unlock()
	defer func() {
		g.lock.Lock()
		delete(g.conns, reg)
		g.lock.Unlock()
	}()
	if err := reg.Run(g.ctx); err != nil && err != io.EOF && err != context.Canceled {
		glog.V(1).Infof("ws conn closed: %v", err)
	}
}

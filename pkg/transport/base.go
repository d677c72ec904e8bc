// Package transport provides concrete ndn.Transport implementations:
// Unix-stream and TCP-stream sockets, a WebSocket transport, and an
// in-memory loopback pair for tests. Grounded on the corpus's face
// implementations (std/engine/face's base/stream faces, YaNFD's
// web-socket-transport.go).
package transport

import "sync/atomic"

// base holds the running-state bookkeeping shared by every Transport
// implementation in this package.
type base struct {
	connected atomic.Bool
	onReceive atomic.Pointer[func([]byte)]
}

func (b *base) IsConnected() bool {
	return b.connected.Load()
}

func (b *base) setOnReceive(f func([]byte)) {
	b.onReceive.Store(&f)
}

func (b *base) deliver(block []byte) {
	if p := b.onReceive.Load(); p != nil {
		(*p)(block)
	}
}

package transport

import (
	"github.com/named-data/ndn-client-core/pkg/ndn"
)

// LoopbackTransport is an in-memory Transport with no forwarder on the
// other end: sent packets are handed to a test-supplied sink, and Inject
// lets a test push a packet back into the engine as if it had arrived
// from the network. Grounded on the dummy/loopback faces used for engine
// tests across the corpus (std/engine/face/dummy_face.go).
type LoopbackTransport struct {
	base
	// Sent records every packet handed to Send, in order.
	Sent [][]byte
	// OnSend, if set, is called synchronously for every Send in addition
	// to appending to Sent - useful for a test that wants to auto-reply.
	OnSend func(pkt []byte)
}

// NewLoopbackTransport returns a disconnected loopback transport.
func NewLoopbackTransport() *LoopbackTransport {
	return &LoopbackTransport{}
}

func (t *LoopbackTransport) Connect(onReceive func(block []byte)) error {
	t.setOnReceive(onReceive)
	t.connected.Store(true)
	return nil
}

func (t *LoopbackTransport) Send(pkt []byte) error {
	if !t.IsConnected() {
		return ndn.ErrNotConnected
	}
	t.Sent = append(t.Sent, append([]byte(nil), pkt...))
	if t.OnSend != nil {
		t.OnSend(pkt)
	}
	return nil
}

func (t *LoopbackTransport) Close() error {
	t.connected.Store(false)
	return nil
}

// Inject delivers block to the engine's receive callback, as if it had
// just arrived over the wire.
func (t *LoopbackTransport) Inject(block []byte) {
	t.deliver(block)
}

func (t *LoopbackTransport) String() string {
	return "loopback-transport"
}

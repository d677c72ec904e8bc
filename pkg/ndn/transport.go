package ndn

// Transport is the capability the core consumes to reach the forwarder. It
// is deliberately narrow - connect, send, a receive callback, close - so
// any stream-, datagram- or in-memory-backed implementation can satisfy it.
// The core never touches more than one Transport concurrently and performs
// no locking of its own around it, per the single-threaded reactor model.
type Transport interface {
	// IsConnected reports whether Connect has completed successfully and
	// Close has not since been called.
	IsConnected() bool
	// Connect opens the transport and arranges for onReceive to be called,
	// with the framing this Transport's implementation performs, once per
	// received TLV block. onReceive may run on a goroutine other than the
	// caller's (the stream and WebSocket transports call it from their own
	// receive goroutine). Connect must be
	// idempotent: calling it again once already connected is a no-op.
	Connect(onReceive func(block []byte)) error
	// Send writes a fully wire-encoded packet.
	Send(wire []byte) error
	// Close tears down the transport. Safe to call more than once.
	Close() error
}

// Signer produces a signature value over content bytes. The registration
// path in this engine does not invoke a Signer at all - it sends an empty
// signature value, per the legacy ndnx self-registration convention - but
// application code expressing signed Data over the same Transport uses
// this capability.
type Signer struct {
	// KeyID identifies the signing key in a KeyLocator; may be nil.
	KeyID []byte
	// Sign returns the signature value bytes for the given content.
	Sign func(content []byte) ([]byte, error)
}

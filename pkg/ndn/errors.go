package ndn

import (
	"errors"
	"fmt"
)

// ErrAlreadyRunning is returned by Node.ProcessEvents if the event loop is
// already active on this Node.
var ErrAlreadyRunning = errors.New("ndn: event loop already running")

// ErrNotConnected is returned when a Transport operation is attempted
// before Connect has succeeded.
var ErrNotConnected = errors.New("ndn: transport not connected")

// ErrDecode is wrapped by the wire codec's decode errors for a wrong outer
// packet type and for an unreadable name component or top-level field
// block. A truncated outer block, a malformed number field or malformed
// SignatureInfo contents produce errors that do not wrap it. The receive
// dispatcher treats every decode error as recoverable: the block is
// dropped and the event loop continues.
var ErrDecode = errors.New("ndn: failed to decode TLV block")

// ErrNoPubKey reports that a signer holds no public key material. The
// signers in pkg/signer do not return it.
var ErrNoPubKey = errors.New("ndn: signer has no public key")

// TransportError wraps a failure from a Transport operation with the
// operation name that failed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ndn: transport %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RegistrationFailedError describes a registration that failed because the
// ndnd-ID probe timed out. The engine does not construct it: a RegisterPrefix
// caller's onFailed callback receives the bare prefix instead.
type RegistrationFailedError struct {
	Prefix Name
}

func (e *RegistrationFailedError) Error() string {
	return fmt.Sprintf("ndn: registration failed for prefix %s", e.Prefix)
}

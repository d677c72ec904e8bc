// Package engine implements the client core: the Node facade and its four
// tightly coupled subsystems (PIT, RPT, registration protocol, receive
// dispatcher) described by the specification this repository implements.
package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/named-data/ndn-client-core/internal/corelog"
	"github.com/named-data/ndn-client-core/pkg/ndn"
	"github.com/named-data/ndn-client-core/pkg/wire"
)

// periodicTimerInterval is the PIT sweep tick interval (spec C5/§6).
const periodicTimerInterval = 100 * time.Millisecond

// recvQueueDepth bounds how many undispatched blocks the engine will
// buffer between ProcessEvents iterations before the transport's receive
// callback blocks, mirroring the corpus's bounded inQueue
// (std/engine/basic/engine.go).
const recvQueueDepth = 256

// Node is the public facade: it owns the PIT, the RPT, the registration
// state machine and the transport, and runs the single-threaded reactor
// that drives all four. Per spec 5, every method here - and every app
// callback it invokes - is expected to run on one logical thread; the core
// performs no locking of its own around the PIT/RPT.
type Node struct {
	transport ndn.Transport
	clock     Clock

	pit *pit
	rpt *rpt

	ndndID        []byte
	probingNdndID bool
	awaitingNdnd  []queuedRegistration

	recvQueue chan []byte

	running  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewNode constructs a Node over transport, using the system clock. The
// node does not connect the transport until the first ExpressInterest or
// RegisterPrefix call, per spec 4.8.
func NewNode(transport ndn.Transport) *Node {
	return NewNodeWithClock(transport, NewSystemClock())
}

// NewNodeWithClock is NewNode with an injectable Clock, for deterministic
// tests that advance virtual time instead of sleeping.
func NewNodeWithClock(transport ndn.Transport, clock Clock) *Node {
	return &Node{
		transport: transport,
		clock:     clock,
		pit:       newPIT(),
		rpt:       newRPT(),
		recvQueue: make(chan []byte, recvQueueDepth),
		stopCh:    make(chan struct{}),
	}
}

func (n *Node) String() string {
	return "node"
}

// ExpressInterest sends interest over the transport (connecting it first
// if necessary) and records it in the PIT so that matching Data or a
// timeout can invoke onData/onTimeout. Per spec 7.1, a send failure is
// surfaced immediately and no PIT entry is created.
func (n *Node) ExpressInterest(interest *ndn.Interest, onData OnDataFunc, onTimeout OnTimeoutFunc) (uint64, error) {
	if err := n.ensureConnected(); err != nil {
		return 0, err
	}

	if err := n.transport.Send(wire.EncodeInterest(interest)); err != nil {
		return 0, err
	}

	id := n.pit.insert(interest, onData, onTimeout, n.clock.NowMs())
	corelog.Trace(n, fmt.Sprintf("expressed interest %s (pit id %d)", interest.Name, id))
	return id, nil
}

// RemovePendingInterest cancels a pending Interest. Idempotent: removing
// an id twice, or an id that has already fired, is a no-op (spec 5).
func (n *Node) RemovePendingInterest(id uint64) {
	n.pit.removeByID(id)
}

// RemoveRegisteredPrefix unregisters a prefix handler, including one whose
// registration is still queued behind the ndnd-ID probe.
func (n *Node) RemoveRegisteredPrefix(id uint64) {
	n.rpt.removeByID(id)
	for i, q := range n.awaitingNdnd {
		if q.id == id {
			n.awaitingNdnd = append(n.awaitingNdnd[:i], n.awaitingNdnd[i+1:]...)
			break
		}
	}
}

// ProcessEvents runs the single-threaded event loop - receiving blocks,
// dispatching them, and sweeping the PIT every 100ms - until Shutdown is
// called. Any second call while the loop is active, whether from another
// goroutine or from inside an app callback, fails with ErrAlreadyRunning
// (spec 7.5). App callbacks run on this loop's goroutine and may call the
// Node's other methods.
func (n *Node) ProcessEvents() error {
	if !n.running.CompareAndSwap(false, true) {
		return ndn.ErrAlreadyRunning
	}
	defer n.running.Store(false)

	ticker := time.NewTicker(periodicTimerInterval)
	defer ticker.Stop()

	for {
		select {
		case block := <-n.recvQueue:
			n.dispatch(block)
		case <-ticker.C:
			n.sweep()
		case <-n.stopCh:
			return nil
		}
	}
}

// Shutdown closes the transport and requests the event loop to stop.
// Per spec 5, pending Interests are abandoned: no onTimeout callbacks are
// fired for them. Safe to call more than once.
func (n *Node) Shutdown() error {
	err := n.transport.Close()
	n.stopOnce.Do(func() { close(n.stopCh) })
	return err
}

// ensureConnected connects the transport on first use, wiring its receive
// callback to the dispatcher's inbound queue (spec 4.8). Connect is
// expected to be idempotent, so this only needs to call it once.
func (n *Node) ensureConnected() error {
	if n.transport.IsConnected() {
		return nil
	}
	return n.transport.Connect(n.onReceiveBlock)
}

// onReceiveBlock is the Transport's receive callback. It only enqueues -
// all decoding and dispatch happens on the ProcessEvents goroutine, which
// is the only goroutine allowed to touch the PIT/RPT.
func (n *Node) onReceiveBlock(block []byte) {
	cp := append([]byte(nil), block...)
	n.recvQueue <- cp
}

// sweep implements the periodic timer's fire action (spec C5): sweep
// expired PIT entries and invoke their timeouts.
func (n *Node) sweep() {
	expired := n.pit.sweepExpired(n.clock.NowMs())
	for _, entry := range expired {
		n.safeTimeout(entry)
	}
}

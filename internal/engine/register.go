package engine

import (
	"crypto/sha256"
	"fmt"

	"github.com/named-data/ndn-client-core/internal/corelog"
	"github.com/named-data/ndn-client-core/pkg/ndn"
	"github.com/named-data/ndn-client-core/pkg/wire"
)

// ndndIDProbeLifetimeMs is the lifetime of the fixed probe Interest used to
// discover the local forwarder's ndnd-ID (spec 4.7 step 1).
const ndndIDProbeLifetimeMs = 4000

// selfRegSignatureType is the legacy SignatureSha256WithRsa type number
// carried - with an empty signature value - on every self-registration
// Data packet, per the ndnx convention this protocol imitates.
const selfRegSignatureType = 1

// registrationScope restricts the self-registration Interest to the local
// forwarder, per spec 4.7 step 4.
const registrationScope uint8 = 1

// OnRegisterFailedFunc is invoked when a RegisterPrefix call cannot be
// completed because the ndnd-ID probe timed out.
type OnRegisterFailedFunc func(prefix ndn.Name)

// queuedRegistration holds a RegisterPrefix call that arrived while the
// ndnd-ID probe for this Node was still outstanding (spec 4.7/9: multiple
// racing RegisterPrefix calls before the first probe completes are queued
// and dispatched together once the probe resolves, one way or the other).
type queuedRegistration struct {
	id         uint64
	prefix     ndn.Name
	onInterest OnInterestFunc
	onFailed   OnRegisterFailedFunc
	flags      ndn.ForwardingFlags
}

// RegisterPrefix asks the local forwarder to deliver Interests matching
// prefix to onInterest. It returns a cancel handle immediately (spec 4.7
// step 1): the handle is valid even before the ndnd-ID is known, because
// the RPT id is reserved up front regardless of how long registration
// takes to actually reach the wire.
func (n *Node) RegisterPrefix(prefix ndn.Name, onInterest OnInterestFunc, onFailed OnRegisterFailedFunc, flags ndn.ForwardingFlags) uint64 {
	id := n.rpt.reserveID()

	if len(n.ndndID) == 0 {
		n.awaitingNdnd = append(n.awaitingNdnd, queuedRegistration{
			id: id, prefix: prefix, onInterest: onInterest, onFailed: onFailed, flags: flags,
		})
		if !n.probingNdndID {
			n.probingNdndID = true
			n.sendNdndIDProbe()
		}
		return id
	}

	n.completeRegistration(id, prefix, onInterest, flags)
	return id
}

// sendNdndIDProbe expresses the fixed probe Interest that discovers the
// local forwarder's ndnd-ID (spec 4.7 step 1). Any send failure here just
// leaves every queued registration waiting for the 4s probe timeout, which
// then fails them all - there is no separate error path for this probe.
func (n *Node) sendNdndIDProbe() {
	probeName := ndn.NewName(
		[]byte("%C1.M.S.localhost"),
		[]byte("%C1.M.SRV"),
		[]byte("ndnd"),
		[]byte("KEY"),
	)
	interest := &ndn.Interest{Name: probeName, LifetimeMs: ndndIDProbeLifetimeMs}

	if _, err := n.ExpressInterest(interest, n.onNdndIDData, n.onNdndIDTimeout); err != nil {
		corelog.Error(n, fmt.Sprintf("failed to send ndnd-ID probe: %v", err))
		// ExpressInterest records nothing on a failed send; record the probe
		// here so its timeout still fails the queued registrations.
		n.pit.insert(interest, n.onNdndIDData, n.onNdndIDTimeout, n.clock.NowMs())
	}
}

// onNdndIDData stores the SHA-256 digest of the probe reply's key locator
// as the (fixed-size, 32-byte) ndnd-ID, then drains and completes every
// registration that was waiting on it.
func (n *Node) onNdndIDData(_ *ndn.Interest, data *ndn.Data) {
	sum := sha256.Sum256(data.Signature.KeyLocator)
	n.ndndID = sum[:]
	n.probingNdndID = false

	queue := n.awaitingNdnd
	n.awaitingNdnd = nil
	for _, q := range queue {
		n.completeRegistration(q.id, q.prefix, q.onInterest, q.flags)
	}
}

// onNdndIDTimeout fails every registration that was waiting on the probe.
// There is no retry: the caller learns about the failure via onFailed and
// must call RegisterPrefix again if it wants another attempt.
func (n *Node) onNdndIDTimeout(_ *ndn.Interest) {
	n.probingNdndID = false

	queue := n.awaitingNdnd
	n.awaitingNdnd = nil
	for _, q := range queue {
		if q.onFailed != nil {
			q.onFailed(q.prefix)
		}
	}
}

// completeRegistration builds and sends the ndnx self-registration
// Interest for prefix once the ndnd-ID is known (spec 4.7 steps 2-5): a
// ForwardingEntry wrapped in an unsigned Data packet, named
// /ndnx/<ndndId>/selfreg/<data>. The RPT entry is inserted before the
// Interest is sent, so a reply racing the send can never miss the handler.
func (n *Node) completeRegistration(id uint64, prefix ndn.Name, onInterest OnInterestFunc, flags ndn.ForwardingFlags) {
	fe := &ndn.ForwardingEntry{
		Action:          "selfreg",
		Prefix:          prefix,
		FaceID:          -1,
		Flags:           flags,
		FreshnessPeriod: -1,
	}
	content := wire.EncodeForwardingEntry(fe)

	data := &ndn.Data{
		Content:   content,
		Signature: ndn.SignatureInfo{Type: selfRegSignatureType},
		SigValue:  []byte{},
	}
	dataWire := wire.EncodeData(data)

	name := ndn.NewName([]byte("ndnx"))
	name = name.Append(n.ndndID)
	name = name.Append([]byte("selfreg"))
	name = name.Append(dataWire)

	scope := registrationScope
	interest := &ndn.Interest{Name: name, LifetimeMs: -1, Scope: &scope}

	n.rpt.insertWithID(id, prefix, onInterest)

	if err := n.transport.Send(wire.EncodeInterest(interest)); err != nil {
		corelog.Error(n, fmt.Sprintf("failed to send self-registration interest for prefix %s: %v", prefix, err))
	}
}

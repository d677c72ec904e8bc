package engine

import (
	"fmt"

	"github.com/named-data/ndn-client-core/internal/corelog"
	"github.com/named-data/ndn-client-core/pkg/ndn"
	"github.com/named-data/ndn-client-core/pkg/wire"
)

// dispatch classifies one inbound TLV block and routes it to the PIT or
// the RPT (spec C6). A block that fails to decode, or whose outer type is
// neither Interest nor Data, is dropped silently after a log line - the
// core never replies with anything resembling a NACK.
func (n *Node) dispatch(block []byte) {
	typ, err := wire.PeekType(block)
	if err != nil {
		corelog.Warn(n, fmt.Sprintf("dropping unparseable block: %v", err))
		return
	}

	switch typ {
	case wire.TypeInterest:
		n.dispatchInterest(block)
	case wire.TypeData:
		n.dispatchData(block)
	default:
		corelog.Debug(n, fmt.Sprintf("dropping block of unknown outer type %d", typ))
	}
}

func (n *Node) dispatchInterest(block []byte) {
	interest, err := wire.DecodeInterest(block)
	if err != nil {
		corelog.Warn(n, fmt.Sprintf("dropping undecodable interest: %v", err))
		return
	}

	entry := n.rpt.longestMatch(interest.Name)
	if entry == nil {
		corelog.Trace(n, fmt.Sprintf("no registered prefix matches interest %s, dropping", interest.Name))
		return
	}
	n.safeOnInterest(entry, interest)
}

func (n *Node) dispatchData(block []byte) {
	data, err := wire.DecodeData(block)
	if err != nil {
		corelog.Warn(n, fmt.Sprintf("dropping undecodable data: %v", err))
		return
	}

	// matchIncoming removes the PIT entry before this function ever invokes
	// its callback, so a re-entrant ExpressInterest from inside onData can
	// never observe its own now-dead entry (spec 4.6).
	entry := n.pit.matchIncoming(data.Name)
	if entry == nil {
		corelog.Trace(n, fmt.Sprintf("no pending interest matches data %s, dropping", data.Name))
		return
	}
	n.safeOnData(entry, data)
}

// safeOnInterest, safeOnData and safeTimeout each isolate one app-callback
// invocation behind a recover, so a panicking handler cannot bring down the
// event loop - it is logged and the loop continues (spec 4.6/9).
func (n *Node) safeOnInterest(entry *registeredPrefix, interest *ndn.Interest) {
	if entry.onInterest == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			corelog.Error(n, fmt.Sprintf("recovered from panic in onInterest for prefix %s: %v", entry.prefix, r))
		}
	}()
	entry.onInterest(entry.prefix, interest, n.transport, entry.id)
}

func (n *Node) safeOnData(entry *pendingInterest, data *ndn.Data) {
	if entry.onData == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			corelog.Error(n, fmt.Sprintf("recovered from panic in onData for interest %s: %v", entry.interest.Name, r))
		}
	}()
	entry.onData(entry.interest, data)
}

func (n *Node) safeTimeout(entry *pendingInterest) {
	if entry.onTimeout == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			corelog.Error(n, fmt.Sprintf("recovered from panic in onTimeout for interest %s: %v", entry.interest.Name, r))
		}
	}()
	entry.onTimeout(entry.interest)
}

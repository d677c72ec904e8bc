package engine

import (
	list "github.com/bahlo/generic-list-go"

	"github.com/named-data/ndn-client-core/pkg/ndn"
)

// defaultInterestLifetimeMs is used for an Interest whose LifetimeMs is
// negative (unspecified), per spec 3/6.
const defaultInterestLifetimeMs = 4000

// OnDataFunc is invoked when Data matching a pending Interest arrives.
type OnDataFunc func(interest *ndn.Interest, data *ndn.Data)

// OnTimeoutFunc is invoked when a pending Interest's deadline passes
// without matching Data.
type OnTimeoutFunc func(interest *ndn.Interest)

// pendingInterest is a PIT entry (spec 3's PendingInterest record).
type pendingInterest struct {
	id        uint64
	interest  *ndn.Interest
	onData    OnDataFunc
	onTimeout OnTimeoutFunc
	deadline  int64 // absolute ms, per the Clock shared with the sweep
}

// pit is the Pending Interest Table (spec C3): an insertion-ordered set of
// outstanding Interests, matched against incoming Data by name-prefix, and
// expired by a single periodic sweep. It is exclusively owned by the Node
// that holds it and assumes single-threaded access, per spec 5 - no locks.
//
// Storage is a doubly linked list (preserving insertion order, required
// for matchIncoming's "first match wins" and sweepExpired's stable order)
// paired with a map from id to list element, so removeById is O(1)
// without walking the list or disturbing anyone else's order.
type pit struct {
	entries *list.List[*pendingInterest]
	byID    map[uint64]*list.Element[*pendingInterest]
	nextID  uint64
}

func newPIT() *pit {
	return &pit{
		entries: list.New[*pendingInterest](),
		byID:    make(map[uint64]*list.Element[*pendingInterest]),
	}
}

// insert allocates a new id, computes the entry's deadline from nowMs, and
// appends it to the table. Returns the new id.
func (p *pit) insert(interest *ndn.Interest, onData OnDataFunc, onTimeout OnTimeoutFunc, nowMs int64) uint64 {
	p.nextID++
	id := p.nextID

	lifetime := interest.LifetimeMs
	if lifetime < 0 {
		lifetime = defaultInterestLifetimeMs
	}

	entry := &pendingInterest{
		id:        id,
		interest:  interest,
		onData:    onData,
		onTimeout: onTimeout,
		deadline:  nowMs + lifetime,
	}
	p.byID[id] = p.entries.PushBack(entry)
	return id
}

// removeByID removes the entry with the given id, if present. Silent on
// no-match, and idempotent - removing an id twice (or an id that already
// fired) is a no-op, satisfying the cancellation contract in spec 5.
func (p *pit) removeByID(id uint64) {
	elem, ok := p.byID[id]
	if !ok {
		return
	}
	p.entries.Remove(elem)
	delete(p.byID, id)
}

// matchIncoming finds the first entry (in insertion order) whose Interest
// matches dataName, removes it from the table, and returns it. Returns nil
// if there is no match. The caller must invoke the callback itself, after
// the entry has already been removed (spec 4.6's "remove-before-callback"
// rule), so a re-entrant expressInterest from inside the callback can never
// observe its own now-dead PIT entry.
func (p *pit) matchIncoming(dataName ndn.Name) *pendingInterest {
	for e := p.entries.Front(); e != nil; e = e.Next() {
		if e.Value.interest.MatchesName(dataName) {
			p.entries.Remove(e)
			delete(p.byID, e.Value.id)
			return e.Value
		}
	}
	return nil
}

// sweepExpired removes and returns, in insertion order, every entry whose
// deadline has passed as of nowMs.
func (p *pit) sweepExpired(nowMs int64) []*pendingInterest {
	var expired []*pendingInterest
	for e := p.entries.Front(); e != nil; {
		next := e.Next()
		if e.Value.deadline <= nowMs {
			p.entries.Remove(e)
			delete(p.byID, e.Value.id)
			expired = append(expired, e.Value)
		}
		e = next
	}
	return expired
}

// len reports the number of entries currently pending, for tests.
func (p *pit) len() int {
	return p.entries.Len()
}

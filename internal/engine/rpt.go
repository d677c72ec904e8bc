package engine

import (
	list "github.com/bahlo/generic-list-go"

	"github.com/named-data/ndn-client-core/pkg/ndn"
)

// OnInterestFunc is invoked when an Interest matching a registered prefix
// arrives. transport is handed through so the handler can reply directly.
type OnInterestFunc func(prefix ndn.Name, interest *ndn.Interest, transport ndn.Transport, registeredPrefixID uint64)

// registeredPrefix is an RPT entry (spec 3's RegisteredPrefix record).
type registeredPrefix struct {
	id         uint64
	prefix     ndn.Name
	onInterest OnInterestFunc
}

// rpt is the Registered Prefix Table (spec C4): application-owned prefixes
// mapped to Interest handlers, matched against incoming Interests by
// longest matching prefix. Like the pit, it is insertion-ordered and
// assumes exclusive single-threaded access.
type rpt struct {
	entries *list.List[*registeredPrefix]
	byID    map[uint64]*list.Element[*registeredPrefix]
	nextID  uint64
}

func newRPT() *rpt {
	return &rpt{
		entries: list.New[*registeredPrefix](),
		byID:    make(map[uint64]*list.Element[*registeredPrefix]),
	}
}

// insert allocates a new id and appends the entry. Returns the new id.
// Ids are drawn from a counter separate from the PIT's, per spec 3/9.
func (r *rpt) insert(prefix ndn.Name, onInterest OnInterestFunc) uint64 {
	id := r.reserveID()
	r.insertWithID(id, prefix, onInterest)
	return id
}

// reserveID allocates an id without inserting an entry. RegisterPrefix
// uses this to hand the caller a cancel handle immediately, even when the
// actual RPT insertion has to wait on the ndndId probe (spec 4.7 step 1).
func (r *rpt) reserveID() uint64 {
	r.nextID++
	return r.nextID
}

// insertWithID appends an entry under an id previously allocated by
// reserveID.
func (r *rpt) insertWithID(id uint64, prefix ndn.Name, onInterest OnInterestFunc) {
	entry := &registeredPrefix{id: id, prefix: prefix, onInterest: onInterest}
	r.byID[id] = r.entries.PushBack(entry)
}

// removeByID removes the entry with the given id, if present.
func (r *rpt) removeByID(id uint64) {
	elem, ok := r.byID[id]
	if !ok {
		return
	}
	r.entries.Remove(elem)
	delete(r.byID, id)
}

// longestMatch returns the entry whose prefix is a prefix of name with the
// greatest size among all such entries, breaking ties by earliest
// insertion (spec 4.4). Returns nil if no registered prefix matches name -
// the dispatcher then drops the Interest silently, per spec's edge-case
// policy: the core never forwards or NACKs an unmatched Interest.
func (r *rpt) longestMatch(name ndn.Name) *registeredPrefix {
	var best *registeredPrefix
	for e := r.entries.Front(); e != nil; e = e.Next() {
		entry := e.Value
		if !entry.prefix.IsPrefixOf(name) {
			continue
		}
		if best == nil || entry.prefix.Size() > best.prefix.Size() {
			best = entry
		}
	}
	return best
}

// len reports the number of entries currently registered, for tests.
func (r *rpt) len() int {
	return r.entries.Len()
}

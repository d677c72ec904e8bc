// Package ndn defines the wire-independent data model of the client core:
// names, Interests, Data, the Transport and Signer capabilities it consumes,
// and the errors it can return.
package ndn

import "bytes"

// Component is a single opaque name component. The core never inspects a
// component's contents beyond byte equality and ordering.
type Component []byte

// Equal reports whether two components hold identical bytes.
func (c Component) Equal(other Component) bool {
	return bytes.Equal(c, other)
}

// Compare returns -1, 0 or 1 the way bytes.Compare does.
func (c Component) Compare(other Component) int {
	return bytes.Compare(c, other)
}

// Name is an ordered sequence of opaque byte-string components.
type Name struct {
	comps []Component
}

// NewName builds a Name from the given components, copying each one so the
// caller's backing arrays can be reused or mutated afterwards.
func NewName(comps ...[]byte) Name {
	n := Name{comps: make([]Component, 0, len(comps))}
	for _, c := range comps {
		n.comps = append(n.comps, append(Component(nil), c...))
	}
	return n
}

// Append returns a new Name with comp appended; the receiver is unchanged.
func (n Name) Append(comp []byte) Name {
	out := Name{comps: make([]Component, len(n.comps), len(n.comps)+1)}
	copy(out.comps, n.comps)
	out.comps = append(out.comps, append(Component(nil), comp...))
	return out
}

// Size returns the number of components in the name.
func (n Name) Size() int {
	return len(n.comps)
}

// At returns the component at index i. It panics if i is out of range, the
// same contract as slice indexing - callers are expected to check Size first.
func (n Name) At(i int) Component {
	return n.comps[i]
}

// Equal reports whether two names hold the same sequence of components.
func (n Name) Equal(other Name) bool {
	if len(n.comps) != len(other.comps) {
		return false
	}
	for i := range n.comps {
		if !n.comps[i].Equal(other.comps[i]) {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether n is a prefix of other: n.Size() <= other.Size()
// and every component of n byte-equals the corresponding component of other.
func (n Name) IsPrefixOf(other Name) bool {
	if n.Size() > other.Size() {
		return false
	}
	for i, c := range n.comps {
		if !c.Equal(other.comps[i]) {
			return false
		}
	}
	return true
}

// Compare gives a total order over names: shorter names sort first among
// otherwise-equal prefixes, then lexicographic componentwise comparison.
// Used only for diagnostics and deterministic test output - matching logic
// never depends on this order.
func (n Name) Compare(other Name) int {
	for i := 0; i < n.Size() && i < other.Size(); i++ {
		if c := n.comps[i].Compare(other.comps[i]); c != 0 {
			return c
		}
	}
	switch {
	case n.Size() < other.Size():
		return -1
	case n.Size() > other.Size():
		return 1
	default:
		return 0
	}
}

// String renders the name using '/'-separated components, best-effort UTF-8.
func (n Name) String() string {
	var b bytes.Buffer
	for _, c := range n.comps {
		b.WriteByte('/')
		b.Write(c)
	}
	if len(n.comps) == 0 {
		b.WriteByte('/')
	}
	return b.String()
}

// Components exposes the underlying slice for encoding; callers must not
// mutate the returned slice's elements.
func (n Name) Components() []Component {
	return n.comps
}

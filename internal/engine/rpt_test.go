package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/named-data/ndn-client-core/pkg/ndn"
)

func TestRPTLongestMatchPrefersMoreSpecificRegisteredPrefix(t *testing.T) {
	r := newRPT()
	shortID := r.insert(ndn.NewName([]byte("a")), nil)
	longID := r.insert(ndn.NewName([]byte("a"), []byte("b")), nil)

	match := r.longestMatch(ndn.NewName([]byte("a"), []byte("b"), []byte("c")))
	require.NotNil(t, match)
	require.Equal(t, longID, match.id)
	_ = shortID
}

func TestRPTLongestMatchBreaksTiesByEarliestInsertion(t *testing.T) {
	r := newRPT()
	firstID := r.insert(ndn.NewName([]byte("a")), nil)
	r.insert(ndn.NewName([]byte("a")), nil)

	match := r.longestMatch(ndn.NewName([]byte("a"), []byte("b")))
	require.NotNil(t, match)
	require.Equal(t, firstID, match.id)
}

func TestRPTLongestMatchRequiresActualPrefixRelation(t *testing.T) {
	r := newRPT()
	r.insert(ndn.NewName([]byte("a"), []byte("z")), nil)

	// "/a/z" is longer than any common prefix of "/a/b/c" but is not itself
	// a prefix of it - must not be selected, unlike the buggy original
	// behavior this protocol deliberately does not reproduce.
	match := r.longestMatch(ndn.NewName([]byte("a"), []byte("b"), []byte("c")))
	require.Nil(t, match)
}

func TestRPTNoMatchReturnsNil(t *testing.T) {
	r := newRPT()
	r.insert(ndn.NewName([]byte("a")), nil)

	match := r.longestMatch(ndn.NewName([]byte("x")))
	require.Nil(t, match)
}

func TestRPTRemoveByIDIsIdempotent(t *testing.T) {
	r := newRPT()
	id := r.insert(ndn.NewName([]byte("a")), nil)

	r.removeByID(id)
	require.Equal(t, 0, r.len())

	r.removeByID(id)
	require.Equal(t, 0, r.len())
}

func TestRPTReserveIDThenInsertWithIDMatchesPlainInsert(t *testing.T) {
	r := newRPT()
	id := r.reserveID()
	require.Equal(t, 0, r.len())

	r.insertWithID(id, ndn.NewName([]byte("a")), nil)
	require.Equal(t, 1, r.len())

	match := r.longestMatch(ndn.NewName([]byte("a")))
	require.NotNil(t, match)
	require.Equal(t, id, match.id)
}

func TestRPTIDsAreIndependentOfPITIDs(t *testing.T) {
	p := newPIT()
	r := newRPT()

	pitID := p.insert(&ndn.Interest{Name: ndn.NewName([]byte("a"))}, nil, nil, 0)
	rptID := r.insert(ndn.NewName([]byte("a")), nil)

	require.Equal(t, uint64(1), pitID)
	require.Equal(t, uint64(1), rptID)
}

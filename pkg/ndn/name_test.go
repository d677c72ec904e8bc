package ndn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/named-data/ndn-client-core/pkg/ndn"
)

func TestNameIsPrefixOf(t *testing.T) {
	short := ndn.NewName([]byte("a"), []byte("b"))
	long := ndn.NewName([]byte("a"), []byte("b"), []byte("c"))

	require.True(t, short.IsPrefixOf(long))
	require.True(t, short.IsPrefixOf(short))
	require.False(t, long.IsPrefixOf(short))
}

func TestNameIsPrefixOfRequiresComponentEquality(t *testing.T) {
	a := ndn.NewName([]byte("a"), []byte("z"))
	b := ndn.NewName([]byte("a"), []byte("b"), []byte("c"))

	require.False(t, a.IsPrefixOf(b))
}

func TestNameAppendDoesNotMutateReceiver(t *testing.T) {
	base := ndn.NewName([]byte("a"))
	extended := base.Append([]byte("b"))

	require.Equal(t, 1, base.Size())
	require.Equal(t, 2, extended.Size())
}

func TestNameEqual(t *testing.T) {
	a := ndn.NewName([]byte("a"), []byte("b"))
	b := ndn.NewName([]byte("a"), []byte("b"))
	c := ndn.NewName([]byte("a"), []byte("c"))

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestNameCompareOrdersShorterPrefixFirst(t *testing.T) {
	short := ndn.NewName([]byte("a"))
	long := ndn.NewName([]byte("a"), []byte("b"))

	require.Equal(t, -1, short.Compare(long))
	require.Equal(t, 1, long.Compare(short))
	require.Equal(t, 0, short.Compare(short))
}

func TestNameStringRendersSlashSeparated(t *testing.T) {
	n := ndn.NewName([]byte("a"), []byte("b"))
	require.Equal(t, "/a/b", n.String())
	require.Equal(t, "/", ndn.NewName().String())
}

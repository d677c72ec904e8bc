package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/named-data/ndn-client-core/pkg/ndn"
	"github.com/named-data/ndn-client-core/pkg/wire"
)

func TestNameRoundTrip(t *testing.T) {
	name := ndn.NewName([]byte("example"), []byte("testApp"), []byte("randomData"))

	encoded := wire.EncodeName(name)
	decoded, err := wire.DecodeName(encoded)
	require.NoError(t, err)
	require.True(t, name.Equal(decoded))
}

func TestInterestRoundTrip(t *testing.T) {
	scope := uint8(1)
	interest := &ndn.Interest{
		Name:        ndn.NewName([]byte("a"), []byte("b")),
		LifetimeMs:  4000,
		CanBePrefix: true,
		MustBeFresh: true,
		Nonce:       []byte{0x01, 0x02, 0x03, 0x04},
		Scope:       &scope,
	}

	encoded := wire.EncodeInterest(interest)
	decoded, err := wire.DecodeInterest(encoded)
	require.NoError(t, err)

	require.True(t, interest.Name.Equal(decoded.Name))
	require.Equal(t, interest.LifetimeMs, decoded.LifetimeMs)
	require.Equal(t, interest.CanBePrefix, decoded.CanBePrefix)
	require.Equal(t, interest.MustBeFresh, decoded.MustBeFresh)
	require.Equal(t, interest.Nonce, decoded.Nonce)
	require.NotNil(t, decoded.Scope)
	require.Equal(t, *interest.Scope, *decoded.Scope)
}

func TestInterestWithUnspecifiedLifetimeDecodesNegative(t *testing.T) {
	interest := &ndn.Interest{Name: ndn.NewName([]byte("a")), LifetimeMs: -1}

	decoded, err := wire.DecodeInterest(wire.EncodeInterest(interest))
	require.NoError(t, err)
	require.Equal(t, int64(-1), decoded.LifetimeMs)
	require.Nil(t, decoded.Scope)
}

func TestDataRoundTrip(t *testing.T) {
	data := &ndn.Data{
		Name:    ndn.NewName([]byte("example"), []byte("testApp"), []byte("randomData")),
		Content: []byte("Hello, world!"),
		Signature: ndn.SignatureInfo{
			Type:       1,
			KeyLocator: []byte("my-key"),
		},
		SigValue: []byte{0xde, 0xad, 0xbe, 0xef},
	}

	decoded, err := wire.DecodeData(wire.EncodeData(data))
	require.NoError(t, err)

	require.True(t, data.Name.Equal(decoded.Name))
	require.Equal(t, data.Content, decoded.Content)
	require.Equal(t, data.Signature.Type, decoded.Signature.Type)
	require.Equal(t, data.Signature.KeyLocator, decoded.Signature.KeyLocator)
	require.Equal(t, data.SigValue, decoded.SigValue)
}

func TestForwardingEntryRoundTripPreservesSentinelFields(t *testing.T) {
	fe := &ndn.ForwardingEntry{
		Action:          "selfreg",
		Prefix:          ndn.NewName([]byte("my"), []byte("service")),
		FaceID:          -1,
		Flags:           0x03,
		FreshnessPeriod: -1,
	}

	decoded, err := wire.DecodeForwardingEntry(wire.EncodeForwardingEntry(fe))
	require.NoError(t, err)

	require.Equal(t, fe.Action, decoded.Action)
	require.True(t, fe.Prefix.Equal(decoded.Prefix))
	require.Equal(t, fe.FaceID, decoded.FaceID)
	require.Equal(t, fe.Flags, decoded.Flags)
	require.Equal(t, fe.FreshnessPeriod, decoded.FreshnessPeriod)
}

func TestPeekTypeDistinguishesInterestAndData(t *testing.T) {
	interest := wire.EncodeInterest(&ndn.Interest{Name: ndn.NewName([]byte("a")), LifetimeMs: -1})
	data := wire.EncodeData(&ndn.Data{Name: ndn.NewName([]byte("a"))})

	typ, err := wire.PeekType(interest)
	require.NoError(t, err)
	require.Equal(t, uint64(wire.TypeInterest), typ)

	typ, err = wire.PeekType(data)
	require.NoError(t, err)
	require.Equal(t, uint64(wire.TypeData), typ)
}

func TestDecodeInterestRejectsWrongOuterType(t *testing.T) {
	data := wire.EncodeData(&ndn.Data{Name: ndn.NewName([]byte("a"))})
	_, err := wire.DecodeInterest(data)
	require.Error(t, err)
}

func TestTLNumEncodingLengthThresholds(t *testing.T) {
	require.Equal(t, 1, wire.TLNum(0xfc).EncodingLength())
	require.Equal(t, 3, wire.TLNum(0xfd).EncodingLength())
	require.Equal(t, 3, wire.TLNum(0xffff).EncodingLength())
	require.Equal(t, 5, wire.TLNum(0x10000).EncodingLength())
	require.Equal(t, 9, wire.TLNum(0x100000000).EncodingLength())
}

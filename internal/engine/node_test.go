package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/named-data/ndn-client-core/pkg/ndn"
	"github.com/named-data/ndn-client-core/pkg/transport"
	"github.com/named-data/ndn-client-core/pkg/wire"
)

// newTestNode builds a Node over a disconnected LoopbackTransport and a
// VirtualClock starting at zero. Tests drive the node synchronously by
// calling dispatch/sweep directly instead of running ProcessEvents, the
// same way the corpus's dummy-face engine tests feed packets synchronously
// rather than racing a background loop goroutine.
func newTestNode() (*Node, *transport.LoopbackTransport, *VirtualClock) {
	lo := transport.NewLoopbackTransport()
	clock := NewVirtualClock(0)
	return NewNodeWithClock(lo, clock), lo, clock
}

func TestExpressInterestAndMatchingDataInvokesOnData(t *testing.T) {
	node, lo, _ := newTestNode()

	interest := &ndn.Interest{Name: ndn.NewName([]byte("a"), []byte("b")), LifetimeMs: 4000}
	var gotData *ndn.Data
	timedOut := false

	id, err := node.ExpressInterest(interest,
		func(_ *ndn.Interest, data *ndn.Data) { gotData = data },
		func(_ *ndn.Interest) { timedOut = true },
	)
	require.NoError(t, err)
	require.NotZero(t, id)
	require.Len(t, lo.Sent, 1)
	require.Equal(t, wire.EncodeInterest(interest), lo.Sent[0])

	data := &ndn.Data{Name: interest.Name, Content: []byte("hello")}
	node.dispatch(wire.EncodeData(data))

	require.NotNil(t, gotData)
	require.Equal(t, []byte("hello"), gotData.Content)
	require.False(t, timedOut)
	require.Equal(t, 0, node.pit.len())
}

func TestExpressInterestTimeoutFiresOnSweep(t *testing.T) {
	node, _, clock := newTestNode()

	interest := &ndn.Interest{Name: ndn.NewName([]byte("a")), LifetimeMs: 10}
	timedOut := false
	_, err := node.ExpressInterest(interest, nil, func(_ *ndn.Interest) { timedOut = true })
	require.NoError(t, err)

	clock.Advance(9)
	node.sweep()
	require.False(t, timedOut)

	clock.Advance(1)
	node.sweep()
	require.True(t, timedOut)
	require.Equal(t, 0, node.pit.len())
}

func TestRemovePendingInterestSuppressesLateData(t *testing.T) {
	node, _, _ := newTestNode()

	interest := &ndn.Interest{Name: ndn.NewName([]byte("a")), LifetimeMs: 4000}
	fired := false
	id, err := node.ExpressInterest(interest, func(_ *ndn.Interest, _ *ndn.Data) { fired = true }, nil)
	require.NoError(t, err)

	node.RemovePendingInterest(id)
	node.RemovePendingInterest(id) // idempotent

	node.dispatch(wire.EncodeData(&ndn.Data{Name: interest.Name}))
	require.False(t, fired)
}

func TestDispatchRoutesToLongestMatchingRegisteredPrefix(t *testing.T) {
	node, _, _ := newTestNode()

	var matchedBroad, matchedSpecific ndn.Name
	node.rpt.insert(ndn.NewName([]byte("a")), func(prefix ndn.Name, _ *ndn.Interest, _ ndn.Transport, _ uint64) {
		matchedBroad = prefix
	})
	node.rpt.insert(ndn.NewName([]byte("a"), []byte("b")), func(prefix ndn.Name, _ *ndn.Interest, _ ndn.Transport, _ uint64) {
		matchedSpecific = prefix
	})

	interest := &ndn.Interest{Name: ndn.NewName([]byte("a"), []byte("b"), []byte("c"))}
	node.dispatch(wire.EncodeInterest(interest))

	require.True(t, matchedSpecific.Equal(ndn.NewName([]byte("a"), []byte("b"))))
	require.True(t, matchedBroad.Equal(ndn.Name{}))
}

func TestUnmatchedInterestIsDroppedSilently(t *testing.T) {
	node, _, _ := newTestNode()

	called := false
	node.rpt.insert(ndn.NewName([]byte("x")), func(ndn.Name, *ndn.Interest, ndn.Transport, uint64) { called = true })

	interest := &ndn.Interest{Name: ndn.NewName([]byte("y"))}
	require.NotPanics(t, func() { node.dispatch(wire.EncodeInterest(interest)) })
	require.False(t, called)
}

func TestRegisterPrefixProbesNdndIDBeforeSendingSelfReg(t *testing.T) {
	node, lo, _ := newTestNode()

	prefix := ndn.NewName([]byte("my"), []byte("service"))
	node.RegisterPrefix(prefix, nil, nil, 0)

	require.Len(t, lo.Sent, 1)
	require.Equal(t, 0, node.rpt.len(), "no RPT entry until the ndnd-ID is known")

	probe, err := wire.DecodeInterest(lo.Sent[0])
	require.NoError(t, err)
	require.True(t, probe.Name.Equal(ndn.NewName(
		[]byte("%C1.M.S.localhost"), []byte("%C1.M.SRV"), []byte("ndnd"), []byte("KEY"),
	)))

	probeData := &ndn.Data{
		Name:      probe.Name,
		Signature: ndn.SignatureInfo{KeyLocator: []byte("forwarder-key")},
	}
	node.dispatch(wire.EncodeData(probeData))

	require.Len(t, lo.Sent, 2, "ndnd-ID now known, self-registration interest should have been sent")
	require.Equal(t, 1, node.rpt.len())

	selfreg, err := wire.DecodeInterest(lo.Sent[1])
	require.NoError(t, err)
	require.Equal(t, 4, selfreg.Name.Size())
	require.Equal(t, []byte("ndnx"), []byte(selfreg.Name.At(0)))
	require.Equal(t, []byte("selfreg"), []byte(selfreg.Name.At(2)))
	require.NotNil(t, selfreg.Scope)
	require.Equal(t, uint8(1), *selfreg.Scope)
}

func TestRegisterPrefixQueuesRacingCallsBehindOneProbe(t *testing.T) {
	node, lo, _ := newTestNode()

	node.RegisterPrefix(ndn.NewName([]byte("a")), nil, nil, 0)
	node.RegisterPrefix(ndn.NewName([]byte("b")), nil, nil, 0)

	require.Len(t, lo.Sent, 1, "only one probe should be sent for both racing registrations")

	probe, err := wire.DecodeInterest(lo.Sent[0])
	require.NoError(t, err)
	probeData := &ndn.Data{Name: probe.Name, Signature: ndn.SignatureInfo{KeyLocator: []byte("k")}}
	node.dispatch(wire.EncodeData(probeData))

	require.Len(t, lo.Sent, 3, "probe reply should flush both queued registrations")
	require.Equal(t, 2, node.rpt.len())
}

func TestRegisterPrefixProbeTimeoutFailsQueuedRegistrations(t *testing.T) {
	node, _, clock := newTestNode()

	prefix := ndn.NewName([]byte("my"), []byte("service"))
	var failedPrefix ndn.Name
	failed := false
	node.RegisterPrefix(prefix, nil, func(p ndn.Name) {
		failed = true
		failedPrefix = p
	}, 0)

	clock.Advance(ndndIDProbeLifetimeMs)
	node.sweep()

	require.True(t, failed)
	require.True(t, failedPrefix.Equal(prefix))
	require.Equal(t, 0, node.rpt.len())
}

func TestShutdownIsIdempotentAndClosesTransport(t *testing.T) {
	node, lo, _ := newTestNode()
	require.NoError(t, node.ensureConnected())
	require.True(t, lo.IsConnected())

	require.NoError(t, node.Shutdown())
	require.False(t, lo.IsConnected())
	require.NoError(t, node.Shutdown())
}

package transport

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/named-data/ndn-client-core/internal/corelog"
	"github.com/named-data/ndn-client-core/pkg/ndn"
	"github.com/named-data/ndn-client-core/pkg/wire"
)

// maxPacketSize bounds how much unframed data this transport will buffer
// before giving up on ever seeing a complete TLV block.
const maxPacketSize = 1 << 20

// StreamTransport is a Transport backed by a net.Conn (TCP or Unix stream
// socket), framing the byte stream into TLV blocks one at a time.
type StreamTransport struct {
	base
	network string
	address string

	mu   sync.Mutex
	conn net.Conn
}

// NewStreamTransport builds a Transport that will dial network/address
// (e.g. "unix", "/run/nfd/nfd.sock" or "tcp", "127.0.0.1:6363") on Connect.
func NewStreamTransport(network, address string) *StreamTransport {
	return &StreamTransport{network: network, address: address}
}

func (t *StreamTransport) Connect(onReceive func(block []byte)) error {
	if t.IsConnected() {
		return nil
	}

	conn, err := net.Dial(t.network, t.address)
	if err != nil {
		return &ndn.TransportError{Op: "connect", Err: err}
	}

	t.mu.Lock()
	t.conn = conn
	t.mu.Unlock()

	t.setOnReceive(onReceive)
	t.connected.Store(true)

	go t.receiveLoop(conn)

	return nil
}

func (t *StreamTransport) receiveLoop(conn net.Conn) {
	err := readTLVStream(conn, func(block []byte) bool {
		t.deliver(block)
		return t.IsConnected()
	})
	if err != nil && t.IsConnected() {
		corelog.Error(t, fmt.Sprintf("receive loop ended: %v", err))
	}
	t.connected.Store(false)
}

func (t *StreamTransport) Send(pkt []byte) error {
	if !t.IsConnected() {
		return ndn.ErrNotConnected
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.conn.Write(pkt); err != nil {
		return &ndn.TransportError{Op: "send", Err: err}
	}
	return nil
}

func (t *StreamTransport) Close() error {
	if !t.connected.Swap(false) {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn != nil {
		return t.conn.Close()
	}
	return nil
}

func (t *StreamTransport) String() string {
	return fmt.Sprintf("stream-transport(%s://%s)", t.network, t.address)
}

// readTLVStream reads complete TLV blocks from reader, calling onFrame once
// per block until onFrame returns false or the stream ends. Adapted from
// the corpus's TLV stream framing (std/utils/io/stream_read.go) to this
// package's own wire.BlockLength.
func readTLVStream(reader io.Reader, onFrame func([]byte) bool) error {
	buf := make([]byte, maxPacketSize*2)
	start, end := 0, 0

	for {
		if len(buf)-end < maxPacketSize {
			copy(buf, buf[start:end])
			end -= start
			start = 0
		}

		n, err := reader.Read(buf[end:])
		end += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		for {
			blockLen, err := wire.BlockLength(buf[start:end])
			if err != nil {
				if end-start > maxPacketSize {
					return fmt.Errorf("transport: no valid TLV block within %d bytes", maxPacketSize)
				}
				break // incomplete block, read more
			}
			if !onFrame(buf[start : start+blockLen]) {
				return nil
			}
			start += blockLen
		}
	}
}

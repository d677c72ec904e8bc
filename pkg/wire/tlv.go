// Package wire implements the NDN TLV wire codec consumed by the engine:
// variable-length Type/Length numbers, and encode/decode for Name,
// Interest, Data and the legacy ForwardingEntry management structure. The
// engine treats this codec as external, assumed-available infrastructure
// (spec non-goal) - this package is a concrete, minimal implementation of
// that infrastructure so the rest of the repository is testable end to end.
package wire

import (
	"encoding/binary"
	"fmt"
)

// TLV type numbers. Interest/Data/Name/component numbering follows the NDN
// packet format used throughout the corpus (e.g. std/ndn/spec_2022); the
// ForwardingEntry numbering above 0x80 is this repository's own encoding of
// the legacy ndnx management structure, which predates any standardized
// TLV assignment for it.
const (
	TypeInterest = 0x05
	TypeData     = 0x06

	TypeName                 = 0x07
	TypeGenericNameComponent = 0x08

	TypeCanBePrefix       = 0x21
	TypeMustBeFresh       = 0x12
	TypeNonce             = 0x0a
	TypeInterestLifetime  = 0x0c
	TypeScope             = 0x1f // legacy scope field, dropped from NDNv0.3

	TypeContent         = 0x15
	TypeSignatureInfo   = 0x16
	TypeSignatureValue  = 0x17
	TypeSignatureType   = 0x1b
	TypeKeyLocator      = 0x1c

	TypeForwardingEntry   = 0x81
	TypeAction            = 0x82
	TypeFaceID            = 0x83
	TypeForwardingFlags   = 0x84
	TypeFreshnessPeriod   = 0x85
)

// TLNum is a TLV Type or Length number, encoded NDN-style: 1 byte if
// <= 0xfc, else a 0xfd/0xfe/0xff marker followed by 2/4/8 big-endian bytes.
type TLNum uint64

// EncodingLength returns the number of bytes EncodeInto will write.
func (v TLNum) EncodingLength() int {
	switch x := uint64(v); {
	case x <= 0xfc:
		return 1
	case x <= 0xffff:
		return 3
	case x <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// EncodeInto writes v into buf and returns the number of bytes written.
// buf must have at least EncodingLength() bytes available.
func (v TLNum) EncodeInto(buf []byte) int {
	switch x := uint64(v); {
	case x <= 0xfc:
		buf[0] = byte(x)
		return 1
	case x <= 0xffff:
		buf[0] = 0xfd
		binary.BigEndian.PutUint16(buf[1:], uint16(x))
		return 3
	case x <= 0xffffffff:
		buf[0] = 0xfe
		binary.BigEndian.PutUint32(buf[1:], uint32(x))
		return 5
	default:
		buf[0] = 0xff
		binary.BigEndian.PutUint64(buf[1:], x)
		return 9
	}
}

// ReadTLNum reads a TLNum starting at buf[0], returning the value and the
// number of bytes consumed.
func ReadTLNum(buf []byte) (val TLNum, n int, err error) {
	if len(buf) < 1 {
		return 0, 0, fmt.Errorf("%w: empty buffer", errShortBuffer)
	}
	switch x := buf[0]; {
	case x <= 0xfc:
		return TLNum(x), 1, nil
	case x == 0xfd:
		if len(buf) < 3 {
			return 0, 0, errShortBuffer
		}
		return TLNum(binary.BigEndian.Uint16(buf[1:3])), 3, nil
	case x == 0xfe:
		if len(buf) < 5 {
			return 0, 0, errShortBuffer
		}
		return TLNum(binary.BigEndian.Uint32(buf[1:5])), 5, nil
	default:
		if len(buf) < 9 {
			return 0, 0, errShortBuffer
		}
		return TLNum(binary.BigEndian.Uint64(buf[1:9])), 9, nil
	}
}

var errShortBuffer = fmt.Errorf("wire: buffer too short for TLV number")

// natLen returns the minimal big-endian encoding length for a non-negative
// integer field (Nat, per NDN TLV convention: 1, 2, 4 or 8 bytes).
func natLen(x uint64) int {
	switch {
	case x <= 0xff:
		return 1
	case x <= 0xffff:
		return 2
	case x <= 0xffffffff:
		return 4
	default:
		return 8
	}
}

func encodeNat(x uint64) []byte {
	n := natLen(x)
	buf := make([]byte, n)
	switch n {
	case 1:
		buf[0] = byte(x)
	case 2:
		binary.BigEndian.PutUint16(buf, uint16(x))
	case 4:
		binary.BigEndian.PutUint32(buf, uint32(x))
	case 8:
		binary.BigEndian.PutUint64(buf, x)
	}
	return buf
}

func decodeNat(buf []byte) (uint64, error) {
	switch len(buf) {
	case 1:
		return uint64(buf[0]), nil
	case 2:
		return uint64(binary.BigEndian.Uint16(buf)), nil
	case 4:
		return uint64(binary.BigEndian.Uint32(buf)), nil
	case 8:
		return binary.BigEndian.Uint64(buf), nil
	default:
		return 0, fmt.Errorf("wire: natural number length %d is not 1, 2, 4 or 8", len(buf))
	}
}

// tlvBlock is a decoded (type, value) pair with its total encoded length.
type tlvBlock struct {
	typ TLNum
	val []byte
	len int // total bytes consumed including T and L
}

// readBlock reads one TLV block starting at buf[0].
func readBlock(buf []byte) (tlvBlock, error) {
	typ, n1, err := ReadTLNum(buf)
	if err != nil {
		return tlvBlock{}, err
	}
	length, n2, err := ReadTLNum(buf[n1:])
	if err != nil {
		return tlvBlock{}, err
	}
	start := n1 + n2
	end := start + int(length)
	if end > len(buf) {
		return tlvBlock{}, fmt.Errorf("wire: truncated TLV block (need %d, have %d)", end, len(buf))
	}
	return tlvBlock{typ: typ, val: buf[start:end], len: end}, nil
}

// encodeBlock returns the full T-L-V encoding of typ/val.
func encodeBlock(typ TLNum, val []byte) []byte {
	tl := make([]byte, typ.EncodingLength()+TLNum(len(val)).EncodingLength())
	off := typ.EncodeInto(tl)
	TLNum(len(val)).EncodeInto(tl[off:])
	return append(tl, val...)
}

// PeekType reads the outer TLV type of block without otherwise decoding it.
// Used by the receive dispatcher to classify Interest vs Data vs unknown.
func PeekType(block []byte) (uint64, error) {
	typ, _, err := ReadTLNum(block)
	if err != nil {
		return 0, err
	}
	return uint64(typ), nil
}

// BlockLength returns the number of bytes the first complete TLV block in
// buf occupies, or an error if buf does not contain one (yet).
func BlockLength(buf []byte) (int, error) {
	b, err := readBlock(buf)
	if err != nil {
		return 0, err
	}
	return b.len, nil
}

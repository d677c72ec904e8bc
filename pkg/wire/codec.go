package wire

import (
	"fmt"

	"github.com/named-data/ndn-client-core/pkg/ndn"
)

// EncodeName wire-encodes a Name as a Type=Name TLV containing one
// GenericNameComponent TLV per component.
func EncodeName(n ndn.Name) []byte {
	var body []byte
	for _, c := range n.Components() {
		body = append(body, encodeBlock(TypeGenericNameComponent, c)...)
	}
	return encodeBlock(TypeName, body)
}

// DecodeName parses a Type=Name TLV block (the full T-L-V, not just V).
func DecodeName(block []byte) (ndn.Name, error) {
	b, err := readBlock(block)
	if err != nil {
		return ndn.Name{}, err
	}
	if uint64(b.typ) != TypeName {
		return ndn.Name{}, fmt.Errorf("%w: expected Name, got type %d", ndn.ErrDecode, b.typ)
	}
	var comps [][]byte
	rest := b.val
	for len(rest) > 0 {
		cb, err := readBlock(rest)
		if err != nil {
			return ndn.Name{}, fmt.Errorf("%w: %v", ndn.ErrDecode, err)
		}
		comps = append(comps, cb.val)
		rest = rest[cb.len:]
	}
	return ndn.NewName(comps...), nil
}

// EncodeInterest wire-encodes an Interest per spec 4.7/4.9: Name, then
// optional CanBePrefix/MustBeFresh/Nonce/InterestLifetime/Scope fields.
func EncodeInterest(i *ndn.Interest) []byte {
	var body []byte
	body = append(body, EncodeName(i.Name)...)
	if i.CanBePrefix {
		body = append(body, encodeBlock(TypeCanBePrefix, nil)...)
	}
	if i.MustBeFresh {
		body = append(body, encodeBlock(TypeMustBeFresh, nil)...)
	}
	if len(i.Nonce) > 0 {
		body = append(body, encodeBlock(TypeNonce, i.Nonce)...)
	}
	if i.LifetimeMs >= 0 {
		body = append(body, encodeBlock(TypeInterestLifetime, encodeNat(uint64(i.LifetimeMs)))...)
	}
	if i.Scope != nil {
		body = append(body, encodeBlock(TypeScope, encodeNat(uint64(*i.Scope)))...)
	}
	return encodeBlock(TypeInterest, body)
}

// DecodeInterest parses a Type=Interest TLV block.
func DecodeInterest(block []byte) (*ndn.Interest, error) {
	b, err := readBlock(block)
	if err != nil {
		return nil, err
	}
	if uint64(b.typ) != TypeInterest {
		return nil, fmt.Errorf("%w: expected Interest, got type %d", ndn.ErrDecode, b.typ)
	}

	i := &ndn.Interest{LifetimeMs: -1}
	rest := b.val
	for len(rest) > 0 {
		fb, err := readBlock(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ndn.ErrDecode, err)
		}
		switch uint64(fb.typ) {
		case TypeName:
			name, err := DecodeName(rest[:fb.len])
			if err != nil {
				return nil, err
			}
			i.Name = name
		case TypeCanBePrefix:
			i.CanBePrefix = true
		case TypeMustBeFresh:
			i.MustBeFresh = true
		case TypeNonce:
			i.Nonce = append([]byte(nil), fb.val...)
		case TypeInterestLifetime:
			lt, err := decodeNat(fb.val)
			if err != nil {
				return nil, err
			}
			i.LifetimeMs = int64(lt)
		case TypeScope:
			s, err := decodeNat(fb.val)
			if err != nil {
				return nil, err
			}
			scope := uint8(s)
			i.Scope = &scope
		}
		rest = rest[fb.len:]
	}
	return i, nil
}

// EncodeData wire-encodes a Data packet: Name, Content, SignatureInfo
// (signature type + optional key locator), SignatureValue.
func EncodeData(d *ndn.Data) []byte {
	var body []byte
	body = append(body, EncodeName(d.Name)...)
	body = append(body, encodeBlock(TypeContent, d.Content)...)

	var sigInfo []byte
	sigInfo = append(sigInfo, encodeBlock(TypeSignatureType, encodeNat(d.Signature.Type))...)
	if d.Signature.KeyLocator != nil {
		sigInfo = append(sigInfo, encodeBlock(TypeKeyLocator, d.Signature.KeyLocator)...)
	}
	body = append(body, encodeBlock(TypeSignatureInfo, sigInfo)...)
	body = append(body, encodeBlock(TypeSignatureValue, d.SigValue)...)

	return encodeBlock(TypeData, body)
}

// DecodeData parses a Type=Data TLV block.
func DecodeData(block []byte) (*ndn.Data, error) {
	b, err := readBlock(block)
	if err != nil {
		return nil, err
	}
	if uint64(b.typ) != TypeData {
		return nil, fmt.Errorf("%w: expected Data, got type %d", ndn.ErrDecode, b.typ)
	}

	d := &ndn.Data{}
	rest := b.val
	for len(rest) > 0 {
		fb, err := readBlock(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ndn.ErrDecode, err)
		}
		switch uint64(fb.typ) {
		case TypeName:
			name, err := DecodeName(rest[:fb.len])
			if err != nil {
				return nil, err
			}
			d.Name = name
		case TypeContent:
			d.Content = append([]byte(nil), fb.val...)
		case TypeSignatureInfo:
			info, err := decodeSignatureInfo(fb.val)
			if err != nil {
				return nil, err
			}
			d.Signature = info
		case TypeSignatureValue:
			d.SigValue = append([]byte(nil), fb.val...)
		}
		rest = rest[fb.len:]
	}
	return d, nil
}

func decodeSignatureInfo(buf []byte) (ndn.SignatureInfo, error) {
	var info ndn.SignatureInfo
	rest := buf
	for len(rest) > 0 {
		fb, err := readBlock(rest)
		if err != nil {
			return info, err
		}
		switch uint64(fb.typ) {
		case TypeSignatureType:
			v, err := decodeNat(fb.val)
			if err != nil {
				return info, err
			}
			info.Type = v
		case TypeKeyLocator:
			info.KeyLocator = append([]byte(nil), fb.val...)
		}
		rest = rest[fb.len:]
	}
	return info, nil
}

// EncodeForwardingEntry wire-encodes the legacy ndnx ForwardingEntry
// structure carried as the content of the self-registration Data packet
// (spec 4.7 step 3).
func EncodeForwardingEntry(fe *ndn.ForwardingEntry) []byte {
	var body []byte
	body = append(body, encodeBlock(TypeAction, []byte(fe.Action))...)
	body = append(body, EncodeName(fe.Prefix)...)
	body = append(body, encodeBlock(TypeFaceID, encodeNat(uint64(int64ToUint64(fe.FaceID))))...)
	body = append(body, encodeBlock(TypeForwardingFlags, encodeNat(uint64(fe.Flags)))...)
	body = append(body, encodeBlock(TypeFreshnessPeriod, encodeNat(uint64(int64ToUint64(fe.FreshnessPeriod))))...)
	return encodeBlock(TypeForwardingEntry, body)
}

// DecodeForwardingEntry parses a Type=ForwardingEntry TLV block.
func DecodeForwardingEntry(block []byte) (*ndn.ForwardingEntry, error) {
	b, err := readBlock(block)
	if err != nil {
		return nil, err
	}
	if uint64(b.typ) != TypeForwardingEntry {
		return nil, fmt.Errorf("%w: expected ForwardingEntry, got type %d", ndn.ErrDecode, b.typ)
	}

	fe := &ndn.ForwardingEntry{}
	rest := b.val
	for len(rest) > 0 {
		fb, err := readBlock(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ndn.ErrDecode, err)
		}
		switch uint64(fb.typ) {
		case TypeAction:
			fe.Action = string(fb.val)
		case TypeName:
			name, err := DecodeName(rest[:fb.len])
			if err != nil {
				return nil, err
			}
			fe.Prefix = name
		case TypeFaceID:
			v, err := decodeNat(fb.val)
			if err != nil {
				return nil, err
			}
			fe.FaceID = uint64ToInt64(v)
		case TypeForwardingFlags:
			v, err := decodeNat(fb.val)
			if err != nil {
				return nil, err
			}
			fe.Flags = ndn.ForwardingFlags(v)
		case TypeFreshnessPeriod:
			v, err := decodeNat(fb.val)
			if err != nil {
				return nil, err
			}
			fe.FreshnessPeriod = uint64ToInt64(v)
		}
		rest = rest[fb.len:]
	}
	return fe, nil
}

// ForwardingEntry's FaceID and FreshnessPeriod are signed (-1 is a
// meaningful sentinel per spec 4.7), but the wire Nat encoding is
// unsigned; round-trip via two's complement like the legacy protocol does.
func int64ToUint64(v int64) uint64 { return uint64(v) }
func uint64ToInt64(v uint64) int64 { return int64(v) }

package ndn

// Interest is an immutable request for content matching a Name. Fields
// beyond Name and LifetimeMs are opaque to the core - it forwards them to
// the wire codec but never branches on them.
type Interest struct {
	Name Name
	// LifetimeMs is the requested Interest lifetime in milliseconds.
	// Negative means unspecified; the PIT falls back to a default.
	LifetimeMs  int64
	CanBePrefix bool
	MustBeFresh bool
	Nonce       []byte
	// Scope is a pointer so the zero scope value (0, "no scope restriction"
	// in the wire format) is distinguishable from "not set at all".
	Scope *uint8
}

// MatchesName reports whether this Interest matches a Data name, i.e.
// whether the Interest's name is a prefix of it. Full NDN selector
// matching (CanBePrefix beyond prefix match, MustBeFresh, ImplicitDigest)
// is left to the external codec/forwarder; the core only does name
// prefix matching, per spec.
func (i *Interest) MatchesName(name Name) bool {
	return i.Name.IsPrefixOf(name)
}

// SignatureInfo carries the signature type and key locator of a Data
// packet's signature; the core only reads it during ndnd-ID extraction.
type SignatureInfo struct {
	Type       uint64
	KeyLocator []byte
}

// Data is an immutable reply packet. The core reads Name, plus the key
// locator of an ndnd-ID probe reply; otherwise Content and Signature are
// opaque payload handed to and from the wire codec.
type Data struct {
	Name      Name
	Content   []byte
	Signature SignatureInfo
	SigValue  []byte
}

// ForwardingFlags mirrors the legacy ndnx ForwardingEntry flags field; the
// core treats it as an opaque bitmask supplied by the caller of
// RegisterPrefix and passed through unchanged to the forwarder.
type ForwardingFlags uint32

// ForwardingEntry is the legacy ndnx management structure carried, wire
// encoded, as an opaque name component of a self-registration Interest.
type ForwardingEntry struct {
	Action          string
	Prefix          Name
	FaceID          int64
	Flags           ForwardingFlags
	FreshnessPeriod int64
}

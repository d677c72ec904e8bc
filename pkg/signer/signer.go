// Package signer provides concrete ndn.Signer implementations, grounded on
// the empty/digest test signers in the corpus's security packages.
package signer

import (
	"crypto/sha256"

	"github.com/named-data/ndn-client-core/pkg/ndn"
)

// Empty returns a signer that always produces a zero-length signature
// value. This is the historical NDN self-registration convention used by
// the registration protocol (spec 4.7): the forwarder of this vintage does
// not verify the self-registration Data's signature.
func Empty() ndn.Signer {
	return ndn.Signer{
		KeyID: nil,
		Sign: func(content []byte) ([]byte, error) {
			return []byte{}, nil
		},
	}
}

// Sha256 returns a signer that uses a plain SHA-256 digest as its
// "signature" value - no key material, just integrity. Useful for
// application code that wants to sign outgoing Data without provisioning
// asymmetric keys.
func Sha256() ndn.Signer {
	return ndn.Signer{
		KeyID: nil,
		Sign: func(content []byte) ([]byte, error) {
			sum := sha256.Sum256(content)
			return sum[:], nil
		},
	}
}

package signer_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/named-data/ndn-client-core/pkg/signer"
)

func TestEmptyProducesZeroLengthSignature(t *testing.T) {
	s := signer.Empty()

	sig, err := s.Sign([]byte("anything"))
	require.NoError(t, err)
	require.Len(t, sig, 0)
	require.Nil(t, s.KeyID)
}

func TestSha256ProducesDigestOfContent(t *testing.T) {
	s := signer.Sha256()
	content := []byte("Hello, world!")

	sig, err := s.Sign(content)
	require.NoError(t, err)

	want := sha256.Sum256(content)
	require.Equal(t, want[:], sig)
}

func TestSha256IsDeterministic(t *testing.T) {
	s := signer.Sha256()
	content := []byte("repeatable")

	first, err := s.Sign(content)
	require.NoError(t, err)
	second, err := s.Sign(content)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

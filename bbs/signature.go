/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import (
	"bytes"
	"fmt"

	bls12381 "github.com/kilic/bls12-381"
)

const (
	// Signature length.
	bls12381SignatureLen = 112

	// Default BLS 12-381 public key length in G2 field.
	bls12381G2PublicKeyLen = 96

	// Number of bytes in G1 X coordinate.
	g1CompressedSize = 48

	// Number of bytes in scalar compressed form.
	frCompressedSize = 32

	// Number of bytes in scalar uncompressed form.
	frUncompressedSize = 48
)

// Signature defines a BBS+ signature value {A, e, s}. It is immutable once
// created and safe to share across concurrent verifications.
type Signature struct {
	A *bls12381.PointG1
	E *bls12381.Fr
	S *bls12381.Fr
}

// ParseSignature parses a Signature from its fixed 112-byte encoding: the
// compressed point A followed by the big-endian scalars e and s. Each
// component must decode canonically or the whole signature is rejected.
func ParseSignature(sigBytes []byte) (*Signature, error) {
	if len(sigBytes) != bls12381SignatureLen {
		return nil, fmt.Errorf("parse signature: %w", ErrInvalid)
	}

	g1 := bls12381.NewG1()

	pointG1, err := g1.FromCompressed(sigBytes[:g1CompressedSize])
	if err != nil {
		return nil, fmt.Errorf("parse signature: %w", ErrInvalid)
	}

	e, err := parseCanonicalFr(sigBytes[g1CompressedSize : g1CompressedSize+frCompressedSize])
	if err != nil {
		return nil, fmt.Errorf("parse signature: %w", ErrInvalid)
	}

	s, err := parseCanonicalFr(sigBytes[g1CompressedSize+frCompressedSize:])
	if err != nil {
		return nil, fmt.Errorf("parse signature: %w", ErrInvalid)
	}

	return &Signature{
		A: pointG1,
		E: e,
		S: s,
	}, nil
}

// ToBytes converts signature to bytes using compression of the A point and
// big-endian encoding of the e and s scalars.
func (s *Signature) ToBytes() ([]byte, error) {
	bytes := make([]byte, bls12381SignatureLen)

	g1 := bls12381.NewG1()

	copy(bytes, g1.ToCompressed(s.A))
	copy(bytes[g1CompressedSize:g1CompressedSize+frCompressedSize], s.E.ToBytes())
	copy(bytes[g1CompressedSize+frCompressedSize:], s.S.ToBytes())

	return bytes, nil
}

// Unblind removes the blinding of a signature issued against a commitment by
// folding the blinding factor into s. A and e are untouched; the result
// verifies against the full message vector like a directly issued signature.
func (s *Signature) Unblind(blinding *Blinding) *Signature {
	g1 := bls12381.NewG1()

	sNew := bls12381.NewFr().Set(s.S)
	sNew.Add(sNew, blinding.FR)

	return &Signature{
		A: g1.New().Set(s.A),
		E: bls12381.NewFr().Set(s.E),
		S: sNew,
	}
}

// Equal reports whether two signatures have the same encoding.
func (s *Signature) Equal(other *Signature) bool {
	sBytes, err := s.ToBytes()
	if err != nil {
		return false
	}

	otherBytes, err := other.ToBytes()
	if err != nil {
		return false
	}

	return bytes.Equal(sBytes, otherBytes)
}

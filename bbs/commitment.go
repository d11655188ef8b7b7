/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import (
	"fmt"

	bls12381 "github.com/kilic/bls12-381"
)

// Commitment is a Pedersen commitment to a subset of messages, created by a
// holder before the signer sees their values. It is an immutable value object.
type Commitment struct {
	PointG1 *bls12381.PointG1
}

// ParseCommitment parses a Commitment from its 48-byte compressed encoding.
func ParseCommitment(commitmentBytes []byte) (*Commitment, error) {
	if len(commitmentBytes) != g1CompressedSize {
		return nil, fmt.Errorf("parse commitment: %w", ErrInvalid)
	}

	g1 := bls12381.NewG1()

	pointG1, err := g1.FromCompressed(commitmentBytes)
	if err != nil {
		return nil, fmt.Errorf("parse commitment: %w", ErrInvalid)
	}

	return &Commitment{PointG1: pointG1}, nil
}

// ToBytes returns the compressed encoding of the commitment point.
func (c *Commitment) ToBytes() []byte {
	g1 := bls12381.NewG1()
	return g1.ToCompressed(c.PointG1)
}

// Blinding is the random factor a holder keeps alongside a Commitment and
// later uses to unblind the issued signature.
type Blinding struct {
	FR *bls12381.Fr
}

// NewBlinding draws a random nonzero blinding factor.
func NewBlinding() (*Blinding, error) {
	for {
		fr, err := createRandFr()
		if err != nil {
			return nil, err
		}

		if !fr.IsZero() {
			return &Blinding{FR: fr}, nil
		}
	}
}

// ParseBlinding parses a Blinding from its 32-byte big-endian encoding.
func ParseBlinding(blindingBytes []byte) (*Blinding, error) {
	if len(blindingBytes) != frCompressedSize {
		return nil, fmt.Errorf("parse blinding: %w", ErrInvalid)
	}

	fr, err := parseCanonicalFr(blindingBytes)
	if err != nil {
		return nil, fmt.Errorf("parse blinding: %w", ErrInvalid)
	}

	return &Blinding{FR: fr}, nil
}

// ToBytes returns the big-endian encoding of the blinding factor.
func (b *Blinding) ToBytes() []byte {
	return b.FR.ToBytes()
}

// CommitmentBuilder accumulates the hidden message slots of a blind issuance
// into a Commitment. Slots must be pushed in increasing index order with the
// same generator set the signer will use.
type CommitmentBuilder struct {
	accum *AccumG1
	gens  Generators
	next  int
}

// NewCommitmentBuilder creates a builder over the given generator set.
func NewCommitmentBuilder(gens Generators) *CommitmentBuilder {
	return &CommitmentBuilder{
		accum: NewAccumG1Zero(),
		gens:  gens,
	}
}

// Push adds a message at the given slot index to the commitment.
func (cb *CommitmentBuilder) Push(index int, msg *SignatureMessage) error {
	if index >= cb.gens.MessageCount() {
		return fmt.Errorf("commitment index exceeds generator count: %w", ErrUsage)
	}

	if index < cb.next {
		return fmt.Errorf("commitment indexes must be strictly increasing: %w", ErrUsage)
	}

	cb.accum.Push(cb.gens.Message(index), msg.FR)
	cb.next = index + 1

	return nil
}

// Complete folds in the blinding factor and returns the commitment. The same
// blinding must later be supplied to Signature.Unblind.
func (cb *CommitmentBuilder) Complete(blinding *Blinding) *Commitment {
	return &Commitment{
		PointG1: cb.accum.SumWith(cb.gens.Blinding(), blinding.FR),
	}
}

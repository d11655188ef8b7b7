/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import (
	"fmt"

	bls12381 "github.com/kilic/bls12-381"
)

// SignatureBuilder accumulates a message vector and produces a Signature with
// a signer's secret key. Messages are pushed one at a time in slot order;
// slots already folded into a commitment are reserved with
// PushCommittedCount. A builder is consumed by Sign and cannot be reused.
type SignatureBuilder struct {
	accumB       *AccumG1
	gens         Generators
	hashES       *HashScalar
	key          KeyPair
	messageCount int
	signed       bool
}

// NewSignatureBuilder creates a builder for a plain (non-blind) signature.
func NewSignatureBuilder(gens Generators, key KeyPair) *SignatureBuilder {
	g1 := bls12381.NewG1()

	return newSignatureBuilder(gens, key, g1.One())
}

// NewSignatureBuilderFromCommitment creates a builder for a blind signature
// issued against a holder's commitment. The committed slots must be reserved
// with PushCommittedCount before signing.
func NewSignatureBuilderFromCommitment(gens Generators, key KeyPair, commitment *Commitment) *SignatureBuilder {
	g1 := bls12381.NewG1()

	sum := g1.One()
	g1.Add(sum, sum, commitment.PointG1)

	return newSignatureBuilder(gens, key, sum)
}

func newSignatureBuilder(gens Generators, key KeyPair, sum *bls12381.PointG1) *SignatureBuilder {
	g1 := bls12381.NewG1()

	// The e,s derivation binds to the accumulation starting point, so a blind
	// and a non-blind issuance never share a hash prefix.
	return &SignatureBuilder{
		accumB: NewAccumG1(sum),
		gens:   gens,
		hashES: NewHashScalarWithInput(g1.ToCompressed(sum), nil),
		key:    key,
	}
}

// PushMessage adds the message for the next open slot.
func (sb *SignatureBuilder) PushMessage(message *SignatureMessage) error {
	if sb.signed {
		return fmt.Errorf("signature already created: %w", ErrUsage)
	}

	c := sb.messageCount
	if c >= sb.gens.MessageCount() {
		return fmt.Errorf("message index exceeds generator count: %w", ErrUsage)
	}

	sb.accumB.Push(sb.gens.Message(c), message.FR)
	sb.hashES.Update(message.FR.ToBytes())
	sb.messageCount = c + 1

	return nil
}

// AppendMessages pushes a sequence of messages.
func (sb *SignatureBuilder) AppendMessages(messages ...*SignatureMessage) error {
	for _, msg := range messages {
		if err := sb.PushMessage(msg); err != nil {
			return err
		}
	}

	return nil
}

// PushCommittedCount reserves slots for messages already folded into the
// commitment this builder was created with. Neither the accumulator nor the
// hash state is updated for reserved slots.
func (sb *SignatureBuilder) PushCommittedCount(count int) error {
	if sb.signed {
		return fmt.Errorf("signature already created: %w", ErrUsage)
	}

	if count < 0 {
		return fmt.Errorf("committed count must not be negative: %w", ErrUsage)
	}

	c := sb.messageCount + count
	if c > sb.gens.MessageCount() {
		return fmt.Errorf("message index exceeds generator count: %w", ErrUsage)
	}

	sb.messageCount = c

	return nil
}

// Len returns the current number of added messages, reserved slots included.
func (sb *SignatureBuilder) Len() int {
	return sb.messageCount
}

// Sign consumes the builder and creates the signature. The components e and s
// are derived deterministically from the accumulated state and the secret
// key, so signing the same inputs always yields the same signature and no
// nonce can ever be reused across distinct message vectors.
func (sb *SignatureBuilder) Sign() (*Signature, error) {
	if sb.signed {
		return nil, fmt.Errorf("signature already created: %w", ErrUsage)
	}

	if sb.messageCount != sb.gens.MessageCount() {
		return nil, fmt.Errorf("message count does not match generator count: %w", ErrUsage)
	}

	sk := sb.key.SecretScalar()
	if sk == nil || sk.IsZero() {
		return nil, ErrMissingSecretKey
	}

	sb.signed = true

	hashES := sb.hashES.Clone()

	skBytes := sk.ToBytes()
	hashES.Update(skBytes)
	zeroBytes(skBytes)

	hashRead := hashES.Finalize()
	e := hashRead.Next()
	s := hashRead.Next()

	b := sb.accumB.SumWith(sb.gens.Blinding(), s)

	// A = B·(sk+e)^-1; sk+e is nonzero for honestly generated keys except
	// with negligible probability.
	exp := bls12381.NewFr().Set(sk)
	exp.Add(exp, e)
	exp.Inverse(exp)

	g1 := bls12381.NewG1()
	a := g1.New()
	g1.MulScalar(a, b, frToRepr(exp))

	zeroFr(exp)

	return &Signature{
		A: a,
		E: e,
		S: s,
	}, nil
}

/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import (
	"crypto/subtle"
	"fmt"

	bls12381 "github.com/kilic/bls12-381"
)

// SignatureVerifier mirrors the builder's accumulation against the revealed
// message vector and checks a Signature against the signer's public key.
type SignatureVerifier struct {
	accumB       *AccumG1
	gens         Generators
	key          KeyPair
	messageCount int
}

// NewSignatureVerifier creates a verifier over the given generator set and
// public key.
func NewSignatureVerifier(gens Generators, key KeyPair) *SignatureVerifier {
	g1 := bls12381.NewG1()

	return &SignatureVerifier{
		accumB: NewAccumG1(g1.One()),
		gens:   gens,
		key:    key,
	}
}

// PushMessage adds the revealed message for the next slot.
func (sv *SignatureVerifier) PushMessage(message *SignatureMessage) error {
	c := sv.messageCount
	if c >= sv.gens.MessageCount() {
		return fmt.Errorf("message index exceeds generator count: %w", ErrUsage)
	}

	sv.accumB.Push(sv.gens.Message(c), message.FR)
	sv.messageCount = c + 1

	return nil
}

// AppendMessages pushes a sequence of revealed messages.
func (sv *SignatureVerifier) AppendMessages(messages ...*SignatureMessage) error {
	for _, msg := range messages {
		if err := sv.PushMessage(msg); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the current number of added messages.
func (sv *SignatureVerifier) Len() int {
	return sv.messageCount
}

// Verify checks the pairing equation e(A, G2·e + W) == e(B, G2) for the
// accumulated message vector. It returns nil for a valid signature and
// ErrInvalid otherwise, with no indication of which check failed.
func (sv *SignatureVerifier) Verify(signature *Signature) error {
	if sv.messageCount != sv.gens.MessageCount() {
		return fmt.Errorf("message count does not match generator count: %w", ErrUsage)
	}

	b := sv.accumB.SumWith(sv.gens.Blinding(), signature.S)

	g2 := bls12381.NewG2()

	q1 := g2.One()
	g2.MulScalar(q1, q1, frToRepr(signature.E))
	g2.Add(q1, q1, sv.key.PublicPoint())

	left := bls12381.NewEngine().AddPair(signature.A, q1).Result()
	right := bls12381.NewEngine().AddPair(b, g2.One()).Result()

	// The pairing outputs are compared in constant time so that timing leaks
	// nothing about how close an invalid signature is to verifying.
	gt := bls12381.NewGT()
	if subtle.ConstantTimeCompare(gt.ToBytes(left), gt.ToBytes(right)) != 1 {
		return ErrInvalid
	}

	return nil
}

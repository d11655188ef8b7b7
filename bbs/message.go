/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import (
	bls12381 "github.com/kilic/bls12-381"
)

// SignatureMessage defines a message to be used for a signature check.
type SignatureMessage struct {
	FR *bls12381.Fr
}

// ParseSignatureMessage creates a SignatureMessage by hashing arbitrary length
// input through the canonical untagged hash-to-scalar digest. The digest is a
// pure function of the input bytes and never yields the zero scalar, so it is
// stable across implementations and suitable for cross-implementation vectors.
func ParseSignatureMessage(message []byte) *SignatureMessage {
	return &SignatureMessage{
		FR: HashScalarDigest(message, nil),
	}
}

// ParseSignatureMessages hashes a sequence of messages.
func ParseSignatureMessages(messages [][]byte) []*SignatureMessage {
	messagesFr := make([]*SignatureMessage, len(messages))

	for i := range messages {
		messagesFr[i] = ParseSignatureMessage(messages[i])
	}

	return messagesFr
}

// NewSignatureMessage wraps an existing scalar as a message value.
func NewSignatureMessage(fr *bls12381.Fr) *SignatureMessage {
	return &SignatureMessage{
		FR: bls12381.NewFr().Set(fr),
	}
}

// ToBytes returns the canonical big-endian encoding of the message scalar.
func (m *SignatureMessage) ToBytes() []byte {
	return m.FR.ToBytes()
}

/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"

	bls12381 "github.com/kilic/bls12-381"
	"golang.org/x/crypto/blake2b"

	bls12381intern "github.com/hyperledger/askar-bbs-go/internal/third_party/kilic/bls12-381"
)

const dstG1 = "BLS12381G1_XMD:BLAKE2B_SSWU_RO_BBS+_SIGNATURES:1_0_0"

// Generators supplies the deterministic basis points for a fixed number of
// message slots: one blinding generator plus one generator per slot, indexed
// from zero. The same set must be derived identically on signer and verifier
// sides. Returned points are read-only.
type Generators interface {
	// MessageCount returns the number of message slots.
	MessageCount() int

	// Message returns the generator for the given slot; the index must be in
	// the range [0, MessageCount).
	Message(i int) *bls12381.PointG1

	// Blinding returns the blinding generator h0.
	Blinding() *bls12381.PointG1
}

// MessageGenerators is a fixed generator set derived from a public seed via
// hash-to-curve. It satisfies Generators and is immutable after creation, so
// it is safe to share across concurrent signing and verification operations.
type MessageGenerators struct {
	h0 *bls12381.PointG1
	h  []*bls12381.PointG1
}

// NewMessageGenerators derives a generator set of the given size from a seed.
func NewMessageGenerators(seed []byte, messageCount int) (*MessageGenerators, error) {
	if messageCount <= 0 {
		return nil, errors.New("message count must be positive")
	}

	return deriveGenerators(calcGeneratorsData(seed, messageCount), len(seed)+1, messageCount)
}

// GeneratorsForPublicKey derives a generator set bound to a public key, so
// that signer and verifier agree on the basis without sharing a second seed.
func GeneratorsForPublicKey(pubKey *PublicKey, messageCount int) (*MessageGenerators, error) {
	if messageCount <= 0 {
		return nil, errors.New("message count must be positive")
	}

	g2 := bls12381.NewG2()
	keyBytes := g2.ToUncompressed(pubKey.PointG2)

	return deriveGenerators(calcGeneratorsData(keyBytes, messageCount), len(keyBytes)+1, messageCount)
}

// calcGeneratorsData lays out seed || 6 zero bytes || I2OSP(count, 4). The
// 4 bytes at offset len(seed)+1 are overwritten with the slot index for each
// per-slot derivation.
func calcGeneratorsData(seed []byte, messageCount int) []byte {
	data := make([]byte, 0, len(seed)+10)
	data = append(data, seed...)
	data = append(data, 0, 0, 0, 0, 0, 0)
	data = append(data, uint32ToBytes(uint32(messageCount))...)

	return data
}

func deriveGenerators(data []byte, offset, messageCount int) (*MessageGenerators, error) {
	h0, err := hashToG1(data)
	if err != nil {
		return nil, fmt.Errorf("derive blinding generator: %w", err)
	}

	h := make([]*bls12381.PointG1, messageCount)

	for i := 1; i <= messageCount; i++ {
		dataCopy := make([]byte, len(data))
		copy(dataCopy, data)

		iBytes := uint32ToBytes(uint32(i))

		for j := 0; j < len(iBytes); j++ {
			dataCopy[j+offset] = iBytes[j]
		}

		h[i-1], err = hashToG1(dataCopy)
		if err != nil {
			return nil, fmt.Errorf("derive generator %d: %w", i, err)
		}
	}

	return &MessageGenerators{
		h0: h0,
		h:  h,
	}, nil
}

// MessageCount returns the number of message slots.
func (g *MessageGenerators) MessageCount() int {
	return len(g.h)
}

// Message returns the generator for the given slot.
func (g *MessageGenerators) Message(i int) *bls12381.PointG1 {
	return g.h[i]
}

// Blinding returns the blinding generator h0.
func (g *MessageGenerators) Blinding() *bls12381.PointG1 {
	return g.h0
}

// hashToG1 uses the internal curve library copy: the upstream HashToCurve is
// fixed to SHA-256, while this suite's DST calls for blake2b-512.
func hashToG1(data []byte) (*bls12381.PointG1, error) {
	newBlake2b := func() hash.Hash {
		// We pass a null key so error is impossible here.
		h, _ := blake2b.New512(nil) //nolint:errcheck
		return h
	}

	pointBytes, err := bls12381intern.HashToCurve(data, []byte(dstG1), newBlake2b)
	if err != nil {
		return nil, fmt.Errorf("hash to curve: %w", err)
	}

	g1 := bls12381.NewG1()

	p0, err := g1.FromBytes(pointBytes)
	if err != nil {
		return nil, fmt.Errorf("hash to curve: %w", err)
	}

	return p0, nil
}

func uint32ToBytes(value uint32) []byte {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, value)

	return bytes
}

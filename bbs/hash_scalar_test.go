/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/askar-bbs-go/bbs"
)

func TestHashScalarDeterminism(t *testing.T) {
	first := bbs.HashScalarDigest([]byte("test input"), nil)
	second := bbs.HashScalarDigest([]byte("test input"), nil)
	require.Equal(t, first.ToBytes(), second.ToBytes())

	other := bbs.HashScalarDigest([]byte("test inpuT"), nil)
	require.NotEqual(t, first.ToBytes(), other.ToBytes())
}

func TestHashScalarDomainSeparation(t *testing.T) {
	untagged := bbs.HashScalarDigest([]byte("test input"), nil)
	tagged := bbs.HashScalarDigest([]byte("test input"), []byte("APP-DST-V1"))
	otherTag := bbs.HashScalarDigest([]byte("test input"), []byte("APP-DST-V2"))

	require.NotEqual(t, untagged.ToBytes(), tagged.ToBytes())
	require.NotEqual(t, tagged.ToBytes(), otherTag.ToBytes())
}

func TestHashScalarIncrementalUpdate(t *testing.T) {
	// Absorption is over the byte stream, not update boundaries.
	whole := bbs.NewHashScalarWithInput([]byte("test input"), nil)

	parts := bbs.NewHashScalar(nil)
	parts.Update([]byte("test "))
	parts.Update([]byte("input"))

	require.Equal(t, whole.Finalize().Next().ToBytes(), parts.Finalize().Next().ToBytes())
}

func TestHashScalarSequentialReads(t *testing.T) {
	read := bbs.NewHashScalarWithInput([]byte("test input"), nil).Finalize()

	first := read.Next()
	second := read.Next()
	require.NotEqual(t, first.ToBytes(), second.ToBytes())

	// A fresh state over the same input replays the same stream.
	replay := bbs.NewHashScalarWithInput([]byte("test input"), nil).Finalize()
	require.Equal(t, first.ToBytes(), replay.Next().ToBytes())
	require.Equal(t, second.ToBytes(), replay.Next().ToBytes())

	// Pinned values: the first two 64-byte SHAKE-256 blocks for this input,
	// each read little-endian and reduced mod the group order.
	require.Equal(t,
		hexToBytes(t, "6994b2f07c4d0bc99465c23532da3d34dc59e84bd3b69c1725739bf281d1423a"),
		first.ToBytes())
	require.Equal(t,
		hexToBytes(t, "53177ad6b41942a8ed850768a05c7c5d23e0a1ecad011c9fec57ec90319c7e5f"),
		second.ToBytes())
}

func TestHashScalarClone(t *testing.T) {
	h := bbs.NewHashScalarWithInput([]byte("common prefix"), nil)
	fork := h.Clone()

	h.Update([]byte("left"))
	fork.Update([]byte("right"))

	left := h.Finalize().Next()
	right := fork.Finalize().Next()
	require.NotEqual(t, left.ToBytes(), right.ToBytes())

	straight := bbs.NewHashScalarWithInput([]byte("common prefixright"), nil)
	require.Equal(t, right.ToBytes(), straight.Finalize().Next().ToBytes())
}

func TestHashScalarNeverZero(t *testing.T) {
	for i := 0; i < 100; i++ {
		fr := bbs.HashScalarDigest([]byte(fmt.Sprintf("input %d", i)), nil)
		require.False(t, fr.IsZero())
	}
}

/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import (
	"testing"

	bls12381 "github.com/kilic/bls12-381"
	"github.com/stretchr/testify/require"
)

func TestHashToG1(t *testing.T) {
	data := calcGeneratorsData([]byte("test generator seed"), 3)

	p, err := hashToG1(data)
	require.NoError(t, err)

	g1 := bls12381.NewG1()
	require.True(t, g1.IsOnCurve(p))
	require.True(t, g1.InCorrectSubgroup(p))

	t.Run("deterministic", func(t *testing.T) {
		again, err := hashToG1(data)
		require.NoError(t, err)
		require.Equal(t, g1.ToCompressed(p), g1.ToCompressed(again))
	})

	t.Run("uses the blake2b suite", func(t *testing.T) {
		// The DST commits to blake2b-512; the library's built-in hash-to-curve
		// is fixed to SHA-256 and must not be what the derivation produces.
		sha256Point, err := g1.HashToCurve(data, []byte(dstG1))
		require.NoError(t, err)
		require.NotEqual(t, g1.ToCompressed(sha256Point), g1.ToCompressed(p))
	})
}

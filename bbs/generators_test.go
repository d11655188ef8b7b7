/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs_test

import (
	"testing"

	bls12381 "github.com/kilic/bls12-381"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/askar-bbs-go/bbs"
)

func TestNewMessageGenerators(t *testing.T) {
	seed := []byte("test generator seed")

	gens, err := bbs.NewMessageGenerators(seed, 5)
	require.NoError(t, err)
	require.Equal(t, 5, gens.MessageCount())

	t.Run("all points distinct", func(t *testing.T) {
		g1 := bls12381.NewG1()

		seen := map[string]bool{
			string(g1.ToCompressed(gens.Blinding())): true,
		}

		for i := 0; i < gens.MessageCount(); i++ {
			key := string(g1.ToCompressed(gens.Message(i)))
			require.False(t, seen[key])
			seen[key] = true
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		other, err := bbs.NewMessageGenerators(seed, 5)
		require.NoError(t, err)

		g1 := bls12381.NewG1()
		require.Equal(t, g1.ToCompressed(gens.Blinding()), g1.ToCompressed(other.Blinding()))

		for i := 0; i < 5; i++ {
			require.Equal(t, g1.ToCompressed(gens.Message(i)), g1.ToCompressed(other.Message(i)))
		}
	})

	t.Run("seed changes the set", func(t *testing.T) {
		other, err := bbs.NewMessageGenerators([]byte("other seed"), 5)
		require.NoError(t, err)

		g1 := bls12381.NewG1()
		require.NotEqual(t, g1.ToCompressed(gens.Blinding()), g1.ToCompressed(other.Blinding()))
	})

	t.Run("invalid count", func(t *testing.T) {
		_, err := bbs.NewMessageGenerators(seed, 0)
		require.Error(t, err)

		_, err = bbs.NewMessageGenerators(seed, -1)
		require.Error(t, err)
	})
}

func TestGeneratorsForPublicKey(t *testing.T) {
	pubKey, _, err := generateKeyPairRandom()
	require.NoError(t, err)

	gens, err := bbs.GeneratorsForPublicKey(pubKey, 3)
	require.NoError(t, err)
	require.Equal(t, 3, gens.MessageCount())

	t.Run("deterministic", func(t *testing.T) {
		other, err := bbs.GeneratorsForPublicKey(pubKey, 3)
		require.NoError(t, err)

		g1 := bls12381.NewG1()
		require.Equal(t, g1.ToCompressed(gens.Blinding()), g1.ToCompressed(other.Blinding()))

		for i := 0; i < 3; i++ {
			require.Equal(t, g1.ToCompressed(gens.Message(i)), g1.ToCompressed(other.Message(i)))
		}
	})

	t.Run("key changes the set", func(t *testing.T) {
		otherPubKey, _, err := generateKeyPairRandom()
		require.NoError(t, err)

		other, err := bbs.GeneratorsForPublicKey(otherPubKey, 3)
		require.NoError(t, err)

		g1 := bls12381.NewG1()
		require.NotEqual(t, g1.ToCompressed(gens.Blinding()), g1.ToCompressed(other.Blinding()))
	})

	t.Run("count changes the set", func(t *testing.T) {
		// The count is part of the derivation input, so even the shared slots
		// differ between sets of different size.
		other, err := bbs.GeneratorsForPublicKey(pubKey, 4)
		require.NoError(t, err)

		g1 := bls12381.NewG1()
		require.NotEqual(t, g1.ToCompressed(gens.Message(0)), g1.ToCompressed(other.Message(0)))
	})

	t.Run("invalid count", func(t *testing.T) {
		_, err := bbs.GeneratorsForPublicKey(pubKey, 0)
		require.Error(t, err)
	})
}

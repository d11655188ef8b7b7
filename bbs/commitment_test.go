/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/askar-bbs-go/bbs"
)

func TestBlindIssuance(t *testing.T) {
	pubKey, privKey, err := generateKeyPairRandom()
	require.NoError(t, err)

	messages := bbs.ParseSignatureMessages(testMessages(3))

	gens, err := bbs.GeneratorsForPublicKey(pubKey, 3)
	require.NoError(t, err)

	// The holder hides the messages at slots 0 and 2 behind a commitment.
	blinding, err := bbs.NewBlinding()
	require.NoError(t, err)

	commitBuilder := bbs.NewCommitmentBuilder(gens)
	require.NoError(t, commitBuilder.Push(0, messages[0]))
	require.NoError(t, commitBuilder.Push(2, messages[2]))

	commitment := commitBuilder.Complete(blinding)

	// The signer sees only the commitment and the revealed message at slot 1.
	builder := bbs.NewSignatureBuilderFromCommitment(gens, privKey, commitment)
	require.NoError(t, builder.PushCommittedCount(1))
	require.NoError(t, builder.PushMessage(messages[1]))
	require.NoError(t, builder.PushCommittedCount(1))
	require.Equal(t, 3, builder.Len())

	blindSignature, err := builder.Sign()
	require.NoError(t, err)

	// The blind signature does not verify as-is.
	verifier := bbs.NewSignatureVerifier(gens, pubKey)
	require.NoError(t, verifier.AppendMessages(messages...))
	require.ErrorIs(t, verifier.Verify(blindSignature), bbs.ErrInvalid)

	// After unblinding it verifies against the full message vector.
	signature := blindSignature.Unblind(blinding)

	verifier = bbs.NewSignatureVerifier(gens, pubKey)
	require.NoError(t, verifier.AppendMessages(messages...))
	require.NoError(t, verifier.Verify(signature))

	// Unblinding with a different factor yields an invalid signature.
	otherBlinding, err := bbs.NewBlinding()
	require.NoError(t, err)

	verifier = bbs.NewSignatureVerifier(gens, pubKey)
	require.NoError(t, verifier.AppendMessages(messages...))
	require.ErrorIs(t, verifier.Verify(blindSignature.Unblind(otherBlinding)), bbs.ErrInvalid)
}

func TestCommitmentBuilderUsage(t *testing.T) {
	pubKey, _, err := generateKeyPairRandom()
	require.NoError(t, err)

	messages := bbs.ParseSignatureMessages(testMessages(3))

	gens, err := bbs.GeneratorsForPublicKey(pubKey, 3)
	require.NoError(t, err)

	t.Run("index out of range", func(t *testing.T) {
		builder := bbs.NewCommitmentBuilder(gens)
		require.ErrorIs(t, builder.Push(3, messages[0]), bbs.ErrUsage)
	})

	t.Run("non-increasing index", func(t *testing.T) {
		builder := bbs.NewCommitmentBuilder(gens)
		require.NoError(t, builder.Push(1, messages[1]))
		require.ErrorIs(t, builder.Push(1, messages[1]), bbs.ErrUsage)
		require.ErrorIs(t, builder.Push(0, messages[0]), bbs.ErrUsage)
	})

	t.Run("committed count exceeds slots", func(t *testing.T) {
		_, privKey, err := generateKeyPairRandom()
		require.NoError(t, err)

		blinding, err := bbs.NewBlinding()
		require.NoError(t, err)

		commitment := bbs.NewCommitmentBuilder(gens).Complete(blinding)

		builder := bbs.NewSignatureBuilderFromCommitment(gens, privKey, commitment)
		require.ErrorIs(t, builder.PushCommittedCount(4), bbs.ErrUsage)
	})

	t.Run("negative committed count", func(t *testing.T) {
		_, privKey, err := generateKeyPairRandom()
		require.NoError(t, err)

		blinding, err := bbs.NewBlinding()
		require.NoError(t, err)

		commitment := bbs.NewCommitmentBuilder(gens).Complete(blinding)

		builder := bbs.NewSignatureBuilderFromCommitment(gens, privKey, commitment)
		require.NoError(t, builder.PushCommittedCount(2))
		require.ErrorIs(t, builder.PushCommittedCount(-1), bbs.ErrUsage)
		require.Equal(t, 2, builder.Len())
	})
}

func TestCommitmentWire(t *testing.T) {
	pubKey, _, err := generateKeyPairRandom()
	require.NoError(t, err)

	messages := bbs.ParseSignatureMessages(testMessages(2))

	gens, err := bbs.GeneratorsForPublicKey(pubKey, 2)
	require.NoError(t, err)

	blinding, err := bbs.NewBlinding()
	require.NoError(t, err)

	builder := bbs.NewCommitmentBuilder(gens)
	require.NoError(t, builder.Push(0, messages[0]))

	commitment := builder.Complete(blinding)

	commitmentBytes := commitment.ToBytes()
	require.Len(t, commitmentBytes, 48)

	parsed, err := bbs.ParseCommitment(commitmentBytes)
	require.NoError(t, err)
	require.Equal(t, commitmentBytes, parsed.ToBytes())

	_, err = bbs.ParseCommitment(commitmentBytes[:47])
	require.ErrorIs(t, err, bbs.ErrInvalid)
}

func TestBlindingWire(t *testing.T) {
	blinding, err := bbs.NewBlinding()
	require.NoError(t, err)
	require.False(t, blinding.FR.IsZero())

	blindingBytes := blinding.ToBytes()
	require.Len(t, blindingBytes, 32)

	parsed, err := bbs.ParseBlinding(blindingBytes)
	require.NoError(t, err)
	require.Equal(t, blindingBytes, parsed.ToBytes())

	t.Run("invalid length", func(t *testing.T) {
		_, err := bbs.ParseBlinding(blindingBytes[:31])
		require.ErrorIs(t, err, bbs.ErrInvalid)
	})

	t.Run("non-canonical encoding", func(t *testing.T) {
		tooLarge := make([]byte, 32)
		for i := range tooLarge {
			tooLarge[i] = 0xff
		}

		_, err := bbs.ParseBlinding(tooLarge)
		require.ErrorIs(t, err, bbs.ErrInvalid)
	})
}

/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs_test

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	bls12381 "github.com/kilic/bls12-381"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/askar-bbs-go/bbs"
)

func TestSignVerify(t *testing.T) {
	pubKey, privKey, err := generateKeyPairRandom()
	require.NoError(t, err)

	for messageCount := 1; messageCount <= 10; messageCount++ {
		t.Run(fmt.Sprintf("%d messages", messageCount), func(t *testing.T) {
			messages := testMessages(messageCount)

			gens, err := bbs.GeneratorsForPublicKey(pubKey, messageCount)
			require.NoError(t, err)

			builder := bbs.NewSignatureBuilder(gens, privKey)
			require.NoError(t, builder.AppendMessages(bbs.ParseSignatureMessages(messages)...))
			require.Equal(t, messageCount, builder.Len())

			signature, err := builder.Sign()
			require.NoError(t, err)
			require.NotNil(t, signature)

			verifier := bbs.NewSignatureVerifier(gens, pubKey)
			require.NoError(t, verifier.AppendMessages(bbs.ParseSignatureMessages(messages)...))
			require.NoError(t, verifier.Verify(signature))
		})
	}
}

func TestSignDeterministic(t *testing.T) {
	privKey := testPrivateKey(t)
	pubKey := privKey.PublicKey()

	messages := testMessages(3)

	gens, err := bbs.GeneratorsForPublicKey(pubKey, 3)
	require.NoError(t, err)

	sign := func() *bbs.Signature {
		builder := bbs.NewSignatureBuilder(gens, privKey)
		require.NoError(t, builder.AppendMessages(bbs.ParseSignatureMessages(messages)...))

		signature, err := builder.Sign()
		require.NoError(t, err)

		return signature
	}

	first := sign()
	second := sign()

	require.True(t, first.Equal(second))
}

func TestVerifyModifiedMessages(t *testing.T) {
	pubKey, privKey, err := generateKeyPairRandom()
	require.NoError(t, err)

	messages := testMessages(3)

	gens, err := bbs.GeneratorsForPublicKey(pubKey, 3)
	require.NoError(t, err)

	builder := bbs.NewSignatureBuilder(gens, privKey)
	require.NoError(t, builder.AppendMessages(bbs.ParseSignatureMessages(messages)...))

	signature, err := builder.Sign()
	require.NoError(t, err)

	t.Run("modified message", func(t *testing.T) {
		modified := testMessages(3)
		modified[1] = []byte("tampered")

		verifier := bbs.NewSignatureVerifier(gens, pubKey)
		require.NoError(t, verifier.AppendMessages(bbs.ParseSignatureMessages(modified)...))
		require.ErrorIs(t, verifier.Verify(signature), bbs.ErrInvalid)
	})

	t.Run("swapped messages", func(t *testing.T) {
		swapped := testMessages(3)
		swapped[0], swapped[2] = swapped[2], swapped[0]

		verifier := bbs.NewSignatureVerifier(gens, pubKey)
		require.NoError(t, verifier.AppendMessages(bbs.ParseSignatureMessages(swapped)...))
		require.ErrorIs(t, verifier.Verify(signature), bbs.ErrInvalid)
	})

	t.Run("wrong public key", func(t *testing.T) {
		otherPubKey, _, err := generateKeyPairRandom()
		require.NoError(t, err)

		verifier := bbs.NewSignatureVerifier(gens, otherPubKey)
		require.NoError(t, verifier.AppendMessages(bbs.ParseSignatureMessages(messages)...))
		require.ErrorIs(t, verifier.Verify(signature), bbs.ErrInvalid)
	})
}

func TestSignUsageErrors(t *testing.T) {
	pubKey, privKey, err := generateKeyPairRandom()
	require.NoError(t, err)

	messages := bbs.ParseSignatureMessages(testMessages(3))

	gens, err := bbs.GeneratorsForPublicKey(pubKey, 3)
	require.NoError(t, err)

	t.Run("too few messages", func(t *testing.T) {
		builder := bbs.NewSignatureBuilder(gens, privKey)
		require.NoError(t, builder.AppendMessages(messages[:2]...))

		signature, err := builder.Sign()
		require.ErrorIs(t, err, bbs.ErrUsage)
		require.Nil(t, signature)
	})

	t.Run("too many messages", func(t *testing.T) {
		builder := bbs.NewSignatureBuilder(gens, privKey)
		require.NoError(t, builder.AppendMessages(messages...))
		require.ErrorIs(t, builder.PushMessage(messages[0]), bbs.ErrUsage)
	})

	t.Run("builder reuse", func(t *testing.T) {
		builder := bbs.NewSignatureBuilder(gens, privKey)
		require.NoError(t, builder.AppendMessages(messages...))

		_, err := builder.Sign()
		require.NoError(t, err)

		_, err = builder.Sign()
		require.ErrorIs(t, err, bbs.ErrUsage)
		require.ErrorIs(t, builder.PushMessage(messages[0]), bbs.ErrUsage)
	})

	t.Run("missing secret key", func(t *testing.T) {
		builder := bbs.NewSignatureBuilder(gens, pubKey)
		require.NoError(t, builder.AppendMessages(messages...))

		signature, err := builder.Sign()
		require.ErrorIs(t, err, bbs.ErrMissingSecretKey)
		require.Nil(t, signature)
	})

	t.Run("zero secret key", func(t *testing.T) {
		builder := bbs.NewSignatureBuilder(gens, &bbs.PrivateKey{FR: bls12381.NewFr()})
		require.NoError(t, builder.AppendMessages(messages...))

		signature, err := builder.Sign()
		require.ErrorIs(t, err, bbs.ErrMissingSecretKey)
		require.Nil(t, signature)
	})

	t.Run("verifier count mismatch", func(t *testing.T) {
		builder := bbs.NewSignatureBuilder(gens, privKey)
		require.NoError(t, builder.AppendMessages(messages...))

		signature, err := builder.Sign()
		require.NoError(t, err)

		verifier := bbs.NewSignatureVerifier(gens, pubKey)
		require.NoError(t, verifier.AppendMessages(messages[:2]...))
		require.ErrorIs(t, verifier.Verify(signature), bbs.ErrUsage)
	})
}

func TestSignatureWire(t *testing.T) {
	pubKey, privKey, err := generateKeyPairRandom()
	require.NoError(t, err)

	messages := bbs.ParseSignatureMessages(testMessages(3))

	gens, err := bbs.GeneratorsForPublicKey(pubKey, 3)
	require.NoError(t, err)

	builder := bbs.NewSignatureBuilder(gens, privKey)
	require.NoError(t, builder.AppendMessages(messages...))

	signature, err := builder.Sign()
	require.NoError(t, err)

	sigBytes, err := signature.ToBytes()
	require.NoError(t, err)
	require.Len(t, sigBytes, 112)

	t.Run("round trip", func(t *testing.T) {
		parsed, err := bbs.ParseSignature(sigBytes)
		require.NoError(t, err)
		require.True(t, signature.Equal(parsed))

		verifier := bbs.NewSignatureVerifier(gens, pubKey)
		require.NoError(t, verifier.AppendMessages(messages...))
		require.NoError(t, verifier.Verify(parsed))
	})

	t.Run("invalid length", func(t *testing.T) {
		_, err := bbs.ParseSignature(sigBytes[:111])
		require.ErrorIs(t, err, bbs.ErrInvalid)

		_, err = bbs.ParseSignature(append(sigBytes, 0))
		require.ErrorIs(t, err, bbs.ErrInvalid)

		_, err = bbs.ParseSignature(nil)
		require.ErrorIs(t, err, bbs.ErrInvalid)
	})

	t.Run("invalid point", func(t *testing.T) {
		corrupted := make([]byte, len(sigBytes))
		copy(corrupted, sigBytes)

		for i := 0; i < 48; i++ {
			corrupted[i] = 0xff
		}

		_, err := bbs.ParseSignature(corrupted)
		require.ErrorIs(t, err, bbs.ErrInvalid)
	})

	t.Run("non-canonical scalar", func(t *testing.T) {
		corrupted := make([]byte, len(sigBytes))
		copy(corrupted, sigBytes)

		// 2^256-1 exceeds the group order, so the e slot no longer decodes
		// canonically.
		for i := 48; i < 80; i++ {
			corrupted[i] = 0xff
		}

		_, err := bbs.ParseSignature(corrupted)
		require.ErrorIs(t, err, bbs.ErrInvalid)
	})

	t.Run("bit flips never verify", func(t *testing.T) {
		for _, pos := range []int{0, 20, 47, 48, 63, 79, 80, 95, 111} {
			corrupted := make([]byte, len(sigBytes))
			copy(corrupted, sigBytes)
			corrupted[pos] ^= 0x01

			parsed, err := bbs.ParseSignature(corrupted)
			if err != nil {
				require.ErrorIs(t, err, bbs.ErrInvalid)
				continue
			}

			verifier := bbs.NewSignatureVerifier(gens, pubKey)
			require.NoError(t, verifier.AppendMessages(messages...))
			require.ErrorIs(t, verifier.Verify(parsed), bbs.ErrInvalid)
		}
	})
}

func testMessages(count int) [][]byte {
	all := [][]byte{
		[]byte("message1"),
		[]byte("message2"),
		[]byte("message3"),
		[]byte("message4"),
		[]byte("message5"),
		[]byte("message6"),
		[]byte("message7"),
		[]byte("message8"),
		[]byte("message9"),
		[]byte("message10"),
	}

	return all[:count]
}

func generateKeyPairRandom() (*bbs.PublicKey, *bbs.PrivateKey, error) {
	return bbs.GenerateKeyPair(sha256.New, nil)
}

func testPrivateKey(t *testing.T) *bbs.PrivateKey {
	t.Helper()

	privKeyBytes := hexToBytes(t, "47d2ede63ab4c329092b342ab526b1079dbc2595897d4f2ab2de4d841cbe7d56")

	privKey, err := bbs.UnmarshalPrivateKey(privKeyBytes)
	require.NoError(t, err)

	return privKey
}

func hexToBytes(t *testing.T, msg string) []byte {
	t.Helper()

	bytes, err := hex.DecodeString(msg)
	require.NoError(t, err)

	return bytes
}

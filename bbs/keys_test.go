/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/askar-bbs-go/bbs"
)

func TestGenerateKeyPair(t *testing.T) {
	h := sha256.New

	seed := make([]byte, 32)

	pubKey, privKey, err := bbs.GenerateKeyPair(h, seed)
	require.NoError(t, err)
	require.NotNil(t, pubKey)
	require.NotNil(t, privKey)
	require.False(t, privKey.FR.IsZero())

	// use random seed
	pubKey, privKey, err = bbs.GenerateKeyPair(h, nil)
	require.NoError(t, err)
	require.NotNil(t, pubKey)
	require.NotNil(t, privKey)

	// invalid size of seed
	pubKey, privKey, err = bbs.GenerateKeyPair(h, make([]byte, 31))
	require.Error(t, err)
	require.EqualError(t, err, "invalid size of seed")
	require.Nil(t, pubKey)
	require.Nil(t, privKey)
}

func TestGenerateKeyPairDeterministic(t *testing.T) {
	seed := hexToBytes(t, "47d2ede63ab4c329092b342ab526b1079dbc2595897d4f2ab2de4d841cbe7d56")

	pubKey, privKey, err := bbs.GenerateKeyPair(sha256.New, seed)
	require.NoError(t, err)

	otherPubKey, otherPrivKey, err := bbs.GenerateKeyPair(sha256.New, seed)
	require.NoError(t, err)

	privKeyBytes, err := privKey.Marshal()
	require.NoError(t, err)

	otherPrivKeyBytes, err := otherPrivKey.Marshal()
	require.NoError(t, err)
	require.Equal(t, privKeyBytes, otherPrivKeyBytes)

	pubKeyBytes, err := pubKey.Marshal()
	require.NoError(t, err)

	otherPubKeyBytes, err := otherPubKey.Marshal()
	require.NoError(t, err)
	require.Equal(t, pubKeyBytes, otherPubKeyBytes)

	// two calls with distinct random seeds must not collide
	_, randPrivKey, err := bbs.GenerateKeyPair(sha256.New, nil)
	require.NoError(t, err)

	randPrivKeyBytes, err := randPrivKey.Marshal()
	require.NoError(t, err)
	require.NotEqual(t, privKeyBytes, randPrivKeyBytes)
}

func TestPrivateKeyMarshal(t *testing.T) {
	_, privKey, err := generateKeyPairRandom()
	require.NoError(t, err)

	privKeyBytes, err := privKey.Marshal()
	require.NoError(t, err)
	require.Len(t, privKeyBytes, 32)

	privKeyUnmarshalled, err := bbs.UnmarshalPrivateKey(privKeyBytes)
	require.NoError(t, err)
	require.NotNil(t, privKeyUnmarshalled)
	require.Equal(t, privKey, privKeyUnmarshalled)

	_, err = bbs.UnmarshalPrivateKey(privKeyBytes[:31])
	require.EqualError(t, err, "invalid size of private key")
}

func TestPublicKeyMarshal(t *testing.T) {
	pubKey, _, err := generateKeyPairRandom()
	require.NoError(t, err)

	pubKeyBytes, err := pubKey.Marshal()
	require.NoError(t, err)
	require.Len(t, pubKeyBytes, 96)

	pubKeyUnmarshalled, err := bbs.UnmarshalPublicKey(pubKeyBytes)
	require.NoError(t, err)
	require.NotNil(t, pubKeyUnmarshalled)
	require.Equal(t, pubKeyBytes, mustMarshal(t, pubKeyUnmarshalled))

	_, err = bbs.UnmarshalPublicKey(pubKeyBytes[:95])
	require.EqualError(t, err, "invalid size of public key")

	invalid := make([]byte, 96)
	for i := range invalid {
		invalid[i] = 0xff
	}

	_, err = bbs.UnmarshalPublicKey(invalid)
	require.Error(t, err)
}

func TestPrivateKeyPublicKey(t *testing.T) {
	pubKey, privKey, err := generateKeyPairRandom()
	require.NoError(t, err)

	require.Equal(t, mustMarshal(t, pubKey), mustMarshal(t, privKey.PublicKey()))
}

func TestKeyPairInterface(t *testing.T) {
	pubKey, privKey, err := generateKeyPairRandom()
	require.NoError(t, err)

	var signerKey bbs.KeyPair = privKey
	require.NotNil(t, signerKey.SecretScalar())
	require.NotNil(t, signerKey.PublicPoint())

	var verifierKey bbs.KeyPair = pubKey
	require.Nil(t, verifierKey.SecretScalar())
	require.NotNil(t, verifierKey.PublicPoint())
}

func TestPrivateKeyZeroize(t *testing.T) {
	_, privKey, err := generateKeyPairRandom()
	require.NoError(t, err)
	require.False(t, privKey.FR.IsZero())

	privKey.Zeroize()
	require.True(t, privKey.FR.IsZero())
}

func mustMarshal(t *testing.T, pubKey *bbs.PublicKey) []byte {
	t.Helper()

	bytes, err := pubKey.Marshal()
	require.NoError(t, err)

	return bytes
}

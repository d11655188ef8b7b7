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

func TestParseSignatureMessageFixedVector(t *testing.T) {
	// SHAKE-256("test input"), 64 output bytes read as a little-endian integer
	// and reduced mod the group order. Pinned so the canonical message hash
	// stays interoperable with other implementations of the scheme.
	msg := bbs.ParseSignatureMessage([]byte("test input"))
	require.Equal(t,
		hexToBytes(t, "6994b2f07c4d0bc99465c23532da3d34dc59e84bd3b69c1725739bf281d1423a"),
		msg.ToBytes())
}

func TestParseSignatureMessage(t *testing.T) {
	msg := bbs.ParseSignatureMessage([]byte("message1"))
	require.False(t, msg.FR.IsZero())

	again := bbs.ParseSignatureMessage([]byte("message1"))
	require.Equal(t, msg.ToBytes(), again.ToBytes())

	other := bbs.ParseSignatureMessage([]byte("message2"))
	require.NotEqual(t, msg.ToBytes(), other.ToBytes())
}

func TestParseSignatureMessages(t *testing.T) {
	messages := bbs.ParseSignatureMessages(testMessages(3))
	require.Len(t, messages, 3)

	for i, msg := range messages {
		require.Equal(t, bbs.ParseSignatureMessage(testMessages(3)[i]).ToBytes(), msg.ToBytes())
	}
}

func TestNewSignatureMessage(t *testing.T) {
	original := bbs.ParseSignatureMessage([]byte("message1"))

	wrapped := bbs.NewSignatureMessage(original.FR)
	require.Equal(t, original.ToBytes(), wrapped.ToBytes())

	// the wrapped message holds its own copy of the scalar
	original.FR.Add(original.FR, original.FR)
	require.NotEqual(t, original.ToBytes(), wrapped.ToBytes())
}

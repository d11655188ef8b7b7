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

func TestFrFromWideBytes(t *testing.T) {
	t.Run("small values pass through", func(t *testing.T) {
		// The input is little-endian: with a zero high half the wide reduction
		// must agree with the plain big-endian 32-byte decoding of the
		// reversed low bytes.
		for _, b := range [][]byte{
			{1},
			{0xca, 0xfe},
			{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0},
		} {
			wide := make([]byte, 64)
			for i, v := range b {
				wide[len(b)-1-i] = v
			}

			narrow := make([]byte, 32)
			copy(narrow[32-len(b):], b)

			require.Equal(t, parseFr(narrow).ToBytes(), frFromWideBytes(wide).ToBytes())
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		wide := make([]byte, 64)
		for i := range wide {
			wide[i] = byte(i * 7)
		}

		require.Equal(t, frFromWideBytes(wide).ToBytes(), frFromWideBytes(wide).ToBytes())
	})

	t.Run("high half contributes", func(t *testing.T) {
		low := make([]byte, 64)
		low[0] = 1

		mixed := make([]byte, 64)
		mixed[0] = 1
		mixed[63] = 1

		require.NotEqual(t, frFromWideBytes(low).ToBytes(), frFromWideBytes(mixed).ToBytes())
	})
}

func TestParseCanonicalFr(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		fr := frFromOKM([]byte("canonical round trip"))
		encoded := fr.ToBytes()

		parsed, err := parseCanonicalFr(encoded)
		require.NoError(t, err)
		require.Equal(t, encoded, parsed.ToBytes())
	})

	t.Run("rejects values above the order", func(t *testing.T) {
		tooLarge := make([]byte, 32)
		for i := range tooLarge {
			tooLarge[i] = 0xff
		}

		_, err := parseCanonicalFr(tooLarge)
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestCreateRandFr(t *testing.T) {
	first, err := createRandFr()
	require.NoError(t, err)

	second, err := createRandFr()
	require.NoError(t, err)

	require.NotEqual(t, first.ToBytes(), second.ToBytes())
}

func TestZeroFr(t *testing.T) {
	fr := frFromOKM([]byte("wipe me"))
	require.False(t, fr.IsZero())

	zeroFr(fr)
	require.True(t, fr.IsZero())
	require.Equal(t, bls12381.NewFr().ToBytes(), fr.ToBytes())
}

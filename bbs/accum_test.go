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

func TestAccumG1(t *testing.T) {
	g1 := bls12381.NewG1()

	base := g1.One()
	two := frFromOKM([]byte("scalar a"))
	three := frFromOKM([]byte("scalar b"))

	t.Run("push is additive in the scalar", func(t *testing.T) {
		split := NewAccumG1Zero()
		split.Push(base, two)
		split.Push(base, three)

		sum := bls12381.NewFr().Set(two)
		sum.Add(sum, three)

		joined := NewAccumG1Zero()
		joined.Push(base, sum)

		require.Equal(t, g1.ToCompressed(split.Sum()), g1.ToCompressed(joined.Sum()))
	})

	t.Run("starts from a copy of the base", func(t *testing.T) {
		start := g1.New().Set(base)
		accum := NewAccumG1(start)
		accum.Push(base, two)

		// mutating the accumulator must not touch the caller's point
		require.Equal(t, g1.ToCompressed(base), g1.ToCompressed(start))
	})

	t.Run("sum returns a copy", func(t *testing.T) {
		accum := NewAccumG1(base)

		first := accum.Sum()
		accum.Push(base, two)

		require.Equal(t, g1.ToCompressed(base), g1.ToCompressed(first))
	})

	t.Run("sum with does not mutate", func(t *testing.T) {
		accum := NewAccumG1(base)

		before := g1.ToCompressed(accum.Sum())
		withExtra := accum.SumWith(base, three)

		require.Equal(t, before, g1.ToCompressed(accum.Sum()))
		require.NotEqual(t, before, g1.ToCompressed(withExtra))

		// SumWith must agree with Push on a throwaway accumulator
		pushed := NewAccumG1(base)
		pushed.Push(base, three)
		require.Equal(t, g1.ToCompressed(pushed.Sum()), g1.ToCompressed(withExtra))
	})
}

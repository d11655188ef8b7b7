/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import (
	bls12381 "github.com/kilic/bls12-381"
)

// AccumG1 is an incremental multi-scalar accumulator in G1. Each instance owns
// its own group context, so separate accumulators may be used concurrently.
// A single instance must only be mutated by one caller at a time.
type AccumG1 struct {
	g1  *bls12381.G1
	sum *bls12381.PointG1
}

// NewAccumG1 creates an accumulator starting from a copy of the given point.
func NewAccumG1(base *bls12381.PointG1) *AccumG1 {
	g1 := bls12381.NewG1()

	return &AccumG1{
		g1:  g1,
		sum: g1.New().Set(base),
	}
}

// NewAccumG1Zero creates an accumulator starting from the identity point.
func NewAccumG1Zero() *AccumG1 {
	g1 := bls12381.NewG1()

	return &AccumG1{
		g1:  g1,
		sum: g1.Zero(),
	}
}

// Push adds base·scalar to the running sum.
func (a *AccumG1) Push(base *bls12381.PointG1, scalar *bls12381.Fr) {
	p := a.g1.New()
	a.g1.MulScalar(p, base, frToRepr(scalar))
	a.g1.Add(a.sum, a.sum, p)
}

// Sum returns a copy of the running sum.
func (a *AccumG1) Sum() *bls12381.PointG1 {
	return a.g1.New().Set(a.sum)
}

// SumWith returns running sum + base·scalar without mutating the accumulator.
func (a *AccumG1) SumWith(base *bls12381.PointG1, scalar *bls12381.Fr) *bls12381.PointG1 {
	p := a.g1.New()
	a.g1.MulScalar(p, base, frToRepr(scalar))
	a.g1.Add(p, a.sum, p)

	return p
}

/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bbs implements BBS+ signatures over the BLS12-381 curve with public
// keys in G2 (as defined in https://eprint.iacr.org/2016/663.pdf, section 4.3).
//
// A signer accumulates an ordered vector of message scalars into a
// SignatureBuilder and produces a Signature; a verifier mirrors the
// accumulation against the revealed messages and checks the pairing equation.
// A holder may commit to a subset of the messages up front (CommitmentBuilder)
// so that the signer issues the signature blindly over those slots, and later
// remove the blinding with Signature.Unblind.
//
// Signing is deterministic: the signature components e and s are derived by
// hashing the accumulated state and the secret key through SHAKE-256, so no
// external randomness is consumed and nonce reuse cannot occur.
package bbs

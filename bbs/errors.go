/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import "errors"

var (
	// ErrUsage is returned when the signing or verification protocol is driven
	// incorrectly by the caller, such as pushing more messages than the
	// generator set allows or finalizing with a message count mismatch.
	ErrUsage = errors.New("invalid protocol usage")

	// ErrMissingSecretKey is returned when signing is attempted with a key
	// that has no secret scalar, or whose secret scalar is zero.
	ErrMissingSecretKey = errors.New("missing secret key")

	// ErrInvalid is returned for a signature that fails to verify or for wire
	// bytes that do not decode to a canonical value. The two cases are not
	// distinguished further.
	ErrInvalid = errors.New("invalid signature")
)

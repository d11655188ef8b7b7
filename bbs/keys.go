/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import (
	"crypto/rand"
	"errors"
	"fmt"
	"hash"
	"io"

	bls12381 "github.com/kilic/bls12-381"
	"golang.org/x/crypto/hkdf"
)

const (
	seedSize        = frCompressedSize
	generateKeySalt = "BBS-SIG-KEYGEN-SALT-"
)

// KeyPair supplies the key material consumed by SignatureBuilder and
// SignatureVerifier. Both *PrivateKey and *PublicKey satisfy it; any other
// provider must behave identically on signer and verifier sides.
type KeyPair interface {
	// SecretScalar returns the secret scalar, or nil when only the public part
	// of the key is held.
	SecretScalar() *bls12381.Fr

	// PublicPoint returns the public key point in G2.
	PublicPoint() *bls12381.PointG2
}

// PublicKey defines BLS Public Key.
type PublicKey struct {
	PointG2 *bls12381.PointG2
}

// PrivateKey defines BLS Private Key.
type PrivateKey struct {
	FR *bls12381.Fr
}

// UnmarshalPrivateKey unmarshals PrivateKey.
func UnmarshalPrivateKey(privKeyBytes []byte) (*PrivateKey, error) {
	if len(privKeyBytes) != frCompressedSize {
		return nil, errors.New("invalid size of private key")
	}

	fr := parseFr(privKeyBytes)

	return &PrivateKey{
		FR: fr,
	}, nil
}

// Marshal marshals PrivateKey.
func (k *PrivateKey) Marshal() ([]byte, error) {
	bytes := k.FR.ToBytes()
	return bytes, nil
}

// PublicKey returns a Public Key as G2 point generated from the Private Key.
func (k *PrivateKey) PublicKey() *PublicKey {
	g2 := bls12381.NewG2()

	pointG2 := g2.One()
	g2.MulScalar(pointG2, pointG2, frToRepr(k.FR))

	return &PublicKey{pointG2}
}

// SecretScalar returns the secret scalar.
func (k *PrivateKey) SecretScalar() *bls12381.Fr {
	return k.FR
}

// PublicPoint returns the public key point in G2.
func (k *PrivateKey) PublicPoint() *bls12381.PointG2 {
	return k.PublicKey().PointG2
}

// Zeroize wipes the secret scalar. The key must not be used afterwards.
func (k *PrivateKey) Zeroize() {
	zeroFr(k.FR)
}

// UnmarshalPublicKey parses a PublicKey from bytes.
func UnmarshalPublicKey(pubKeyBytes []byte) (*PublicKey, error) {
	if len(pubKeyBytes) != bls12381G2PublicKeyLen {
		return nil, errors.New("invalid size of public key")
	}

	g2 := bls12381.NewG2()

	pointG2, err := g2.FromCompressed(pubKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("deserialize public key: %w", err)
	}

	return &PublicKey{
		PointG2: pointG2,
	}, nil
}

// Marshal marshals PublicKey.
func (pk *PublicKey) Marshal() ([]byte, error) {
	g2 := bls12381.NewG2()
	pkBytes := g2.ToCompressed(pk.PointG2)

	return pkBytes, nil
}

// SecretScalar returns nil; a public key carries no secret part.
func (pk *PublicKey) SecretScalar() *bls12381.Fr {
	return nil
}

// PublicPoint returns the public key point in G2.
func (pk *PublicKey) PublicPoint() *bls12381.PointG2 {
	return pk.PointG2
}

// GenerateKeyPair generates BBS+ PublicKey and PrivateKey pair. With a 32-byte
// seed the result is deterministic; with a nil seed fresh randomness is drawn.
func GenerateKeyPair(h func() hash.Hash, seed []byte) (*PublicKey, *PrivateKey, error) {
	if len(seed) != 0 && len(seed) != seedSize {
		return nil, nil, errors.New("invalid size of seed")
	}

	okm, err := generateOKM(seed, h)
	if err != nil {
		return nil, nil, err
	}

	defer zeroBytes(okm)

	privKeyFr := frFromOKM(okm)

	privKey := &PrivateKey{privKeyFr}
	pubKey := privKey.PublicKey()

	return pubKey, privKey, nil
}

func generateOKM(ikm []byte, h func() hash.Hash) ([]byte, error) {
	salt := []byte(generateKeySalt)
	info := make([]byte, 2)

	if ikm != nil {
		// Work on a copy: the buffer is wiped after key derivation and the
		// caller's seed must stay intact.
		buf := make([]byte, len(ikm)+1)
		copy(buf, ikm)
		ikm = buf
	} else {
		ikm = make([]byte, seedSize+1)

		_, err := rand.Read(ikm)
		if err != nil {
			return nil, err
		}

		ikm[seedSize] = 0
	}

	defer zeroBytes(ikm)

	return newHKDF(h, ikm, salt, info, frUncompressedSize)
}

func newHKDF(h func() hash.Hash, ikm, salt, info []byte, length int) ([]byte, error) {
	reader := hkdf.New(h, ikm, salt, info)
	result := make([]byte, length)

	_, err := io.ReadFull(reader, result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

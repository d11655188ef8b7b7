/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

// bbsgen is a command line tool for working with BBS+ key material and
// signatures: it generates BLS12-381 G2 key pairs, signs a vector of messages
// and verifies a signature against the revealed messages. Messages given on
// the command line are hashed with the canonical message digest, so vectors
// produced here can be checked by any conforming implementation.

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hyperledger/askar-bbs-go/bbs"
)

const (
	fileSecretKey = "bbs-secret.key"
	filePublicKey = "bbs-public.key"
)

// command line flags
var (
	app = kingpin.New("bbsgen", "Utility for generating BBS+ key material and signing or verifying multi-message vectors")

	genKey       = app.Command("keygen", "Generate a BLS12-381 G2 key pair")
	genKeyOutput = genKey.Flag("output", "The output directory in which to place the key files").Default("bbs-config").String()
	genKeySeed   = genKey.Flag("seed", "Optional 32-byte hex seed for deterministic key generation").String()

	sign         = app.Command("sign", "Sign a vector of messages")
	signKeyInput = sign.Flag("key", "The directory holding the key files").Default("bbs-config").String()
	signOutput   = sign.Flag("output", "The file to write the 112-byte signature to").Default("bbs.sig").String()
	signMessages = sign.Arg("messages", "The messages to sign, in slot order").Required().Strings()

	verify         = app.Command("verify", "Verify a signature against a vector of revealed messages")
	verifyKeyInput = verify.Flag("key", "The directory holding the public key file").Default("bbs-config").String()
	verifySigInput = verify.Flag("signature", "The signature file").Default("bbs.sig").String()
	verifyMessages = verify.Arg("messages", "The revealed messages, in slot order").Required().Strings()
)

func main() {
	app.HelpFlag.Short('h')

	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	switch command {
	case genKey.FullCommand():
		handleError(logger, runKeygen(logger))

	case sign.FullCommand():
		handleError(logger, runSign(logger))

	case verify.FullCommand():
		handleError(logger, runVerify(logger))
	}
}

func runKeygen(logger *zap.SugaredLogger) error {
	var seed []byte

	if *genKeySeed != "" {
		var err error

		seed, err = hex.DecodeString(*genKeySeed)
		if err != nil {
			return errors.Wrap(err, "failed to decode seed")
		}
	}

	pubKey, privKey, err := bbs.GenerateKeyPair(sha256.New, seed)
	if err != nil {
		return errors.Wrap(err, "failed to generate key pair")
	}

	defer privKey.Zeroize()

	privKeyBytes, err := privKey.Marshal()
	if err != nil {
		return errors.Wrap(err, "failed to marshal private key")
	}

	pubKeyBytes, err := pubKey.Marshal()
	if err != nil {
		return errors.Wrap(err, "failed to marshal public key")
	}

	if err := os.MkdirAll(*genKeyOutput, 0o770); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", *genKeyOutput)
	}

	if err := writeFile(filepath.Join(*genKeyOutput, fileSecretKey), privKeyBytes, 0o600); err != nil {
		return err
	}

	if err := writeFile(filepath.Join(*genKeyOutput, filePublicKey), pubKeyBytes, 0o640); err != nil {
		return err
	}

	logger.Infow("generated key pair", "dir", *genKeyOutput)

	return nil
}

func runSign(logger *zap.SugaredLogger) error {
	privKey, err := readPrivateKey(*signKeyInput)
	if err != nil {
		return err
	}

	defer privKey.Zeroize()

	pubKey := privKey.PublicKey()

	messages := *signMessages

	gens, err := bbs.GeneratorsForPublicKey(pubKey, len(messages))
	if err != nil {
		return errors.Wrap(err, "failed to derive generators")
	}

	builder := bbs.NewSignatureBuilder(gens, privKey)

	for _, msg := range messages {
		if err := builder.PushMessage(bbs.ParseSignatureMessage([]byte(msg))); err != nil {
			return errors.Wrap(err, "failed to push message")
		}
	}

	signature, err := builder.Sign()
	if err != nil {
		return errors.Wrap(err, "failed to sign")
	}

	sigBytes, err := signature.ToBytes()
	if err != nil {
		return errors.Wrap(err, "failed to marshal signature")
	}

	if err := writeFile(*signOutput, sigBytes, 0o640); err != nil {
		return err
	}

	logger.Infow("signed message vector", "messages", len(messages), "signature", *signOutput)

	return nil
}

func runVerify(logger *zap.SugaredLogger) error {
	pubKey, err := readPublicKey(*verifyKeyInput)
	if err != nil {
		return err
	}

	sigBytes, err := os.ReadFile(*verifySigInput)
	if err != nil {
		return errors.Wrapf(err, "failed to read signature file %s", *verifySigInput)
	}

	signature, err := bbs.ParseSignature(sigBytes)
	if err != nil {
		return errors.Wrap(err, "failed to parse signature")
	}

	messages := *verifyMessages

	gens, err := bbs.GeneratorsForPublicKey(pubKey, len(messages))
	if err != nil {
		return errors.Wrap(err, "failed to derive generators")
	}

	verifier := bbs.NewSignatureVerifier(gens, pubKey)

	for _, msg := range messages {
		if err := verifier.PushMessage(bbs.ParseSignatureMessage([]byte(msg))); err != nil {
			return errors.Wrap(err, "failed to push message")
		}
	}

	if err := verifier.Verify(signature); err != nil {
		return errors.Wrap(err, "verification failed")
	}

	logger.Infow("signature verified", "messages", len(messages))

	return nil
}

func readPrivateKey(dir string) (*bbs.PrivateKey, error) {
	path := filepath.Join(dir, fileSecretKey)

	keyBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read secret key file %s", path)
	}

	privKey, err := bbs.UnmarshalPrivateKey(keyBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal private key")
	}

	return privKey, nil
}

func readPublicKey(dir string) (*bbs.PublicKey, error) {
	path := filepath.Join(dir, filePublicKey)

	keyBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read public key file %s", path)
	}

	pubKey, err := bbs.UnmarshalPublicKey(keyBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal public key")
	}

	return pubKey, nil
}

func writeFile(path string, contents []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, contents, perm); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}

func newLogger() *zap.SugaredLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zaplogfmt.NewEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zapcore.InfoLevel,
	)

	return zap.New(core).Named("bbsgen").Sugar()
}

func handleError(logger *zap.SugaredLogger, err error) {
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

package main

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"

	sigcrypto "github.com/go-httpsig/httpsig/crypto"
	"github.com/go-httpsig/httpsig/crypto/formats"
	"github.com/spf13/cobra"
)

var (
	genkeyAlgorithm string
	genkeyOutPriv   string
	genkeyOutPub    string
)

var genkeyCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate a signing key pair",
	Long: `Generate a key pair for one of the closed RFC 9421 algorithm
registry entries: ed25519, ecdsa-p256-sha256, ecdsa-p384-sha384,
rsa-v1_5-sha256, rsa-pss-sha512, hmac-sha256.

RSA and ECDSA keys are written as PKCS#8/X.509 PEM. Ed25519 keys are
written the same way. hmac-sha256 has no key pair; a single base64-encoded
random secret is written to --out-private and --out-public is ignored.`,
	Example: `  httpsigctl genkey --algorithm ed25519 --out-private priv.pem --out-public pub.pem
  httpsigctl genkey --algorithm hmac-sha256 --out-private secret.b64`,
	RunE: runGenkey,
}

func init() {
	rootCmd.AddCommand(genkeyCmd)

	genkeyCmd.Flags().StringVarP(&genkeyAlgorithm, "algorithm", "a", "ed25519", "algorithm (ed25519, ecdsa-p256-sha256, ecdsa-p384-sha384, rsa-v1_5-sha256, rsa-pss-sha512, hmac-sha256)")
	genkeyCmd.Flags().StringVar(&genkeyOutPriv, "out-private", "", "output path for the private key (default: stdout)")
	genkeyCmd.Flags().StringVar(&genkeyOutPub, "out-public", "", "output path for the public key (default: stdout)")
}

func runGenkey(cmd *cobra.Command, args []string) error {
	alg := sigcrypto.Algorithm(genkeyAlgorithm)
	info, ok := sigcrypto.Lookup(alg)
	if !ok {
		return fmt.Errorf("unsupported algorithm: %s", genkeyAlgorithm)
	}

	if alg == sigcrypto.HMACSHA256 {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("failed to generate hmac secret: %w", err)
		}
		encoded := []byte(base64.StdEncoding.EncodeToString(secret) + "\n")
		return writeOutput(genkeyOutPriv, encoded)
	}

	var priv, pub interface{}
	var err error

	switch info.KeyClass {
	case sigcrypto.KeyClassEd25519:
		var pk ed25519.PublicKey
		var sk ed25519.PrivateKey
		pk, sk, err = ed25519.GenerateKey(rand.Reader)
		priv, pub = sk, pk
	case sigcrypto.KeyClassRSA, sigcrypto.KeyClassRSAPSS:
		var k *rsa.PrivateKey
		k, err = rsa.GenerateKey(rand.Reader, 3072)
		if err == nil {
			priv, pub = k, &k.PublicKey
		}
	case sigcrypto.KeyClassEC:
		curve := elliptic.P256()
		if info.CurveBitSize == 384 {
			curve = elliptic.P384()
		}
		var k *ecdsa.PrivateKey
		k, err = ecdsa.GenerateKey(curve, rand.Reader)
		if err == nil {
			priv, pub = k, &k.PublicKey
		}
	default:
		return fmt.Errorf("unsupported algorithm: %s", genkeyAlgorithm)
	}
	if err != nil {
		return fmt.Errorf("failed to generate key pair: %w", err)
	}

	privPEM, err := formats.EncodePrivateKey(priv)
	if err != nil {
		return fmt.Errorf("failed to encode private key: %w", err)
	}
	pubPEM, err := formats.EncodePublicKey(pub)
	if err != nil {
		return fmt.Errorf("failed to encode public key: %w", err)
	}

	if err := writeOutput(genkeyOutPriv, privPEM); err != nil {
		return err
	}
	return writeOutput(genkeyOutPub, pubPEM)
}

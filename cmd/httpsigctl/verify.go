package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sigcrypto "github.com/go-httpsig/httpsig/crypto"
	"github.com/go-httpsig/httpsig/httpsig"
	"github.com/go-httpsig/httpsig/internal/logger"
)

var (
	verifyKeyFile        string
	verifyAlgorithm      string
	verifyKeyID          string
	verifyLabel          string
	verifyTag            string
	verifyMethod         string
	verifyURL            string
	verifyStatus         int
	verifyHeaders        []string
	verifySignatureInput string
	verifySignature      string
	verifyRequired       []string
	verifyMaxAge         int64
	verifyMaxSkew        int64
	verifyBodyFile       string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a Signature-Input/Signature header pair against a message",
	Long: `Verify rebuilds the message context from the given method, URL, status,
and headers, selects a Signature-Input entry by label or tag, and
cryptographically verifies it against the given public key.`,
	Example: `  httpsigctl verify --key pub.pem --algorithm ed25519 \
    --method GET --url https://example.com/foo --header "Host: example.com" \
    --signature-input 'sig1=("@method" "@authority");created=1618884473;keyid="k"' \
    --signature 'sig1=:base64sig...:'`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyKeyFile, "key", "", "public key file path (required)")
	verifyCmd.Flags().StringVarP(&verifyAlgorithm, "algorithm", "a", "", "algorithm to bind (overrides the signature's own alg parameter)")
	verifyCmd.Flags().StringVar(&verifyKeyID, "key-id", "", "expected keyid; not read: the --key file is used whatever keyid the signature names")
	verifyCmd.Flags().StringVarP(&verifyLabel, "label", "l", "", "Signature-Input/Signature dictionary label to select")
	verifyCmd.Flags().StringVar(&verifyTag, "tag", "", "tag signature parameter to select by")
	verifyCmd.Flags().StringVarP(&verifyMethod, "method", "m", "GET", "HTTP method")
	verifyCmd.Flags().StringVarP(&verifyURL, "url", "u", "", "target URI (required)")
	verifyCmd.Flags().IntVar(&verifyStatus, "status", 0, "response status code, for verifying a response")
	verifyCmd.Flags().StringArrayVarP(&verifyHeaders, "header", "H", nil, `header field "Name: value" (repeatable)`)
	verifyCmd.Flags().StringVar(&verifySignatureInput, "signature-input", "", "Signature-Input header value (required)")
	verifyCmd.Flags().StringVar(&verifySignature, "signature", "", "Signature header value (required)")
	verifyCmd.Flags().StringArrayVar(&verifyRequired, "require", nil, `required covered component, e.g. "@method" (repeatable)`)
	verifyCmd.Flags().Int64Var(&verifyMaxAge, "max-age", 300, "maximum signature age in seconds (0: unbounded)")
	verifyCmd.Flags().Int64Var(&verifyMaxSkew, "max-skew", 60, "maximum clock skew in seconds (0: unbounded)")
	verifyCmd.Flags().StringVar(&verifyBodyFile, "body", "", "body file to cross-check against a covered content-digest component")

	verifyCmd.MarkFlagRequired("url")
	verifyCmd.MarkFlagRequired("signature-input")
	verifyCmd.MarkFlagRequired("signature")
}

func runVerify(cmd *cobra.Command, args []string) error {
	log := newCLILogger()

	if verifyKeyFile == "" {
		return fmt.Errorf("either --key or a config file's key_paths.public_key must be set")
	}

	builder := httpsig.NewMessageBuilder().Method(verifyMethod).URL(verifyURL)
	if verifyStatus != 0 {
		builder = builder.Status(verifyStatus)
	}
	for _, raw := range verifyHeaders {
		name, value, err := parseHeaderFlag(raw)
		if err != nil {
			return err
		}
		builder = builder.Header(name, value)
	}
	ctx, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build message context: %w", err)
	}

	required, err := parseComponentFlags(verifyRequired)
	if err != nil {
		return err
	}

	alg := sigcrypto.Algorithm(verifyAlgorithm)

	getter := func(keyID string) (httpsig.PublicKeyInfo, error) {
		pub, err := loadPublicKey(verifyKeyFile, alg)
		if err != nil {
			return httpsig.PublicKeyInfo{}, err
		}
		return httpsig.PublicKeyInfo{Algorithm: alg, Key: pub}, nil
	}

	var maxAge, maxSkew *int64
	if verifyMaxAge > 0 {
		maxAge = &verifyMaxAge
	}
	if verifyMaxSkew > 0 {
		maxSkew = &verifyMaxSkew
	}

	var body []byte
	if verifyBodyFile != "" {
		body, err = os.ReadFile(verifyBodyFile)
		if err != nil {
			return fmt.Errorf("failed to read --body file: %w", err)
		}
	}

	log.Debug("verifying signature", logger.String("label", verifyLabel), logger.String("tag", verifyTag))

	result, err := httpsig.Verify(httpsig.VerificationSpec{
		SignatureInput:     verifySignatureInput,
		Signature:          verifySignature,
		Label:              verifyLabel,
		Tag:                verifyTag,
		RequiredComponents: required,
		MaxAgeSeconds:      maxAge,
		MaxSkewSeconds:     maxSkew,
		PublicKeyGetter:    getter,
		Context:            ctx,
		ValidateDigest:     body,
	})
	if err != nil {
		log.Error("verification failed", logger.Error(err))
		fmt.Println("signature verification FAILED")
		return fmt.Errorf("invalid signature: %w", err)
	}
	log.Info("verification passed", logger.String("label", result.Label))

	fmt.Println("signature verification PASSED")
	fmt.Printf("label: %s\n", result.Label)
	if keyid, ok := result.Params.KeyID(); ok {
		fmt.Printf("keyid: %s\n", keyid)
	}
	return nil
}

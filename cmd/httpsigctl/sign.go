package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sigcrypto "github.com/go-httpsig/httpsig/crypto"
	"github.com/go-httpsig/httpsig/httpsig"
	"github.com/go-httpsig/httpsig/internal/clock"
	"github.com/go-httpsig/httpsig/internal/logger"
)

var (
	signKeyFile    string
	signAlgorithm  string
	signLabel      string
	signMethod     string
	signURL        string
	signStatus     int
	signHeaders    []string
	signComponents []string
	signKeyID      string
	signCreated    int64
	signExpiresIn  int64
	signNonce      string
	signTag        string
	signVisibleAlg bool
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign an HTTP message description and emit Signature-Input/Signature",
	Long: `Sign builds a message context from the given method, URL, status, and
headers, covers the requested components, and signs the result with the
given private key.`,
	Example: `  httpsigctl sign --key priv.pem --algorithm ed25519 --key-id my-key \
    --method GET --url https://example.com/foo --header "Host: example.com" \
    --component "@method" --component "@authority" --component "date"`,
	RunE: runSign,
}

func init() {
	rootCmd.AddCommand(signCmd)

	signCmd.Flags().StringVar(&signKeyFile, "key", "", "private key file path (required)")
	signCmd.Flags().StringVarP(&signAlgorithm, "algorithm", "a", "ed25519", "signing algorithm")
	signCmd.Flags().StringVarP(&signLabel, "label", "l", "sig1", "Signature-Input/Signature dictionary label")
	signCmd.Flags().StringVarP(&signMethod, "method", "m", "GET", "HTTP method")
	signCmd.Flags().StringVarP(&signURL, "url", "u", "", "target URI (required)")
	signCmd.Flags().IntVar(&signStatus, "status", 0, "response status code, for signing a response")
	signCmd.Flags().StringArrayVarP(&signHeaders, "header", "H", nil, `header field "Name: value" (repeatable)`)
	signCmd.Flags().StringArrayVarP(&signComponents, "component", "c", nil, `covered component, e.g. "@method" or "content-digest;bs" (repeatable)`)
	signCmd.Flags().StringVar(&signKeyID, "key-id", "", "keyid signature parameter")
	signCmd.Flags().Int64Var(&signCreated, "created", 0, "created signature parameter (unix seconds; default: now)")
	signCmd.Flags().Int64Var(&signExpiresIn, "expires-in", 0, "expires signature parameter, seconds from created (0: omit)")
	signCmd.Flags().StringVar(&signNonce, "nonce", "", `nonce signature parameter ("auto" generates one with uuid)`)
	signCmd.Flags().StringVar(&signTag, "tag", "", "tag signature parameter")
	signCmd.Flags().BoolVar(&signVisibleAlg, "visible-alg", false, "include alg in the emitted Signature-Input parameters")

	signCmd.MarkFlagRequired("url")
}

func runSign(cmd *cobra.Command, args []string) error {
	log := newCLILogger()

	if signKeyFile == "" {
		return fmt.Errorf("either --key or a config file's key_paths.private_key must be set")
	}

	alg := sigcrypto.Algorithm(signAlgorithm)
	if !sigcrypto.IsSupported(alg) {
		return fmt.Errorf("unsupported algorithm: %s", signAlgorithm)
	}
	log.Debug("loading private key", logger.String("algorithm", string(alg)), logger.String("path", signKeyFile))

	priv, err := loadPrivateKey(signKeyFile, alg)
	if err != nil {
		return err
	}

	builder := httpsig.NewMessageBuilder().Method(signMethod).URL(signURL)
	if signStatus != 0 {
		builder = builder.Status(signStatus)
	}
	for _, raw := range signHeaders {
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

	components, err := parseComponentFlags(signComponents)
	if err != nil {
		return err
	}

	created := signCreated
	if created == 0 {
		created = clock.New().Now().Unix()
	}

	params := httpsig.NewSignatureParams().SetCreated(created)
	if signExpiresIn > 0 {
		params.SetExpires(created + signExpiresIn)
	}
	nonce := signNonce
	if nonce == "auto" {
		nonce = uuid.NewString()
	}
	if nonce != "" {
		params.SetNonce(nonce)
	}
	if signKeyID != "" {
		params.SetKeyID(signKeyID)
	}
	if signTag != "" {
		params.SetTag(signTag)
	}

	log.Info("signing message", logger.String("label", signLabel), logger.Int("components", len(components)))

	result, err := httpsig.Sign(httpsig.SignatureSpec{
		Label:              signLabel,
		RequiredComponents: components,
		Params:             params,
		VisibleAlg:         signVisibleAlg,
		Algorithm:          alg,
		PrivateKey:         priv,
		Context:            ctx,
	})
	if err != nil {
		log.Error("signing failed", logger.Error(err))
		return fmt.Errorf("failed to sign: %w", err)
	}

	out, err := json.MarshalIndent(map[string]string{
		"Signature-Input": result.SignatureInputHeader,
		"Signature":       result.SignatureHeader,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

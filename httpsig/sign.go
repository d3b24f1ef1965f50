package httpsig

import (
	"errors"

	sigcrypto "github.com/go-httpsig/httpsig/crypto"
	"github.com/go-httpsig/httpsig/sfv"
)

// SignatureSpec describes one signing operation (spec.md §4.4).
type SignatureSpec struct {
	// Label names the entry this signature occupies in Signature-Input and
	// Signature (e.g. "sig1").
	Label string

	// RequiredComponents are always covered.
	RequiredComponents []Component
	// OptionalComponents are covered only when they resolve without error
	// against Context ("used if present").
	OptionalComponents []Component

	// Params carries created/expires/nonce/keyid/tag. Alg is set by Sign
	// itself and must not be set by the caller.
	Params *SignatureParams
	// VisibleAlg requests that alg also appear in the emitted inner list's
	// parameters, rather than only driving the crypto dispatch.
	VisibleAlg bool

	Algorithm  sigcrypto.Algorithm
	PrivateKey interface{}

	Context *MessageSnapshot
}

// SignatureResult is the outcome of a successful Sign call: the two header
// values to attach to the outgoing message, and the base that was signed
// (returned for logging/debugging, not for re-use).
type SignatureResult struct {
	SignatureInputHeader string
	SignatureHeader      string
	Base                 string
}

// Sign builds the signature base for spec and signs it (spec.md §4.4).
func Sign(spec SignatureSpec) (*SignatureResult, error) {
	if spec.Label == "" {
		return nil, newSigError(Generic, "signature label must not be empty")
	}
	if spec.Algorithm == "" {
		return nil, newSigError(MissingAlgorithm, "signing requires an algorithm")
	}
	if spec.Context == nil {
		return nil, newSigError(Generic, "signing requires a message context")
	}

	present := make([]Component, 0, len(spec.OptionalComponents))
	for _, c := range spec.OptionalComponents {
		if isValuePresent(c, spec.Context) {
			present = append(present, c)
		}
	}

	components := make([]Component, 0, len(spec.RequiredComponents)+len(present))
	components = append(components, spec.RequiredComponents...)
	components = append(components, present...)

	params := spec.Params
	if params == nil {
		params = NewSignatureParams()
	}
	params = params.clone()
	params.SetAlg(string(spec.Algorithm))

	innerList := buildInnerList(components, params, spec.VisibleAlg)

	base, err := buildSignatureBase(components, spec.Context, innerList)
	if err != nil {
		return nil, err
	}

	sigBytes, err := sigcrypto.Sign([]byte(base), spec.PrivateKey, spec.Algorithm)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	inputDict := sfv.NewDictionary().Set(spec.Label, innerList)
	sigDict := sfv.NewDictionary().Set(spec.Label, sfv.NewItem(sfv.BinaryItem(sigBytes)))

	return &SignatureResult{
		SignatureInputHeader: sfv.SerializeDictionary(inputDict),
		SignatureHeader:      sfv.SerializeDictionary(sigDict),
		Base:                 base,
	}, nil
}

func wrapCryptoError(err error) error {
	switch {
	case errors.Is(err, sigcrypto.ErrUnknownAlgorithm):
		return newSigErrorWrap(UnknownAlgorithm, err, "")
	case errors.Is(err, sigcrypto.ErrInvalidKey):
		return newSigErrorWrap(InvalidKey, err, "")
	default:
		return newSigErrorWrap(Generic, err, "")
	}
}

package httpsig

import (
	"errors"

	sigcrypto "github.com/go-httpsig/httpsig/crypto"
	"github.com/go-httpsig/httpsig/crypto/formats"
	"github.com/go-httpsig/httpsig/internal/clock"
	"github.com/go-httpsig/httpsig/sfv"
)

// PublicKeyInfo is what a PublicKeyGetter returns for a keyid: either a
// decoded key in its concrete Go type, or raw PEM/DER bytes the verifier
// decodes via the crypto/formats collaborator. Algorithm, if set,
// overrides whatever alg the signature parameters claim (spec.md §4.5
// step: "the verifier's own algorithm binding takes precedence over a
// self-reported alg parameter").
type PublicKeyInfo struct {
	Algorithm sigcrypto.Algorithm
	Key       interface{}
	PEM       []byte
}

// PublicKeyGetter resolves a keyid to the key material needed to verify a
// signature (spec.md §3: "a public-key lookup function from keyid to
// PublicKeyInfo").
type PublicKeyGetter func(keyID string) (PublicKeyInfo, error)

// VerificationSpec describes one verification operation (spec.md §4.5).
type VerificationSpec struct {
	// SignatureInput and Signature are the raw header field values.
	SignatureInput string
	Signature      string

	// Label selects a signature entry by name; Tag selects by its `tag`
	// signature parameter. At least one must be set; both together require
	// the entry at Label to carry the given Tag.
	Label string
	Tag   string

	RequiredParameters  []string
	ForbiddenParameters []string

	RequiredComponents          []Component
	RequiredIfPresentComponents []Component

	MaxAgeSeconds  *int64
	MaxSkewSeconds *int64

	PublicKeyGetter PublicKeyGetter
	Clock           clock.Clock

	Context *MessageSnapshot

	// ValidateDigest, when non-nil, is the raw response/request body to
	// cross-check against a covered "content-digest" component once the
	// signature itself verifies (see httpsig/bodyintegrity.go). Leave nil
	// to skip body-integrity checking entirely.
	ValidateDigest []byte
}

// VerificationResult is the outcome of a successful Verify call.
type VerificationResult struct {
	Label  string
	Base   string
	Params *SignatureParams
}

// Verify runs the full check sequence against a received signature
// (spec.md §4.5): select the entry, validate its parameters and covered
// components, check timing against a single wall-clock read, rebuild the
// base exactly as signing would, and cryptographically verify it.
func Verify(spec VerificationSpec) (*VerificationResult, error) {
	if spec.Context == nil {
		return nil, newSigError(Generic, "verification requires a message context")
	}
	if spec.PublicKeyGetter == nil {
		return nil, newSigError(Generic, "verification requires a public key getter")
	}

	inputDict, err := sfv.ParseDictionary(spec.SignatureInput)
	if err != nil {
		return nil, newSigErrorWrap(InvalidStructuredHeader, err, "parsing Signature-Input")
	}

	label, innerList, err := selectSignature(inputDict, spec.Label, spec.Tag)
	if err != nil {
		return nil, err
	}

	params := signatureParamsFromParams(innerList.Params)

	if err := checkUnique(innerList.Items); err != nil {
		return nil, err
	}

	for _, rp := range spec.RequiredParameters {
		if !params.Has(rp) {
			return nil, newSigError(MissingRequired, "required signature parameter %q is absent", rp)
		}
	}
	for _, fp := range spec.ForbiddenParameters {
		if params.Has(fp) {
			return nil, newSigError(ForbiddenPresent, "forbidden signature parameter %q is present", fp)
		}
	}

	components := make([]Component, len(innerList.Items))
	for i, it := range innerList.Items {
		c, err := componentFromItem(it)
		if err != nil {
			return nil, err
		}
		components[i] = c
	}

	if err := checkRequiredComponents(components, spec.RequiredComponents, spec.RequiredIfPresentComponents, spec.Context); err != nil {
		return nil, err
	}

	if err := checkTiming(params, spec); err != nil {
		return nil, err
	}

	sigDict, err := sfv.ParseDictionary(spec.Signature)
	if err != nil {
		return nil, newSigErrorWrap(InvalidStructuredHeader, err, "parsing Signature")
	}
	sigMember, ok := sigDict.Get(label)
	if !ok {
		return nil, newSigError(MissingDictionaryKey, "Signature has no entry %q", label)
	}
	sigItem, ok := sigMember.(sfv.Item)
	if !ok {
		return nil, newSigError(InvalidStructuredHeader, "Signature entry %q is not a bare item", label)
	}
	sigBytes, ok := sigItem.Value.AsBinary()
	if !ok {
		return nil, newSigError(InvalidStructuredHeader, "Signature entry %q is not a byte sequence", label)
	}

	base, err := buildSignatureBase(components, spec.Context, innerList)
	if err != nil {
		return nil, err
	}

	keyID, _ := params.KeyID()
	keyInfo, err := spec.PublicKeyGetter(keyID)
	if err != nil {
		return nil, newSigErrorWrap(InvalidKey, err, "public key lookup for keyid %q", keyID)
	}

	alg := keyInfo.Algorithm
	if alg == "" {
		a, ok := params.Alg()
		if !ok {
			return nil, newSigError(MissingAlgorithm, "no algorithm from key lookup or signature parameters")
		}
		alg = sigcrypto.Algorithm(a)
	}

	pub := keyInfo.Key
	if pub == nil {
		if len(keyInfo.PEM) == 0 {
			return nil, newSigError(InvalidKey, "public key lookup returned no key material")
		}
		decoded, err := formats.DecodePublicKey(keyInfo.PEM)
		if err != nil {
			return nil, newSigErrorWrap(InvalidKey, err, "decoding public key")
		}
		pub = decoded
	}

	if err := sigcrypto.Verify([]byte(base), sigBytes, pub, alg); err != nil {
		if errors.Is(err, sigcrypto.ErrUnknownAlgorithm) {
			return nil, newSigErrorWrap(UnknownAlgorithm, err, "")
		}
		return nil, newSigErrorWrap(IncorrectSignature, err, "algorithm %s base %q", alg, base)
	}

	if spec.ValidateDigest != nil {
		if err := ValidateContentDigest(components, spec.Context, spec.ValidateDigest); err != nil {
			return nil, err
		}
	}

	return &VerificationResult{Label: label, Base: base, Params: params}, nil
}

// selectSignature picks the Signature-Input entry to verify by label, by
// tag, or by both together (spec.md §4.5 step 1).
func selectSignature(dict *sfv.Dictionary, label, tag string) (string, sfv.InnerList, error) {
	switch {
	case label == "" && tag == "":
		return "", sfv.InnerList{}, newSigError(Generic, "verification requires a label or a tag")

	case label != "" && tag == "":
		il, err := entryAt(dict, label)
		if err != nil {
			return "", sfv.InnerList{}, err
		}
		return label, il, nil

	case label == "" && tag != "":
		var matchLabel string
		var match sfv.InnerList
		count := 0
		for _, k := range dict.Keys() {
			m, _ := dict.Get(k)
			il, ok := m.(sfv.InnerList)
			if !ok {
				continue
			}
			v, ok := il.Params.Get(ParamTag)
			if !ok {
				continue
			}
			s, _ := v.AsString()
			if s == tag {
				count++
				matchLabel, match = k, il
			}
		}
		switch count {
		case 0:
			return "", sfv.InnerList{}, newSigError(MissingTag, "no signature has tag %q", tag)
		case 1:
			return matchLabel, match, nil
		default:
			return "", sfv.InnerList{}, newSigError(DuplicateTag, "multiple signatures have tag %q", tag)
		}

	default:
		il, err := entryAt(dict, label)
		if err != nil {
			return "", sfv.InnerList{}, err
		}
		v, ok := il.Params.Get(ParamTag)
		if !ok {
			return "", sfv.InnerList{}, newSigError(MissingTag, "entry %q has no tag parameter", label)
		}
		s, _ := v.AsString()
		if s != tag {
			return "", sfv.InnerList{}, newSigError(MissingTag, "entry %q has tag %q, want %q", label, s, tag)
		}
		return label, il, nil
	}
}

func entryAt(dict *sfv.Dictionary, label string) (sfv.InnerList, error) {
	m, ok := dict.Get(label)
	if !ok {
		return sfv.InnerList{}, newSigError(MissingDictionaryKey, "Signature-Input has no entry %q", label)
	}
	il, ok := m.(sfv.InnerList)
	if !ok {
		return sfv.InnerList{}, newSigError(InvalidStructuredHeader, "Signature-Input entry %q is not an inner list", label)
	}
	return il, nil
}

func checkUnique(items []sfv.Item) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		name := sfv.SerializeItem(it)
		if seen[name] {
			return newSigError(InvalidStructuredHeader, "duplicate covered component %q", name)
		}
		seen[name] = true
	}
	return nil
}

func checkRequiredComponents(present, required, requiredIfPresent []Component, ctx *MessageSnapshot) error {
	has := func(target Component) bool {
		for _, c := range present {
			if c.Equal(target) {
				return true
			}
		}
		return false
	}
	for _, rc := range required {
		if !has(rc) {
			return newSigError(MissingRequired, "required component %s is absent", rc.CanonicalName())
		}
	}
	for _, rc := range requiredIfPresent {
		if has(rc) {
			continue
		}
		if isValuePresent(rc, ctx) {
			return newSigError(MissingRequired, "required-if-present component %s is resolvable but not covered", rc.CanonicalName())
		}
	}
	return nil
}

// checkTiming performs every timing check against a single wall-clock
// read (spec.md §4.5: "there is one wall-clock read per verification;
// implementations must take it once and reuse it across all three
// checks"). created absent skips all three, matching the parameter's
// optionality.
func checkTiming(params *SignatureParams, spec VerificationSpec) error {
	created, ok := params.Created()
	if !ok {
		return nil
	}

	c := spec.Clock
	if c == nil {
		c = clock.New()
	}
	now := c.Now().Unix()

	if expires, ok := params.Expires(); ok && expires < now {
		return newSigError(SignatureExpired, "signature expired at %d (now %d)", expires, now)
	}
	if spec.MaxAgeSeconds != nil && created+*spec.MaxAgeSeconds < now {
		return newSigError(SignatureExpired, "signature exceeds max age of %ds (created %d, now %d)", *spec.MaxAgeSeconds, created, now)
	}
	if spec.MaxSkewSeconds != nil && created > now+*spec.MaxSkewSeconds {
		return newSigError(SignatureExpired, "signature created %d is too far in the future (now %d, skew limit %ds)", created, now, *spec.MaxSkewSeconds)
	}
	return nil
}

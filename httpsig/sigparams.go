package httpsig

import "github.com/go-httpsig/httpsig/sfv"

// Recognized signature-parameter keys (spec.md §4.1).
const (
	ParamCreated = "created"
	ParamExpires = "expires"
	ParamNonce   = "nonce"
	ParamAlg     = "alg"
	ParamKeyID   = "keyid"
	ParamTag     = "tag"
)

// SignatureParams is the ordered {created, expires, nonce, alg, keyid, tag}
// mapping (spec.md §4.1), backed by sfv.Params so insertion order survives
// unchanged into the emitted covered-components inner list.
type SignatureParams struct {
	p *sfv.Params
}

// NewSignatureParams returns an empty, ready-to-populate SignatureParams.
func NewSignatureParams() *SignatureParams {
	return &SignatureParams{p: sfv.NewParams()}
}

func (sp *SignatureParams) SetCreated(t int64) *SignatureParams {
	sp.p.Set(ParamCreated, sfv.IntegerItem(t))
	return sp
}

func (sp *SignatureParams) SetExpires(t int64) *SignatureParams {
	sp.p.Set(ParamExpires, sfv.IntegerItem(t))
	return sp
}

func (sp *SignatureParams) SetNonce(n string) *SignatureParams {
	sp.p.Set(ParamNonce, sfv.StringItem(n))
	return sp
}

func (sp *SignatureParams) SetAlg(alg string) *SignatureParams {
	sp.p.Set(ParamAlg, sfv.StringItem(alg))
	return sp
}

func (sp *SignatureParams) SetKeyID(id string) *SignatureParams {
	sp.p.Set(ParamKeyID, sfv.StringItem(id))
	return sp
}

func (sp *SignatureParams) SetTag(tag string) *SignatureParams {
	sp.p.Set(ParamTag, sfv.StringItem(tag))
	return sp
}

func (sp *SignatureParams) Created() (int64, bool) {
	v, ok := sp.p.Get(ParamCreated)
	if !ok {
		return 0, false
	}
	i, _ := v.AsInteger()
	return i, true
}

func (sp *SignatureParams) Expires() (int64, bool) {
	v, ok := sp.p.Get(ParamExpires)
	if !ok {
		return 0, false
	}
	i, _ := v.AsInteger()
	return i, true
}

func (sp *SignatureParams) Nonce() (string, bool) {
	v, ok := sp.p.Get(ParamNonce)
	if !ok {
		return "", false
	}
	s, _ := v.AsString()
	return s, true
}

func (sp *SignatureParams) Alg() (string, bool) {
	v, ok := sp.p.Get(ParamAlg)
	if !ok {
		return "", false
	}
	s, _ := v.AsString()
	return s, true
}

func (sp *SignatureParams) KeyID() (string, bool) {
	v, ok := sp.p.Get(ParamKeyID)
	if !ok {
		return "", false
	}
	s, _ := v.AsString()
	return s, true
}

func (sp *SignatureParams) Tag() (string, bool) {
	v, ok := sp.p.Get(ParamTag)
	if !ok {
		return "", false
	}
	s, _ := v.AsString()
	return s, true
}

// Has reports whether key is present among the signature parameters.
func (sp *SignatureParams) Has(key string) bool { return sp.p.Has(key) }

// Keys returns the parameter keys in insertion order.
func (sp *SignatureParams) Keys() []string { return sp.p.Keys() }

func (sp *SignatureParams) clone() *SignatureParams {
	return &SignatureParams{p: sp.p.Clone()}
}

// withoutAlg returns the underlying params with alg omitted, used when the
// caller did not request a visible alg parameter (spec.md §4.4 step 3:
// "alg is included in the inner list's parameters only if the caller opted
// into a visible algorithm").
func (sp *SignatureParams) withoutAlg() *sfv.Params {
	out := sfv.NewParams()
	for _, k := range sp.p.Keys() {
		if k == ParamAlg {
			continue
		}
		v, _ := sp.p.Get(k)
		out.Set(k, v)
	}
	return out
}

func signatureParamsFromParams(p *sfv.Params) *SignatureParams {
	return &SignatureParams{p: p.Clone()}
}

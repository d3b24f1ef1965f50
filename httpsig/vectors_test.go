package httpsig

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	sigcrypto "github.com/go-httpsig/httpsig/crypto"
	"github.com/stretchr/testify/require"
)

// TestVectorMinimalSignature reproduces RFC 9421 Appendix B.2.1: a minimal
// signature over no components at all.
func TestVectorMinimalSignature(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	ctx, err := NewMessageBuilder().
		Method("POST").
		URL("https://example.com/foo?param=Value&Pet=dog").
		Header("Host", "example.com").
		Build()
	require.NoError(t, err)

	params := NewSignatureParams().
		SetCreated(1618884473).
		SetKeyID("test-key-rsa-pss").
		SetNonce("b3k2pp5k7z-50gnwp.yemd")

	res, err := Sign(SignatureSpec{
		Label:      "sig-b21",
		Params:     params,
		Algorithm:  sigcrypto.RSAPSSSHA512,
		PrivateKey: priv,
		Context:    ctx,
	})
	require.NoError(t, err)

	want := `sig-b21=();created=1618884473;keyid="test-key-rsa-pss";nonce="b3k2pp5k7z-50gnwp.yemd"`
	require.Equal(t, want, res.SignatureInputHeader)
}

// TestVectorSelectiveComponents reproduces RFC 9421 Appendix B.2.2's
// covered-components inner list (selective coverage including a
// @query-param).
func TestVectorSelectiveComponents(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	ctx, err := NewMessageBuilder().
		Method("POST").
		URL("https://example.com/foo?param=Value&Pet=dog").
		Header("Host", "example.com").
		Header("Content-Digest", "sha-512=:WZDPaVn/7XgHaAy8pmojAkGWoRx2UFChF41A2svX+TaPm+AbwAgBWnrIiYllu7BNNyealdVLvRwEmTHWXvJwew==:").
		Build()
	require.NoError(t, err)

	authority, err := NewDerivedComponent(Authority)
	require.NoError(t, err)
	digest, err := NewFieldComponent("content-digest")
	require.NoError(t, err)
	petParam, err := NewDerivedComponent(QueryParam, WithQueryParamName("Pet"))
	require.NoError(t, err)

	params := NewSignatureParams().
		SetCreated(1618884473).
		SetKeyID("test-key-rsa-pss").
		SetTag("header-example")

	res, err := Sign(SignatureSpec{
		Label:              "sig-b22",
		RequiredComponents: []Component{authority, digest, petParam},
		Params:             params,
		Algorithm:          sigcrypto.RSAPSSSHA512,
		PrivateKey:         priv,
		Context:            ctx,
	})
	require.NoError(t, err)

	want := `sig-b22=("@authority" "content-digest" "@query-param";name="Pet");created=1618884473;keyid="test-key-rsa-pss";tag="header-example"`
	require.Equal(t, want, res.SignatureInputHeader)
}

// TestVectorFullCoverageBase reproduces the excerpt of RFC 9421 Appendix
// B.2.3's full-coverage signature base, checking the exact byte sequence.
func TestVectorFullCoverageBase(t *testing.T) {
	ctx, err := NewMessageBuilder().
		Method("POST").
		URL("https://example.com/foo?param=Value&Pet=dog").
		Header("Host", "example.com").
		Header("Date", "Tue, 20 Apr 2021 02:07:55 GMT").
		Header("Content-Type", "application/json").
		Header("Content-Digest", "sha-512=:WZDPaVn...:").
		Header("Content-Length", "18").
		Build()
	require.NoError(t, err)

	date, err := NewFieldComponent("date")
	require.NoError(t, err)
	method, err := NewDerivedComponent(Method)
	require.NoError(t, err)
	path, err := NewDerivedComponent(Path)
	require.NoError(t, err)
	authority, err := NewDerivedComponent(Authority)
	require.NoError(t, err)
	contentType, err := NewFieldComponent("content-type")
	require.NoError(t, err)
	contentLength, err := NewFieldComponent("content-length")
	require.NoError(t, err)

	components := []Component{date, method, path, authority, contentType, contentLength}

	params := NewSignatureParams().SetCreated(1618884473).SetKeyID("test-key-ed25519")
	innerList := buildInnerList(components, params, false)
	base, err := buildSignatureBase(components, ctx, innerList)
	require.NoError(t, err)

	want := "\"date\": Tue, 20 Apr 2021 02:07:55 GMT\n" +
		"\"@method\": POST\n" +
		"\"@path\": /foo\n" +
		"\"@authority\": example.com\n" +
		"\"content-type\": application/json\n" +
		"\"content-length\": 18\n" +
		"\"@signature-params\": (\"date\" \"@method\" \"@path\" \"@authority\" \"content-type\" \"content-length\");created=1618884473;keyid=\"test-key-ed25519\""

	require.Equal(t, want, base)
}

// TestVectorQueryParamEncoding reproduces RFC 9421's @query-param,
// @query, @path examples, including the empty-query-string and
// valueless-parameter edge cases.
func TestVectorQueryParamEncoding(t *testing.T) {
	ctx, err := NewMessageBuilder().URL("https://example.com/foo?cat=red&dog=white&ok&blue").Build()
	require.NoError(t, err)

	blue, err := NewDerivedComponent(QueryParam, WithQueryParamName("blue"))
	require.NoError(t, err)
	v, err := resolveComponent(blue, ctx)
	require.NoError(t, err)
	require.Equal(t, "", v)

	dog, err := NewDerivedComponent(QueryParam, WithQueryParamName("dog"))
	require.NoError(t, err)
	v, err = resolveComponent(dog, ctx)
	require.NoError(t, err)
	require.Equal(t, "white", v)

	query, err := NewDerivedComponent(Query)
	require.NoError(t, err)
	v, err = resolveComponent(query, ctx)
	require.NoError(t, err)
	require.Equal(t, "?cat=red&dog=white&ok&blue", v)

	bareCtx, err := NewMessageBuilder().URL("https://example.com/").Build()
	require.NoError(t, err)
	pathC, err := NewDerivedComponent(Path)
	require.NoError(t, err)
	v, err = resolveComponent(pathC, bareCtx)
	require.NoError(t, err)
	require.Equal(t, "/", v)

	emptyQueryCtx, err := NewMessageBuilder().URL("https://example.com/foo").Build()
	require.NoError(t, err)
	v, err = resolveComponent(query, emptyQueryCtx)
	require.NoError(t, err)
	require.Equal(t, "?", v)
}

// TestVectorBinaryWrappedHeader reproduces RFC 9421's `;bs` example.
func TestVectorBinaryWrappedHeader(t *testing.T) {
	ctx := NewMessageSnapshot()
	ctx.AddHeader("Example-Header", "value, with, lots")
	ctx.AddHeader("Example-Header", "of, commas")

	c, err := NewFieldComponent("example-header", WithBinaryWrap())
	require.NoError(t, err)

	v, err := resolveComponent(c, ctx)
	require.NoError(t, err)
	require.Equal(t, ":dmFsdWUsIHdpdGgsIGxvdHM=:, :b2YsIGNvbW1hcw==:", v)
}

// TestVectorTagDisambiguation reproduces RFC 9421's tag-selection example
// across four selectors.
func TestVectorTagDisambiguation(t *testing.T) {
	input := `uno=();keyid="one";tag="first", dos0=();keyid="two";tag="first", dos=();keyid="two";tag="second"`

	getter := func(string) (PublicKeyInfo, error) {
		pub, _, _ := ed25519.GenerateKey(rand.Reader)
		return PublicKeyInfo{Key: pub, Algorithm: sigcrypto.Ed25519}, nil
	}

	sigHeader := `uno=:AA==:, dos0=:AA==:, dos=:AA==:`
	ctx := NewMessageSnapshot()

	_, err := Verify(VerificationSpec{
		SignatureInput:  input,
		Signature:       sigHeader,
		Tag:             "first",
		PublicKeyGetter: getter,
		Context:         ctx,
	})
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, DuplicateTag, kind)

	_, err = Verify(VerificationSpec{
		SignatureInput:  input,
		Signature:       sigHeader,
		Tag:             "second",
		PublicKeyGetter: getter,
		Context:         ctx,
	})
	kind, ok = KindOf(err)
	require.True(t, ok)
	require.Equal(t, IncorrectSignature, kind) // tag selection succeeded; bogus sig bytes fail crypto verify

	_, err = Verify(VerificationSpec{
		SignatureInput:  input,
		Signature:       sigHeader,
		Tag:             "third",
		PublicKeyGetter: getter,
		Context:         ctx,
	})
	kind, ok = KindOf(err)
	require.True(t, ok)
	require.Equal(t, MissingTag, kind)

	_, err = Verify(VerificationSpec{
		SignatureInput:  input,
		Signature:       sigHeader,
		Label:           "uno",
		Tag:             "fourth",
		PublicKeyGetter: getter,
		Context:         ctx,
	})
	kind, ok = KindOf(err)
	require.True(t, ok)
	require.Equal(t, MissingTag, kind)
}

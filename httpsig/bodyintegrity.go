package httpsig

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"strings"
)

// ValidateDigest verifies a raw Content-Digest header value against body.
// Content-digest computation is out of scope for the signing path itself
// (the engine signs whatever header value it is given); this lets a
// caller that already covered "content-digest" in a signature cross-check
// it against the body bytes it has in hand.
func ValidateDigest(contentDigestHeader string, body []byte) error {
	parts := strings.SplitN(strings.TrimSpace(contentDigestHeader), "=", 2)
	if len(parts) != 2 {
		return newSigError(Generic, "malformed Content-Digest header")
	}
	alg := strings.TrimSpace(parts[0])
	encoded := strings.Trim(strings.TrimSpace(parts[1]), ":")

	var sum []byte
	switch alg {
	case "sha-256":
		s := sha256.Sum256(body)
		sum = s[:]
	case "sha-512":
		s := sha512.Sum512(body)
		sum = s[:]
	default:
		return newSigError(Generic, "unsupported Content-Digest algorithm %q", alg)
	}

	if base64.StdEncoding.EncodeToString(sum) != encoded {
		return newSigError(IncorrectSignature, "content digest mismatch for algorithm %s", alg)
	}
	return nil
}

// ValidateContentDigest checks that "content-digest" is among the covered
// components and, if so, that the header matches body. Verify calls this
// itself when VerificationSpec.ValidateDigest is set; call it directly
// only when checking body integrity outside of a Verify call.
func ValidateContentDigest(components []Component, ctx *MessageSnapshot, body []byte) error {
	covered := false
	for _, c := range components {
		if c.kind == ComponentField && c.name == "content-digest" && !c.tr {
			covered = true
			break
		}
	}
	if !covered {
		return newSigError(MissingComponent, "content-digest is not a covered component")
	}
	values, ok := ctx.Headers["content-digest"]
	if !ok || len(values) == 0 {
		return newSigError(MissingHeader, "missing content-digest header")
	}
	return ValidateDigest(values[0], body)
}

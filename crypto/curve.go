package crypto

import "crypto/elliptic"

// ValidateCurve implements the elliptic curve validator (spec.md §4.6):
// before signing or verifying with an EC-based algorithm, the key's curve
// parameter tuple must structurally match the algorithm's reference curve.
// Go's elliptic.CurveParams does not carry the `a` coefficient separately
// (NIST curves fix a = -3), so the comparison covers every parameter the
// standard library exposes: P, N, B, Gx, Gy and the bit size.
func ValidateCurve(got, want elliptic.Curve) error {
	if got == nil {
		return ErrInvalidKey
	}
	g, w := got.Params(), want.Params()
	if g.BitSize != w.BitSize ||
		g.P.Cmp(w.P) != 0 ||
		g.N.Cmp(w.N) != 0 ||
		g.B.Cmp(w.B) != 0 ||
		g.Gx.Cmp(w.Gx) != 0 ||
		g.Gy.Cmp(w.Gy) != 0 {
		return ErrInvalidKey
	}
	return nil
}

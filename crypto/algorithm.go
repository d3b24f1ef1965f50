package crypto

// Algorithm is a wire identifier drawn from the closed RFC 9421 algorithm
// registry (spec.md §6): `rsa-pss-sha512`, `rsa-v1_5-sha256`,
// `hmac-sha256`, `ecdsa-p256-sha256`, `ecdsa-p384-sha384`, `ed25519`.
type Algorithm string

const (
	RSAPSSSHA512    Algorithm = "rsa-pss-sha512"
	RSAV15SHA256    Algorithm = "rsa-v1_5-sha256"
	HMACSHA256      Algorithm = "hmac-sha256"
	ECDSAP256SHA256 Algorithm = "ecdsa-p256-sha256"
	ECDSAP384SHA384 Algorithm = "ecdsa-p384-sha384"
	Ed25519         Algorithm = "ed25519"
)

// KeyClass tags the key shape an Algorithm expects (spec.md §2: "key-class
// tagging (RSA, RSA-PSS, EC, Ed25519, HMAC/symmetric)").
type KeyClass int

const (
	KeyClassRSA KeyClass = iota
	KeyClassRSAPSS
	KeyClassEC
	KeyClassEd25519
	KeyClassHMAC
)

// AlgorithmInfo is one registry entry: the wire identifier, its key class,
// and (for EC algorithms) the required curve's bit size.
type AlgorithmInfo struct {
	ID           Algorithm
	KeyClass     KeyClass
	CurveBitSize int
}

var registry = map[Algorithm]AlgorithmInfo{
	RSAPSSSHA512:    {ID: RSAPSSSHA512, KeyClass: KeyClassRSAPSS},
	RSAV15SHA256:    {ID: RSAV15SHA256, KeyClass: KeyClassRSA},
	HMACSHA256:      {ID: HMACSHA256, KeyClass: KeyClassHMAC},
	ECDSAP256SHA256: {ID: ECDSAP256SHA256, KeyClass: KeyClassEC, CurveBitSize: 256},
	ECDSAP384SHA384: {ID: ECDSAP384SHA384, KeyClass: KeyClassEC, CurveBitSize: 384},
	Ed25519:         {ID: Ed25519, KeyClass: KeyClassEd25519},
}

// Lookup returns the registry entry for id.
func Lookup(id Algorithm) (AlgorithmInfo, bool) {
	info, ok := registry[id]
	return info, ok
}

// IsSupported reports whether id is a member of the closed registry.
func IsSupported(id Algorithm) bool {
	_, ok := registry[id]
	return ok
}

// Supported returns every registered algorithm identifier, in no
// particular order.
func Supported() []Algorithm {
	out := make([]Algorithm, 0, len(registry))
	for id := range registry {
		out = append(out, id)
	}
	return out
}

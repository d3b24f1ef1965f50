package httpsig

import (
	"strings"

	"github.com/go-httpsig/httpsig/sfv"
)

// buildInnerList constructs the covered-components inner list
// `("comp1" "comp2";flag=...)` with the signature parameters attached as
// its own parameters (spec.md §4.1), omitting alg unless visibleAlg.
func buildInnerList(components []Component, params *SignatureParams, visibleAlg bool) sfv.InnerList {
	items := make([]sfv.Item, len(components))
	for i, c := range components {
		items[i] = c.descriptorItem()
	}
	var p *sfv.Params
	if visibleAlg {
		p = params.p.Clone()
	} else {
		p = params.withoutAlg()
	}
	return sfv.InnerList{Items: items, Params: p}
}

// buildSignatureBase constructs the exact byte sequence to be signed
// (spec.md §4.3): one "<canonical-name>: <value>\n" line per covered
// component, in order, followed by the final `"@signature-params": <inner
// list>` line with no trailing newline.
func buildSignatureBase(components []Component, ctx *MessageSnapshot, innerList sfv.InnerList) (string, error) {
	var sb strings.Builder
	for _, c := range components {
		val, err := resolveComponent(c, ctx)
		if err != nil {
			return "", err
		}
		sb.WriteString(c.CanonicalName())
		sb.WriteString(": ")
		sb.WriteString(val)
		sb.WriteByte('\n')
	}
	sb.WriteString(`"@signature-params"`)
	sb.WriteString(": ")
	sb.WriteString(sfv.SerializeMember(innerList))
	return sb.String(), nil
}

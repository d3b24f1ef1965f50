package httpsig

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-httpsig/httpsig/sfv"
)

// resolveComponent produces the component's value string as it appears on
// the signature-base line (spec.md §4.2). `req`-flagged components resolve
// against ctx.RelatedRequest instead of ctx itself.
func resolveComponent(c Component, ctx *MessageSnapshot) (string, error) {
	target := ctx
	if c.req {
		if ctx.RelatedRequest == nil {
			return "", newSigError(MissingRelatedRequest, "component %s requires a related request", c.CanonicalName())
		}
		target = ctx.RelatedRequest
	}
	if c.kind == ComponentDerived {
		return resolveDerived(c, target)
	}
	return resolveField(c, target)
}

// isValuePresent reports whether a component resolves without error,
// without surfacing that error. Used to filter used-if-present components
// during signing and to check required-if-present components during
// verification.
func isValuePresent(c Component, ctx *MessageSnapshot) bool {
	_, err := resolveComponent(c, ctx)
	return err == nil
}

func resolveDerived(c Component, ctx *MessageSnapshot) (string, error) {
	switch c.name {
	case Method:
		if ctx.Method == "" {
			return "", newSigError(MissingComponent, "@method: no method in context")
		}
		return strings.ToUpper(ctx.Method), nil
	case TargetURI:
		if ctx.TargetURI == nil {
			return "", newSigError(MissingComponent, "@target-uri: no target URI in context")
		}
		return ctx.TargetURI.String(), nil
	case Authority:
		if ctx.TargetURI == nil {
			return "", newSigError(MissingComponent, "@authority: no target URI in context")
		}
		return strings.ToLower(ctx.TargetURI.Host), nil
	case Scheme:
		if ctx.TargetURI == nil {
			return "", newSigError(MissingComponent, "@scheme: no target URI in context")
		}
		return strings.ToLower(ctx.TargetURI.Scheme), nil
	case RequestTarget:
		if ctx.TargetURI == nil {
			return "", newSigError(MissingComponent, "@request-target: no target URI in context")
		}
		path := ctx.TargetURI.EscapedPath()
		if path == "" {
			path = "/"
		}
		if ctx.TargetURI.RawQuery != "" {
			return path + "?" + ctx.TargetURI.RawQuery, nil
		}
		return path, nil
	case Path:
		if ctx.TargetURI == nil {
			return "/", nil
		}
		path := ctx.TargetURI.EscapedPath()
		if path == "" {
			path = "/"
		}
		return path, nil
	case Query:
		if ctx.TargetURI == nil || ctx.TargetURI.RawQuery == "" {
			return "?", nil
		}
		return "?" + ctx.TargetURI.RawQuery, nil
	case QueryParam:
		return resolveQueryParam(c, ctx)
	case Status:
		if ctx.Status == nil {
			return "", newSigError(MissingComponent, "@status: no status in context")
		}
		return strconv.Itoa(*ctx.Status), nil
	case SignatureParams:
		return "", newSigError(Generic, "@signature-params is emitted only as the final base line")
	default:
		return "", newSigError(Generic, "unknown derived component %q", c.name)
	}
}

func resolveQueryParam(c Component, ctx *MessageSnapshot) (string, error) {
	if !c.hasQueryParam {
		return "", newSigError(Generic, "@query-param requires a name")
	}
	if ctx.TargetURI == nil || ctx.TargetURI.RawQuery == "" {
		return "", newSigError(MissingQueryParam, "no query string for @query-param;name=%q", c.queryParamName)
	}
	wantKey := canonicalPercentEncode(c.queryParamName)
	for _, pair := range strings.Split(ctx.TargetURI.RawQuery, "&") {
		var rawKey, rawVal string
		if idx := strings.IndexByte(pair, '='); idx >= 0 {
			rawKey, rawVal = pair[:idx], pair[idx+1:]
		} else {
			rawKey = pair
		}
		decodedKey, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		if canonicalPercentEncode(decodedKey) != wantKey {
			continue
		}
		decodedVal, err := url.QueryUnescape(rawVal)
		if err != nil {
			return "", newSigError(MissingQueryParam, "query param %q value is not valid percent-encoding", c.queryParamName)
		}
		return canonicalPercentEncode(decodedVal), nil
	}
	return "", newSigError(MissingQueryParam, "query param %q not present", c.queryParamName)
}

// canonicalPercentEncode re-encodes s using the RFC 3986 unreserved set
// only, always as %XX (never `+` for space), matching the canonical
// encoder spec.md §4.2 requires for @query-param values.
func canonicalPercentEncode(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if isUnreservedByte(b) {
			sb.WriteByte(b)
		} else {
			fmt.Fprintf(&sb, "%%%02X", b)
		}
	}
	return sb.String()
}

func isUnreservedByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') ||
		b == '-' || b == '.' || b == '_' || b == '~'
}

func resolveField(c Component, ctx *MessageSnapshot) (string, error) {
	m, kind := ctx.Headers, "header"
	if c.tr {
		m, kind = ctx.Trailers, "trailer"
	}
	values, ok := m[c.name]
	if !ok || len(values) == 0 {
		return "", newSigError(MissingHeader, "missing %s %q", kind, c.name)
	}

	if c.bs {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = sfv.SerializeItem(sfv.NewItem(sfv.BinaryItem([]byte(v))))
		}
		return strings.Join(parts, ", "), nil
	}

	joined := joinNonEmpty(values)

	if c.sf {
		any, err := sfv.ParseAny(joined)
		if err != nil {
			return "", newSigError(InvalidStructuredHeader, "field %q is not a valid structured field: %v", c.name, err)
		}
		return serializeStructuredAny(any), nil
	}

	if c.hasKey != "" {
		dict, err := sfv.ParseDictionary(joined)
		if err != nil {
			return "", newSigError(InvalidStructuredHeader, "field %q is not a valid structured dictionary: %v", c.name, err)
		}
		member, ok := dict.Get(c.key)
		if !ok {
			return "", newSigError(MissingDictionaryKey, "dictionary field %q has no member %q", c.name, c.key)
		}
		return sfv.SerializeMember(member), nil
	}

	return joined, nil
}

func joinNonEmpty(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, ", ")
}

func serializeStructuredAny(v interface{}) string {
	switch val := v.(type) {
	case sfv.List:
		return sfv.SerializeList(val)
	case *sfv.Dictionary:
		return sfv.SerializeDictionary(val)
	case sfv.Item:
		return sfv.SerializeItem(val)
	default:
		return ""
	}
}

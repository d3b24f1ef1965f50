package httpsig

import (
	"strings"

	"github.com/go-httpsig/httpsig/sfv"
)

// ComponentKind distinguishes a derived component (a value computed from
// the message, not a field) from a header/trailer field component
// (spec.md §9: "model as a tagged variant, not an inheritance hierarchy").
type ComponentKind int

const (
	ComponentDerived ComponentKind = iota
	ComponentField
)

// Derived component identifiers (spec.md §4.1).
const (
	Method          = "@method"
	TargetURI       = "@target-uri"
	Authority       = "@authority"
	Scheme          = "@scheme"
	RequestTarget   = "@request-target"
	Path            = "@path"
	Query           = "@query"
	QueryParam      = "@query-param"
	Status          = "@status"
	SignatureParams = "@signature-params"
)

// Component is a named, parameterized reference to part of an HTTP message,
// as it appears inside a covered-components inner list (spec.md §4.1/§4.2).
// Construct one with NewDerivedComponent or NewFieldComponent; the zero
// value is not valid.
type Component struct {
	kind ComponentKind
	name string // lowercased field name, or a "@..." derived identifier

	req bool
	sf  bool
	bs  bool
	tr  bool

	hasKey string
	key    string

	hasQueryParam  bool
	queryParamName string
}

// Option configures a Component at construction time. Invalid combinations
// (sf with key, a name parameter on anything but @query-param) are rejected
// immediately rather than producing an unparseable descriptor later
// (spec.md §7: local validation errors are reported at construction time).
type Option func(*Component) error

// WithReq marks the component as resolved against the related request
// (the `req` flag; only meaningful on a response message).
func WithReq() Option {
	return func(c *Component) error { c.req = true; return nil }
}

// WithStructuredField requests structured-field re-serialization (`sf`).
// Mutually exclusive with WithDictKey.
func WithStructuredField() Option {
	return func(c *Component) error {
		if c.hasKey != "" {
			return newSigError(Generic, "sf and key are mutually exclusive")
		}
		c.sf = true
		return nil
	}
}

// WithDictKey requests dictionary-member extraction (`key="K"`). Mutually
// exclusive with WithStructuredField.
func WithDictKey(key string) Option {
	return func(c *Component) error {
		if c.sf {
			return newSigError(Generic, "sf and key are mutually exclusive")
		}
		if err := sfv.ValidateKey(key); err != nil {
			return newSigError(Generic, "invalid dictionary key %q: %v", key, err)
		}
		c.hasKey = "set"
		c.key = key
		return nil
	}
}

// WithBinaryWrap requests binary-wrapped serialization (`bs`).
func WithBinaryWrap() Option {
	return func(c *Component) error { c.bs = true; return nil }
}

// WithTrailer selects the trailer map instead of the header map (`tr`).
func WithTrailer() Option {
	return func(c *Component) error { c.tr = true; return nil }
}

// WithQueryParamName names the target of an @query-param component. Only
// valid with NewDerivedComponent(QueryParam, ...).
func WithQueryParamName(name string) Option {
	return func(c *Component) error {
		if name == "" {
			return newSigError(MissingQueryParam, "@query-param requires a non-empty name")
		}
		c.hasQueryParam = true
		c.queryParamName = name
		return nil
	}
}

// NewDerivedComponent builds a derived component descriptor. Every derived
// identifier accepts only req, except @query-param, which instead requires
// WithQueryParamName.
func NewDerivedComponent(id string, opts ...Option) (Component, error) {
	c := Component{kind: ComponentDerived, name: id}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return Component{}, err
		}
	}
	if c.sf || c.bs || c.tr || c.hasKey != "" {
		return Component{}, newSigError(Generic, "derived component %q accepts only req", id)
	}
	if id == QueryParam {
		if !c.hasQueryParam {
			return Component{}, newSigError(MissingQueryParam, "@query-param requires a name")
		}
	} else if c.hasQueryParam {
		return Component{}, newSigError(Generic, "only @query-param accepts a name parameter")
	}
	return c, nil
}

// NewFieldComponent builds a header/trailer field component descriptor.
// name is lowercased on construction (spec.md §4.1: field names are
// case-insensitive). Accepts {key, sf, req, bs, tr}.
func NewFieldComponent(name string, opts ...Option) (Component, error) {
	if name == "" {
		return Component{}, newSigError(Generic, "field component name must not be empty")
	}
	c := Component{kind: ComponentField, name: strings.ToLower(name)}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return Component{}, err
		}
	}
	if c.hasQueryParam {
		return Component{}, newSigError(Generic, "only @query-param accepts a name parameter")
	}
	return c, nil
}

// Kind reports whether this is a derived or field component.
func (c Component) Kind() ComponentKind { return c.kind }

// Name reports the lowercased field name or the "@..." derived identifier.
func (c Component) Name() string { return c.name }

// descriptorItem renders the component as the sfv.Item it appears as inside
// a covered-components inner list: a String bare value (the component
// name) plus its flags as ordered parameters (spec.md §4.1).
func (c Component) descriptorItem() sfv.Item {
	params := sfv.NewParams()
	if c.hasKey != "" {
		params.Set("key", sfv.StringItem(c.key))
	}
	if c.sf {
		params.Set("sf", sfv.BooleanItem(true))
	}
	if c.bs {
		params.Set("bs", sfv.BooleanItem(true))
	}
	if c.tr {
		params.Set("tr", sfv.BooleanItem(true))
	}
	if c.hasQueryParam {
		params.Set("name", sfv.StringItem(c.queryParamName))
	}
	if c.req {
		params.Set("req", sfv.BooleanItem(true))
	}
	return sfv.Item{Value: sfv.StringItem(c.name), Params: params}
}

// CanonicalName returns the canonical structured-field serialization of the
// component descriptor, e.g. `"@method";req` or `"example-dict";key="a"`.
func (c Component) CanonicalName() string {
	return sfv.SerializeItem(c.descriptorItem())
}

// Equal reports whether two components serialize identically.
func (c Component) Equal(o Component) bool {
	return c.CanonicalName() == o.CanonicalName()
}

// componentFromItem reconstructs a Component from a parsed covered-components
// inner-list item, as verification must (spec.md §4.5 step: "components are
// taken from the received inner list, not re-derived from caller
// expectations").
func componentFromItem(it sfv.Item) (Component, error) {
	name, ok := it.Value.AsString()
	if !ok {
		return Component{}, newSigError(InvalidStructuredHeader, "component name must be a String")
	}
	c := Component{name: name, kind: ComponentField}
	if strings.HasPrefix(name, "@") {
		c.kind = ComponentDerived
	}
	for _, k := range it.Params.Keys() {
		v, _ := it.Params.Get(k)
		switch k {
		case "req":
			b, _ := v.AsBoolean()
			c.req = b
		case "sf":
			b, _ := v.AsBoolean()
			c.sf = b
		case "bs":
			b, _ := v.AsBoolean()
			c.bs = b
		case "tr":
			b, _ := v.AsBoolean()
			c.tr = b
		case "key":
			s, _ := v.AsString()
			c.hasKey = "set"
			c.key = s
		case "name":
			s, _ := v.AsString()
			c.hasQueryParam = true
			c.queryParamName = s
		default:
			return Component{}, newSigError(InvalidStructuredHeader, "unknown component parameter %q", k)
		}
	}
	return c, nil
}

package sfv

// Kind tags the variant held by a BareItem.
type Kind int

const (
	KindInteger Kind = iota
	KindDecimal
	KindString
	KindToken
	KindBinary
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindDecimal:
		return "Decimal"
	case KindString:
		return "String"
	case KindToken:
		return "Token"
	case KindBinary:
		return "Binary"
	case KindBoolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// Token is a bare, unquoted identifier value (spec.md §3).
type Token string

// BareItem is the tagged-variant value of a structured item without its
// parameters (spec.md §9: "modeled as a tagged variant ... with a
// parameter-map field shared on all arms"). Only one of the typed fields is
// meaningful, selected by Kind.
type BareItem struct {
	kind  Kind
	i     int64
	d     Decimal
	s     string
	tok   Token
	bytes []byte
	b     bool
}

func IntegerItem(v int64) BareItem { return BareItem{kind: KindInteger, i: v} }
func DecimalItem(v Decimal) BareItem { return BareItem{kind: KindDecimal, d: v} }
func StringItem(v string) BareItem { return BareItem{kind: KindString, s: v} }
func TokenItem(v Token) BareItem { return BareItem{kind: KindToken, tok: v} }
func BinaryItem(v []byte) BareItem {
	cp := make([]byte, len(v))
	copy(cp, v)
	return BareItem{kind: KindBinary, bytes: cp}
}
func BooleanItem(v bool) BareItem { return BareItem{kind: KindBoolean, b: v} }

// Kind reports the value's variant tag.
func (v BareItem) Kind() Kind { return v.kind }

// AsInteger returns the Integer value and whether the kind matches.
func (v BareItem) AsInteger() (int64, bool) { return v.i, v.kind == KindInteger }

// AsDecimal returns the Decimal value and whether the kind matches.
func (v BareItem) AsDecimal() (Decimal, bool) { return v.d, v.kind == KindDecimal }

// AsString returns the String value and whether the kind matches.
func (v BareItem) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsToken returns the Token value and whether the kind matches.
func (v BareItem) AsToken() (Token, bool) { return v.tok, v.kind == KindToken }

// AsBinary returns a copy of the Byte Sequence value and whether the kind
// matches, so mutating the result can't corrupt the Item's stored value.
func (v BareItem) AsBinary() ([]byte, bool) {
	if v.kind != KindBinary {
		return nil, false
	}
	cp := make([]byte, len(v.bytes))
	copy(cp, v.bytes)
	return cp, true
}

// AsBoolean returns the Boolean value and whether the kind matches.
func (v BareItem) AsBoolean() (bool, bool) { return v.b, v.kind == KindBoolean }

// Equal reports structural equality between two bare items.
func (v BareItem) Equal(o BareItem) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.i == o.i
	case KindDecimal:
		return v.d.Equal(o.d)
	case KindString:
		return v.s == o.s
	case KindToken:
		return v.tok == o.tok
	case KindBinary:
		if len(v.bytes) != len(o.bytes) {
			return false
		}
		for i := range v.bytes {
			if v.bytes[i] != o.bytes[i] {
				return false
			}
		}
		return true
	case KindBoolean:
		return v.b == o.b
	}
	return false
}

// Item is a bare item together with its ordered parameters. Item implements
// Member so it can appear directly in a List or as a Dictionary value.
type Item struct {
	Value  BareItem
	Params *Params
}

// NewItem builds an Item with no parameters.
func NewItem(v BareItem) Item { return Item{Value: v, Params: NewParams()} }

// WithParams returns a new Item sharing the same bare value but carrying the
// given parameters (spec.md §3 lifecycle: "withParams returns a new value
// sharing the underlying bare value").
func (it Item) WithParams(p *Params) Item {
	return Item{Value: it.Value, Params: p}
}

func (Item) isMember() {}

// Equal reports structural equality, including parameter order.
func (it Item) Equal(o Item) bool {
	return it.Value.Equal(o.Value) && it.Params.Equal(o.Params)
}

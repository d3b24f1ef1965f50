package sfv

import (
	"encoding/base64"
	"strconv"
)

// cursor is a single-pass cursor over the input bytes with one-byte
// lookahead (spec.md §4.1: "a single-pass cursor over characters with one-
// character lookahead and an EOF sentinel").
type cursor struct {
	s   string
	pos int
}

func (c *cursor) hasNext() bool { return c.pos < len(c.s) }
func (c *cursor) peek() byte    { return c.s[c.pos] }
func (c *cursor) advance()      { c.pos++ }

func skipOWS(c *cursor) {
	for c.hasNext() && isOWS(c.peek()) {
		c.advance()
	}
}

func skipSP(c *cursor) {
	for c.hasNext() && isSP(c.peek()) {
		c.advance()
	}
}

// trimInput strips leading/trailing SP (not HTAB, per spec.md §4.1) and
// rejects an empty result.
func trimInput(s string) (string, error) {
	start := 0
	for start < len(s) && s[start] == ' ' {
		start++
	}
	end := len(s)
	for end > start && s[end-1] == ' ' {
		end--
	}
	if start == end {
		return "", newError(EmptyInput, 0, "empty input")
	}
	return s[start:end], nil
}

// ParseItem parses a single Item: a bare item followed by its parameters.
func ParseItem(s string) (Item, error) {
	trimmed, err := trimInput(s)
	if err != nil {
		return Item{}, err
	}
	cur := &cursor{s: trimmed}
	it, err := parseItemBody(cur)
	if err != nil {
		return Item{}, err
	}
	if cur.hasNext() {
		return Item{}, newError(UnexpectedCharacter, cur.pos, "unexpected trailing data")
	}
	return it, nil
}

// ParseItemExpecting parses a single Item and requires its bare value to be
// of the given Kind, returning WrongItemClass otherwise.
func ParseItemExpecting(s string, kind Kind) (Item, error) {
	it, err := ParseItem(s)
	if err != nil {
		return Item{}, err
	}
	if it.Value.Kind() != kind {
		return Item{}, newError(WrongItemClass, 0, "expected %s, got %s", kind, it.Value.Kind())
	}
	return it, nil
}

// ParseList parses a top-level List.
func ParseList(s string) (List, error) {
	trimmed, err := trimInput(s)
	if err != nil {
		return nil, err
	}
	cur := &cursor{s: trimmed}
	list, err := parseListBody(cur)
	if err != nil {
		return nil, err
	}
	if cur.hasNext() {
		return nil, newError(UnexpectedCharacter, cur.pos, "unexpected trailing data")
	}
	return list, nil
}

// ParseDictionary parses a top-level Dictionary.
func ParseDictionary(s string) (*Dictionary, error) {
	trimmed, err := trimInput(s)
	if err != nil {
		return nil, err
	}
	cur := &cursor{s: trimmed}
	dict, err := parseDictionaryBody(cur)
	if err != nil {
		return nil, err
	}
	if cur.hasNext() {
		return nil, newError(UnexpectedCharacter, cur.pos, "unexpected trailing data")
	}
	return dict, nil
}

// ParseAny attempts, in order, List, then Dictionary, then a bare Item
// (spec.md §4.1 / §9 Open Questions: the parser commits to List over
// Dictionary when both are valid parses of the same input). A List of exactly
// one Item, i.e. input with no top-level comma, is returned as that Item.
func ParseAny(s string) (interface{}, error) {
	trimmed, err := trimInput(s)
	if err != nil {
		return nil, err
	}
	if list, ok := tryParseList(trimmed); ok {
		if len(list) == 1 {
			if it, isItem := list[0].(Item); isItem {
				return it, nil
			}
		}
		return list, nil
	}
	if dict, ok := tryParseDictionary(trimmed); ok {
		return dict, nil
	}
	cur := &cursor{s: trimmed}
	it, err := parseItemBody(cur)
	if err != nil {
		return nil, err
	}
	if cur.hasNext() {
		return nil, newError(UnexpectedCharacter, cur.pos, "unexpected trailing data")
	}
	return it, nil
}

func tryParseList(s string) (List, bool) {
	cur := &cursor{s: s}
	list, err := parseListBody(cur)
	if err != nil || cur.hasNext() {
		return nil, false
	}
	return list, true
}

func tryParseDictionary(s string) (*Dictionary, bool) {
	cur := &cursor{s: s}
	dict, err := parseDictionaryBody(cur)
	if err != nil || cur.hasNext() {
		return nil, false
	}
	return dict, true
}

func parseItemBody(cur *cursor) (Item, error) {
	bi, err := parseBareItem(cur)
	if err != nil {
		return Item{}, err
	}
	p, err := parseParameters(cur)
	if err != nil {
		return Item{}, err
	}
	return Item{Value: bi, Params: p}, nil
}

func parseListBody(cur *cursor) (List, error) {
	list := List{}
	for cur.hasNext() {
		m, err := parseMember(cur)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
		skipOWS(cur)
		if !cur.hasNext() {
			return list, nil
		}
		if cur.peek() != ',' {
			return nil, newError(UnexpectedCharacter, cur.pos, "expected comma")
		}
		cur.advance()
		skipOWS(cur)
		if !cur.hasNext() {
			return nil, newError(UnexpectedCharacter, cur.pos, "trailing comma")
		}
	}
	return list, nil
}

func parseDictionaryBody(cur *cursor) (*Dictionary, error) {
	dict := NewDictionary()
	for cur.hasNext() {
		key, err := parseKey(cur)
		if err != nil {
			return nil, err
		}
		var member Member
		if cur.hasNext() && cur.peek() == '=' {
			cur.advance()
			m, err := parseMember(cur)
			if err != nil {
				return nil, err
			}
			member = m
		} else {
			p, err := parseParameters(cur)
			if err != nil {
				return nil, err
			}
			member = Item{Value: BooleanItem(true), Params: p}
		}
		dict.Set(key, member)
		skipOWS(cur)
		if !cur.hasNext() {
			return dict, nil
		}
		if cur.peek() != ',' {
			return nil, newError(UnexpectedCharacter, cur.pos, "expected comma")
		}
		cur.advance()
		skipOWS(cur)
		if !cur.hasNext() {
			return nil, newError(UnexpectedCharacter, cur.pos, "trailing comma")
		}
	}
	return dict, nil
}

func parseMember(cur *cursor) (Member, error) {
	if cur.hasNext() && cur.peek() == '(' {
		return parseInnerList(cur)
	}
	return parseItemBody(cur)
}

func parseInnerList(cur *cursor) (InnerList, error) {
	cur.advance() // consume '('
	var items []Item
	for {
		skipSP(cur)
		if !cur.hasNext() {
			return InnerList{}, newError(MissingCharacter, cur.pos, "missing closing paren")
		}
		if cur.peek() == ')' {
			cur.advance()
			break
		}
		bi, err := parseBareItem(cur)
		if err != nil {
			return InnerList{}, err
		}
		p, err := parseParameters(cur)
		if err != nil {
			return InnerList{}, err
		}
		items = append(items, Item{Value: bi, Params: p})
		if cur.hasNext() && cur.peek() != ' ' && cur.peek() != ')' {
			return InnerList{}, newError(UnexpectedCharacter, cur.pos, "expected space or closing paren")
		}
	}
	params, err := parseParameters(cur)
	if err != nil {
		return InnerList{}, err
	}
	return InnerList{Items: items, Params: params}, nil
}

func parseKey(cur *cursor) (string, error) {
	if !cur.hasNext() || !isKeyStart(cur.peek()) {
		return "", newError(UnexpectedCharacter, cur.pos, "expected key")
	}
	start := cur.pos
	cur.advance()
	for cur.hasNext() && isKeyChar(cur.peek()) {
		cur.advance()
	}
	return cur.s[start:cur.pos], nil
}

func parseParameters(cur *cursor) (*Params, error) {
	params := NewParams()
	for cur.hasNext() && cur.peek() == ';' {
		cur.advance()
		skipSP(cur)
		key, err := parseKey(cur)
		if err != nil {
			return nil, err
		}
		val := BooleanItem(true)
		if cur.hasNext() && cur.peek() == '=' {
			cur.advance()
			v, err := parseBareItem(cur)
			if err != nil {
				return nil, err
			}
			val = v
		}
		params.Set(key, val)
	}
	return params, nil
}

func parseBareItem(cur *cursor) (BareItem, error) {
	if !cur.hasNext() {
		return BareItem{}, newError(UnexpectedCharacter, cur.pos, "expected a value")
	}
	b := cur.peek()
	switch {
	case b == '-' || isDigit(b):
		return parseBareNumber(cur)
	case b == '"':
		return parseBareString(cur)
	case b == ':':
		return parseBareByteSeq(cur)
	case b == '?':
		return parseBareBoolean(cur)
	case isTokenStart(b):
		return parseBareToken(cur)
	default:
		return BareItem{}, newError(UnexpectedCharacter, cur.pos, "unexpected character %q", b)
	}
}

func parseBareNumber(cur *cursor) (BareItem, error) {
	start := cur.pos
	if cur.peek() == '-' {
		cur.advance()
	}
	if !cur.hasNext() || !isDigit(cur.peek()) {
		return BareItem{}, newError(UnexpectedCharacter, cur.pos, "expected digit")
	}
	digits := 0
	for cur.hasNext() && isDigit(cur.peek()) {
		cur.advance()
		digits++
		if digits > maxIntegerDigits {
			return BareItem{}, newError(WrongNumber, start, "integer part exceeds %d digits", maxIntegerDigits)
		}
	}
	isDecimal := false
	fracDigits := 0
	if cur.hasNext() && cur.peek() == '.' {
		isDecimal = true
		cur.advance()
		if !cur.hasNext() || !isDigit(cur.peek()) {
			return BareItem{}, newError(WrongNumber, cur.pos, "decimal point requires a fractional digit")
		}
		for cur.hasNext() && isDigit(cur.peek()) {
			cur.advance()
			fracDigits++
			if fracDigits > 3 {
				return BareItem{}, newError(WrongNumber, cur.pos, "fractional part exceeds 3 digits")
			}
		}
	}
	numStr := cur.s[start:cur.pos]
	if isDecimal {
		if digits > maxDecimalIntegerDigits {
			return BareItem{}, newError(WrongNumber, start, "decimal integer part exceeds %d digits", maxDecimalIntegerDigits)
		}
		d, err := DecimalFromString(numStr)
		if err != nil {
			return BareItem{}, err
		}
		return DecimalItem(d), nil
	}
	iv, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return BareItem{}, newError(WrongNumber, start, "integer magnitude out of range")
	}
	return IntegerItem(iv), nil
}

func parseBareString(cur *cursor) (BareItem, error) {
	cur.advance() // consume opening quote
	buf := make([]byte, 0, 16)
	for {
		if !cur.hasNext() {
			return BareItem{}, newError(MissingCharacter, cur.pos, "missing closing quote")
		}
		b := cur.peek()
		if b == '"' {
			cur.advance()
			return StringItem(string(buf)), nil
		}
		if b == '\\' {
			cur.advance()
			if !cur.hasNext() {
				return BareItem{}, newError(MissingCharacter, cur.pos, "dangling escape")
			}
			e := cur.peek()
			if e != '"' && e != '\\' {
				return BareItem{}, newError(UnexpectedCharacter, cur.pos, "invalid escape %q", e)
			}
			buf = append(buf, e)
			cur.advance()
			continue
		}
		if !isStringChar(b) {
			return BareItem{}, newError(UnexpectedCharacter, cur.pos, "non-printable character in string")
		}
		buf = append(buf, b)
		cur.advance()
	}
}

func parseBareToken(cur *cursor) (BareItem, error) {
	start := cur.pos
	cur.advance()
	for cur.hasNext() && isTokenChar(cur.peek()) {
		cur.advance()
	}
	return TokenItem(Token(cur.s[start:cur.pos])), nil
}

func parseBareByteSeq(cur *cursor) (BareItem, error) {
	cur.advance() // consume ':'
	start := cur.pos
	for cur.hasNext() && cur.peek() != ':' {
		if !isBase64Char(cur.peek()) {
			return BareItem{}, newError(InvalidBytes, cur.pos, "non-base64 character in byte sequence")
		}
		cur.advance()
	}
	if !cur.hasNext() {
		return BareItem{}, newError(MissingCharacter, cur.pos, "missing closing colon")
	}
	b64 := cur.s[start:cur.pos]
	cur.advance() // consume closing ':'
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return BareItem{}, newError(InvalidBytes, start, "invalid base64: %v", err)
	}
	return BinaryItem(data), nil
}

func parseBareBoolean(cur *cursor) (BareItem, error) {
	cur.advance() // consume '?'
	if !cur.hasNext() {
		return BareItem{}, newError(UnexpectedCharacter, cur.pos, "missing boolean value")
	}
	b := cur.peek()
	if b != '0' && b != '1' {
		return BareItem{}, newError(UnexpectedCharacter, cur.pos, "invalid boolean value %q", b)
	}
	cur.advance()
	return BooleanItem(b == '1'), nil
}

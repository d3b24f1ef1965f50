package sfv

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// SerializeItem renders it in canonical form.
func SerializeItem(it Item) string {
	var sb strings.Builder
	writeItem(&sb, it)
	return sb.String()
}

// SerializeList renders l in canonical form.
func SerializeList(l List) string {
	var sb strings.Builder
	for i, m := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeMember(&sb, m)
	}
	return sb.String()
}

// SerializeDictionary renders d in canonical form.
func SerializeDictionary(d *Dictionary) string {
	var sb strings.Builder
	for i, k := range d.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		m, _ := d.Get(k)
		if it, ok := m.(Item); ok {
			if b, isBool := it.Value.AsBoolean(); isBool && b {
				writeParams(&sb, it.Params)
				continue
			}
		}
		sb.WriteByte('=')
		writeMember(&sb, m)
	}
	return sb.String()
}

// SerializeBareItem renders a single bare item (no parameters) in canonical
// form; used for parameter values and for component-name serialization.
func SerializeBareItem(v BareItem) string {
	var sb strings.Builder
	writeBareItem(&sb, v)
	return sb.String()
}

// SerializeMember renders a single List/Dictionary member (Item or
// InnerList) in canonical form, with its own parameters.
func SerializeMember(m Member) string {
	var sb strings.Builder
	writeMember(&sb, m)
	return sb.String()
}

func writeMember(sb *strings.Builder, m Member) {
	switch v := m.(type) {
	case Item:
		writeItem(sb, v)
	case InnerList:
		writeInnerList(sb, v)
	}
}

func writeItem(sb *strings.Builder, it Item) {
	writeBareItem(sb, it.Value)
	writeParams(sb, it.Params)
}

func writeInnerList(sb *strings.Builder, l InnerList) {
	sb.WriteByte('(')
	for i, it := range l.Items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeItem(sb, it)
	}
	sb.WriteByte(')')
	writeParams(sb, l.Params)
}

func writeParams(sb *strings.Builder, p *Params) {
	for _, k := range p.Keys() {
		sb.WriteByte(';')
		sb.WriteString(k)
		v, _ := p.Get(k)
		if b, ok := v.AsBoolean(); ok && b {
			continue
		}
		sb.WriteByte('=')
		writeBareItem(sb, v)
	}
}

func writeBareItem(sb *strings.Builder, v BareItem) {
	switch v.Kind() {
	case KindInteger:
		i, _ := v.AsInteger()
		sb.WriteString(strconv.FormatInt(i, 10))
	case KindDecimal:
		d, _ := v.AsDecimal()
		sb.WriteString(d.String())
	case KindString:
		s, _ := v.AsString()
		sb.WriteByte('"')
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c == '"' || c == '\\' {
				sb.WriteByte('\\')
			}
			sb.WriteByte(c)
		}
		sb.WriteByte('"')
	case KindToken:
		t, _ := v.AsToken()
		sb.WriteString(string(t))
	case KindBinary:
		b, _ := v.AsBinary()
		sb.WriteByte(':')
		sb.WriteString(base64.StdEncoding.EncodeToString(b))
		sb.WriteByte(':')
	case KindBoolean:
		b, _ := v.AsBoolean()
		if b {
			sb.WriteString("?1")
		} else {
			sb.WriteString("?0")
		}
	}
}

package sfv

// Member is implemented by Item and InnerList: the two shapes that can
// appear as a List element or a Dictionary value (spec.md §3).
type Member interface {
	isMember()
}

// InnerList is an ordered sequence of Items carrying its own parameters,
// distinct from the parameters on any individual member item.
type InnerList struct {
	Items  []Item
	Params *Params
}

// NewInnerList builds an InnerList with no parameters.
func NewInnerList(items ...Item) InnerList {
	return InnerList{Items: items, Params: NewParams()}
}

// WithParams returns a new InnerList sharing the same items but carrying
// the given parameters.
func (l InnerList) WithParams(p *Params) InnerList {
	return InnerList{Items: l.Items, Params: p}
}

func (InnerList) isMember() {}

// Equal reports structural equality between two inner lists, including
// member and parameter order.
func (l InnerList) Equal(o InnerList) bool {
	if len(l.Items) != len(o.Items) {
		return false
	}
	for i := range l.Items {
		if !l.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return l.Params.Equal(o.Params)
}

// List is the top-level ordered-sequence container.
type List []Member

// Equal reports structural equality between two lists.
func (l List) Equal(o List) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !membersEqual(l[i], o[i]) {
			return false
		}
	}
	return true
}

func membersEqual(a, b Member) bool {
	switch av := a.(type) {
	case Item:
		bv, ok := b.(Item)
		return ok && av.Equal(bv)
	case InnerList:
		bv, ok := b.(InnerList)
		return ok && av.Equal(bv)
	}
	return false
}

// Dictionary is the top-level ordered key->Member mapping. Duplicate keys
// seen while parsing overwrite ("last wins", spec.md §9 Open Questions),
// but the original insertion position is kept, matching the container's
// general insertion-order-preserved-on-overwrite behavior.
type Dictionary struct {
	keys   []string
	values map[string]Member
}

// NewDictionary returns an empty, ready-to-use Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{values: map[string]Member{}}
}

// Set inserts or overwrites key with m.
func (d *Dictionary) Set(key string, m Member) *Dictionary {
	if d.values == nil {
		d.values = map[string]Member{}
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = m
	return d
}

// Get returns the member for key and whether it was present.
func (d *Dictionary) Get(key string) (Member, bool) {
	if d == nil || d.values == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the dictionary's keys in insertion order.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	return d.keys
}

// Len reports the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Equal reports structural equality, including key order.
func (d *Dictionary) Equal(o *Dictionary) bool {
	if d.Len() != o.Len() {
		return false
	}
	for i, k := range d.Keys() {
		ok := o.Keys()[i]
		if k != ok {
			return false
		}
		v1, _ := d.Get(k)
		v2, _ := o.Get(ok)
		if !membersEqual(v1, v2) {
			return false
		}
	}
	return true
}

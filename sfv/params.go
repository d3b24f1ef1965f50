package sfv

// Params is an ordered mapping from parameter key to bare-item value. Order
// is load-bearing (spec.md §9 "never materialize parameters in a
// hash-ordered container"), so Params tracks insertion order explicitly
// rather than relying on Go map iteration.
type Params struct {
	keys   []string
	values map[string]BareItem
}

// NewParams returns an empty, ready-to-use Params.
func NewParams() *Params {
	return &Params{values: map[string]BareItem{}}
}

// Set inserts or overwrites key with value, preserving the original
// position on overwrite (matches dictionary "last wins" semantics while
// keeping first-seen ordering for re-assignment within a single builder
// call, which callers rely on when amending a component's flags).
func (p *Params) Set(key string, value BareItem) *Params {
	if p.values == nil {
		p.values = map[string]BareItem{}
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value for key and whether it was present.
func (p *Params) Get(key string) (BareItem, bool) {
	if p == nil || p.values == nil {
		return BareItem{}, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Keys returns the parameter keys in insertion order. The returned slice
// must not be mutated by the caller.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return p.keys
}

// Len reports the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Equal reports structural equality: same keys, in the same order, with
// equal values.
func (p *Params) Equal(other *Params) bool {
	if p.Len() != other.Len() {
		return false
	}
	for i, k := range p.Keys() {
		ok := other.Keys()[i]
		if k != ok {
			return false
		}
		v1, _ := p.Get(k)
		v2, _ := other.Get(ok)
		if !v1.Equal(v2) {
			return false
		}
	}
	return true
}

// Clone returns a deep-enough copy safe for independent mutation.
func (p *Params) Clone() *Params {
	np := NewParams()
	if p == nil {
		return np
	}
	for _, k := range p.keys {
		np.Set(k, p.values[k])
	}
	return np
}

package html

// attrPair is one entry of an Attributes ordered map.
type attrPair struct {
	Name  string
	Value string
}

// Attributes is an insertion-ordered mapping from attribute name to
// value. Attribute counts per tag are small, so a linear-scan upsert
// over a slice is cheaper than a real map and preserves the source
// order needed for faithful reserialization.
type Attributes struct {
	pairs []attrPair
}

func newAttributes() *Attributes {
	return &Attributes{}
}

// set inserts name=value, or overwrites the existing value for name
// in place if it was already present (last-wins on duplicates,
// without disturbing insertion order).
func (a *Attributes) set(name, value string) {
	for i := range a.pairs {
		if a.pairs[i].Name == name {
			a.pairs[i].Value = value
			return
		}
	}
	a.pairs = append(a.pairs, attrPair{Name: name, Value: value})
}

// Get returns the value for name and whether it was present.
func (a *Attributes) Get(name string) (string, bool) {
	for _, p := range a.pairs {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Len returns the number of distinct attribute names.
func (a *Attributes) Len() int {
	return len(a.pairs)
}

// Range calls fn once per attribute in source order, stopping early if
// fn returns false.
func (a *Attributes) Range(fn func(name, value string) bool) {
	for _, p := range a.pairs {
		if !fn(p.Name, p.Value) {
			return
		}
	}
}

// Map returns a copy of the attributes as a plain map. Order is lost;
// this is a convenience for callers and tests that don't care about
// source order.
func (a *Attributes) Map() map[string]string {
	m := make(map[string]string, len(a.pairs))
	for _, p := range a.pairs {
		m[p.Name] = p.Value
	}
	return m
}

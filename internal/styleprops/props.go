package styleprops

// Props is an insertion-ordered bag of abstract style properties. When two
// abstract properties write the same physical property, the later one wins.
type Props struct {
	keys   []string
	values map[string]Responsive[Value]
}

// NewProps returns an empty bag.
func NewProps() *Props {
	return &Props{values: make(map[string]Responsive[Value])}
}

// Set stores a value. Overwriting a key keeps its original position.
func (p *Props) Set(key string, v Responsive[Value]) *Props {
	if p.values == nil {
		p.values = make(map[string]Responsive[Value])
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
	return p
}

// SetValue stores a plain value.
func (p *Props) SetValue(key string, v Value) *Props {
	return p.Set(key, Plain(v))
}

// Get returns the value stored under key.
func (p *Props) Get(key string) (Responsive[Value], bool) {
	if p == nil {
		return Responsive[Value]{}, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Keys lists the keys in insertion order.
func (p *Props) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Len returns the number of keys.
func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

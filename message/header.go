package message

import "net/textproto"

// Header is an ordered multi-value header map. Name insertion order is
// preserved across names, and value order is preserved per name, so a
// translation to another header representation can reproduce the caller's
// original layout. Names are normalized to canonical MIME form
// ("content-type" and "Content-Type" address the same entry).
//
// The zero value is ready to use. Header is not safe for concurrent
// mutation.
type Header struct {
	names  []string
	values map[string][]string
}

// NewHeader returns an empty header.
func NewHeader() *Header {
	return &Header{}
}

// CanonicalName normalizes a header name to its canonical MIME form.
func CanonicalName(name string) string {
	return textproto.CanonicalMIMEHeaderKey(name)
}

// Add appends value under name, preserving any existing values.
func (h *Header) Add(name, value string) {
	name = CanonicalName(name)
	if h.values == nil {
		h.values = make(map[string][]string)
	}
	if _, ok := h.values[name]; !ok {
		h.names = append(h.names, name)
	}
	h.values[name] = append(h.values[name], value)
}

// Set replaces all values under name with the single given value.
func (h *Header) Set(name, value string) {
	name = CanonicalName(name)
	if h.values == nil {
		h.values = make(map[string][]string)
	}
	if _, ok := h.values[name]; !ok {
		h.names = append(h.names, name)
	}
	h.values[name] = []string{value}
}

// Get returns the first value under name, or "" if absent.
func (h *Header) Get(name string) string {
	if h == nil || h.values == nil {
		return ""
	}
	vs := h.values[CanonicalName(name)]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Values returns all values under name in insertion order. The returned
// slice is a copy; mutating it does not affect the header.
func (h *Header) Values(name string) []string {
	if h == nil || h.values == nil {
		return nil
	}
	vs := h.values[CanonicalName(name)]
	if vs == nil {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

// Has reports whether name has at least one value.
func (h *Header) Has(name string) bool {
	if h == nil || h.values == nil {
		return false
	}
	_, ok := h.values[CanonicalName(name)]
	return ok
}

// Del removes all values under name.
func (h *Header) Del(name string) {
	if h == nil || h.values == nil {
		return
	}
	name = CanonicalName(name)
	if _, ok := h.values[name]; !ok {
		return
	}
	delete(h.values, name)
	for i, n := range h.names {
		if n == name {
			h.names = append(h.names[:i], h.names[i+1:]...)
			break
		}
	}
}

// Names returns all header names in insertion order.
func (h *Header) Names() []string {
	if h == nil {
		return nil
	}
	out := make([]string, len(h.names))
	copy(out, h.names)
	return out
}

// Len returns the number of distinct header names.
func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.names)
}

// Each calls fn for every (name, value) pair: names in insertion order,
// values in insertion order within each name. Iteration stops early if fn
// returns false.
func (h *Header) Each(fn func(name, value string) bool) {
	if h == nil {
		return
	}
	for _, name := range h.names {
		for _, value := range h.values[name] {
			if !fn(name, value) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	if h == nil {
		return nil
	}
	out := &Header{}
	h.Each(func(name, value string) bool {
		out.Add(name, value)
		return true
	})
	return out
}

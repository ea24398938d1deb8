package attributes

import (
	"reflect"
	"sort"

	"github.com/mitchellh/copystructure"
)

// Attributes maps keys to opaque values. A present key is explicitly set,
// an absent key is inherited.
type Attributes map[Key]any

// Clone returns a copy that can be mutated independently. Values
// implementing Cloner are cloned and slices and maps are deep copied;
// everything else is treated as immutable and shared.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	if c, ok := v.(Cloner); ok {
		return c.CloneAttribute()
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Map:
		if copied, err := copystructure.Copy(v); err == nil {
			return copied
		}
	}
	return v
}

// Merge returns a new set with the entries of a overridden, key by key, by
// the entries of over. Values are shared, not cloned.
func (a Attributes) Merge(over Attributes) Attributes {
	out := make(Attributes, len(a)+len(over))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Equal reports whether both sets hold the same keys with deeply equal values
func (a Attributes) Equal(other Attributes) bool {
	if len(a) != len(other) {
		return false
	}
	for k, v := range a {
		ov, ok := other[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// Keys returns the keys present, in declaration order
func (a Attributes) Keys() []Key {
	keys := make([]Key, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Get returns the value for key when it is present and of type T
func Get[T any](a Attributes, key Key) (T, bool) {
	v, ok := a[key].(T)
	return v, ok
}

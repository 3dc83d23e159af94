package dict

import "iter"

// All yields every key and value in slot order. Slot order is neither
// insertion order nor stable across growth. The table must not be modified
// during the walk.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := int32(0); i < d.top; i++ {
			if d.blocks[i].used && !yield(d.recs[i].key, d.recs[i].value) {
				return
			}
		}
	}
}

// Keys yields every key in slot order.
func (d *Dict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range d.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value in slot order.
func (d *Dict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Any returns the record in the lowest used slot. ok is false when the table
// is empty.
func (d *Dict[K, V]) Any() (key K, value *V, ok bool) {
	for i := int32(0); i < d.top; i++ {
		if d.blocks[i].used {
			return d.recs[i].key, &d.recs[i].value, true
		}
	}
	return key, nil, false
}

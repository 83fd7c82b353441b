package slots

import (
	"context"
	"hash"
)

// Map is a hashed associative container. Each entry lives at the key derived
// from the user key's canonical encoding and the map's base key, and holds one
// stored value.
//
// There is no existence check, no removal and no iteration: reading a key that
// was never inserted returns the value type's zero value. Use an OptionCodec
// for the values when presence must be observable.
type Map[K any, V any] struct {
	store  Store
	hasher hash.Hash
	base   StorageKey
	keys   Codec[K]
	values Codec[V]
}

// NewMap constructs a map over store, addressed under base. hasher is used for
// all key derivation and must produce KeyBytes wide sums. The map is not safe
// for concurrent use; see the package comment for the execution model.
func NewMap[K any, V any](store Store, hasher hash.Hash, base StorageKey, keys Codec[K], values Codec[V]) (*Map[K, V], error) {
	if hasher == nil || hasher.Size() != KeyBytes {
		return nil, ErrBadHashSize
	}
	m := &Map[K, V]{
		store:  store,
		hasher: hasher,
		base:   base,
		keys:   keys,
		values: values,
	}
	return m, nil
}

func (m *Map[K, V]) Base() StorageKey { return m.base }

// Insert writes value under key, overwriting any previous value.
func (m *Map[K, V]) Insert(ctx context.Context, key K, value V) error {
	slot, err := m.entryKey(key)
	if err != nil {
		return err
	}
	return StoreValue(ctx, m.store, m.hasher, slot, m.values, value)
}

// Get reads the value stored under key. A key that was never inserted reads
// back as the value type's zero value.
func (m *Map[K, V]) Get(ctx context.Context, key K) (V, error) {
	var zero V
	slot, err := m.entryKey(key)
	if err != nil {
		return zero, err
	}
	return GetValue(ctx, m.store, m.hasher, slot, m.values)
}

func (m *Map[K, V]) entryKey(key K) (StorageKey, error) {
	enc := make([]byte, m.keys.Size())
	if err := m.keys.Encode(enc, key); err != nil {
		return StorageKey{}, err
	}
	return EntryKey(m.hasher, enc, m.base)
}

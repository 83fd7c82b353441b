package slots

import "hash"

// The derivation layouts below are load bearing: any change to the argument
// order or the discriminant encoding changes where previously written data is
// found. The discriminant is always hashed first, then the base key.

// IndexKey derives the storage key for the element at index of the container
// based at base. It computes:
//
//	H( index_be8 || base[32] )
func IndexKey(hasher hash.Hash, index uint64, base StorageKey) (StorageKey, error) {
	hasher.Reset()
	HashWriteUint64(hasher, index)
	_, _ = hasher.Write(base[:])
	return sumKey(hasher)
}

// EntryKey derives the storage key for a map entry. encodedKey is the user
// key's canonical fixed width encoding, exactly the bytes its Codec produces.
// It computes:
//
//	H( encodedKey || base[32] )
func EntryKey(hasher hash.Hash, encodedKey []byte, base StorageKey) (StorageKey, error) {
	hasher.Reset()
	_, _ = hasher.Write(encodedKey)
	_, _ = hasher.Write(base[:])
	return sumKey(hasher)
}

// ChainedKey derives the slot key for the next chunk of a multi quad value.
// It is the same derivation applied to the current key alone:
//
//	H( key[32] )
func ChainedKey(hasher hash.Hash, key StorageKey) (StorageKey, error) {
	hasher.Reset()
	_, _ = hasher.Write(key[:])
	return sumKey(hasher)
}

// NamedKey derives a stable base key from a name. It is a convenience for
// callers that identify their containers by string; the engine attaches no
// meaning to the name. Callers must keep container names disjoint.
func NamedKey(hasher hash.Hash, name string) (StorageKey, error) {
	hasher.Reset()
	_, _ = hasher.Write([]byte(name))
	return sumKey(hasher)
}

func sumKey(hasher hash.Hash) (StorageKey, error) {
	var k StorageKey
	sum := hasher.Sum(k[:0])
	if len(sum) != KeyBytes {
		return StorageKey{}, ErrBadHashSize
	}
	copy(k[:], sum)
	return k, nil
}

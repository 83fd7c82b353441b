package slots

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash"
)

// vecDigestPrefix domain separates sequence digests from the key derivations,
// which have no prefix byte.
const vecDigestPrefix = 0x02

// Vec is a growable ordered sequence. The base key holds the length as a word
// slot; element i lives at IndexKey(i, base). At all times every index below
// the length holds a valid value. Indices at or beyond the length may hold
// stale bytes from past removals, they are logically nonexistent and
// unreachable through this API.
type Vec[V any] struct {
	store  Store
	hasher hash.Hash
	base   StorageKey
	values Codec[V]
}

// NewVec constructs a sequence over store, addressed under base. hasher is
// used for all key derivation and must produce KeyBytes wide sums. The
// sequence is not safe for concurrent use; see the package comment for the
// execution model.
func NewVec[V any](store Store, hasher hash.Hash, base StorageKey, values Codec[V]) (*Vec[V], error) {
	if hasher == nil || hasher.Size() != KeyBytes {
		return nil, ErrBadHashSize
	}
	v := &Vec[V]{
		store:  store,
		hasher: hasher,
		base:   base,
		values: values,
	}
	return v, nil
}

func (v *Vec[V]) Base() StorageKey { return v.base }

// Len returns the number of elements. A sequence whose base was never written
// has length zero.
func (v *Vec[V]) Len(ctx context.Context) (uint64, error) {
	return v.store.ReadWord(ctx, v.base)
}

// Push appends value, growing the sequence by one.
func (v *Vec[V]) Push(ctx context.Context, value V) error {
	length, err := v.Len(ctx)
	if err != nil {
		return err
	}
	if err = v.storeAt(ctx, length, value); err != nil {
		return err
	}
	return v.store.WriteWord(ctx, v.base, length+1)
}

// Pop removes and returns the last element. The second return is false when
// the sequence is empty. The vacated slot keeps its bytes.
func (v *Vec[V]) Pop(ctx context.Context) (V, bool, error) {
	var zero V
	length, err := v.Len(ctx)
	if err != nil {
		return zero, false, err
	}
	if length == 0 {
		return zero, false, nil
	}
	if err = v.store.WriteWord(ctx, v.base, length-1); err != nil {
		return zero, false, err
	}
	value, err := v.getAt(ctx, length-1)
	if err != nil {
		return zero, false, err
	}
	return value, true, nil
}

// Get returns the element at index. The second return is false when index is
// out of range.
func (v *Vec[V]) Get(ctx context.Context, index uint64) (V, bool, error) {
	var zero V
	length, err := v.Len(ctx)
	if err != nil {
		return zero, false, err
	}
	if index >= length {
		return zero, false, nil
	}
	value, err := v.getAt(ctx, index)
	if err != nil {
		return zero, false, err
	}
	return value, true, nil
}

// Set overwrites the element at index. Unlike Get, an out of range index is an
// error: Set cannot grow the sequence.
func (v *Vec[V]) Set(ctx context.Context, index uint64, value V) error {
	length, err := v.Len(ctx)
	if err != nil {
		return err
	}
	if index >= length {
		return fmt.Errorf("%w: set %d, len %d", ErrIndexOutOfRange, index, length)
	}
	return v.storeAt(ctx, index, value)
}

// Insert places value at index, shifting the elements at [index, len) up one
// slot. Cost is O(len-index) stored values. index == len appends.
//
// The shift iterates descending so each write target was vacated by the step
// before it. The append case must bypass the loop entirely, a descending
// counter from len-1 underflows when the sequence is empty.
func (v *Vec[V]) Insert(ctx context.Context, index uint64, value V) error {
	length, err := v.Len(ctx)
	if err != nil {
		return err
	}
	if index > length {
		return fmt.Errorf("%w: insert %d, len %d", ErrIndexOutOfRange, index, length)
	}

	if index != length {
		for count := length; count > index; count-- {
			shifted, err := v.getAt(ctx, count-1)
			if err != nil {
				return err
			}
			if err = v.storeAt(ctx, count, shifted); err != nil {
				return err
			}
		}
	}
	if err = v.storeAt(ctx, index, value); err != nil {
		return err
	}
	return v.store.WriteWord(ctx, v.base, length+1)
}

// Remove takes out the element at index, shifting the elements at
// [index+1, len) down one slot so the order of the remainder is preserved.
// Cost is O(len-index) stored values. An out of range index is an error.
//
// The shift iterates ascending, reading each element before overwriting the
// slot below it. The last slot keeps its bytes.
func (v *Vec[V]) Remove(ctx context.Context, index uint64) (V, error) {
	var zero V
	length, err := v.Len(ctx)
	if err != nil {
		return zero, err
	}
	if index >= length {
		return zero, fmt.Errorf("%w: remove %d, len %d", ErrIndexOutOfRange, index, length)
	}

	removed, err := v.getAt(ctx, index)
	if err != nil {
		return zero, err
	}
	for count := index + 1; count < length; count++ {
		shifted, err := v.getAt(ctx, count)
		if err != nil {
			return zero, err
		}
		if err = v.storeAt(ctx, count-1, shifted); err != nil {
			return zero, err
		}
	}
	if err = v.store.WriteWord(ctx, v.base, length-1); err != nil {
		return zero, err
	}
	return removed, nil
}

// SwapRemove takes out the element at index by moving the last element into
// its slot. O(1) stored values, does not preserve order. An out of range index
// is an error. The vacated last slot keeps its bytes.
func (v *Vec[V]) SwapRemove(ctx context.Context, index uint64) (V, error) {
	var zero V
	length, err := v.Len(ctx)
	if err != nil {
		return zero, err
	}
	if index >= length {
		return zero, fmt.Errorf("%w: swap remove %d, len %d", ErrIndexOutOfRange, index, length)
	}

	removed, err := v.getAt(ctx, index)
	if err != nil {
		return zero, err
	}
	last, err := v.getAt(ctx, length-1)
	if err != nil {
		return zero, err
	}
	if err = v.storeAt(ctx, index, last); err != nil {
		return zero, err
	}
	if err = v.store.WriteWord(ctx, v.base, length-1); err != nil {
		return zero, err
	}
	return removed, nil
}

// Digest computes a hash commitment to the sequence contents:
//
//	H( 0x02 || base[32] || len_be8 || elem_0 || ... || elem_len-1 )
//
// where each element contributes its canonical codec encoding. digestHasher
// accumulates the commitment and must be a distinct instance from the one the
// sequence derives keys with. The digest and the length it covers are
// returned; see the checkpoint package for signing them.
func (v *Vec[V]) Digest(ctx context.Context, digestHasher hash.Hash) ([]byte, uint64, error) {
	length, err := v.Len(ctx)
	if err != nil {
		return nil, 0, err
	}

	digestHasher.Reset()
	_, _ = digestHasher.Write([]byte{vecDigestPrefix})
	_, _ = digestHasher.Write(v.base[:])
	HashWriteUint64(digestHasher, length)

	for index := uint64(0); index < length; index++ {
		key, err := IndexKey(v.hasher, index, v.base)
		if err != nil {
			return nil, 0, err
		}
		var enc []byte
		if v.values.Word() {
			enc, err = v.wordBytesAt(ctx, key)
		} else {
			enc, err = GetBytes(ctx, v.store, v.hasher, key, v.values.Size())
		}
		if err != nil {
			return nil, 0, err
		}
		_, _ = digestHasher.Write(enc)
	}
	return digestHasher.Sum(nil), length, nil
}

func (v *Vec[V]) wordBytesAt(ctx context.Context, key StorageKey) ([]byte, error) {
	word, err := v.store.ReadWord(ctx, key)
	if err != nil {
		return nil, err
	}
	b := make([]byte, WordBytes)
	binary.BigEndian.PutUint64(b, word)
	return b[WordBytes-v.values.Size():], nil
}

func (v *Vec[V]) storeAt(ctx context.Context, index uint64, value V) error {
	key, err := IndexKey(v.hasher, index, v.base)
	if err != nil {
		return err
	}
	return StoreValue(ctx, v.store, v.hasher, key, v.values, value)
}

func (v *Vec[V]) getAt(ctx context.Context, index uint64) (V, error) {
	var zero V
	key, err := IndexKey(v.hasher, index, v.base)
	if err != nil {
		return zero, err
	}
	return GetValue(ctx, v.store, v.hasher, key, v.values)
}

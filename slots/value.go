package slots

import (
	"context"
	"encoding/binary"
	"hash"
)

// StoreValue persists value at key. Word codecs take a single word write.
// Everything else is encoded to the codec width and written as a run of quad
// slots: the first quad at key, each subsequent quad at the chained key of the
// one before it. The final quad is right zero padded.
//
// Overwrites at the same key are total for equal types: every slot a previous
// value of the type occupied is written again.
func StoreValue[V any](ctx context.Context, store Store, hasher hash.Hash, key StorageKey, codec Codec[V], value V) error {
	width := codec.Size()
	if codec.Word() {
		if width > WordBytes {
			return ErrWordCodecWidth
		}
		// Narrow word encodings occupy the low bytes so the numeric value is
		// preserved in the big-endian word.
		var b [WordBytes]byte
		if err := codec.Encode(b[WordBytes-width:], value); err != nil {
			return err
		}
		return store.WriteWord(ctx, key, binary.BigEndian.Uint64(b[:]))
	}
	buf := make([]byte, width)
	if err := codec.Encode(buf, value); err != nil {
		return err
	}
	return StoreBytes(ctx, store, hasher, key, buf)
}

// GetValue reads back a value of the codec's type from key. Decoding bytes
// that were never written yields the type's zero value, not an error.
func GetValue[V any](ctx context.Context, store Store, hasher hash.Hash, key StorageKey, codec Codec[V]) (V, error) {
	var zero V
	width := codec.Size()
	if codec.Word() {
		if width > WordBytes {
			return zero, ErrWordCodecWidth
		}
		word, err := store.ReadWord(ctx, key)
		if err != nil {
			return zero, err
		}
		var b [WordBytes]byte
		binary.BigEndian.PutUint64(b[:], word)
		return codec.Decode(b[WordBytes-width:])
	}
	buf, err := GetBytes(ctx, store, hasher, key, width)
	if err != nil {
		return zero, err
	}
	return codec.Decode(buf)
}

// StoreBytes writes data as a run of quad slots starting at key, chaining keys
// with ChainedKey. It is the raw path StoreValue is built on.
func StoreBytes(ctx context.Context, store Store, hasher hash.Hash, key StorageKey, data []byte) error {
	var err error
	k := key
	for len(data) > QuadBytes {
		var q [QuadBytes]byte
		copy(q[:], data[:QuadBytes])
		if err = store.WriteQuad(ctx, k, q); err != nil {
			return err
		}
		data = data[QuadBytes:]
		if k, err = ChainedKey(hasher, k); err != nil {
			return err
		}
	}
	var q [QuadBytes]byte
	copy(q[:], data)
	return store.WriteQuad(ctx, k, q)
}

// GetBytes reads width bytes back from the run of quad slots starting at key.
func GetBytes(ctx context.Context, store Store, hasher hash.Hash, key StorageKey, width int) ([]byte, error) {
	var err error
	var q [QuadBytes]byte

	buf := make([]byte, 0, width)
	k := key
	remaining := width
	for remaining > QuadBytes {
		if q, err = store.ReadQuad(ctx, k); err != nil {
			return nil, err
		}
		buf = append(buf, q[:]...)
		remaining -= QuadBytes
		if k, err = ChainedKey(hasher, k); err != nil {
			return nil, err
		}
	}
	if q, err = store.ReadQuad(ctx, k); err != nil {
		return nil, err
	}
	buf = append(buf, q[:remaining]...)
	return buf, nil
}

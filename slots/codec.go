package slots

import (
	"encoding/binary"
	"fmt"
)

// Codec defines the canonical fixed width storage encoding for values of type
// V. The engine dispatches on the codec, not on the value: Size is a static
// property of the type and Word selects the single word storage form.
//
// Word codecs must have Size() <= WordBytes. A codec for a reference like or
// multi field type must report Word() == false even when its encoding happens
// to fit a word, so that it takes the quad path.
//
// Map keys are encoded with the same contract; the Encode output is the
// canonical discriminant hashed by EntryKey.
type Codec[V any] interface {
	// Size returns the encoded width in bytes. It must be constant for the
	// lifetime of the codec.
	Size() int
	// Word reports whether values are persisted as a single word slot.
	Word() bool
	// Encode writes the canonical encoding of value to dst. len(dst) must
	// equal Size().
	Encode(dst []byte, value V) error
	// Decode reconstructs a value from its canonical encoding. len(src) must
	// equal Size(). All zero bytes decode to the type's zero value.
	Decode(src []byte) (V, error)
}

// Uint64Codec persists uint64 values as a single big-endian word.
type Uint64Codec struct{}

func (Uint64Codec) Size() int  { return WordBytes }
func (Uint64Codec) Word() bool { return true }

func (Uint64Codec) Encode(dst []byte, value uint64) error {
	if len(dst) != WordBytes {
		return fmt.Errorf("%w: %d for uint64", ErrCodecWidth, len(dst))
	}
	binary.BigEndian.PutUint64(dst, value)
	return nil
}

func (Uint64Codec) Decode(src []byte) (uint64, error) {
	if len(src) != WordBytes {
		return 0, fmt.Errorf("%w: %d for uint64", ErrCodecWidth, len(src))
	}
	return binary.BigEndian.Uint64(src), nil
}

// QuadCodec persists 32 byte values in exactly one quad slot.
type QuadCodec struct{}

func (QuadCodec) Size() int  { return QuadBytes }
func (QuadCodec) Word() bool { return false }

func (QuadCodec) Encode(dst []byte, value [QuadBytes]byte) error {
	if len(dst) != QuadBytes {
		return fmt.Errorf("%w: %d for quad", ErrCodecWidth, len(dst))
	}
	copy(dst, value[:])
	return nil
}

func (QuadCodec) Decode(src []byte) ([QuadBytes]byte, error) {
	var value [QuadBytes]byte
	if len(src) != QuadBytes {
		return value, fmt.Errorf("%w: %d for quad", ErrCodecWidth, len(src))
	}
	copy(value[:], src)
	return value, nil
}

// RawCodec persists opaque byte strings of a caller fixed width. Byte strings
// are reference like, so the quad path is always taken, even for widths that
// would fit a word.
type RawCodec struct {
	width int
}

func NewRawCodec(width int) RawCodec {
	return RawCodec{width: width}
}

func (c RawCodec) Size() int  { return c.width }
func (c RawCodec) Word() bool { return false }

func (c RawCodec) Encode(dst []byte, value []byte) error {
	if len(dst) != c.width || len(value) != c.width {
		return fmt.Errorf("%w: dst %d value %d, want %d", ErrCodecWidth, len(dst), len(value), c.width)
	}
	copy(dst, value)
	return nil
}

func (c RawCodec) Decode(src []byte) ([]byte, error) {
	if len(src) != c.width {
		return nil, fmt.Errorf("%w: %d, want %d", ErrCodecWidth, len(src), c.width)
	}
	value := make([]byte, c.width)
	copy(value, src)
	return value, nil
}

// Option carries a value together with a presence flag. Storing options is the
// only reliable way to distinguish "never written" from "written as zero",
// because unwritten slots read back as zero and a zero option is None.
type Option[V any] struct {
	Some  bool
	Value V
}

// OptionCodec persists Option values as a one byte presence flag followed by
// the element encoding. None encodes the element bytes as zero.
type OptionCodec[V any] struct {
	elem Codec[V]
}

func NewOptionCodec[V any](elem Codec[V]) OptionCodec[V] {
	return OptionCodec[V]{elem: elem}
}

func (c OptionCodec[V]) Size() int  { return 1 + c.elem.Size() }
func (c OptionCodec[V]) Word() bool { return false }

func (c OptionCodec[V]) Encode(dst []byte, value Option[V]) error {
	if len(dst) != c.Size() {
		return fmt.Errorf("%w: %d for option", ErrCodecWidth, len(dst))
	}
	if !value.Some {
		for i := range dst {
			dst[i] = 0
		}
		return nil
	}
	dst[0] = 1
	return c.elem.Encode(dst[1:], value.Value)
}

func (c OptionCodec[V]) Decode(src []byte) (Option[V], error) {
	var value Option[V]
	if len(src) != c.Size() {
		return value, fmt.Errorf("%w: %d for option", ErrCodecWidth, len(src))
	}
	if src[0] == 0 {
		return value, nil
	}
	elem, err := c.elem.Decode(src[1:])
	if err != nil {
		return value, err
	}
	return Option[V]{Some: true, Value: elem}, nil
}

package slots

import (
	"encoding/hex"
	"errors"
)

// KeyBytes is the fixed width of a storage key. This matches the output width
// of the hash used for key derivation.
const KeyBytes = 32

// WordBytes is the width of a single word slot.
const WordBytes = 8

// QuadBytes is the width of a quad slot, and hence the chunk size used when
// persisting values wider than a word.
const QuadBytes = 32

// StorageKey addresses one slot in the persistent backend. Keys are immutable
// once derived and are never legitimately shared by two live logical elements,
// though a slot may be overwritten when an element is logically removed or
// shifted.
type StorageKey [KeyBytes]byte

// String returns the lower case hex encoding of the key.
func (k StorageKey) String() string {
	return hex.EncodeToString(k[:])
}

var (
	ErrBadHashSize     = errors.New("slots: hasher output must be 32 bytes")
	ErrIndexOutOfRange = errors.New("slots: index out of range")
	ErrCodecWidth      = errors.New("slots: buffer width does not match the codec width")
	ErrWordCodecWidth  = errors.New("slots: word codec width exceeds a single word")
)

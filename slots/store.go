package slots

import "context"

// Store is the raw key value backend the engine operates on. Implementations
// address slots by StorageKey and support exactly two slot shapes: a single
// word and a 32 byte quad.
//
// Reads of keys that were never written return the zero value, never an
// error. Absence is not observable at this level. The word and quad forms may
// alias at the same key; the engine never mixes them for one logical value,
// with the single exception that a container length counter is always a word.
//
// Errors are reserved for backend transport failures (a remote store that
// cannot be reached). The in-memory implementation never returns one.
type Store interface {
	ReadWord(ctx context.Context, key StorageKey) (uint64, error)
	WriteWord(ctx context.Context, key StorageKey, value uint64) error
	ReadQuad(ctx context.Context, key StorageKey) ([QuadBytes]byte, error)
	WriteQuad(ctx context.Context, key StorageKey, value [QuadBytes]byte) error
}

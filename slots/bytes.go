package slots

import (
	"encoding/binary"
	"hash"
)

// HashWriteUint64 writes a uint64 to a hasher in big-endian layout.
func HashWriteUint64(hasher hash.Hash, value uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], value)
	_, _ = hasher.Write(b[:])
}

// Package checkpoint produces and verifies signed commitments to the state of
// a persistent sequence. A checkpoint binds the sequence length and a digest
// over the stored contents, so a holder of a verified checkpoint can detect
// any later tampering with the slots the sequence occupies.
package checkpoint

import (
	"time"

	"github.com/forestrie/go-slotstore/slots"
)

// SequenceState defines the details included in a signed commitment to a
// sequence.
type SequenceState struct {
	// Length is the element count the digest covers.
	Length uint64 `cbor:"1,keyasint"`
	// Digest commits to the base key, the length and every stored element in
	// order, see slots.Vec.Digest.
	Digest []byte `cbor:"2,keyasint"`
	// Timestamp is the unix time (milliseconds) read at the time the state was
	// signed. Including it allows the same state to be re-signed.
	Timestamp int64 `cbor:"3,keyasint"`
	// Base identifies the sequence the commitment is for.
	Base []byte `cbor:"4,keyasint"`
}

// NewSequenceState captures the current state of the sequence. digest and
// length are the pair returned by the sequence's Digest method.
func NewSequenceState(base slots.StorageKey, digest []byte, length uint64) SequenceState {
	return SequenceState{
		Length:    length,
		Digest:    digest,
		Timestamp: time.Now().UnixMilli(),
		Base:      base[:],
	}
}

/*
Package slots implements a typed persistent storage engine over a fixed width,
hash addressed key value backend.

The backend exposes exactly two slot shapes: a single machine word (8 bytes)
and a 'quad' (32 bytes). Values of arbitrary fixed width types are persisted by
chunking their canonical encoding into a run of quads, with each successive
slot key derived by hashing the previous key. Container addresses are derived
by hashing a discriminant (a u64 index or an encoded user key) together with a
stable 256 bit base key. Because the address space is owned by the backend and
is not contiguous, growable container semantics (push/pop/insert/remove) are
implemented entirely through address arithmetic over derived keys.

It follows the same "functional primitives" style as `go-merklelog/mmr`:

  - small, composable functions taking an injected hash.Hash
  - explicit byte layouts, big-endian throughout
  - a narrow Store interface permitting a variety of storage backends
  - a burden of knowledge on the caller for hot paths

# Properties the caller must understand

Reading a key that was never written yields the backend zero value. Absence is
therefore indistinguishable from a stored zero. Callers that need presence
semantics should store option values, see OptionCodec.

There is no delete primitive. Removal from a container is logical: the length
is adjusted and the vacated slot keeps its bytes until something overwrites
them. Code handling sensitive values must account for this residual data.

Distinct containers must be given distinct base keys. The engine performs no
collision detection between containers that share a base, the cryptographic
hash is the only thing keeping unrelated entries apart.

Operations are short, non yielding sequences of slot reads and writes. The
engine takes no locks; atomicity and rollback are the concern of whatever
transaction boundary encloses the backend.
*/
package slots

/*
Package blobslots implements the slots.Store backend over azure blob storage.

Each slot is one blob, named by the hex form of its storage key under a caller
chosen namespace prefix. The mapping is deliberately dumb: the engine above
already guarantees keys are hash derived and collision free, so the blob layout
needs no structure beyond a stable path scheme.

A read of a blob that does not exist yields the zero slot value, matching the
engine's zero-is-default contract. All other storage errors propagate.
*/
package blobslots

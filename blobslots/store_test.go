package blobslots

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"testing"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-slotstore/slots"
)

// fakeBlobStore implements the narrow storer interface in memory so the slot
// semantics can be exercised without the emulator.
type fakeBlobStore struct {
	blobs map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: map[string][]byte{}}
}

func (f *fakeBlobStore) Reader(
	ctx context.Context, identity string, opts ...azblob.Option,
) (*azblob.ReaderResponse, error) {
	data, ok := f.blobs[identity]
	if !ok {
		return nil, fmt.Errorf("%s: %w", identity, ErrBlobNotFound)
	}
	return &azblob.ReaderResponse{
		Reader: io.NopCloser(bytes.NewReader(data)),
	}, nil
}

func (f *fakeBlobStore) Put(
	ctx context.Context, identity string, source io.ReadSeekCloser, opts ...azblob.Option,
) (*azblob.WriteResponse, error) {
	data, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	f.blobs[identity] = data
	return &azblob.WriteResponse{}, nil
}

func newTestStore(t *testing.T, namespace string) (*Store, *fakeBlobStore) {
	t.Helper()
	logger.New("NOOP")
	log := logger.Sugar.WithServiceName("blobslots")
	blobs := newFakeBlobStore()
	return NewStore(log, blobs, namespace), blobs
}

func TestStoreZeroReads(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, "tenant/zero")

	key, err := slots.NamedKey(sha256.New(), "blobslots/zero")
	require.NoError(t, err)

	word, err := store.ReadWord(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), word)

	quad, err := store.ReadQuad(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, [slots.QuadBytes]byte{}, quad)
}

func TestStoreWordQuadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestStore(t, "tenant/roundtrip")

	key, err := slots.NamedKey(sha256.New(), "blobslots/roundtrip")
	require.NoError(t, err)

	var quad [slots.QuadBytes]byte
	for i := range quad {
		quad[i] = byte(i + 100)
	}
	require.NoError(t, store.WriteQuad(ctx, key, quad))
	require.NoError(t, store.WriteWord(ctx, key, 7))

	got, err := store.ReadQuad(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, quad[slots.WordBytes:], got[slots.WordBytes:],
		"word writes must preserve the rest of the slot")

	word, err := store.ReadWord(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), word)

	// one slot, one blob, at the expected path
	assert.Equal(t, 1, len(blobs.blobs))
	_, ok := blobs.blobs[SlotBlobPath("tenant/roundtrip", key)]
	assert.True(t, ok)
}

// The containers are backend agnostic: the same sequence semantics hold over
// the blob store as over the memory store.
func TestVecOverBlobStore(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, "tenant/vec")
	hasher := sha256.New()

	base, err := slots.NamedKey(hasher, "blobslots/vec")
	require.NoError(t, err)
	vec, err := slots.NewVec[uint64](store, hasher, base, slots.Uint64Codec{})
	require.NoError(t, err)

	for _, value := range []uint64{5, 10, 15} {
		require.NoError(t, vec.Push(ctx, value))
	}
	removed, err := vec.Remove(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), removed)

	length, err := vec.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), length)

	got, ok, err := vec.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(15), got)
}

func TestStoreRejectsTruncatedSlot(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestStore(t, "tenant/truncated")

	key, err := slots.NamedKey(sha256.New(), "blobslots/truncated")
	require.NoError(t, err)
	blobs.blobs[SlotBlobPath("tenant/truncated", key)] = []byte{1, 2, 3}

	_, err = store.ReadQuad(ctx, key)
	assert.ErrorIs(t, err, ErrSlotBlobSize)
}

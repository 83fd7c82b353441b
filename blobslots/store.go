package blobslots

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-slotstore/slots"
)

// slotBlobStore is the narrow interface required of the azblob storer.
type slotBlobStore interface {
	Reader(
		ctx context.Context,
		identity string,
		opts ...azblob.Option,
	) (*azblob.ReaderResponse, error)
	Put(
		ctx context.Context,
		identity string,
		source io.ReadSeekCloser,
		opts ...azblob.Option,
	) (*azblob.WriteResponse, error)
}

// Store implements slots.Store with one blob per slot. Every slot is
// materialised at the full quad width; a word occupies the first
// slots.WordBytes of its blob, big-endian, and a word write preserves the
// remaining bytes, matching slots.MemoryStore.
type Store struct {
	log       logger.Logger
	store     slotBlobStore
	namespace string
}

func NewStore(log logger.Logger, store slotBlobStore, namespace string) *Store {
	s := &Store{
		log:       log,
		store:     store,
		namespace: namespace,
	}
	return s
}

func (s *Store) ReadWord(ctx context.Context, key slots.StorageKey) (uint64, error) {
	data, err := s.readSlot(ctx, key)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(data[:slots.WordBytes]), nil
}

func (s *Store) WriteWord(ctx context.Context, key slots.StorageKey, value uint64) error {
	// read-modify-write so that word writes preserve the rest of the slot
	data, err := s.readSlot(ctx, key)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(data[:slots.WordBytes], value)
	return s.writeSlot(ctx, key, data)
}

func (s *Store) ReadQuad(ctx context.Context, key slots.StorageKey) ([slots.QuadBytes]byte, error) {
	var quad [slots.QuadBytes]byte
	data, err := s.readSlot(ctx, key)
	if err != nil {
		return quad, err
	}
	copy(quad[:], data)
	return quad, nil
}

func (s *Store) WriteQuad(ctx context.Context, key slots.StorageKey, value [slots.QuadBytes]byte) error {
	data := make([]byte, slots.QuadBytes)
	copy(data, value[:])
	return s.writeSlot(ctx, key, data)
}

func (s *Store) readSlot(ctx context.Context, key slots.StorageKey) ([]byte, error) {
	blobPath := SlotBlobPath(s.namespace, key)

	rr, err := s.store.Reader(ctx, blobPath)
	if err != nil {
		if IsBlobNotFound(err) {
			// An unwritten slot reads as the zero value.
			return make([]byte, slots.QuadBytes), nil
		}
		return nil, err
	}
	defer rr.Reader.Close()
	data, err := io.ReadAll(rr.Reader)
	if err != nil {
		return nil, err
	}
	if len(data) != slots.QuadBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrSlotBlobSize, blobPath, len(data))
	}
	s.log.Debugf("blobslots.read: %s", blobPath)
	return data, nil
}

func (s *Store) writeSlot(ctx context.Context, key slots.StorageKey, data []byte) error {
	blobPath := SlotBlobPath(s.namespace, key)

	_, err := s.store.Put(ctx, blobPath, azblob.NewBytesReaderCloser(data))
	if err != nil {
		return err
	}
	s.log.Debugf("blobslots.write: %s", blobPath)
	return nil
}

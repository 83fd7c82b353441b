package blobslots

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/forestrie/go-slotstore/slots"
)

func TestSlotPrefix(t *testing.T) {
	assert.Equal(t, SlotPrefix("tenant/1234"), "v1/slots/tenant/1234/")
}

func TestSlotBlobPath(t *testing.T) {
	var key slots.StorageKey
	key[0] = 0xab
	key[31] = 0x01
	assert.Equal(
		t, SlotBlobPath("tenant/1234", key),
		"v1/slots/tenant/1234/ab00000000000000000000000000000000000000000000000000000000000001.slot")
}

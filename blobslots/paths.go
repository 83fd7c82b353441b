package blobslots

import (
	"fmt"

	"github.com/forestrie/go-slotstore/slots"
)

const (
	V1SlotPrefix = "v1/slots"

	V1SlotPathSep = "/"
	V1SlotExtSep  = "."
	V1SlotExt     = "slot"
)

// SlotPrefix returns the path under which every slot blob for the namespace
// lives. It is the caller's responsibility to keep namespaces disjoint, they
// are the blob layout's equivalent of container base keys.
func SlotPrefix(namespace string) string {
	return fmt.Sprintf("%s%s%s%s", V1SlotPrefix, V1SlotPathSep, namespace, V1SlotPathSep)
}

// SlotBlobPath returns the blob path for key under namespace. The blob name is
// the 64 character lower case hex form of the key.
func SlotBlobPath(namespace string, key slots.StorageKey) string {
	return fmt.Sprintf("%s%s%s%s", SlotPrefix(namespace), key.String(), V1SlotExtSep, V1SlotExt)
}

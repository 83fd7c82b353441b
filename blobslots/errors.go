package blobslots

import "errors"

var (
	ErrBlobNotFound = errors.New("blob not found")
	ErrSlotBlobSize = errors.New("slot blob size must be exactly one quad")
)

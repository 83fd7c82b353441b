package checkpoint

import (
	"crypto"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/veraison/go-cose"
)

type publicKeyProvider interface {
	PublicKey() (crypto.PublicKey, cose.Algorithm, error)
}

// DecodeSignedState decodes the SequenceState values from the signed message.
// See VerifySignedState for a description of how to verify it.
func DecodeSignedState(
	codec dtcbor.CBORCodec, msg []byte,
) (*dtcose.CoseSign1Message, SequenceState, error) {
	signed, err := dtcose.NewCoseSign1MessageFromCBOR(msg, newStateDecOptions()...)
	if err != nil {
		return nil, SequenceState{}, err
	}

	var unverifiedState SequenceState
	err = codec.UnmarshalInto(signed.Payload, &unverifiedState)
	if err != nil {
		return nil, SequenceState{}, err
	}
	return signed, unverifiedState, nil
}

// VerifySignedState applies the provided state to the signed message and
// verifies the result.
//
// Because the digest is detached before publishing, verification is a three
// step process:
//  1. Use DecodeSignedState to obtain the SequenceState from the signed
//     message. This state will not verify as the digest has been removed
//     after signing.
//  2. Recompute the digest from the stored sequence, slots.Vec.Digest.
//  3. Update the SequenceState with the recomputed digest and call this
//     function to complete the verification.
func VerifySignedState(
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider, signed *dtcose.CoseSign1Message, unverifiedState SequenceState, external []byte) error {

	var err error
	signed.Payload, err = codec.MarshalCBOR(unverifiedState)
	if err != nil {
		return err
	}
	return signed.VerifyWithProvider(keyProvider, external)
}

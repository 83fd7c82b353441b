package checkpoint

import (
	"context"
	"crypto/elliptic"
	"crypto/sha256"
	"testing"

	"github.com/datatrails/go-datatrails-common/azkeys"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-slotstore/slots"
)

func TestSigner_Sign1(t *testing.T) {

	logger.New("TEST")

	type fields struct {
		issuer string
		curve  elliptic.Curve
	}
	type args struct {
		subject  string
		state    SequenceState
		external []byte
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
	}{
		{
			name: "common case P-256 & ES256",
			fields: fields{
				issuer: "synsation.org",
				curve:  elliptic.P256(),
			},
			args: args{
				subject: "slotstore-attestor",
				state: SequenceState{
					Length:    1,
					Digest:    []byte{1},
					Timestamp: 1234,
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			key := TestGenerateECKey(t, tt.fields.curve)
			signer := TestNewSigner(t, tt.fields.issuer)

			coseSigner := azkeys.NewTestCoseSigner(t, key)
			pubKey, err := coseSigner.PublicKey()
			require.NoError(t, err)

			coseMsg, err := signer.Sign1(coseSigner, coseSigner.KeyIdentifier(), pubKey, tt.args.subject, tt.args.state, tt.args.external)
			if (err != nil) != tt.wantErr {
				t.Errorf("Signer.Sign1() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			signed, state, err := DecodeSignedState(signer.cborCodec, coseMsg)
			assert.NoError(t, err)

			// verification must fail while the digest is detached
			err = VerifySignedState(
				signer.cborCodec,
				dtcose.NewCWTPublicKeyProvider(signed),
				signed, state, nil,
			)
			assert.Error(t, err)

			state.Digest = tt.args.state.Digest
			err = VerifySignedState(
				signer.cborCodec,
				dtcose.NewCWTPublicKeyProvider(signed),
				signed, state, nil,
			)
			assert.NoError(t, err)
		})
	}
}

// End to end over a stored sequence: sign its state, then verify by
// recomputing the digest from storage, and observe that mutating storage
// breaks verification.
func TestSignedSequenceState(t *testing.T) {

	logger.New("TEST")
	ctx := context.Background()

	hasher := sha256.New()
	store := slots.NewMemoryStore()
	base, err := slots.NamedKey(hasher, "checkpoint/e2e")
	require.NoError(t, err)
	vec, err := slots.NewVec[uint64](store, hasher, base, slots.Uint64Codec{})
	require.NoError(t, err)

	for _, value := range []uint64{5, 10, 15} {
		require.NoError(t, vec.Push(ctx, value))
	}
	digest, length, err := vec.Digest(ctx, sha256.New())
	require.NoError(t, err)

	key := TestGenerateECKey(t, elliptic.P256())
	signer := TestNewSigner(t, "synsation.org")
	coseSigner := azkeys.NewTestCoseSigner(t, key)
	pubKey, err := coseSigner.PublicKey()
	require.NoError(t, err)

	coseMsg, err := signer.Sign1(
		coseSigner, coseSigner.KeyIdentifier(), pubKey, "slotstore-attestor",
		NewSequenceState(base, digest, length), nil)
	require.NoError(t, err)

	signed, state, err := DecodeSignedState(signer.cborCodec, coseMsg)
	require.NoError(t, err)
	assert.Nil(t, state.Digest, "the published state must not carry the digest")

	// recompute from storage and verify
	recomputed, _, err := vec.Digest(ctx, sha256.New())
	require.NoError(t, err)
	state.Digest = recomputed
	err = VerifySignedState(
		signer.cborCodec, dtcose.NewCWTPublicKeyProvider(signed), signed, state, nil)
	assert.NoError(t, err)

	// a mutated sequence no longer produces a verifiable digest
	require.NoError(t, vec.Set(ctx, 1, 11))
	tampered, _, err := vec.Digest(ctx, sha256.New())
	require.NoError(t, err)
	assert.NotEqual(t, recomputed, tampered)

	signed, state, err = DecodeSignedState(signer.cborCodec, coseMsg)
	require.NoError(t, err)
	state.Digest = tampered
	err = VerifySignedState(
		signer.cborCodec, dtcose.NewCWTPublicKeyProvider(signed), signed, state, nil)
	assert.Error(t, err)
}

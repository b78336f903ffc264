package types_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/openweb3-io/txsigner/types"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapErrKeepsKind(t *testing.T) {
	err := types.WrapErr(types.ErrInvalidSignature, fmt.Errorf("expected 64 bytes, got 63"))
	require.True(t, errors.Is(err, types.ErrInvalidSignature))
	require.False(t, errors.Is(err, types.ErrInvalidPublicKey))
	require.Equal(t, "expected 64 bytes, got 63", err.Details["context"])

	// the shared sentinel is never mutated
	require.Nil(t, types.ErrInvalidSignature.Details)
}

func TestErrorsIsThroughWrapping(t *testing.T) {
	err := pkgerrors.Wrap(types.NewErr(types.ErrInvalidCallIndex, "module index %d", 256), "encode call")
	require.True(t, errors.Is(err, types.ErrInvalidCallIndex))

	var xcErr *types.Error
	require.True(t, errors.As(err, &xcErr))
	require.EqualValues(t, 18, xcErr.Code)
	require.Contains(t, err.Error(), "module index 256")
}

func TestErrorCodesAreStable(t *testing.T) {
	for code, err := range map[int32]*types.Error{
		1:  types.ErrInternal,
		12: types.ErrInvalidAddress,
		13: types.ErrInvalidSignature,
		14: types.ErrInvalidPublicKey,
		15: types.ErrInvalidPrivateKey,
		16: types.ErrInvalidValue,
		17: types.ErrMissingField,
		18: types.ErrInvalidCallIndex,
		19: types.ErrTruncatedInput,
		20: types.ErrInvalidInput,
		30: types.ErrMissingCallIndices,
		31: types.ErrNotSupported,
		32: types.ErrUnsupportedBlockchain,
	} {
		require.Equal(t, code, err.Code, err.Message)
	}

	// bad keys and bad signatures stay distinguishable
	require.False(t, errors.Is(types.NewErr(types.ErrInvalidPublicKey, "31 bytes"), types.ErrInvalidSignature))
}

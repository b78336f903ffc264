package blockchains

import (
	"encoding/json"

	xc "github.com/openweb3-io/txsigner/types"
	"github.com/pkg/errors"
)

const SerializedInputTypeKey = "blockchain"

// MarshalSigningInput tags the request with its driver so it can be decoded
// without knowing the chain up front.
func MarshalSigningInput(input xc.SigningInput) ([]byte, error) {
	data := map[string]interface{}{}
	inputBz, err := json.Marshal(input)
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal signing input")
	}
	if err := json.Unmarshal(inputBz, &data); err != nil {
		return nil, errors.Wrap(err, "signing input is not a json object")
	}
	// force union with type envelope
	data[SerializedInputTypeKey] = input.GetBlockchain()

	bz, _ := json.Marshal(data)
	return bz, nil
}

// NewSigningInput returns an empty request for the driver.
func NewSigningInput(blockchain xc.Blockchain) (xc.SigningInput, error) {
	creator, ok := creators.Get(blockchain)
	if !ok {
		return nil, xc.NewErr(xc.ErrUnsupportedBlockchain, "no signing input mapped for driver %q", blockchain)
	}
	b, err := creator()
	if err != nil {
		return nil, err
	}
	return b.NewSigningInput(), nil
}

func UnmarshalSigningInput(data []byte) (xc.SigningInput, error) {
	var env struct {
		Blockchain xc.Blockchain `json:"blockchain"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, xc.WrapErr(xc.ErrInvalidInput, err)
	}
	if env.Blockchain == "" {
		return nil, xc.NewErr(xc.ErrMissingField, "%s is required", SerializedInputTypeKey)
	}
	input, err := NewSigningInput(env.Blockchain)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, input); err != nil {
		return nil, xc.WrapErr(xc.ErrInvalidInput, err)
	}
	return input, nil
}

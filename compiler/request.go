package compiler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/openweb3-io/txsigner/builder"
	xc "github.com/openweb3-io/txsigner/types"
	"gopkg.in/yaml.v3"
)

// DecodeSigningInput reads a JSON or YAML request into the builder's input type.
// Unknown fields are rejected.
func DecodeSigningInput(b builder.TxBuilder, data []byte) (xc.SigningInput, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, xc.NewErr(xc.ErrMissingField, "empty request")
	}
	if !json.Valid(data) {
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, xc.NewErr(xc.ErrInvalidInput, "request is neither json nor yaml: %v", err)
		}
		doc, err := yamlValue(&node)
		if err != nil {
			return nil, xc.NewErr(xc.ErrInvalidInput, "could not convert yaml request: %v", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, xc.NewErr(xc.ErrInvalidInput, "could not convert yaml request: %v", err)
		}
		data = converted
	}

	input := b.NewSigningInput()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(input); err != nil {
		return nil, xc.NewErr(xc.ErrInvalidInput, "could not decode %s request: %v", b.Blockchain(), err)
	}
	return input, nil
}

// yamlValue converts a yaml tree for the json pass. Integers of any size are
// kept as decimal json numbers instead of being decoded into floats.
func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlValue(node.Content[0])
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			v, err := yamlValue(value)
			if err != nil {
				return nil, err
			}
			out[key.Value] = v
		}
		return out, nil
	}
	// plain integers past uint64 resolve as floats
	if tag := node.ShortTag(); tag == "!!int" || tag == "!!float" {
		if v, ok := new(big.Int).SetString(strings.ReplaceAll(node.Value, "_", ""), 0); ok {
			return json.Number(v.String()), nil
		}
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Output is the response envelope. Exactly one of the result fields or Error
// is set.
type Output struct {
	Encoded   hexutil.Bytes `json:"encoded,omitempty"`
	Signature hexutil.Bytes `json:"signature,omitempty"`
	JSON      string        `json:"json,omitempty"`
	PreImage  *xc.PreImage  `json:"preimage,omitempty"`
	Error     *xc.Error     `json:"error,omitempty"`
}

// NewOutput converts a result into an envelope. Errors without a kind are
// reported as internal errors.
func NewOutput(signed *xc.SignedTx, preImage *xc.PreImage, err error) *Output {
	if err != nil {
		var xcErr *xc.Error
		if !errors.As(err, &xcErr) {
			xcErr = xc.WrapErr(xc.ErrInternal, err)
		}
		return &Output{Error: xcErr}
	}
	out := &Output{PreImage: preImage}
	if signed != nil {
		out.Encoded = signed.Encoded
		out.Signature = hexutil.Bytes(signed.Signature)
		out.JSON = signed.JSON
	}
	return out
}

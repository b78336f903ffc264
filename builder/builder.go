package builder

import (
	"github.com/openweb3-io/txsigner/signer"
	"github.com/openweb3-io/txsigner/types"
)

//go:generate mockgen -destination=mock/builder.go -package=mock . TxBuilder

// TxBuilder maps a chain specific signing request to its canonical unsigned
// transaction. Build is a pure function of the request: building the same
// request twice yields identical bytes.
type TxBuilder interface {
	Blockchain() types.Blockchain
	// NewSigningInput returns an empty request of the chain's type to decode into.
	NewSigningInput() types.SigningInput
	Build(input types.SigningInput) (types.Tx, error)
	// NewLocalSigner returns a signer for the chain's key type.
	NewLocalSigner(privateKey []byte) (signer.Signer, error)
}

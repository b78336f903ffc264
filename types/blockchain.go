package types

type SignatureType string

const (
	K256Keccak = SignatureType("k256-keccak")
	K256Sha256 = SignatureType("k256-sha256")
	Ed255      = SignatureType("ed255")
)

// Blockchain is the driver of a chain
type Blockchain string

// List of supported Blockchain
const (
	BlockchainAion      = Blockchain("aion")
	BlockchainEVM       = Blockchain("evm")
	BlockchainFIO       = Blockchain("fio")
	BlockchainSubstrate = Blockchain("substrate")
)

var SupportedBlockchains = []Blockchain{
	BlockchainAion,
	BlockchainEVM,
	BlockchainFIO,
	BlockchainSubstrate,
}

func (blockchain Blockchain) SignatureAlgorithm() SignatureType {
	switch blockchain {
	case BlockchainEVM:
		return K256Keccak
	case BlockchainFIO:
		return K256Sha256
	case BlockchainAion, BlockchainSubstrate:
		return Ed255
	}
	return ""
}

type PublicKeyFormat string

const (
	Raw          PublicKeyFormat = "raw"
	Compressed   PublicKeyFormat = "compressed"
	Uncompressed PublicKeyFormat = "uncompressed"
)

func (blockchain Blockchain) PublicKeyFormat() PublicKeyFormat {
	switch blockchain {
	case BlockchainEVM:
		return Uncompressed
	case BlockchainFIO:
		return Compressed
	case BlockchainAion, BlockchainSubstrate:
		return Raw
	}
	return ""
}

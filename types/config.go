package types

import "fmt"

// ChainConfig describes one chain served by a Blockchain driver.
type ChainConfig struct {
	Chain      string     `yaml:"chain" mapstructure:"chain" json:"chain"`
	Blockchain Blockchain `yaml:"blockchain" mapstructure:"blockchain" json:"blockchain"`
	ChainName  string     `yaml:"chain_name,omitempty" mapstructure:"chain_name" json:"chain_name,omitempty"`
	// ChainID is the decimal EIP-155 id for evm chains, or the hex chain id for fio.
	ChainID string `yaml:"chain_id,omitempty" mapstructure:"chain_id" json:"chain_id,omitempty"`
	// Network is the SS58 prefix for substrate chains.
	Network  uint16 `yaml:"network,omitempty" mapstructure:"network" json:"network,omitempty"`
	Decimals int32  `yaml:"decimals,omitempty" mapstructure:"decimals" json:"decimals,omitempty"`
}

func (c *ChainConfig) String() string {
	return fmt.Sprintf("ChainConfig(chain=%s blockchain=%s chain_id=%s network=%d)", c.Chain, c.Blockchain, c.ChainID, c.Network)
}

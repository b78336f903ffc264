package chains

import (
	_ "embed"

	xc "github.com/openweb3-io/txsigner/types"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type chainsFile struct {
	Chains []*xc.ChainConfig `yaml:"chains"`
}

// Unmarshal reads a chains document.
func Unmarshal(data []byte) ([]*xc.ChainConfig, error) {
	var file chainsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "could not parse chains")
	}
	for i, chain := range file.Chains {
		if chain == nil || chain.Chain == "" || chain.Blockchain == "" {
			return nil, errors.Errorf("chain %d needs both chain and blockchain", i)
		}
	}
	return file.Chains, nil
}

func init() {
	var err error
	Default, err = Unmarshal(defaultData)
	if err != nil {
		panic(err)
	}
}

//go:embed chains.yaml
var defaultData []byte

var Default []*xc.ChainConfig

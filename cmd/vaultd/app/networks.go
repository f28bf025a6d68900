package app

import (
	"io/ioutil"
	"sort"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/x/vault"
	yaml "gopkg.in/yaml.v2"
)

// Network is a deployment profile. It carries the chain id and the
// parameters used to deploy the extensions at genesis.
type Network struct {
	ChainID string `yaml:"chain_id"`
	// MintFee is the price of one paid vault mint, in mock token units.
	MintFee uint64 `yaml:"mint_fee"`
	BaseURI string `yaml:"base_uri"`
	// InitialSupply is minted to the deployer.
	InitialSupply    uint64 `yaml:"initial_supply"`
	AllowlistEnabled bool   `yaml:"allowlist_enabled"`
}

// Validate returns an error if the profile cannot be deployed.
func (n Network) Validate() error {
	if !vaultchain.IsValidChainID(n.ChainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", n.ChainID)
	}
	if n.BaseURI == "" {
		return errors.Wrap(errors.ErrEmpty, "base uri")
	}
	return nil
}

// Networks maps profile names to their parameters.
type Networks map[string]Network

const initialSupply = 10000000000000000000

// DefaultNetworks returns the built in profiles.
func DefaultNetworks() Networks {
	return Networks{
		"hardhat": {
			ChainID:       "hardhat-1337",
			MintFee:       100,
			BaseURI:       vault.DefaultBaseURI,
			InitialSupply: initialSupply,
		},
		"mumbai": {
			ChainID:       "mumbai-80001",
			MintFee:       100,
			BaseURI:       vault.DefaultBaseURI,
			InitialSupply: initialSupply,
		},
		"matic": {
			ChainID:          "matic-137",
			MintFee:          100,
			BaseURI:          vault.DefaultBaseURI,
			InitialSupply:    initialSupply,
			AllowlistEnabled: true,
		},
	}
}

// LoadNetworks returns the built in profiles merged with the profiles of the
// YAML file at path. A profile in the file replaces the built in one with the
// same name. An empty path returns the built in profiles.
func LoadNetworks(path string) (Networks, error) {
	nets := DefaultNetworks()
	if path == "" {
		return nets, nil
	}
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Append(errors.Wrap(errors.ErrNotFound, "networks file"), errors.Wrap(err, "read"))
	}
	var custom Networks
	if err := yaml.Unmarshal(raw, &custom); err != nil {
		return nil, errors.Append(errors.Wrap(errors.ErrInput, "networks file"), errors.Wrap(err, "yaml"))
	}
	for name, n := range custom {
		if err := n.Validate(); err != nil {
			return nil, errors.Wrapf(err, "network %q", name)
		}
		nets[name] = n
	}
	return nets, nil
}

// Get returns the profile with the given name.
func (n Networks) Get(name string) (Network, error) {
	net, ok := n[name]
	if !ok {
		return Network{}, errors.Wrapf(errors.ErrNotFound, "network %q, known: %v", name, n.Names())
	}
	return net, nil
}

// Names returns the sorted profile names.
func (n Networks) Names() []string {
	names := make([]string, 0, len(n))
	for name := range n {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

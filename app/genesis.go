package app

import (
	"github.com/sscnft/vaultchain"
)

// ChainInitializers lets you initialize many extensions with one function.
// Initializers are called in the given order and the first failure aborts
// the genesis.
func ChainInitializers(inits ...vaultchain.Initializer) vaultchain.Initializer {
	return chainInitializer(inits)
}

type chainInitializer []vaultchain.Initializer

// FromGenesis passes the options to every initializer in the chain.
func (c chainInitializer) FromGenesis(opts vaultchain.Options, kv vaultchain.KVStore) error {
	for _, i := range c {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}

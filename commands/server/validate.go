package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/store"
)

// ValidateGenesis loads the app_state of each genesis file into a
// throwaway store and returns the first initialization failure.
func ValidateGenesis(ini vaultchain.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini vaultchain.Initializer, genesisPath string) error {
	b, err := ioutil.ReadFile(genesisPath)
	if err != nil {
		return errors.Wrapf(errors.ErrNotFound, "cannot read genesis file: %s", err)
	}

	var genesis struct {
		State vaultchain.Options `json:"app_state"`
	}
	if err := json.Unmarshal(b, &genesis); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot JSON deserialize genesis: %s", err)
	}

	// The result is discarded.
	db := store.MemStore()

	if err := ini.FromGenesis(genesis.State, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}

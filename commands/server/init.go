package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/sscnft/vaultchain/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	// AppStateKey is the key in the genesis file holding the application
	// state.
	AppStateKey = "app_state"
	// DirConfig is the subdirectory of the home directory with the
	// tendermint configuration.
	DirConfig = "config"
	// ChainIDKey is the key in the genesis file with the chain id.
	ChainIDKey = "chain_id"
	// GenesisTimeKey is the key in the genesis file with the chain start time.
	GenesisTimeKey = "genesis_time"
)

// AppGenesis is the application specific part of the genesis file.
type AppGenesis struct {
	// ChainID if set replaces the chain id generated by tendermint.
	ChainID string
	State   json.RawMessage
}

// GenOptions can parse command-line and flag to generate the app_state of
// the genesis file. This is application-specific.
type GenOptions func(args []string) (AppGenesis, error)

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

// GenesisPath returns the location of the genesis file in the tendermint
// home directory.
func GenesisPath(home string) string {
	return filepath.Join(home, DirConfig, "genesis.json")
}

// InitCmd adds the app_state generated by gen to the genesis file created by
// `tendermint init`. It refuses to overwrite an existing app_state.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	genFile := GenesisPath(home)
	if _, err := os.Stat(genFile); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(errors.ErrNotFound, "genesis file %q, run tendermint init first", genFile)
		}
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}

	doc, err := readGenesis(genFile)
	if err != nil {
		return err
	}
	if state, ok := doc[AppStateKey]; ok && len(state) > 0 && string(state) != "null" && string(state) != "{}" {
		return errors.Wrap(errors.ErrDuplicate, "app_state already set")
	}

	genesis, err := gen(args)
	if err != nil {
		return errors.Wrap(err, "generate app state")
	}
	doc[AppStateKey] = genesis.State
	if genesis.ChainID != "" {
		raw, err := json.Marshal(genesis.ChainID)
		if err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}
		doc[ChainIDKey] = raw
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := ioutil.WriteFile(genFile, out, 0600); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	logger.Info("App state written to genesis", "path", genFile, "chain_id", genesis.ChainID)
	return nil
}

func readGenesis(path string) (GenesisDoc, error) {
	bz, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "genesis file: %s", err)
	}
	return doc, nil
}

package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func tempHome(t *testing.T, genesis string) (string, func()) {
	t.Helper()
	home, err := ioutil.TempDir("", "vaultd")
	require.NoError(t, err)
	if genesis != "" {
		require.NoError(t, os.MkdirAll(filepath.Join(home, DirConfig), 0755))
		require.NoError(t, ioutil.WriteFile(GenesisPath(home), []byte(genesis), 0600))
	}
	return home, func() { os.RemoveAll(home) }
}

func staticOptions(raw string) GenOptions {
	return func(args []string) (AppGenesis, error) {
		return AppGenesis{State: json.RawMessage(raw)}, nil
	}
}

func TestInitCmd(t *testing.T) {
	logger := log.NewNopLogger()

	t.Run("writes app state", func(t *testing.T) {
		home, cleanup := tempHome(t, `{"chain_id": "test-chain", "genesis_time": "2021-07-01T00:00:00Z"}`)
		defer cleanup()

		require.NoError(t, InitCmd(staticOptions(`{"conf": {}}`), logger, home, nil))

		doc, err := readGenesis(GenesisPath(home))
		require.NoError(t, err)
		assert.JSONEq(t, `{"conf": {}}`, string(doc[AppStateKey]))
		assert.JSONEq(t, `"test-chain"`, string(doc["chain_id"]))
		assert.JSONEq(t, `"2021-07-01T00:00:00Z"`, string(doc[GenesisTimeKey]))

		err = InitCmd(staticOptions(`{"conf": {}}`), logger, home, nil)
		assert.True(t, errors.ErrDuplicate.Is(err))
	})

	t.Run("replaces the chain id", func(t *testing.T) {
		home, cleanup := tempHome(t, `{"chain_id": "test-chain-Xy12ab"}`)
		defer cleanup()

		gen := func(args []string) (AppGenesis, error) {
			return AppGenesis{ChainID: args[0], State: json.RawMessage(`{}`)}, nil
		}
		require.NoError(t, InitCmd(gen, logger, home, []string{"hardhat-1337"}))

		doc, err := readGenesis(GenesisPath(home))
		require.NoError(t, err)
		assert.JSONEq(t, `"hardhat-1337"`, string(doc[ChainIDKey]))
	})

	t.Run("requires tendermint genesis", func(t *testing.T) {
		home, cleanup := tempHome(t, "")
		defer cleanup()
		err := InitCmd(staticOptions(`{}`), logger, home, nil)
		assert.True(t, errors.ErrNotFound.Is(err))
	})

	t.Run("generator errors are returned", func(t *testing.T) {
		home, cleanup := tempHome(t, `{"chain_id": "test-chain"}`)
		defer cleanup()
		gen := func([]string) (AppGenesis, error) { return AppGenesis{}, errors.ErrInput }
		err := InitCmd(gen, logger, home, nil)
		assert.True(t, errors.ErrInput.Is(err))
	})
}

type keyInitializer struct{}

func (keyInitializer) FromGenesis(opts vaultchain.Options, db vaultchain.KVStore) error {
	var v string
	if err := opts.ReadOptions("key", &v); err != nil {
		return err
	}
	if v == "" {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	return nil
}

func TestValidateGenesis(t *testing.T) {
	good, cleanGood := tempHome(t, `{"app_state": {"key": "value"}}`)
	defer cleanGood()
	bad, cleanBad := tempHome(t, `{"app_state": {"key": 1}}`)
	defer cleanBad()
	empty, cleanEmpty := tempHome(t, `{"app_state": {}}`)
	defer cleanEmpty()

	assert.NoError(t, ValidateGenesis(keyInitializer{}, []string{GenesisPath(good)}))
	err := ValidateGenesis(keyInitializer{}, []string{GenesisPath(good), GenesisPath(bad)})
	assert.True(t, errors.ErrInput.Is(err))
	err = ValidateGenesis(keyInitializer{}, []string{GenesisPath(empty)})
	assert.True(t, errors.ErrEmpty.Is(err))
	err = ValidateGenesis(keyInitializer{}, []string{filepath.Join(good, "missing.json")})
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestParseFlags(t *testing.T) {
	addr, debug, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "tcp://localhost:26658", addr)
	assert.False(t, debug)

	addr, debug, err = parseFlags([]string{"-bind", "unix:///tmp/abci.sock", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, "unix:///tmp/abci.sock", addr)
	assert.True(t, debug)

	_, _, err = parseFlags([]string{"-unknown"})
	assert.Error(t, err)
}

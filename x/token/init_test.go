package token

import (
	"encoding/json"
	"testing"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/gconf"
	"github.com/sscnft/vaultchain/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	const genesis = `{
		"conf": {"token": {"name": "Mock Token", "symbol": "MOCK"}},
		"token": [
			{"address": "0000000000000000000000000000000000000001", "amount": 1000},
			{"address": "0000000000000000000000000000000000000002", "amount": 7}
		]
	}`
	var opts vaultchain.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	var ini Initializer
	require.NoError(t, ini.FromGenesis(opts, db))

	var conf Configuration
	require.NoError(t, gconf.Load(db, ConfigPkg, &conf))
	assert.Equal(t, "MOCK", conf.Symbol)
	assert.Empty(t, conf.Minter)

	ctrl := NewController()
	addr, err := vaultchain.ParseAddress("0000000000000000000000000000000000000001")
	require.NoError(t, err)
	got, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), got)
}

func TestGenesisRequiresConfiguration(t *testing.T) {
	var opts vaultchain.Options
	require.NoError(t, json.Unmarshal([]byte(`{"conf": {"token": {"name": "x", "symbol": "bad symbol"}}}`), &opts))
	var ini Initializer
	err := ini.FromGenesis(opts, store.MemStore())
	assert.True(t, errors.ErrInput.Is(err))

	err = ini.FromGenesis(vaultchain.Options{}, store.MemStore())
	assert.True(t, errors.ErrNotFound.Is(err))
}

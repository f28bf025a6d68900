package token

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/gconf"
)

// Initializer loads the token configuration and the initial balances from
// the genesis file.
type Initializer struct{}

var _ vaultchain.Initializer = (*Initializer)(nil)

// FromGenesis reads conf.token and the "token" list of balances:
//
//   "token": [{"address": "<addr>", "amount": 1000000}]
func (*Initializer) FromGenesis(opts vaultchain.Options, db vaultchain.KVStore) error {
	if err := gconf.InitConfig(db, opts, ConfigPkg, &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var balances []struct {
		Address vaultchain.Address `json:"address"`
		Amount  uint64             `json:"amount"`
	}
	if err := opts.ReadOptions("token", &balances); err != nil {
		return err
	}

	ctrl := NewController()
	for i, b := range balances {
		if err := ctrl.Mint(db, b.Address, b.Amount); err != nil {
			return errors.Wrapf(err, "balance #%d", i)
		}
	}
	return nil
}

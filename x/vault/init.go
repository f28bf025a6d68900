package vault

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/gconf"
)

// Initializer loads the vault configuration, the allow list and any
// premined tokens from the genesis file.
type Initializer struct{}

var _ vaultchain.Initializer = (*Initializer)(nil)

// FromGenesis reads conf.vault and the optional "vault" section:
//
//   "vault": {
//     "allowlist": ["<addr>", ...],
//     "tokens": [{"owner": "<addr>"}, ...]
//   }
//
// Tokens receive ids in the order they are listed, starting at 0.
func (*Initializer) FromGenesis(opts vaultchain.Options, db vaultchain.KVStore) error {
	if err := gconf.InitConfig(db, opts, ConfigPkg, &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var state struct {
		Allowlist []vaultchain.Address `json:"allowlist"`
		Tokens    []struct {
			Owner vaultchain.Address `json:"owner"`
		} `json:"tokens"`
	}
	if err := opts.ReadOptions("vault", &state); err != nil {
		return err
	}

	// Fees are never charged at genesis.
	ctrl := NewController(nil)
	for i, addr := range state.Allowlist {
		if err := addr.Validate(); err != nil {
			return errors.Wrapf(err, "allowlist #%d", i)
		}
		if err := ctrl.SetAllowlisted(db, addr, true); err != nil {
			return errors.Wrapf(err, "allowlist #%d", i)
		}
	}
	for i, t := range state.Tokens {
		if _, err := ctrl.Mint(db, t.Owner); err != nil {
			return errors.Wrapf(err, "token #%d", i)
		}
	}
	return nil
}

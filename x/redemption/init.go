package redemption

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/gconf"
)

// Initializer loads the registry configuration from conf.redemption.
type Initializer struct{}

var _ vaultchain.Initializer = (*Initializer)(nil)

func (*Initializer) FromGenesis(opts vaultchain.Options, db vaultchain.KVStore) error {
	if err := gconf.InitConfig(db, opts, ConfigPkg, &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}

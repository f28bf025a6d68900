package vault

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/gconf"
)

const (
	// ConfigPkg is the gconf key of the vault configuration.
	ConfigPkg = "vault"

	// DefaultBaseURI is used when the configuration does not set one.
	DefaultBaseURI = "ipfs://bafkreibrp53aqq6eltpjotm4spazvq42n555aqwtwck67monwzuogmyzya"
)

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	for i, r := range c.Redeemers {
		if err := r.Validate(); err != nil {
			errs = errors.Append(errs, errors.Field("Redeemers", err, "redeemer #%d", i))
		}
	}
	return errs
}

// IsRedeemer returns true if addr was pre-authorized as a redeemer.
func (c *Configuration) IsRedeemer(addr vaultchain.Address) bool {
	for _, r := range c.Redeemers {
		if r.Equals(addr) {
			return true
		}
	}
	return false
}

func (c *Configuration) baseURI() string {
	if c.BaseURI == "" {
		return DefaultBaseURI
	}
	return c.BaseURI
}

func loadConf(db vaultchain.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, ConfigPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

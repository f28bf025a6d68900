package redemption

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/gconf"
)

// ConfigPkg is the gconf key of the registry configuration.
const ConfigPkg = "redemption"

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	for i, o := range c.Offerers {
		if err := o.Validate(); err != nil {
			errs = errors.Append(errs, errors.Field("Offerers", err, "offerer #%d", i))
		}
	}
	return errs
}

// IsOfferer returns true if addr is an authorized offering principal.
func (c *Configuration) IsOfferer(addr vaultchain.Address) bool {
	for _, o := range c.Offerers {
		if o.Equals(addr) {
			return true
		}
	}
	return false
}

func (c *Configuration) setOfferer(addr vaultchain.Address, authorized bool) {
	offerers := c.Offerers[:0]
	for _, o := range c.Offerers {
		if !o.Equals(addr) {
			offerers = append(offerers, o)
		}
	}
	if authorized {
		offerers = append(offerers, addr)
	}
	c.Offerers = offerers
}

func loadConf(db vaultchain.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, ConfigPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

package token

import (
	"regexp"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/gconf"
)

// ConfigPkg is the gconf key of the token configuration.
const ConfigPkg = "token"

var isSymbol = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,7}$`).MatchString

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	if len(c.Minter) != 0 {
		errs = errors.AppendField(errs, "Minter", c.Minter.Validate())
	}
	if c.Name == "" {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	}
	if !isSymbol(c.Symbol) {
		errs = errors.Append(errs, errors.Field("Symbol", errors.ErrInput, "invalid symbol %q", c.Symbol))
	}
	return errs
}

func loadConf(db vaultchain.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, ConfigPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

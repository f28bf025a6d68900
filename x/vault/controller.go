package vault

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/orm"
)

// SettlementLedger is the part of the fungible token ledger used to charge
// mint fees.
type SettlementLedger interface {
	Allowance(db vaultchain.ReadOnlyKVStore, owner, spender vaultchain.Address) (uint64, error)
	TransferFrom(db vaultchain.KVStore, spender, from, to vaultchain.Address, amount uint64) error
}

// Controller is the vault token API. It is used by the handlers of this
// package and, as an ownership ledger, by the redemption extension.
type Controller interface {
	OwnerOf(db vaultchain.ReadOnlyKVStore, id uint64) (vaultchain.Address, error)
	TokenURI(db vaultchain.ReadOnlyKVStore, id uint64) (string, error)
	BaseURI(db vaultchain.ReadOnlyKVStore) (string, error)
	IsAllowlisted(db vaultchain.ReadOnlyKVStore, addr vaultchain.Address) (bool, error)
	CheckTokenApproval(db vaultchain.ReadOnlyKVStore, payer vaultchain.Address) (uint64, error)

	// Mint creates a new token without charging a fee and returns its id.
	Mint(db vaultchain.KVStore, to vaultchain.Address) (uint64, error)
	// MintPaid charges count times the mint fee from the payer and
	// mints count tokens to the recipient.
	MintPaid(db vaultchain.KVStore, payer, to vaultchain.Address, count uint64) ([]uint64, error)
	Burn(db vaultchain.KVStore, operator vaultchain.Address, id uint64) error
	Approve(db vaultchain.KVStore, operator vaultchain.Address, id uint64, spender vaultchain.Address) error
	TransferFrom(db vaultchain.KVStore, operator vaultchain.Address, id uint64, from, to vaultchain.Address) error
	SetAllowlisted(db vaultchain.KVStore, addr vaultchain.Address, allowed bool) error
}

// NewController returns a controller charging fees on the given ledger.
func NewController(settle SettlementLedger) Controller {
	return &controller{
		tokens:    NewTokenBucket(),
		allowlist: NewAllowlistBucket(),
		ids:       orm.NewSequence(tokenBucketName, "id"),
		settle:    settle,
	}
}

type controller struct {
	tokens    orm.ModelBucket
	allowlist orm.ModelBucket
	ids       orm.Sequence
	settle    SettlementLedger
}

func (c *controller) token(db vaultchain.ReadOnlyKVStore, id uint64) (*Token, error) {
	var t Token
	if err := c.tokens.One(db, TokenKey(id), &t); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "invalid token ID %d", id)
		}
		return nil, errors.Wrap(err, "token")
	}
	return &t, nil
}

func (c *controller) OwnerOf(db vaultchain.ReadOnlyKVStore, id uint64) (vaultchain.Address, error) {
	t, err := c.token(db, id)
	if err != nil {
		return nil, err
	}
	return t.Owner, nil
}

// TokenURI is the same for every token, the base URI.
func (c *controller) TokenURI(db vaultchain.ReadOnlyKVStore, id uint64) (string, error) {
	if _, err := c.token(db, id); err != nil {
		return "", err
	}
	return c.BaseURI(db)
}

func (c *controller) BaseURI(db vaultchain.ReadOnlyKVStore) (string, error) {
	conf, err := loadConf(db)
	if err != nil {
		return "", err
	}
	return conf.baseURI(), nil
}

func (c *controller) IsAllowlisted(db vaultchain.ReadOnlyKVStore, addr vaultchain.Address) (bool, error) {
	var e AllowlistEntry
	switch err := c.allowlist.One(db, addr, &e); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "allowlist")
	}
}

func (c *controller) CheckTokenApproval(db vaultchain.ReadOnlyKVStore, payer vaultchain.Address) (uint64, error) {
	return c.settle.Allowance(db, payer, FeeAccount)
}

func (c *controller) Mint(db vaultchain.KVStore, to vaultchain.Address) (uint64, error) {
	if err := to.Validate(); err != nil {
		return 0, errors.Wrap(err, "recipient")
	}
	n, err := c.ids.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "token id")
	}
	id := uint64(n - 1)
	if _, err := c.tokens.Put(db, TokenKey(id), &Token{Owner: to}); err != nil {
		return 0, errors.Wrap(err, "store token")
	}
	return id, nil
}

func (c *controller) MintPaid(db vaultchain.KVStore, payer, to vaultchain.Address, count uint64) ([]uint64, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if conf.AllowlistEnabled {
		ok, err := c.IsAllowlisted(db, payer)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not in the allow list", payer)
		}
	}
	fee, err := totalFee(conf.MintFee, count)
	if err != nil {
		return nil, err
	}
	if fee != 0 {
		if err := c.settle.TransferFrom(db, FeeAccount, payer, FeeAccount, fee); err != nil {
			return nil, errors.Wrap(err, "mint fee")
		}
	}

	ids := make([]uint64, 0, count)
	for i := uint64(0); i < count; i++ {
		id, err := c.Mint(db, to)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func totalFee(fee, count uint64) (uint64, error) {
	if fee == 0 || count == 0 {
		return 0, nil
	}
	total := fee * count
	if total/count != fee {
		return 0, errors.Wrap(errors.ErrOverflow, "mint fee")
	}
	return total, nil
}

func (c *controller) Burn(db vaultchain.KVStore, operator vaultchain.Address, id uint64) error {
	t, err := c.token(db, id)
	if err != nil {
		return err
	}
	if !t.IsOperator(operator) {
		return errors.Wrap(errors.ErrUnauthorized, "caller is not token owner or approved")
	}
	return c.tokens.Delete(db, TokenKey(id))
}

func (c *controller) Approve(db vaultchain.KVStore, operator vaultchain.Address, id uint64, spender vaultchain.Address) error {
	t, err := c.token(db, id)
	if err != nil {
		return err
	}
	if !t.Owner.Equals(operator) {
		return errors.Wrap(errors.ErrUnauthorized, "approve caller is not token owner")
	}
	if t.Owner.Equals(spender) {
		return errors.Wrap(errors.ErrInput, "approval to current owner")
	}
	t.Approved = spender
	_, err = c.tokens.Put(db, TokenKey(id), t)
	return err
}

// TransferFrom moves the token from its current owner to a new one. The
// operator must be the owner, the approved address or a pre-authorized
// redeemer. Any approval is cleared.
func (c *controller) TransferFrom(db vaultchain.KVStore, operator vaultchain.Address, id uint64, from, to vaultchain.Address) error {
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	t, err := c.token(db, id)
	if err != nil {
		return err
	}
	if !t.Owner.Equals(from) {
		return errors.Wrap(errors.ErrUnauthorized, "transfer from incorrect owner")
	}
	if !t.IsOperator(operator) {
		conf, err := loadConf(db)
		if err != nil {
			return err
		}
		if !conf.IsRedeemer(operator) {
			return errors.Wrap(errors.ErrUnauthorized, "caller is not token owner or approved")
		}
	}
	t.Owner = to
	t.Approved = nil
	_, err = c.tokens.Put(db, TokenKey(id), t)
	return err
}

func (c *controller) SetAllowlisted(db vaultchain.KVStore, addr vaultchain.Address, allowed bool) error {
	if !allowed {
		if err := c.allowlist.Delete(db, addr); err != nil && !errors.ErrNotFound.Is(err) {
			return err
		}
		return nil
	}
	_, err := c.allowlist.Put(db, addr, &AllowlistEntry{Address: addr})
	return err
}

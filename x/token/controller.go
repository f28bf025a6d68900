package token

import (
	"math"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/orm"
)

// Controller is the settlement ledger API used by the handlers of this
// package and by other extensions.
type Controller interface {
	Balance(db vaultchain.ReadOnlyKVStore, holder vaultchain.Address) (uint64, error)
	Allowance(db vaultchain.ReadOnlyKVStore, owner, spender vaultchain.Address) (uint64, error)
	Mint(db vaultchain.KVStore, to vaultchain.Address, amount uint64) error
	Transfer(db vaultchain.KVStore, from, to vaultchain.Address, amount uint64) error
	Approve(db vaultchain.KVStore, owner, spender vaultchain.Address, amount uint64) error
	TransferFrom(db vaultchain.KVStore, spender, from, to vaultchain.Address, amount uint64) error
}

// UnlimitedAllowance is never decreased by TransferFrom.
const UnlimitedAllowance = math.MaxUint64

// NewController returns the default ledger controller.
func NewController() Controller {
	return &controller{
		balances:   NewBalanceBucket(),
		allowances: NewAllowanceBucket(),
	}
}

type controller struct {
	balances   orm.ModelBucket
	allowances orm.ModelBucket
}

func (c *controller) Balance(db vaultchain.ReadOnlyKVStore, holder vaultchain.Address) (uint64, error) {
	var b Balance
	switch err := c.balances.One(db, holder, &b); {
	case err == nil:
		return b.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "balance")
	}
}

func (c *controller) Allowance(db vaultchain.ReadOnlyKVStore, owner, spender vaultchain.Address) (uint64, error) {
	var a Allowance
	switch err := c.allowances.One(db, allowanceKey(owner, spender), &a); {
	case err == nil:
		return a.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "allowance")
	}
}

func (c *controller) Mint(db vaultchain.KVStore, to vaultchain.Address, amount uint64) error {
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	return c.add(db, to, amount)
}

func (c *controller) Transfer(db vaultchain.KVStore, from, to vaultchain.Address, amount uint64) error {
	if err := from.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if err := c.sub(db, from, amount); err != nil {
		return err
	}
	return c.add(db, to, amount)
}

func (c *controller) Approve(db vaultchain.KVStore, owner, spender vaultchain.Address, amount uint64) error {
	if err := spender.Validate(); err != nil {
		return errors.Wrap(err, "spender")
	}
	key := allowanceKey(owner, spender)
	if amount == 0 {
		if err := c.allowances.Delete(db, key); err != nil && !errors.ErrNotFound.Is(err) {
			return err
		}
		return nil
	}
	_, err := c.allowances.Put(db, key, &Allowance{Amount: amount})
	return err
}

func (c *controller) TransferFrom(db vaultchain.KVStore, spender, from, to vaultchain.Address, amount uint64) error {
	allowed, err := c.Allowance(db, from, spender)
	if err != nil {
		return err
	}
	if allowed < amount {
		return errors.Wrapf(errors.ErrAmount, "insufficient allowance: %d < %d", allowed, amount)
	}
	if allowed != UnlimitedAllowance {
		if err := c.Approve(db, from, spender, allowed-amount); err != nil {
			return errors.Wrap(err, "spend allowance")
		}
	}
	return c.Transfer(db, from, to, amount)
}

func (c *controller) add(db vaultchain.KVStore, holder vaultchain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	have, err := c.Balance(db, holder)
	if err != nil {
		return err
	}
	if have+amount < have {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	_, err = c.balances.Put(db, holder, &Balance{Amount: have + amount})
	return err
}

func (c *controller) sub(db vaultchain.KVStore, holder vaultchain.Address, amount uint64) error {
	have, err := c.Balance(db, holder)
	if err != nil {
		return err
	}
	if have < amount {
		return errors.Wrapf(errors.ErrAmount, "insufficient balance: %d < %d", have, amount)
	}
	if have == amount {
		if have == 0 {
			return nil
		}
		return c.balances.Delete(db, holder)
	}
	_, err = c.balances.Put(db, holder, &Balance{Amount: have - amount})
	return err
}

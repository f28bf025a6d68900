package token

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/orm"
)

const (
	balanceBucketName   = "balance"
	allowanceBucketName = "allowance"
)

var _ orm.Model = (*Balance)(nil)

// Validate always passes, any amount is a valid balance.
func (b *Balance) Validate() error {
	return nil
}

var _ orm.Model = (*Allowance)(nil)

// Validate always passes, any amount is a valid allowance.
func (a *Allowance) Validate() error {
	return nil
}

// NewBalanceBucket returns a bucket storing balances under the holder
// address.
func NewBalanceBucket() orm.ModelBucket {
	return orm.NewModelBucket(balanceBucketName, &Balance{})
}

// NewAllowanceBucket returns a bucket storing allowances under the
// allowanceKey of owner and spender. Allowances are indexed by owner.
func NewAllowanceBucket() orm.ModelBucket {
	return orm.NewModelBucket(allowanceBucketName, &Allowance{},
		orm.WithIndex("owner", allowanceOwnerIndexer, false))
}

// allowanceKey is the owner address followed by the spender address.
func allowanceKey(owner, spender vaultchain.Address) []byte {
	key := make([]byte, 0, len(owner)+len(spender))
	key = append(key, owner...)
	return append(key, spender...)
}

func allowanceOwnerIndexer(obj orm.Object) ([]byte, error) {
	key := obj.Key()
	if len(key) != 2*vaultchain.AddressLength {
		return nil, errors.Wrapf(errors.ErrModel, "invalid allowance key %X", key)
	}
	return key[:vaultchain.AddressLength], nil
}

package vault

import (
	"encoding/binary"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/orm"
)

const (
	tokenBucketName     = "vault"
	allowlistBucketName = "allowlist"
)

// FeeAccount receives the mint fees. It is the spender that payers must
// approve in the settlement ledger.
var FeeAccount = vaultchain.NewCondition("vault", "fee", []byte("vault")).Address()

var _ orm.Model = (*Token)(nil)

func (t *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", t.Owner.Validate())
	if len(t.Approved) != 0 {
		errs = errors.AppendField(errs, "Approved", t.Approved.Validate())
	}
	return errs
}

// IsOperator returns true if addr may move or burn the token on its own
// behalf, that is, when it is the owner or the approved address.
func (t *Token) IsOperator(addr vaultchain.Address) bool {
	return t.Owner.Equals(addr) || (len(t.Approved) != 0 && t.Approved.Equals(addr))
}

var _ orm.Model = (*AllowlistEntry)(nil)

func (a *AllowlistEntry) Validate() error {
	return errors.AppendField(nil, "Address", a.Address.Validate())
}

// NewTokenBucket returns a bucket of tokens keyed by TokenKey and indexed by
// owner.
func NewTokenBucket() orm.ModelBucket {
	b := orm.NewModelBucket(tokenBucketName, &Token{},
		orm.WithIndex("owner", tokenOwnerIndexer, false))
	return b
}

func tokenOwnerIndexer(obj orm.Object) ([]byte, error) {
	t, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	return t.Owner, nil
}

// NewAllowlistBucket returns a bucket of allow listed addresses, keyed by
// the address itself.
func NewAllowlistBucket() orm.ModelBucket {
	return orm.NewModelBucket(allowlistBucketName, &AllowlistEntry{})
}

// TokenKey is the 8 byte big endian representation of a token id.
func TokenKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

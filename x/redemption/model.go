package redemption

import (
	"encoding/binary"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/orm"
)

const escrowBucketName = "escrow"

// RegistryAccount holds the escrowed vault tokens and pays redemptions.
var RegistryAccount = vaultchain.NewCondition("redeem", "escrow", []byte("registry")).Address()

var _ orm.Model = (*Escrow)(nil)

func (e *Escrow) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", e.Owner.Validate())
	if e.RedeemPeriod <= 0 {
		errs = errors.AppendField(errs, "RedeemPeriod", errors.ErrInput)
	}
	if err := e.CreatedAt.Validate(); err != nil {
		errs = errors.AppendField(errs, "CreatedAt", err)
	}
	switch e.State {
	case EscrowStateEscrowed:
		if e.Offer != nil {
			errs = errors.Append(errs, errors.Field("Offer", errors.ErrState, "escrowed record with an offer"))
		}
	case EscrowStateOffered:
		if e.Offer == nil {
			errs = errors.Append(errs, errors.Field("Offer", errors.ErrState, "offered record without an offer"))
		} else {
			errs = errors.AppendField(errs, "Offer", e.Offer.Validate())
		}
	default:
		errs = errors.Append(errs, errors.Field("State", errors.ErrState, "invalid state %s", e.State))
	}
	return errs
}

func (o *Offer) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Offerer", o.Offerer.Validate())
	if err := o.Expiry.Validate(); err != nil {
		errs = errors.AppendField(errs, "Expiry", err)
	}
	return errs
}

// Matches returns true if the price and expiry are the offered ones.
func (o *Offer) Matches(price uint64, expiry vaultchain.UnixTime) bool {
	return o.Price == price && o.Expiry == expiry
}

// NewEscrowBucket returns a bucket of escrow records keyed by AssetKey and
// indexed by owner.
func NewEscrowBucket() orm.ModelBucket {
	return orm.NewModelBucket(escrowBucketName, &Escrow{},
		orm.WithIndex("owner", escrowOwnerIndexer, false))
}

func escrowOwnerIndexer(obj orm.Object) ([]byte, error) {
	e, ok := obj.Value().(*Escrow)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	return e.Owner, nil
}

// AssetKey is the 8 byte big endian representation of a vault token id.
func AssetKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

package redemption

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/gconf"
	"github.com/sscnft/vaultchain/orm"
	"github.com/sscnft/vaultchain/x"
)

const (
	createEscrowCost int64 = 300
	offerEscrowCost  int64 = 50
	cancelEscrowCost int64 = 0
	redeemEscrowCost int64 = 0
	adminCost        int64 = 50
)

// OwnershipLedger tracks the custody of vault tokens.
type OwnershipLedger interface {
	OwnerOf(db vaultchain.ReadOnlyKVStore, id uint64) (vaultchain.Address, error)
	TransferFrom(db vaultchain.KVStore, operator vaultchain.Address, id uint64, from, to vaultchain.Address) error
}

// SettlementLedger pays redemptions.
type SettlementLedger interface {
	Transfer(db vaultchain.KVStore, from, to vaultchain.Address, amount uint64) error
}

// RegisterQuery will register escrows as "/escrows" with the
// "/escrows/owner" index.
func RegisterQuery(qr vaultchain.QueryRouter) {
	NewEscrowBucket().Register("escrows", qr)
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r vaultchain.Registry, auth x.Authenticator, owners OwnershipLedger, settle SettlementLedger) {
	bucket := NewEscrowBucket()
	r.Handle(&CreateEscrowMsg{}, &createEscrowHandler{auth: auth, bucket: bucket, owners: owners})
	r.Handle(&OfferEscrowMsg{}, &offerEscrowHandler{auth: auth, bucket: bucket})
	r.Handle(&CancelEscrowMsg{}, &cancelEscrowHandler{auth: auth, bucket: bucket, owners: owners})
	r.Handle(&RedeemEscrowMsg{}, &redeemEscrowHandler{auth: auth, bucket: bucket, owners: owners, settle: settle})
	r.Handle(&AuthorizeOffererMsg{}, &authorizeOffererHandler{auth: auth})
}

func signer(ctx vaultchain.Context, auth x.Authenticator) (vaultchain.Address, error) {
	cond := x.MainSigner(ctx, auth)
	if cond == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return cond.Address(), nil
}

// loadEscrow returns the active record of an asset or ErrNotFound.
func loadEscrow(db vaultchain.ReadOnlyKVStore, bucket orm.ModelBucket, assetID uint64) (*Escrow, error) {
	var e Escrow
	if err := bucket.One(db, AssetKey(assetID), &e); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "no escrow for asset %d", assetID)
		}
		return nil, errors.Wrap(err, "load escrow")
	}
	return &e, nil
}

type createEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	owners OwnershipLedger
}

var _ vaultchain.Handler = (*createEscrowHandler)(nil)

func (h *createEscrowHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultchain.CheckResult{GasAllocated: createEscrowCost}, nil
}

// Deliver moves the asset into the registry custody and opens the record.
func (h *createEscrowHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, ok := vaultchain.BlockTime(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "block time not present")
	}

	if err := h.owners.TransferFrom(db, RegistryAccount, msg.AssetID, owner, RegistryAccount); err != nil {
		return nil, errors.Wrap(err, "custody transfer")
	}
	escrow := &Escrow{
		Owner:        owner,
		RedeemPeriod: msg.RedeemPeriod,
		CreatedAt:    vaultchain.AsUnixTime(now),
		State:        EscrowStateEscrowed,
	}
	key, err := h.bucket.Put(db, AssetKey(msg.AssetID), escrow)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	return &vaultchain.DeliverResult{Data: key}, nil
}

func (h *createEscrowHandler) validate(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*CreateEscrowMsg, vaultchain.Address, error) {
	var msg CreateEscrowMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}

	switch err := h.bucket.Has(db, AssetKey(msg.AssetID)); {
	case err == nil:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "asset %d is already escrowed", msg.AssetID)
	case !errors.ErrNotFound.Is(err):
		return nil, nil, err
	}

	owner, err := h.owners.OwnerOf(db, msg.AssetID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "owner of")
	}
	if !owner.Equals(sender) {
		return nil, nil, errors.Wrapf(ErrNotOwner, "asset %d", msg.AssetID)
	}
	return &msg, sender, nil
}

type offerEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ vaultchain.Handler = (*offerEscrowHandler)(nil)

func (h *offerEscrowHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultchain.CheckResult{GasAllocated: offerEscrowCost}, nil
}

// Deliver attaches the offer to the record, replacing any previous one.
// Custody is not changed.
func (h *offerEscrowHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	msg, escrow, offerer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	escrow.Offer = &Offer{
		Price:   msg.Price,
		Expiry:  msg.Expiry,
		Offerer: offerer,
	}
	escrow.State = EscrowStateOffered
	key, err := h.bucket.Put(db, AssetKey(msg.AssetID), escrow)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	return &vaultchain.DeliverResult{Data: key}, nil
}

func (h *offerEscrowHandler) validate(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*OfferEscrowMsg, *Escrow, vaultchain.Address, error) {
	var msg OfferEscrowMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	escrow, err := loadEscrow(db, h.bucket, msg.AssetID)
	if err != nil {
		return nil, nil, nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if !conf.IsOfferer(sender) {
		return nil, nil, nil, errors.Wrap(ErrNotOwner, "sender is not an offerer")
	}
	if sender.Equals(escrow.Owner) {
		return nil, nil, nil, errors.Wrap(ErrNotOwner, "depositor cannot make an offer")
	}
	if vaultchain.IsExpired(ctx, msg.Expiry) {
		return nil, nil, nil, errors.Wrapf(errors.ErrExpired, "offer expiry %s", msg.Expiry)
	}
	return &msg, escrow, sender, nil
}

type cancelEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	owners OwnershipLedger
}

var _ vaultchain.Handler = (*cancelEscrowHandler)(nil)

func (h *cancelEscrowHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultchain.CheckResult{GasAllocated: cancelEscrowCost}, nil
}

// Deliver returns the asset to the depositor and clears the record. Any
// offer is dropped.
func (h *cancelEscrowHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.owners.TransferFrom(db, RegistryAccount, msg.AssetID, RegistryAccount, escrow.Owner); err != nil {
		return nil, errors.Wrap(err, "custody transfer")
	}
	if err := h.bucket.Delete(db, AssetKey(msg.AssetID)); err != nil {
		return nil, errors.Wrap(err, "cannot delete escrow")
	}
	return &vaultchain.DeliverResult{}, nil
}

func (h *cancelEscrowHandler) validate(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*CancelEscrowMsg, *Escrow, error) {
	var msg CancelEscrowMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, err := loadEscrow(db, h.bucket, msg.AssetID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, escrow.Owner) {
		return nil, nil, errors.Wrap(ErrNotOwner, "only the depositor can cancel")
	}
	return &msg, escrow, nil
}

type redeemEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	owners OwnershipLedger
	settle SettlementLedger
}

var _ vaultchain.Handler = (*redeemEscrowHandler)(nil)

func (h *redeemEscrowHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultchain.CheckResult{GasAllocated: redeemEscrowCost}, nil
}

// Deliver pays the offered price from the registry account to the
// depositor, hands the asset over to the offerer and clears the record.
func (h *redeemEscrowHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.settle.Transfer(db, RegistryAccount, escrow.Owner, escrow.Offer.Price); err != nil {
		return nil, errors.Wrap(err, "settlement")
	}
	if err := h.owners.TransferFrom(db, RegistryAccount, msg.AssetID, RegistryAccount, escrow.Offer.Offerer); err != nil {
		return nil, errors.Wrap(err, "custody transfer")
	}
	if err := h.bucket.Delete(db, AssetKey(msg.AssetID)); err != nil {
		return nil, errors.Wrap(err, "cannot delete escrow")
	}
	return &vaultchain.DeliverResult{}, nil
}

func (h *redeemEscrowHandler) validate(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*RedeemEscrowMsg, *Escrow, error) {
	var msg RedeemEscrowMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, err := loadEscrow(db, h.bucket, msg.AssetID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, escrow.Owner) {
		return nil, nil, errors.Wrap(ErrNotOwner, "only the depositor can redeem")
	}
	if escrow.State != EscrowStateOffered || escrow.Offer == nil {
		return nil, nil, errors.Wrapf(errors.ErrState, "escrow is %s", escrow.State)
	}
	if !escrow.Offer.Matches(msg.Price, msg.Expiry) {
		return nil, nil, errors.Wrapf(ErrTermMismatch, "offer is %d until %s", escrow.Offer.Price, escrow.Offer.Expiry)
	}
	if vaultchain.IsExpired(ctx, escrow.Offer.Expiry) {
		return nil, nil, errors.Wrapf(errors.ErrExpired, "offer expired at %s", escrow.Offer.Expiry)
	}
	return &msg, escrow, nil
}

type authorizeOffererHandler struct {
	auth x.Authenticator
}

var _ vaultchain.Handler = (*authorizeOffererHandler)(nil)

func (h *authorizeOffererHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultchain.CheckResult{GasAllocated: adminCost}, nil
}

func (h *authorizeOffererHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.setOfferer(msg.Offerer, msg.Authorized)
	if err := gconf.Save(db, ConfigPkg, conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	return &vaultchain.DeliverResult{}, nil
}

func (h *authorizeOffererHandler) validate(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*AuthorizeOffererMsg, *Configuration, error) {
	var msg AuthorizeOffererMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "registry owner signature required")
	}
	return &msg, conf, nil
}

package vault

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/gconf"
	"github.com/sscnft/vaultchain/x"
)

const (
	mintCost     int64 = 200
	transferCost int64 = 100
	adminCost    int64 = 50
)

// RegisterQuery registers tokens as "/vaults" (with the "/vaults/owner"
// index) and the allow list as "/allowlist".
func RegisterQuery(qr vaultchain.QueryRouter) {
	NewTokenBucket().Register("vaults", qr)
	NewAllowlistBucket().Register("allowlist", qr)
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r vaultchain.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&SafeMintMsg{}, &safeMintHandler{auth: auth, ctrl: ctrl})
	mint := &mintVaultHandler{auth: auth, ctrl: ctrl}
	r.Handle(&MintVaultMsg{}, mint)
	r.Handle(&BulkMintVaultMsg{}, mint)
	token := &tokenHandler{auth: auth, ctrl: ctrl}
	r.Handle(&BurnMsg{}, token)
	r.Handle(&TransferMsg{}, token)
	r.Handle(&ApproveMsg{}, token)
	admin := &adminHandler{auth: auth, ctrl: ctrl}
	r.Handle(&SetMintFeeMsg{}, admin)
	r.Handle(&SetAllowlistUserMsg{}, admin)
	r.Handle(&SetAllowlistEnabledMsg{}, admin)
	r.Handle(&PreAuthorizeRedeemerMsg{}, admin)
}

func signer(ctx vaultchain.Context, auth x.Authenticator) (vaultchain.Address, error) {
	cond := x.MainSigner(ctx, auth)
	if cond == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return cond.Address(), nil
}

// requireOwner fails unless the contract owner signed the transaction.
func requireOwner(ctx vaultchain.Context, auth x.Authenticator, conf *Configuration) error {
	if !auth.HasAddress(ctx, conf.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "caller is not the owner")
	}
	return nil
}

// loadMsg returns the validated message of a handler serving more than
// one message type.
func loadMsg(tx vaultchain.Tx) (vaultchain.Msg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}
	return msg, nil
}

func idsData(ids ...uint64) []byte {
	data := make([]byte, 0, 8*len(ids))
	for _, id := range ids {
		data = append(data, TokenKey(id)...)
	}
	return data
}

type safeMintHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vaultchain.Handler = (*safeMintHandler)(nil)

func (h *safeMintHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultchain.CheckResult{GasAllocated: mintCost}, nil
}

func (h *safeMintHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.Mint(db, msg.Recipient)
	if err != nil {
		return nil, err
	}
	return &vaultchain.DeliverResult{Data: idsData(id)}, nil
}

func (h *safeMintHandler) validate(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*SafeMintMsg, error) {
	var msg SafeMintMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(ctx, h.auth, conf); err != nil {
		return nil, err
	}
	return &msg, nil
}

// mintVaultHandler handles the paid MintVaultMsg and BulkMintVaultMsg.
type mintVaultHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vaultchain.Handler = (*mintVaultHandler)(nil)

type paidMint struct {
	payer vaultchain.Address
	to    vaultchain.Address
	count uint64
}

func (h *mintVaultHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	m, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if conf.AllowlistEnabled {
		ok, err := h.ctrl.IsAllowlisted(db, m.payer)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not in the allow list", m.payer)
		}
	}
	fee, err := totalFee(conf.MintFee, m.count)
	if err != nil {
		return nil, err
	}
	approved, err := h.ctrl.CheckTokenApproval(db, m.payer)
	if err != nil {
		return nil, err
	}
	if approved < fee {
		return nil, errors.Wrapf(errors.ErrAmount, "mint fee approval too low: %d < %d", approved, fee)
	}
	return &vaultchain.CheckResult{GasAllocated: mintCost * int64(m.count)}, nil
}

func (h *mintVaultHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	m, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	ids, err := h.ctrl.MintPaid(db, m.payer, m.to, m.count)
	if err != nil {
		return nil, err
	}
	return &vaultchain.DeliverResult{Data: idsData(ids...)}, nil
}

func (h *mintVaultHandler) validate(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*paidMint, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, err
	}

	var m paidMint
	switch msg := msg.(type) {
	case *MintVaultMsg:
		m = paidMint{payer: msg.Payer, to: msg.Recipient, count: 1}
	case *BulkMintVaultMsg:
		m = paidMint{payer: msg.Payer, to: msg.Recipient, count: msg.Count}
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unexpected %T message", msg)
	}

	// Payer defaults to the main signer. A different payer must sign too.
	if len(m.payer) == 0 {
		if m.payer, err = signer(ctx, h.auth); err != nil {
			return nil, err
		}
	} else if !h.auth.HasAddress(ctx, m.payer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "payer signature required")
	}
	return &m, nil
}

// tokenHandler handles the messages of a token holder: burn, transfer
// and approve.
type tokenHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vaultchain.Handler = (*tokenHandler)(nil)

func (h *tokenHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	if err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultchain.CheckResult{GasAllocated: transferCost}, nil
}

func (h *tokenHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	if err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultchain.DeliverResult{}, nil
}

// apply executes the message. Check runs it against the check state
// cache which is discarded at the end of a block.
func (h *tokenHandler) apply(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) error {
	msg, err := loadMsg(tx)
	if err != nil {
		return err
	}
	operator, err := signer(ctx, h.auth)
	if err != nil {
		return err
	}

	switch msg := msg.(type) {
	case *BurnMsg:
		return h.ctrl.Burn(db, operator, msg.TokenID)
	case *ApproveMsg:
		return h.ctrl.Approve(db, operator, msg.TokenID, msg.Spender)
	case *TransferMsg:
		owner, err := h.ctrl.OwnerOf(db, msg.TokenID)
		if err != nil {
			return err
		}
		return h.ctrl.TransferFrom(db, operator, msg.TokenID, owner, msg.Recipient)
	default:
		return errors.Wrapf(errors.ErrMsg, "unexpected %T message", msg)
	}
}

// adminHandler handles the configuration messages restricted to the
// contract owner.
type adminHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vaultchain.Handler = (*adminHandler)(nil)

func (h *adminHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultchain.CheckResult{GasAllocated: adminCost}, nil
}

func (h *adminHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	switch msg := msg.(type) {
	case *SetAllowlistUserMsg:
		if err := h.ctrl.SetAllowlisted(db, msg.User, msg.Allowed); err != nil {
			return nil, err
		}
		return &vaultchain.DeliverResult{}, nil
	case *SetMintFeeMsg:
		conf.MintFee = msg.MintFee
	case *SetAllowlistEnabledMsg:
		conf.AllowlistEnabled = msg.Enabled
	case *PreAuthorizeRedeemerMsg:
		if !conf.IsRedeemer(msg.Redeemer) {
			conf.Redeemers = append(conf.Redeemers, msg.Redeemer)
		}
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unexpected %T message", msg)
	}
	if err := gconf.Save(db, ConfigPkg, conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	return &vaultchain.DeliverResult{}, nil
}

func (h *adminHandler) validate(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (vaultchain.Msg, *Configuration, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if err := requireOwner(ctx, h.auth, conf); err != nil {
		return nil, nil, err
	}
	return msg, conf, nil
}

package token

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/x"
)

const (
	mintCost     int64 = 100
	transferCost int64 = 50
	approveCost  int64 = 50
)

// RegisterQuery registers balances as "/balances" and allowances as
// "/allowances".
func RegisterQuery(qr vaultchain.QueryRouter) {
	NewBalanceBucket().Register("balances", qr)
	NewAllowanceBucket().Register("allowances", qr)
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r vaultchain.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&MintMsg{}, &mintHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferMsg{}, &transferHandler{auth: auth, ctrl: ctrl})
	r.Handle(&ApproveMsg{}, &approveHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferFromMsg{}, &transferFromHandler{auth: auth, ctrl: ctrl})
}

// signer returns the address of the main signer or ErrUnauthorized.
func signer(ctx vaultchain.Context, auth x.Authenticator) (vaultchain.Address, error) {
	cond := x.MainSigner(ctx, auth)
	if cond == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return cond.Address(), nil
}

type mintHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vaultchain.Handler = (*mintHandler)(nil)

func (h *mintHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vaultchain.CheckResult{GasAllocated: mintCost}, nil
}

func (h *mintHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Mint(db, msg.Recipient, msg.Amount); err != nil {
		return nil, err
	}
	return &vaultchain.DeliverResult{}, nil
}

func (h *mintHandler) validate(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*MintMsg, error) {
	var msg MintMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if len(conf.Minter) != 0 && !h.auth.HasAddress(ctx, conf.Minter) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "minter signature required")
	}
	return &msg, nil
}

type transferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vaultchain.Handler = (*transferHandler)(nil)

func (h *transferHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	var msg TransferMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	from, err := signer(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	have, err := h.ctrl.Balance(db, from)
	if err != nil {
		return nil, err
	}
	if have < msg.Amount {
		return nil, errors.Wrapf(errors.ErrAmount, "insufficient balance: %d < %d", have, msg.Amount)
	}
	return &vaultchain.CheckResult{GasAllocated: transferCost}, nil
}

func (h *transferHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	var msg TransferMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	from, err := signer(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Transfer(db, from, msg.Recipient, msg.Amount); err != nil {
		return nil, err
	}
	return &vaultchain.DeliverResult{}, nil
}

type approveHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vaultchain.Handler = (*approveHandler)(nil)

func (h *approveHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	var msg ApproveMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := signer(ctx, h.auth); err != nil {
		return nil, err
	}
	return &vaultchain.CheckResult{GasAllocated: approveCost}, nil
}

func (h *approveHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	var msg ApproveMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	owner, err := signer(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Approve(db, owner, msg.Spender, msg.Amount); err != nil {
		return nil, err
	}
	return &vaultchain.DeliverResult{}, nil
}

type transferFromHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vaultchain.Handler = (*transferFromHandler)(nil)

func (h *transferFromHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	var msg TransferFromMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	spender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	allowed, err := h.ctrl.Allowance(db, msg.Owner, spender)
	if err != nil {
		return nil, err
	}
	if allowed < msg.Amount {
		return nil, errors.Wrapf(errors.ErrAmount, "insufficient allowance: %d < %d", allowed, msg.Amount)
	}
	return &vaultchain.CheckResult{GasAllocated: transferCost}, nil
}

func (h *transferFromHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	var msg TransferFromMsg
	if err := vaultchain.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	spender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.TransferFrom(db, spender, msg.Owner, msg.Recipient, msg.Amount); err != nil {
		return nil, err
	}
	return &vaultchain.DeliverResult{}, nil
}

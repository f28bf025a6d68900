package token

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
)

const (
	pathMintMsg         = "token/mint"
	pathTransferMsg     = "token/transfer"
	pathApproveMsg      = "token/approve"
	pathTransferFromMsg = "token/transfer_from"
)

var _ vaultchain.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return pathMintMsg
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrAmount)
	}
	return errs
}

var _ vaultchain.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return pathTransferMsg
}

func (m *TransferMsg) Validate() error {
	return errors.AppendField(nil, "Recipient", m.Recipient.Validate())
}

var _ vaultchain.Msg = (*ApproveMsg)(nil)

func (ApproveMsg) Path() string {
	return pathApproveMsg
}

func (m *ApproveMsg) Validate() error {
	return errors.AppendField(nil, "Spender", m.Spender.Validate())
}

var _ vaultchain.Msg = (*TransferFromMsg)(nil)

func (TransferFromMsg) Path() string {
	return pathTransferFromMsg
}

func (m *TransferFromMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	return errs
}

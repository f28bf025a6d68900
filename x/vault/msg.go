package vault

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
)

const (
	pathSafeMintMsg             = "vault/safe_mint"
	pathMintVaultMsg            = "vault/mint"
	pathBulkMintVaultMsg        = "vault/bulk_mint"
	pathBurnMsg                 = "vault/burn"
	pathTransferMsg             = "vault/transfer"
	pathApproveMsg              = "vault/approve"
	pathSetMintFeeMsg           = "vault/set_mint_fee"
	pathSetAllowlistUserMsg     = "vault/set_allowlist_user"
	pathSetAllowlistEnabledMsg  = "vault/set_allowlist_enabled"
	pathPreAuthorizeRedeemerMsg = "vault/preauthorize_redeemer"

	// maxBulkMint limits the number of tokens minted by one message.
	maxBulkMint = 100
)

var _ vaultchain.Msg = (*SafeMintMsg)(nil)

func (SafeMintMsg) Path() string {
	return pathSafeMintMsg
}

func (m *SafeMintMsg) Validate() error {
	return errors.AppendField(nil, "Recipient", m.Recipient.Validate())
}

var _ vaultchain.Msg = (*MintVaultMsg)(nil)

func (MintVaultMsg) Path() string {
	return pathMintVaultMsg
}

func (m *MintVaultMsg) Validate() error {
	var errs error
	if len(m.Payer) != 0 {
		errs = errors.AppendField(errs, "Payer", m.Payer.Validate())
	}
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	return errs
}

var _ vaultchain.Msg = (*BulkMintVaultMsg)(nil)

func (BulkMintVaultMsg) Path() string {
	return pathBulkMintVaultMsg
}

func (m *BulkMintVaultMsg) Validate() error {
	var errs error
	if len(m.Payer) != 0 {
		errs = errors.AppendField(errs, "Payer", m.Payer.Validate())
	}
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	if m.Count == 0 || m.Count > maxBulkMint {
		errs = errors.Append(errs, errors.Field("Count", errors.ErrInput, "must be between 1 and %d", maxBulkMint))
	}
	return errs
}

var _ vaultchain.Msg = (*BurnMsg)(nil)

func (BurnMsg) Path() string {
	return pathBurnMsg
}

func (m *BurnMsg) Validate() error {
	return nil
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
	if len(m.Spender) == 0 {
		return nil
	}
	return errors.AppendField(nil, "Spender", m.Spender.Validate())
}

var _ vaultchain.Msg = (*SetMintFeeMsg)(nil)

func (SetMintFeeMsg) Path() string {
	return pathSetMintFeeMsg
}

func (m *SetMintFeeMsg) Validate() error {
	return nil
}

var _ vaultchain.Msg = (*SetAllowlistUserMsg)(nil)

func (SetAllowlistUserMsg) Path() string {
	return pathSetAllowlistUserMsg
}

func (m *SetAllowlistUserMsg) Validate() error {
	return errors.AppendField(nil, "User", m.User.Validate())
}

var _ vaultchain.Msg = (*SetAllowlistEnabledMsg)(nil)

func (SetAllowlistEnabledMsg) Path() string {
	return pathSetAllowlistEnabledMsg
}

func (m *SetAllowlistEnabledMsg) Validate() error {
	return nil
}

var _ vaultchain.Msg = (*PreAuthorizeRedeemerMsg)(nil)

func (PreAuthorizeRedeemerMsg) Path() string {
	return pathPreAuthorizeRedeemerMsg
}

func (m *PreAuthorizeRedeemerMsg) Validate() error {
	return errors.AppendField(nil, "Redeemer", m.Redeemer.Validate())
}

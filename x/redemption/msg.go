package redemption

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
)

const (
	pathCreateEscrowMsg     = "redemption/create"
	pathOfferEscrowMsg      = "redemption/offer"
	pathCancelEscrowMsg     = "redemption/cancel"
	pathRedeemEscrowMsg     = "redemption/redeem"
	pathAuthorizeOffererMsg = "redemption/authorize_offerer"
)

var _ vaultchain.Msg = (*CreateEscrowMsg)(nil)

func (CreateEscrowMsg) Path() string {
	return pathCreateEscrowMsg
}

func (m *CreateEscrowMsg) Validate() error {
	if m.RedeemPeriod <= 0 {
		return errors.Field("RedeemPeriod", errors.ErrInput, "must be positive")
	}
	return nil
}

var _ vaultchain.Msg = (*OfferEscrowMsg)(nil)

func (OfferEscrowMsg) Path() string {
	return pathOfferEscrowMsg
}

func (m *OfferEscrowMsg) Validate() error {
	if m.Expiry == 0 {
		return errors.Field("Expiry", errors.ErrEmpty, "required")
	}
	return errors.AppendField(nil, "Expiry", m.Expiry.Validate())
}

var _ vaultchain.Msg = (*CancelEscrowMsg)(nil)

func (CancelEscrowMsg) Path() string {
	return pathCancelEscrowMsg
}

func (m *CancelEscrowMsg) Validate() error {
	return nil
}

var _ vaultchain.Msg = (*RedeemEscrowMsg)(nil)

func (RedeemEscrowMsg) Path() string {
	return pathRedeemEscrowMsg
}

func (m *RedeemEscrowMsg) Validate() error {
	return errors.AppendField(nil, "Expiry", m.Expiry.Validate())
}

var _ vaultchain.Msg = (*AuthorizeOffererMsg)(nil)

func (AuthorizeOffererMsg) Path() string {
	return pathAuthorizeOffererMsg
}

func (m *AuthorizeOffererMsg) Validate() error {
	return errors.AppendField(nil, "Offerer", m.Offerer.Validate())
}

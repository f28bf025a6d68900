package redemption

import (
	"github.com/sscnft/vaultchain/errors"
)

var (
	// ErrNotOwner is returned when the sender does not hold the role
	// required by the operation: token owner, escrow depositor or
	// offerer.
	ErrNotOwner = errors.Register(1030, "sender is not owner")

	// ErrTermMismatch is returned when redemption terms differ from the
	// current offer.
	ErrTermMismatch = errors.Register(1031, "redemption terms mismatch")
)

package weavetest

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/crypto"
)

// NewKey returns a new random ed25519 signer.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a new random key.
func NewCondition() vaultchain.Condition {
	return NewKey().PublicKey().Condition()
}

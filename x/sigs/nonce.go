package sigs

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
)

// NextNonce returns the next numeric nonce value that should be used during a
// transaction signing.
// In practice you always want to acquire a nonce for the signer:
//   address := <crypto.Signer>.PublicKey().Address()
func NextNonce(db vaultchain.ReadOnlyKVStore, signer vaultchain.Address) (int64, error) {
	obj, err := NewBucket().Get(db, signer)
	if err != nil {
		return 0, errors.Wrap(err, "bucket get")
	}
	if u := AsUser(obj); u != nil {
		return u.Sequence, nil
	}
	// If not yet present, nonce counting starts with zero.
	return 0, nil
}

package sigs

import (
	"context"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx vaultchain.Context, signers []vaultchain.Condition) vaultchain.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate reveals the conditions of all valid signatures of the
// current transaction.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns who signed the current Context.
// May be empty
func (a Authenticate) GetConditions(ctx vaultchain.Context) []vaultchain.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]vaultchain.Condition)
	return val
}

// HasAddress returns true if the given address signed the current Context.
func (a Authenticate) HasAddress(ctx vaultchain.Context, addr vaultchain.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

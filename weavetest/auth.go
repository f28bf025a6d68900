package weavetest

import (
	"context"
	"fmt"

	"github.com/sscnft/vaultchain"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
// Signer and Signers are both considered each time.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer vaultchain.Condition

	// Signers represents an authentication of multiple signers.
	Signers []vaultchain.Condition
}

func (a *Auth) GetConditions(vaultchain.Context) []vaultchain.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx vaultchain.Context, addr vaultchain.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer.Address())
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetConditions(ctx vaultchain.Context, permissions ...vaultchain.Condition) vaultchain.Context {
	return context.WithValue(ctx, a.Key, permissions)
}

func (a *CtxAuth) GetConditions(ctx vaultchain.Context) []vaultchain.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]vaultchain.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []vaultchain.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx vaultchain.Context, addr vaultchain.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

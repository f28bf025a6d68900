package x

import (
	"context"
	"testing"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/weavetest"
	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	depositor := weavetest.NewCondition()
	offerer := weavetest.NewCondition()
	// Accounts derived from a condition can own assets but never sign.
	custody := vaultchain.NewCondition("redeem", "escrow", []byte("registry"))

	sigs := &weavetest.CtxAuth{Key: "sigs"}
	other := &weavetest.CtxAuth{Key: "other"}

	cases := map[string]struct {
		ctx        vaultchain.Context
		auth       Authenticator
		wantMain   vaultchain.Condition
		wantSigned []vaultchain.Condition
		notSigned  vaultchain.Condition
	}{
		"nothing signed": {
			ctx:       context.Background(),
			auth:      &weavetest.Auth{},
			notSigned: depositor,
		},
		"depositor signs an escrow": {
			ctx:        context.Background(),
			auth:       &weavetest.Auth{Signer: depositor},
			wantMain:   depositor,
			wantSigned: []vaultchain.Condition{depositor},
			notSigned:  custody,
		},
		"offerer first in a chained authenticator": {
			ctx: context.Background(),
			auth: ChainAuth(
				&weavetest.Auth{Signer: offerer},
				&weavetest.Auth{Signer: depositor}),
			wantMain:   offerer,
			wantSigned: []vaultchain.Condition{offerer, depositor},
			notSigned:  custody,
		},
		"signatures read from the context": {
			ctx:        sigs.SetConditions(context.Background(), depositor, offerer),
			auth:       sigs,
			wantMain:   depositor,
			wantSigned: []vaultchain.Condition{depositor, offerer},
			notSigned:  custody,
		},
		"context key of another authenticator": {
			ctx:       sigs.SetConditions(context.Background(), depositor),
			auth:      other,
			notSigned: depositor,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantMain, MainSigner(tc.ctx, tc.auth))

			all := tc.auth.GetConditions(tc.ctx)
			assert.Equal(t, tc.wantSigned, all)
			assert.False(t, tc.auth.HasAddress(tc.ctx, tc.notSigned.Address()))

			addrs := GetAddresses(tc.ctx, tc.auth)
			assert.Len(t, addrs, len(all))
			for i, c := range all {
				assert.Equal(t, c.Address(), addrs[i])
				assert.True(t, tc.auth.HasAddress(tc.ctx, c.Address()))
			}

			assert.True(t, HasAllConditions(tc.ctx, tc.auth, all))
			assert.False(t, HasAllConditions(tc.ctx, tc.auth, append(all, tc.notSigned)))
			assert.True(t, HasAllAddresses(tc.ctx, tc.auth, addrs))
			assert.False(t, HasAllAddresses(tc.ctx, tc.auth, append(addrs, tc.notSigned.Address())))

			if n := len(all); n > 0 {
				assert.True(t, HasNConditions(tc.ctx, tc.auth, all, n-1))
				assert.False(t, HasNConditions(tc.ctx, tc.auth, all, n+1))
				assert.True(t, HasNAddresses(tc.ctx, tc.auth, append(addrs, tc.notSigned.Address()), n))
				assert.False(t, HasNAddresses(tc.ctx, tc.auth, addrs, n+1))
			}
		})
	}
}

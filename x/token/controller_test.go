package token

import (
	"math"
	"testing"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/store"
	"github.com/sscnft/vaultchain/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerTransfer(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	require.NoError(t, ctrl.Mint(db, alice, 1000))
	require.NoError(t, ctrl.Transfer(db, alice, bob, 400))

	assertBalance(t, db, ctrl, alice, 600)
	assertBalance(t, db, ctrl, bob, 400)

	err := ctrl.Transfer(db, bob, alice, 401)
	assert.True(t, errors.ErrAmount.Is(err))
	assertBalance(t, db, ctrl, bob, 400)

	// emptying an account removes it
	require.NoError(t, ctrl.Transfer(db, bob, alice, 400))
	assertBalance(t, db, ctrl, bob, 0)
	assert.True(t, errors.ErrNotFound.Is(NewBalanceBucket().Has(db, bob)))

	err = ctrl.Transfer(db, alice, nil, 1)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestControllerMintOverflow(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	alice := weavetest.NewCondition().Address()

	require.NoError(t, ctrl.Mint(db, alice, math.MaxUint64-1))
	require.NoError(t, ctrl.Mint(db, alice, 1))
	err := ctrl.Mint(db, alice, 1)
	assert.True(t, errors.ErrOverflow.Is(err))
	assertBalance(t, db, ctrl, alice, math.MaxUint64)
}

func TestControllerAllowance(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	owner := weavetest.NewCondition().Address()
	spender := weavetest.NewCondition().Address()
	recipient := weavetest.NewCondition().Address()

	require.NoError(t, ctrl.Mint(db, owner, 100))

	err := ctrl.TransferFrom(db, spender, owner, recipient, 1)
	assert.True(t, errors.ErrAmount.Is(err))

	require.NoError(t, ctrl.Approve(db, owner, spender, 30))
	require.NoError(t, ctrl.TransferFrom(db, spender, owner, recipient, 20))
	allowed, err := ctrl.Allowance(db, owner, spender)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), allowed)
	assertBalance(t, db, ctrl, owner, 80)
	assertBalance(t, db, ctrl, recipient, 20)

	err = ctrl.TransferFrom(db, spender, owner, recipient, 11)
	assert.True(t, errors.ErrAmount.Is(err))

	// unlimited allowance is never spent
	require.NoError(t, ctrl.Approve(db, owner, spender, UnlimitedAllowance))
	require.NoError(t, ctrl.TransferFrom(db, spender, owner, recipient, 50))
	allowed, err = ctrl.Allowance(db, owner, spender)
	require.NoError(t, err)
	assert.Equal(t, uint64(UnlimitedAllowance), allowed)

	// allowance does not cover missing funds
	err = ctrl.TransferFrom(db, spender, owner, recipient, 31)
	assert.True(t, errors.ErrAmount.Is(err))

	require.NoError(t, ctrl.Approve(db, owner, spender, 0))
	allowed, err = ctrl.Allowance(db, owner, spender)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), allowed)
}

func assertBalance(t testing.TB, db vaultchain.ReadOnlyKVStore, ctrl Controller, addr vaultchain.Address, want uint64) {
	t.Helper()
	got, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

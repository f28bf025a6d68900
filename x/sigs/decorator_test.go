package sigs

import (
	"context"
	"testing"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/crypto"
	"github.com/sscnft/vaultchain/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorator(t *testing.T) {
	kv := store.MemStore()
	checkKv := kv.CacheWrap()
	signers := new(SigCheckHandler)
	d := NewDecorator()
	chainID := "deco-rate"
	ctx := vaultchain.WithChainID(context.Background(), chainID)

	priv := crypto.GenPrivKeyEd25519()
	perms := []vaultchain.Condition{priv.PublicKey().Condition()}

	tx := NewStdTx([]byte("art"))
	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	deliver := func(dec vaultchain.Decorator, my vaultchain.Tx) error {
		_, err := dec.Deliver(ctx, kv, my, signers)
		return err
	}
	check := func(dec vaultchain.Decorator, my vaultchain.Tx) error {
		_, err := dec.Check(ctx, checkKv, my, signers)
		return err
	}

	for i, fn := range []func(vaultchain.Decorator, vaultchain.Tx) error{check, deliver} {
		tx.Signatures = nil
		assert.Error(t, fn(d, tx), "%d", i)

		tx.Signatures = []*StdSignature{sig}
		assert.NoError(t, fn(d, tx), "%d", i)
		assert.Equal(t, perms, signers.Signers)

		// replay
		assert.Error(t, fn(d, tx), "%d", i)

		ad := d.AllowMissingSigs()
		tx.Signatures = nil
		assert.NoError(t, fn(ad, tx), "%d", i)
		assert.Equal(t, []vaultchain.Condition{}, signers.Signers)

		tx.Signatures = []*StdSignature{sig1}
		assert.NoError(t, fn(ad, tx), "%d", i)
		assert.Equal(t, perms, signers.Signers)
	}
}

func TestDecoratorChargesGas(t *testing.T) {
	kv := store.MemStore()
	chainID := "gas-charged"
	ctx := vaultchain.WithChainID(context.Background(), chainID)

	priv := crypto.GenPrivKeyEd25519()
	tx := NewStdTx([]byte("gas"))
	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*StdSignature{sig}

	res, err := NewDecorator().Check(ctx, kv, tx, new(SigCheckHandler))
	require.NoError(t, err)
	assert.Equal(t, int64(signatureVerifyCost), res.GasAllocated)
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []vaultchain.Condition
}

var _ vaultchain.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx vaultchain.Context, store vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vaultchain.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx vaultchain.Context, store vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vaultchain.DeliverResult{}, nil
}

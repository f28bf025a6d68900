package app

import (
	"context"
	"testing"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/store"
	"github.com/sscnft/vaultchain/weavetest"
	"github.com/sscnft/vaultchain/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	d1 := &weavetest.Decorator{}
	d2 := &weavetest.Decorator{}
	h := &weavetest.Handler{}

	stack := ChainDecorators(
		d1,
		nil,
		utils.NewLogging(),
		utils.NewRecovery(),
		d2,
	).WithHandler(h)

	ctx := context.Background()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "vault/test"}}

	_, err := stack.Check(ctx, store.MemStore(), tx)
	require.NoError(t, err)
	_, err = stack.Deliver(ctx, store.MemStore(), tx)
	require.NoError(t, err)

	assert.Equal(t, 2, d1.CallCount())
	assert.Equal(t, 2, d2.CallCount())
	assert.Equal(t, 2, h.CallCount())
	assert.Equal(t, []string{"vault/test", "vault/test"}, d2.Paths())

	// a failing decorator stops the chain
	d1.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(ctx, store.MemStore(), tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 2, d2.CallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestChainRecoversPanic(t *testing.T) {
	stack := ChainDecorators(
		utils.NewRecovery(),
	).WithHandler(weavetest.PanicHandler{Err: errors.ErrDatabase})

	ctx := vaultchain.WithHeight(context.Background(), 8)
	_, err := stack.Deliver(ctx, store.MemStore(), &weavetest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err))
}

func TestChainInitializers(t *testing.T) {
	var calls []string
	init := ChainInitializers(
		initFunc(func(vaultchain.Options, vaultchain.KVStore) error {
			calls = append(calls, "first")
			return nil
		}),
		initFunc(func(vaultchain.Options, vaultchain.KVStore) error {
			calls = append(calls, "second")
			return errors.ErrInput
		}),
		initFunc(func(vaultchain.Options, vaultchain.KVStore) error {
			calls = append(calls, "third")
			return nil
		}),
	)
	err := init.FromGenesis(vaultchain.Options{}, store.MemStore())
	assert.True(t, errors.ErrInput.Is(err))
	assert.Equal(t, []string{"first", "second"}, calls)
}

type initFunc func(vaultchain.Options, vaultchain.KVStore) error

func (fn initFunc) FromGenesis(opts vaultchain.Options, db vaultchain.KVStore) error {
	return fn(opts, db)
}

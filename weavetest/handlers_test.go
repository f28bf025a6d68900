package weavetest

import (
	"testing"

	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerWithError(t *testing.T) {
	h := Handler{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrNotFound,
	}

	_, err := h.Check(nil, nil, nil)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	_, err = h.Deliver(nil, nil, nil)
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, h.CallCount())
}

func TestHandlerCallCount(t *testing.T) {
	var h Handler

	_, _ = h.Check(nil, nil, nil)
	_, _ = h.Check(nil, nil, nil)
	_, _ = h.Deliver(nil, nil, nil)

	assert.Equal(t, 2, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
	assert.Equal(t, 3, h.CallCount())
}

func TestWriteHandler(t *testing.T) {
	db := store.MemStore()
	h := WriteHandler{Key: []byte("k"), Value: []byte("v"), Err: errors.ErrState}

	_, err := h.Deliver(nil, db, nil)
	assert.True(t, errors.ErrState.Is(err))
	got, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestDecorateCounts(t *testing.T) {
	var (
		h Handler
		d Decorator
	)
	hn := Decorate(&h, &d)

	_, err := hn.Check(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, d.CheckCallCount())
	assert.Equal(t, 1, h.CheckCallCount())

	d.DeliverErr = errors.ErrUnauthorized
	_, err = hn.Deliver(nil, nil, nil)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 1, d.DeliverCallCount())
	assert.Equal(t, 0, h.DeliverCallCount())
}

func TestDecoratorRecordsPaths(t *testing.T) {
	var (
		h Handler
		d Decorator
	)
	hn := Decorate(&h, &d)

	escrow := &Tx{Msg: &Msg{RoutePath: "redemption/create"}}
	redeem := &Tx{Msg: &Msg{RoutePath: "redemption/redeem"}}
	broken := &Tx{Err: errors.ErrInput}

	_, err := hn.Check(nil, nil, escrow)
	require.NoError(t, err)
	_, err = hn.Deliver(nil, nil, redeem)
	require.NoError(t, err)
	_, err = hn.Deliver(nil, nil, broken)
	require.NoError(t, err)

	assert.Equal(t, []string{"redemption/create", "redemption/redeem", ""}, d.Paths())
	assert.Equal(t, 3, d.CallCount())
}

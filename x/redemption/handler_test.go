package redemption

import (
	"context"
	"testing"
	"time"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/gconf"
	"github.com/sscnft/vaultchain/store"
	"github.com/sscnft/vaultchain/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	assetID       uint64 = 0
	registryFunds uint64 = 1000
)

var now = time.Unix(1000, 0)

// fakeLedger is an in memory ownership and settlement ledger. It does not
// check operators.
type fakeLedger struct {
	owners   map[uint64]vaultchain.Address
	balances map[string]uint64
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		owners:   make(map[uint64]vaultchain.Address),
		balances: make(map[string]uint64),
	}
}

func (l *fakeLedger) OwnerOf(db vaultchain.ReadOnlyKVStore, id uint64) (vaultchain.Address, error) {
	owner, ok := l.owners[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "invalid token ID %d", id)
	}
	return owner, nil
}

func (l *fakeLedger) TransferFrom(db vaultchain.KVStore, operator vaultchain.Address, id uint64, from, to vaultchain.Address) error {
	if !l.owners[id].Equals(from) {
		return errors.Wrap(errors.ErrUnauthorized, "transfer from incorrect owner")
	}
	l.owners[id] = to
	return nil
}

func (l *fakeLedger) Transfer(db vaultchain.KVStore, from, to vaultchain.Address, amount uint64) error {
	if l.balances[from.String()] < amount {
		return errors.Wrap(errors.ErrAmount, "insufficient balance")
	}
	l.balances[from.String()] -= amount
	l.balances[to.String()] += amount
	return nil
}

type env struct {
	db        store.CacheableKVStore
	ledger    *fakeLedger
	admin     vaultchain.Condition
	depositor vaultchain.Condition
	offerer   vaultchain.Condition
	stranger  vaultchain.Condition
}

func newEnv(t testing.TB) *env {
	t.Helper()
	e := &env{
		db:        store.MemStore(),
		ledger:    newFakeLedger(),
		admin:     weavetest.NewCondition(),
		depositor: weavetest.NewCondition(),
		offerer:   weavetest.NewCondition(),
		stranger:  weavetest.NewCondition(),
	}
	e.ledger.owners[assetID] = e.depositor.Address()
	e.ledger.balances[RegistryAccount.String()] = registryFunds
	require.NoError(t, gconf.Save(e.db, ConfigPkg, &Configuration{
		Owner:    e.admin.Address(),
		Offerers: []vaultchain.Address{e.offerer.Address()},
	}))
	return e
}

// escrow deposits the asset as the create handler would.
func (e *env) escrow(t testing.TB) {
	t.Helper()
	e.ledger.owners[assetID] = RegistryAccount
	_, err := NewEscrowBucket().Put(e.db, AssetKey(assetID), &Escrow{
		Owner:        e.depositor.Address(),
		RedeemPeriod: 7,
		CreatedAt:    vaultchain.AsUnixTime(now),
		State:        EscrowStateEscrowed,
	})
	require.NoError(t, err)
}

func (e *env) offer(t testing.TB, price uint64, expiry vaultchain.UnixTime) {
	t.Helper()
	e.escrow(t)
	_, err := NewEscrowBucket().Put(e.db, AssetKey(assetID), &Escrow{
		Owner:        e.depositor.Address(),
		RedeemPeriod: 7,
		CreatedAt:    vaultchain.AsUnixTime(now),
		State:        EscrowStateOffered,
		Offer:        &Offer{Price: price, Expiry: expiry, Offerer: e.offerer.Address()},
	})
	require.NoError(t, err)
}

func TestHandlers(t *testing.T) {
	farFuture := vaultchain.UnixTime(1000000000000)

	cases := map[string]struct {
		prepare        func(t *testing.T, e *env)
		signer         func(e *env) vaultchain.Condition
		msg            vaultchain.Msg
		blockTime      time.Time
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		// wantCustody returns the expected owner of the asset after
		// the message was delivered.
		wantCustody func(e *env) vaultchain.Address
		wantState   EscrowState
	}{
		"owner deposits asset": {
			signer:      depositorOf,
			msg:         &CreateEscrowMsg{AssetID: assetID, RedeemPeriod: 7},
			wantCustody: registryOf,
			wantState:   EscrowStateEscrowed,
		},
		"non owner cannot deposit": {
			signer:         strangerOf,
			msg:            &CreateEscrowMsg{AssetID: assetID, RedeemPeriod: 7},
			wantCheckErr:   ErrNotOwner,
			wantDeliverErr: ErrNotOwner,
			wantCustody:    depositorAddr,
		},
		"unknown asset": {
			signer:         depositorOf,
			msg:            &CreateEscrowMsg{AssetID: 42, RedeemPeriod: 7},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
			wantCustody:    depositorAddr,
		},
		"asset escrowed twice": {
			prepare:        func(t *testing.T, e *env) { e.escrow(t) },
			signer:         depositorOf,
			msg:            &CreateEscrowMsg{AssetID: assetID, RedeemPeriod: 7},
			wantCheckErr:   errors.ErrDuplicate,
			wantDeliverErr: errors.ErrDuplicate,
			wantCustody:    registryOf,
			wantState:      EscrowStateEscrowed,
		},
		"redeem period must be positive": {
			signer:         depositorOf,
			msg:            &CreateEscrowMsg{AssetID: assetID},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
			wantCustody:    depositorAddr,
		},
		"offerer makes an offer": {
			prepare:     func(t *testing.T, e *env) { e.escrow(t) },
			signer:      offererOf,
			msg:         &OfferEscrowMsg{AssetID: assetID, Price: 100, Expiry: farFuture},
			wantCustody: registryOf,
			wantState:   EscrowStateOffered,
		},
		"offer can be replaced": {
			prepare:     func(t *testing.T, e *env) { e.offer(t, 50, farFuture) },
			signer:      offererOf,
			msg:         &OfferEscrowMsg{AssetID: assetID, Price: 100, Expiry: farFuture},
			wantCustody: registryOf,
			wantState:   EscrowStateOffered,
		},
		"stranger cannot offer": {
			prepare:        func(t *testing.T, e *env) { e.escrow(t) },
			signer:         strangerOf,
			msg:            &OfferEscrowMsg{AssetID: assetID, Price: 100, Expiry: farFuture},
			wantCheckErr:   ErrNotOwner,
			wantDeliverErr: ErrNotOwner,
			wantCustody:    registryOf,
			wantState:      EscrowStateEscrowed,
		},
		"depositor cannot offer": {
			prepare: func(t *testing.T, e *env) {
				e.escrow(t)
				conf, err := loadConf(e.db)
				require.NoError(t, err)
				conf.Offerers = append(conf.Offerers, e.depositor.Address())
				require.NoError(t, gconf.Save(e.db, ConfigPkg, conf))
			},
			signer:         depositorOf,
			msg:            &OfferEscrowMsg{AssetID: assetID, Price: 100, Expiry: farFuture},
			wantCheckErr:   ErrNotOwner,
			wantDeliverErr: ErrNotOwner,
			wantCustody:    registryOf,
			wantState:      EscrowStateEscrowed,
		},
		"offer must not be expired": {
			prepare:        func(t *testing.T, e *env) { e.escrow(t) },
			signer:         offererOf,
			msg:            &OfferEscrowMsg{AssetID: assetID, Price: 100, Expiry: vaultchain.AsUnixTime(now)},
			wantCheckErr:   errors.ErrExpired,
			wantDeliverErr: errors.ErrExpired,
			wantCustody:    registryOf,
			wantState:      EscrowStateEscrowed,
		},
		"offer requires an escrow": {
			signer:         offererOf,
			msg:            &OfferEscrowMsg{AssetID: assetID, Price: 100, Expiry: farFuture},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
			wantCustody:    depositorAddr,
		},
		"depositor cancels": {
			prepare:     func(t *testing.T, e *env) { e.escrow(t) },
			signer:      depositorOf,
			msg:         &CancelEscrowMsg{AssetID: assetID},
			wantCustody: depositorAddr,
		},
		"depositor cancels an offered escrow": {
			prepare:     func(t *testing.T, e *env) { e.offer(t, 100, farFuture) },
			signer:      depositorOf,
			msg:         &CancelEscrowMsg{AssetID: assetID},
			wantCustody: depositorAddr,
		},
		"only the depositor can cancel": {
			prepare:        func(t *testing.T, e *env) { e.escrow(t) },
			signer:         offererOf,
			msg:            &CancelEscrowMsg{AssetID: assetID},
			wantCheckErr:   ErrNotOwner,
			wantDeliverErr: ErrNotOwner,
			wantCustody:    registryOf,
			wantState:      EscrowStateEscrowed,
		},
		"redeem requires an offer": {
			prepare:        func(t *testing.T, e *env) { e.escrow(t) },
			signer:         depositorOf,
			msg:            &RedeemEscrowMsg{AssetID: assetID, Price: 100, Expiry: farFuture},
			wantCheckErr:   errors.ErrState,
			wantDeliverErr: errors.ErrState,
			wantCustody:    registryOf,
			wantState:      EscrowStateEscrowed,
		},
		"redeem terms must match the price": {
			prepare:        func(t *testing.T, e *env) { e.offer(t, 100, farFuture) },
			signer:         depositorOf,
			msg:            &RedeemEscrowMsg{AssetID: assetID, Price: 101, Expiry: farFuture},
			wantCheckErr:   ErrTermMismatch,
			wantDeliverErr: ErrTermMismatch,
			wantCustody:    registryOf,
			wantState:      EscrowStateOffered,
		},
		"redeem terms must match the expiry": {
			prepare:        func(t *testing.T, e *env) { e.offer(t, 100, farFuture) },
			signer:         depositorOf,
			msg:            &RedeemEscrowMsg{AssetID: assetID, Price: 100, Expiry: farFuture - 1},
			wantCheckErr:   ErrTermMismatch,
			wantDeliverErr: ErrTermMismatch,
			wantCustody:    registryOf,
			wantState:      EscrowStateOffered,
		},
		"expired offer cannot be redeemed": {
			prepare:        func(t *testing.T, e *env) { e.offer(t, 100, 2000) },
			signer:         depositorOf,
			blockTime:      time.Unix(2000, 0),
			msg:            &RedeemEscrowMsg{AssetID: assetID, Price: 100, Expiry: 2000},
			wantCheckErr:   errors.ErrExpired,
			wantDeliverErr: errors.ErrExpired,
			wantCustody:    registryOf,
			wantState:      EscrowStateOffered,
		},
		"only the depositor can redeem": {
			prepare:        func(t *testing.T, e *env) { e.offer(t, 100, farFuture) },
			signer:         offererOf,
			msg:            &RedeemEscrowMsg{AssetID: assetID, Price: 100, Expiry: farFuture},
			wantCheckErr:   ErrNotOwner,
			wantDeliverErr: ErrNotOwner,
			wantCustody:    registryOf,
			wantState:      EscrowStateOffered,
		},
		"depositor redeems": {
			prepare:     func(t *testing.T, e *env) { e.offer(t, 100, farFuture) },
			signer:      depositorOf,
			msg:         &RedeemEscrowMsg{AssetID: assetID, Price: 100, Expiry: farFuture},
			wantCustody: offererAddr,
		},
		"registry cannot pay": {
			prepare:        func(t *testing.T, e *env) { e.offer(t, registryFunds+1, farFuture) },
			signer:         depositorOf,
			msg:            &RedeemEscrowMsg{AssetID: assetID, Price: registryFunds + 1, Expiry: farFuture},
			wantDeliverErr: errors.ErrAmount,
			wantCustody:    registryOf,
			wantState:      EscrowStateOffered,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			e := newEnv(t)
			if tc.prepare != nil {
				tc.prepare(t, e)
			}
			blockTime := now
			if !tc.blockTime.IsZero() {
				blockTime = tc.blockTime
			}
			ctx := vaultchain.WithBlockTime(context.Background(), blockTime)

			rt := newRouter()
			RegisterRoutes(rt, &weavetest.Auth{Signer: tc.signer(e)}, e.ledger, e.ledger)
			h := rt.handlers[tc.msg.Path()]
			tx := &weavetest.Tx{Msg: tc.msg}

			cache := e.db.CacheWrap()
			_, err := h.Check(ctx, cache, tx)
			require.True(t, tc.wantCheckErr.Is(err), "check: %+v", err)
			cache.Discard()

			_, err = h.Deliver(ctx, e.db, tx)
			require.True(t, tc.wantDeliverErr.Is(err), "deliver: %+v", err)

			assert.Equal(t, tc.wantCustody(e), e.ledger.owners[assetID])

			escrow, err := loadEscrow(e.db, NewEscrowBucket(), assetID)
			if tc.wantState == EscrowStateNone {
				assert.True(t, errors.ErrNotFound.Is(err), "record must be cleared: %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantState, escrow.State)
		})
	}
}

func TestRedeemPaysDepositor(t *testing.T) {
	e := newEnv(t)
	e.offer(t, 100, 1000000000000)

	rt := newRouter()
	RegisterRoutes(rt, &weavetest.Auth{Signer: e.depositor}, e.ledger, e.ledger)
	ctx := vaultchain.WithBlockTime(context.Background(), now)
	tx := &weavetest.Tx{Msg: &RedeemEscrowMsg{AssetID: assetID, Price: 100, Expiry: 1000000000000}}
	_, err := rt.handlers[pathRedeemEscrowMsg].Deliver(ctx, e.db, tx)
	require.NoError(t, err)

	assert.Equal(t, uint64(100), e.ledger.balances[e.depositor.Address().String()])
	assert.Equal(t, registryFunds-100, e.ledger.balances[RegistryAccount.String()])
}

func TestAuthorizeOfferer(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	other := weavetest.NewCondition().Address()

	rt := newRouter()
	RegisterRoutes(rt, &weavetest.Auth{Signer: e.stranger}, e.ledger, e.ledger)
	tx := &weavetest.Tx{Msg: &AuthorizeOffererMsg{Offerer: other, Authorized: true}}
	_, err := rt.handlers[pathAuthorizeOffererMsg].Deliver(ctx, e.db, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	rt = newRouter()
	RegisterRoutes(rt, &weavetest.Auth{Signer: e.admin}, e.ledger, e.ledger)
	_, err = rt.handlers[pathAuthorizeOffererMsg].Deliver(ctx, e.db, tx)
	require.NoError(t, err)
	// authorizing twice does not duplicate the entry
	_, err = rt.handlers[pathAuthorizeOffererMsg].Deliver(ctx, e.db, tx)
	require.NoError(t, err)

	conf, err := loadConf(e.db)
	require.NoError(t, err)
	assert.Equal(t, []vaultchain.Address{e.offerer.Address(), other}, conf.Offerers)

	revoke := &weavetest.Tx{Msg: &AuthorizeOffererMsg{Offerer: e.offerer.Address()}}
	_, err = rt.handlers[pathAuthorizeOffererMsg].Deliver(ctx, e.db, revoke)
	require.NoError(t, err)
	conf, err = loadConf(e.db)
	require.NoError(t, err)
	assert.False(t, conf.IsOfferer(e.offerer.Address()))
	assert.True(t, conf.IsOfferer(other))
}

func TestQueryByOwner(t *testing.T) {
	e := newEnv(t)
	e.escrow(t)
	qr := vaultchain.NewQueryRouter()
	RegisterQuery(qr)

	res, err := qr.Handler("/escrows/owner").Query(e.db, vaultchain.KeyQueryMod, e.depositor.Address())
	require.NoError(t, err)
	require.Len(t, res, 1)

	res, err = qr.Handler("/escrows").Query(e.db, vaultchain.KeyQueryMod, AssetKey(assetID))
	require.NoError(t, err)
	require.Len(t, res, 1)
	var got Escrow
	require.NoError(t, got.Unmarshal(res[0].Value))
	assert.Equal(t, EscrowStateEscrowed, got.State)
}

func depositorOf(e *env) vaultchain.Condition { return e.depositor }
func offererOf(e *env) vaultchain.Condition   { return e.offerer }
func strangerOf(e *env) vaultchain.Condition  { return e.stranger }

func depositorAddr(e *env) vaultchain.Address { return e.depositor.Address() }
func offererAddr(e *env) vaultchain.Address   { return e.offerer.Address() }
func registryOf(e *env) vaultchain.Address    { return RegistryAccount }

// router is a minimal vaultchain.Registry collecting handlers by path.
type router struct {
	handlers map[string]vaultchain.Handler
}

func newRouter() *router {
	return &router{handlers: make(map[string]vaultchain.Handler)}
}

func (r *router) Handle(m vaultchain.Msg, h vaultchain.Handler) {
	r.handlers[m.Path()] = h
}

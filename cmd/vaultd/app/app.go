/*
Package app links together all the various components
to construct the vaultd app.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/app"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/store/iavl"
	"github.com/sscnft/vaultchain/x"
	"github.com/sscnft/vaultchain/x/redemption"
	"github.com/sscnft/vaultchain/x/sigs"
	"github.com/sscnft/vaultchain/x/token"
	"github.com/sscnft/vaultchain/x/utils"
	"github.com/sscnft/vaultchain/x/vault"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce but leave no other
		// trace
		utils.NewSavepoint().OnDeliver(),
		utils.NewActionTagger(),
	)
}

// Router returns a router dispatching to the token, vault and registry
// handlers. The vault charges mint fees in the token, the registry holds
// vaults in custody and settles redemptions in the token.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	tokens := token.NewController()
	vaults := vault.NewController(tokens)

	sigs.RegisterRoutes(r, authFn)
	token.RegisterRoutes(r, authFn, tokens)
	vault.RegisterRoutes(r, authFn, vaults)
	redemption.RegisterRoutes(r, authFn, vaults, tokens)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/auth", "/balances", "/allowances", "/vaults",
// "/allowlist" and "/escrows"
func QueryRouter() vaultchain.QueryRouter {
	r := vaultchain.NewQueryRouter()
	r.RegisterAll(
		sigs.RegisterQuery,
		token.RegisterQuery,
		vault.RegisterQuery,
		redemption.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() vaultchain.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h vaultchain.Handler,
	tx vaultchain.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, errors.Wrap(err, "cannot create database instance")
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path. An empty path returns an in memory store.
func CommitKVStore(dbPath string) (vaultchain.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewCommitStore("", "")
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}

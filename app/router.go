package app

import (
	"fmt"
	"regexp"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
)

// isPath is the expected format for message paths: the extension name and
// the message name.
var isPath = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`).MatchString

// Router implements Registry and Handler. It dispatches each transaction
// to the handler registered for the path of its message.
type Router struct {
	routes map[string]vaultchain.Handler
}

var _ vaultchain.Registry = (*Router)(nil)
var _ vaultchain.Handler = (*Router)(nil)

// NewRouter returns a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]vaultchain.Handler),
	}
}

// Handle registers a handler for the path of the given message. It panics
// on an invalid path or when the path is already registered.
func (r *Router) Handle(msg vaultchain.Msg, h vaultchain.Handler) {
	path := msg.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

func (r *Router) handler(path string) vaultchain.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the handler of the message path.
func (r *Router) Check(ctx vaultchain.Context, store vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Check(ctx, store, tx)
}

// Deliver dispatches to the handler of the message path.
func (r *Router) Deliver(ctx vaultchain.Context, store vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg.Path()).Deliver(ctx, store, tx)
}

// notFoundHandler fails every call with ErrNotFound.
type notFoundHandler string

func (path notFoundHandler) Check(vaultchain.Context, vaultchain.KVStore, vaultchain.Tx) (*vaultchain.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(vaultchain.Context, vaultchain.KVStore, vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

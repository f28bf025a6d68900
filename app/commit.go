package app

import (
	"sync"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
)

// CommitStore handles loading from a CommitKVStore, maintaining different
// CacheWraps for Deliver and Check, and returning useful state info.
type CommitStore struct {
	mu        sync.Mutex
	committed vaultchain.CommitKVStore
	deliver   vaultchain.KVCacheWrap
	check     vaultchain.KVCacheWrap
}

// NewCommitStore loads the latest version of the CommitKVStore and sets up
// the deliver and check caches.
func NewCommitStore(store vaultchain.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
		check:     store.CacheWrap(),
	}, nil
}

// CommitInfo returns the current height and hash
func (cs *CommitStore) CommitInfo() (vaultchain.CommitID, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.committed.LatestVersion()
}

// Commit flushes deliver to the underlying store and commits it to disk.
// It then regenerates new deliver and check caches.
func (cs *CommitStore) Commit() (vaultchain.CommitID, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := cs.deliver.Write(); err != nil {
		return vaultchain.CommitID{}, errors.Wrap(err, "write deliver cache")
	}
	cs.check.Discard()

	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}

	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return res, nil
}

// CheckStore returns a store implementation that must be used during the
// checking phase.
func (cs *CommitStore) CheckStore() vaultchain.CacheableKVStore {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.check
}

// DeliverStore returns a store implementation that must be used during the
// delivery phase.
func (cs *CommitStore) DeliverStore() vaultchain.CacheableKVStore {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.deliver
}

// committedView returns a read only scratch pad over the last committed
// state.
func (cs *CommitStore) committedView() vaultchain.KVCacheWrap {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.committed.CacheWrap()
}

// _vc: is a prefix for application internal data
const chainIDKey = "_vc:chainID"

// loadChainID returns the chain id stored if any.
func loadChainID(kv vaultchain.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set, or invalid name
func saveChainID(kv vaultchain.KVStore, chainID string) error {
	if !vaultchain.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if exists {
		return errors.Wrap(errors.ErrUnauthorized, "can't modify chain id after genesis init")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}

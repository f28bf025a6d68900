package iavl

import (
	"sync"

	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// cacheSize is the number of tree nodes kept in memory.
const cacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
	// iavl trees are not safe for concurrent writes
	mtx *sync.Mutex
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with disk backing.
// An empty path creates an in-memory store, mostly for tests.
func NewCommitStore(path, name string) (CommitStore, error) {
	var db dbm.DB = dbm.NewMemDB()
	if path != "" {
		ldb, err := dbm.NewGoLevelDB(name, path)
		if err != nil {
			return CommitStore{}, errors.Wrapf(errors.ErrDatabase, "open %s/%s: %s", path, name, err)
		}
		db = ldb
	}
	tree := iavl.NewMutableTree(db, cacheSize)
	return CommitStore{tree: tree, mtx: &sync.Mutex{}}, nil
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Commit the next version to disk, and returns info
func (s CommitStore) Commit() (store.CommitID, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap wraps the working tree with a btree cache. Writing the cache
// updates the working tree, the data is persisted with the next Commit.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	return s.Adapter().CacheWrap()
}

// Adapter returns a wrapped version of the tree.
//
// Data written here is stored in the tree, not persisted until commit,
// must be cached for use in the app.
func (s CommitStore) Adapter() store.CacheableKVStore {
	return adapter{
		tree: s.tree,
		mtx:  s.mtx,
	}
}

// adapter converts the working iavl.MutableTree to our KVStore interface
type adapter struct {
	tree *iavl.MutableTree
	mtx  *sync.Mutex
}

var _ store.CacheableKVStore = adapter{}

// Get returns nil iff key doesn't exist.
func (a adapter) Get(key []byte) ([]byte, error) {
	_, val := a.tree.Get(key)
	return val, nil
}

// Has checks if a key exists.
func (a adapter) Has(key []byte) (bool, error) {
	return a.tree.Has(key), nil
}

// Set adds a new value
func (a adapter) Set(key, value []byte) error {
	a.mtx.Lock()
	a.tree.Set(key, value)
	a.mtx.Unlock()
	return nil
}

// Delete removes from the tree
func (a adapter) Delete(key []byte) error {
	a.mtx.Lock()
	a.tree.Remove(key)
	a.mtx.Unlock()
	return nil
}

// NewBatch returns a batch that can write multiple ops atomically
func (a adapter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(a)
}

// CacheWrap wraps us once again, with btree
func (a adapter) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(a, a.NewBatch(), nil)
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (a adapter) Iterator(start, end []byte) (store.Iterator, error) {
	return a.iterate(start, end, true), nil
}

// ReverseIterator over a domain of keys in descending order. End is
// exclusive.
func (a adapter) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return a.iterate(start, end, false), nil
}

// iterate loads the range into memory. Ranges queried by the application
// are bounded by a bucket prefix, so they stay small.
func (a adapter) iterate(start, end []byte, ascending bool) store.Iterator {
	var res []store.Model
	a.tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(res)
}

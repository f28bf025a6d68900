package orm

import (
	"bytes"
	"encoding/binary"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
)

// Index represents a secondary index on some data.
type Index interface {
	vaultchain.QueryHandler

	// Name returns the name of this index.
	Name() string

	// Update updates the index. It should be called when any of the bucket
	// entities has changed in the store.
	//
	// prev == nil means insert
	// save == nil means delete
	// both == nil is error
	Update(db vaultchain.KVStore, prev Object, save Object) error

	// Refs returns all primary keys that were indexed under given value.
	Refs(db vaultchain.ReadOnlyKVStore, value []byte) ([][]byte, error)
}

const nativeIdxPrefix = "_i."

// nativeIndex stores every reference under its own key
//    _i.<name>:<value length><value><primary key>
// so that adding or removing a reference never rewrites other references.
type nativeIndex struct {
	name   string
	id     []byte
	unique bool
	index  Indexer
	refKey func([]byte) []byte
}

var _ Index = nativeIndex{}

// NewIndex constructs an index.
// Indexer calculates the index for an object,
// unique enforces a unique constraint on the index,
// refKey calculates the absolute dbkey for a ref.
func NewIndex(name string, indexer Indexer, unique bool, refKey func([]byte) []byte) Index {
	return nativeIndex{
		name:   name,
		id:     []byte(nativeIdxPrefix + name + ":"),
		index:  indexer,
		unique: unique,
		refKey: refKey,
	}
}

func (i nativeIndex) Name() string {
	return i.name
}

// valuePrefix is the db prefix of all references indexed under value.
func (i nativeIndex) valuePrefix(value []byte) []byte {
	l := len(i.id)
	out := make([]byte, l+2+len(value))
	copy(out, i.id)
	binary.BigEndian.PutUint16(out[l:], uint16(len(value)))
	copy(out[l+2:], value)
	return out
}

func (i nativeIndex) refDBKey(value, pk []byte) []byte {
	prefix := i.valuePrefix(value)
	return append(prefix, pk...)
}

// Update handles updating the reference to the object in
// the secondary index.
func (i nativeIndex) Update(db vaultchain.KVStore, prev Object, save Object) error {
	switch {
	case prev == nil && save == nil:
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil object")
	case prev == nil:
		value, err := i.index(save)
		if err != nil {
			return err
		}
		return i.insert(db, value, save.Key())
	case save == nil:
		value, err := i.index(prev)
		if err != nil {
			return err
		}
		return i.remove(db, value, prev.Key())
	}

	if !bytes.Equal(prev.Key(), save.Key()) {
		return errors.Wrap(errors.ErrImmutable, "cannot modify the primary key of an object")
	}
	before, err := i.index(prev)
	if err != nil {
		return err
	}
	after, err := i.index(save)
	if err != nil {
		return err
	}
	if bytes.Equal(before, after) {
		return nil
	}
	if err := i.remove(db, before, prev.Key()); err != nil {
		return err
	}
	return i.insert(db, after, save.Key())
}

func (i nativeIndex) insert(db vaultchain.KVStore, value, pk []byte) error {
	if value == nil {
		return nil
	}
	if i.unique {
		refs, err := i.Refs(db, value)
		if err != nil {
			return err
		}
		if len(refs) > 0 {
			return errors.Wrapf(errors.ErrDuplicate, "index %s", i.name)
		}
	}
	return db.Set(i.refDBKey(value, pk), pk)
}

func (i nativeIndex) remove(db vaultchain.KVStore, value, pk []byte) error {
	if value == nil {
		return nil
	}
	return db.Delete(i.refDBKey(value, pk))
}

// Refs returns all primary keys indexed under given value, ordered by the
// primary key.
func (i nativeIndex) Refs(db vaultchain.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	models, err := queryPrefix(db, i.valuePrefix(value))
	if err != nil {
		return nil, err
	}
	refs := make([][]byte, 0, len(models))
	for _, m := range models {
		refs = append(refs, m.Value)
	}
	return refs, nil
}

// Query returns all objects indexed under the given value. Only the key mod
// is supported.
func (i nativeIndex) Query(db vaultchain.ReadOnlyKVStore, mod string, data []byte) ([]vaultchain.Model, error) {
	if mod != vaultchain.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	refs, err := i.Refs(db, data)
	if err != nil {
		return nil, err
	}
	res := make([]vaultchain.Model, 0, len(refs))
	for _, ref := range refs {
		key := i.refKey(ref)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		res = append(res, vaultchain.Pair(key, value))
	}
	return res, nil
}

package orm

import (
	"github.com/sscnft/vaultchain"
)

// Model is implemented by any entity that can be stored in a bucket.
type Model interface {
	vaultchain.Persistent
	Validate() error
}

// Object is what is stored in the bucket.
// Key is joined with the prefix to set the full key,
// Value is the data stored.
//
// This can be light wrapper around a protobuf-defined type.
type Object interface {
	Keyed
	Cloneable
	// Validate returns error if the object is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validate() error
	Value() Model
}

// Keyed is anything that can identify itself
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable will create a new object that can be loaded into
type Cloneable interface {
	Clone() Object
}

// Indexer calculates the secondary index key for a given object.
// A nil key means the object is not indexed.
type Indexer func(Object) ([]byte, error)

package weavetest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/store/iavl"
)

// CommitKVStore returns a store instance that is using a filesystem backend
// engine to store the data.
// Use it instead of MemStore when the production storage must be exercised.
func CommitKVStore(t testing.TB) (db vaultchain.CommitKVStore, cleanup func()) {
	t.Helper()

	dbpath, err := ioutil.TempDir("", "vaultchain")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	cs, err := iavl.NewCommitStore(dbpath, "db")
	if err != nil {
		os.RemoveAll(dbpath)
		t.Fatalf("cannot create commit store: %s", err)
	}
	return cs, func() { os.RemoveAll(dbpath) }
}

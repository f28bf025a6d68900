package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCommitStore(t testing.TB) (CommitStore, func()) {
	t.Helper()
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	require.NoError(t, err)
	commit, err := NewCommitStore(tmpDir, "base")
	require.NoError(t, err)
	return commit, func() { os.RemoveAll(tmpDir) }
}

func assertGetHas(t testing.TB, kv store.ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, has, exists)
}

func TestCacheGetSet(t *testing.T) {
	commit, cleanup := makeCommitStore(t)
	defer cleanup()
	base := commit.Adapter()

	k, v := []byte("french"), []byte("fry")
	assertGetHas(t, base, k, nil, false)
	require.NoError(t, base.Set(k, v))
	assertGetHas(t, base, k, v, true)

	cache := base.CacheWrap()
	k2, v2 := []byte("LA"), []byte("Dodgers")
	require.NoError(t, cache.Set(k2, v2))
	assertGetHas(t, cache, k2, v2, true)
	assertGetHas(t, base, k2, nil, false)

	require.NoError(t, cache.Write())
	assertGetHas(t, base, k2, v2, true)

	del := base.CacheWrap()
	require.NoError(t, del.Delete(k))
	require.NoError(t, del.Write())
	assertGetHas(t, base, k, nil, false)
}

func TestCommitAndReload(t *testing.T) {
	commit, cleanup := makeCommitStore(t)
	defer cleanup()

	cache := commit.CacheWrap()
	require.NoError(t, cache.Set([]byte("escrow"), []byte("offered")))
	require.NoError(t, cache.Write())

	// not visible as committed state before commit
	got, err := commit.Get([]byte("escrow"))
	require.NoError(t, err)
	assert.Nil(t, got)

	id, err := commit.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)
	assert.NotEmpty(t, id.Hash)

	got, err = commit.Get([]byte("escrow"))
	require.NoError(t, err)
	assert.Equal(t, []byte("offered"), got)

	require.NoError(t, commit.LoadLatestVersion())
	latest, err := commit.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, id, latest)
}

func TestIteration(t *testing.T) {
	commit, err := NewCommitStore("", "mem")
	require.NoError(t, err)
	base := commit.Adapter()
	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, base.Set([]byte(k), []byte(k)))
	}

	cases := map[string]struct {
		start, end []byte
		ascending  bool
		want       []string
	}{
		"all ascending":  {ascending: true, want: []string{"a", "b", "c", "d"}},
		"all descending": {ascending: false, want: []string{"d", "c", "b", "a"}},
		"end exclusive":  {start: []byte("b"), end: []byte("d"), ascending: true, want: []string{"b", "c"}},
		"reverse range":  {start: []byte("b"), end: []byte("d"), ascending: false, want: []string{"c", "b"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var it store.Iterator
			if tc.ascending {
				it, err = base.Iterator(tc.start, tc.end)
			} else {
				it, err = base.ReverseIterator(tc.start, tc.end)
			}
			require.NoError(t, err)
			defer it.Release()

			var got []string
			for {
				k, _, err := it.Next()
				if errors.ErrIteratorDone.Is(err) {
					break
				}
				require.NoError(t, err)
				got = append(got, string(k))
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

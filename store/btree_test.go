package store

import (
	"testing"

	"github.com/sscnft/vaultchain/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBTreeCacheGetSet does basic sanity checks on our cache
func TestBTreeCacheGetSet(t *testing.T) {
	devnull := BTreeCacheable{EmptyKVStore{}}
	base := devnull.CacheWrap()

	k, v := []byte("french"), []byte("fry")
	assertGet(t, base, k, nil)
	require.NoError(t, base.Set(k, v))
	assertGet(t, base, k, v)

	// layered cache sees base data
	cache := base.CacheWrap()
	assertGet(t, cache, k, v)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	require.NoError(t, cache.Set(k2, v2))
	assertGet(t, cache, k2, v2)
	assertGet(t, base, k2, nil)

	require.NoError(t, cache.Write())
	assertGet(t, base, k, v)
	assertGet(t, base, k2, v2)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()
	assertGet(t, base, k3, nil)

	// and commit a delete
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete(k))
	assertGet(t, c3, k, nil)
	require.NoError(t, c3.Write())
	assertGet(t, base, k, nil)
	assertGet(t, base, k2, v2)

	require.NoError(t, base.Write())
	assertGet(t, devnull, k2, nil)
}

func assertGet(t testing.TB, kv ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	has, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, want != nil, has)
}

func TestCacheIteration(t *testing.T) {
	Convey("Given a base store with some data", t, func() {
		base := MemStore()
		for _, k := range []string{"a", "c", "e", "g"} {
			So(base.Set([]byte(k), []byte("base-"+k)), ShouldBeNil)
		}

		Convey("a cache wrap merges its own writes and deletes", func() {
			cache := base.CacheWrap()
			So(cache.Set([]byte("b"), []byte("cache-b")), ShouldBeNil)
			So(cache.Set([]byte("c"), []byte("cache-c")), ShouldBeNil)
			So(cache.Delete([]byte("e")), ShouldBeNil)
			So(cache.Set([]byte("h"), []byte("cache-h")), ShouldBeNil)

			keys, values := collect(t, cache, nil, nil, true)
			So(keys, ShouldResemble, []string{"a", "b", "c", "g", "h"})
			So(values, ShouldResemble, []string{"base-a", "cache-b", "cache-c", "base-g", "cache-h"})

			keys, _ = collect(t, cache, nil, nil, false)
			So(keys, ShouldResemble, []string{"h", "g", "c", "b", "a"})

			Convey("ranges are start inclusive and end exclusive", func() {
				keys, _ := collect(t, cache, []byte("b"), []byte("g"), true)
				So(keys, ShouldResemble, []string{"b", "c"})

				keys, _ = collect(t, cache, []byte("b"), []byte("g"), false)
				So(keys, ShouldResemble, []string{"c", "b"})

				keys, _ = collect(t, cache, []byte("c"), nil, true)
				So(keys, ShouldResemble, []string{"c", "g", "h"})

				keys, _ = collect(t, cache, nil, []byte("c"), false)
				So(keys, ShouldResemble, []string{"b", "a"})
			})

			Convey("and the base is untouched until written", func() {
				keys, _ := collect(t, base, nil, nil, true)
				So(keys, ShouldResemble, []string{"a", "c", "e", "g"})

				So(cache.Write(), ShouldBeNil)
				keys, _ = collect(t, base, nil, nil, true)
				So(keys, ShouldResemble, []string{"a", "b", "c", "g", "h"})
			})
		})

		Convey("a deleted key that is set again is visible", func() {
			cache := base.CacheWrap()
			So(cache.Delete([]byte("a")), ShouldBeNil)
			So(cache.Set([]byte("a"), []byte("again")), ShouldBeNil)
			_, values := collect(t, cache, nil, []byte("b"), true)
			So(values, ShouldResemble, []string{"again"})
		})
	})
}

func collect(t testing.TB, kv ReadOnlyKVStore, start, end []byte, ascending bool) ([]string, []string) {
	var (
		it  Iterator
		err error
	)
	if ascending {
		it, err = kv.Iterator(start, end)
	} else {
		it, err = kv.ReverseIterator(start, end)
	}
	require.NoError(t, err)
	defer it.Release()

	keys := []string{}
	values := []string{}
	for {
		k, v, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return keys, values
		}
		require.NoError(t, err)
		keys = append(keys, string(k))
		values = append(values, string(v))
	}
}

func TestNonAtomicBatch(t *testing.T) {
	base := MemStore()
	batch := NewNonAtomicBatch(base)
	require.NoError(t, batch.Set([]byte("k"), []byte("v")))
	require.NoError(t, batch.Delete([]byte("gone")))
	assertGet(t, base, []byte("k"), nil)

	require.NoError(t, batch.Write())
	assertGet(t, base, []byte("k"), []byte("v"))
}

package orm

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
)

// ConsumeIterator will read all remaining data into an
// array and release the iterator.
func ConsumeIterator(itr vaultchain.Iterator) ([]vaultchain.Model, error) {
	defer itr.Release()

	var res []vaultchain.Model
	for {
		key, value, err := itr.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, vaultchain.Pair(key, value))
	}
}

// queryPrefix returns all models stored under keys with the given prefix.
func queryPrefix(db vaultchain.ReadOnlyKVStore, prefix []byte) ([]vaultchain.Model, error) {
	itr, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed?....
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}

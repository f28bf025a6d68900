package store

import (
	"bytes"

	"github.com/sscnft/vaultchain/errors"
)

// mergedIterator combines the cached btree items with the parent iterator,
// taking into consideration overwrites and deletes.
type mergedIterator struct {
	items []keyer
	idx   int

	parent     Iterator
	parentDone bool
	peeked     bool
	pkey, pval []byte

	ascending bool
}

var _ Iterator = (*mergedIterator)(nil)

func newMergedIterator(items []keyer, parent Iterator, ascending bool) *mergedIterator {
	return &mergedIterator{
		items:     items,
		parent:    parent,
		ascending: ascending,
	}
}

// peek loads the next parent entry, if not already loaded.
func (m *mergedIterator) peek() error {
	if m.peeked || m.parentDone {
		return nil
	}
	k, v, err := m.parent.Next()
	if errors.ErrIteratorDone.Is(err) {
		m.parentDone = true
		return nil
	}
	if err != nil {
		return err
	}
	m.pkey, m.pval, m.peeked = k, v, true
	return nil
}

// ours returns true if the cached item comes before the parent one.
func (m *mergedIterator) ours(key []byte) (first bool, same bool) {
	if m.parentDone {
		return true, false
	}
	cmp := bytes.Compare(key, m.pkey)
	if cmp == 0 {
		return true, true
	}
	if m.ascending {
		return cmp < 0, false
	}
	return cmp > 0, false
}

// Next returns the next key/value pair, skipping all deleted entries.
func (m *mergedIterator) Next() (key, value []byte, err error) {
	for {
		if err := m.peek(); err != nil {
			return nil, nil, err
		}

		if m.idx < len(m.items) {
			item := m.items[m.idx]
			if first, same := m.ours(item.Key()); first {
				m.idx++
				if same {
					// overwritten or deleted in the cache
					m.peeked = false
				}
				if set, ok := item.(setItem); ok {
					return set.key, set.value, nil
				}
				continue
			}
		}

		if m.peeked {
			m.peeked = false
			return m.pkey, m.pval, nil
		}
		return nil, nil, errors.ErrIteratorDone
	}
}

// Release releases the parent iterator.
func (m *mergedIterator) Release() {
	m.parent.Release()
	m.items = nil
}

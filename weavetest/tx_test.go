package weavetest

import (
	"testing"

	"github.com/sscnft/vaultchain/orm"
	"github.com/stretchr/testify/assert"
)

func TestSequenceID(t *testing.T) {
	cases := map[uint64][]byte{
		1:      {0, 0, 0, 0, 0, 0, 0, 1},
		123:    {0, 0, 0, 0, 0, 0, 0, 123},
		123123: {0, 0, 0, 0, 0, 1, 224, 243},
	}
	for id, want := range cases {
		assert.Equal(t, want, SequenceID(id))
		assert.Equal(t, orm.EncodeSequence(int64(id)), SequenceID(id))
	}
}

func TestRandomAddr(t *testing.T) {
	a := RandomAddr(t)
	b := RandomAddr(t)
	assert.NoError(t, a.Validate())
	assert.False(t, a.Equals(b))
}

package gconf

import (
	"encoding/json"
	"testing"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConf struct {
	Owner vaultchain.Address `json:"owner"`
	Fee   int64              `json:"fee"`
}

func (c *testConf) Marshal() ([]byte, error)   { return json.Marshal(c) }
func (c *testConf) Unmarshal(raw []byte) error { return json.Unmarshal(raw, c) }
func (c *testConf) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Field("Owner", err, "invalid owner")
	}
	if c.Fee < 0 {
		return errors.Field("Fee", errors.ErrAmount, "negative fee")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	owner := vaultchain.NewCondition("test", "owner", []byte{1}).Address()

	cases := map[string]struct {
		conf        *testConf
		wantSaveErr *errors.Error
	}{
		"valid": {
			conf: &testConf{Owner: owner, Fee: 10},
		},
		"invalid address cannot be saved": {
			conf:        &testConf{Owner: vaultchain.Address("short"), Fee: 10},
			wantSaveErr: errors.ErrInput,
		},
		"negative fee cannot be saved": {
			conf:        &testConf{Owner: owner, Fee: -1},
			wantSaveErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			err := Save(db, "pkg", tc.conf)
			if !tc.wantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %s", err)
			}

			var got testConf
			err = Load(db, "pkg", &got)
			if tc.wantSaveErr != nil {
				assert.True(t, errors.ErrNotFound.Is(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *tc.conf, got)
		})
	}
}

func TestInitConfig(t *testing.T) {
	raw := `{"conf": {"pkg": {"owner": "cond:test/owner/01", "fee": 7}}}`
	var opts vaultchain.Options
	require.NoError(t, json.Unmarshal([]byte(raw), &opts))

	db := store.MemStore()
	require.NoError(t, InitConfig(db, opts, "pkg", &testConf{}))

	var got testConf
	require.NoError(t, Load(db, "pkg", &got))
	assert.Equal(t, int64(7), got.Fee)
	assert.Equal(t, vaultchain.NewCondition("test", "owner", []byte{1}).Address(), got.Owner)

	err := InitConfig(db, opts, "missing", &testConf{})
	assert.True(t, errors.ErrNotFound.Is(err))
}

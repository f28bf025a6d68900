package redemption

import (
	"encoding/json"
	"testing"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/store"
	"github.com/sscnft/vaultchain/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	offerer := weavetest.NewCondition().Address()

	cases := map[string]struct {
		raw     string
		wantErr *errors.Error
	}{
		"valid configuration": {
			raw: `{"conf": {"redemption": {"owner": "` + owner.String() + `", "offerers": ["` + offerer.String() + `"]}}}`,
		},
		"missing configuration": {
			raw:     `{"conf": {}}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid offerer": {
			raw:     `{"conf": {"redemption": {"owner": "` + owner.String() + `", "offerers": ["0102"]}}}`,
			wantErr: errors.ErrInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var opts vaultchain.Options
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &opts))
			db := store.MemStore()
			var ini Initializer
			err := ini.FromGenesis(opts, db)
			require.True(t, tc.wantErr.Is(err), "%+v", err)
			if tc.wantErr != nil {
				return
			}
			conf, err := loadConf(db)
			require.NoError(t, err)
			assert.Equal(t, owner, conf.Owner)
			assert.True(t, conf.IsOfferer(offerer))
		})
	}
}

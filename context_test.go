package vaultchain

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	newLogger := log.NewTMLogger(os.Stdout)
	ctx := WithLogger(bg, newLogger)
	assert.Equal(t, DefaultLogger, GetLogger(bg))
	assert.Equal(t, newLogger, GetLogger(ctx))

	val, ok := GetHeight(ctx)
	assert.Equal(t, int64(0), val)
	assert.False(t, ok)
	ctx = WithHeight(ctx, 7)
	val, ok = GetHeight(ctx)
	assert.Equal(t, int64(7), val)
	assert.True(t, ok)
	assert.Panics(t, func() { WithHeight(ctx, 9) })

	// changing the info, should modify the logger, but not the height
	ctx2 := WithLogInfo(ctx, "foo", "bar")
	assert.NotEqual(t, GetLogger(ctx), GetLogger(ctx2))
	val, _ = GetHeight(ctx2)
	assert.Equal(t, int64(7), val)

	// chain id MUST be set exactly once
	assert.Panics(t, func() { GetChainID(ctx) })
	ctx2 = WithChainID(ctx, "hardhat-1337")
	assert.Equal(t, "hardhat-1337", GetChainID(ctx2))
	assert.Panics(t, func() { WithChainID(ctx2, "hardhat-1337") })
}

func TestChainID(t *testing.T) {
	cases := map[string]bool{
		"":                      false,
		"foo":                   false,
		"mumbai-80001":          true,
		"matic-137":             true,
		"special_char":          true,
		"wrong/char":            false,
		"too-long-for-a-chainid": false,
	}
	for chainID, valid := range cases {
		assert.Equal(t, valid, IsValidChainID(chainID), chainID)
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Unix(1000, 0)
	ctx := WithBlockTime(context.Background(), now)

	assert.True(t, IsExpired(ctx, UnixTime(999)))
	assert.True(t, IsExpired(ctx, UnixTime(1000)), "expiration is inclusive")
	assert.False(t, IsExpired(ctx, UnixTime(1001)))

	assert.Panics(t, func() { IsExpired(context.Background(), UnixTime(1)) })
	assert.Panics(t, func() { WithBlockTime(ctx, now) })
}

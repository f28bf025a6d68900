package vaultchain_test

import (
	"testing"

	"github.com/sscnft/vaultchain"
	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	vaultchain.GitCommit = ""
	assert.Equal(t, "v0.1.0-dev", vaultchain.Version())

	vaultchain.GitCommit = "12345678"
	assert.Equal(t, "v0.1.0-dev 12345678", vaultchain.Version())
	vaultchain.GitCommit = ""
}

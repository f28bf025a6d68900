package weavetest

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/sscnft/vaultchain"
)

// ParseAddress takes an address in a human readable format and returns
// its binary representation.
func ParseAddress(t testing.TB, encodedAddress string) vaultchain.Address {
	t.Helper()

	addr, err := vaultchain.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) vaultchain.Address {
	t.Helper()

	raw := make([]byte, vaultchain.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	return vaultchain.Address(raw)
}

// SequenceID returns the binary form of a sequence value, as created by
// orm.Sequence.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

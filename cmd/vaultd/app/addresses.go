package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/x/redemption"
	"github.com/sscnft/vaultchain/x/vault"
)

// Bech32Prefix is the human readable part of bech32 encoded addresses.
const Bech32Prefix = "vault"

// AddressBook lists the module accounts of a deployment.
type AddressBook []NamedAddress

// NamedAddress is one entry of the address book.
type NamedAddress struct {
	Name    string
	Address vaultchain.Address
}

// Deployment returns the address book of the module accounts. The deployer
// is included when not nil.
func Deployment(deployer vaultchain.Address) AddressBook {
	book := AddressBook{
		{Name: "vault fee account", Address: vault.FeeAccount},
		{Name: "registry custody", Address: redemption.RegistryAccount},
	}
	if deployer != nil {
		book = append(book, NamedAddress{Name: "deployer", Address: deployer})
	}
	return book
}

// Write prints the address book as a table with hex and bech32 columns.
func (b AddressBook) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tHEX\tBECH32")
	for _, a := range b {
		b32, err := a.Address.Bech32(Bech32Prefix)
		if err != nil {
			return errors.Wrapf(err, "encode %s", a.Name)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name, a.Address, b32)
	}
	return tw.Flush()
}

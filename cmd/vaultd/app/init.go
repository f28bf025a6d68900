package app

import (
	"encoding/json"
	"flag"
	"path/filepath"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/app"
	"github.com/sscnft/vaultchain/commands/server"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/x/redemption"
	"github.com/sscnft/vaultchain/x/token"
	"github.com/sscnft/vaultchain/x/vault"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	tokenName   = "Mock Token"
	tokenSymbol = "MOCK"
	vaultName   = "Vault NFT"
	vaultSymbol = "VAULT"
)

// genesisBalance is one entry of the token genesis section.
type genesisBalance struct {
	Address vaultchain.Address `json:"address"`
	Amount  uint64             `json:"amount"`
}

// genesisState is the app_state written by GenInitOptions.
type genesisState struct {
	Conf struct {
		Token      token.Configuration      `json:"token"`
		Vault      vault.Configuration      `json:"vault"`
		Redemption redemption.Configuration `json:"redemption"`
	} `json:"conf"`
	Token []genesisBalance `json:"token"`
	Vault struct {
		Allowlist []vaultchain.Address `json:"allowlist"`
	} `json:"vault"`
}

// Deploy builds the app_state deploying the token, the vault and the
// registry on the given network. The deployer owns all three, receives the
// initial token supply and is the first authorized offerer. The registry is
// pre-authorized to move vaults in custody.
func Deploy(net Network, deployer vaultchain.Address) (json.RawMessage, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}
	if err := deployer.Validate(); err != nil {
		return nil, errors.Wrap(err, "deployer")
	}

	var state genesisState
	state.Conf.Token = token.Configuration{
		Minter: deployer,
		Name:   tokenName,
		Symbol: tokenSymbol,
	}
	state.Conf.Vault = vault.Configuration{
		Owner:            deployer,
		MintFee:          net.MintFee,
		AllowlistEnabled: net.AllowlistEnabled,
		BaseURI:          net.BaseURI,
		Redeemers:        []vaultchain.Address{redemption.RegistryAccount},
		Name:             vaultName,
		Symbol:           vaultSymbol,
	}
	state.Conf.Redemption = redemption.Configuration{
		Owner:    deployer,
		Offerers: []vaultchain.Address{deployer},
		BaseURI:  net.BaseURI,
	}
	if net.InitialSupply > 0 {
		state.Token = []genesisBalance{{Address: deployer, Amount: net.InitialSupply}}
	}
	state.Vault.Allowlist = []vaultchain.Address{deployer}

	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}

// GenInitOptions parses `[-networks file] <profile> <deployer-address>` and
// returns the genesis of the profile.
func GenInitOptions(args []string) (server.AppGenesis, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	networksPath := fs.String("networks", "", "YAML file with additional network profiles")
	if err := fs.Parse(args); err != nil {
		return server.AppGenesis{}, errors.Wrap(errors.ErrInput, err.Error())
	}
	if fs.NArg() != 2 {
		return server.AppGenesis{}, errors.Wrap(errors.ErrInput, "usage: init [-networks file] <profile> <deployer-address>")
	}

	nets, err := LoadNetworks(*networksPath)
	if err != nil {
		return server.AppGenesis{}, err
	}
	net, err := nets.Get(fs.Arg(0))
	if err != nil {
		return server.AppGenesis{}, err
	}
	deployer, err := vaultchain.ParseAddress(fs.Arg(1))
	if err != nil {
		return server.AppGenesis{}, errors.Wrap(err, "deployer address")
	}

	state, err := Deploy(net, deployer)
	if err != nil {
		return server.AppGenesis{}, err
	}
	return server.AppGenesis{ChainID: net.ChainID, State: state}, nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "vault.db")
	}

	application, err := Application("vaultd", Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	return DecorateApp(application, logger), nil
}

// Initializers returns the genesis initializers of all extensions, in
// deployment order.
func Initializers() vaultchain.Initializer {
	return app.ChainInitializers(
		&token.Initializer{},
		&vault.Initializer{},
		&redemption.Initializer{},
	)
}

// DecorateApp adds initializers and Logger to an Application
func DecorateApp(application app.BaseApp, logger log.Logger) app.BaseApp {
	application.WithInit(Initializers())
	application.WithLogger(logger)
	return application
}

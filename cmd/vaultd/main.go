package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sscnft/vaultchain"
	vaultd "github.com/sscnft/vaultchain/cmd/vaultd/app"
	"github.com/sscnft/vaultchain/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".vaultd")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("vaultd")
	fmt.Println("          Vault NFT escrow and redemption node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Deploy a network profile into the genesis file")
	fmt.Println("          init [-networks file] <hardhat|mumbai|matic> <deployer-address>")
	fmt.Println("start     Run the abci server")
	fmt.Println("addresses Print the module accounts of a deployment")
	fmt.Println("          addresses [deployer-address]")
	fmt.Println("validate  Validate the app state of genesis files")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.vaultd")`)
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "vaultd")

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(vaultd.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(vaultd.GenerateApp, logger, *varHome, rest)
	case "addresses":
		err = addressesCmd(rest)
	case "validate":
		paths := rest
		if len(paths) == 0 {
			paths = []string{server.GenesisPath(*varHome)}
		}
		err = server.ValidateGenesis(vaultd.Initializers(), paths)
	case "version":
		fmt.Println(vaultchain.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}

func addressesCmd(args []string) error {
	var deployer vaultchain.Address
	if len(args) > 0 {
		addr, err := vaultchain.ParseAddress(args[0])
		if err != nil {
			return err
		}
		deployer = addr
	}
	return vaultd.Deployment(deployer).Write(os.Stdout)
}

package app

import (
	"testing"
	"time"

	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/app"
	"github.com/sscnft/vaultchain/crypto"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/weavetest"
	"github.com/sscnft/vaultchain/x/redemption"
	"github.com/sscnft/vaultchain/x/sigs"
	"github.com/sscnft/vaultchain/x/token"
	"github.com/sscnft/vaultchain/x/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "hardhat-1337"

// node runs the application the way tendermint drives it.
type node struct {
	t      *testing.T
	app    app.BaseApp
	height int64
	seqs   map[string]int64
}

func newNode(t *testing.T, deployer vaultchain.Address) *node {
	t.Helper()
	application, err := Application("vaultd", Stack(), TxDecoder, "", false)
	require.NoError(t, err)
	application = DecorateApp(application, log.NewNopLogger())

	state, err := Deploy(DefaultNetworks()["hardhat"], deployer)
	require.NoError(t, err)
	application.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: state})
	application.Commit()

	n := &node{t: t, app: application, height: 1, seqs: make(map[string]int64)}
	n.beginBlock()
	return n
}

func (n *node) beginBlock() {
	n.height++
	n.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: chainID,
			Height:  n.height,
			Time:    time.Unix(1600000000+n.height*5, 0),
		},
	})
}

func (n *node) commit() {
	n.app.EndBlock(abci.RequestEndBlock{Height: n.height})
	n.app.Commit()
	n.beginBlock()
}

func (n *node) sign(key crypto.Signer, msg vaultchain.Msg) []byte {
	n.t.Helper()
	addr := key.PublicKey().Address().String()
	tx := NewTx(msg)
	sig, err := sigs.SignTx(key, tx, chainID, n.seqs[addr])
	require.NoError(n.t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(n.t, err)
	return raw
}

// send runs the transaction through CheckTx and DeliverTx. The signer
// sequence is incremented when the transaction passes the signature check.
func (n *node) send(key crypto.Signer, msg vaultchain.Msg) (*vaultchain.DeliverResult, error) {
	n.t.Helper()
	raw := n.sign(key, msg)
	check := n.app.CheckTx(raw)
	if check.IsErr() {
		return nil, errors.ABCIError(check.Code, check.Log)
	}
	n.seqs[key.PublicKey().Address().String()]++
	return vaultchain.ParseDeliverOrError(n.app.DeliverTx(raw))
}

func (n *node) mustSend(key crypto.Signer, msg vaultchain.Msg) *vaultchain.DeliverResult {
	n.t.Helper()
	res, err := n.send(key, msg)
	require.NoError(n.t, err, "%T", msg)
	return res
}

func (n *node) balance(addr vaultchain.Address) uint64 {
	n.t.Helper()
	b, err := token.NewController().Balance(n.app.DeliverStore(), addr)
	require.NoError(n.t, err)
	return b
}

func (n *node) vaultOwner(id uint64) vaultchain.Address {
	n.t.Helper()
	res := n.app.Query(abci.RequestQuery{Path: "/vaults", Data: vault.TokenKey(id)})
	require.Equal(n.t, uint32(0), res.Code, res.Log)
	var tok vault.Token
	require.NoError(n.t, app.UnmarshalOneResult(res.Value, &tok))
	return tok.Owner
}

func TestRedemptionThroughApplication(t *testing.T) {
	const (
		price  uint64              = 100
		expiry vaultchain.UnixTime = 1000000000000
	)
	deployer := weavetest.NewKey()
	holder := weavetest.NewKey()
	deployerAddr := deployer.PublicKey().Address()
	holderAddr := holder.PublicKey().Address()

	n := newNode(t, deployerAddr)
	assert.Equal(t, uint64(initialSupply), n.balance(deployerAddr))

	n.mustSend(deployer, &token.ApproveMsg{Spender: vault.FeeAccount, Amount: 10000})
	n.mustSend(deployer, &token.TransferMsg{Recipient: redemption.RegistryAccount, Amount: 1000000})
	n.mustSend(deployer, &vault.MintVaultMsg{Recipient: holderAddr})
	n.mustSend(deployer, &vault.BulkMintVaultMsg{Recipient: holderAddr, Count: 3})
	n.commit()

	assert.Equal(t, uint64(400), n.balance(vault.FeeAccount))
	assert.Equal(t, holderAddr, n.vaultOwner(0))
	assert.Equal(t, holderAddr, n.vaultOwner(3))

	// only the vault owner can escrow it
	_, err := n.send(deployer, &redemption.CreateEscrowMsg{AssetID: 0, RedeemPeriod: 7})
	assert.True(t, redemption.ErrNotOwner.Is(err), "%+v", err)

	n.mustSend(holder, &redemption.CreateEscrowMsg{AssetID: 0, RedeemPeriod: 7})
	n.mustSend(deployer, &redemption.OfferEscrowMsg{AssetID: 0, Price: price, Expiry: expiry})
	n.commit()
	assert.Equal(t, redemption.RegistryAccount, n.vaultOwner(0))

	_, err = n.send(holder, &redemption.RedeemEscrowMsg{AssetID: 0, Price: price + 1, Expiry: expiry})
	assert.True(t, redemption.ErrTermMismatch.Is(err), "%+v", err)

	res := n.mustSend(holder, &redemption.RedeemEscrowMsg{AssetID: 0, Price: price, Expiry: expiry})
	require.Len(t, res.Tags, 1)
	assert.Equal(t, "redemption/redeem", string(res.Tags[0].Value))
	n.commit()

	assert.Equal(t, deployerAddr, n.vaultOwner(0))
	assert.Equal(t, price, n.balance(holderAddr))
	assert.Equal(t, uint64(1000000)-price, n.balance(redemption.RegistryAccount))

	query := n.app.Query(abci.RequestQuery{Path: "/escrows", Data: redemption.AssetKey(0)})
	require.Equal(t, uint32(0), query.Code, query.Log)
	var values app.ResultSet
	require.NoError(t, values.Unmarshal(query.Value))
	assert.Empty(t, values.Results)
}

func TestSignatureRequired(t *testing.T) {
	deployer := weavetest.NewKey()
	n := newNode(t, deployer.PublicKey().Address())

	// unsigned
	raw, err := NewTx(&vault.SafeMintMsg{Recipient: deployer.PublicKey().Address()}).Marshal()
	require.NoError(t, err)
	check := n.app.CheckTx(raw)
	assert.True(t, errors.ErrUnauthorized.Is(errors.ABCIError(check.Code, check.Log)), check.Log)

	// signed for another chain
	tx := NewTx(&vault.SafeMintMsg{Recipient: deployer.PublicKey().Address()})
	sig, err := sigs.SignTx(deployer, tx, "another-chain", 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err = tx.Marshal()
	require.NoError(t, err)
	deliver := n.app.DeliverTx(raw)
	assert.True(t, deliver.IsErr())

	// replayed
	raw = n.sign(deployer, &vault.SafeMintMsg{Recipient: deployer.PublicKey().Address()})
	assert.True(t, n.app.DeliverTx(raw).IsOK())
	_, err = vaultchain.ParseDeliverOrError(n.app.DeliverTx(raw))
	assert.True(t, sigs.ErrInvalidSequence.Is(err), "%+v", err)
}

func TestOnlyOwnerAdministers(t *testing.T) {
	deployer := weavetest.NewKey()
	stranger := weavetest.NewKey()
	n := newNode(t, deployer.PublicKey().Address())

	_, err := n.send(stranger, &vault.SetMintFeeMsg{MintFee: 1})
	assert.True(t, errors.ErrUnauthorized.Is(err), "%+v", err)
	_, err = n.send(stranger, &redemption.AuthorizeOffererMsg{Offerer: stranger.PublicKey().Address(), Authorized: true})
	assert.True(t, errors.ErrUnauthorized.Is(err), "%+v", err)

	n.mustSend(deployer, &redemption.AuthorizeOffererMsg{Offerer: stranger.PublicKey().Address(), Authorized: true})
}

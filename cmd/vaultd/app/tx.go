package app

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/codec"
	"github.com/sscnft/vaultchain/errors"
	"github.com/sscnft/vaultchain/x/redemption"
	"github.com/sscnft/vaultchain/x/sigs"
	"github.com/sscnft/vaultchain/x/token"
	"github.com/sscnft/vaultchain/x/vault"
)

const fieldSignatures = 1

// sumFields maps the oneof field number of every allowed message to a
// constructor of an empty instance.
var sumFields = map[int]func() vaultchain.Msg{
	10: func() vaultchain.Msg { return &sigs.BumpSequenceMsg{} },

	20: func() vaultchain.Msg { return &token.MintMsg{} },
	21: func() vaultchain.Msg { return &token.TransferMsg{} },
	22: func() vaultchain.Msg { return &token.ApproveMsg{} },
	23: func() vaultchain.Msg { return &token.TransferFromMsg{} },

	30: func() vaultchain.Msg { return &vault.SafeMintMsg{} },
	31: func() vaultchain.Msg { return &vault.MintVaultMsg{} },
	32: func() vaultchain.Msg { return &vault.BulkMintVaultMsg{} },
	33: func() vaultchain.Msg { return &vault.BurnMsg{} },
	34: func() vaultchain.Msg { return &vault.TransferMsg{} },
	35: func() vaultchain.Msg { return &vault.ApproveMsg{} },
	36: func() vaultchain.Msg { return &vault.SetMintFeeMsg{} },
	37: func() vaultchain.Msg { return &vault.SetAllowlistUserMsg{} },
	38: func() vaultchain.Msg { return &vault.SetAllowlistEnabledMsg{} },
	39: func() vaultchain.Msg { return &vault.PreAuthorizeRedeemerMsg{} },

	40: func() vaultchain.Msg { return &redemption.CreateEscrowMsg{} },
	41: func() vaultchain.Msg { return &redemption.OfferEscrowMsg{} },
	42: func() vaultchain.Msg { return &redemption.CancelEscrowMsg{} },
	43: func() vaultchain.Msg { return &redemption.RedeemEscrowMsg{} },
	44: func() vaultchain.Msg { return &redemption.AuthorizeOffererMsg{} },
}

// sumPaths is the inverse of sumFields, keyed by message path.
var sumPaths = func() map[string]int {
	paths := make(map[string]int, len(sumFields))
	for field, fn := range sumFields {
		paths[fn().Path()] = field
	}
	return paths
}()

// Tx contains the message together with the signatures authorizing it.
type Tx struct {
	Signatures []*sigs.StdSignature
	// Msg is one of the messages listed in sumFields.
	Msg vaultchain.Msg
}

var _ vaultchain.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx wraps the message in an unsigned transaction.
func NewTx(msg vaultchain.Msg) *Tx {
	return &Tx{Msg: msg}
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (vaultchain.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetMsg returns the single message of the transaction.
func (tx *Tx) GetMsg() (vaultchain.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrState, "message is missing")
	}
	return tx.Msg, nil
}

// GetSignatures returns the signatures of signers who signed the Msg.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the serialized transaction without the signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Msg: tx.Msg}
	return unsigned.Marshal()
}

func (tx *Tx) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	for _, s := range tx.Signatures {
		e.Message(fieldSignatures, s)
	}
	if tx.Msg != nil {
		field, ok := sumPaths[tx.Msg.Path()]
		if !ok {
			return nil, errors.Wrapf(errors.ErrType, "message %T not allowed", tx.Msg)
		}
		e.Message(field, tx.Msg)
	}
	return e.Result()
}

func (tx *Tx) Unmarshal(raw []byte) error {
	*tx = Tx{}
	d := codec.NewDecoder(raw)
	for d.More() {
		field, wire, err := d.Next()
		if err != nil {
			return err
		}
		if field == fieldSignatures {
			var sig sigs.StdSignature
			if err := d.Message(wire, &sig); err != nil {
				return err
			}
			tx.Signatures = append(tx.Signatures, &sig)
			continue
		}
		fn, ok := sumFields[field]
		if !ok {
			if err := d.Skip(wire); err != nil {
				return err
			}
			continue
		}
		if tx.Msg != nil {
			return errors.Wrap(errors.ErrInput, "more than one message")
		}
		msg := fn()
		if err := d.Message(wire, msg); err != nil {
			return err
		}
		tx.Msg = msg
	}
	return nil
}

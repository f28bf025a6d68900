package token

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/codec"
)

// Balance is the amount of tokens held by an address.
type Balance struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Balance) Marshal() ([]byte, error) {
	return marshalAmount(m.Amount)
}

func (m *Balance) Unmarshal(raw []byte) error {
	return unmarshalAmount(raw, &m.Amount)
}

// Allowance is the amount a spender may still move on behalf of an owner.
type Allowance struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Allowance) Marshal() ([]byte, error) {
	return marshalAmount(m.Amount)
}

func (m *Allowance) Unmarshal(raw []byte) error {
	return unmarshalAmount(raw, &m.Amount)
}

func marshalAmount(amount uint64) ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, amount)
	return e.Result()
}

func unmarshalAmount(raw []byte, amount *uint64) error {
	*amount = 0
	d := codec.NewDecoder(raw)
	for d.More() {
		field, wire, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			*amount, err = d.Uint64(wire)
		default:
			err = d.Skip(wire)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Configuration is the token configuration singleton.
type Configuration struct {
	Minter vaultchain.Address `protobuf:"bytes,1,opt,name=minter,proto3" json:"minter,omitempty"`
	Name   string             `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Symbol string             `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol,omitempty"`
}

func (m *Configuration) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Minter)
	e.String(2, m.Name)
	e.String(3, m.Symbol)
	return e.Result()
}

func (m *Configuration) Unmarshal(raw []byte) error {
	*m = Configuration{}
	d := codec.NewDecoder(raw)
	for d.More() {
		field, wire, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			m.Minter, err = d.Bytes(wire)
		case 2:
			m.Name, err = d.String(wire)
		case 3:
			m.Symbol, err = d.String(wire)
		default:
			err = d.Skip(wire)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// marshalAddressAmount encodes the layout shared by messages carrying one
// address and an amount.
func marshalAddressAmount(addr vaultchain.Address, amount uint64) ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, addr)
	e.Uint64(2, amount)
	return e.Result()
}

func unmarshalAddressAmount(raw []byte, addr *vaultchain.Address, amount *uint64) error {
	*addr, *amount = nil, 0
	d := codec.NewDecoder(raw)
	for d.More() {
		field, wire, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			*addr, err = d.Bytes(wire)
		case 2:
			*amount, err = d.Uint64(wire)
		default:
			err = d.Skip(wire)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// MintMsg creates new tokens for the recipient.
type MintMsg struct {
	Recipient vaultchain.Address `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Amount    uint64             `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *MintMsg) Marshal() ([]byte, error) {
	return marshalAddressAmount(m.Recipient, m.Amount)
}

func (m *MintMsg) Unmarshal(raw []byte) error {
	return unmarshalAddressAmount(raw, &m.Recipient, &m.Amount)
}

// TransferMsg moves tokens from the main signer to the recipient.
type TransferMsg struct {
	Recipient vaultchain.Address `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Amount    uint64             `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferMsg) Marshal() ([]byte, error) {
	return marshalAddressAmount(m.Recipient, m.Amount)
}

func (m *TransferMsg) Unmarshal(raw []byte) error {
	return unmarshalAddressAmount(raw, &m.Recipient, &m.Amount)
}

// ApproveMsg sets the allowance of the spender over the main signer tokens.
type ApproveMsg struct {
	Spender vaultchain.Address `protobuf:"bytes,1,opt,name=spender,proto3" json:"spender,omitempty"`
	Amount  uint64             `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ApproveMsg) Marshal() ([]byte, error) {
	return marshalAddressAmount(m.Spender, m.Amount)
}

func (m *ApproveMsg) Unmarshal(raw []byte) error {
	return unmarshalAddressAmount(raw, &m.Spender, &m.Amount)
}

// TransferFromMsg moves owner tokens using the allowance of the main signer.
type TransferFromMsg struct {
	Owner     vaultchain.Address `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Recipient vaultchain.Address `protobuf:"bytes,2,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Amount    uint64             `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferFromMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Owner)
	e.Bytes(2, m.Recipient)
	e.Uint64(3, m.Amount)
	return e.Result()
}

func (m *TransferFromMsg) Unmarshal(raw []byte) error {
	*m = TransferFromMsg{}
	d := codec.NewDecoder(raw)
	for d.More() {
		field, wire, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			m.Owner, err = d.Bytes(wire)
		case 2:
			m.Recipient, err = d.Bytes(wire)
		case 3:
			m.Amount, err = d.Uint64(wire)
		default:
			err = d.Skip(wire)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

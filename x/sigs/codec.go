package sigs

import (
	"github.com/sscnft/vaultchain/codec"
	"github.com/sscnft/vaultchain/crypto"
)

// UserData is the state of one signer.
type UserData struct {
	Pubkey   *crypto.PublicKey `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64             `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (m *UserData) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Message(1, m.Pubkey)
	e.Int64(2, m.Sequence)
	return e.Result()
}

func (m *UserData) Unmarshal(raw []byte) error {
	*m = UserData{}
	d := codec.NewDecoder(raw)
	for d.More() {
		field, wire, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			m.Pubkey = &crypto.PublicKey{}
			err = d.Message(wire, m.Pubkey)
		case 2:
			m.Sequence, err = d.Int64(wire)
		default:
			err = d.Skip(wire)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// StdSignature carries one signature together with the signer public key.
type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature *crypto.Signature `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *StdSignature) GetSequence() int64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

func (m *StdSignature) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Int64(1, m.Sequence)
	e.Message(2, m.Pubkey)
	e.Message(3, m.Signature)
	return e.Result()
}

func (m *StdSignature) Unmarshal(raw []byte) error {
	*m = StdSignature{}
	d := codec.NewDecoder(raw)
	for d.More() {
		field, wire, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			m.Sequence, err = d.Int64(wire)
		case 2:
			m.Pubkey = &crypto.PublicKey{}
			err = d.Message(wire, m.Pubkey)
		case 3:
			m.Signature = &crypto.Signature{}
			err = d.Message(wire, m.Signature)
		default:
			err = d.Skip(wire)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// BumpSequenceMsg increments the sequence of the main signer.
type BumpSequenceMsg struct {
	Increment uint64 `protobuf:"varint,1,opt,name=increment,proto3" json:"increment,omitempty"`
}

func (m *BumpSequenceMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, m.Increment)
	return e.Result()
}

func (m *BumpSequenceMsg) Unmarshal(raw []byte) error {
	*m = BumpSequenceMsg{}
	d := codec.NewDecoder(raw)
	for d.More() {
		field, wire, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			m.Increment, err = d.Uint64(wire)
		default:
			err = d.Skip(wire)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

package crypto

import (
	"github.com/sscnft/vaultchain/codec"
)

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// GetEd25519 returns the raw key bytes, safe to call on nil.
func (m *PublicKey) GetEd25519() []byte {
	if m != nil {
		return m.Ed25519
	}
	return nil
}

func (m *PublicKey) Marshal() ([]byte, error) {
	return marshalKeyBytes(m.Ed25519)
}

func (m *PublicKey) Unmarshal(raw []byte) error {
	return unmarshalKeyBytes(raw, &m.Ed25519)
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// GetEd25519 returns the raw key bytes, safe to call on nil.
func (m *PrivateKey) GetEd25519() []byte {
	if m != nil {
		return m.Ed25519
	}
	return nil
}

func (m *PrivateKey) Marshal() ([]byte, error) {
	return marshalKeyBytes(m.Ed25519)
}

func (m *PrivateKey) Unmarshal(raw []byte) error {
	return unmarshalKeyBytes(raw, &m.Ed25519)
}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// GetEd25519 returns the raw signature bytes, safe to call on nil.
func (m *Signature) GetEd25519() []byte {
	if m != nil {
		return m.Ed25519
	}
	return nil
}

func (m *Signature) Marshal() ([]byte, error) {
	return marshalKeyBytes(m.Ed25519)
}

func (m *Signature) Unmarshal(raw []byte) error {
	return unmarshalKeyBytes(raw, &m.Ed25519)
}

// All three messages share the same single field layout.
func marshalKeyBytes(b []byte) ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, b)
	return e.Result()
}

func unmarshalKeyBytes(raw []byte, dst *[]byte) error {
	d := codec.NewDecoder(raw)
	for d.More() {
		field, wire, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			*dst, err = d.Bytes(wire)
		default:
			err = d.Skip(wire)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

package vault

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/codec"
)

// decodeFields runs fn for every field of raw. Unknown fields must be
// skipped by fn.
func decodeFields(raw []byte, fn func(d *codec.Decoder, field, wire int) error) error {
	d := codec.NewDecoder(raw)
	for d.More() {
		field, wire, err := d.Next()
		if err != nil {
			return err
		}
		if err := fn(d, field, wire); err != nil {
			return err
		}
	}
	return nil
}

type Token struct {
	Owner    vaultchain.Address `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Approved vaultchain.Address `protobuf:"bytes,2,opt,name=approved,proto3" json:"approved,omitempty"`
}

func (m *Token) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Owner)
	e.Bytes(2, m.Approved)
	return e.Result()
}

func (m *Token) Unmarshal(raw []byte) error {
	*m = Token{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		switch field {
		case 1:
			m.Owner, err = d.Bytes(wire)
		case 2:
			m.Approved, err = d.Bytes(wire)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

type AllowlistEntry struct {
	Address vaultchain.Address `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *AllowlistEntry) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Address)
	return e.Result()
}

func (m *AllowlistEntry) Unmarshal(raw []byte) error {
	*m = AllowlistEntry{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		if field == 1 {
			m.Address, err = d.Bytes(wire)
			return err
		}
		return d.Skip(wire)
	})
}

type Configuration struct {
	Owner            vaultchain.Address   `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	MintFee          uint64               `protobuf:"varint,2,opt,name=mint_fee,json=mintFee,proto3" json:"mint_fee,omitempty"`
	AllowlistEnabled bool                 `protobuf:"varint,3,opt,name=allowlist_enabled,json=allowlistEnabled,proto3" json:"allowlist_enabled,omitempty"`
	BaseURI          string               `protobuf:"bytes,4,opt,name=base_uri,json=baseUri,proto3" json:"base_uri,omitempty"`
	Redeemers        []vaultchain.Address `protobuf:"bytes,5,rep,name=redeemers,proto3" json:"redeemers,omitempty"`
	Name             string               `protobuf:"bytes,6,opt,name=name,proto3" json:"name,omitempty"`
	Symbol           string               `protobuf:"bytes,7,opt,name=symbol,proto3" json:"symbol,omitempty"`
}

func (m *Configuration) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Owner)
	e.Uint64(2, m.MintFee)
	e.Bool(3, m.AllowlistEnabled)
	e.String(4, m.BaseURI)
	redeemers := make([][]byte, len(m.Redeemers))
	for i, r := range m.Redeemers {
		redeemers[i] = r
	}
	e.RepeatedBytes(5, redeemers)
	e.String(6, m.Name)
	e.String(7, m.Symbol)
	return e.Result()
}

func (m *Configuration) Unmarshal(raw []byte) error {
	*m = Configuration{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		switch field {
		case 1:
			m.Owner, err = d.Bytes(wire)
		case 2:
			m.MintFee, err = d.Uint64(wire)
		case 3:
			m.AllowlistEnabled, err = d.Bool(wire)
		case 4:
			m.BaseURI, err = d.String(wire)
		case 5:
			var r []byte
			r, err = d.Bytes(wire)
			m.Redeemers = append(m.Redeemers, r)
		case 6:
			m.Name, err = d.String(wire)
		case 7:
			m.Symbol, err = d.String(wire)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

type SafeMintMsg struct {
	Recipient vaultchain.Address `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
}

func (m *SafeMintMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Recipient)
	return e.Result()
}

func (m *SafeMintMsg) Unmarshal(raw []byte) error {
	*m = SafeMintMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		if field == 1 {
			m.Recipient, err = d.Bytes(wire)
			return err
		}
		return d.Skip(wire)
	})
}

type MintVaultMsg struct {
	Payer     vaultchain.Address `protobuf:"bytes,1,opt,name=payer,proto3" json:"payer,omitempty"`
	Recipient vaultchain.Address `protobuf:"bytes,2,opt,name=recipient,proto3" json:"recipient,omitempty"`
}

func (m *MintVaultMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Payer)
	e.Bytes(2, m.Recipient)
	return e.Result()
}

func (m *MintVaultMsg) Unmarshal(raw []byte) error {
	*m = MintVaultMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		switch field {
		case 1:
			m.Payer, err = d.Bytes(wire)
		case 2:
			m.Recipient, err = d.Bytes(wire)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

type BulkMintVaultMsg struct {
	Payer     vaultchain.Address `protobuf:"bytes,1,opt,name=payer,proto3" json:"payer,omitempty"`
	Recipient vaultchain.Address `protobuf:"bytes,2,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Count     uint64             `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *BulkMintVaultMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Payer)
	e.Bytes(2, m.Recipient)
	e.Uint64(3, m.Count)
	return e.Result()
}

func (m *BulkMintVaultMsg) Unmarshal(raw []byte) error {
	*m = BulkMintVaultMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		switch field {
		case 1:
			m.Payer, err = d.Bytes(wire)
		case 2:
			m.Recipient, err = d.Bytes(wire)
		case 3:
			m.Count, err = d.Uint64(wire)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

type BurnMsg struct {
	TokenID uint64 `protobuf:"varint,1,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
}

func (m *BurnMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, m.TokenID)
	return e.Result()
}

func (m *BurnMsg) Unmarshal(raw []byte) error {
	*m = BurnMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		if field == 1 {
			m.TokenID, err = d.Uint64(wire)
			return err
		}
		return d.Skip(wire)
	})
}

type TransferMsg struct {
	TokenID   uint64             `protobuf:"varint,1,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Recipient vaultchain.Address `protobuf:"bytes,2,opt,name=recipient,proto3" json:"recipient,omitempty"`
}

func (m *TransferMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, m.TokenID)
	e.Bytes(2, m.Recipient)
	return e.Result()
}

func (m *TransferMsg) Unmarshal(raw []byte) error {
	*m = TransferMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		switch field {
		case 1:
			m.TokenID, err = d.Uint64(wire)
		case 2:
			m.Recipient, err = d.Bytes(wire)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

type ApproveMsg struct {
	TokenID uint64             `protobuf:"varint,1,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
	Spender vaultchain.Address `protobuf:"bytes,2,opt,name=spender,proto3" json:"spender,omitempty"`
}

func (m *ApproveMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, m.TokenID)
	e.Bytes(2, m.Spender)
	return e.Result()
}

func (m *ApproveMsg) Unmarshal(raw []byte) error {
	*m = ApproveMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		switch field {
		case 1:
			m.TokenID, err = d.Uint64(wire)
		case 2:
			m.Spender, err = d.Bytes(wire)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

type SetMintFeeMsg struct {
	MintFee uint64 `protobuf:"varint,1,opt,name=mint_fee,json=mintFee,proto3" json:"mint_fee,omitempty"`
}

func (m *SetMintFeeMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, m.MintFee)
	return e.Result()
}

func (m *SetMintFeeMsg) Unmarshal(raw []byte) error {
	*m = SetMintFeeMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		if field == 1 {
			m.MintFee, err = d.Uint64(wire)
			return err
		}
		return d.Skip(wire)
	})
}

type SetAllowlistUserMsg struct {
	User    vaultchain.Address `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	Allowed bool               `protobuf:"varint,2,opt,name=allowed,proto3" json:"allowed,omitempty"`
}

func (m *SetAllowlistUserMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.User)
	e.Bool(2, m.Allowed)
	return e.Result()
}

func (m *SetAllowlistUserMsg) Unmarshal(raw []byte) error {
	*m = SetAllowlistUserMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		switch field {
		case 1:
			m.User, err = d.Bytes(wire)
		case 2:
			m.Allowed, err = d.Bool(wire)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

type SetAllowlistEnabledMsg struct {
	Enabled bool `protobuf:"varint,1,opt,name=enabled,proto3" json:"enabled,omitempty"`
}

func (m *SetAllowlistEnabledMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bool(1, m.Enabled)
	return e.Result()
}

func (m *SetAllowlistEnabledMsg) Unmarshal(raw []byte) error {
	*m = SetAllowlistEnabledMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		if field == 1 {
			m.Enabled, err = d.Bool(wire)
			return err
		}
		return d.Skip(wire)
	})
}

type PreAuthorizeRedeemerMsg struct {
	Redeemer vaultchain.Address `protobuf:"bytes,1,opt,name=redeemer,proto3" json:"redeemer,omitempty"`
}

func (m *PreAuthorizeRedeemerMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Redeemer)
	return e.Result()
}

func (m *PreAuthorizeRedeemerMsg) Unmarshal(raw []byte) error {
	*m = PreAuthorizeRedeemerMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		if field == 1 {
			m.Redeemer, err = d.Bytes(wire)
			return err
		}
		return d.Skip(wire)
	})
}

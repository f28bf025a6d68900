package redemption

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/codec"
)

type EscrowState int32

const (
	EscrowStateNone     EscrowState = 0
	EscrowStateEscrowed EscrowState = 1
	EscrowStateOffered  EscrowState = 2
)

var escrowStateName = map[EscrowState]string{
	EscrowStateNone:     "NONE",
	EscrowStateEscrowed: "ESCROWED",
	EscrowStateOffered:  "OFFERED",
}

func (s EscrowState) String() string {
	if n, ok := escrowStateName[s]; ok {
		return n
	}
	return "UNKNOWN"
}

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

type Escrow struct {
	Owner        vaultchain.Address  `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	RedeemPeriod int64               `protobuf:"varint,2,opt,name=redeem_period,json=redeemPeriod,proto3" json:"redeem_period,omitempty"`
	CreatedAt    vaultchain.UnixTime `protobuf:"varint,3,opt,name=created_at,json=createdAt,proto3,casttype=github.com/sscnft/vaultchain.UnixTime" json:"created_at,omitempty"`
	State        EscrowState         `protobuf:"varint,4,opt,name=state,proto3,enum=redemption.EscrowState" json:"state,omitempty"`
	Offer        *Offer              `protobuf:"bytes,5,opt,name=offer,proto3" json:"offer,omitempty"`
}

func (m *Escrow) GetOffer() *Offer {
	if m != nil {
		return m.Offer
	}
	return nil
}

func (m *Escrow) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Owner)
	e.Int64(2, m.RedeemPeriod)
	e.Int64(3, int64(m.CreatedAt))
	e.Int64(4, int64(m.State))
	e.Message(5, m.Offer)
	return e.Result()
}

func (m *Escrow) Unmarshal(raw []byte) error {
	*m = Escrow{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		var v int64
		switch field {
		case 1:
			m.Owner, err = d.Bytes(wire)
		case 2:
			m.RedeemPeriod, err = d.Int64(wire)
		case 3:
			v, err = d.Int64(wire)
			m.CreatedAt = vaultchain.UnixTime(v)
		case 4:
			v, err = d.Int64(wire)
			m.State = EscrowState(v)
		case 5:
			m.Offer = &Offer{}
			err = d.Message(wire, m.Offer)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

type Offer struct {
	Price   uint64              `protobuf:"varint,1,opt,name=price,proto3" json:"price,omitempty"`
	Expiry  vaultchain.UnixTime `protobuf:"varint,2,opt,name=expiry,proto3,casttype=github.com/sscnft/vaultchain.UnixTime" json:"expiry,omitempty"`
	Offerer vaultchain.Address  `protobuf:"bytes,3,opt,name=offerer,proto3" json:"offerer,omitempty"`
}

func (m *Offer) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, m.Price)
	e.Int64(2, int64(m.Expiry))
	e.Bytes(3, m.Offerer)
	return e.Result()
}

func (m *Offer) Unmarshal(raw []byte) error {
	*m = Offer{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		var v int64
		switch field {
		case 1:
			m.Price, err = d.Uint64(wire)
		case 2:
			v, err = d.Int64(wire)
			m.Expiry = vaultchain.UnixTime(v)
		case 3:
			m.Offerer, err = d.Bytes(wire)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

type Configuration struct {
	Owner    vaultchain.Address   `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Offerers []vaultchain.Address `protobuf:"bytes,2,rep,name=offerers,proto3" json:"offerers,omitempty"`
	BaseURI  string               `protobuf:"bytes,3,opt,name=base_uri,json=baseUri,proto3" json:"base_uri,omitempty"`
}

func (m *Configuration) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Owner)
	offerers := make([][]byte, len(m.Offerers))
	for i, o := range m.Offerers {
		offerers[i] = o
	}
	e.RepeatedBytes(2, offerers)
	e.String(3, m.BaseURI)
	return e.Result()
}

func (m *Configuration) Unmarshal(raw []byte) error {
	*m = Configuration{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		switch field {
		case 1:
			m.Owner, err = d.Bytes(wire)
		case 2:
			var o []byte
			o, err = d.Bytes(wire)
			m.Offerers = append(m.Offerers, o)
		case 3:
			m.BaseURI, err = d.String(wire)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

type CreateEscrowMsg struct {
	AssetID      uint64 `protobuf:"varint,1,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	RedeemPeriod int64  `protobuf:"varint,2,opt,name=redeem_period,json=redeemPeriod,proto3" json:"redeem_period,omitempty"`
}

func (m *CreateEscrowMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, m.AssetID)
	e.Int64(2, m.RedeemPeriod)
	return e.Result()
}

func (m *CreateEscrowMsg) Unmarshal(raw []byte) error {
	*m = CreateEscrowMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		switch field {
		case 1:
			m.AssetID, err = d.Uint64(wire)
		case 2:
			m.RedeemPeriod, err = d.Int64(wire)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

// marshalTerms encodes the layout shared by OfferEscrowMsg and
// RedeemEscrowMsg.
func marshalTerms(assetID, price uint64, expiry vaultchain.UnixTime) ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, assetID)
	e.Uint64(2, price)
	e.Int64(3, int64(expiry))
	return e.Result()
}

func unmarshalTerms(raw []byte, assetID, price *uint64, expiry *vaultchain.UnixTime) error {
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		var v int64
		switch field {
		case 1:
			*assetID, err = d.Uint64(wire)
		case 2:
			*price, err = d.Uint64(wire)
		case 3:
			v, err = d.Int64(wire)
			*expiry = vaultchain.UnixTime(v)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

type OfferEscrowMsg struct {
	AssetID uint64              `protobuf:"varint,1,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	Price   uint64              `protobuf:"varint,2,opt,name=price,proto3" json:"price,omitempty"`
	Expiry  vaultchain.UnixTime `protobuf:"varint,3,opt,name=expiry,proto3,casttype=github.com/sscnft/vaultchain.UnixTime" json:"expiry,omitempty"`
}

func (m *OfferEscrowMsg) Marshal() ([]byte, error) {
	return marshalTerms(m.AssetID, m.Price, m.Expiry)
}

func (m *OfferEscrowMsg) Unmarshal(raw []byte) error {
	*m = OfferEscrowMsg{}
	return unmarshalTerms(raw, &m.AssetID, &m.Price, &m.Expiry)
}

type CancelEscrowMsg struct {
	AssetID uint64 `protobuf:"varint,1,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
}

func (m *CancelEscrowMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Uint64(1, m.AssetID)
	return e.Result()
}

func (m *CancelEscrowMsg) Unmarshal(raw []byte) error {
	*m = CancelEscrowMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		if field == 1 {
			m.AssetID, err = d.Uint64(wire)
			return err
		}
		return d.Skip(wire)
	})
}

type RedeemEscrowMsg struct {
	AssetID uint64              `protobuf:"varint,1,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	Price   uint64              `protobuf:"varint,2,opt,name=price,proto3" json:"price,omitempty"`
	Expiry  vaultchain.UnixTime `protobuf:"varint,3,opt,name=expiry,proto3,casttype=github.com/sscnft/vaultchain.UnixTime" json:"expiry,omitempty"`
}

func (m *RedeemEscrowMsg) Marshal() ([]byte, error) {
	return marshalTerms(m.AssetID, m.Price, m.Expiry)
}

func (m *RedeemEscrowMsg) Unmarshal(raw []byte) error {
	*m = RedeemEscrowMsg{}
	return unmarshalTerms(raw, &m.AssetID, &m.Price, &m.Expiry)
}

type AuthorizeOffererMsg struct {
	Offerer    vaultchain.Address `protobuf:"bytes,1,opt,name=offerer,proto3" json:"offerer,omitempty"`
	Authorized bool               `protobuf:"varint,2,opt,name=authorized,proto3" json:"authorized,omitempty"`
}

func (m *AuthorizeOffererMsg) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.Bytes(1, m.Offerer)
	e.Bool(2, m.Authorized)
	return e.Result()
}

func (m *AuthorizeOffererMsg) Unmarshal(raw []byte) error {
	*m = AuthorizeOffererMsg{}
	return decodeFields(raw, func(d *codec.Decoder, field, wire int) (err error) {
		switch field {
		case 1:
			m.Offerer, err = d.Bytes(wire)
		case 2:
			m.Authorized, err = d.Bool(wire)
		default:
			err = d.Skip(wire)
		}
		return err
	})
}

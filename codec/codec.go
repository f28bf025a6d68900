/*
Package codec implements the protobuf wire format used by all persisted
models and transaction messages.

Every message implements Marshal and Unmarshal on top of Encoder and
Decoder. Field numbers and types are documented in the codec.proto file
next to each message definition, so that clients can use any protobuf
implementation to talk to the application.
*/
package codec

import (
	"reflect"

	"github.com/gogo/protobuf/proto"
	"github.com/sscnft/vaultchain/errors"
)

// Wire types as defined by the protobuf encoding.
const (
	WireVarint  = 0
	WireFixed64 = 1
	WireBytes   = 2
	WireFixed32 = 5
)

// Marshaller is implemented by any message that can be nested.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Encoder writes protobuf fields. Zero values are omitted, as proto3 does.
type Encoder struct {
	buf *proto.Buffer
	err error
}

// NewEncoder returns an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{buf: proto.NewBuffer(nil)}
}

func (e *Encoder) key(field int, wire int) {
	if e.err == nil {
		e.err = e.buf.EncodeVarint(uint64(field)<<3 | uint64(wire))
	}
}

// Uint64 writes a varint field.
func (e *Encoder) Uint64(field int, v uint64) {
	if v == 0 {
		return
	}
	e.key(field, WireVarint)
	if e.err == nil {
		e.err = e.buf.EncodeVarint(v)
	}
}

// Int64 writes a varint field.
func (e *Encoder) Int64(field int, v int64) {
	e.Uint64(field, uint64(v))
}

// Bool writes a varint field.
func (e *Encoder) Bool(field int, v bool) {
	if v {
		e.Uint64(field, 1)
	}
}

// Bytes writes a length delimited field.
func (e *Encoder) Bytes(field int, v []byte) {
	if len(v) == 0 {
		return
	}
	e.key(field, WireBytes)
	if e.err == nil {
		e.err = e.buf.EncodeRawBytes(v)
	}
}

// String writes a length delimited field.
func (e *Encoder) String(field int, v string) {
	e.Bytes(field, []byte(v))
}

// RepeatedBytes writes every element as a separate field. Empty elements
// are kept so that the number of elements is preserved.
func (e *Encoder) RepeatedBytes(field int, vs [][]byte) {
	for _, v := range vs {
		e.key(field, WireBytes)
		if e.err == nil {
			e.err = e.buf.EncodeRawBytes(v)
		}
	}
}

// Message writes a nested message. A nil message is omitted.
func (e *Encoder) Message(field int, m Marshaller) {
	if e.err != nil || isNil(m) {
		return
	}
	raw, err := m.Marshal()
	if err != nil {
		e.err = err
		return
	}
	e.key(field, WireBytes)
	if e.err == nil {
		e.err = e.buf.EncodeRawBytes(raw)
	}
}

// Result returns the encoded message or the first error that happened.
func (e *Encoder) Result() ([]byte, error) {
	if e.err != nil {
		return nil, errors.Wrap(errors.ErrInput, e.err.Error())
	}
	// Stores reject nil values, so an all default message is an empty
	// but non nil slice.
	if bz := e.buf.Bytes(); bz != nil {
		return bz, nil
	}
	return []byte{}, nil
}

// Decoder reads protobuf fields one by one.
//
//   d := codec.NewDecoder(raw)
//   for d.More() {
//     field, wire, err := d.Next()
//     ...
//   }
type Decoder struct {
	raw []byte
	pos int
}

// NewDecoder returns a decoder over given bytes.
func NewDecoder(raw []byte) *Decoder {
	return &Decoder{raw: raw}
}

// More returns true if there is data left to read.
func (d *Decoder) More() bool {
	return d.pos < len(d.raw)
}

// Next reads the key of the next field.
func (d *Decoder) Next() (field int, wire int, err error) {
	k, err := d.varint()
	if err != nil {
		return 0, 0, err
	}
	field, wire = int(k>>3), int(k&0x7)
	if field <= 0 {
		return 0, 0, errors.Wrapf(errors.ErrInput, "illegal field number %d", field)
	}
	return field, wire, nil
}

func (d *Decoder) varint() (uint64, error) {
	v, n := proto.DecodeVarint(d.raw[d.pos:])
	if n == 0 {
		return 0, errors.Wrap(errors.ErrInput, "malformed varint")
	}
	d.pos += n
	return v, nil
}

func (d *Decoder) expect(wire, want int) error {
	if wire != want {
		return errors.Wrapf(errors.ErrInput, "wrong wire type %d, want %d", wire, want)
	}
	return nil
}

// Uint64 reads a varint field value.
func (d *Decoder) Uint64(wire int) (uint64, error) {
	if err := d.expect(wire, WireVarint); err != nil {
		return 0, err
	}
	return d.varint()
}

// Int64 reads a varint field value.
func (d *Decoder) Int64(wire int) (int64, error) {
	v, err := d.Uint64(wire)
	return int64(v), err
}

// Bool reads a varint field value.
func (d *Decoder) Bool(wire int) (bool, error) {
	v, err := d.Uint64(wire)
	return v != 0, err
}

// Bytes reads a length delimited field value. Returned slice is a copy.
func (d *Decoder) Bytes(wire int) ([]byte, error) {
	if err := d.expect(wire, WireBytes); err != nil {
		return nil, err
	}
	l, err := d.varint()
	if err != nil {
		return nil, err
	}
	if l > uint64(len(d.raw)-d.pos) {
		return nil, errors.Wrap(errors.ErrInput, "unexpected end of data")
	}
	end := d.pos + int(l)
	out := make([]byte, int(l))
	copy(out, d.raw[d.pos:end])
	d.pos = end
	return out, nil
}

// String reads a length delimited field value.
func (d *Decoder) String(wire int) (string, error) {
	b, err := d.Bytes(wire)
	return string(b), err
}

// Message reads a nested message into dst.
func (d *Decoder) Message(wire int, dst interface{ Unmarshal([]byte) error }) error {
	raw, err := d.Bytes(wire)
	if err != nil {
		return err
	}
	return dst.Unmarshal(raw)
}

// Skip ignores the value of an unknown field.
func (d *Decoder) Skip(wire int) error {
	switch wire {
	case WireVarint:
		_, err := d.varint()
		return err
	case WireFixed64:
		return d.advance(8)
	case WireFixed32:
		return d.advance(4)
	case WireBytes:
		_, err := d.Bytes(wire)
		return err
	default:
		return errors.Wrapf(errors.ErrInput, "unsupported wire type %d", wire)
	}
}

func (d *Decoder) advance(n int) error {
	if n > len(d.raw)-d.pos {
		return errors.Wrap(errors.ErrInput, "unexpected end of data")
	}
	d.pos += n
	return nil
}

func isNil(m Marshaller) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

package app

import (
	"github.com/sscnft/vaultchain"
	"github.com/sscnft/vaultchain/codec"
	"github.com/sscnft/vaultchain/errors"
)

// ResultSet is the serialized form of zero or more query results. Both the
// keys and the values of a query response are sent as a ResultSet.
type ResultSet struct {
	Results [][]byte
}

// Marshal encodes the set as a repeated bytes field.
func (r *ResultSet) Marshal() ([]byte, error) {
	e := codec.NewEncoder()
	e.RepeatedBytes(1, r.Results)
	return e.Result()
}

// Unmarshal decodes a set produced by Marshal.
func (r *ResultSet) Unmarshal(raw []byte) error {
	r.Results = nil
	d := codec.NewDecoder(raw)
	for d.More() {
		field, wire, err := d.Next()
		if err != nil {
			return err
		}
		switch field {
		case 1:
			var b []byte
			b, err = d.Bytes(wire)
			r.Results = append(r.Results, b)
		default:
			err = d.Skip(wire)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ResultsFromKeys returns a ResultSet of all keys
// given a set of models
func ResultsFromKeys(models []vaultchain.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values
// given a set of models
func ResultsFromValues(models []vaultchain.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues and makes
// KVPairs of the two.
func JoinResults(keys, values *ResultSet) ([]vaultchain.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys but %d values", len(kref), len(vref))
	}
	res := make([]vaultchain.Model, len(kref))
	for i := range kref {
		res[i] = vaultchain.Pair(kref[i], vref[i])
	}
	return res, nil
}

// UnmarshalOneResult decodes a query response that must contain at most
// one value into dest. It returns ErrNotFound for an empty response.
func UnmarshalOneResult(bz []byte, dest vaultchain.Persistent) error {
	var set ResultSet
	if err := set.Unmarshal(bz); err != nil {
		return errors.Wrap(err, "result set")
	}
	switch len(set.Results) {
	case 0:
		return errors.ErrNotFound
	case 1:
		return dest.Unmarshal(set.Results[0])
	default:
		return errors.Wrapf(errors.ErrState, "expected one result, got %d", len(set.Results))
	}
}

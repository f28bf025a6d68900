package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If none of the given errors is non-nil, nil is returned. A single non-nil
// error is returned unchanged.
func Append(errs ...error) error {
	var flat []error
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(*multiErr); ok {
			flat = append(flat, m.errs...)
		} else {
			flat = append(flat, e)
		}
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	}
	return &multiErr{errs: flat}
}

// multiErr represents a group of errors. ABCICode and Cause follow the first
// error, consistent with a fail-fast approach.
type multiErr struct {
	errs []error
}

var (
	_ coder    = (*multiErr)(nil)
	_ unpacker = (*multiErr)(nil)
)

func (m *multiErr) Error() string {
	msgs := make([]string, len(m.errs))
	for i, e := range m.errs {
		msgs[i] = fmt.Sprintf("* %s", e)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(m.errs), strings.Join(msgs, "\n\t"))
}

// Unpack returns all grouped errors.
func (m *multiErr) Unpack() []error {
	return m.errs
}

func (m *multiErr) ABCICode() uint32 {
	return abciCode(m.errs[0])
}

package weavetest

import "github.com/sscnft/vaultchain"

// Handler is a mock implementation of the vaultchain.Handler interface.
// Each method call is counted.
type Handler struct {
	checkCall   int
	CheckResult vaultchain.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult vaultchain.DeliverResult
	DeliverErr    error
}

var _ vaultchain.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes the key value pair to the store before returning Err.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ vaultchain.Handler = WriteHandler{}

func (h WriteHandler) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &vaultchain.CheckResult{}, h.Err
}

func (h WriteHandler) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &vaultchain.DeliverResult{}, h.Err
}

// PanicHandler always panics with the given value.
type PanicHandler struct {
	Err error
}

var _ vaultchain.Handler = PanicHandler{}

func (p PanicHandler) Check(vaultchain.Context, vaultchain.KVStore, vaultchain.Tx) (*vaultchain.CheckResult, error) {
	panic(p.Err)
}

func (p PanicHandler) Deliver(vaultchain.Context, vaultchain.KVStore, vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	panic(p.Err)
}

package weavetest

import "github.com/sscnft/vaultchain"

// Decorator is a mock vaultchain.Decorator. It records the path of every
// message it sees and counts the calls per method.
//
// CheckErr and DeliverErr, when set, stop the chain before the next handler
// is called.
type Decorator struct {
	CheckErr   error
	DeliverErr error

	checks   int
	delivers int
	paths    []string
}

var _ vaultchain.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx, next vaultchain.Checker) (*vaultchain.CheckResult, error) {
	d.checks++
	d.paths = append(d.paths, msgPath(tx))
	if d.CheckErr != nil {
		return &vaultchain.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx, next vaultchain.Deliverer) (*vaultchain.DeliverResult, error) {
	d.delivers++
	d.paths = append(d.paths, msgPath(tx))
	if d.DeliverErr != nil {
		return &vaultchain.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Paths returns the message paths of all processed transactions, in call
// order. A transaction without a readable message is recorded as "".
func (d *Decorator) Paths() []string {
	return d.paths
}

func (d *Decorator) CheckCallCount() int   { return d.checks }
func (d *Decorator) DeliverCallCount() int { return d.delivers }
func (d *Decorator) CallCount() int        { return d.checks + d.delivers }

func msgPath(tx vaultchain.Tx) string {
	if tx == nil {
		return ""
	}
	msg, err := tx.GetMsg()
	if err != nil || msg == nil {
		return ""
	}
	return msg.Path()
}

// Decorate wraps h with d so that the pair can be used as a single handler.
func Decorate(h vaultchain.Handler, d vaultchain.Decorator) vaultchain.Handler {
	return decorated{handler: h, decorator: d}
}

type decorated struct {
	handler   vaultchain.Handler
	decorator vaultchain.Decorator
}

func (d decorated) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.CheckResult, error) {
	return d.decorator.Check(ctx, db, tx, d.handler)
}

func (d decorated) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx) (*vaultchain.DeliverResult, error) {
	return d.decorator.Deliver(ctx, db, tx, d.handler)
}

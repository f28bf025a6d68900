package utils

import (
	"github.com/sscnft/vaultchain"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionTagger will inspect the message being executed and
// add a tag `action = msg.Path()`, so clients have a standard way to
// search and subscribe.
//
// It should be the last of the ChainDecorators so that only messages
// that reached a handler are tagged. Clients subscribe to eg.
// `action='redemption/redeem'` to follow settled escrows.
type ActionTagger struct{}

var _ vaultchain.Decorator = ActionTagger{}

// ActionKey is used by ActionTagger as the Key in the Tag it appends
const ActionKey = "action"

// NewActionTagger creates a ActionTagger decorator
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check just passes the request along
func (ActionTagger) Check(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx, next vaultchain.Checker) (*vaultchain.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends a tag on the result if there is a success.
func (ActionTagger) Deliver(ctx vaultchain.Context, db vaultchain.KVStore, tx vaultchain.Tx, next vaultchain.Deliverer) (*vaultchain.DeliverResult, error) {
	// if we error in reporting, let's do so early before dispatching
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}

	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	tag := common.KVPair{
		Key:   []byte(ActionKey),
		Value: []byte(msg.Path()),
	}
	res.Tags = append(res.Tags, tag)
	return res, nil
}

package utils

import (
	"time"

	"github.com/sscnft/vaultchain"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ vaultchain.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> info, success -> debug
func (r Logging) Check(ctx vaultchain.Context, store vaultchain.KVStore, tx vaultchain.Tx, next vaultchain.Checker) (*vaultchain.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx vaultchain.Context, store vaultchain.KVStore, tx vaultchain.Tx, next vaultchain.Deliverer) (*vaultchain.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx vaultchain.Context, tx vaultchain.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := vaultchain.GetLogger(ctx).With(
		"path", vaultchain.GetPath(tx),
		"duration", delta/time.Microsecond,
	)

	if err != nil {
		logger = logger.With("err", err)
	}


	// An empty message still carries the path and duration.
	switch {
	case err != nil && lowPrio:
		logger.Info(msg)
	case err != nil:
		logger.Error(msg)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}

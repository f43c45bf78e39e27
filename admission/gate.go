// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package admission verifies untrusted transactions before they reach the pool.
package admission

import (
	"context"
	"runtime"
	"time"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/zemse/parity-esn/cache"
	"github.com/zemse/parity-esn/eth"
	"github.com/zemse/parity-esn/log"
	"github.com/zemse/parity-esn/tx"
)

// DefaultMaxTxSize is the default limit of an encoded transaction.
const DefaultMaxTxSize = 300 * 1024

var logger = log.WithContext("pkg", "admission")

// Options options for the gate.
type Options struct {
	// ChainID the transactions must be bound to, nil to accept only transactions without replay protection.
	ChainID             *uint64
	CheckLowS           bool
	AllowEmptySignature bool
	// Workers bounds the concurrency of VerifyBatch.
	Workers   int
	MaxTxSize uint64
	// SenderCacheSize is the number of verified transactions remembered by hash, 0 disables the cache.
	SenderCacheSize int
}

// DefaultOptions returns the options of a mainnet gate.
func DefaultOptions() Options {
	chainID := uint64(1)
	return Options{
		ChainID:         &chainID,
		CheckLowS:       true,
		Workers:         runtime.NumCPU(),
		MaxTxSize:       DefaultMaxTxSize,
		SenderCacheSize: 16384,
	}
}

// Result is the outcome of verifying one transaction of a batch.
type Result struct {
	Tx  *tx.VerifiedTransaction
	Err error
}

// Gate runs both verification stages with fixed options.
// It is safe for concurrent use.
type Gate struct {
	opts    Options
	senders *cache.LRU[eth.Bytes32, *tx.VerifiedTransaction]
}

// New creates a gate.
func New(opts Options) (*Gate, error) {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.MaxTxSize == 0 {
		opts.MaxTxSize = DefaultMaxTxSize
	}
	if opts.ChainID != nil {
		id := *opts.ChainID
		opts.ChainID = &id
	}

	g := &Gate{opts: opts}
	if opts.SenderCacheSize > 0 {
		senders, err := cache.NewLRU[eth.Bytes32, *tx.VerifiedTransaction](opts.SenderCacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "sender cache")
		}
		g.senders = senders
	}
	return g, nil
}

// Options returns the options the gate runs with.
func (g *Gate) Options() Options {
	opts := g.opts
	if opts.ChainID != nil {
		id := *opts.ChainID
		opts.ChainID = &id
	}
	return opts
}

// Verify checks trx and attributes its sender.
func (g *Gate) Verify(trx *tx.Transaction) (*tx.VerifiedTransaction, error) {
	verified, err := g.verify(trx)
	if err != nil {
		g.reject(trx, err)
		return nil, err
	}
	return verified, nil
}

// VerifyRaw decodes raw and verifies the transaction.
// The size limit is checked before decoding.
func (g *Gate) VerifyRaw(raw []byte) (*tx.VerifiedTransaction, error) {
	if uint64(len(raw)) > g.opts.MaxTxSize {
		g.reject(nil, tx.ErrTooBig)
		return nil, tx.ErrTooBig
	}
	var trx tx.Transaction
	if err := rlp.DecodeBytes(raw, &trx); err != nil {
		err = tx.RLPError(err)
		g.reject(nil, err)
		return nil, err
	}
	return g.Verify(&trx)
}

// Pending verifies trx and queues it behind cond.
func (g *Gate) Pending(trx *tx.Transaction, cond *tx.Condition) (*tx.PendingTransaction, error) {
	verified, err := g.Verify(trx)
	if err != nil {
		return nil, err
	}
	return tx.NewPendingTransaction(verified, cond), nil
}

// VerifyBatch verifies raws with at most Workers verifications in flight.
// Results are in input order. Elements not processed before ctx is done carry ctx.Err().
func (g *Gate) VerifyBatch(ctx context.Context, raws [][]byte) []Result {
	results := make([]Result, len(raws))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)
	for i, raw := range raws {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Tx, results[i].Err = g.VerifyRaw(raw)
			return nil
		})
	}
	eg.Wait()
	return results
}

func (g *Gate) verify(trx *tx.Transaction) (*tx.VerifiedTransaction, error) {
	if trx == nil {
		return nil, tx.RLPError(errors.New("nil transaction"))
	}
	if trx.Size() > g.opts.MaxTxSize {
		return nil, tx.ErrTooBig
	}

	basic, err := tx.VerifyBasic(trx, g.opts.CheckLowS, g.opts.ChainID, g.opts.AllowEmptySignature)
	if err != nil {
		return nil, err
	}
	metricVerifiedCount().AddWithLabel(1, map[string]string{"stage": "basic"})

	if g.senders == nil {
		return g.verifySignature(basic)
	}
	// the options are fixed, so a transaction with the same hash gets the same verdict
	loaded := false
	verified, err := g.senders.GetOrLoad(trx.Hash(), func(eth.Bytes32) (*tx.VerifiedTransaction, error) {
		loaded = true
		return g.verifySignature(basic)
	})
	if err != nil {
		return nil, err
	}
	if !loaded {
		metricSenderCacheHits().Add(1)
		// the cached entry wraps the transaction it was loaded for
		attached, ok := verified.Attach(basic)
		if !ok {
			return g.verifySignature(basic)
		}
		verified = attached
	}
	metricSenderCacheItems().Set(int64(g.senders.Len()))
	if stats := g.senders.Stats(); stats.Changed() {
		logger.Debug("sender cache", "hitrate", stats.HitRate(), "entries", g.senders.Len())
	}
	return verified, nil
}

func (g *Gate) verifySignature(basic *tx.BasicVerifiedTransaction) (*tx.VerifiedTransaction, error) {
	start := time.Now()
	verified, err := tx.VerifySignature(basic)
	if !basic.IsUnsigned() {
		metricRecoverDuration().Observe(time.Since(start).Microseconds())
	}
	if err != nil {
		return nil, err
	}
	metricVerifiedCount().AddWithLabel(1, map[string]string{"stage": "signature"})
	return verified, nil
}

func (g *Gate) reject(trx *tx.Transaction, err error) {
	code, ok := tx.CodeOf(err)
	label := "Unknown"
	if ok {
		label = code.String()
	}
	metricRejectedCount().AddWithLabel(1, map[string]string{"code": label})

	if trx != nil {
		logger.Trace("transaction rejected", "tx", trx, "code", label, "err", err)
	} else {
		logger.Trace("raw transaction rejected", "code", label, "err", err)
	}
}

// IsRejected returns whether err is a verdict on the transaction rather than a failure of the gate.
func IsRejected(err error) bool {
	_, ok := tx.CodeOf(err)
	return ok
}

// IsMalformed returns whether err rejects input that is not a well formed transaction at all.
func IsMalformed(err error) bool {
	code, ok := tx.CodeOf(err)
	return ok && (code == tx.CodeInvalidRLP || code == tx.CodeTooBig)
}

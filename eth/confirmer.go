package eth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dan13ram/mint-queue/app"
	"github.com/dan13ram/mint-queue/eth/client"
	"github.com/dan13ram/mint-queue/models"
	"github.com/dan13ram/mint-queue/queue"
	log "github.com/sirupsen/logrus"
)

const (
	MintConfirmerName = "mint confirmer"
)

type MintConfirmerRunner struct {
	store         queue.Store
	receipts      queue.ReceiptReader
	lease         time.Duration
	minInterval   time.Duration
	maxPendingAge time.Duration
	batchSize     int64
	now           func() time.Time

	blockNumber atomic.Uint64
	processed   atomic.Int64
	failed      atomic.Int64
}

func (x *MintConfirmerRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		EthBlockNumber: strconv.FormatUint(x.blockNumber.Load(), 10),
		Processed:      x.processed.Load(),
		Failed:         x.failed.Load(),
	}
}

func (x *MintConfirmerRunner) Run() {
	x.RecoverStaleSubmissions()

	for i := int64(0); i < x.batchSize; i++ {
		result, err := x.PollNext(context.Background())
		var queryErr *client.QueryError
		if errors.As(err, &queryErr) {
			continue
		}
		if err != nil {
			log.Error("[MINT CONFIRMER] Error polling mint request: ", err)
			return
		}
		if result == models.PollIdle {
			return
		}
	}
}

// RecoverStaleSubmissions hands requests whose worker died after journaling
// a signed transaction over to confirmation.
func (x *MintConfirmerRunner) RecoverStaleSubmissions() {
	ctx, cancel := storeContext(context.Background())
	defer cancel()

	recovered, err := x.store.RecoverStaleSubmissions(ctx, x.lease)
	if err != nil {
		log.Error("[MINT CONFIRMER] Error recovering stale submissions: ", err)
		return
	}
	if recovered > 0 {
		log.Warn("[MINT CONFIRMER] Recovered stale submissions: ", recovered)
	}
}

func (x *MintConfirmerRunner) updateBlockNumber(blockNumber uint64) {
	for {
		current := x.blockNumber.Load()
		if blockNumber <= current || x.blockNumber.CompareAndSwap(current, blockNumber) {
			return
		}
	}
}

// PollNext checks the receipt of the submitted request that has waited
// longest since its last check.
func (x *MintConfirmerRunner) PollNext(ctx context.Context) (result models.PollResult, err error) {
	defer func() { app.Metrics.IncPoll(result) }()

	claimCtx, cancel := storeContext(ctx)
	record, err := x.store.ClaimNextDueConfirmation(claimCtx, x.minInterval)
	cancel()
	if err != nil {
		return models.PollError, fmt.Errorf("error claiming mint request for confirmation: %w", err)
	}
	if record == nil {
		log.Debug("[MINT CONFIRMER] No mint requests due for confirmation")
		return models.PollIdle, nil
	}

	id := record.RequestID()
	logger := log.WithFields(log.Fields{
		"request_id":   id,
		"external_ref": record.ExternalRef,
		"tx_hash":      record.TxHash,
	})

	if record.TxHash == "" {
		logger.Error("[MINT CONFIRMER] Mint request awaiting confirmation has no transaction hash")
		return models.PollError, fmt.Errorf("mint request %s has no transaction hash", id)
	}

	receipt, err := x.receipts.GetReceipt(ctx, record.TxHash)
	if err != nil {
		logger.Warn("[MINT CONFIRMER] Error reading receipt: ", err)
		return models.PollError, err
	}

	if receipt == nil {
		x.warnIfStuck(logger, record)
		logger.Debug("[MINT CONFIRMER] Transaction not mined yet")
		return models.PollPending, nil
	}

	x.updateBlockNumber(receipt.BlockNumber)
	logger = logger.WithField("block_number", receipt.BlockNumber)

	updateCtx, cancel := storeContext(ctx)
	defer cancel()

	if receipt.Success {
		if _, err := x.store.MarkConfirmed(updateCtx, id, receipt.BlockNumber); err != nil {
			return models.PollError, fmt.Errorf("error marking mint request confirmed: %w", err)
		}
		x.processed.Add(1)
		logger.Info("[MINT CONFIRMER] Mint confirmed")
		return models.PollCompleted, nil
	}

	if _, err := x.store.MarkFailed(updateCtx, id, "", client.ErrOnChainRevert.Error()); err != nil {
		return models.PollError, fmt.Errorf("error marking mint request failed: %w", err)
	}
	x.failed.Add(1)
	logger.Warn("[MINT CONFIRMER] Mint reverted on chain")
	return models.PollReverted, nil
}

func (x *MintConfirmerRunner) warnIfStuck(logger *log.Entry, record *models.MintRequest) {
	if x.maxPendingAge <= 0 {
		return
	}
	age := x.now().Sub(record.CreatedAt)
	if age > x.maxPendingAge {
		logger.WithField("age", age.Round(time.Second)).Warn("[MINT CONFIRMER] Mint transaction still unmined")
	}
}

func NewMintConfirmer(store queue.Store, receipts queue.ReceiptReader, lastHealth models.ServiceHealth) *MintConfirmerRunner {
	cfg := app.Config.MintConfirmer
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 1
	}

	x := &MintConfirmerRunner{
		store:         store,
		receipts:      receipts,
		lease:         time.Duration(app.Config.Queue.LeaseMillis) * time.Millisecond,
		minInterval:   time.Duration(cfg.MinRecheckMillis) * time.Millisecond,
		maxPendingAge: time.Duration(cfg.MaxPendingAgeMillis) * time.Millisecond,
		batchSize:     batchSize,
		now:           time.Now,
	}

	if lastBlockNumber, err := strconv.ParseUint(lastHealth.EthBlockNumber, 10, 64); err == nil {
		x.blockNumber.Store(lastBlockNumber)
	}

	return x
}

func NewMintConfirmerService(wg *sync.WaitGroup, store queue.Store, receipts queue.ReceiptReader, lastHealth models.ServiceHealth) app.Service {
	if !app.Config.MintConfirmer.Enabled {
		log.Debug("[MINT CONFIRMER] Mint confirmer disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[MINT CONFIRMER] Initializing mint confirmer")

	x := NewMintConfirmer(store, receipts, lastHealth)

	log.Info("[MINT CONFIRMER] Initialized mint confirmer, last block number: ", x.blockNumber.Load())

	return app.NewRunnerService(
		MintConfirmerName,
		x,
		wg,
		time.Duration(app.Config.MintConfirmer.IntervalMillis)*time.Millisecond,
	)
}

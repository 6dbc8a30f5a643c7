package eth

import (
	"context"
	"errors"
	"fmt"
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
	MintDispatcherName = "mint dispatcher"
)

// ErrClaimLost means the claim lease expired and another worker took the
// request before the signed transaction could be journaled.
var ErrClaimLost = errors.New("mint request claim was lost")

type MintDispatcherRunner struct {
	store     queue.Store
	minter    client.Minter
	lease     time.Duration
	batchSize int64

	processed atomic.Int64
	failed    atomic.Int64
}

func (x *MintDispatcherRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		Processed: x.processed.Load(),
		Failed:    x.failed.Load(),
	}
}

func (x *MintDispatcherRunner) Run() {
	for i := int64(0); i < x.batchSize; i++ {
		result, err := x.ProcessNext(context.Background())
		if err != nil {
			log.Error("[MINT DISPATCHER] Error dispatching mint request: ", err)
			return
		}
		if result == models.DispatchIdle || result == models.DispatchBusy {
			return
		}
	}
}

func storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queue.Timeout())
}

// ProcessNext submits the mint for the oldest pending request. It returns
// DispatchBusy without claiming anything while another submitter holds the signer.
func (x *MintDispatcherRunner) ProcessNext(ctx context.Context) (result models.DispatchResult, err error) {
	defer func() { app.Metrics.IncDispatch(result) }()

	release, err := x.minter.LockSigner(ctx)
	if errors.Is(err, client.ErrSignerBusy) {
		log.Debug("[MINT DISPATCHER] Signer is busy")
		return models.DispatchBusy, nil
	}
	if err != nil {
		return models.DispatchError, err
	}
	defer release()

	claimCtx, cancel := storeContext(ctx)
	record, err := x.store.ClaimNextPending(claimCtx, x.lease)
	cancel()
	if err != nil {
		return models.DispatchError, fmt.Errorf("error claiming mint request: %w", err)
	}
	if record == nil {
		log.Debug("[MINT DISPATCHER] No pending mint requests")
		return models.DispatchIdle, nil
	}

	id := record.RequestID()
	logger := log.WithFields(log.Fields{
		"request_id":   id,
		"external_ref": record.ExternalRef,
		"attempts":     record.Attempts,
	})
	logger.Debug("[MINT DISPATCHER] Claimed mint request")

	txHash, err := x.minter.EstimateAndSubmitMint(ctx, client.MintCall{
		Recipient:      record.RecipientAddress,
		AssetRef:       record.AssetRef,
		TargetContract: record.TargetContract,
		OnSigned: func(txHash string) error {
			journalCtx, cancel := storeContext(ctx)
			defer cancel()

			ok, err := x.store.RecordSignedTx(journalCtx, id, record.ClaimID, txHash)
			if err != nil {
				return fmt.Errorf("error journaling signed transaction: %w", err)
			}
			if !ok {
				return ErrClaimLost
			}
			return nil
		},
	})

	var submissionErr *client.SubmissionError
	if errors.As(err, &submissionErr) {
		logger.WithField("stage", submissionErr.Stage).Warn("[MINT DISPATCHER] Mint submission failed: ", err)

		failCtx, cancel := storeContext(ctx)
		defer cancel()
		if _, err := x.store.MarkFailed(failCtx, id, record.ClaimID, err.Error()); err != nil {
			return models.DispatchError, fmt.Errorf("error marking mint request failed: %w", err)
		}
		x.failed.Add(1)
		return models.DispatchFailed, nil
	}
	if err != nil {
		// left in processing; the lease settles it
		return models.DispatchError, fmt.Errorf("error submitting mint request %s: %w", id, err)
	}

	logger = logger.WithField("tx_hash", txHash)

	submitCtx, cancel := storeContext(ctx)
	defer cancel()
	ok, err := x.store.MarkSubmitted(submitCtx, id, record.ClaimID, txHash)
	if err != nil {
		return models.DispatchError, fmt.Errorf("error marking mint request submitted: %w", err)
	}
	if !ok {
		logger.Warn("[MINT DISPATCHER] Mint request already moved on from processing")
	}

	x.processed.Add(1)
	logger.Info("[MINT DISPATCHER] Submitted mint request")
	return models.DispatchSubmitted, nil
}

func NewMintDispatcher(store queue.Store, minter client.Minter) *MintDispatcherRunner {
	batchSize := app.Config.MintDispatcher.BatchSize
	if batchSize <= 0 {
		batchSize = 1
	}
	return &MintDispatcherRunner{
		store:     store,
		minter:    minter,
		lease:     time.Duration(app.Config.Queue.LeaseMillis) * time.Millisecond,
		batchSize: batchSize,
	}
}

func NewMintDispatcherService(wg *sync.WaitGroup, store queue.Store, minter client.Minter) app.Service {
	if !app.Config.MintDispatcher.Enabled {
		log.Debug("[MINT DISPATCHER] Mint dispatcher disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[MINT DISPATCHER] Initializing mint dispatcher")

	x := NewMintDispatcher(store, minter)

	log.Info("[MINT DISPATCHER] Initialized mint dispatcher")

	return app.NewRunnerService(
		MintDispatcherName,
		x,
		wg,
		time.Duration(app.Config.MintDispatcher.IntervalMillis)*time.Millisecond,
	)
}

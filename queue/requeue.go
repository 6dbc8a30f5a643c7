package queue

import (
	"context"
	"fmt"

	"github.com/dan13ram/mint-queue/models"
	log "github.com/sirupsen/logrus"
)

// ReceiptReader is the part of the chain client requeue needs.
type ReceiptReader interface {
	GetReceipt(ctx context.Context, txHash string) (*models.Receipt, error)
}

// RetryRef is the external ref given to the replacement of a failed request.
func RetryRef(record *models.MintRequest) string {
	return fmt.Sprintf("%s#retry-%s", record.ExternalRef, record.RequestID())
}

// Requeue creates a fresh pending request for a failed one and links the
// failed record to it. The failed record is otherwise left untouched.
//
// A request whose signed transaction was mined successfully is never requeued,
// nor is one that failed without ever being dispatched.
func Requeue(ctx context.Context, store Store, receipts ReceiptReader, id string) (*models.MintRequest, error) {
	record, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger := log.WithFields(log.Fields{"request_id": id, "external_ref": record.ExternalRef})

	if record.Status != models.StatusFailed {
		return nil, fmt.Errorf("%w: status is %s", ErrNotRequeueable, record.Status)
	}
	if record.Attempts == 0 {
		return nil, fmt.Errorf("%w: request was rejected before dispatch", ErrNotRequeueable)
	}
	if record.SupersededBy != nil {
		return nil, fmt.Errorf("%w: already superseded by %s", ErrNotRequeueable, record.SupersededBy.Hex())
	}

	if record.SignedTxHash != "" && receipts != nil {
		receipt, err := receipts.GetReceipt(ctx, record.SignedTxHash)
		if err != nil {
			return nil, fmt.Errorf("error checking signed transaction: %w", err)
		}
		if receipt != nil && receipt.Success {
			logger.WithField("tx_hash", record.SignedTxHash).Warn("[QUEUE] Refusing requeue, signed transaction was mined")
			return nil, ErrAlreadyMined
		}
	}

	replacement, created, err := store.InsertIfAbsent(ctx, &models.MintRequest{
		ExternalRef:      RetryRef(record),
		RecipientAddress: record.RecipientAddress,
		AssetRef:         record.AssetRef,
		TargetContract:   record.TargetContract,
		Source:           record.Source,
	})
	if err != nil {
		return nil, err
	}
	if !created {
		logger.Debug("[QUEUE] Replacement already exists")
	}

	if _, err := store.Supersede(ctx, id, replacement.RequestID()); err != nil {
		return nil, err
	}

	logger.WithField("replacement_id", replacement.RequestID()).Info("[QUEUE] Requeued failed mint request")
	return replacement, nil
}

package client

import (
	"context"

	"github.com/dan13ram/mint-queue/models"
	"github.com/ethereum/go-ethereum/core/types"
)

// ReceiptReader reads mint receipts without needing the signer.
type ReceiptReader struct {
	client EthereumClient
}

func (r *ReceiptReader) GetReceipt(ctx context.Context, txHash string) (*models.Receipt, error) {
	return readReceipt(ctx, r.client, txHash)
}

func NewReceiptReader(client EthereumClient) *ReceiptReader {
	return &ReceiptReader{client: client}
}

func readReceipt(ctx context.Context, client EthereumClient, txHash string) (*models.Receipt, error) {
	receipt, err := client.GetTransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, &QueryError{TxHash: txHash, Err: err}
	}
	if receipt == nil {
		return nil, nil
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &models.Receipt{
		TxHash:      txHash,
		Success:     receipt.Status == types.ReceiptStatusSuccessful,
		BlockNumber: blockNumber,
		GasUsed:     receipt.GasUsed,
	}, nil
}

package client

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/dan13ram/mint-queue/app"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	log "github.com/sirupsen/logrus"
)

// RPCBackend is the part of ethclient.Client the client wraps.
type RPCBackend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

type EthereumClient interface {
	ValidateNetwork()
	GetChainID(ctx context.Context) (*big.Int, error)
	GetBlockNumber(ctx context.Context) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderBaseFee(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	GetTransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error)
	GetBalance(ctx context.Context, account common.Address) (*big.Int, error)
}

type ethereumClient struct {
	client  RPCBackend
	timeout time.Duration
}

var _ EthereumClient = &ethereumClient{}

var Dial = func(rawurl string) (RPCBackend, error) {
	return ethclient.Dial(rawurl)
}

func (c *ethereumClient) context(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

func (c *ethereumClient) GetChainID(ctx context.Context) (*big.Int, error) {
	ctx, cancel := c.context(ctx)
	defer cancel()

	return c.client.ChainID(ctx)
}

func (c *ethereumClient) GetBlockNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := c.context(ctx)
	defer cancel()

	return c.client.BlockNumber(ctx)
}

func (c *ethereumClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	ctx, cancel := c.context(ctx)
	defer cancel()

	return c.client.PendingNonceAt(ctx, account)
}

func (c *ethereumClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	ctx, cancel := c.context(ctx)
	defer cancel()

	return c.client.SuggestGasTipCap(ctx)
}

// HeaderBaseFee returns the base fee of the latest block.
func (c *ethereumClient) HeaderBaseFee(ctx context.Context) (*big.Int, error) {
	ctx, cancel := c.context(ctx)
	defer cancel()

	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}
	if header.BaseFee == nil {
		return nil, errors.New("chain does not support EIP-1559")
	}
	return header.BaseFee, nil
}

func (c *ethereumClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	ctx, cancel := c.context(ctx)
	defer cancel()

	return c.client.EstimateGas(ctx, msg)
}

func (c *ethereumClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	ctx, cancel := c.context(ctx)
	defer cancel()

	return c.client.SendTransaction(ctx, tx)
}

// GetTransactionReceipt returns nil without error while the transaction is unmined.
func (c *ethereumClient) GetTransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	ctx, cancel := c.context(ctx)
	defer cancel()

	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	return receipt, err
}

func (c *ethereumClient) GetBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	ctx, cancel := c.context(ctx)
	defer cancel()

	return c.client.BalanceAt(ctx, account, nil)
}

func (c *ethereumClient) ValidateNetwork() {
	log.Debugln("[ETH]", "Validating network")
	log.Debugln("[ETH]", "uri", app.Config.Ethereum.RPCURL)

	ctx := context.Background()

	chainID, err := c.GetChainID(ctx)
	if err != nil {
		log.Fatalln("[ETH]", "Failed to get chain ID:", err)
	}
	blockNumber, err := c.GetBlockNumber(ctx)
	if err != nil {
		log.Fatalln("[ETH]", "Failed to get block number:", err)
	}

	log.Debugln("[ETH]", "chainID", chainID.Uint64())

	if chainID.String() != app.Config.Ethereum.ChainID {
		log.Fatalln("[ETH]", "Chain ID Mismatch", "expected", app.Config.Ethereum.ChainID, "got", chainID.Uint64())
	}

	log.Debugln("[ETH]", "blockNumber", blockNumber)

	log.Infoln("[ETH]", "Validated network")
}

func rpcTimeout() time.Duration {
	if app.Config.Ethereum.RPCTimeoutMillis > 0 {
		return time.Duration(app.Config.Ethereum.RPCTimeoutMillis) * time.Millisecond
	}
	return 10 * time.Second
}

func NewEthereumClient(backend RPCBackend) EthereumClient {
	return &ethereumClient{client: backend, timeout: rpcTimeout()}
}

func NewClient() (EthereumClient, error) {
	backend, err := Dial(app.Config.Ethereum.RPCURL)
	if err != nil {
		return nil, err
	}
	return NewEthereumClient(backend), nil
}

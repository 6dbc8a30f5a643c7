package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/dan13ram/mint-queue/app"
	signers "github.com/dan13ram/mint-queue/common"
	"github.com/dan13ram/mint-queue/eth/autogen"
	"github.com/dan13ram/mint-queue/models"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ethereum/go-ethereum/rpc"
	log "github.com/sirupsen/logrus"
)

// MintCall is one mint to submit. OnSigned runs after signing and before
// broadcast; an error from it aborts the submission.
type MintCall struct {
	Recipient      string
	AssetRef       string
	TargetContract string
	OnSigned       func(txHash string) error
}

type Minter interface {
	EstimateAndSubmitMint(ctx context.Context, call MintCall) (string, error)
	GetReceipt(ctx context.Context, txHash string) (*models.Receipt, error)
	LockSigner(ctx context.Context) (release func(), err error)
	Address() string
}

type minter struct {
	client           EthereumClient
	signer           signers.Signer
	locker           app.Locker
	chainID          *big.Int
	defaultContract  common.Address
	allowed          map[common.Address]bool
	gasMultiplierBps int64
	maxFeePerGas     *big.Int
	mintAbi          *abi.ABI

	mu sync.Mutex
}

var _ Minter = &minter{}

const basisPoints = 10000

func (m *minter) Address() string {
	return m.signer.EthAddress().Hex()
}

// LockSigner takes the in-process lock first so that only one goroutine
// per instance contends on the shared lock.
func (m *minter) LockSigner(ctx context.Context) (func(), error) {
	if !m.mu.TryLock() {
		return nil, ErrSignerBusy
	}
	if m.locker == nil {
		return m.mu.Unlock, nil
	}

	release, err := m.locker.Lock(ctx, "signer:"+m.Address())
	if errors.Is(err, app.ErrLockBusy) {
		m.mu.Unlock()
		return nil, ErrSignerBusy
	}
	if err != nil {
		m.mu.Unlock()
		return nil, fmt.Errorf("error acquiring signer lock: %w", err)
	}

	return func() {
		release()
		m.mu.Unlock()
	}, nil
}

func (m *minter) target(call MintCall) (common.Address, error) {
	if call.TargetContract == "" {
		return m.defaultContract, nil
	}
	if !common.IsHexAddress(call.TargetContract) {
		return common.Address{}, fmt.Errorf("invalid target contract %q", call.TargetContract)
	}
	target := common.HexToAddress(call.TargetContract)
	if len(m.allowed) > 0 && !m.allowed[target] {
		return common.Address{}, fmt.Errorf("%w: %s", ErrTargetNotAllowed, target.Hex())
	}
	return target, nil
}

func (m *minter) fees(ctx context.Context) (tip *big.Int, feeCap *big.Int, err error) {
	tip, err = m.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, err
	}
	baseFee, err := m.client.HeaderBaseFee(ctx)
	if err != nil {
		return nil, nil, err
	}

	// room for the base fee to double before the tx is priced out
	feeCap = new(big.Int).Add(new(big.Int).Mul(baseFee, big.NewInt(2)), tip)

	if m.maxFeePerGas != nil && feeCap.Cmp(m.maxFeePerGas) > 0 {
		if baseFee.Cmp(m.maxFeePerGas) > 0 {
			return nil, nil, fmt.Errorf("base fee %s exceeds max fee per gas %s", baseFee, m.maxFeePerGas)
		}
		feeCap = new(big.Int).Set(m.maxFeePerGas)
		if tip.Cmp(feeCap) > 0 {
			tip = new(big.Int).Set(feeCap)
		}
	}
	return tip, feeCap, nil
}

func (m *minter) gasLimit(estimate uint64) uint64 {
	if m.gasMultiplierBps <= basisPoints {
		return estimate
	}
	return estimate * uint64(m.gasMultiplierBps) / basisPoints
}

// EstimateAndSubmitMint builds, signs and broadcasts one mint transaction and
// returns its hash once the node has accepted it.
//
// Failures before the node accepts the transaction are *SubmissionError.
// A send whose outcome is unknown (transport failure) is returned unwrapped;
// the signed hash was already handed to OnSigned.
func (m *minter) EstimateAndSubmitMint(ctx context.Context, call MintCall) (string, error) {
	logger := log.WithFields(log.Fields{"recipient": call.Recipient, "asset_ref": call.AssetRef})

	if !common.IsHexAddress(call.Recipient) {
		return "", &SubmissionError{Stage: StageValidate, Err: fmt.Errorf("invalid recipient %q", call.Recipient)}
	}
	target, err := m.target(call)
	if err != nil {
		return "", &SubmissionError{Stage: StageValidate, Err: err}
	}

	data, err := m.mintAbi.Pack(autogen.MintMethod, common.HexToAddress(call.Recipient), call.AssetRef)
	if err != nil {
		return "", &SubmissionError{Stage: StagePack, Err: err}
	}

	from := m.signer.EthAddress()

	nonce, err := m.client.PendingNonceAt(ctx, from)
	if err != nil {
		return "", &SubmissionError{Stage: StageNonce, Err: err}
	}

	tip, feeCap, err := m.fees(ctx)
	if err != nil {
		return "", &SubmissionError{Stage: StageFees, Err: err}
	}

	estimate, err := m.client.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        &target,
		GasFeeCap: feeCap,
		GasTipCap: tip,
		Data:      data,
	})
	if err != nil {
		return "", &SubmissionError{Stage: StageEstimate, Err: err}
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   m.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       m.gasLimit(estimate),
		To:        &target,
		Value:     big.NewInt(0),
		Data:      data,
	})

	signed, err := m.sign(tx)
	if err != nil {
		return "", &SubmissionError{Stage: StageSign, Err: err}
	}
	txHash := signed.Hash().Hex()

	logger = logger.WithFields(log.Fields{"tx_hash": txHash, "nonce": nonce, "gas": signed.Gas()})
	logger.Debug("[MINTER] Signed mint transaction")

	if call.OnSigned != nil {
		if err := call.OnSigned(txHash); err != nil {
			return "", err
		}
	}

	if err := m.client.SendTransaction(ctx, signed); err != nil {
		if isAlreadyKnown(err) {
			logger.Warn("[MINTER] Transaction already in pool")
			return txHash, nil
		}
		if isRejected(err) {
			return "", &SubmissionError{Stage: StageSend, Err: err}
		}
		return "", fmt.Errorf("error sending transaction %s: %w", txHash, err)
	}

	logger.Info("[MINTER] Submitted mint transaction")
	return txHash, nil
}

func (m *minter) sign(tx *types.Transaction) (*types.Transaction, error) {
	txSigner := types.LatestSignerForChainID(m.chainID)
	sig, err := m.signer.SignHash(txSigner.Hash(tx))
	if err != nil {
		return nil, err
	}
	return tx.WithSignature(txSigner, sig)
}

// isRejected reports whether the node answered the send with an error,
// as opposed to the request never completing.
func isRejected(err error) bool {
	var rpcErr rpc.Error
	return errors.As(err, &rpcErr)
}

func isAlreadyKnown(err error) bool {
	return strings.Contains(err.Error(), "already known")
}

// GetReceipt returns nil while the transaction is not mined.
func (m *minter) GetReceipt(ctx context.Context, txHash string) (*models.Receipt, error) {
	return readReceipt(ctx, m.client, txHash)
}

func NewMinter(client EthereumClient, signer signers.Signer, locker app.Locker) (Minter, error) {
	chainID, ok := new(big.Int).SetString(app.Config.Ethereum.ChainID, 10)
	if !ok {
		return nil, fmt.Errorf("invalid chain id %q", app.Config.Ethereum.ChainID)
	}

	mintAbi, err := autogen.GetMintableAbi()
	if err != nil {
		return nil, fmt.Errorf("error parsing mint abi: %w", err)
	}

	allowed := make(map[common.Address]bool)
	for _, address := range app.Config.Ethereum.AllowedContracts {
		allowed[common.HexToAddress(address)] = true
	}
	defaultContract := common.HexToAddress(app.Config.Ethereum.MintContractAddress)
	if len(allowed) > 0 {
		allowed[defaultContract] = true
	}

	var maxFeePerGas *big.Int
	if app.Config.Ethereum.MaxFeePerGasGwei > 0 {
		maxFeePerGas = new(big.Int).Mul(big.NewInt(app.Config.Ethereum.MaxFeePerGasGwei), big.NewInt(params.GWei))
	}

	log.Debug("[MINTER] Initialized minter for ", signer.EthAddress().Hex())

	return &minter{
		client:           client,
		signer:           signer,
		locker:           locker,
		chainID:          chainID,
		defaultContract:  defaultContract,
		allowed:          allowed,
		gasMultiplierBps: app.Config.Ethereum.GasLimitMultiplierBps,
		maxFeePerGas:     maxFeePerGas,
		mintAbi:          mintAbi,
	}, nil
}

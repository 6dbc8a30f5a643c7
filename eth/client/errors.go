package client

import (
	"errors"
	"fmt"
)

var (
	ErrOnChainRevert    = errors.New("on-chain execution reverted")
	ErrSignerBusy       = errors.New("signer is busy")
	ErrTargetNotAllowed = errors.New("target contract not allowed")
)

// Stages at which a submission can fail.
const (
	StageValidate = "validate"
	StagePack     = "pack"
	StageNonce    = "nonce"
	StageFees     = "fees"
	StageEstimate = "estimate"
	StageSign     = "sign"
	StageSend     = "send"
)

// SubmissionError means the mint transaction was rejected before the node
// accepted it. The request cannot succeed as submitted.
type SubmissionError struct {
	Stage string
	Err   error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("mint submission failed at %s: %v", e.Stage, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// QueryError means a receipt could not be read. The request state is unknown.
type QueryError struct {
	TxHash string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("receipt query for %s failed: %v", e.TxHash, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

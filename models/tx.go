package models

type Receipt struct {
	TxHash      string `json:"tx_hash"`
	Success     bool   `json:"success"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
}

type DispatchResult string

const (
	DispatchIdle      DispatchResult = "idle"
	DispatchBusy      DispatchResult = "busy"
	DispatchSubmitted DispatchResult = "submitted"
	DispatchFailed    DispatchResult = "failed"
	DispatchError     DispatchResult = "error"
)

type PollResult string

const (
	PollIdle      PollResult = "idle"
	PollPending   PollResult = "pending"
	PollCompleted PollResult = "completed"
	PollReverted  PollResult = "reverted"
	PollError     PollResult = "error"
)

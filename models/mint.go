package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionMintRequests = "mint_requests"
)

type MintStatus string

// types of mint request status
const (
	StatusPending             MintStatus = "pending"
	StatusProcessing          MintStatus = "processing"
	StatusPendingConfirmation MintStatus = "pending_confirmation"
	StatusCompleted           MintStatus = "completed"
	StatusFailed              MintStatus = "failed"
)

func (s MintStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

func (s MintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusPendingConfirmation, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// PaymentSource is the audit trail of the payment that created a mint request.
type PaymentSource struct {
	EventID     string `bson:"event_id" json:"event_id"`
	BuyerID     string `bson:"buyer_id" json:"buyer_id"`
	BuyerEmail  string `bson:"buyer_email" json:"buyer_email"`
	AmountTotal int64  `bson:"amount_total" json:"amount_total"`
	Currency    string `bson:"currency" json:"currency"`
}

type MintRequest struct {
	Id               *primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExternalRef      string              `bson:"external_ref" json:"external_ref"`
	RecipientAddress string              `bson:"recipient_address" json:"recipient_address"`
	AssetRef         string              `bson:"asset_ref" json:"asset_ref"`
	TargetContract   string              `bson:"target_contract" json:"target_contract"`
	Status           MintStatus          `bson:"status" json:"status"`
	TxHash           string              `bson:"tx_hash" json:"tx_hash"`
	SignedTxHash     string              `bson:"signed_tx_hash" json:"signed_tx_hash"`
	BlockNumber      uint64              `bson:"block_number" json:"block_number"`
	ClaimID          string              `bson:"claim_id" json:"-"`
	ClaimedAt        *time.Time          `bson:"claimed_at" json:"claimed_at"`
	Attempts         int                 `bson:"attempts" json:"attempts"`
	LastCheckedAt    *time.Time          `bson:"last_checked_at" json:"last_checked_at"`
	ProcessedAt      *time.Time          `bson:"processed_at" json:"processed_at"`
	ErrorMessage     string              `bson:"error_message" json:"error_message"`
	SupersededBy     *primitive.ObjectID `bson:"superseded_by" json:"superseded_by"`
	Source           PaymentSource       `bson:"source" json:"source"`
	CreatedAt        time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time           `bson:"updated_at" json:"updated_at"`
}

// RequestID returns the hex form of the store-assigned id.
func (m *MintRequest) RequestID() string {
	if m == nil || m.Id == nil {
		return ""
	}
	return m.Id.Hex()
}

type ListFilter struct {
	Statuses    []MintStatus
	Recipient   string
	ExternalRef string
	Limit       int64
	Skip        int64
}

// StatusView is what a buyer-facing status query returns.
type StatusView struct {
	RequestID    string     `json:"request_id"`
	ExternalRef  string     `json:"external_ref"`
	Status       MintStatus `json:"status"`
	TxHash       string     `json:"tx_hash,omitempty"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	SupersededBy string     `json:"superseded_by,omitempty"`
}

func NewStatusView(m *MintRequest) StatusView {
	view := StatusView{
		RequestID:    m.RequestID(),
		ExternalRef:  m.ExternalRef,
		Status:       m.Status,
		TxHash:       m.TxHash,
		ProcessedAt:  m.ProcessedAt,
		ErrorMessage: m.ErrorMessage,
	}
	if m.SupersededBy != nil {
		view.SupersededBy = m.SupersededBy.Hex()
	}
	return view
}

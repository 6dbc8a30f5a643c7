package payment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dan13ram/mint-queue/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	EventTypePaymentCompleted = "payment.completed"

	// RejectedRefPrefix keys records of paid events that can never mint.
	RejectedRefPrefix = "rejected:"
)

var ErrInvalidEvent = errors.New("invalid payment event")

// Event is the normalized payment-completion notification, after the
// gateway signature has been verified.
type Event struct {
	EventID          string `json:"event_id"`
	Type             string `json:"type"`
	BuyerID          string `json:"buyer_id"`
	BuyerEmail       string `json:"buyer_email"`
	AssetRef         string `json:"asset_ref"`
	RecipientAddress string `json:"recipient_address"`
	TargetContract   string `json:"target_contract"`
	AmountTotal      int64  `json:"amount_total"`
	Currency         string `json:"currency"`
	Mintable         bool   `json:"mintable"`
}

// Actionable reports whether the event should produce a mint request.
func (e *Event) Actionable() bool {
	return e.Mintable && e.Type == EventTypePaymentCompleted
}

// Buyer is the buyer identity used for deduplication: the email when the
// gateway supplied one, the gateway's buyer id otherwise.
func (e *Event) Buyer() string {
	if email := strings.TrimSpace(e.BuyerEmail); email != "" {
		return strings.ToLower(email)
	}
	return strings.ToLower(strings.TrimSpace(e.BuyerID))
}

func (e *Event) Validate() error {
	if e.Buyer() == "" {
		return fmt.Errorf("%w: buyer is empty", ErrInvalidEvent)
	}
	if strings.TrimSpace(e.AssetRef) == "" {
		return fmt.Errorf("%w: asset ref is empty", ErrInvalidEvent)
	}
	if !common.IsHexAddress(e.RecipientAddress) {
		return fmt.Errorf("%w: recipient %q is not an address", ErrInvalidEvent, e.RecipientAddress)
	}
	if e.TargetContract != "" && !common.IsHexAddress(e.TargetContract) {
		return fmt.Errorf("%w: target contract %q is not an address", ErrInvalidEvent, e.TargetContract)
	}
	return nil
}

// ExternalRef derives the idempotency key of the purchase. The same buyer
// buying the same asset from the same contract always maps to the same ref.
func ExternalRef(e *Event, defaultContract string) string {
	target := e.TargetContract
	if target == "" {
		target = defaultContract
	}
	key := strings.Join([]string{
		e.Buyer(),
		strings.TrimSpace(e.AssetRef),
		strings.ToLower(strings.TrimSpace(target)),
	}, "|")
	return crypto.Keccak256Hash([]byte(key)).Hex()
}

// MintRequest converts a validated event into the record to enqueue.
func (e *Event) MintRequest(defaultContract string) *models.MintRequest {
	target := ""
	if e.TargetContract != "" {
		target = common.HexToAddress(e.TargetContract).Hex()
	}
	return &models.MintRequest{
		ExternalRef:      ExternalRef(e, defaultContract),
		RecipientAddress: common.HexToAddress(e.RecipientAddress).Hex(),
		AssetRef:         strings.TrimSpace(e.AssetRef),
		TargetContract:   target,
		Source: models.PaymentSource{
			EventID:     e.EventID,
			BuyerID:     e.BuyerID,
			BuyerEmail:  e.BuyerEmail,
			AmountTotal: e.AmountTotal,
			Currency:    e.Currency,
		},
	}
}

// RejectedRequest converts a paid event that failed validation into a failed
// record keyed by the gateway event id, so a redelivery finds it.
func (e *Event) RejectedRequest(reason error) *models.MintRequest {
	return &models.MintRequest{
		ExternalRef:      RejectedRefPrefix + strings.TrimSpace(e.EventID),
		RecipientAddress: strings.TrimSpace(e.RecipientAddress),
		AssetRef:         strings.TrimSpace(e.AssetRef),
		TargetContract:   strings.TrimSpace(e.TargetContract),
		Status:           models.StatusFailed,
		ErrorMessage:     reason.Error(),
		Source: models.PaymentSource{
			EventID:     e.EventID,
			BuyerID:     e.BuyerID,
			BuyerEmail:  e.BuyerEmail,
			AmountTotal: e.AmountTotal,
			Currency:    e.Currency,
		},
	}
}

func IsRejected(record *models.MintRequest) bool {
	return record != nil && strings.HasPrefix(record.ExternalRef, RejectedRefPrefix)
}

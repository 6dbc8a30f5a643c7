package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dan13ram/mint-queue/app"
	"github.com/dan13ram/mint-queue/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound         = errors.New("mint request not found")
	ErrDuplicateRequest = errors.New("duplicate mint request")
	ErrAlreadyMined     = errors.New("signed transaction already mined")
	ErrNotRequeueable   = errors.New("mint request cannot be requeued")
	ErrInvalidRequest   = errors.New("invalid mint request")
)

// Store is the durable record of mint requests. Every transition is a
// compare-and-set on the expected status; a transition that matches nothing
// returns false and leaves the record untouched.
//
// Transitions out of processing also match the caller's claim id, so a
// worker whose lease was re-claimed cannot decide the record's outcome.
// MarkFailed with an empty claim id only fails pending_confirmation records.
type Store interface {
	InsertIfAbsent(ctx context.Context, req *models.MintRequest) (*models.MintRequest, bool, error)
	ClaimNextPending(ctx context.Context, lease time.Duration) (*models.MintRequest, error)
	ClaimNextDueConfirmation(ctx context.Context, minInterval time.Duration) (*models.MintRequest, error)
	RecordSignedTx(ctx context.Context, id string, claimID string, txHash string) (bool, error)
	MarkSubmitted(ctx context.Context, id string, claimID string, txHash string) (bool, error)
	MarkConfirmed(ctx context.Context, id string, blockNumber uint64) (bool, error)
	MarkFailed(ctx context.Context, id string, claimID string, reason string) (bool, error)
	RecoverStaleSubmissions(ctx context.Context, lease time.Duration) (int64, error)
	Supersede(ctx context.Context, id string, replacementID string) (bool, error)
	FindByID(ctx context.Context, id string) (*models.MintRequest, error)
	FindByExternalRef(ctx context.Context, externalRef string) (*models.MintRequest, error)
	List(ctx context.Context, filter models.ListFilter) ([]models.MintRequest, error)
	CountByStatus(ctx context.Context) (map[models.MintStatus]int64, error)
	Close() error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

var newClaimID = uuid.NewString

// newRecord builds the record stored for a new request. Requests arrive
// pending, or already failed when the payment could not be turned into a mint;
// a failed request carries its reason and is never dispatched.
func newRecord(req *models.MintRequest, now time.Time) (models.MintRequest, error) {
	if req == nil || strings.TrimSpace(req.ExternalRef) == "" {
		return models.MintRequest{}, fmt.Errorf("%w: external ref is empty", ErrInvalidRequest)
	}

	id := primitive.NewObjectID()
	record := models.MintRequest{
		Id:               &id,
		ExternalRef:      req.ExternalRef,
		RecipientAddress: req.RecipientAddress,
		AssetRef:         req.AssetRef,
		TargetContract:   req.TargetContract,
		Status:           models.StatusPending,
		Source:           req.Source,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	switch req.Status {
	case "", models.StatusPending:
		if strings.TrimSpace(req.RecipientAddress) == "" {
			return models.MintRequest{}, fmt.Errorf("%w: recipient is empty", ErrInvalidRequest)
		}
	case models.StatusFailed:
		if strings.TrimSpace(req.ErrorMessage) == "" {
			return models.MintRequest{}, fmt.Errorf("%w: failed request without a reason", ErrInvalidRequest)
		}
		record.Status = models.StatusFailed
		record.ErrorMessage = req.ErrorMessage
		record.ProcessedAt = &now
	default:
		return models.MintRequest{}, fmt.Errorf("%w: cannot insert a %s request", ErrInvalidRequest, req.Status)
	}
	return record, nil
}

func listLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func logNoop(op string, id string) {
	log.WithFields(log.Fields{"request_id": id, "op": op}).
		Warn("[QUEUE] Transition matched no record in the expected state")
}

func emptyCounts() map[models.MintStatus]int64 {
	return map[models.MintStatus]int64{
		models.StatusPending:             0,
		models.StatusProcessing:          0,
		models.StatusPendingConfirmation: 0,
		models.StatusCompleted:           0,
		models.StatusFailed:              0,
	}
}

// NewStore opens the backend selected by the queue config.
func NewStore(ctx context.Context) (Store, error) {
	switch app.Config.Queue.Backend {
	case models.QueueBackendSQLite:
		log.Debug("[QUEUE] Using sqlite store: ", app.Config.Queue.SQLitePath)
		return OpenSQLiteStore(app.Config.Queue.SQLitePath, time.Now)
	case models.QueueBackendPostgres:
		log.Debug("[QUEUE] Using postgres store")
		return OpenPostgresStore(ctx, app.Config.Queue.PostgresDSN, time.Now)
	case models.QueueBackendMongo, "":
		if app.DB == nil {
			return nil, errors.New("mongo database is not initialized")
		}
		log.Debug("[QUEUE] Using mongodb store")
		return NewMongoStore(app.DB, time.Now), nil
	default:
		return nil, fmt.Errorf("unknown queue backend %q", app.Config.Queue.Backend)
	}
}

// Timeout bounds a single store call.
func Timeout() time.Duration {
	if app.Config.Queue.TimeoutMillis > 0 {
		return time.Duration(app.Config.Queue.TimeoutMillis) * time.Millisecond
	}
	return 5 * time.Second
}

package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dan13ram/mint-queue/app"
	"github.com/dan13ram/mint-queue/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore keeps mint requests in the mint_requests collection. The
// database wrapper bounds every call with its own timeout.
type MongoStore struct {
	db  app.Database
	now func() time.Time
}

var _ Store = &MongoStore{}

func NewMongoStore(db app.Database, now func() time.Time) *MongoStore {
	if now == nil {
		now = time.Now
	}
	return &MongoStore{db: db, now: now}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return oid, nil
}

func (s *MongoStore) InsertIfAbsent(ctx context.Context, req *models.MintRequest) (*models.MintRequest, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	record, err := newRecord(req, s.now())
	if err != nil {
		return nil, false, err
	}

	err = s.db.InsertOne(models.CollectionMintRequests, record)
	if err == nil {
		return &record, true, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return nil, false, err
	}

	log.WithField("external_ref", req.ExternalRef).Debug("[QUEUE] ", ErrDuplicateRequest)
	existing, err := s.FindByExternalRef(ctx, req.ExternalRef)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *MongoStore) ClaimNextPending(ctx context.Context, lease time.Duration) (*models.MintRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.now()
	eligible := []bson.M{{"status": models.StatusPending}}
	if lease > 0 {
		eligible = append(eligible, bson.M{
			"status":         models.StatusProcessing,
			"signed_tx_hash": "",
			"claimed_at":     bson.M{"$lte": now.Add(-lease)},
		})
	}

	filter := bson.M{"$or": eligible}
	sort := bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
	update := bson.M{
		"$set": bson.M{
			"status":     models.StatusProcessing,
			"claim_id":   newClaimID(),
			"claimed_at": now,
			"updated_at": now,
		},
		"$inc": bson.M{"attempts": 1},
	}

	var record models.MintRequest
	err := s.db.FindOneAndUpdate(models.CollectionMintRequests, filter, sort, update, &record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *MongoStore) ClaimNextDueConfirmation(ctx context.Context, minInterval time.Duration) (*models.MintRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.now()
	filter := bson.M{
		"status": models.StatusPendingConfirmation,
		"$or": []bson.M{
			{"last_checked_at": nil},
			{"last_checked_at": bson.M{"$lte": now.Add(-minInterval)}},
		},
	}
	// null sorts before any date
	sort := bson.D{{Key: "last_checked_at", Value: 1}, {Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
	update := bson.M{"$set": bson.M{"last_checked_at": now, "updated_at": now}}

	var record models.MintRequest
	err := s.db.FindOneAndUpdate(models.CollectionMintRequests, filter, sort, update, &record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *MongoStore) transition(ctx context.Context, op string, id string, filter bson.M, set bson.M) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	oid, err := objectID(id)
	if err != nil {
		return false, err
	}

	filter["_id"] = oid
	set["updated_at"] = s.now()

	matched, err := s.db.UpdateOne(models.CollectionMintRequests, filter, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	if matched == 0 {
		logNoop(op, id)
		return false, nil
	}
	return true, nil
}

func (s *MongoStore) RecordSignedTx(ctx context.Context, id string, claimID string, txHash string) (bool, error) {
	filter := bson.M{
		"status":         models.StatusProcessing,
		"claim_id":       claimID,
		"signed_tx_hash": "",
	}
	return s.transition(ctx, "record_signed_tx", id, filter, bson.M{"signed_tx_hash": txHash})
}

func (s *MongoStore) MarkSubmitted(ctx context.Context, id string, claimID string, txHash string) (bool, error) {
	filter := bson.M{
		"status":         models.StatusProcessing,
		"claim_id":       claimID,
		"signed_tx_hash": txHash,
	}
	set := bson.M{
		"status":  models.StatusPendingConfirmation,
		"tx_hash": txHash,
	}
	return s.transition(ctx, "mark_submitted", id, filter, set)
}

func (s *MongoStore) MarkConfirmed(ctx context.Context, id string, blockNumber uint64) (bool, error) {
	filter := bson.M{"status": models.StatusPendingConfirmation}
	set := bson.M{
		"status":       models.StatusCompleted,
		"block_number": int64(blockNumber),
		"processed_at": s.now(),
	}
	return s.transition(ctx, "mark_confirmed", id, filter, set)
}

func (s *MongoStore) MarkFailed(ctx context.Context, id string, claimID string, reason string) (bool, error) {
	filter := bson.M{"status": models.StatusPendingConfirmation}
	if claimID != "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"status": models.StatusPendingConfirmation},
			bson.M{"status": models.StatusProcessing, "claim_id": claimID},
		}}
	}
	set := bson.M{
		"status":        models.StatusFailed,
		"error_message": reason,
		"processed_at":  s.now(),
	}
	return s.transition(ctx, "mark_failed", id, filter, set)
}

func (s *MongoStore) Supersede(ctx context.Context, id string, replacementID string) (bool, error) {
	replacement, err := objectID(replacementID)
	if err != nil {
		return false, err
	}
	filter := bson.M{
		"status":        models.StatusFailed,
		"superseded_by": nil,
	}
	return s.transition(ctx, "supersede", id, filter, bson.M{"superseded_by": replacement})
}

func (s *MongoStore) RecoverStaleSubmissions(ctx context.Context, lease time.Duration) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if lease <= 0 {
		return 0, nil
	}

	now := s.now()
	filter := bson.M{
		"status":         models.StatusProcessing,
		"signed_tx_hash": bson.M{"$ne": ""},
		"claimed_at":     bson.M{"$lte": now.Add(-lease)},
	}
	// $set cannot copy a field, so the pipeline form promotes the journaled hash
	update := bson.A{
		bson.M{"$set": bson.M{
			"status":     models.StatusPendingConfirmation,
			"tx_hash":    "$signed_tx_hash",
			"updated_at": now,
		}},
	}
	return s.db.UpdateMany(models.CollectionMintRequests, filter, update)
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*models.MintRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return s.findOne(bson.M{"_id": oid})
}

func (s *MongoStore) FindByExternalRef(ctx context.Context, externalRef string) (*models.MintRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.findOne(bson.M{"external_ref": externalRef})
}

func (s *MongoStore) findOne(filter bson.M) (*models.MintRequest, error) {
	var record models.MintRequest
	err := s.db.FindOne(models.CollectionMintRequests, filter, &record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *MongoStore) List(ctx context.Context, filter models.ListFilter) ([]models.MintRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := bson.M{}
	if len(filter.Statuses) > 0 {
		query["status"] = bson.M{"$in": filter.Statuses}
	}
	if filter.Recipient != "" {
		query["recipient_address"] = filter.Recipient
	}
	if filter.ExternalRef != "" {
		query["external_ref"] = filter.ExternalRef
	}

	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	records := []models.MintRequest{}
	err := s.db.FindMany(models.CollectionMintRequests, query, sort, filter.Skip, listLimit(filter.Limit), &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

type statusCount struct {
	Status models.MintStatus `bson:"_id"`
	Count  int64             `bson:"count"`
}

func (s *MongoStore) CountByStatus(ctx context.Context) (map[models.MintStatus]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pipeline := bson.A{
		bson.M{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	var rows []statusCount
	if err := s.db.Aggregate(models.CollectionMintRequests, pipeline, &rows); err != nil {
		return nil, err
	}

	counts := emptyCounts()
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Close is a no-op; the shared database is disconnected by its owner.
func (s *MongoStore) Close() error {
	return nil
}

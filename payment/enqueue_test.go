package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/dan13ram/mint-queue/models"
	paymentMocks "github.com/dan13ram/mint-queue/payment/mocks"
	queueMocks "github.com/dan13ram/mint-queue/queue/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestEnqueueHandler(t *testing.T) (*EnqueueHandler, *queueMocks.MockStore, *paymentMocks.MockTrigger) {
	store := queueMocks.NewMockStore(t)
	trigger := paymentMocks.NewMockTrigger(t)
	return &EnqueueHandler{
		store:           store,
		trigger:         trigger,
		defaultContract: testContract,
	}, store, trigger
}

func storedRecord(req *models.MintRequest) *models.MintRequest {
	id := primitive.NewObjectID()
	record := *req
	record.Id = &id
	record.Status = models.StatusPending
	return &record
}

func TestEnqueue(t *testing.T) {
	ctx := context.Background()
	expectedRef := ExternalRef(testEvent(), testContract)

	t.Run("Created Fires Trigger", func(t *testing.T) {
		handler, store, trigger := newTestEnqueueHandler(t)

		store.EXPECT().InsertIfAbsent(ctx, mock.MatchedBy(func(req *models.MintRequest) bool {
			return req.ExternalRef == expectedRef && req.RecipientAddress == testRecipient
		})).RunAndReturn(func(_ context.Context, req *models.MintRequest) (*models.MintRequest, bool, error) {
			return storedRecord(req), true, nil
		}).Once()
		trigger.EXPECT().Fire(ctx).Return(nil).Once()

		record, created, err := handler.Enqueue(ctx, testEvent())

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, expectedRef, record.ExternalRef)
		assert.Equal(t, models.StatusPending, record.Status)
	})

	t.Run("Duplicate Is Success Without Trigger", func(t *testing.T) {
		handler, store, _ := newTestEnqueueHandler(t)

		existing := storedRecord(testEvent().MintRequest(testContract))
		existing.Status = models.StatusCompleted
		existing.TxHash = "0xabc"
		store.EXPECT().InsertIfAbsent(ctx, mock.Anything).Return(existing, false, nil).Once()

		record, created, err := handler.Enqueue(ctx, testEvent())

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing, record)
	})

	t.Run("Trigger Error Does Not Fail", func(t *testing.T) {
		handler, store, trigger := newTestEnqueueHandler(t)

		store.EXPECT().InsertIfAbsent(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, req *models.MintRequest) (*models.MintRequest, bool, error) {
				return storedRecord(req), true, nil
			}).Once()
		trigger.EXPECT().Fire(ctx).Return(errors.New("publish failed")).Once()

		record, created, err := handler.Enqueue(ctx, testEvent())

		assert.NoError(t, err)
		assert.True(t, created)
		assert.NotNil(t, record)
	})

	t.Run("No Trigger", func(t *testing.T) {
		handler, store, _ := newTestEnqueueHandler(t)
		handler.trigger = nil

		store.EXPECT().InsertIfAbsent(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, req *models.MintRequest) (*models.MintRequest, bool, error) {
				return storedRecord(req), true, nil
			}).Once()

		_, created, err := handler.Enqueue(ctx, testEvent())

		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("Store Error", func(t *testing.T) {
		handler, store, _ := newTestEnqueueHandler(t)
		storeErr := errors.New("connection refused")

		store.EXPECT().InsertIfAbsent(ctx, mock.Anything).Return(nil, false, storeErr).Once()

		record, created, err := handler.Enqueue(ctx, testEvent())

		assert.ErrorIs(t, err, storeErr)
		assert.False(t, created)
		assert.Nil(t, record)
	})

	t.Run("Invalid Event Is Stored Failed", func(t *testing.T) {
		handler, store, _ := newTestEnqueueHandler(t)
		event := testEvent()
		event.RecipientAddress = "nobody"

		store.EXPECT().InsertIfAbsent(ctx, mock.MatchedBy(func(req *models.MintRequest) bool {
			return req.ExternalRef == "rejected:evt_1" &&
				req.Status == models.StatusFailed &&
				req.RecipientAddress == "nobody" &&
				req.ErrorMessage == `invalid payment event: recipient "nobody" is not an address`
		})).RunAndReturn(func(_ context.Context, req *models.MintRequest) (*models.MintRequest, bool, error) {
			record := storedRecord(req)
			record.Status = models.StatusFailed
			return record, true, nil
		}).Once()

		record, created, err := handler.Enqueue(ctx, event)

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, models.StatusFailed, record.Status)
		assert.True(t, IsRejected(record))
	})

	t.Run("Invalid Event Redelivery", func(t *testing.T) {
		handler, store, _ := newTestEnqueueHandler(t)
		event := testEvent()
		event.AssetRef = " "

		existing := storedRecord(event.RejectedRequest(errors.New("invalid payment event: asset ref is empty")))
		existing.Status = models.StatusFailed
		store.EXPECT().InsertIfAbsent(ctx, mock.Anything).Return(existing, false, nil).Once()

		record, created, err := handler.Enqueue(ctx, event)

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing, record)
	})

	t.Run("Invalid Event Store Error", func(t *testing.T) {
		handler, store, _ := newTestEnqueueHandler(t)
		event := testEvent()
		event.RecipientAddress = "nobody"
		storeErr := errors.New("connection refused")

		store.EXPECT().InsertIfAbsent(ctx, mock.Anything).Return(nil, false, storeErr).Once()

		record, created, err := handler.Enqueue(ctx, event)

		assert.ErrorIs(t, err, storeErr)
		assert.False(t, created)
		assert.Nil(t, record)
	})

	t.Run("Invalid Event Without Id", func(t *testing.T) {
		handler, _, _ := newTestEnqueueHandler(t)
		event := testEvent()
		event.EventID = ""
		event.RecipientAddress = "nobody"

		_, created, err := handler.Enqueue(ctx, event)

		assert.ErrorIs(t, err, ErrInvalidEvent)
		assert.False(t, created)
	})

	t.Run("Not Mintable", func(t *testing.T) {
		handler, _, _ := newTestEnqueueHandler(t)
		event := testEvent()
		event.Mintable = false

		_, created, err := handler.Enqueue(ctx, event)

		assert.ErrorIs(t, err, ErrNotActionable)
		assert.False(t, created)
	})
}

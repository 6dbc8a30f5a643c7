package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/dan13ram/mint-queue/models"
	"github.com/dan13ram/mint-queue/queue/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestQueryStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("By Id And External Ref", func(t *testing.T) {
		clock := newTestClock()
		store := openTestSQLiteStore(t, clock)
		record := submitted(t, store, clock, "ref-a", "0xabc")

		for _, ref := range []string{record.RequestID(), "ref-a"} {
			view, err := QueryStatus(ctx, store, ref)
			require.NoError(t, err)
			assert.Equal(t, record.RequestID(), view.RequestID)
			assert.Equal(t, models.StatusPendingConfirmation, view.Status)
			assert.Equal(t, "0xabc", view.TxHash)
			assert.Nil(t, view.ProcessedAt)
		}
	})

	t.Run("Reports Failure Verbatim", func(t *testing.T) {
		clock := newTestClock()
		store := openTestSQLiteStore(t, clock)
		record := submitted(t, store, clock, "ref-a", "0xabc")
		_, err := store.MarkFailed(ctx, record.RequestID(), "", "on-chain execution reverted")
		require.NoError(t, err)

		view, err := QueryStatus(ctx, store, "ref-a")
		require.NoError(t, err)
		assert.Equal(t, models.StatusFailed, view.Status)
		assert.Equal(t, "on-chain execution reverted", view.ErrorMessage)
		assert.Equal(t, "0xabc", view.TxHash)
		assert.NotNil(t, view.ProcessedAt)
	})

	t.Run("Follows Replacements", func(t *testing.T) {
		clock := newTestClock()
		store := openTestSQLiteStore(t, clock)

		insert(t, store, clock, "ref-a")
		claimed, err := store.ClaimNextPending(ctx, testLease)
		require.NoError(t, err)
		_, err = store.MarkFailed(ctx, claimed.RequestID(), claimed.ClaimID, "boom")
		require.NoError(t, err)

		replacement, err := Requeue(ctx, store, nil, claimed.RequestID())
		require.NoError(t, err)

		view, err := QueryStatus(ctx, store, "ref-a")
		require.NoError(t, err)
		assert.Equal(t, replacement.RequestID(), view.RequestID)
		assert.Equal(t, models.StatusPending, view.Status)
		assert.Empty(t, view.SupersededBy)
	})

	t.Run("Not Found", func(t *testing.T) {
		store := openTestSQLiteStore(t, newTestClock())

		_, err := QueryStatus(ctx, store, "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = QueryStatus(ctx, store, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = QueryStatus(ctx, store, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Store Error", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().FindByExternalRef(ctx, "ref-a").Return(nil, errors.New("timeout"))

		_, err := QueryStatus(ctx, store, "ref-a")
		assert.EqualError(t, err, "timeout")
	})

	t.Run("Bounded Hops", func(t *testing.T) {
		store := mocks.NewMockStore(t)

		ids := make([]primitive.ObjectID, maxSupersedeHops+2)
		for i := range ids {
			ids[i] = primitive.NewObjectID()
		}
		record := func(i int) *models.MintRequest {
			return &models.MintRequest{Id: &ids[i], Status: models.StatusFailed, SupersededBy: &ids[i+1]}
		}

		store.EXPECT().FindByID(ctx, ids[0].Hex()).Return(record(0), nil)
		for i := 1; i <= maxSupersedeHops; i++ {
			store.EXPECT().FindByID(ctx, ids[i].Hex()).Return(record(i), nil)
		}

		view, err := QueryStatus(ctx, store, ids[0].Hex())
		require.NoError(t, err)
		assert.Equal(t, ids[maxSupersedeHops].Hex(), view.RequestID)
		assert.Equal(t, ids[maxSupersedeHops+1].Hex(), view.SupersededBy)
	})
}

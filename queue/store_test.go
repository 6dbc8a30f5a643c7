package queue

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/dan13ram/mint-queue/models"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetOutput(io.Discard)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

const (
	testRecipient = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testLease     = 5 * time.Minute
)

func testRequest(ref string) *models.MintRequest {
	return &models.MintRequest{
		ExternalRef:      ref,
		RecipientAddress: testRecipient,
		AssetRef:         "ipfs://asset/" + ref,
		Source: models.PaymentSource{
			EventID:     "evt_" + ref,
			BuyerEmail:  "buyer@example.com",
			AmountTotal: 2500,
			Currency:    "usd",
		},
	}
}

func insert(t *testing.T, store Store, clock *testClock, ref string) *models.MintRequest {
	t.Helper()
	clock.Advance(time.Millisecond)
	record, created, err := store.InsertIfAbsent(context.Background(), testRequest(ref))
	require.NoError(t, err)
	require.True(t, created)
	return record
}

// submitted drives a fresh record to pending_confirmation with txHash.
func submitted(t *testing.T, store Store, clock *testClock, ref string, txHash string) *models.MintRequest {
	t.Helper()
	ctx := context.Background()
	insert(t, store, clock, ref)

	claimed, err := store.ClaimNextPending(ctx, testLease)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, ref, claimed.ExternalRef)

	ok, err := store.RecordSignedTx(ctx, claimed.RequestID(), claimed.ClaimID, txHash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.MarkSubmitted(ctx, claimed.RequestID(), claimed.ClaimID, txHash)
	require.NoError(t, err)
	require.True(t, ok)

	record, err := store.FindByID(ctx, claimed.RequestID())
	require.NoError(t, err)
	return record
}

func find(t *testing.T, store Store, id string) *models.MintRequest {
	t.Helper()
	record, err := store.FindByID(context.Background(), id)
	require.NoError(t, err)
	return record
}

// runStoreSuite exercises the behaviour every backend must share.
func runStoreSuite(t *testing.T, open func(t *testing.T, clock *testClock) Store) {
	ctx := context.Background()

	t.Run("Insert Is Idempotent", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		first, created, err := store.InsertIfAbsent(ctx, testRequest("ref-a"))
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, models.StatusPending, first.Status)
		assert.Empty(t, first.TxHash)
		assert.Nil(t, first.LastCheckedAt)
		assert.Equal(t, "evt_ref-a", first.Source.EventID)

		second, created, err := store.InsertIfAbsent(ctx, testRequest("ref-a"))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.RequestID(), second.RequestID())

		records, err := store.List(ctx, models.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("Insert Rejects Empty Ref", func(t *testing.T) {
		store := open(t, newTestClock())

		_, _, err := store.InsertIfAbsent(ctx, testRequest(""))
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("Claim Oldest Pending First", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		a := insert(t, store, clock, "ref-a")
		b := insert(t, store, clock, "ref-b")

		claimed, err := store.ClaimNextPending(ctx, testLease)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, a.RequestID(), claimed.RequestID())
		assert.Equal(t, models.StatusProcessing, claimed.Status)
		assert.Equal(t, 1, claimed.Attempts)
		assert.NotEmpty(t, claimed.ClaimID)
		require.NotNil(t, claimed.ClaimedAt)
		assert.True(t, clock.Now().Equal(*claimed.ClaimedAt))

		claimed, err = store.ClaimNextPending(ctx, testLease)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, b.RequestID(), claimed.RequestID())

		claimed, err = store.ClaimNextPending(ctx, testLease)
		assert.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("Expired Lease Is Reclaimed Only Before Signing", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		insert(t, store, clock, "unsigned")
		insert(t, store, clock, "signed")

		unsigned, err := store.ClaimNextPending(ctx, testLease)
		require.NoError(t, err)
		signed, err := store.ClaimNextPending(ctx, testLease)
		require.NoError(t, err)
		ok, err := store.RecordSignedTx(ctx, signed.RequestID(), signed.ClaimID, "0xsigned")
		require.NoError(t, err)
		require.True(t, ok)

		clock.Advance(testLease - time.Second)
		claimed, err := store.ClaimNextPending(ctx, testLease)
		assert.NoError(t, err)
		assert.Nil(t, claimed)

		claimed, err = store.ClaimNextPending(ctx, 0)
		assert.NoError(t, err)
		assert.Nil(t, claimed)

		clock.Advance(time.Second)
		claimed, err = store.ClaimNextPending(ctx, testLease)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, unsigned.RequestID(), claimed.RequestID())
		assert.Equal(t, 2, claimed.Attempts)
		assert.NotEqual(t, unsigned.ClaimID, claimed.ClaimID)

		// the stale claim can no longer journal a hash
		ok, err = store.RecordSignedTx(ctx, unsigned.RequestID(), unsigned.ClaimID, "0xstale")
		assert.NoError(t, err)
		assert.False(t, ok)

		claimed, err = store.ClaimNextPending(ctx, testLease)
		assert.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("Journal And Submit Are Compare And Set", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		insert(t, store, clock, "ref-a")
		claimed, err := store.ClaimNextPending(ctx, testLease)
		require.NoError(t, err)
		id := claimed.RequestID()

		ok, err := store.MarkSubmitted(ctx, id, claimed.ClaimID, "0xabc")
		assert.NoError(t, err)
		assert.False(t, ok, "submit needs the journaled hash")

		ok, err = store.RecordSignedTx(ctx, id, "other-claim", "0xabc")
		assert.NoError(t, err)
		assert.False(t, ok)

		ok, err = store.RecordSignedTx(ctx, id, claimed.ClaimID, "0xabc")
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.RecordSignedTx(ctx, id, claimed.ClaimID, "0xdef")
		assert.NoError(t, err)
		assert.False(t, ok, "a journaled hash is never replaced")

		ok, err = store.MarkSubmitted(ctx, id, claimed.ClaimID, "0xdef")
		assert.NoError(t, err)
		assert.False(t, ok)

		ok, err = store.MarkSubmitted(ctx, id, "other-claim", "0xabc")
		assert.NoError(t, err)
		assert.False(t, ok, "submit needs the live claim")

		ok, err = store.MarkSubmitted(ctx, id, claimed.ClaimID, "0xabc")
		assert.NoError(t, err)
		assert.True(t, ok)

		record := find(t, store, id)
		assert.Equal(t, models.StatusPendingConfirmation, record.Status)
		assert.Equal(t, "0xabc", record.TxHash)
		assert.Nil(t, record.ProcessedAt)
	})

	t.Run("Failed Submission Keeps Tx Hash Empty", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		insert(t, store, clock, "ref-a")
		claimed, err := store.ClaimNextPending(ctx, testLease)
		require.NoError(t, err)

		ok, err := store.MarkFailed(ctx, claimed.RequestID(), "", "insufficient funds")
		assert.NoError(t, err)
		assert.False(t, ok, "processing records fail only under their claim")

		ok, err = store.MarkFailed(ctx, claimed.RequestID(), claimed.ClaimID, "insufficient funds")
		assert.NoError(t, err)
		assert.True(t, ok)

		record := find(t, store, claimed.RequestID())
		assert.Equal(t, models.StatusFailed, record.Status)
		assert.Equal(t, "insufficient funds", record.ErrorMessage)
		assert.Empty(t, record.TxHash)
		assert.NotNil(t, record.ProcessedAt)
	})

	t.Run("Pending Records Cannot Fail Or Complete", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		record := insert(t, store, clock, "ref-a")

		ok, err := store.MarkFailed(ctx, record.RequestID(), "", "nope")
		assert.NoError(t, err)
		assert.False(t, ok)

		ok, err = store.MarkConfirmed(ctx, record.RequestID(), 1)
		assert.NoError(t, err)
		assert.False(t, ok)

		assert.Equal(t, models.StatusPending, find(t, store, record.RequestID()).Status)
	})

	t.Run("Confirmation Claims Respect Minimum Interval", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)
		interval := 30 * time.Second

		record := submitted(t, store, clock, "ref-a", "0xabc")

		var checks []time.Time
		for i := 0; i < 3; i++ {
			claimed, err := store.ClaimNextDueConfirmation(ctx, interval)
			require.NoError(t, err)
			require.NotNil(t, claimed)
			assert.Equal(t, record.RequestID(), claimed.RequestID())
			require.NotNil(t, claimed.LastCheckedAt)
			checks = append(checks, *claimed.LastCheckedAt)

			claimed, err = store.ClaimNextDueConfirmation(ctx, interval)
			assert.NoError(t, err)
			assert.Nil(t, claimed, "second poll within the interval")

			clock.Advance(interval / 2)
			claimed, err = store.ClaimNextDueConfirmation(ctx, interval)
			assert.NoError(t, err)
			assert.Nil(t, claimed)

			clock.Advance(interval / 2)
		}

		assert.True(t, checks[1].After(checks[0]))
		assert.True(t, checks[2].After(checks[1]))
		assert.GreaterOrEqual(t, checks[1].Sub(checks[0]), interval)

		assert.Equal(t, models.StatusPendingConfirmation, find(t, store, record.RequestID()).Status)
	})

	t.Run("Never Checked Records Are Polled First", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		old := submitted(t, store, clock, "ref-old", "0x01")
		claimed, err := store.ClaimNextDueConfirmation(ctx, 0)
		require.NoError(t, err)
		require.Equal(t, old.RequestID(), claimed.RequestID())

		fresh := submitted(t, store, clock, "ref-new", "0x02")
		clock.Advance(time.Minute)

		claimed, err = store.ClaimNextDueConfirmation(ctx, 0)
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, fresh.RequestID(), claimed.RequestID())
	})

	t.Run("Terminal Records Are Immutable", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		completed := submitted(t, store, clock, "ref-completed", "0xaaa")
		ok, err := store.MarkConfirmed(ctx, completed.RequestID(), 42)
		require.NoError(t, err)
		require.True(t, ok)

		reverted := submitted(t, store, clock, "ref-reverted", "0xbbb")
		ok, err = store.MarkFailed(ctx, reverted.RequestID(), "", "on-chain execution reverted")
		require.NoError(t, err)
		require.True(t, ok)

		before := map[string]*models.MintRequest{
			completed.RequestID(): find(t, store, completed.RequestID()),
			reverted.RequestID():  find(t, store, reverted.RequestID()),
		}
		assert.Equal(t, uint64(42), before[completed.RequestID()].BlockNumber)

		clock.Advance(time.Hour)
		for id, record := range before {
			ok, err = store.MarkSubmitted(ctx, id, record.ClaimID, "0xccc")
			assert.NoError(t, err)
			assert.False(t, ok)
			ok, err = store.MarkConfirmed(ctx, id, 99)
			assert.NoError(t, err)
			assert.False(t, ok)
			ok, err = store.MarkFailed(ctx, id, record.ClaimID, "late failure")
			assert.NoError(t, err)
			assert.False(t, ok)
			ok, err = store.RecordSignedTx(ctx, id, "", "0xccc")
			assert.NoError(t, err)
			assert.False(t, ok)
		}

		n, err := store.RecoverStaleSubmissions(ctx, time.Second)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), n)

		claimed, err := store.ClaimNextPending(ctx, time.Second)
		assert.NoError(t, err)
		assert.Nil(t, claimed)
		claimed, err = store.ClaimNextDueConfirmation(ctx, 0)
		assert.NoError(t, err)
		assert.Nil(t, claimed)

		for id, want := range before {
			got := find(t, store, id)
			assert.Equal(t, want.Status, got.Status)
			assert.Equal(t, want.TxHash, got.TxHash)
			assert.Equal(t, want.ErrorMessage, got.ErrorMessage)
			assert.Equal(t, want.BlockNumber, got.BlockNumber)
		}
	})

	t.Run("Stale Signed Submissions Move To Confirmation", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		insert(t, store, clock, "ref-a")
		claimed, err := store.ClaimNextPending(ctx, testLease)
		require.NoError(t, err)
		ok, err := store.RecordSignedTx(ctx, claimed.RequestID(), claimed.ClaimID, "0xjournaled")
		require.NoError(t, err)
		require.True(t, ok)

		n, err := store.RecoverStaleSubmissions(ctx, testLease)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), n)

		clock.Advance(testLease)
		n, err = store.RecoverStaleSubmissions(ctx, testLease)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)

		record := find(t, store, claimed.RequestID())
		assert.Equal(t, models.StatusPendingConfirmation, record.Status)
		assert.Equal(t, "0xjournaled", record.TxHash)

		// a late MarkSubmitted from the original worker is a no-op
		ok, err = store.MarkSubmitted(ctx, claimed.RequestID(), claimed.ClaimID, "0xjournaled")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Expired Claim Cannot Settle Record", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		insert(t, store, clock, "ref-a")
		stale, err := store.ClaimNextPending(ctx, time.Minute)
		require.NoError(t, err)
		require.NotNil(t, stale)

		clock.Advance(2 * time.Minute)
		live, err := store.ClaimNextPending(ctx, time.Minute)
		require.NoError(t, err)
		require.NotNil(t, live)
		require.Equal(t, stale.RequestID(), live.RequestID())
		require.NotEqual(t, stale.ClaimID, live.ClaimID)
		id := live.RequestID()

		ok, err := store.MarkFailed(ctx, id, stale.ClaimID, "insufficient funds")
		assert.NoError(t, err)
		assert.False(t, ok, "the expired claim cannot fail the record")

		ok, err = store.RecordSignedTx(ctx, id, live.ClaimID, "0xlive")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = store.MarkSubmitted(ctx, id, stale.ClaimID, "0xlive")
		assert.NoError(t, err)
		assert.False(t, ok, "the expired claim cannot submit the record")

		ok, err = store.MarkSubmitted(ctx, id, live.ClaimID, "0xlive")
		assert.NoError(t, err)
		assert.True(t, ok)

		record := find(t, store, id)
		assert.Equal(t, models.StatusPendingConfirmation, record.Status)
		assert.Equal(t, "0xlive", record.TxHash)
		assert.Empty(t, record.ErrorMessage)
		assert.Equal(t, 2, record.Attempts)
	})

	t.Run("Rejected Requests Are Stored Failed", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		req := testRequest("rejected:evt_1")
		req.RecipientAddress = "not-an-address"
		req.Status = models.StatusFailed
		req.ErrorMessage = "invalid payment event: recipient is not an address"

		record, created, err := store.InsertIfAbsent(ctx, req)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, models.StatusFailed, record.Status)
		assert.Equal(t, req.ErrorMessage, record.ErrorMessage)
		assert.Equal(t, "not-an-address", record.RecipientAddress)
		assert.Empty(t, record.TxHash)
		require.NotNil(t, record.ProcessedAt)
		assert.True(t, clock.Now().Equal(*record.ProcessedAt))

		again, created, err := store.InsertIfAbsent(ctx, req)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, record.RequestID(), again.RequestID())

		claimed, err := store.ClaimNextPending(ctx, testLease)
		assert.NoError(t, err)
		assert.Nil(t, claimed, "failed requests are never dispatched")
	})

	t.Run("Insert Rejects Other Statuses", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		req := testRequest("ref-a")
		req.Status = models.StatusCompleted
		_, _, err := store.InsertIfAbsent(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidRequest)

		req.Status = models.StatusFailed
		_, _, err = store.InsertIfAbsent(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidRequest, "failed requests need a reason")
	})

	t.Run("Supersede Links Failed Records Once", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		insert(t, store, clock, "ref-a")
		claimed, err := store.ClaimNextPending(ctx, testLease)
		require.NoError(t, err)

		replacement := insert(t, store, clock, "ref-a#retry")

		ok, err := store.Supersede(ctx, claimed.RequestID(), replacement.RequestID())
		assert.NoError(t, err)
		assert.False(t, ok, "only failed records are superseded")

		_, err = store.MarkFailed(ctx, claimed.RequestID(), claimed.ClaimID, "boom")
		require.NoError(t, err)

		ok, err = store.Supersede(ctx, claimed.RequestID(), replacement.RequestID())
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Supersede(ctx, claimed.RequestID(), claimed.RequestID())
		assert.NoError(t, err)
		assert.False(t, ok)

		record := find(t, store, claimed.RequestID())
		require.NotNil(t, record.SupersededBy)
		assert.Equal(t, replacement.RequestID(), record.SupersededBy.Hex())
		assert.Equal(t, models.StatusFailed, record.Status)
	})

	t.Run("List And Count", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		for i := 0; i < 5; i++ {
			insert(t, store, clock, fmt.Sprintf("ref-%d", i))
		}
		claimed, err := store.ClaimNextPending(ctx, testLease)
		require.NoError(t, err)

		records, err := store.List(ctx, models.ListFilter{})
		require.NoError(t, err)
		require.Len(t, records, 5)
		assert.Equal(t, "ref-4", records[0].ExternalRef, "newest first")
		assert.Equal(t, "ref-0", records[4].ExternalRef)

		records, err = store.List(ctx, models.ListFilter{Statuses: []models.MintStatus{models.StatusProcessing}})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, claimed.RequestID(), records[0].RequestID())

		records, err = store.List(ctx, models.ListFilter{Limit: 2, Skip: 1})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "ref-3", records[0].ExternalRef)

		records, err = store.List(ctx, models.ListFilter{ExternalRef: "ref-2", Recipient: testRecipient})
		require.NoError(t, err)
		assert.Len(t, records, 1)

		records, err = store.List(ctx, models.ListFilter{Recipient: "0x0000000000000000000000000000000000000000"})
		require.NoError(t, err)
		assert.Empty(t, records)

		counts, err := store.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), counts[models.StatusPending])
		assert.Equal(t, int64(1), counts[models.StatusProcessing])
		assert.Equal(t, int64(0), counts[models.StatusCompleted])
	})

	t.Run("Lookups", func(t *testing.T) {
		clock := newTestClock()
		store := open(t, clock)

		record := insert(t, store, clock, "ref-a")

		byRef, err := store.FindByExternalRef(ctx, "ref-a")
		require.NoError(t, err)
		assert.Equal(t, record.RequestID(), byRef.RequestID())

		_, err = store.FindByExternalRef(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.FindByID(ctx, "000000000000000000000000")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

package queue

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dan13ram/mint-queue/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLiteStore(t *testing.T, clock *testClock) Store {
	t.Helper()
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "queue.db"), clock.Now)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	runStoreSuite(t, openTestSQLiteStore)
}

func TestOpenSQLiteStore(t *testing.T) {
	t.Run("Empty Path", func(t *testing.T) {
		store, err := OpenSQLiteStore("", nil)
		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("Reopen Keeps Records", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "queue.db")
		clock := newTestClock()

		store, err := OpenSQLiteStore(path, clock.Now)
		require.NoError(t, err)
		record := insert(t, store, clock, "ref-a")
		require.NoError(t, store.Close())

		store, err = OpenSQLiteStore(path, clock.Now)
		require.NoError(t, err)
		defer store.Close()

		found, err := store.FindByExternalRef(context.Background(), "ref-a")
		require.NoError(t, err)
		assert.Equal(t, record.RequestID(), found.RequestID())
		assert.True(t, record.CreatedAt.Equal(found.CreatedAt))
	})
}

func TestSQLiteStoreConcurrentDeliveries(t *testing.T) {
	clock := newTestClock()
	store := openTestSQLiteStore(t, clock)

	var wg sync.WaitGroup
	var mu sync.Mutex
	ids := map[string]bool{}
	created := 0

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, ok, err := store.InsertIfAbsent(context.Background(), testRequest("ref-dup"))
			assert.NoError(t, err)
			mu.Lock()
			defer mu.Unlock()
			ids[record.RequestID()] = true
			if ok {
				created++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Len(t, ids, 1)
}

func TestSQLiteStoreExclusiveClaims(t *testing.T) {
	clock := newTestClock()
	store := openTestSQLiteStore(t, clock)

	const total = 25
	for i := 0; i < total; i++ {
		insert(t, store, clock, fmt.Sprintf("ref-%02d", i))
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	claims := map[string]int{}

	for w := 0; w < 6; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				record, err := store.ClaimNextPending(context.Background(), testLease)
				if !assert.NoError(t, err) || record == nil {
					return
				}
				mu.Lock()
				claims[record.RequestID()]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, claims, total)
	for id, n := range claims {
		assert.Equal(t, 1, n, "request %s claimed more than once", id)
	}

	counts, err := store.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(total), counts[models.StatusProcessing])
	assert.Equal(t, int64(0), counts[models.StatusPending])
}

func TestSQLiteStoreConcurrentConfirmationClaims(t *testing.T) {
	clock := newTestClock()
	store := openTestSQLiteStore(t, clock)

	for i := 0; i < 8; i++ {
		submitted(t, store, clock, fmt.Sprintf("ref-%d", i), fmt.Sprintf("0x%02x", i))
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	claims := map[string]int{}
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				record, err := store.ClaimNextDueConfirmation(context.Background(), time.Minute)
				if !assert.NoError(t, err) || record == nil {
					return
				}
				mu.Lock()
				claims[record.RequestID()]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, claims, 8)
	for _, n := range claims {
		assert.Equal(t, 1, n)
	}
}

func TestSQLiteStoreStatusIsMonotonic(t *testing.T) {
	clock := newTestClock()
	store := openTestSQLiteStore(t, clock)
	ctx := context.Background()

	rank := map[models.MintStatus]int{
		models.StatusPending:             0,
		models.StatusProcessing:          1,
		models.StatusPendingConfirmation: 2,
		models.StatusCompleted:           3,
		models.StatusFailed:              3,
	}

	record := insert(t, store, clock, "ref-a")
	id := record.RequestID()
	last := record.Status

	ops := []func(){
		func() { store.MarkConfirmed(ctx, id, 1) },
		func() { store.MarkSubmitted(ctx, id, find(t, store, id).ClaimID, "0xabc") },
		func() { store.ClaimNextPending(ctx, testLease) },
		func() { store.MarkSubmitted(ctx, id, find(t, store, id).ClaimID, "0xabc") },
		func() { clock.Advance(testLease); store.ClaimNextPending(ctx, testLease) },
		func() {
			current := find(t, store, id)
			store.RecordSignedTx(ctx, id, current.ClaimID, "0xabc")
		},
		func() { clock.Advance(testLease); store.ClaimNextPending(ctx, testLease) },
		func() { store.MarkSubmitted(ctx, id, find(t, store, id).ClaimID, "0xabc") },
		func() { store.ClaimNextPending(ctx, time.Nanosecond) },
		func() { store.RecoverStaleSubmissions(ctx, time.Nanosecond) },
		func() { store.MarkConfirmed(ctx, id, 7) },
		func() { store.MarkFailed(ctx, id, find(t, store, id).ClaimID, "late") },
		func() { store.ClaimNextDueConfirmation(ctx, 0) },
	}

	for i, op := range ops {
		op()
		current := find(t, store, id)
		assert.GreaterOrEqual(t, rank[current.Status], rank[last], "op %d moved %s back to %s", i, last, current.Status)
		if last.Terminal() {
			assert.Equal(t, last, current.Status, "op %d changed a terminal record", i)
		}
		last = current.Status
	}

	assert.Equal(t, models.StatusCompleted, last)
	assert.Equal(t, "0xabc", find(t, store, id).TxHash)
}

func TestDialectRebind(t *testing.T) {
	query := `UPDATE t SET a = ? WHERE b = ? AND c IN (?, ?)`

	assert.Equal(t, query, sqliteDialect.rebind(query))
	assert.Equal(t, `UPDATE t SET a = $1 WHERE b = $2 AND c IN ($3, $4)`, postgresDialect.rebind(query))
}

func TestDecodeTime(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, at.Equal(*decodeTime(at.UnixMilli())))
	assert.True(t, at.Equal(*decodeTime(at.In(time.FixedZone("x", 3600)))))
	assert.Equal(t, time.UTC, decodeTime(at.UnixMilli()).Location())
	assert.Nil(t, decodeTime(nil))
	assert.Nil(t, decodeTime("2024-05-01"))
}

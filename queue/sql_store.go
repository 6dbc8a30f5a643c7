package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dan13ram/mint-queue/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dialect captures what differs between the SQL backends.
type dialect struct {
	name string
	// numbered placeholders ($1, $2...) instead of ?
	numbered bool
	// appended to the claim subquery
	lockClause string
	encodeTime func(t time.Time) any
}

func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// decodeTime accepts what either driver hands back for a timestamp column.
func decodeTime(v any) *time.Time {
	switch t := v.(type) {
	case int64:
		tt := time.UnixMilli(t).UTC()
		return &tt
	case time.Time:
		tt := t.UTC()
		return &tt
	}
	return nil
}

const recordColumns = `id, external_ref, recipient_address, asset_ref, target_contract, status,
	tx_hash, signed_tx_hash, block_number, claim_id, claimed_at, attempts, last_checked_at,
	processed_at, error_message, superseded_by, source_event_id, source_buyer_id,
	source_buyer_email, source_amount_total, source_currency, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.MintRequest, error) {
	var (
		record       models.MintRequest
		id           string
		status       string
		blockNumber  int64
		supersededBy sql.NullString
	)
	var claimedAt, lastCheckedAt, processedAt, createdAt, updatedAt any
	err := row.Scan(
		&id, &record.ExternalRef, &record.RecipientAddress, &record.AssetRef, &record.TargetContract, &status,
		&record.TxHash, &record.SignedTxHash, &blockNumber, &record.ClaimID, &claimedAt, &record.Attempts, &lastCheckedAt,
		&processedAt, &record.ErrorMessage, &supersededBy, &record.Source.EventID, &record.Source.BuyerID,
		&record.Source.BuyerEmail, &record.Source.AmountTotal, &record.Source.Currency, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid stored id %q: %w", id, err)
	}
	record.Id = &oid
	record.Status = models.MintStatus(status)
	record.BlockNumber = uint64(blockNumber)
	record.ClaimedAt = decodeTime(claimedAt)
	record.LastCheckedAt = decodeTime(lastCheckedAt)
	record.ProcessedAt = decodeTime(processedAt)
	if t := decodeTime(createdAt); t != nil {
		record.CreatedAt = *t
	}
	if t := decodeTime(updatedAt); t != nil {
		record.UpdatedAt = *t
	}
	if supersededBy.Valid {
		replacement, err := primitive.ObjectIDFromHex(supersededBy.String)
		if err == nil {
			record.SupersededBy = &replacement
		}
	}
	return &record, nil
}

// SQLStore implements Store on database/sql for SQLite and PostgreSQL.
// Claims are single UPDATE statements, so concurrent callers never share a record.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
	now     func() time.Time
	onClose func()
}

var _ Store = &SQLStore{}

func (s *SQLStore) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.dialect.rebind(query), args...)
}

func (s *SQLStore) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, s.dialect.rebind(query), args...)
}

func (s *SQLStore) ts(t time.Time) any {
	return s.dialect.encodeTime(t)
}

func (s *SQLStore) tsOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return s.ts(*t)
}

func (s *SQLStore) InsertIfAbsent(ctx context.Context, req *models.MintRequest) (*models.MintRequest, bool, error) {
	record, err := newRecord(req, s.now())
	if err != nil {
		return nil, false, err
	}

	result, err := s.exec(ctx, `
INSERT INTO mint_requests (
	id, external_ref, recipient_address, asset_ref, target_contract, status,
	error_message, processed_at,
	source_event_id, source_buyer_id, source_buyer_email, source_amount_total, source_currency,
	created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (external_ref) DO NOTHING`,
		record.RequestID(), record.ExternalRef, record.RecipientAddress, record.AssetRef, record.TargetContract, string(record.Status),
		record.ErrorMessage, s.tsOrNil(record.ProcessedAt),
		record.Source.EventID, record.Source.BuyerID, record.Source.BuyerEmail, record.Source.AmountTotal, record.Source.Currency,
		s.ts(record.CreatedAt), s.ts(record.UpdatedAt),
	)
	if err != nil {
		return nil, false, err
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return nil, false, err
	}
	if inserted == 1 {
		created, err := s.FindByID(ctx, record.RequestID())
		if err != nil {
			return nil, false, err
		}
		return created, true, nil
	}

	log.WithField("external_ref", req.ExternalRef).Debug("[QUEUE] ", ErrDuplicateRequest)
	existing, err := s.FindByExternalRef(ctx, req.ExternalRef)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *SQLStore) ClaimNextPending(ctx context.Context, lease time.Duration) (*models.MintRequest, error) {
	now := s.now()
	claimID := newClaimID()

	eligible := `status = ?`
	eligibleArgs := []any{string(models.StatusPending)}
	if lease > 0 {
		eligible = `(status = ? OR (status = ? AND signed_tx_hash = '' AND claimed_at <= ?))`
		eligibleArgs = []any{string(models.StatusPending), string(models.StatusProcessing), s.ts(now.Add(-lease))}
	}

	query := fmt.Sprintf(`
UPDATE mint_requests
SET status = ?, claim_id = ?, claimed_at = ?, attempts = attempts + 1, updated_at = ?
WHERE id = (
	SELECT id FROM mint_requests
	WHERE %s
	ORDER BY created_at, id
	LIMIT 1
	%s
) AND %s
RETURNING %s`, eligible, s.dialect.lockClause, eligible, recordColumns)

	args := []any{string(models.StatusProcessing), claimID, s.ts(now), s.ts(now)}
	args = append(args, eligibleArgs...)
	args = append(args, eligibleArgs...)

	record, err := scanRecord(s.queryRow(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return record, err
}

func (s *SQLStore) ClaimNextDueConfirmation(ctx context.Context, minInterval time.Duration) (*models.MintRequest, error) {
	now := s.now()
	due := `status = ? AND (last_checked_at IS NULL OR last_checked_at <= ?)`

	query := fmt.Sprintf(`
UPDATE mint_requests
SET last_checked_at = ?, updated_at = ?
WHERE id = (
	SELECT id FROM mint_requests
	WHERE %s
	ORDER BY last_checked_at ASC NULLS FIRST, created_at, id
	LIMIT 1
	%s
) AND %s
RETURNING %s`, due, s.dialect.lockClause, due, recordColumns)

	dueArgs := []any{string(models.StatusPendingConfirmation), s.ts(now.Add(-minInterval))}
	args := []any{s.ts(now), s.ts(now)}
	args = append(args, dueArgs...)
	args = append(args, dueArgs...)

	record, err := scanRecord(s.queryRow(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return record, err
}

func (s *SQLStore) transition(ctx context.Context, op string, id string, query string, args ...any) (bool, error) {
	result, err := s.exec(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		logNoop(op, id)
		return false, nil
	}
	return true, nil
}

func (s *SQLStore) RecordSignedTx(ctx context.Context, id string, claimID string, txHash string) (bool, error) {
	return s.transition(ctx, "record_signed_tx", id, `
UPDATE mint_requests SET signed_tx_hash = ?, updated_at = ?
WHERE id = ? AND status = ? AND claim_id = ? AND signed_tx_hash = ''`,
		txHash, s.ts(s.now()), id, string(models.StatusProcessing), claimID)
}

func (s *SQLStore) MarkSubmitted(ctx context.Context, id string, claimID string, txHash string) (bool, error) {
	return s.transition(ctx, "mark_submitted", id, `
UPDATE mint_requests SET status = ?, tx_hash = ?, updated_at = ?
WHERE id = ? AND status = ? AND claim_id = ? AND signed_tx_hash = ?`,
		string(models.StatusPendingConfirmation), txHash, s.ts(s.now()), id, string(models.StatusProcessing), claimID, txHash)
}

func (s *SQLStore) MarkConfirmed(ctx context.Context, id string, blockNumber uint64) (bool, error) {
	now := s.now()
	return s.transition(ctx, "mark_confirmed", id, `
UPDATE mint_requests SET status = ?, block_number = ?, processed_at = ?, updated_at = ?
WHERE id = ? AND status = ?`,
		string(models.StatusCompleted), int64(blockNumber), s.ts(now), s.ts(now), id, string(models.StatusPendingConfirmation))
}

func (s *SQLStore) MarkFailed(ctx context.Context, id string, claimID string, reason string) (bool, error) {
	now := s.now()
	return s.transition(ctx, "mark_failed", id, `
UPDATE mint_requests SET status = ?, error_message = ?, processed_at = ?, updated_at = ?
WHERE id = ? AND (status = ? OR (status = ? AND claim_id <> '' AND claim_id = ?))`,
		string(models.StatusFailed), reason, s.ts(now), s.ts(now), id,
		string(models.StatusPendingConfirmation), string(models.StatusProcessing), claimID)
}

func (s *SQLStore) Supersede(ctx context.Context, id string, replacementID string) (bool, error) {
	return s.transition(ctx, "supersede", id, `
UPDATE mint_requests SET superseded_by = ?, updated_at = ?
WHERE id = ? AND status = ? AND superseded_by IS NULL`,
		replacementID, s.ts(s.now()), id, string(models.StatusFailed))
}

func (s *SQLStore) RecoverStaleSubmissions(ctx context.Context, lease time.Duration) (int64, error) {
	if lease <= 0 {
		return 0, nil
	}
	now := s.now()
	result, err := s.exec(ctx, `
UPDATE mint_requests SET status = ?, tx_hash = signed_tx_hash, updated_at = ?
WHERE status = ? AND signed_tx_hash <> '' AND claimed_at <= ?`,
		string(models.StatusPendingConfirmation), s.ts(now), string(models.StatusProcessing), s.ts(now.Add(-lease)))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQLStore) findOne(ctx context.Context, where string, arg any) (*models.MintRequest, error) {
	record, err := scanRecord(s.queryRow(ctx, `SELECT `+recordColumns+` FROM mint_requests WHERE `+where, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return record, err
}

func (s *SQLStore) FindByID(ctx context.Context, id string) (*models.MintRequest, error) {
	return s.findOne(ctx, `id = ?`, id)
}

func (s *SQLStore) FindByExternalRef(ctx context.Context, externalRef string) (*models.MintRequest, error) {
	return s.findOne(ctx, `external_ref = ?`, externalRef)
}

func (s *SQLStore) List(ctx context.Context, filter models.ListFilter) ([]models.MintRequest, error) {
	var where []string
	var args []any

	if len(filter.Statuses) > 0 {
		marks := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			marks[i] = "?"
			args = append(args, string(status))
		}
		where = append(where, "status IN ("+strings.Join(marks, ", ")+")")
	}
	if filter.Recipient != "" {
		where = append(where, "recipient_address = ?")
		args = append(args, filter.Recipient)
	}
	if filter.ExternalRef != "" {
		where = append(where, "external_ref = ?")
		args = append(args, filter.ExternalRef)
	}

	query := `SELECT ` + recordColumns + ` FROM mint_requests`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, listLimit(filter.Limit), filter.Skip)

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.MintRequest{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (s *SQLStore) CountByStatus(ctx context.Context) (map[models.MintStatus]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM mint_requests GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := emptyCounts()
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[models.MintStatus(status)] = count
	}
	return counts, rows.Err()
}

func (s *SQLStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.onClose != nil {
		s.onClose()
	}
	return err
}

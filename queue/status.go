package queue

import (
	"context"
	"errors"

	"github.com/dan13ram/mint-queue/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxSupersedeHops bounds how far QueryStatus follows requeue links.
const maxSupersedeHops = 8

// Lookup resolves a request id or an external ref to its record.
func Lookup(ctx context.Context, store Store, ref string) (*models.MintRequest, error) {
	if ref == "" {
		return nil, ErrNotFound
	}

	if primitive.IsValidObjectID(ref) {
		record, err := store.FindByID(ctx, ref)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	return store.FindByExternalRef(ctx, ref)
}

// QueryStatus reports the current state of a mint request verbatim. When an
// operator requeued the request, the latest replacement is reported.
func QueryStatus(ctx context.Context, store Store, ref string) (*models.StatusView, error) {
	record, err := Lookup(ctx, store, ref)
	if err != nil {
		return nil, err
	}

	for hops := 0; record.SupersededBy != nil && hops < maxSupersedeHops; hops++ {
		next, err := store.FindByID(ctx, record.SupersededBy.Hex())
		if errors.Is(err, ErrNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		record = next
	}

	view := models.NewStatusView(record)
	return &view, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/bumpwise/bumpquiz/ent"
	"github.com/bumpwise/bumpquiz/ent/similarityrecord"
)

// similarityRepo implements SimilarityRepo using the ent client.
type similarityRepo struct {
	client *ent.Client
}

func (r *similarityRepo) Append(ctx context.Context, rec *SimilarityRecord) error {
	_, err := r.client.SimilarityRecord.Create().
		SetItemID(rec.ItemID).
		SetUserID(rec.UserID).
		SetWeek(rec.Week).
		SetContentType(rec.ContentType).
		SetContentHash(rec.ContentHash).
		SetEmbedding(rec.Embedding).
		SetCreatedAt(rec.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append similarity record: %w", err)
	}
	return nil
}

func (r *similarityRepo) ForScope(ctx context.Context, userID string, week int, contentType string) ([]*SimilarityRecord, error) {
	rows, err := r.client.SimilarityRecord.Query().
		Where(
			similarityrecord.UserID(userID),
			similarityrecord.Week(week),
			similarityrecord.ContentType(contentType),
		).
		Order(ent.Asc(similarityrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query similarity records: %w", err)
	}

	out := make([]*SimilarityRecord, len(rows))
	for i, row := range rows {
		out[i] = &SimilarityRecord{
			ItemID:      row.ItemID,
			UserID:      row.UserID,
			Week:        row.Week,
			ContentType: row.ContentType,
			ContentHash: row.ContentHash,
			Embedding:   row.Embedding,
			CreatedAt:   row.CreatedAt,
		}
	}
	return out, nil
}

func (r *similarityRepo) ForUser(ctx context.Context, userID, contentType string) ([]*SimilarityRecord, error) {
	rows, err := r.client.SimilarityRecord.Query().
		Where(
			similarityrecord.UserID(userID),
			similarityrecord.ContentType(contentType),
		).
		Order(ent.Asc(similarityrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query similarity records: %w", err)
	}

	out := make([]*SimilarityRecord, len(rows))
	for i, row := range rows {
		out[i] = &SimilarityRecord{
			ItemID:      row.ItemID,
			UserID:      row.UserID,
			Week:        row.Week,
			ContentType: row.ContentType,
			ContentHash: row.ContentHash,
			Embedding:   row.Embedding,
			CreatedAt:   row.CreatedAt,
		}
	}
	return out, nil
}

func (r *similarityRepo) OverflowIDs(ctx context.Context, userID, contentType string, keep int) ([]string, error) {
	// Skip the keep most recent rows; everything older is overflow.
	ids, err := r.client.SimilarityRecord.Query().
		Where(
			similarityrecord.UserID(userID),
			similarityrecord.ContentType(contentType),
		).
		Order(ent.Desc(similarityrecord.FieldCreatedAt)).
		Offset(keep).
		Select(similarityrecord.FieldItemID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query overflow records: %w", err)
	}
	return ids, nil
}

func (r *similarityRepo) Delete(ctx context.Context, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	_, err := r.client.SimilarityRecord.Delete().
		Where(similarityrecord.ItemIDIn(itemIDs...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete similarity records: %w", err)
	}
	return nil
}

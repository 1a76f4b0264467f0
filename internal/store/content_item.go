package store

import (
	"context"
	"fmt"
	"time"

	"github.com/bumpwise/bumpquiz/ent"
	"github.com/bumpwise/bumpquiz/ent/contentitem"
)

// contentItemRepo implements ContentItemRepo using the ent client.
type contentItemRepo struct {
	client *ent.Client
}

func (r *contentItemRepo) SaveAll(ctx context.Context, items []*ContentItem) error {
	builders := make([]*ent.ContentItemCreate, len(items))
	for i, item := range items {
		builders[i] = r.client.ContentItem.Create().
			SetID(item.ID).
			SetUserID(item.UserID).
			SetWeek(item.Week).
			SetContentType(item.ContentType).
			SetDifficulty(item.Difficulty).
			SetQuestion(item.Question).
			SetOptions(item.Options).
			SetAnswerKey(item.AnswerKey).
			SetExplanation(item.Explanation).
			SetFront(item.Front).
			SetBack(item.Back).
			SetEmbedding(item.Embedding).
			SetContentHash(item.ContentHash).
			SetRawResponse(item.RawResponse).
			SetContextIds(item.ContextIDs).
			SetCreatedAt(item.CreatedAt)
	}
	if _, err := r.client.ContentItem.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("save content items: %w", err)
	}
	return nil
}

func (r *contentItemRepo) Get(ctx context.Context, id string) (*ContentItem, error) {
	ci, err := r.client.ContentItem.Query().
		Where(contentitem.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query content item: %w", err)
	}
	return entContentItem(ci), nil
}

func (r *contentItemRepo) ForWeek(ctx context.Context, userID string, week int, contentType string) ([]*ContentItem, error) {
	rows, err := r.client.ContentItem.Query().
		Where(
			contentitem.UserID(userID),
			contentitem.Week(week),
			contentitem.ContentType(contentType),
		).
		Order(ent.Asc(contentitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query content items: %w", err)
	}

	out := make([]*ContentItem, len(rows))
	for i, ci := range rows {
		out[i] = entContentItem(ci)
	}
	return out, nil
}

func (r *contentItemRepo) MarkConsumed(ctx context.Context, id string, at time.Time) (bool, error) {
	// Guarded update: only flips the timestamp if it is still unset, so a
	// second flip of the same card is a no-op.
	n, err := r.client.ContentItem.Update().
		Where(contentitem.ID(id), contentitem.ConsumedAtIsNil()).
		SetConsumedAt(at).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("mark consumed: %w", err)
	}
	return n > 0, nil
}

func entContentItem(ci *ent.ContentItem) *ContentItem {
	return &ContentItem{
		ID:          ci.ID,
		UserID:      ci.UserID,
		Week:        ci.Week,
		ContentType: ci.ContentType,
		Difficulty:  ci.Difficulty,
		Question:    ci.Question,
		Options:     ci.Options,
		AnswerKey:   ci.AnswerKey,
		Explanation: ci.Explanation,
		Front:       ci.Front,
		Back:        ci.Back,
		Embedding:   ci.Embedding,
		ContentHash: ci.ContentHash,
		RawResponse: ci.RawResponse,
		ContextIDs:  ci.ContextIds,
		CreatedAt:   ci.CreatedAt,
		ConsumedAt:  ci.ConsumedAt,
	}
}

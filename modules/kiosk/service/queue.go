package service

import (
	"context"
	"encoding/json"
	"sort"

	"enoki-admin/core/logger"
	"enoki-admin/modules/kiosk/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const queueKey = "kiosk:queue"

// LiveQueue holds the currently open pages in redis so every dashboard and
// kiosk sees the same queue without hitting postgres.
type LiveQueue struct {
	rdb *redis.Client
}

func NewLiveQueue(rdb *redis.Client) *LiveQueue {
	return &LiveQueue{rdb: rdb}
}

func (q *LiveQueue) Push(ctx context.Context, entry dto.QueueEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return q.rdb.HSet(ctx, queueKey, entry.PageID.String(), data).Err()
}

func (q *LiveQueue) Remove(ctx context.Context, pageID uuid.UUID) error {
	return q.rdb.HDel(ctx, queueKey, pageID.String()).Err()
}

// Entries returns the open pages ordered oldest first
func (q *LiveQueue) Entries(ctx context.Context) ([]dto.QueueEntry, error) {
	values, err := q.rdb.HVals(ctx, queueKey).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]dto.QueueEntry, 0, len(values))
	for _, raw := range values {
		var entry dto.QueueEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			logger.Warn("LiveQueue:Entries:BadEntry", "error", err)
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].PagedAt.Before(entries[j].PagedAt)
	})
	return entries, nil
}

package service

import (
	"context"
	"time"

	"enoki-admin/core/logger"

	"github.com/redis/go-redis/v9"
)

const (
	presenceKeyPrefix = "presence:"
	recentScansKey    = "rfid:recent-scans"
	recentScansMax    = 50
	presenceTTL       = 12 * time.Hour
)

// PresenceService caches which badges have been seen recently. Badge-read
// events refresh the cache; dashboards read it instead of hitting the bridge.
type PresenceService struct {
	rdb *redis.Client
}

func NewPresenceService(rdb *redis.Client) *PresenceService {
	return &PresenceService{rdb: rdb}
}

// MarkSeen records a badge scan. Failures are logged only; presence is a
// cache, not a source of truth.
func (s *PresenceService) MarkSeen(ctx context.Context, tag string) {
	if tag == "" {
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)

	if err := s.rdb.Set(ctx, presenceKeyPrefix+tag, now, presenceTTL).Err(); err != nil {
		logger.Warn("PresenceService:MarkSeen:Set", "tag", tag, "error", err)
		return
	}

	pipe := s.rdb.Pipeline()
	pipe.LPush(ctx, recentScansKey, tag)
	pipe.LTrim(ctx, recentScansKey, 0, recentScansMax-1)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.Warn("PresenceService:MarkSeen:RecentScans", "error", err)
	}
}

// LastSeen returns the RFC3339 timestamp of the last scan, "" when unseen
func (s *PresenceService) LastSeen(ctx context.Context, tag string) string {
	val, err := s.rdb.Get(ctx, presenceKeyPrefix+tag).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("PresenceService:LastSeen", "tag", tag, "error", err)
		}
		return ""
	}
	return val
}

// RecentScans lists the most recent scanned tags, newest first
func (s *PresenceService) RecentScans(ctx context.Context, limit int) []string {
	if limit <= 0 || limit > recentScansMax {
		limit = recentScansMax
	}
	tags, err := s.rdb.LRange(ctx, recentScansKey, 0, int64(limit-1)).Result()
	if err != nil {
		logger.Warn("PresenceService:RecentScans", "error", err)
		return []string{}
	}
	return tags
}

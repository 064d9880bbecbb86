package service

import (
	"context"
	"encoding/json"
	"sort"
	"stepup_backend/internal/model"
	"stepup_backend/internal/repository"
	"stepup_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	leaderboardCacheKey = "stepup:leaderboard"
	leaderboardCacheTTL = 60 * time.Second
	leaderboardLimit    = 50
)

// LeaderboardEntry is one ranked builder: shipped-project count over
// the whole gallery.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   uint   `json:"userId"`
	UserName string `json:"userName"`
	Count    int    `json:"count"`
}

type LeaderboardService struct {
	GalleryRepo *repository.GalleryRepository
	Redis       *redis.Client
}

func NewLeaderboardService(galleryRepo *repository.GalleryRepository, redisClient *redis.Client) *LeaderboardService {
	return &LeaderboardService{
		GalleryRepo: galleryRepo,
		Redis:       redisClient,
	}
}

// Rank groups submissions by owner and orders by count descending.
// Ties keep first-submission order, so rankings do not jitter between
// reads. Truncated to the top 50.
func Rank(submissions []model.GallerySubmission) []LeaderboardEntry {
	type bucket struct {
		entry LeaderboardEntry
		seen  int
	}

	byUser := make(map[uint]*bucket)
	order := make([]*bucket, 0)
	for _, sub := range submissions {
		b, ok := byUser[sub.UserID]
		if !ok {
			b = &bucket{
				entry: LeaderboardEntry{UserID: sub.UserID, UserName: sub.UserName},
				seen:  len(order),
			}
			byUser[sub.UserID] = b
			order = append(order, b)
		}
		b.entry.Count++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].entry.Count != order[j].entry.Count {
			return order[i].entry.Count > order[j].entry.Count
		}
		return order[i].seen < order[j].seen
	})

	if len(order) > leaderboardLimit {
		order = order[:leaderboardLimit]
	}

	entries := make([]LeaderboardEntry, len(order))
	for i, b := range order {
		b.entry.Rank = i + 1
		entries[i] = b.entry
	}
	return entries
}

// Top returns the cached ranking, recomputing from the gallery table
// when the cache is cold. Cache failures degrade to a direct read.
func (s *LeaderboardService) Top(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result()
		if err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		}
	}

	submissions, err := s.GalleryRepo.FindAllForRanking()
	if err != nil {
		return nil, err
	}
	entries := Rank(submissions)

	if s.Redis != nil {
		payload, err := json.Marshal(entries)
		if err == nil {
			if err := s.Redis.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}
	return entries, nil
}

// Invalidate drops the cached ranking after a gallery write.
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, leaderboardCacheKey).Err(); err != nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/venturelink/venturelink-api/internal/errors"
	"github.com/venturelink/venturelink-api/internal/logger"
	"github.com/venturelink/venturelink-api/internal/matching"
	"github.com/venturelink/venturelink-api/internal/metrics"
	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/repository"
)

// matchServiceImpl implements MatchService
type matchServiceImpl struct {
	repos    *repository.Repositories
	redis    *redis.Client
	cacheTTL time.Duration
	log      logger.Logger
}

// newMatchService creates a new match service implementation. redisClient
// may be nil, in which case ranked pages are computed on every request.
func newMatchService(repos *repository.Repositories, redisClient *redis.Client, cacheTTL time.Duration, log logger.Logger) MatchService {
	return &matchServiceImpl{
		repos:    repos,
		redis:    redisClient,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// ScoreStartup computes one startup's match score against the caller's
// investor profile, with the per-criterion breakdown.
func (s *matchServiceImpl) ScoreStartup(investorUserID, startupID string) (*matching.ScoreResult, error) {
	investor, err := s.investorForUser(investorUserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(startupID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid startup ID", err)
	}
	startup, err := s.repos.Startup.GetByID(id)
	if err != nil {
		return nil, err
	}

	return matching.ScoreWithBreakdown(startup, investor), nil
}

// RankMatches returns the ranked visible pool for the caller's investor
// profile, serving from cache when a fresh page exists.
func (s *matchServiceImpl) RankMatches(investorUserID string, limit int) ([]matching.RankedStartup, error) {
	metrics.MatchRequests.Inc()

	investor, err := s.investorForUser(investorUserID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = matching.DefaultRankLimit
	}

	cacheKey := fmt.Sprintf("matches:%s:%d", investor.ID, limit)
	if cached, ok := s.cacheGet(cacheKey); ok {
		return cached, nil
	}

	pool, err := s.repos.Startup.GetVisible()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ranked := matching.Rank(investor, pool, limit)
	metrics.MatchScoreDuration.Observe(time.Since(start).Seconds())

	s.cacheSet(cacheKey, ranked)

	return ranked, nil
}

func (s *matchServiceImpl) investorForUser(investorUserID string) (*models.Investor, error) {
	userID, err := uuid.Parse(investorUserID)
	if err != nil {
		return nil, apperrors.ValidationError("invalid user ID", err)
	}
	return s.repos.Investor.GetByUser(userID)
}

func (s *matchServiceImpl) cacheGet(key string) ([]matching.RankedStartup, bool) {
	if s.redis == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	val, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		metrics.MatchCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}

	var ranked []matching.RankedStartup
	if err := json.Unmarshal([]byte(val), &ranked); err != nil {
		metrics.MatchCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.MatchCacheHits.WithLabelValues("hit").Inc()
	return ranked, true
}

func (s *matchServiceImpl) cacheSet(key string, ranked []matching.RankedStartup) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(ranked)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redis.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.log.Warn("failed to cache ranked matches", "key", key, "error", err)
	}
}

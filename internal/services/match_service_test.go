package services

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelink/venturelink-api/internal/logger"
	"github.com/venturelink/venturelink-api/internal/models"
	"github.com/venturelink/venturelink-api/internal/repository"
)

func seedMatchPool(t *testing.T, repos *repository.Repositories) uuid.UUID {
	t.Helper()

	investorUserID := uuid.New()
	investor := &models.Investor{
		UserID:              investorUserID,
		Name:                "North Capital",
		PreferredIndustries: models.StringList{"Technology"},
		PreferredStages:     models.StringList{models.StageGrowth},
		MinInvestment:       100000,
		MaxInvestment:       1000000,
	}
	require.NoError(t, repos.Investor.Create(investor))

	founderID := uuid.New()
	require.NoError(t, repos.Startup.Create(&models.Startup{
		FounderID:       founderID,
		Name:            "strong match",
		Industry:        "Technology",
		Stage:           models.StageGrowth,
		AskAmount:       500000,
		PubliclyVisible: true,
	}))
	require.NoError(t, repos.Startup.Create(&models.Startup{
		FounderID:       founderID,
		Name:            "weak match",
		Industry:        "Agriculture",
		PubliclyVisible: true,
	}))
	require.NoError(t, repos.Startup.Create(&models.Startup{
		FounderID: founderID,
		Name:      "hidden",
		Industry:  "Technology",
		Stage:     models.StageGrowth,
		AskAmount: 500000,
	}))

	return investorUserID
}

func TestRankMatchesFiltersAndOrders(t *testing.T) {
	repos := newTestRepos()
	investorUserID := seedMatchPool(t, repos)

	svc := newMatchService(repos, nil, time.Minute, logger.NewNop())

	matches, err := svc.RankMatches(investorUserID.String(), 0)
	require.NoError(t, err)

	// The hidden startup never enters the pool and the weak match scores
	// below the inclusion floor
	require.Len(t, matches, 1)
	assert.Equal(t, "strong match", matches[0].Name)
	assert.Equal(t, 80, matches[0].MatchScore)
}

func TestRankMatchesServesFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repos := newTestRepos()
	investorUserID := seedMatchPool(t, repos)

	svc := newMatchService(repos, client, time.Minute, logger.NewNop())

	first, err := svc.RankMatches(investorUserID.String(), 0)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Remove the pool; a cached page must still come back
	hiddenAll, err := repos.Startup.GetVisible()
	require.NoError(t, err)
	for i := range hiddenAll {
		s := hiddenAll[i]
		s.PubliclyVisible = false
		require.NoError(t, repos.Startup.Update(&s))
	}

	second, err := svc.RankMatches(investorUserID.String(), 0)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].MatchScore, second[0].MatchScore)

	// After the TTL lapses the page is recomputed from the emptied pool
	mr.FastForward(2 * time.Minute)

	third, err := svc.RankMatches(investorUserID.String(), 0)
	require.NoError(t, err)
	assert.Empty(t, third)
}

func TestRankMatchesDistinctLimitsUseDistinctCacheKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repos := newTestRepos()
	investorUserID := seedMatchPool(t, repos)

	svc := newMatchService(repos, client, time.Minute, logger.NewNop())

	_, err := svc.RankMatches(investorUserID.String(), 5)
	require.NoError(t, err)
	_, err = svc.RankMatches(investorUserID.String(), 10)
	require.NoError(t, err)

	assert.Len(t, mr.Keys(), 2)
}

func TestScoreStartupBreakdown(t *testing.T) {
	repos := newTestRepos()
	investorUserID := seedMatchPool(t, repos)

	pool, err := repos.Startup.GetVisible()
	require.NoError(t, err)
	var strong models.Startup
	for _, s := range pool {
		if s.Name == "strong match" {
			strong = s
		}
	}

	svc := newMatchService(repos, nil, time.Minute, logger.NewNop())

	result, err := svc.ScoreStartup(investorUserID.String(), strong.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 80, result.Score)
	assert.True(t, result.Breakdown["industry"].Triggered)
	assert.True(t, result.Breakdown["funding_fit"].Triggered)
	assert.False(t, result.Breakdown["urgency"].Triggered)
}

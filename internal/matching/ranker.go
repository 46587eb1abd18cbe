package matching

import (
	"sort"

	"github.com/venturelink/venturelink-api/internal/models"
)

// MinMatchScore is the inclusion floor: candidates scoring at or below it are
// dropped from ranked results.
const MinMatchScore = 10

// DefaultRankLimit caps a result page when the caller supplies no limit.
const DefaultRankLimit = 20

// RankedStartup pairs a startup with its computed match score
type RankedStartup struct {
	models.Startup
	MatchScore int `json:"match_score"`
}

// Rank scores every startup in the pool against the investor, drops entries
// at or below MinMatchScore, sorts descending by score, and truncates to
// limit. Ties keep pool iteration order (stable sort).
func Rank(investor *models.Investor, pool []models.Startup, limit int) []RankedStartup {
	if limit <= 0 {
		limit = DefaultRankLimit
	}

	ranked := make([]RankedStartup, 0, len(pool))
	for i := range pool {
		score := Score(&pool[i], investor)
		if score <= MinMatchScore {
			continue
		}
		ranked = append(ranked, RankedStartup{Startup: pool[i], MatchScore: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

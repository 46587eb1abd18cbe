package matching

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/venturelink/venturelink-api/internal/models"
)

func industryConsts() []interface{} {
	consts := make([]interface{}, len(models.Industries))
	for i, industry := range models.Industries {
		consts[i] = industry
	}
	return consts
}

func genStartup() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(industryConsts()...),
		gen.OneConstOf(models.StageIdea, models.StageMVP, models.StageEarlyRevenue, models.StageGrowth, models.StageScale),
		gen.Int64Range(0, 5000000),
		gen.OneConstOf(models.TimelineImmediate, models.TimelineOneToThree, models.TimelineThreeToSix,
			models.TimelineSixToTwelve, models.TimelineExploring),
		gen.Int64Range(0, 1000000),
		gen.IntRange(0, 10000),
	).Map(func(vals []interface{}) *models.Startup {
		return &models.Startup{
			Industry:       vals[0].(string),
			Stage:          vals[1].(string),
			AskAmount:      vals[2].(int64),
			Timeline:       vals[3].(string),
			MonthlyRevenue: vals[4].(int64),
			CustomerCount:  vals[5].(int),
		}
	})
}

func genInvestor() gopter.Gen {
	return gopter.CombineGens(
		gen.SliceOf(gen.OneConstOf(industryConsts()...)),
		gen.SliceOf(gen.OneConstOf(models.StageIdea, models.StageMVP, models.StageEarlyRevenue,
			models.StageGrowth, models.StageScale)),
		gen.Int64Range(0, 1000000),
		gen.Int64Range(0, 5000000),
	).Map(func(vals []interface{}) *models.Investor {
		return &models.Investor{
			PreferredIndustries: models.StringList(vals[0].([]string)),
			PreferredStages:     models.StringList(vals[1].([]string)),
			MinInvestment:       vals[2].(int64),
			MaxInvestment:       vals[3].(int64),
		}
	})
}

func TestScoreBounds(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("score is always within 0 and 100", prop.ForAll(
		func(startup *models.Startup, investor *models.Investor) bool {
			score := Score(startup, investor)
			return score >= 0 && score <= 100
		},
		genStartup(),
		genInvestor(),
	))

	properties.TestingRun(t)
}

func TestScoreDeterminism(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("score is deterministic for identical inputs", prop.ForAll(
		func(startup *models.Startup, investor *models.Investor) bool {
			return Score(startup, investor) == Score(startup, investor)
		},
		genStartup(),
		genInvestor(),
	))

	properties.TestingRun(t)
}

func TestScoreBreakdownSumsToTotal(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("breakdown points always sum to the total score", prop.ForAll(
		func(startup *models.Startup, investor *models.Investor) bool {
			result := ScoreWithBreakdown(startup, investor)
			sum := 0
			for _, detail := range result.Breakdown {
				sum += detail.Points
			}
			return sum == result.Score
		},
		genStartup(),
		genInvestor(),
	))

	properties.TestingRun(t)
}

func TestScoreIndustryMonotonic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("adding the startup's industry to preferences never lowers the score", prop.ForAll(
		func(startup *models.Startup, investor *models.Investor) bool {
			before := Score(startup, investor)

			widened := *investor
			widened.PreferredIndustries = append(models.StringList{startup.Industry}, investor.PreferredIndustries...)

			return Score(startup, &widened) >= before
		},
		genStartup(),
		genInvestor(),
	))

	properties.TestingRun(t)
}

package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceSummaryValidate(t *testing.T) {
	summary := PerformanceSummary{
		RolePrimary:        "striker",
		AvailabilityStatus: AvailabilityFit,
		Stats: []PerformanceStat{
			{Key: MetricDecisiveActions, Value: 7},
			{Key: MetricMaxSpeedKmh, Value: 31.2, Label: "Custom label"},
		},
	}
	require.NoError(t, summary.Validate(SportFootball))

	// Missing label gets the per-sport default, explicit labels are kept.
	assert.Equal(t, "Buts + passes décisives 28j", summary.Stats[0].Label)
	assert.Equal(t, "Custom label", summary.Stats[1].Label)
}

func TestPerformanceSummaryValidateRejectsUnknownSport(t *testing.T) {
	summary := PerformanceSummary{AvailabilityStatus: AvailabilityFit}
	assert.Error(t, summary.Validate(Sport("curling")))
}

func TestPerformanceSummaryValidateRejectsUnknownAvailability(t *testing.T) {
	summary := PerformanceSummary{AvailabilityStatus: "questionable"}
	assert.Error(t, summary.Validate(SportTennis))
}

func TestPerformanceSummaryValidateRejectsUnknownMetric(t *testing.T) {
	summary := PerformanceSummary{
		AvailabilityStatus: AvailabilityReturning,
		Stats:              []PerformanceStat{{Key: "verticalJump", Value: 80}},
	}
	assert.Error(t, summary.Validate(SportBasketball))
}

func TestPerformanceCVMergeKeepsOtherSports(t *testing.T) {
	cv := PerformanceCV{
		SportFootball: {RolePrimary: "striker", AvailabilityStatus: AvailabilityFit},
	}

	merged := cv.Merge(SportTennis, PerformanceSummary{AvailabilityStatus: AvailabilityInjured})

	require.Len(t, merged, 2)
	assert.Equal(t, "striker", merged[SportFootball].RolePrimary)
	assert.Equal(t, AvailabilityInjured, merged[SportTennis].AvailabilityStatus)

	// The receiver is not mutated.
	assert.Len(t, cv, 1)
}

func TestPerformanceCVMergeReplacesSameSport(t *testing.T) {
	cv := PerformanceCV{
		SportFootball: {AvailabilityStatus: AvailabilityFit, Stats: []PerformanceStat{{Key: MetricMatchesPlayed, Value: 4}}},
	}

	merged := cv.Merge(SportFootball, PerformanceSummary{AvailabilityStatus: AvailabilityReturning})

	require.Len(t, merged, 1)
	assert.Empty(t, merged[SportFootball].Stats)
	assert.Equal(t, AvailabilityReturning, merged[SportFootball].AvailabilityStatus)
}

func TestMetricLabelVariesBySport(t *testing.T) {
	assert.Equal(t, "Aces + blocks 28j", MetricLabel(MetricDecisiveActions, SportVolleyball))
	assert.Equal(t, "Buts + passes décisives 28j", MetricLabel(MetricDecisiveActions, SportFootball))
	assert.Equal(t, "Minutes jouées 28j", MetricLabel(MetricAvailabilityMinutes, SportGolf))
}

func TestSportEnum(t *testing.T) {
	assert.True(t, SportTableTennis.Valid())
	assert.True(t, SportMartialArts.Valid())
	assert.False(t, Sport("esports").Valid())
}

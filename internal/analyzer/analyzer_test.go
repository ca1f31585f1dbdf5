package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kavyamurthy/paintsight/internal/models"
	"github.com/kavyamurthy/paintsight/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesEveryReportTopic(t *testing.T) {
	base := t.TempDir()
	cfg := &models.Config{
		Seed:           7,
		GenerateOrders: 200,
		AsOfDate:       time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
		MinConfidence:  0.10,
		MinSupport:     0.05,
		DormantDays:    180,
		TargetMonth:    7,
		TargetYear:     2025,
		Brand:          "Dulux",
		OutputPath:     base,
		OutputFolder:   "reports",
		OutputFormat:   "json",
	}

	require.NoError(t, NewAnalyzer(cfg).Run(context.Background()))

	for _, topic := range []string{
		output.TopicCustomerProfiles,
		output.TopicCustomerSummary,
		output.TopicTimeSlots,
		output.TopicDaysOfWeek,
		output.TopicSeasonal,
		output.TopicHeatmapInsights,
		output.TopicPurchasePrediction,
		output.TopicPredictionInsights,
		output.TopicCityPredictions,
		output.TopicBusinessOverview,
		output.TopicInventorySummary,
	} {
		_, err := os.Stat(filepath.Join(base, "reports", topic, "data.json"))
		assert.NoError(t, err, topic)
	}
}

func TestRunIsDeterministicForASeed(t *testing.T) {
	run := func() []byte {
		base := t.TempDir()
		cfg := &models.Config{
			Seed:           3,
			GenerateOrders: 100,
			AsOfDate:       time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
			TargetMonth:    7,
			TargetYear:     2025,
			OutputPath:     base,
			OutputFolder:   "reports",
			OutputFormat:   "json",
		}
		require.NoError(t, NewAnalyzer(cfg).Run(context.Background()))

		raw, err := os.ReadFile(filepath.Join(base, "reports", output.TopicCustomerSummary, "data.json"))
		require.NoError(t, err)
		return raw
	}

	assert.Equal(t, run(), run())
}

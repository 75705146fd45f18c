package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/cinerent/gearmatch/ai/mock"
	"github.com/cinerent/gearmatch/textnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	engine, err := NewEngine(buildTestIndex(t), mock.NewMockEmbedder(), textnorm.New(), opts...)
	require.NoError(t, err)
	return engine
}

func TestNewEngineValidation(t *testing.T) {
	idx := buildTestIndex(t)

	_, err := NewEngine(nil, mock.NewMockEmbedder(), textnorm.New())
	assert.ErrorIs(t, err, ErrIndexRequired)

	_, err = NewEngine(idx, nil, textnorm.New())
	assert.ErrorIs(t, err, ErrEmbedderRequired)

	_, err = NewEngine(idx, mock.NewMockEmbedder(), nil)
	assert.ErrorIs(t, err, ErrNormalizerRequired)
}

func TestEngineRecommend(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t)

	t.Run("short query fails without error", func(t *testing.T) {
		result, err := engine.Recommend(ctx, "ab", 1)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, MsgQueryTooShort, result.Message)
		assert.Empty(t, result.Recommendations)
	})

	t.Run("blank query fails", func(t *testing.T) {
		result, err := engine.Recommend(ctx, "    ", 1)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})

	t.Run("punctuation-only query fails after normalization", func(t *testing.T) {
		result, err := engine.Recommend(ctx, "!!! ???", 1)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, MsgQueryTooShort, result.Message)
	})

	t.Run("specific query returns ranked recommendations", func(t *testing.T) {
		result, err := engine.Recommend(ctx, "interview en studio budget élevé", 3)
		require.NoError(t, err)

		assert.True(t, result.Success)
		require.NotEmpty(t, result.Recommendations)
		assert.LessOrEqual(t, len(result.Recommendations), DefaultTopK)
		assert.Contains(t, result.Message, "high-quality recommendations")

		require.NotNil(t, result.ExtractedFeatures)
		assert.Equal(t, 4, result.ExtractedFeatures.Specificity)

		top := result.Recommendations[0]
		assert.Equal(t, "interview", top.ProjectType)
		assert.Equal(t, 3, top.DurationDays)
		assert.Equal(t, top.PricePerDay*3, top.TotalPrice)
		assert.NotEmpty(t, top.Confidence)

		sum := 0.0
		for i, rec := range result.Recommendations {
			if i > 0 {
				assert.GreaterOrEqual(t, result.Recommendations[i-1].Score, rec.Score)
			}
			sum += rec.Score
		}
		mean := sum / float64(len(result.Recommendations))
		assert.InDelta(t, mean, result.ModelConfidence, 0.001)
	})

	t.Run("results are deterministic", func(t *testing.T) {
		first, err := engine.Recommend(ctx, "clip musical en extérieur", 2)
		require.NoError(t, err)
		second, err := engine.Recommend(ctx, "clip musical en extérieur", 2)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("duration below one clamps to one", func(t *testing.T) {
		result, err := engine.Recommend(ctx, "documentaire nature", 0)
		require.NoError(t, err)
		assert.Equal(t, 1, result.DurationDays)
		for _, rec := range result.Recommendations {
			assert.Equal(t, 1, rec.DurationDays)
			assert.Equal(t, rec.PricePerDay, rec.TotalPrice)
		}
	})
}

func TestEngineRecommendNoMatches(t *testing.T) {
	// An impossible threshold empties the selection; the request still
	// succeeds, with an empty list.
	engine := newTestEngine(t, WithQualityThreshold(1.01))

	result, err := engine.Recommend(context.Background(), "interview en studio", 1)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, MsgNoCloseMatches, result.Message)
	assert.Empty(t, result.Recommendations)
	assert.Zero(t, result.ModelConfidence)
}

func TestEngineRecommendTopK(t *testing.T) {
	engine := newTestEngine(t, WithTopK(2))

	result, err := engine.Recommend(context.Background(), "tournage pub", 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(result.Recommendations), 2)
}

func TestEngineRecommendEmbedderFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	engine, err := NewEngine(buildTestIndex(t), embedder, textnorm.New())
	require.NoError(t, err)

	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("connection refused")
	}

	result, err := engine.Recommend(context.Background(), "interview en studio", 1)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmbedderUnavailable)
}

func TestEngineModelInfo(t *testing.T) {
	engine := newTestEngine(t)
	info := engine.ModelInfo()

	assert.True(t, info.Initialized)
	assert.Equal(t, PipelineHybrid, info.Pipeline)
	assert.Equal(t, 45, info.DataRecords)
	assert.Equal(t, 384, info.EmbeddingDimensions)
	assert.Equal(t, 45, info.ProjectedDimensions)
	assert.NotEmpty(t, info.Features)
}

func TestEngineEquipmentStats(t *testing.T) {
	engine := newTestEngine(t)
	stats := engine.EquipmentStats()

	assert.Equal(t, 45, stats.TotalConfigurations)
	assert.Len(t, stats.Categories, 5)

	total := 0
	for _, count := range stats.Categories {
		total += count
	}
	assert.Equal(t, 45, total)

	assert.Equal(t, 15, stats.BudgetDistribution["low"])
	assert.Equal(t, 15, stats.BudgetDistribution["medium"])
	assert.Equal(t, 15, stats.BudgetDistribution["high"])

	assert.Positive(t, stats.AveragePrice)
	assert.LessOrEqual(t, stats.PriceRange.Min, stats.PriceRange.Max)
	assert.Positive(t, stats.ComplexityStats.Max)
	assert.LessOrEqual(t, stats.ComplexityStats.Average, float64(stats.ComplexityStats.Max))
	assert.LessOrEqual(t, len(stats.EquipmentBrands.Cameras), 5)
	assert.LessOrEqual(t, len(stats.EquipmentBrands.Lenses), 5)
	assert.LessOrEqual(t, len(stats.EquipmentBrands.Lights), 5)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChartSeries(t *testing.T) {
	series := GenerateChartSeries(ChartWindowDays)

	require.Len(t, series, ChartWindowDays)

	// A série termina hoje e cresce de um em um dia
	today := time.Now().Format(time.DateOnly)
	assert.Equal(t, today, series[len(series)-1].Date)

	for i := 1; i < len(series); i++ {
		prev, err := time.Parse(time.DateOnly, series[i-1].Date)
		require.NoError(t, err)
		curr, err := time.Parse(time.DateOnly, series[i].Date)
		require.NoError(t, err)

		assert.Equal(t, prev.AddDate(0, 0, 1).Format(time.DateOnly), curr.Format(time.DateOnly))
	}

	// Cada campo respeita sua faixa documentada
	for _, point := range series {
		assert.GreaterOrEqual(t, point.Impressions, int64(5000))
		assert.Less(t, point.Impressions, int64(15000))

		assert.GreaterOrEqual(t, point.Clicks, int64(100))
		assert.Less(t, point.Clicks, int64(600))

		assert.GreaterOrEqual(t, point.Conversions, int64(10))
		assert.Less(t, point.Conversions, int64(60))

		assert.GreaterOrEqual(t, point.Cost, 100.0)
		assert.Less(t, point.Cost, 600.0)
	}
}

func TestGenerateChartSeriesCustomWindow(t *testing.T) {
	series := GenerateChartSeries(7)

	require.Len(t, series, 7)
	assert.Equal(t, time.Now().Format(time.DateOnly), series[6].Date)
	assert.Equal(t, time.Now().AddDate(0, 0, -6).Format(time.DateOnly), series[0].Date)
}

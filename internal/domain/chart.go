package domain

import (
	"math/rand"
	"time"
)

// ChartWindowDays é a janela padrão da série temporal exibida no dashboard.
const ChartWindowDays = 30

// ChartData é um ponto diário da série exibida nos gráficos do dashboard.
type ChartData struct {
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Cost        float64 `json:"cost"`
}

// GenerateChartSeries produz uma série sintética com um ponto por dia,
// terminando hoje (inclusive), do mais antigo para o mais recente.
//
// Os valores são aleatórios dentro de faixas fixas e NÃO derivam dos
// contadores armazenados; é um placeholder até existir ingestão real de
// histórico de métricas.
func GenerateChartSeries(windowDays int) []*ChartData {
	series := make([]*ChartData, 0, windowDays)
	today := time.Now()

	for i := windowDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		series = append(series, &ChartData{
			Date:        date.Format(time.DateOnly),
			Impressions: int64(rand.Intn(10000)) + 5000,
			Clicks:      int64(rand.Intn(500)) + 100,
			Conversions: int64(rand.Intn(50)) + 10,
			Cost:        float64(rand.Intn(500) + 100),
		})
	}

	return series
}

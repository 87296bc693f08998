package domain

// AggregateValues reúne os seis valores brutos agregados por usuário,
// produzidos pelo repositório (scan em memória ou query agregada no banco).
type AggregateValues struct {
	TotalAds         int64   `json:"totalAds"`
	ActiveAds        int64   `json:"activeAds"`
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalConversions int64   `json:"totalConversions"`
	TotalCost        float64 `json:"totalCost"`
}

// DashboardStats é a visão derivada exibida no dashboard. Nunca é persistida;
// é recalculada a cada requisição.
type DashboardStats struct {
	TotalAds          int64   `json:"totalAds"`
	ActiveAds         int64   `json:"activeAds"`
	TotalImpressions  int64   `json:"totalImpressions"`
	TotalClicks       int64   `json:"totalClicks"`
	TotalConversions  int64   `json:"totalConversions"`
	TotalCost         float64 `json:"totalCost"`
	CTR               float64 `json:"ctr"`
	ConversionRate    float64 `json:"conversionRate"`
	CostPerClick      float64 `json:"costPerClick"`
	CostPerConversion float64 `json:"costPerConversion"`
}

// ComputeStats calcula as métricas do dashboard a partir dos valores brutos.
// Divisão por zero é definida como zero em todas as razões. Nenhum
// arredondamento é aplicado aqui; isso é responsabilidade da camada de
// apresentação.
func ComputeStats(raw *AggregateValues) *DashboardStats {
	stats := &DashboardStats{
		TotalAds:         raw.TotalAds,
		ActiveAds:        raw.ActiveAds,
		TotalImpressions: raw.TotalImpressions,
		TotalClicks:      raw.TotalClicks,
		TotalConversions: raw.TotalConversions,
		TotalCost:        raw.TotalCost,
	}

	if raw.TotalImpressions > 0 {
		stats.CTR = (float64(raw.TotalClicks) / float64(raw.TotalImpressions)) * 100
	}

	if raw.TotalClicks > 0 {
		stats.ConversionRate = (float64(raw.TotalConversions) / float64(raw.TotalClicks)) * 100
		stats.CostPerClick = raw.TotalCost / float64(raw.TotalClicks)
	}

	if raw.TotalConversions > 0 {
		stats.CostPerConversion = raw.TotalCost / float64(raw.TotalConversions)
	}

	return stats
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/adreport-api/internal/domain"
	"github.com/vfg2006/adreport-api/internal/usecases/reporting"
	"github.com/vfg2006/adreport-api/pkg/log"
	"github.com/vfg2006/adreport-api/pkg/utils"
)

// DashboardStatsResponse é o envelope do endpoint de estatísticas. As razões
// são arredondadas para duas casas decimais aqui, na apresentação; o
// agregador entrega os valores com precisão completa.
type DashboardStatsResponse struct {
	Stats     *domain.DashboardStats `json:"stats"`
	ChartData []*domain.ChartData    `json:"chartData"`
}

func GetDashboardStats(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userID, ok := userIDFromQuery(w, r)
		if !ok {
			return
		}

		report, err := service.GetDashboardStats(userID)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("stats: falha ao montar dashboard")

			writeStoreError(w, err)
			return
		}

		stats := *report.Stats
		stats.CTR = utils.RoundWithTwoDecimalPlace(stats.CTR)
		stats.ConversionRate = utils.RoundWithTwoDecimalPlace(stats.ConversionRate)
		stats.CostPerClick = utils.RoundWithTwoDecimalPlace(stats.CostPerClick)
		stats.CostPerConversion = utils.RoundWithTwoDecimalPlace(stats.CostPerConversion)

		logger.WithFields(log.Fields{
			"user_id":   userID,
			"total_ads": stats.TotalAds,
		}).Info("stats: dashboard montado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(DashboardStatsResponse{
			Stats:     &stats,
			ChartData: report.ChartData,
		}); err != nil {
			logger.WithError(err).Error("stats: falha ao codificar resposta")
		}
	})
}

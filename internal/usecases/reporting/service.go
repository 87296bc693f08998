package reporting

import (
	"github.com/vfg2006/adreport-api/infrastructure/repository"
	"github.com/vfg2006/adreport-api/internal/domain"
	"github.com/vfg2006/adreport-api/pkg/log"
)

// DashboardReport é a resposta completa do dashboard: as estatísticas
// derivadas das campanhas do usuário e a série temporal dos gráficos.
type DashboardReport struct {
	Stats     *domain.DashboardStats `json:"stats"`
	ChartData []*domain.ChartData    `json:"chartData"`
}

type Reporter interface {
	GetDashboardStats(userID int) (*DashboardReport, error)
}

type Service struct {
	adRepo repository.AdRepository
}

func NewService(adRepo repository.AdRepository) Reporter {
	return &Service{
		adRepo: adRepo,
	}
}

// GetDashboardStats monta o relatório do dashboard para um usuário. As
// estatísticas são recalculadas a cada chamada a partir do agregado do
// repositório; a série dos gráficos é sintética e independe do backend.
func (s *Service) GetDashboardStats(userID int) (*DashboardReport, error) {
	raw, err := s.adRepo.AggregateByUser(userID)
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"user_id":   userID,
		"total_ads": raw.TotalAds,
	}).Debug("reporting: agregado calculado")

	return &DashboardReport{
		Stats:     domain.ComputeStats(raw),
		ChartData: domain.GenerateChartSeries(domain.ChartWindowDays),
	}, nil
}

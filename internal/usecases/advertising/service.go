package advertising

import (
	"regexp"
	"strings"

	"github.com/vfg2006/adreport-api/infrastructure/repository"
	"github.com/vfg2006/adreport-api/internal/domain"
	"github.com/vfg2006/adreport-api/pkg/utils"
)

var campaignNameRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)

const (
	campaignNameMinLen = 3
	campaignNameMaxLen = 100

	budgetMin = 100.0
	budgetMax = 1_000_000.0

	targetAudienceMinLen = 10
	targetAudienceMaxLen = 500
)

// CreateAdRequest carrega os campos de criação de campanha. Não há campos de
// contadores aqui de propósito: toda campanha nasce zerada, independente do
// que o cliente envie.
type CreateAdRequest struct {
	UserID         int     `json:"user_id"`
	CampaignName   string  `json:"campaign_name"`
	Platform       string  `json:"platform"`
	AdType         string  `json:"ad_type"`
	Budget         float64 `json:"budget"`
	TargetAudience string  `json:"target_audience"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date"`
	Status         string  `json:"status"`
}

type AdService interface {
	CreateAd(req *CreateAdRequest) (*domain.Ad, error)
	ListAds(userID int) ([]*domain.Ad, error)
}

type Service struct {
	adRepo repository.AdRepository
}

func NewService(adRepo repository.AdRepository) AdService {
	return &Service{
		adRepo: adRepo,
	}
}

func (s *Service) CreateAd(req *CreateAdRequest) (*domain.Ad, error) {
	if err := validateCreateAd(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.AdStatusDraft
	}

	ad := &domain.Ad{
		UserID:         req.UserID,
		CampaignName:   strings.TrimSpace(req.CampaignName),
		Platform:       req.Platform,
		AdType:         req.AdType,
		Budget:         req.Budget,
		TargetAudience: req.TargetAudience,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         status,
	}

	return s.adRepo.CreateAd(ad)
}

func (s *Service) ListAds(userID int) ([]*domain.Ad, error) {
	return s.adRepo.ListAdsByUser(userID)
}

func validateCreateAd(req *CreateAdRequest) error {
	if req.UserID == 0 || req.CampaignName == "" || req.Platform == "" ||
		req.AdType == "" || req.Budget == 0 || req.StartDate == "" {
		return ErrMissingRequiredData
	}

	name := strings.TrimSpace(req.CampaignName)
	if len(name) < campaignNameMinLen || len(name) > campaignNameMaxLen {
		return newValidationError("campaign_name", "deve ter entre 3 e 100 caracteres")
	}
	if !campaignNameRegex.MatchString(name) {
		return newValidationError("campaign_name", "apenas letras, números, espaços, hífens e underscores")
	}

	if !domain.IsValidPlatform(req.Platform) {
		return newValidationError("platform", "plataforma não suportada")
	}

	if !domain.IsValidAdType(req.AdType) {
		return newValidationError("ad_type", "tipo de anúncio não suportado")
	}

	if req.Budget < budgetMin || req.Budget > budgetMax {
		return newValidationError("budget", "deve estar entre 100 e 1000000")
	}

	audience := strings.TrimSpace(req.TargetAudience)
	if len(audience) < targetAudienceMinLen {
		return newValidationError("target_audience", "descreva o público com mais detalhes")
	}
	if len(audience) > targetAudienceMaxLen {
		return newValidationError("target_audience", "descrição muito longa")
	}
	if len(strings.Split(audience, ",")) < 2 {
		return newValidationError("target_audience", "informe ao menos dois critérios separados por vírgula")
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return newValidationError("start_date", "data inválida, use o formato YYYY-MM-DD")
	}

	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			return newValidationError("end_date", "data inválida, use o formato YYYY-MM-DD")
		}
		if !endDate.After(*startDate) {
			return newValidationError("end_date", "deve ser posterior à data de início")
		}
	}

	if req.Status != "" && !domain.IsValidAdStatus(req.Status) {
		return newValidationError("status", "status não suportado")
	}

	return nil
}

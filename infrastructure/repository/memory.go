package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/adreport-api/internal/domain"
)

// MemoryStore é o backend do modo demo: toda a base vive na memória do
// processo e é perdida no restart. Implementa os mesmos contratos que o
// backend PostgreSQL e só falha em violação de restrição (ex.: username
// duplicado), nunca por indisponibilidade.
//
// O contador de IDs e as coleções são protegidos por mutex: duas criações
// simultâneas de campanha não podem receber o mesmo ID.
type MemoryStore struct {
	mu         sync.Mutex
	users      []*domain.User
	ads        []*domain.Ad
	nextUserID int
	nextAdID   int
}

// NewMemoryStore cria o backend em memória já populado com o usuário e as
// campanhas de demonstração.
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		nextUserID: 1,
		nextAdID:   1,
	}
	store.seed()
	return store
}

// seed insere a massa de dados do modo demo (login: demo / demo123)
func (s *MemoryStore) seed() {
	s.users = append(s.users, &domain.User{
		ID:       s.nextUserID,
		Username: "demo",
		Email:    "demo@adreport.com",
		// bcrypt de "demo123"
		PasswordHash: "$2b$10$.8DYPZxgvPDwu8tqjz4FAudqsvECMymzQ2awDc/ooq3TEa4ft9Clu",
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	s.nextUserID++

	holidayEnd := "2025-12-31"

	demoAds := []*domain.Ad{
		{
			UserID:         1,
			CampaignName:   "Summer Sale 2026",
			Platform:       domain.PlatformFacebook,
			AdType:         domain.AdTypeImage,
			Budget:         5000.00,
			TargetAudience: "Age 25-40, Interested in fashion",
			StartDate:      "2026-06-01",
			Status:         domain.AdStatusActive,
			Impressions:    125000,
			Clicks:         3250,
			Conversions:    180,
			Cost:           2150.00,
			CreatedAt:      time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			UserID:         1,
			CampaignName:   "Tech Launch",
			Platform:       domain.PlatformGoogle,
			AdType:         domain.AdTypeVideo,
			Budget:         10000.00,
			TargetAudience: "Tech enthusiasts, Age 20-35",
			StartDate:      "2026-02-01",
			Status:         domain.AdStatusActive,
			Impressions:    250000,
			Clicks:         8500,
			Conversions:    420,
			Cost:           4800.00,
			CreatedAt:      time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			UserID:         1,
			CampaignName:   "Holiday Special",
			Platform:       domain.PlatformInstagram,
			AdType:         domain.AdTypeCarousel,
			Budget:         3000.00,
			TargetAudience: "Parents, Age 30-50",
			StartDate:      "2025-12-01",
			EndDate:        &holidayEnd,
			Status:         domain.AdStatusCompleted,
			Impressions:    98000,
			Clicks:         2100,
			Conversions:    95,
			Cost:           1850.00,
			CreatedAt:      time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, ad := range demoAds {
		ad.ID = s.nextAdID
		s.nextAdID++
		s.ads = append(s.ads, ad)
	}
}

func (s *MemoryStore) CreateUser(user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || strings.EqualFold(existing.Email, user.Email) {
			return nil, ErrDuplicateUser
		}
	}

	created := &domain.User{
		ID:           s.nextUserID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now(),
	}
	s.nextUserID++
	s.users = append(s.users, created)

	return created, nil
}

func (s *MemoryStore) GetUserByUsername(username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}

	return nil, nil
}

// CreateAd insere uma nova campanha com contadores zerados, independente do
// que o chamador tenha preenchido.
func (s *MemoryStore) CreateAd(ad *domain.Ad) (*domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	created := &domain.Ad{
		ID:             s.nextAdID,
		UserID:         ad.UserID,
		CampaignName:   ad.CampaignName,
		Platform:       ad.Platform,
		AdType:         ad.AdType,
		Budget:         ad.Budget,
		TargetAudience: ad.TargetAudience,
		StartDate:      ad.StartDate,
		EndDate:        ad.EndDate,
		Status:         ad.Status,
		Impressions:    0,
		Clicks:         0,
		Conversions:    0,
		Cost:           0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.nextAdID++
	s.ads = append(s.ads, created)

	copied := *created
	return &copied, nil
}

func (s *MemoryStore) ListAdsByUser(userID int) ([]*domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ads := make([]*domain.Ad, 0)
	for _, ad := range s.ads {
		if ad.UserID == userID {
			copied := *ad
			ads = append(ads, &copied)
		}
	}

	// Mais recentes primeiro; em empate de timestamp, o maior ID é o mais novo
	sort.SliceStable(ads, func(i, j int) bool {
		if ads[i].CreatedAt.Equal(ads[j].CreatedAt) {
			return ads[i].ID > ads[j].ID
		}
		return ads[i].CreatedAt.After(ads[j].CreatedAt)
	})

	return ads, nil
}

// AggregateByUser computa os seis valores brutos do dashboard varrendo a
// coleção. O resultado deve ser numericamente idêntico ao da query agregada
// do backend PostgreSQL para os mesmos dados.
func (s *MemoryStore) AggregateByUser(userID int) (*domain.AggregateValues, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg := &domain.AggregateValues{}
	for _, ad := range s.ads {
		if ad.UserID != userID {
			continue
		}

		agg.TotalAds++
		if ad.Status == domain.AdStatusActive {
			agg.ActiveAds++
		}
		agg.TotalImpressions += ad.Impressions
		agg.TotalClicks += ad.Clicks
		agg.TotalConversions += ad.Conversions
		agg.TotalCost += ad.Cost
	}

	return agg, nil
}

package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adreport-api/internal/domain"
)

func TestMemoryStoreSeed(t *testing.T) {
	store := NewMemoryStore()

	user, err := store.GetUserByUsername("demo")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "demo@adreport.com", user.Email)

	ads, err := store.ListAdsByUser(1)
	require.NoError(t, err)
	assert.Len(t, ads, 3)
}

func TestMemoryStoreCreateUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		wantErr  error
	}{
		{
			name:     "Novo usuário é criado com sucesso",
			username: "alice",
			email:    "alice@example.com",
		},
		{
			name:     "Username duplicado gera conflito",
			username: "demo",
			email:    "outro@example.com",
			wantErr:  ErrDuplicateUser,
		},
		{
			name:     "Email duplicado gera conflito",
			username: "outro",
			email:    "demo@adreport.com",
			wantErr:  ErrDuplicateUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()

			user, err := store.CreateUser(&domain.User{
				Username:     tt.username,
				Email:        tt.email,
				PasswordHash: "$2a$10$hash",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 2, user.ID)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestMemoryStoreCreateAdZeroesCounters(t *testing.T) {
	store := NewMemoryStore()

	// Contadores preenchidos pelo chamador são ignorados
	ad, err := store.CreateAd(&domain.Ad{
		UserID:         1,
		CampaignName:   "Summer Sale 2026",
		Platform:       domain.PlatformFacebook,
		AdType:         domain.AdTypeImage,
		Budget:         5000,
		TargetAudience: "Age 25-40, Interested in fashion",
		StartDate:      "2026-06-01",
		Status:         domain.AdStatusActive,
		Impressions:    999,
		Clicks:         999,
		Conversions:    999,
		Cost:           999,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, ad.ID)
	assert.Zero(t, ad.Impressions)
	assert.Zero(t, ad.Clicks)
	assert.Zero(t, ad.Conversions)
	assert.Zero(t, ad.Cost)

	// A campanha recém-criada é a mais recente da listagem
	ads, err := store.ListAdsByUser(1)
	require.NoError(t, err)
	require.Len(t, ads, 4)
	assert.Equal(t, ad.ID, ads[0].ID)
	assert.Equal(t, "Summer Sale 2026", ads[0].CampaignName)
}

func TestMemoryStoreListAdsOrdering(t *testing.T) {
	store := NewMemoryStore()

	ads, err := store.ListAdsByUser(1)
	require.NoError(t, err)
	require.Len(t, ads, 3)

	for i := 1; i < len(ads); i++ {
		assert.False(
			t,
			ads[i].CreatedAt.After(ads[i-1].CreatedAt),
			"campanhas devem vir da mais recente para a mais antiga",
		)
	}
}

func TestMemoryStoreListAdsUnknownUser(t *testing.T) {
	store := NewMemoryStore()

	ads, err := store.ListAdsByUser(42)
	require.NoError(t, err)
	assert.Empty(t, ads)
}

func TestMemoryStoreAggregateByUser(t *testing.T) {
	store := NewMemoryStore()

	agg, err := store.AggregateByUser(1)
	require.NoError(t, err)

	// Soma das três campanhas de demonstração
	assert.Equal(t, int64(3), agg.TotalAds)
	assert.Equal(t, int64(2), agg.ActiveAds)
	assert.Equal(t, int64(473000), agg.TotalImpressions)
	assert.Equal(t, int64(13850), agg.TotalClicks)
	assert.Equal(t, int64(695), agg.TotalConversions)
	assert.InDelta(t, 8800.00, agg.TotalCost, 0.001)
}

func TestMemoryStoreAggregateOrderInvariance(t *testing.T) {
	base := []*domain.Ad{
		{UserID: 7, CampaignName: "Campanha A", Platform: domain.PlatformFacebook, AdType: domain.AdTypeImage, Budget: 500, TargetAudience: "a, b", StartDate: "2026-01-01", Status: domain.AdStatusActive},
		{UserID: 7, CampaignName: "Campanha B", Platform: domain.PlatformGoogle, AdType: domain.AdTypeVideo, Budget: 900, TargetAudience: "c, d", StartDate: "2026-02-01", Status: domain.AdStatusDraft},
		{UserID: 7, CampaignName: "Campanha C", Platform: domain.PlatformTikTok, AdType: domain.AdTypeStory, Budget: 700, TargetAudience: "e, f", StartDate: "2026-03-01", Status: domain.AdStatusActive},
	}

	forward := NewMemoryStore()
	for _, ad := range base {
		copied := *ad
		_, err := forward.CreateAd(&copied)
		require.NoError(t, err)
	}

	reversed := NewMemoryStore()
	for i := len(base) - 1; i >= 0; i-- {
		copied := *base[i]
		_, err := reversed.CreateAd(&copied)
		require.NoError(t, err)
	}

	aggForward, err := forward.AggregateByUser(7)
	require.NoError(t, err)
	aggReversed, err := reversed.AggregateByUser(7)
	require.NoError(t, err)

	assert.Equal(t, aggForward, aggReversed)
	assert.Equal(t, domain.ComputeStats(aggForward), domain.ComputeStats(aggReversed))
}

func TestMemoryStoreConcurrentCreateAd(t *testing.T) {
	store := NewMemoryStore()

	const goroutines = 50

	var wg sync.WaitGroup
	ids := make(chan int, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			ad, err := store.CreateAd(&domain.Ad{
				UserID:         1,
				CampaignName:   fmt.Sprintf("Concurrent %d", i),
				Platform:       domain.PlatformFacebook,
				AdType:         domain.AdTypeImage,
				Budget:         100,
				TargetAudience: "a, b",
				StartDate:      "2026-01-01",
				Status:         domain.AdStatusDraft,
			})
			if err == nil {
				ids <- ad.ID
			}
		}(i)
	}

	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "ID %d atribuído mais de uma vez", id)
		seen[id] = true
	}
	assert.Len(t, seen, goroutines)
}

package advertising

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adreport-api/infrastructure/repository"
	"github.com/vfg2006/adreport-api/internal/domain"
)

func validRequest() *CreateAdRequest {
	return &CreateAdRequest{
		UserID:         1,
		CampaignName:   "Summer Sale 2026",
		Platform:       domain.PlatformFacebook,
		AdType:         domain.AdTypeImage,
		Budget:         5000,
		TargetAudience: "Age 25-40, Interested in fashion",
		StartDate:      "2026-06-01",
		Status:         domain.AdStatusActive,
	}
}

func TestCreateAd(t *testing.T) {
	store := repository.NewMemoryStore()
	service := NewService(store)

	ad, err := service.CreateAd(validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Summer Sale 2026", ad.CampaignName)
	assert.Equal(t, domain.AdStatusActive, ad.Status)
	assert.Zero(t, ad.Impressions)
	assert.Zero(t, ad.Clicks)
	assert.Zero(t, ad.Conversions)
	assert.Zero(t, ad.Cost)

	// A campanha recém-criada aparece em primeiro na listagem
	ads, err := service.ListAds(1)
	require.NoError(t, err)
	require.NotEmpty(t, ads)
	assert.Equal(t, ad.ID, ads[0].ID)
}

func TestCreateAdDefaultsToDraft(t *testing.T) {
	service := NewService(repository.NewMemoryStore())

	req := validRequest()
	req.Status = ""

	ad, err := service.CreateAd(req)
	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusDraft, ad.Status)
}

func TestCreateAdValidation(t *testing.T) {
	endBeforeStart := "2026-05-01"
	endEqualStart := "2026-06-01"
	endAfterStart := "2026-07-01"

	tests := []struct {
		name      string
		mutate    func(req *CreateAdRequest)
		wantField string
		missing   bool
		valid     bool
	}{
		{
			name:    "Sem user_id",
			mutate:  func(req *CreateAdRequest) { req.UserID = 0 },
			missing: true,
		},
		{
			name:    "Sem nome de campanha",
			mutate:  func(req *CreateAdRequest) { req.CampaignName = "" },
			missing: true,
		},
		{
			name:    "Sem data de início",
			mutate:  func(req *CreateAdRequest) { req.StartDate = "" },
			missing: true,
		},
		{
			name:      "Nome muito curto",
			mutate:    func(req *CreateAdRequest) { req.CampaignName = "ab" },
			wantField: "campaign_name",
		},
		{
			name:      "Nome muito longo",
			mutate:    func(req *CreateAdRequest) { req.CampaignName = strings.Repeat("a", 101) },
			wantField: "campaign_name",
		},
		{
			name:      "Nome com caracteres inválidos",
			mutate:    func(req *CreateAdRequest) { req.CampaignName = "Promo 50% off!" },
			wantField: "campaign_name",
		},
		{
			name:      "Plataforma desconhecida",
			mutate:    func(req *CreateAdRequest) { req.Platform = "MySpace" },
			wantField: "platform",
		},
		{
			name:      "Tipo de anúncio desconhecido",
			mutate:    func(req *CreateAdRequest) { req.AdType = "Hologram" },
			wantField: "ad_type",
		},
		{
			name:      "Orçamento abaixo do mínimo",
			mutate:    func(req *CreateAdRequest) { req.Budget = 99.99 },
			wantField: "budget",
		},
		{
			name:      "Orçamento acima do máximo",
			mutate:    func(req *CreateAdRequest) { req.Budget = 1_000_000.01 },
			wantField: "budget",
		},
		{
			name:      "Público-alvo muito curto",
			mutate:    func(req *CreateAdRequest) { req.TargetAudience = "a, b" },
			wantField: "target_audience",
		},
		{
			name:      "Público-alvo com um único critério",
			mutate:    func(req *CreateAdRequest) { req.TargetAudience = "Apenas um criterio longo" },
			wantField: "target_audience",
		},
		{
			name:      "Data de início inválida",
			mutate:    func(req *CreateAdRequest) { req.StartDate = "01/06/2026" },
			wantField: "start_date",
		},
		{
			name:      "Data final antes do início",
			mutate:    func(req *CreateAdRequest) { req.EndDate = &endBeforeStart },
			wantField: "end_date",
		},
		{
			name:      "Data final igual ao início",
			mutate:    func(req *CreateAdRequest) { req.EndDate = &endEqualStart },
			wantField: "end_date",
		},
		{
			name:      "Status desconhecido",
			mutate:    func(req *CreateAdRequest) { req.Status = "archived" },
			wantField: "status",
		},
		{
			name:   "Data final posterior ao início é aceita",
			mutate: func(req *CreateAdRequest) { req.EndDate = &endAfterStart },
			valid:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(repository.NewMemoryStore())

			req := validRequest()
			tt.mutate(req)

			ad, err := service.CreateAd(req)

			if tt.valid {
				require.NoError(t, err)
				assert.NotNil(t, ad)
				return
			}

			require.Error(t, err)
			assert.Nil(t, ad)

			if tt.missing {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

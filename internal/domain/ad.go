package domain

import "time"

// Plataformas de anúncio suportadas pelo dashboard
const (
	PlatformFacebook  = "Facebook"
	PlatformGoogle    = "Google"
	PlatformInstagram = "Instagram"
	PlatformTikTok    = "TikTok"
	PlatformLinkedIn  = "LinkedIn"
	PlatformTwitter   = "Twitter"
)

// Tipos de anúncio suportados
const (
	AdTypeImage    = "Image"
	AdTypeVideo    = "Video"
	AdTypeCarousel = "Carousel"
	AdTypeText     = "Text"
	AdTypeStory    = "Story"
)

// Status de uma campanha
const (
	AdStatusDraft     = "draft"
	AdStatusActive    = "active"
	AdStatusPaused    = "paused"
	AdStatusCompleted = "completed"
)

var (
	Platforms = []string{
		PlatformFacebook,
		PlatformGoogle,
		PlatformInstagram,
		PlatformTikTok,
		PlatformLinkedIn,
		PlatformTwitter,
	}

	AdTypes = []string{
		AdTypeImage,
		AdTypeVideo,
		AdTypeCarousel,
		AdTypeText,
		AdTypeStory,
	}

	AdStatuses = []string{
		AdStatusDraft,
		AdStatusActive,
		AdStatusPaused,
		AdStatusCompleted,
	}
)

// Ad representa uma campanha de anúncio de um usuário.
// Os contadores (impressions, clicks, conversions, cost) são alimentados por
// um processo de ingestão externo; este sistema apenas os lê.
type Ad struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	CampaignName   string    `json:"campaign_name"`
	Platform       string    `json:"platform"`
	AdType         string    `json:"ad_type"`
	Budget         float64   `json:"budget"`
	TargetAudience string    `json:"target_audience"`
	StartDate      string    `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	Status         string    `json:"status"`
	Impressions    int64     `json:"impressions"`
	Clicks         int64     `json:"clicks"`
	Conversions    int64     `json:"conversions"`
	Cost           float64   `json:"cost"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func IsValidPlatform(platform string) bool {
	for _, p := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

func IsValidAdType(adType string) bool {
	for _, t := range AdTypes {
		if t == adType {
			return true
		}
	}
	return false
}

func IsValidAdStatus(status string) bool {
	for _, s := range AdStatuses {
		if s == status {
			return true
		}
	}
	return false
}

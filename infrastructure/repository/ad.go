package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adreport-api/infrastructure/database/postgres"
	"github.com/vfg2006/adreport-api/internal/domain"
)

const adsTable = "ads"

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

// CreateAd insere uma nova campanha. Os contadores de performance nunca vêm
// do chamador: toda campanha nasce com impressions, clicks, conversions e
// cost zerados.
func (r *adRepository) CreateAd(ad *domain.Ad) (*domain.Ad, error) {
	queryBuilder := squirrel.
		Insert(adsTable).
		Columns(
			"user_id",
			"campaign_name",
			"platform",
			"ad_type",
			"budget",
			"target_audience",
			"start_date",
			"end_date",
			"status",
			"impressions",
			"clicks",
			"conversions",
			"cost",
		).
		Values(
			ad.UserID,
			ad.CampaignName,
			ad.Platform,
			ad.AdType,
			ad.Budget,
			ad.TargetAudience,
			ad.StartDate,
			ad.EndDate,
			ad.Status,
			0, 0, 0, 0,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	adsSQL, adsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRow(adsSQL, adsArgs...).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	ad.Impressions = 0
	ad.Clicks = 0
	ad.Conversions = 0
	ad.Cost = 0

	return ad, nil
}

func (r *adRepository) ListAdsByUser(userID int) ([]*domain.Ad, error) {
	queryBuilder := squirrel.
		Select(
			"id",
			"user_id",
			"campaign_name",
			"platform",
			"ad_type",
			"budget",
			"target_audience",
			"start_date",
			"end_date",
			"status",
			"impressions",
			"clicks",
			"conversions",
			"cost",
			"created_at",
			"updated_at",
		).
		From(adsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	adsSQL, adsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(adsSQL, adsArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		var ad domain.Ad
		if err := rows.Scan(
			&ad.ID,
			&ad.UserID,
			&ad.CampaignName,
			&ad.Platform,
			&ad.AdType,
			&ad.Budget,
			&ad.TargetAudience,
			&ad.StartDate,
			&ad.EndDate,
			&ad.Status,
			&ad.Impressions,
			&ad.Clicks,
			&ad.Conversions,
			&ad.Cost,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		ads = append(ads, &ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return ads, nil
}

// AggregateByUser computa os seis valores brutos do dashboard em uma única
// query agregada. Deve produzir exatamente os mesmos números que o scan do
// backend em memória para os mesmos dados.
func (r *adRepository) AggregateByUser(userID int) (*domain.AggregateValues, error) {
	queryBuilder := squirrel.
		Select(
			"COUNT(*) AS total_ads",
			"COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active_ads",
			"COALESCE(SUM(impressions), 0) AS total_impressions",
			"COALESCE(SUM(clicks), 0) AS total_clicks",
			"COALESCE(SUM(conversions), 0) AS total_conversions",
			"COALESCE(SUM(cost), 0) AS total_cost",
		).
		From(adsTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	statsSQL, statsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var agg domain.AggregateValues
	err = r.conn.QueryRow(statsSQL, statsArgs...).Scan(
		&agg.TotalAds,
		&agg.ActiveAds,
		&agg.TotalImpressions,
		&agg.TotalClicks,
		&agg.TotalConversions,
		&agg.TotalCost,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &agg, nil
}

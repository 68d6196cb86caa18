package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/value-protractor-api/infrastructure/database/postgres"
	"github.com/vfg2006/value-protractor-api/internal/domain"
)

const (
	metricRowsTable = "ad_metric_rows mr"

	metricRowColumns = `mr.id, mr.account_id, mr.date, mr.ad_id, mr.ad_name,
		mr.adset_id, mr.adset_name, mr.campaign_id, mr.campaign_name,
		mr.creative_type, mr.spend, mr.impressions, mr.reach, mr.clicks,
		mr.purchases, mr.purchase_value, mr.rates, mr.created_at, mr.updated_at`
)

// MetricRowRepository reads the daily per-ad fact rows written by the collection
// pipeline. The engine never mutates them; retention is the only write path.
type MetricRowRepository interface {
	GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.MetricRow, error)
	DeleteOlderThan(days int) (int64, error)
}

type metricRowRepository struct {
	conn *postgres.Connection
}

func NewMetricRowRepository(conn *postgres.Connection) MetricRowRepository {
	return &metricRowRepository{
		conn: conn,
	}
}

func (r *metricRowRepository) GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.MetricRow, error) {
	query, args, err := squirrel.
		Select(metricRowColumns).
		From(metricRowsTable).
		Where(squirrel.Eq{"mr.account_id": accountID}).
		Where(squirrel.GtOrEq{"mr.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"mr.date": endDate.Format(time.DateOnly)}).
		OrderBy("mr.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building metric row query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "querying metric rows")
	}
	defer rows.Close()

	metricRows := make([]*domain.MetricRow, 0)
	for rows.Next() {
		row, err := r.scanRow(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning metric row")
		}
		metricRows = append(metricRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating metric rows")
	}

	return metricRows, nil
}

func (r *metricRowRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("ad_metric_rows").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "building metric row delete")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "deleting old metric rows")
	}

	return result.RowsAffected()
}

func (r *metricRowRepository) scanRow(rows *sql.Rows) (*domain.MetricRow, error) {
	row := &domain.MetricRow{}
	var ratesJSON []byte

	err := rows.Scan(
		&row.ID,
		&row.AccountID,
		&row.Date,
		&row.AdID,
		&row.AdName,
		&row.AdsetID,
		&row.AdsetName,
		&row.CampaignID,
		&row.CampaignName,
		&row.CreativeType,
		&row.Spend,
		&row.Impressions,
		&row.Reach,
		&row.Clicks,
		&row.Purchases,
		&row.PurchaseValue,
		&ratesJSON,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Normalization happens here, once: internal logic trusts the typed record
	// and never re-checks field presence.
	if ratesJSON != nil {
		if err := json.Unmarshal(ratesJSON, &row.Rates); err != nil {
			return nil, errors.Wrap(err, "decoding rates JSON")
		}
	}

	return row, nil
}

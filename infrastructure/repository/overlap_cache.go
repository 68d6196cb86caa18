package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/value-protractor-api/infrastructure/database/postgres"
	"github.com/vfg2006/value-protractor-api/internal/domain"
	"github.com/vfg2006/value-protractor-api/pkg/utils"
)

const (
	overlapCacheTable = "overlap_cache oc"

	overlapCacheColumns = `oc.id, oc.account_id, oc.cache_key, oc.period_start,
		oc.period_end, oc.payload, oc.created_at, oc.updated_at`
)

// OverlapCacheRepository is the persisted overlap cache store: one row per
// (account, key, period), where key is "overall" or a pair key. Writes are
// idempotent upserts.
type OverlapCacheRepository interface {
	Get(accountID, key string, periodStart, periodEnd time.Time) (*domain.CachedOverlap, error)
	Upsert(entry *domain.CachedOverlap) error
	DeleteExpired(ttl time.Duration) (int64, error)
}

type overlapCacheRepository struct {
	conn *postgres.Connection
}

func NewOverlapCacheRepository(conn *postgres.Connection) OverlapCacheRepository {
	return &overlapCacheRepository{
		conn: conn,
	}
}

type overlapPayload struct {
	Result *domain.OverlapResult `json:"result,omitempty"`
	Pair   *domain.OverlapPair   `json:"pair,omitempty"`
}

func (r *overlapCacheRepository) Get(accountID, key string, periodStart, periodEnd time.Time) (*domain.CachedOverlap, error) {
	query, args, err := squirrel.
		Select(overlapCacheColumns).
		From(overlapCacheTable).
		Where(squirrel.Eq{
			"oc.account_id":   accountID,
			"oc.cache_key":    key,
			"oc.period_start": periodStart.Format(time.DateOnly),
			"oc.period_end":   periodEnd.Format(time.DateOnly),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building overlap cache query")
	}

	row := r.conn.QueryRow(query, args...)

	entry := &domain.CachedOverlap{}
	var payloadJSON []byte

	err = row.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.Key,
		&entry.PeriodStart,
		&entry.PeriodEnd,
		&payloadJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "scanning overlap cache entry")
	}

	if payloadJSON != nil {
		payload := &overlapPayload{}
		if err := json.Unmarshal(payloadJSON, payload); err != nil {
			return nil, errors.Wrap(err, "decoding overlap cache payload")
		}
		entry.Result = payload.Result
		entry.Pair = payload.Pair
	}

	return entry, nil
}

func (r *overlapCacheRepository) Upsert(entry *domain.CachedOverlap) error {
	payloadJSON, err := json.Marshal(overlapPayload{
		Result: entry.Result,
		Pair:   entry.Pair,
	})
	if err != nil {
		return errors.Wrap(err, "encoding overlap cache payload")
	}

	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "generating overlap cache id")
		}
		entry.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert("overlap_cache").
		Columns("id", "account_id", "cache_key", "period_start", "period_end", "payload").
		Values(
			entry.ID,
			entry.AccountID,
			entry.Key,
			entry.PeriodStart.Format(time.DateOnly),
			entry.PeriodEnd.Format(time.DateOnly),
			payloadJSON,
		).
		Suffix(`
			ON CONFLICT (account_id, cache_key, period_start, period_end) DO UPDATE SET
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "building overlap cache upsert")
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "overlap cache upsert failed (code %s)", pqErr.Code)
		}
		return errors.Wrap(err, "upserting overlap cache entry")
	}

	return nil
}

func (r *overlapCacheRepository) DeleteExpired(ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)

	query, args, err := squirrel.
		Delete("overlap_cache").
		Where(squirrel.Lt{"updated_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "building overlap cache delete")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "deleting expired overlap cache entries")
	}

	return result.RowsAffected()
}

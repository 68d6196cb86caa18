package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/value-protractor-api/infrastructure/database/postgres"
	"github.com/vfg2006/value-protractor-api/internal/domain"
)

const (
	benchmarksTable = "metric_benchmarks mb"

	benchmarkColumns = `mb.id, mb.metric_key, mb.ranking_type, mb.ranking_group,
		mb.creative_type, mb.p25, mb.p50, mb.p75, mb.p90, mb.above_avg,
		mb.calculated_at, mb.created_at`
)

// BenchmarkRepository reads the percentile snapshots written by the benchmark
// batch job. List returns every row; the resolver finds the latest calculation
// date itself and makes no assumption about row order.
type BenchmarkRepository interface {
	List() ([]*domain.BenchmarkEntry, error)
	DeleteOlderThan(days int) (int64, error)
}

type benchmarkRepository struct {
	conn *postgres.Connection
}

func NewBenchmarkRepository(conn *postgres.Connection) BenchmarkRepository {
	return &benchmarkRepository{
		conn: conn,
	}
}

func (r *benchmarkRepository) List() ([]*domain.BenchmarkEntry, error) {
	query, args, err := squirrel.
		Select(benchmarkColumns).
		From(benchmarksTable).
		OrderBy("mb.calculated_at DESC", "mb.metric_key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building benchmark query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "querying benchmarks")
	}
	defer rows.Close()

	entries := make([]*domain.BenchmarkEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning benchmark entry")
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating benchmark entries")
	}

	return entries, nil
}

func (r *benchmarkRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("metric_benchmarks").
		Where(squirrel.Lt{"calculated_at": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "building benchmark delete")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "deleting old benchmarks")
	}

	return result.RowsAffected()
}

func (r *benchmarkRepository) scanEntry(rows *sql.Rows) (*domain.BenchmarkEntry, error) {
	entry := &domain.BenchmarkEntry{}
	var p25, p50, p75, p90, aboveAvg sql.NullFloat64

	err := rows.Scan(
		&entry.ID,
		&entry.MetricKey,
		&entry.RankingType,
		&entry.RankingGroup,
		&entry.CreativeType,
		&p25,
		&p50,
		&p75,
		&p90,
		&aboveAvg,
		&entry.CalculatedAt,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.P25 = nullableFloat(p25)
	entry.P50 = nullableFloat(p50)
	entry.P75 = nullableFloat(p75)
	entry.P90 = nullableFloat(p90)
	entry.AboveAvg = nullableFloat(aboveAvg)

	return entry, nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// Package overlapping estimates audience overlap between an account's active
// ad-sets via inclusion-exclusion over the combined-reach oracle.
//
// Reach calls are expensive, so the estimator is cache-first and works under a
// soft deadline: n single-set calls, one all-set call, then at most
// pairLimit*(pairLimit-1)/2 pair calls, stopping early when the deadline or the
// request context runs out.
package overlapping

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/value-protractor-api/infrastructure/integrator/meta"
	"github.com/vfg2006/value-protractor-api/infrastructure/repository"
	"github.com/vfg2006/value-protractor-api/internal/config"
	"github.com/vfg2006/value-protractor-api/internal/domain"
	"github.com/vfg2006/value-protractor-api/pkg/utils"
)

type Service struct {
	cfg    *config.Config
	oracle meta.ReachOracle
	cache  repository.OverlapCacheRepository
}

func NewService(
	cfg *config.Config,
	oracle meta.ReachOracle,
	cache repository.OverlapCacheRepository,
) *Service {
	return &Service{
		cfg:    cfg,
		oracle: oracle,
		cache:  cache,
	}
}

// ComputeOverlap returns the overlap estimate for the account and period,
// serving a fresh cached result unless force is set. The stored TTL policy
// lives here, not in the repository: rows past the TTL are recomputed in
// place, retention deletes them later.
func (s *Service) ComputeOverlap(
	ctx context.Context,
	accountID string,
	startDate, endDate time.Time,
	force bool,
) (*domain.OverlapResult, error) {
	if !force {
		if cached := s.freshEntry(accountID, domain.OverlapKeyOverall, startDate, endDate); cached != nil && cached.Result != nil {
			result := cached.Result
			result.Cached = true
			return result, nil
		}
	}

	deadline := time.Now().Add(time.Duration(s.cfg.Overlap.SoftDeadlineSeconds) * time.Second)

	adsets, err := s.oracle.ActiveAdsets(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "listing active adsets for overlap")
	}

	result := &domain.OverlapResult{
		AccountID:  accountID,
		StartDate:  startDate.Format(time.DateOnly),
		EndDate:    endDate.Format(time.DateOnly),
		Pairs:      []*domain.OverlapPair{},
		ComputedAt: time.Now(),
	}

	measured := s.measureAdsets(ctx, accountID, adsets, startDate, endDate, deadline)
	if len(measured) == 0 {
		return result, nil
	}

	individualSum := lo.SumBy(measured, func(a *domain.Adset) int { return a.Reach })
	result.IndividualReachSum = individualSum

	adsetIDs := lo.Map(measured, func(a *domain.Adset, _ int) string { return a.ID })

	totalUnique, err := s.oracle.CombinedReach(ctx, accountID, adsetIDs, startDate, endDate)
	if err != nil || totalUnique == 0 {
		// Without the all-set call the estimate degrades to zero overlap
		// instead of failing the request.
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"adsets":     len(measured),
		}).Warn("overlap: full-set reach unavailable, assuming no overlap")
		totalUnique = individualSum
	}
	result.TotalUniqueReach = totalUnique

	if individualSum > 0 {
		rate := float64(individualSum-totalUnique) / float64(individualSum) * 100
		result.OverallRate = utils.RoundWithTwoDecimalPlace(utils.Clamp(rate, 0, 100))
	}

	top := measured
	if len(top) > s.cfg.Overlap.PairLimit {
		top = top[:s.cfg.Overlap.PairLimit]
		result.Truncated = true
	}

	pairs, hitDeadline := s.measurePairs(ctx, accountID, top, startDate, endDate, deadline)
	if hitDeadline {
		result.Truncated = true
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].OverlapRate > pairs[j].OverlapRate
	})
	result.Pairs = pairs

	s.store(accountID, domain.OverlapKeyOverall, startDate, endDate, result, nil)

	return result, nil
}

// measureAdsets fills each ad-set's single-set reach, dropping the ones the
// oracle fails on or reports zero for. Returned slice is sorted by reach,
// highest first.
func (s *Service) measureAdsets(
	ctx context.Context,
	accountID string,
	adsets []*domain.Adset,
	startDate, endDate time.Time,
	deadline time.Time,
) []*domain.Adset {
	measured := make([]*domain.Adset, 0, len(adsets))

	for _, adset := range adsets {
		if ctx.Err() != nil || time.Now().After(deadline) {
			break
		}

		reach, err := s.oracle.CombinedReach(ctx, accountID, []string{adset.ID}, startDate, endDate)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"adset_id":   adset.ID,
			}).Warn("overlap: skipping adset, reach lookup failed")
			continue
		}
		if reach == 0 {
			continue
		}

		adset.Reach = reach
		measured = append(measured, adset)
	}

	sort.Slice(measured, func(i, j int) bool {
		return measured[i].Reach > measured[j].Reach
	})

	return measured
}

// measurePairs walks every unordered pair of the top ad-sets, cache-first and
// deadline-bounded. A failed pair is skipped, never fatal.
func (s *Service) measurePairs(
	ctx context.Context,
	accountID string,
	adsets []*domain.Adset,
	startDate, endDate time.Time,
	deadline time.Time,
) ([]*domain.OverlapPair, bool) {
	pairs := make([]*domain.OverlapPair, 0)

	for i := 0; i < len(adsets); i++ {
		for j := i + 1; j < len(adsets); j++ {
			if ctx.Err() != nil || time.Now().After(deadline) {
				return pairs, true
			}

			a, b := adsets[i], adsets[j]
			key := domain.PairKey(a.ID, b.ID)

			if cached := s.freshEntry(accountID, key, startDate, endDate); cached != nil && cached.Pair != nil {
				pairs = append(pairs, cached.Pair)
				continue
			}

			combined, err := s.oracle.CombinedReach(ctx, accountID, []string{a.ID, b.ID}, startDate, endDate)
			if err != nil || combined == 0 {
				logrus.WithFields(logrus.Fields{
					"account_id": accountID,
					"adset_a":    a.ID,
					"adset_b":    b.ID,
				}).Warn("overlap: skipping pair, combined reach unavailable")
				continue
			}

			pair := buildPair(a, b, combined)
			pairs = append(pairs, pair)

			s.store(accountID, key, startDate, endDate, nil, pair)
		}
	}

	return pairs, false
}

// buildPair derives the pair overlap rate by inclusion-exclusion over the
// summed audiences: (reachA + reachB - combined) / (reachA + reachB).
func buildPair(a, b *domain.Adset, combined int) *domain.OverlapPair {
	sum := a.Reach + b.Reach
	overlap := sum - combined

	var rate float64
	if sum > 0 {
		rate = float64(overlap) / float64(sum) * 100
	}

	return &domain.OverlapPair{
		AdsetAID:      a.ID,
		AdsetAName:    a.Name,
		AdsetBID:      b.ID,
		AdsetBName:    b.Name,
		ReachA:        a.Reach,
		ReachB:        b.Reach,
		CombinedReach: combined,
		OverlapRate:   utils.RoundWithTwoDecimalPlace(utils.Clamp(rate, 0, 100)),
	}
}

// freshEntry returns a cache row only when it is within the configured TTL.
func (s *Service) freshEntry(accountID, key string, startDate, endDate time.Time) *domain.CachedOverlap {
	entry, err := s.cache.Get(accountID, key, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"cache_key":  key,
		}).Warn("overlap: cache lookup failed, recomputing")
		return nil
	}
	if entry == nil {
		return nil
	}

	ttl := time.Duration(s.cfg.Overlap.CacheTTLHours) * time.Hour
	if time.Since(entry.UpdatedAt) > ttl {
		return nil
	}

	return entry
}

// store upserts a cache row, best effort. A cache write failure never fails
// the request.
func (s *Service) store(accountID, key string, startDate, endDate time.Time, result *domain.OverlapResult, pair *domain.OverlapPair) {
	err := s.cache.Upsert(&domain.CachedOverlap{
		AccountID:   accountID,
		Key:         key,
		PeriodStart: startDate,
		PeriodEnd:   endDate,
		Result:      result,
		Pair:        pair,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"cache_key":  key,
			"error":      err.Error(),
		}).Warn("overlap: cache write failed")
	}
}

package meta

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/value-protractor-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/value-protractor-api/internal/config"
	"github.com/vfg2006/value-protractor-api/internal/domain"
)

// ReachOracle is the combined-reach contract the overlap estimator consumes.
// CombinedReach is one external call per invocation.
type ReachOracle interface {
	CombinedReach(ctx context.Context, accountID string, adsetIDs []string, startDate, endDate time.Time) (int, error)
	ActiveAdsets(ctx context.Context, accountID string) ([]*domain.Adset, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

var _ ReachOracle = (*MetaIntegrator)(nil)

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// CombinedReach returns the deduplicated audience size across the given
// ad-sets for the period.
func (s *MetaIntegrator) CombinedReach(
	ctx context.Context,
	accountID string,
	adsetIDs []string,
	startDate, endDate time.Time,
) (int, error) {
	resp, err := s.Client.GetCombinedReach(ctx, accountID, adsetIDs, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"adset_ids":  adsetIDs,
			"error":      err.Error(),
		}).Warn("overlap: failed to get combined reach from Graph API")
		return 0, err
	}

	if len(resp.Data) == 0 {
		return 0, nil
	}

	reach, err := strconv.Atoi(resp.Data[0].Reach)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  accountID,
			"reach_value": resp.Data[0].Reach,
			"error":       err.Error(),
		}).Warn("overlap: error converting reach to integer")
		return 0, err
	}

	return reach, nil
}

// ActiveAdsets lists the account's active ad-sets. Reach is left zero; the
// estimator fills it per ad-set.
func (s *MetaIntegrator) ActiveAdsets(ctx context.Context, accountID string) ([]*domain.Adset, error) {
	adsets, err := s.Client.GetActiveAdsets(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("overlap: failed to list active adsets")
		return nil, err
	}

	out := make([]*domain.Adset, 0, len(adsets))
	for _, adset := range adsets {
		out = append(out, &domain.Adset{
			ID:           adset.ID,
			Name:         adset.Name,
			CampaignName: adset.Campaign.Name,
		})
	}

	return out, nil
}

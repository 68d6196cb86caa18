package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/value-protractor-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/value-protractor-api/internal/config"
)

// Client is the raw Graph API surface the reach oracle needs.
type Client interface {
	GetCombinedReach(ctx context.Context, accountID string, adsetIDs []string, startDate, endDate time.Time) (*metadomain.ReachInsightResponse, error)
	GetActiveAdsets(ctx context.Context, accountID string) ([]metadomain.Adset, error)
}

type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second,
		},
	}
}

func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading Graph API response")
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &metadomain.APIError{}
		if err := json.Unmarshal(body, apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("graph api error (code %d): %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("graph api returned status %d", resp.StatusCode)
	}

	return body, nil
}

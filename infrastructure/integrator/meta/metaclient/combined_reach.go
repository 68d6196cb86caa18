package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/value-protractor-api/infrastructure/integrator/meta/domain"
)

// GetCombinedReach queries account-level deduplicated reach for the given
// ad-sets over the period. One Graph API call per invocation; the estimator
// relies on that for its call budget.
func (c *MetaClient) GetCombinedReach(
	ctx context.Context,
	accountID string,
	adsetIDs []string,
	startDate, endDate time.Time,
) (*metadomain.ReachInsightResponse, error) {
	filtering, err := json.Marshal([]map[string]interface{}{
		{
			"field":    "adset.id",
			"operator": "IN",
			"value":    adsetIDs,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "encoding adset filter")
	}

	timeRange := fmt.Sprintf(`{"since":"%s","until":"%s"}`,
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	)

	params := url.Values{}
	params.Add("fields", "reach")
	params.Add("level", "account")
	params.Add("filtering", string(filtering))
	params.Add("time_range", timeRange)
	params.Add("access_token", c.cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/%s/insights?%s", c.cfg.Meta.URL, accountID, params.Encode())

	body, err := c.doRequest(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	response := &metadomain.ReachInsightResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, errors.Wrap(err, "decoding combined reach response")
	}

	return response, nil
}

// doRequest performs a GET with bounded retry. Attempts back off so a brief
// Graph API hiccup doesn't fail the whole estimate.
func (c *MetaClient) doRequest(ctx context.Context, requestURL string) ([]byte, error) {
	var body []byte

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}

			body, err = c.HandleResponse(resp)
			return err
		},
		retry.Attempts(uint(c.cfg.Meta.MaxRetries)),
		retry.Delay(500*time.Millisecond),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	return body, nil
}

package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/value-protractor-api/infrastructure/integrator/meta/domain"
)

// maxAdsetPages bounds cursor walking on pathological accounts.
const maxAdsetPages = 10

// GetActiveAdsets lists the account's ad-sets with effective status ACTIVE,
// following the paging cursor until exhausted.
func (c *MetaClient) GetActiveAdsets(ctx context.Context, accountID string) ([]metadomain.Adset, error) {
	filtering := `[{"field":"effective_status","operator":"IN","value":["ACTIVE"]}]`

	params := url.Values{}
	params.Add("fields", "id,name,campaign{name}")
	params.Add("filtering", filtering)
	params.Add("limit", "100")
	params.Add("access_token", c.cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/%s/adsets?%s", c.cfg.Meta.URL, accountID, params.Encode())

	adsets := make([]metadomain.Adset, 0)
	for page := 0; requestURL != "" && page < maxAdsetPages; page++ {
		body, err := c.doRequest(ctx, requestURL)
		if err != nil {
			return nil, err
		}

		response := &metadomain.AdsetListResponse{}
		if err := json.Unmarshal(body, response); err != nil {
			return nil, errors.Wrap(err, "decoding adset list response")
		}

		adsets = append(adsets, response.Data...)

		// The next URL carries the cursor and access token as issued by the
		// Graph API.
		requestURL = response.Paging.Next
	}

	return adsets, nil
}

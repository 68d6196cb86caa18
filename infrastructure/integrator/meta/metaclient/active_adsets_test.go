package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/value-protractor-api/internal/config"
)

func metaTestConfig(baseURL string) *config.Config {
	return &config.Config{
		Meta: config.Meta{
			URL:                   baseURL,
			AccessToken:           "test_token",
			RequestTimeoutSeconds: 5,
			MaxRetries:            1,
		},
	}
}

func TestMetaClient_GetActiveAdsets(t *testing.T) {
	t.Run("follows the paging cursor until exhausted", func(t *testing.T) {
		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			if r.URL.Query().Get("after") == "page2" {
				fmt.Fprint(w, `{"data":[{"id":"as3","name":"adset 3","campaign":{"name":"c2"}}]}`)
				return
			}

			fmt.Fprintf(w,
				`{"data":[{"id":"as1","name":"adset 1","campaign":{"name":"c1"}},{"id":"as2","name":"adset 2","campaign":{"name":"c1"}}],"paging":{"next":"%s/act_1/adsets?after=page2"}}`,
				server.URL,
			)
		}))
		defer server.Close()

		client := NewClient(metaTestConfig(server.URL))
		adsets, err := client.GetActiveAdsets(context.Background(), "act_1")

		assert.NoError(t, err)
		assert.Len(t, adsets, 3)
		assert.Equal(t, "as1", adsets[0].ID)
		assert.Equal(t, "as3", adsets[2].ID)
		assert.Equal(t, "c2", adsets[2].Campaign.Name)
	})

	t.Run("single page without a cursor stops after one call", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"data":[{"id":"as1","name":"adset 1","campaign":{"name":"c1"}}]}`)
		}))
		defer server.Close()

		client := NewClient(metaTestConfig(server.URL))
		adsets, err := client.GetActiveAdsets(context.Background(), "act_1")

		assert.NoError(t, err)
		assert.Len(t, adsets, 1)
		assert.Equal(t, 1, calls)
	})
}

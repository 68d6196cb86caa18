package handler

import (
	"net/http"

	"github.com/vfg2006/value-protractor-api/internal/domain"
	"github.com/vfg2006/value-protractor-api/pkg/log"
)

// MetricCatalog serves the metric definitions the web layer renders labels and
// directions from. The catalog is static per build.
func MetricCatalog() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(domain.AllMetrics()); err != nil {
			logger.WithError(err).Error("catalog: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

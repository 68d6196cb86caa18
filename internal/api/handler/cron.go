package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/value-protractor-api/internal/scheduler"
	"github.com/vfg2006/value-protractor-api/pkg/apiErrors"
)

// RunRetention triggers one retention pass outside the cron schedule. The pass
// runs asynchronously; poll the status endpoint for completion.
func RunRetention(service *scheduler.RetentionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "retention service unavailable", nil)
			return
		}

		if err := service.RunNow(); err != nil {
			logrus.WithError(err).Warn("cron: manual retention trigger refused")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logrus.Info("cron: manual retention pass triggered")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "triggered"})
	})
}

// CronStatus reports the retention scheduler state.
func CronStatus(service *scheduler.RetentionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "retention service unavailable", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			logrus.WithError(err).Error("cron: failed to encode status response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

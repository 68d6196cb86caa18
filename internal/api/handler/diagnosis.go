package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/value-protractor-api/internal/config"
	"github.com/vfg2006/value-protractor-api/internal/usecases/diagnosing"
	"github.com/vfg2006/value-protractor-api/pkg/apiErrors"
	"github.com/vfg2006/value-protractor-api/pkg/log"
)

func GetAccountDiagnosis(cfg *config.Config, service *diagnosing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		periodDays := cfg.Diagnosis.DefaultPeriodDays
		if raw := r.URL.Query().Get("period_days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > cfg.Diagnosis.MaxPeriodDays {
				logger.WithFields(log.Fields{
					"account_id":  id,
					"period_days": raw,
				}).Warn("diagnosis: invalid period_days parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					fmt.Sprintf("period_days must be an integer between 1 and %d", cfg.Diagnosis.MaxPeriodDays), nil)
				return
			}
			periodDays = parsed
		}

		logger.WithFields(log.Fields{
			"account_id":  id,
			"period_days": periodDays,
		}).Info("diagnosis: computing T3 score")

		score, err := service.ComputeT3Score(id, periodDays)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("diagnosis: failed to compute T3 score")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to compute account diagnosis", nil)
			return
		}

		if score.Score == nil {
			logger.WithField("account_id", id).Info("diagnosis: no data in period, serving empty diagnosis")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(score); err != nil {
			logger.WithError(err).Error("diagnosis: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

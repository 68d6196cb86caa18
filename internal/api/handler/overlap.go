package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/value-protractor-api/internal/usecases/overlapping"
	"github.com/vfg2006/value-protractor-api/pkg/apiErrors"
	"github.com/vfg2006/value-protractor-api/pkg/log"
	"github.com/vfg2006/value-protractor-api/pkg/utils"
)

func GetAccountOverlap(service *overlapping.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("overlap: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date must be yyyy-mm-dd", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("overlap: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must be yyyy-mm-dd", nil)
			return
		}

		if endDate.Before(*startDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "end_date must not precede start_date", nil)
			return
		}

		force := r.URL.Query().Get("force") == "true"

		logger.WithFields(log.Fields{
			"account_id": id,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
			"force":      force,
		}).Info("overlap: computing audience overlap")

		result, err := service.ComputeOverlap(r.Context(), id, *startDate, *endDate, force)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("overlap: failed to compute overlap estimate")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "failed to compute audience overlap", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("overlap: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

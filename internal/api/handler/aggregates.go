package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/value-protractor-api/internal/usecases/aggregating"
	"github.com/vfg2006/value-protractor-api/pkg/apiErrors"
	"github.com/vfg2006/value-protractor-api/pkg/log"
	"github.com/vfg2006/value-protractor-api/pkg/utils"
)

func GetAccountAggregates(service *aggregating.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("aggregates: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date must be yyyy-mm-dd", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("aggregates: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must be yyyy-mm-dd", nil)
			return
		}

		if endDate.Before(*startDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "end_date must not precede start_date", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Info("aggregates: computing account aggregates")

		aggregates, err := service.GetAggregates(id, *startDate, *endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("aggregates: failed to compute aggregates")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load account aggregates", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(aggregates); err != nil {
			logger.WithError(err).Error("aggregates: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/sales-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
	"github.com/vfg2006/sales-analyzer-api/pkg/utils"
)

// GetInsightHistory lista os snapshots diários do usuário entre start_date e end_date (ambos opcionais)
func GetInsightHistory(repo repository.InsightSnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		logger := log.ForContext(r.Context())

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithField("error", err.Error()).Warn("Parâmetro start_date inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato 2006-01-02", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithField("error", err.Error()).Warn("Parâmetro end_date inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato 2006-01-02", nil)
			return
		}

		if !startDate.IsZero() && !endDate.IsZero() && endDate.Before(*startDate) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "end_date anterior a start_date", map[string]any{
				"start_date": startDate.Format(time.DateOnly),
				"end_date":   endDate.Format(time.DateOnly),
			})
			return
		}

		snapshots, err := repo.GetByDateRange(r.Context(), claims.UserID, *startDate, *endDate)
		if err != nil {
			logger.WithError(err).Error("Erro ao buscar histórico de insights")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de insights", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshots)
	}
}

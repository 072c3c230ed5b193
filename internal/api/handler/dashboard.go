package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
)

// forecastParam lê ?forecast=. Vazio equivale a false.
func forecastParam(w http.ResponseWriter, r *http.Request) (bool, bool) {
	value := r.URL.Query().Get("forecast")
	if value == "" {
		return false, true
	}

	forecast, err := strconv.ParseBool(value)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro forecast inválido", nil)
		return false, false
	}

	return forecast, true
}

func GetDashboard(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		tr, ok := timeRangeParam(w, r)
		if !ok {
			return
		}

		forecast, ok := forecastParam(w, r)
		if !ok {
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), claims.UserID, domain.DashboardFilters{
			TimeRange: tr,
			Forecast:  forecast,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar dashboard")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id":    claims.UserID,
			"time_range": dashboard.TimeRange,
		}).Debug("Dashboard montado")

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}

// KPIsResponse inclui os cartões formatados junto dos valores brutos
type KPIsResponse struct {
	KPIs  *domain.KPISummary `json:"kpis"`
	Cards []domain.KPICard   `json:"cards"`
}

func GetKPIs(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		tr, ok := timeRangeParam(w, r)
		if !ok {
			return
		}

		kpis, err := service.GetKPIs(r.Context(), claims.UserID, tr)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular KPIs")
			return
		}

		writeJSON(w, r, http.StatusOK, KPIsResponse{
			KPIs:  kpis,
			Cards: domain.KPICards(kpis),
		})
	}
}

func GetVelocity(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		tr, ok := timeRangeParam(w, r)
		if !ok {
			return
		}

		forecast, ok := forecastParam(w, r)
		if !ok {
			return
		}

		velocity, err := service.GetVelocity(r.Context(), claims.UserID, tr, forecast)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular velocidade de vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, velocity)
	}
}

func GetRegions(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		tr, ok := timeRangeParam(w, r)
		if !ok {
			return
		}

		regions, err := service.GetRegions(r.Context(), claims.UserID, tr)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular receita por região")
			return
		}

		writeJSON(w, r, http.StatusOK, regions)
	}
}

// GetInsight responde 204 quando não há vendas no período
func GetInsight(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		tr, ok := timeRangeParam(w, r)
		if !ok {
			return
		}

		insight, err := service.GetInsight(r.Context(), claims.UserID, tr)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar insight")
			return
		}

		if insight == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, r, http.StatusOK, insight)
	}
}

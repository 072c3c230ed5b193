package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
	"github.com/vfg2006/sales-analyzer-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa body antes de escrever o status, para que falhas virem SRV_001
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao serializar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(append(data, '\n')); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// currentUser devolve o usuário autenticado ou responde 401
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// timeRangeParam lê ?range=. Vazio significa o período padrão do serviço.
func timeRangeParam(w http.ResponseWriter, r *http.Request) (domain.TimeRange, bool) {
	value := r.URL.Query().Get("range")
	if value == "" {
		return "", true
	}

	tr, err := domain.ParseTimeRange(value)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidTimeRange, "Período inválido", map[string]any{
			"range":    value,
			"accepted": domain.TimeRanges,
		})
		return "", false
	}

	return tr, true
}

// writeServiceError traduz erros dos casos de uso para o formato da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error(message)

	if errors.Is(err, domain.ErrInvalidTimeRange) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidTimeRange, "Período inválido", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
}

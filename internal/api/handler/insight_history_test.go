package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analyzer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analyzer-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestGetInsightHistory(t *testing.T) {
	t.Run("Intervalo informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockInsightSnapshotRepository(ctrl)
		repo.EXPECT().
			GetByDateRange(gomock.Any(), testUserID,
				time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			).
			Return([]*domain.InsightSnapshot{
				{UserID: testUserID, Date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), KPIs: &domain.KPISummary{Revenue: 10}},
			}, nil)

		rec := serve(InsightHistory(repo), http.MethodGet, "/v1/insights/history?start_date=2024-06-01&end_date=2024-06-15", nil, middleware.RoleAnalyst)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[[]domain.InsightSnapshot](t, rec)
		require.Len(t, body, 1)
		assert.Equal(t, 10.0, body[0].KPIs.Revenue)
	})

	t.Run("Sem intervalo consulta tudo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockInsightSnapshotRepository(ctrl)
		repo.EXPECT().GetByDateRange(gomock.Any(), testUserID, time.Time{}, time.Time{}).Return(nil, nil)

		rec := serve(InsightHistory(repo), http.MethodGet, "/v1/insights/history", nil, middleware.RoleAnalyst)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Data inválida", func(t *testing.T) {
		rec := serve(InsightHistory(nil), http.MethodGet, "/v1/insights/history?start_date=01/06/2024", nil, middleware.RoleAnalyst)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("Fim antes do início", func(t *testing.T) {
		rec := serve(InsightHistory(nil), http.MethodGet, "/v1/insights/history?start_date=2024-06-15&end_date=2024-06-01", nil, middleware.RoleAnalyst)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))
	})

	t.Run("Erro no banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockInsightSnapshotRepository(ctrl)
		repo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		rec := serve(InsightHistory(repo), http.MethodGet, "/v1/insights/history", nil, middleware.RoleAnalyst)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, errorCode(t, rec))
	})
}

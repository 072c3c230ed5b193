package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/sales-analyzer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analyzer-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	analyzingmocks "github.com/vfg2006/sales-analyzer-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/importing"
	importingmocks "github.com/vfg2006/sales-analyzer-api/internal/usecases/importing/mocks"
	"github.com/vfg2006/sales-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analyzer-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func salesRoutes(analyzer *analyzingmocks.MockAnalyzer, importer *importingmocks.MockImporter, maxRows int) []router.Route {
	return Sales(analyzer, importer, exporting.NewExporter(""), time.UTC, maxRows)
}

func exportRecords() []domain.SaleRecord {
	return []domain.SaleRecord{
		{
			ID:       "a1",
			Date:     time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
			Amount:   100,
			Product:  "Widget",
			Region:   "East",
			Customer: "Alice",
			Margin:   floatPtr(10),
		},
		{
			ID:       "b2",
			Date:     time.Date(2024, 5, 11, 12, 0, 0, 0, time.UTC),
			Amount:   200,
			Product:  "Gadget",
			Region:   "West",
			Customer: "Bob",
		},
	}
}

func TestListSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().
		ListSales(gomock.Any(), testUserID, domain.TimeRangeLast7Days).
		Return(exportRecords(), nil)

	rec := serve(salesRoutes(analyzer, nil, 0), http.MethodGet, "/v1/sales?range=last_7_days", nil, middleware.RoleAnalyst)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[[]domain.SaleRecord](t, rec)
	require.Len(t, body, 2)
	assert.Equal(t, "a1", body[0].ID)
	assert.Nil(t, body[1].Margin)
}

func TestCreateSales(t *testing.T) {
	t.Run("Converte e importa as vendas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		importer := importingmocks.NewMockImporter(ctrl)
		importer.EXPECT().
			Import(gomock.Any(), testUserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, records []domain.SaleRecord) ([]domain.SaleRecord, error) {
				require.Len(t, records, 2)
				assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), records[0].Date)
				assert.Equal(t, time.Date(2024, 5, 11, 15, 30, 0, 0, time.UTC), records[1].Date)
				assert.Equal(t, 10.0, *records[0].Margin)
				assert.Nil(t, records[1].Margin)
				return records, nil
			})

		body := `[
			{"date":"2024-05-10","amount":100,"product":"Widget","region":"East","customer":"Alice","margin":10},
			{"date":"2024-05-11T15:30:00Z","amount":200,"product":"Gadget","region":"West","customer":"Bob"}
		]`

		rec := serve(salesRoutes(nil, importer, 0), http.MethodPost, "/v1/sales", strings.NewReader(body), middleware.RoleAnalyst)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 2, decodeBody[ImportResponse](t, rec).Imported)
	})

	t.Run("Data inválida", func(t *testing.T) {
		body := `[{"date":"10/05/2024","amount":100}]`

		rec := serve(salesRoutes(nil, nil, 0), http.MethodPost, "/v1/sales", strings.NewReader(body), middleware.RoleAnalyst)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("JSON inválido", func(t *testing.T) {
		rec := serve(salesRoutes(nil, nil, 0), http.MethodPost, "/v1/sales", strings.NewReader("{"), middleware.RoleAnalyst)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))
	})

	t.Run("Lista vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		importer := importingmocks.NewMockImporter(ctrl)
		importer.EXPECT().Import(gomock.Any(), testUserID, gomock.Len(0)).Return(nil, importing.ErrEmptyImport)

		rec := serve(salesRoutes(nil, importer, 0), http.MethodPost, "/v1/sales", strings.NewReader("[]"), middleware.RoleAnalyst)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec))
	})
}

func TestUploadSales(t *testing.T) {
	const csvBody = "date,amount,product,region,customer,margin\n" +
		"2024-05-10,100,Widget,East,Alice,10\n" +
		"2024-05-11,200,Gadget,West,Bob,\n"

	tests := []struct {
		name           string
		body           string
		setup          func(m *importingmocks.MockImporter)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Arquivo válido",
			body: csvBody,
			setup: func(m *importingmocks.MockImporter) {
				m.EXPECT().
					Import(gomock.Any(), testUserID, gomock.Len(2)).
					DoAndReturn(func(_ context.Context, _ int, records []domain.SaleRecord) ([]domain.SaleRecord, error) {
						return records, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Coluna obrigatória ausente",
			body:           "date,amount,product,region\n2024-05-10,100,Widget,East\n",
			setup:          func(m *importingmocks.MockImporter) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "Valor inválido em uma linha",
			body:           "date,amount,product,region,customer\n2024-05-10,abc,Widget,East,Alice\n",
			setup:          func(m *importingmocks.MockImporter) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "Valor negativo em uma linha",
			body:           "date,amount,product,region,customer\n2024-05-10,100,Widget,East,Alice\n2024-05-11,-40,Widget,East,Bob\n",
			setup:          func(m *importingmocks.MockImporter) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "Valor NaN",
			body:           "date,amount,product,region,customer\n2024-05-10,NaN,Widget,East,Alice\n",
			setup:          func(m *importingmocks.MockImporter) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name: "Erro ao gravar",
			body: csvBody,
			setup: func(m *importingmocks.MockImporter) {
				m.EXPECT().Import(gomock.Any(), testUserID, gomock.Any()).Return(nil, errors.New("tx aborted"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			importer := importingmocks.NewMockImporter(ctrl)
			tt.setup(importer)

			rec := serve(salesRoutes(nil, importer, 0), http.MethodPost, "/v1/sales/upload", strings.NewReader(tt.body), middleware.RoleAnalyst)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, rec))
			}
		})
	}
}

func TestCreateSales_NegativeAmountNeverReachesDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// sem EXPECT: qualquer gravação falha o teste
	saleRepo := repomocks.NewMockSaleRepository(ctrl)
	routes := Sales(nil, importing.NewService(saleRepo), exporting.NewExporter(""), time.UTC, 0)

	body := `[
		{"date":"2024-05-10","amount":100,"product":"Widget","region":"East","customer":"Alice"},
		{"date":"2024-05-11","amount":-40,"product":"Widget","region":"East","customer":"Bob"}
	]`

	rec := serve(routes, http.MethodPost, "/v1/sales", strings.NewReader(body), middleware.RoleAnalyst)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))

	details := decodeBody[map[string]any](t, rec)["details"].(map[string]any)
	assert.Equal(t, 2.0, details["line"])
}

func TestUploadSales_TooLarge(t *testing.T) {
	header := "date,amount,product,region,customer\n"
	row := "2024-05-10,100,Widget,East,Alice\n"
	body := header + strings.Repeat(row, MaxUploadBytes/len(row)+1)

	rec := serve(salesRoutes(nil, nil, 0), http.MethodPost, "/v1/sales/upload", strings.NewReader(body), middleware.RoleAnalyst)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, apiErrors.ErrPayloadTooLarge, errorCode(t, rec))
}

func TestExportSales(t *testing.T) {
	t.Run("CSV", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().ListSales(gomock.Any(), testUserID, domain.TimeRange("")).Return(exportRecords(), nil)

		rec := serve(salesRoutes(analyzer, nil, 0), http.MethodGet, "/v1/sales/export", nil, middleware.RoleAnalyst)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="sales.csv"`)

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "id,date,amount,product,region,customer,margin", lines[0])
		assert.Equal(t, "a1,2024-05-10T12:00:00Z,100,Widget,East,Alice,10", lines[1])
		assert.Equal(t, "b2,2024-05-11T12:00:00Z,200,Gadget,West,Bob,", lines[2])
	})

	t.Run("XLSX", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().ListSales(gomock.Any(), testUserID, domain.TimeRangeYTD).Return(exportRecords(), nil)

		rec := serve(salesRoutes(analyzer, nil, 0), http.MethodGet, "/v1/sales/export?format=xlsx&range=ytd", nil, middleware.RoleAnalyst)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
		// Arquivos XLSX são pacotes zip
		assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
	})

	t.Run("Formato inválido", func(t *testing.T) {
		rec := serve(salesRoutes(nil, nil, 0), http.MethodGet, "/v1/sales/export?format=pdf", nil, middleware.RoleAnalyst)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("Linhas acima do limite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().ListSales(gomock.Any(), testUserID, gomock.Any()).Return(exportRecords(), nil)

		rec := serve(salesRoutes(analyzer, nil, 1), http.MethodGet, "/v1/sales/export", nil, middleware.RoleAnalyst)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, apiErrors.ErrPayloadTooLarge, errorCode(t, rec))
	})
}

package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/importing"
	"github.com/vfg2006/sales-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
	"github.com/vfg2006/sales-analyzer-api/pkg/utils"
)

// MaxUploadBytes limita o corpo de POST /v1/sales e /v1/sales/upload
const MaxUploadBytes = 10 << 20

// SaleRequest é uma venda enviada pelo cliente. Date aceita RFC3339 ou 2006-01-02.
type SaleRequest struct {
	Date     string   `json:"date"`
	Amount   float64  `json:"amount"`
	Product  string   `json:"product"`
	Region   string   `json:"region"`
	Customer string   `json:"customer"`
	Margin   *float64 `json:"margin"`
}

type ImportResponse struct {
	Imported int                 `json:"imported"`
	Sales    []domain.SaleRecord `json:"sales"`
}

func ListSales(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		tr, ok := timeRangeParam(w, r)
		if !ok {
			return
		}

		records, err := service.ListSales(r.Context(), claims.UserID, tr)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, records)
	}
}

// CreateSales grava uma lista de vendas enviada em JSON
func CreateSales(service importing.Importer, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req []SaleRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxUploadBytes)).Decode(&req); err != nil {
			if isTooLarge(err) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Corpo da requisição acima do limite", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		records := make([]domain.SaleRecord, 0, len(req))
		for i, item := range req {
			date, err := utils.ParseDateTime(item.Date, loc)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]any{"line": i + 1})
				return
			}

			records = append(records, domain.SaleRecord{
				Date:     date,
				Amount:   item.Amount,
				Product:  item.Product,
				Region:   item.Region,
				Customer: item.Customer,
				Margin:   item.Margin,
			})
		}

		importSales(w, r, service, claims.UserID, records)
	}
}

// UploadSales importa um arquivo CSV enviado no corpo da requisição
func UploadSales(service importing.Importer, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		records, err := importing.ParseCSV(http.MaxBytesReader(w, r.Body, MaxUploadBytes), loc)
		if err != nil {
			if isTooLarge(err) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo acima do limite", nil)
				return
			}
			writeImportError(w, r, err)
			return
		}

		importSales(w, r, service, claims.UserID, records)
	}
}

func importSales(w http.ResponseWriter, r *http.Request, service importing.Importer, userID int, records []domain.SaleRecord) {
	imported, err := service.Import(r.Context(), userID, records)
	if err != nil {
		writeImportError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, ImportResponse{
		Imported: len(imported),
		Sales:    imported,
	})
}

func writeImportError(w http.ResponseWriter, r *http.Request, err error) {
	var recordErr *importing.RecordError
	switch {
	case errors.As(err, &recordErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, recordErr.Error(), map[string]any{"line": recordErr.Line})
	case errors.Is(err, importing.ErrInvalidRecord):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, importing.ErrEmptyImport):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao importar vendas")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao importar vendas", nil)
	}
}

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}

// ExportSales baixa as vendas do período em CSV ou XLSX
func ExportSales(service analyzing.Analyzer, exporter *exporting.Exporter, maxRows int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		tr, ok := timeRangeParam(w, r)
		if !ok {
			return
		}

		format, err := exporting.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato inválido. Valores aceitos: csv, xlsx", nil)
			return
		}

		records, err := service.ListSales(r.Context(), claims.UserID, tr)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar vendas")
			return
		}

		if maxRows > 0 && len(records) > maxRows {
			apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Período com vendas demais para exportar", map[string]any{
				"rows":     len(records),
				"max_rows": maxRows,
			})
			return
		}

		// O arquivo é gerado inteiro antes de escrever os headers
		var buf bytes.Buffer
		if err := exporter.Export(&buf, format, records); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao exportar vendas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar vendas", nil)
			return
		}

		contentType, ext := format.ContentType()
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="sales%s"`, ext))
		w.WriteHeader(http.StatusOK)

		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar exportação")
		}
	}
}

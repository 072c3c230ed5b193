package exporting

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"

	DefaultSheetName = "Sales"
)

var ErrUnsupportedFormat = errors.New("formato de exportação não suportado")

var columns = []string{"id", "date", "amount", "product", "region", "customer", "margin"}

// ContentType retorna o MIME type e a extensão do arquivo gerado
func (f Format) ContentType() (string, string) {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx"
	default:
		return "text/csv", ".csv"
	}
}

func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", ErrUnsupportedFormat
}

type Exporter struct {
	sheetName string
}

func NewExporter(sheetName string) *Exporter {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	return &Exporter{sheetName: sheetName}
}

// Export escreve as vendas brutas no formato pedido, na ordem recebida
func (e *Exporter) Export(w io.Writer, format Format, records []domain.SaleRecord) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, records)
	case FormatXLSX:
		return e.writeXLSX(w, records)
	}
	return ErrUnsupportedFormat
}

func writeCSV(w io.Writer, records []domain.SaleRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	for _, record := range records {
		margin := ""
		if record.Margin != nil {
			margin = strconv.FormatFloat(*record.Margin, 'f', -1, 64)
		}

		row := []string{
			record.ID,
			record.Date.Format(time.RFC3339),
			strconv.FormatFloat(record.Amount, 'f', -1, 64),
			record.Product,
			record.Region,
			record.Customer,
			margin,
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "erro ao escrever venda %s", record.ID)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao finalizar CSV")
}

func (e *Exporter) writeXLSX(w io.Writer, records []domain.SaleRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), e.sheetName); err != nil {
		return errors.Wrap(err, "erro ao renomear planilha")
	}

	sw, err := f.NewStreamWriter(e.sheetName)
	if err != nil {
		return errors.Wrap(err, "erro ao criar planilha")
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "erro ao calcular célula")
		}

		var margin any
		if record.Margin != nil {
			margin = *record.Margin
		}

		row := []any{
			record.ID,
			record.Date.Format(time.RFC3339),
			record.Amount,
			record.Product,
			record.Region,
			record.Customer,
			margin,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return errors.Wrapf(err, "erro ao escrever venda %s", record.ID)
		}
	}

	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, "erro ao finalizar planilha")
	}

	return errors.Wrap(f.Write(w), "erro ao gravar planilha")
}

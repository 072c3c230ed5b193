package importing

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/pkg/utils"
)

var requiredColumns = []string{"date", "amount", "product", "region", "customer"}

const marginColumn = "margin"

// RecordError identifica a linha do arquivo (1 = primeira linha de dados) que não pôde ser lida
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return "linha " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// ParseCSV lê vendas no formato date,amount,product,region,customer[,margin].
// A ordem das colunas segue o cabeçalho; margem vazia é tratada como ausente.
func ParseCSV(r io.Reader, loc *time.Location) ([]domain.SaleRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrInvalidRecord, "arquivo vazio")
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, errors.Wrapf(ErrInvalidRecord, "coluna obrigatória ausente: %s", name)
		}
	}

	records := make([]domain.SaleRecord, 0)
	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &RecordError{Line: line, Err: err}
		}

		record, err := parseRow(row, columns, loc)
		if err != nil {
			return nil, &RecordError{Line: line, Err: err}
		}

		records = append(records, record)
	}

	return records, nil
}

func parseRow(row []string, columns map[string]int, loc *time.Location) (domain.SaleRecord, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	date, err := utils.ParseDateTime(field("date"), loc)
	if err != nil {
		return domain.SaleRecord{}, errors.Wrap(ErrInvalidRecord, err.Error())
	}

	amount, err := strconv.ParseFloat(field("amount"), 64)
	if err != nil {
		return domain.SaleRecord{}, errors.Wrapf(ErrInvalidRecord, "valor inválido %q", field("amount"))
	}
	if err := validateAmount(amount); err != nil {
		return domain.SaleRecord{}, err
	}

	record := domain.SaleRecord{
		Date:     date,
		Amount:   amount,
		Product:  field("product"),
		Region:   field("region"),
		Customer: field("customer"),
	}

	if raw := field(marginColumn); raw != "" {
		margin, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.SaleRecord{}, errors.Wrapf(ErrInvalidRecord, "margem inválida %q", raw)
		}
		if err := validateMargin(margin); err != nil {
			return domain.SaleRecord{}, err
		}
		record.Margin = &margin
	}

	return record, nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/importing"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Calcula o dashboard de um arquivo CSV",
		Long: `Lê vendas no formato date,amount,product,region,customer[,margin]
e imprime o dashboard em JSON. Use --file - para ler da entrada padrão.`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("file", "f", "", "arquivo CSV de vendas")
	cmd.Flags().String("range", "", "período (last_7_days, last_30_days, last_quarter, ytd); vazio considera todo o arquivo")
	cmd.Flags().Bool("forecast", false, "inclui a projeção de vendas")
	cmd.Flags().String("timezone", "UTC", "fuso usado para datas e agrupamento diário")
	cmd.Flags().Int("growth-window", analyzing.DefaultGrowthWindow, "tamanho das janelas de crescimento")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	file, _ := cmd.Flags().GetString("file")
	rangeFlag, _ := cmd.Flags().GetString("range")
	forecast, _ := cmd.Flags().GetBool("forecast")
	timezone, _ := cmd.Flags().GetString("timezone")
	growthWindow, _ := cmd.Flags().GetInt("growth-window")

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return errors.Wrapf(err, "fuso horário inválido %q", timezone)
	}

	records, err := readRecords(cmd, file, loc)
	if err != nil {
		return err
	}

	opts := analyzing.DefaultOptions()
	opts.Location = loc
	opts.GrowthWindow = growthWindow

	service := analyzing.NewService(nil, opts)
	now := time.Now().In(loc)

	var (
		tr    domain.TimeRange
		since time.Time
	)
	if rangeFlag != "" {
		tr, err = domain.ParseTimeRange(rangeFlag)
		if err != nil {
			return errors.Wrapf(err, "%q", rangeFlag)
		}
		since, _ = tr.SinceDate(now)
		records = filterSince(records, since)
	}

	log.L.WithFields(log.Fields{
		"file":    file,
		"records": len(records),
	}).Debug("Analisando arquivo")

	dashboard := service.Analyze(tr, since, records, forecast)

	return writeJSON(cmd.OutOrStdout(), dashboard)
}

func readRecords(cmd *cobra.Command, file string, loc *time.Location) ([]domain.SaleRecord, error) {
	var reader io.Reader
	if file == "-" {
		reader = cmd.InOrStdin()
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao abrir arquivo")
		}
		defer f.Close()
		reader = f
	}

	records, err := importing.ParseCSV(reader, loc)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}

	// as janelas de crescimento são posicionais e dependem da ordem cronológica
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, nil
}

func filterSince(records []domain.SaleRecord, since time.Time) []domain.SaleRecord {
	filtered := make([]domain.SaleRecord, 0, len(records))
	for _, record := range records {
		if !record.Date.Before(since) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar resultado")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

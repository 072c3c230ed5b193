package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analyzer-api/pkg/utils"
)

func forecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Projeta um valor com crescimento composto mensal",
		Example: `  salesctl forecast --value 100 --rate 0.05 --horizon 90 --step 7
  salesctl forecast --value 2500 --from 2024-06-15 --json`,
		RunE: runForecast,
	}

	cmd.Flags().Float64("value", 0, "último valor observado")
	cmd.Flags().Float64("rate", analyzing.DefaultForecastGrowthRate, "taxa de crescimento mensal")
	cmd.Flags().Int("horizon", analyzing.DefaultForecastHorizonDays, "horizonte em dias")
	cmd.Flags().Int("step", analyzing.DefaultForecastStepDays, "intervalo entre pontos em dias")
	cmd.Flags().String("from", "", "data base YYYY-MM-DD (padrão: hoje)")
	cmd.Flags().Bool("json", false, "imprime os pontos em JSON")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func runForecast(cmd *cobra.Command, _ []string) error {
	value, _ := cmd.Flags().GetFloat64("value")
	rate, _ := cmd.Flags().GetFloat64("rate")
	horizon, _ := cmd.Flags().GetInt("horizon")
	step, _ := cmd.Flags().GetInt("step")
	fromFlag, _ := cmd.Flags().GetString("from")
	asJSON, _ := cmd.Flags().GetBool("json")

	if horizon <= 0 || step <= 0 {
		return errors.New("horizonte e intervalo devem ser positivos")
	}

	from := time.Now()
	if fromFlag != "" {
		parsed, err := utils.ParseDate(fromFlag)
		if err != nil {
			return errors.Wrapf(err, "data base inválida %q", fromFlag)
		}
		from = *parsed
	}

	points := analyzing.Extrapolate(from, value, rate, horizon, step)

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), points)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DIA\tDATA\tVALOR")
	for _, point := range points {
		fmt.Fprintf(w, "+%d\t%s\t%s\n", point.Offset, point.Label, utils.FormatCents(point.Value))
	}
	return w.Flush()
}

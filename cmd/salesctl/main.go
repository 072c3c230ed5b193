package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "salesctl",
	Short: "Análise offline de vendas",
	Long: `salesctl executa o motor de análise sobre um arquivo CSV local,
sem banco de dados nem servidor HTTP.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log.Setup(viper.GetString("app.log_level"))
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "nível de log (debug, info, warn, error)")
	_ = viper.BindPFlag("app.log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(forecastCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.L.Info("Sinal recebido, encerrando...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

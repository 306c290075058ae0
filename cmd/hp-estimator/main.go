package main

import (
	"fmt"
	"os"

	"github.com/heatpump-estimator/hp-estimator-go/internal/adapter/driven/config"
	"github.com/heatpump-estimator/hp-estimator-go/internal/adapter/driven/export"
	"github.com/heatpump-estimator/hp-estimator-go/internal/adapter/driven/storage"
	"github.com/heatpump-estimator/hp-estimator-go/internal/adapter/driving/cli"
	"github.com/heatpump-estimator/hp-estimator-go/internal/application/usecase"
	"github.com/heatpump-estimator/hp-estimator-go/pkg/console"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp()

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	storageRepo := storage.NewS3Repository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	estimateUseCase := usecase.NewEstimateUseCase(
		exportRepo,
		configRepo,
		storageRepo,
		consoleImpl,
	)

	app.SetEstimateUseCase(estimateUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

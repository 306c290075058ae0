package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/calculator"
	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"
	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/repository"
	"github.com/heatpump-estimator/hp-estimator-go/internal/shared/types"
)

// EstimateUseCase handles a heat pump running cost estimate.
type EstimateUseCase struct {
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	storageRepo repository.ReportStorageRepository
	console     types.ConsoleInterface
	printer     *message.Printer
	now         func() time.Time
}

// NewEstimateUseCase creates a new estimate use case.
func NewEstimateUseCase(
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	storageRepo repository.ReportStorageRepository,
	console types.ConsoleInterface,
) *EstimateUseCase {
	return &EstimateUseCase{
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		storageRepo: storageRepo,
		console:     console,
		printer:     message.NewPrinter(language.English),
		now:         time.Now,
	}
}

// LoadInputs resolves defaults, the config file and explicit flags.
func (uc *EstimateUseCase) LoadInputs(args *types.CLIArgs) (entity.Inputs, ReportSettings, error) {
	var layers []types.Config
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return entity.Inputs{}, ReportSettings{}, fmt.Errorf("error loading config file: %w", err)
		}
		layers = append(layers, *cfg)
	}
	layers = append(layers, args.Overrides)
	return ResolveInputs(layers...)
}

// Estimate runs the baseline and one scenario per installation tier.
// Tiers are evaluated concurrently; case order follows the tier order.
func (uc *EstimateUseCase) Estimate(ctx context.Context, inputs entity.Inputs) (entity.EstimateResult, error) {
	log := zerolog.Ctx(ctx)
	ci := inputs.Carbon.Select(inputs.Household.RenewableElectricity)

	base := calculator.ComputeBaseline(inputs.Household, inputs.Devices, ci, inputs.Tariff)
	log.Debug().
		Float64("gas_heating_kwh", base.Splits.GasHeatingKWh).
		Float64("gas_hot_water_kwh", base.Splits.GasHotWaterKWh).
		Float64("elec_heating_kwh", base.Splits.ElecHeatingKWh).
		Float64("elec_hot_water_kwh", base.Splits.ElecHotWaterKWh).
		Float64("other_elec_kwh", base.Splits.OtherElecKWh).
		Float64("ev_kwh", base.Splits.EVKWh).
		Msg("baseline disaggregated")

	cases := make([]entity.CaseResult, len(inputs.Devices.Tiers)+1)
	cases[0] = entity.CaseResult{Usage: base.Usage, Cost: base.Cost}

	g, gctx := errgroup.WithContext(ctx)
	for i, tier := range inputs.Devices.Tiers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := calculator.ComputeScenario(base.Splits, inputs.Household, inputs.Devices, tier, inputs.Policy, ci, inputs.Tariff)
			cases[i+1] = entity.CaseResult{Usage: s.Usage, Cost: s.Cost}
			log.Debug().
				Str("case", tier.CaseLabel()).
				Float64("scop", tier.SCOP).
				Float64("cost_total", s.Cost.Total).
				Float64("energy_total_kwh", s.Usage.EnergyTotalKWh).
				Float64("emissions_total_kg", s.Usage.EmissionsTotalKg).
				Msg("scenario projected")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return entity.EstimateResult{}, err
	}

	return entity.EstimateResult{
		GeneratedAt: uc.now(),
		Inputs:      inputs,
		Splits:      base.Splits,
		Cases:       cases,
		Comparison:  BuildComparison(cases),
		Warnings:    base.Warnings,
	}, nil
}

// RunEstimate executa a estimativa principal: calcula, exibe, exporta e publica.
func (uc *EstimateUseCase) RunEstimate(ctx context.Context, args *types.CLIArgs) error {
	log := zerolog.Ctx(ctx)

	status := uc.console.Status("Resolving inputs...")
	inputs, report, err := uc.LoadInputs(args)
	if err != nil {
		status.Stop()
		return err
	}
	log.Debug().
		Float64("elec_kwh", inputs.Household.ElecTotalKWh).
		Float64("gas_kwh", inputs.Household.GasTotalKWh).
		Float64("hot_water_litres", inputs.Household.HotWaterLitresPerDay).
		Str("tariff", string(inputs.Tariff.Electricity.Kind())).
		Str("scenario_tariff", string(inputs.Tariff.ScenarioElectricity(inputs.Policy.SwitchTariff).Kind())).
		Float64("efficiency_boost", inputs.Policy.EfficiencyBoost).
		Int("tiers", len(inputs.Devices.Tiers)).
		Msg("inputs resolved")

	status.Update(fmt.Sprintf("Estimating running costs for %d heat pump tiers...", len(inputs.Devices.Tiers)))
	result, err := uc.Estimate(ctx, inputs)
	status.Stop()
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		log.Warn().Msg(w)
		uc.console.LogWarning("%s", w)
	}

	uc.displayResult(result)

	paths := uc.exportReports(ctx, result, report)
	if report.Publish() && len(paths) > 0 {
		uc.publishReports(ctx, report.Storage, paths)
	}
	return nil
}

// exportReports writes each requested report type. A failed export is
// reported and the remaining types are still written.
func (uc *EstimateUseCase) exportReports(ctx context.Context, result entity.EstimateResult, report ReportSettings) []string {
	if report.Name == "" || len(report.Types) == 0 {
		return nil
	}

	log := zerolog.Ctx(ctx)
	var paths []string
	for _, reportType := range report.Types {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(result, report.Name, report.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
				paths = append(paths, csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(result, report.Name, report.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
				paths = append(paths, jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(result, report.Name, report.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
				paths = append(paths, pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s', expected csv, json or pdf", reportType)
		}
	}
	log.Debug().Strs("paths", paths).Msg("reports exported")
	return paths
}

// publishReports uploads exported files to S3.
func (uc *EstimateUseCase) publishReports(ctx context.Context, target repository.StorageTarget, paths []string) {
	log := zerolog.Ctx(ctx)

	account, err := uc.storageRepo.Identity(ctx, target)
	if err != nil {
		uc.console.LogError("Could not resolve AWS identity, reports not published: %s", err)
		return
	}
	log.Debug().Str("account", account).Str("bucket", target.Bucket).Msg("publishing reports")

	progress := uc.console.Progress(paths)
	defer progress.Stop()

	for _, p := range paths {
		uri, err := uc.storageRepo.Publish(ctx, target, p)
		progress.Increment()
		if err != nil {
			uc.console.LogError("Failed to publish %s: %s", p, err)
			continue
		}
		uc.console.LogSuccess("Published to %s (account %s)", uri, account)
	}
}

// RunTariffSplit shows when each end use draws power on the household's
// tariff and on the heat pump tariff.
func (uc *EstimateUseCase) RunTariffSplit(ctx context.Context, args *types.CLIArgs) error {
	inputs, _, err := uc.LoadInputs(args)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().
		Str("tariff", string(inputs.Tariff.Electricity.Kind())).
		Str("heat_pump_tariff", string(inputs.Tariff.HeatPump.Kind())).
		Msg("showing demand splits")

	if inputs.Tariff.Electricity.Kind() != entity.TariffFlat {
		uc.displayDemandSplits("Current tariff", inputs.Tariff.Electricity)
	}
	uc.displayDemandSplits("Heat pump tariff", inputs.Tariff.HeatPump)
	return nil
}

// RunReference prints the compiled-in reference tables.
func (uc *EstimateUseCase) RunReference() {
	uc.displayReference()
}

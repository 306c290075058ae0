package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/heatpump-estimator/hp-estimator-go/internal/application/usecase"
	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"
	"github.com/heatpump-estimator/hp-estimator-go/internal/shared/logging"
	"github.com/heatpump-estimator/hp-estimator-go/internal/shared/types"
	"github.com/heatpump-estimator/hp-estimator-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd         *cobra.Command
	estimateUseCase *usecase.EstimateUseCase
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp() *CLIApp {
	app := &CLIApp{}

	rootCmd := &cobra.Command{
		Use:   "hp-estimator",
		Short: "Estimate heat pump running costs and emissions against a gas boiler",
		Long: `Splits a household's annual gas and electricity use into heating, hot water,
cooking, EV and other electricity, then projects the same demand onto heat pump
installations of different quality, with optional gas disconnection and a
heat pump tariff.`,
		Version: version.FormatVersion(),
		RunE:    app.runEstimate,
	}

	rootCmd.SetVersionTemplate(`{{printf "hp-estimator version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON scenario file")
	flags.String("log-level", "warn", "Diagnostic log level: debug, info, warn, error")
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("no-banner", false, "Do not print the welcome banner")

	// Household
	flags.Float64("elec-kwh", 0, "Annual electricity use in kWh")
	flags.Float64("gas-kwh", 0, "Annual gas use in kWh")
	flags.Float64("hw-litres", 0, "Hot water used per day in litres")
	flags.String("hw-source", "", "How hot water is heated today: gas or electric")
	flags.Bool("cook-gas", false, "Cook with gas")
	flags.Float64("cook-kwh-week", 0, "Gas used for cooking per week in kWh")
	flags.Float64("ev-kwh-per-charge", 0, "Energy per EV charge in kWh")
	flags.Float64("ev-charges-week", 0, "EV charges per week")
	flags.Bool("renewable", false, "Electricity comes from a renewable tariff")

	// Secondary heat source
	flags.String("secondary-type", "", "Secondary heat source: gas, electric, other or none")
	flags.Float64("secondary-kwh", 0, "Annual energy of the secondary heat source in kWh")
	flags.Bool("secondary-removed", false, "Remove the secondary heat source when the heat pump is installed")

	// Devices
	flags.Float64("boiler-eff", 0, "Boiler space heating efficiency (0-1)")
	flags.Float64("boiler-hw-eff", 0, "Boiler hot water efficiency (0-1)")
	flags.Float64("immersion-eff", 0, "Immersion heater efficiency (0-1)")
	flags.Float64("temp-rise", 0, "Hot water temperature rise in °C")
	flags.Float64("typical-scop", 0, "SCOP of a typical installation")
	flags.Float64("typical-cop", 0, "Hot water COP of a typical installation")
	flags.Float64("hi-scop", 0, "SCOP of a high-performance installation")
	flags.Float64("hi-cop", 0, "Hot water COP of a high-performance installation")

	// Tariff
	flags.Float64("gas-standing", 0, "Gas standing charge in p/day")
	flags.Float64("gas-unit", 0, "Gas unit price in p/kWh")
	flags.String("tariff-type", "", "Electricity tariff type: flat, two-band, three-band")
	flags.Float64("elec-standing", 0, "Electricity standing charge in p/day")
	flags.Float64("elec-unit", 0, "Electricity standard unit price in p/kWh")
	flags.Float64("offpeak-unit", 0, "Off-peak unit price in p/kWh")
	flags.Float64("offpeak-hours", 0, "Off-peak hours per day")
	flags.Float64("offpeak-share", 0, "Share of other electricity used off-peak (0-1)")
	flags.Float64("peak-unit", 0, "Peak unit price in p/kWh (three-band only)")
	flags.Float64("peak-hours", 0, "Peak hours per day (three-band only)")
	flags.Float64("peak-share", 0, "Share of other electricity used at peak (0-1)")

	// Policy
	flags.StringSlice("measures", nil, "Efficiency measures applied, see 'hp-estimator reference'")
	flags.Float64("custom-saving", 0, "Custom heating demand reduction (0-1, 0.2 when --measures includes custom without it)")
	flags.Bool("disconnect-gas", true, "Disconnect gas in the heat pump scenarios")
	flags.Bool("switch-tariff", true, "Switch to a heat pump tariff in the heat pump scenarios")
	flags.Bool("peak-shutoff", true, "Turn the heat pump off during peak hours")
	flags.Bool("free-summer-hw", false, "Hot water is free in summer (solar PV or thermal)")

	// Reports
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("s3-bucket", "", "Upload exported reports to this S3 bucket")
	flags.String("s3-prefix", "", "Key prefix for uploaded reports")
	flags.String("aws-profile", "", "AWS shared config profile used for uploads")
	flags.String("aws-region", "", "AWS region used for uploads")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "reference",
		Short: "Show typical consumption, hot water, cooking and efficiency measure tables",
		RunE:  app.runReference,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tariff-split",
		Short: "Show how each end use is split across tariff bands",
		RunE:  app.runTariffSplit,
	})

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetEstimateUseCase sets the estimate use case for the CLI app.
func (app *CLIApp) SetEstimateUseCase(useCase *usecase.EstimateUseCase) {
	app.estimateUseCase = useCase
}

// parseArgs parses command-line arguments into a CLIArgs struct. Only flags
// set explicitly become overrides, so config file values survive flag defaults.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	fs := cmd.Flags()

	configFile, _ := fs.GetString("config-file")
	logLevel, _ := fs.GetString("log-level")
	debug, _ := fs.GetBool("debug")
	noBanner, _ := fs.GetBool("no-banner")

	o := types.Config{}
	o.Household = types.HouseholdConfig{
		ElecKWh:          changedFloat(fs, "elec-kwh"),
		GasKWh:           changedFloat(fs, "gas-kwh"),
		HotWaterLitres:   changedFloat(fs, "hw-litres"),
		HotWaterSource:   changedString(fs, "hw-source"),
		CookWithGas:      changedBool(fs, "cook-gas"),
		CookKWhPerWeek:   changedFloat(fs, "cook-kwh-week"),
		EVKWhPerCharge:   changedFloat(fs, "ev-kwh-per-charge"),
		EVChargesPerWeek: changedFloat(fs, "ev-charges-week"),
		Renewable:        changedBool(fs, "renewable"),
	}

	if anyChanged(fs, "secondary-type", "secondary-kwh", "secondary-removed") {
		sec := &types.SecondaryHeatConfig{
			Removed:   changedBool(fs, "secondary-removed"),
			AnnualKWh: changedFloat(fs, "secondary-kwh"),
		}
		if t := changedString(fs, "secondary-type"); t != nil {
			sec.Type = *t
		}
		o.SecondaryHeat = sec
	}

	o.Devices = types.DevicesConfig{
		BoilerHeatingEff:  changedFloat(fs, "boiler-eff"),
		BoilerHotWaterEff: changedFloat(fs, "boiler-hw-eff"),
		ImmersionEff:      changedFloat(fs, "immersion-eff"),
		TempRiseC:         changedFloat(fs, "temp-rise"),
	}
	if anyChanged(fs, "typical-scop", "typical-cop") {
		o.Tiers = append(o.Tiers, types.TierConfig{
			Name:        string(entity.TierTypical),
			SCOP:        changedFloat(fs, "typical-scop"),
			HotWaterCOP: changedFloat(fs, "typical-cop"),
		})
	}
	if anyChanged(fs, "hi-scop", "hi-cop") {
		o.Tiers = append(o.Tiers, types.TierConfig{
			Name:        string(entity.TierHiPerformance),
			SCOP:        changedFloat(fs, "hi-scop"),
			HotWaterCOP: changedFloat(fs, "hi-cop"),
		})
	}

	o.Tariff.GasStanding = changedFloat(fs, "gas-standing")
	o.Tariff.GasUnit = changedFloat(fs, "gas-unit")
	if anyChanged(fs, "tariff-type", "elec-standing", "elec-unit", "offpeak-unit", "offpeak-hours",
		"offpeak-share", "peak-unit", "peak-hours", "peak-share") {
		elec := &types.ElectricityConfig{
			Standing:     changedFloat(fs, "elec-standing"),
			Unit:         changedFloat(fs, "elec-unit"),
			OffPeakUnit:  changedFloat(fs, "offpeak-unit"),
			OffPeakHours: changedFloat(fs, "offpeak-hours"),
			OffPeakShare: changedFloat(fs, "offpeak-share"),
			PeakUnit:     changedFloat(fs, "peak-unit"),
			PeakHours:    changedFloat(fs, "peak-hours"),
			PeakShare:    changedFloat(fs, "peak-share"),
		}
		if t := changedString(fs, "tariff-type"); t != nil {
			elec.Type = *t
		}
		o.Tariff.Electricity = elec
	}

	o.Policy = types.PolicyConfig{
		CustomSaving:       changedFloat(fs, "custom-saving"),
		DisconnectGas:      changedBool(fs, "disconnect-gas"),
		SwitchTariff:       changedBool(fs, "switch-tariff"),
		PeakShutoff:        changedBool(fs, "peak-shutoff"),
		FreeSummerHotWater: changedBool(fs, "free-summer-hw"),
	}
	if fs.Changed("measures") {
		measures, _ := fs.GetStringSlice("measures")
		o.Policy.Measures = append([]string{}, measures...)
	}

	if fs.Changed("report-name") {
		o.Report.Name, _ = fs.GetString("report-name")
	}
	if fs.Changed("report-type") {
		o.Report.Types, _ = fs.GetStringSlice("report-type")
	}
	if fs.Changed("dir") {
		dir, _ := fs.GetString("dir")
		// Convert to absolute path
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		o.Report.Dir = absDir
	}
	o.Report.S3Bucket, _ = fs.GetString("s3-bucket")
	o.Report.S3Prefix, _ = fs.GetString("s3-prefix")
	o.Report.AWSProfile, _ = fs.GetString("aws-profile")
	o.Report.AWSRegion, _ = fs.GetString("aws-region")

	return &types.CLIArgs{
		ConfigFile: configFile,
		LogLevel:   logLevel,
		Debug:      debug,
		NoBanner:   noBanner,
		Overrides:  o,
	}, nil
}

func anyChanged(fs *pflag.FlagSet, names ...string) bool {
	for _, n := range names {
		if fs.Changed(n) {
			return true
		}
	}
	return false
}

func changedFloat(fs *pflag.FlagSet, name string) *float64 {
	if !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetFloat64(name)
	if err != nil {
		return nil
	}
	return &v
}

func changedBool(fs *pflag.FlagSet, name string) *bool {
	if !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

func changedString(fs *pflag.FlagSet, name string) *string {
	if !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

// withLogger attaches the diagnostic logger to the command context.
func withLogger(cmd *cobra.Command, args *types.CLIArgs) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New(cmd.ErrOrStderr(), args.LogLevel, args.Debug)
	return logger.WithContext(ctx)
}

func (app *CLIApp) useCase() (*usecase.EstimateUseCase, error) {
	if app.estimateUseCase == nil {
		return nil, errors.New("estimate use case not configured")
	}
	return app.estimateUseCase, nil
}

// runEstimate é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runEstimate(cmd *cobra.Command, _ []string) error {
	uc, err := app.useCase()
	if err != nil {
		return err
	}

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	if !cliArgs.NoBanner {
		displayWelcomeBanner(cmd.OutOrStdout())
	}

	return uc.RunEstimate(withLogger(cmd, cliArgs), cliArgs)
}

func (app *CLIApp) runReference(_ *cobra.Command, _ []string) error {
	uc, err := app.useCase()
	if err != nil {
		return err
	}
	uc.RunReference()
	return nil
}

func (app *CLIApp) runTariffSplit(cmd *cobra.Command, _ []string) error {
	uc, err := app.useCase()
	if err != nil {
		return err
	}

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}
	return uc.RunTariffSplit(withLogger(cmd, cliArgs), cliArgs)
}

package types

// Config is a scenario loaded from a TOML, YAML or JSON file. Flags set on
// the command line are collected into the same shape and applied on top.
// Nil pointers mean "not set".
type Config struct {
	Household      HouseholdConfig      `json:"household" yaml:"household" toml:"household"`
	SecondaryHeat  *SecondaryHeatConfig `json:"secondary_heat,omitempty" yaml:"secondary_heat,omitempty" toml:"secondary_heat,omitempty"`
	Devices        DevicesConfig        `json:"devices" yaml:"devices" toml:"devices"`
	Tiers          []TierConfig         `json:"tiers,omitempty" yaml:"tiers,omitempty" toml:"tiers,omitempty"`
	Tariff         TariffConfig         `json:"tariff" yaml:"tariff" toml:"tariff"`
	HeatPumpTariff *ElectricityConfig   `json:"heat_pump_tariff,omitempty" yaml:"heat_pump_tariff,omitempty" toml:"heat_pump_tariff,omitempty"`
	Policy         PolicyConfig         `json:"policy" yaml:"policy" toml:"policy"`
	Report         ReportConfig         `json:"report" yaml:"report" toml:"report"`
}

// HouseholdConfig describes reported usage.
type HouseholdConfig struct {
	ElecKWh          *float64 `json:"elec_kwh,omitempty" yaml:"elec_kwh,omitempty" toml:"elec_kwh,omitempty"`
	GasKWh           *float64 `json:"gas_kwh,omitempty" yaml:"gas_kwh,omitempty" toml:"gas_kwh,omitempty"`
	HotWaterLitres   *float64 `json:"hot_water_litres,omitempty" yaml:"hot_water_litres,omitempty" toml:"hot_water_litres,omitempty"`
	HotWaterSource   *string  `json:"hot_water_source,omitempty" yaml:"hot_water_source,omitempty" toml:"hot_water_source,omitempty"`
	CookWithGas      *bool    `json:"cook_with_gas,omitempty" yaml:"cook_with_gas,omitempty" toml:"cook_with_gas,omitempty"`
	CookKWhPerWeek   *float64 `json:"cook_kwh_per_week,omitempty" yaml:"cook_kwh_per_week,omitempty" toml:"cook_kwh_per_week,omitempty"`
	EVKWhPerCharge   *float64 `json:"ev_kwh_per_charge,omitempty" yaml:"ev_kwh_per_charge,omitempty" toml:"ev_kwh_per_charge,omitempty"`
	EVChargesPerWeek *float64 `json:"ev_charges_per_week,omitempty" yaml:"ev_charges_per_week,omitempty" toml:"ev_charges_per_week,omitempty"`
	Renewable        *bool    `json:"renewable,omitempty" yaml:"renewable,omitempty" toml:"renewable,omitempty"`
}

// SecondaryHeatConfig describes a heat source used alongside the boiler.
// Type "none" drops a source set by an earlier layer.
type SecondaryHeatConfig struct {
	Type      string   `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Removed   *bool    `json:"removed,omitempty" yaml:"removed,omitempty" toml:"removed,omitempty"`
	AnnualKWh *float64 `json:"annual_kwh,omitempty" yaml:"annual_kwh,omitempty" toml:"annual_kwh,omitempty"`
}

// DevicesConfig overrides boiler and immersion figures.
type DevicesConfig struct {
	BoilerHeatingEff  *float64 `json:"boiler_heating_eff,omitempty" yaml:"boiler_heating_eff,omitempty" toml:"boiler_heating_eff,omitempty"`
	BoilerHotWaterEff *float64 `json:"boiler_hot_water_eff,omitempty" yaml:"boiler_hot_water_eff,omitempty" toml:"boiler_hot_water_eff,omitempty"`
	ImmersionEff      *float64 `json:"immersion_eff,omitempty" yaml:"immersion_eff,omitempty" toml:"immersion_eff,omitempty"`
	TempRiseC         *float64 `json:"temp_rise_c,omitempty" yaml:"temp_rise_c,omitempty" toml:"temp_rise_c,omitempty"`
}

// TierConfig updates an installation tier by name, or adds a new one.
type TierConfig struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	SCOP        *float64 `json:"scop,omitempty" yaml:"scop,omitempty" toml:"scop,omitempty"`
	HotWaterCOP *float64 `json:"hot_water_cop,omitempty" yaml:"hot_water_cop,omitempty" toml:"hot_water_cop,omitempty"`
}

// TariffConfig holds the household's current prices in pence.
type TariffConfig struct {
	GasStanding *float64           `json:"gas_standing,omitempty" yaml:"gas_standing,omitempty" toml:"gas_standing,omitempty"`
	GasUnit     *float64           `json:"gas_unit,omitempty" yaml:"gas_unit,omitempty" toml:"gas_unit,omitempty"`
	Electricity *ElectricityConfig `json:"electricity,omitempty" yaml:"electricity,omitempty" toml:"electricity,omitempty"`
}

// ElectricityConfig describes a flat, two-band or three-band tariff.
// Shares are fractions of "other" electricity used in the band.
type ElectricityConfig struct {
	Type                    string   `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Standing                *float64 `json:"standing,omitempty" yaml:"standing,omitempty" toml:"standing,omitempty"`
	Unit                    *float64 `json:"unit,omitempty" yaml:"unit,omitempty" toml:"unit,omitempty"`
	OffPeakUnit             *float64 `json:"offpeak_unit,omitempty" yaml:"offpeak_unit,omitempty" toml:"offpeak_unit,omitempty"`
	OffPeakHours            *float64 `json:"offpeak_hours,omitempty" yaml:"offpeak_hours,omitempty" toml:"offpeak_hours,omitempty"`
	OffPeakShare            *float64 `json:"offpeak_share,omitempty" yaml:"offpeak_share,omitempty" toml:"offpeak_share,omitempty"`
	PeakUnit                *float64 `json:"peak_unit,omitempty" yaml:"peak_unit,omitempty" toml:"peak_unit,omitempty"`
	PeakHours               *float64 `json:"peak_hours,omitempty" yaml:"peak_hours,omitempty" toml:"peak_hours,omitempty"`
	PeakShare               *float64 `json:"peak_share,omitempty" yaml:"peak_share,omitempty" toml:"peak_share,omitempty"`
	OffPeakHeatDemandFactor *float64 `json:"offpeak_heat_demand_factor,omitempty" yaml:"offpeak_heat_demand_factor,omitempty" toml:"offpeak_heat_demand_factor,omitempty"`
}

// PolicyConfig selects the heat pump scenario options.
type PolicyConfig struct {
	Measures           []string `json:"measures,omitempty" yaml:"measures,omitempty" toml:"measures,omitempty"`
	CustomSaving       *float64 `json:"custom_saving,omitempty" yaml:"custom_saving,omitempty" toml:"custom_saving,omitempty"`
	DisconnectGas      *bool    `json:"disconnect_gas,omitempty" yaml:"disconnect_gas,omitempty" toml:"disconnect_gas,omitempty"`
	SwitchTariff       *bool    `json:"switch_tariff,omitempty" yaml:"switch_tariff,omitempty" toml:"switch_tariff,omitempty"`
	PeakShutoff        *bool    `json:"peak_shutoff,omitempty" yaml:"peak_shutoff,omitempty" toml:"peak_shutoff,omitempty"`
	FreeSummerHotWater *bool    `json:"free_summer_hot_water,omitempty" yaml:"free_summer_hot_water,omitempty" toml:"free_summer_hot_water,omitempty"`
}

// ReportConfig controls exported reports.
type ReportConfig struct {
	Name       string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Types      []string `json:"types,omitempty" yaml:"types,omitempty" toml:"types,omitempty"`
	Dir        string   `json:"dir,omitempty" yaml:"dir,omitempty" toml:"dir,omitempty"`
	S3Bucket   string   `json:"s3_bucket,omitempty" yaml:"s3_bucket,omitempty" toml:"s3_bucket,omitempty"`
	S3Prefix   string   `json:"s3_prefix,omitempty" yaml:"s3_prefix,omitempty" toml:"s3_prefix,omitempty"`
	AWSProfile string   `json:"aws_profile,omitempty" yaml:"aws_profile,omitempty" toml:"aws_profile,omitempty"`
	AWSRegion  string   `json:"aws_region,omitempty" yaml:"aws_region,omitempty" toml:"aws_region,omitempty"`
}

package entity

import (
	"encoding/json"
	"fmt"
)

// October 2025 UK price cap, direct debit, in pence.
const (
	PriceCapGasStanding  = 34.03
	PriceCapGasUnit      = 6.29
	PriceCapElecStanding = 53.68
	PriceCapElecUnit     = 26.35
)

// Off-peak heat demand factors: the share of an average hour's heat demand
// that falls in an off-peak hour.
const (
	// NightOffPeakHeatDemandFactor applies to overnight off-peak tariffs.
	NightOffPeakHeatDemandFactor = 2.0 / 3.0
	// HeatPumpOffPeakHeatDemandFactor applies to heat pump tariffs whose
	// off-peak windows are spread through the day.
	HeatPumpOffPeakHeatDemandFactor = 1.0
)

// GasTariff is the gas standing charge (p/day) and unit rate (p/kWh).
type GasTariff struct {
	StandingPencePerDay float64 `json:"standing_pence_per_day"`
	UnitPencePerKWh     float64 `json:"unit_pence_per_kwh"`
}

// Band is a non-standard time-of-use period of an electricity tariff.
// OtherShare is the fraction of "other" electricity consumed in the band.
type Band struct {
	UnitPencePerKWh float64 `json:"unit_pence_per_kwh"`
	HoursPerDay     float64 `json:"hours_per_day"`
	OtherShare      float64 `json:"other_share"`
}

// TariffKind tags the electricity tariff variants.
type TariffKind string

const (
	TariffFlat      TariffKind = "flat"
	TariffTwoBand   TariffKind = "two-band"
	TariffThreeBand TariffKind = "three-band"
)

// ElectricityTariff is one of FlatTariff, TwoBandTariff or ThreeBandTariff.
type ElectricityTariff interface {
	Kind() TariffKind
	StandingCharge() float64
	StandardUnit() float64
}

// FlatTariff charges a single unit rate at all times.
type FlatTariff struct {
	StandingPencePerDay float64 `json:"standing_pence_per_day"`
	UnitPencePerKWh     float64 `json:"unit_pence_per_kwh"`
}

func (t FlatTariff) Kind() TariffKind        { return TariffFlat }
func (t FlatTariff) StandingCharge() float64 { return t.StandingPencePerDay }
func (t FlatTariff) StandardUnit() float64   { return t.UnitPencePerKWh }

// TwoBandTariff has a standard rate and an off-peak rate (economy 7, Go).
type TwoBandTariff struct {
	StandingPencePerDay     float64 `json:"standing_pence_per_day"`
	StandardPencePerKWh     float64 `json:"standard_pence_per_kwh"`
	OffPeak                 Band    `json:"off_peak"`
	OffPeakHeatDemandFactor float64 `json:"off_peak_heat_demand_factor"`
}

func (t TwoBandTariff) Kind() TariffKind        { return TariffTwoBand }
func (t TwoBandTariff) StandingCharge() float64 { return t.StandingPencePerDay }
func (t TwoBandTariff) StandardUnit() float64   { return t.StandardPencePerKWh }

// StandardShare is the fraction of other electricity outside the off-peak band.
func (t TwoBandTariff) StandardShare() float64 {
	return 1 - t.OffPeak.OtherShare
}

// ThreeBandTariff has off-peak, standard and peak rates.
type ThreeBandTariff struct {
	StandingPencePerDay     float64 `json:"standing_pence_per_day"`
	StandardPencePerKWh     float64 `json:"standard_pence_per_kwh"`
	OffPeak                 Band    `json:"off_peak"`
	Peak                    Band    `json:"peak"`
	OffPeakHeatDemandFactor float64 `json:"off_peak_heat_demand_factor"`
}

func (t ThreeBandTariff) Kind() TariffKind        { return TariffThreeBand }
func (t ThreeBandTariff) StandingCharge() float64 { return t.StandingPencePerDay }
func (t ThreeBandTariff) StandardUnit() float64   { return t.StandardPencePerKWh }

// StandardShare is the fraction of other electricity outside off-peak and peak.
func (t ThreeBandTariff) StandardShare() float64 {
	return 1 - t.OffPeak.OtherShare - t.Peak.OtherShare
}

// StandardHours is the length of the standard-rate window.
func (t ThreeBandTariff) StandardHours() float64 {
	return 24 - t.OffPeak.HoursPerDay - t.Peak.HoursPerDay
}

// Tariff bundles the household's gas and electricity tariffs with the heat
// pump tariff offered as a switch in the heat pump scenarios.
type Tariff struct {
	Gas         GasTariff         `json:"gas"`
	Electricity ElectricityTariff `json:"electricity"`
	HeatPump    ElectricityTariff `json:"heat_pump"`
}

// DefaultTariff returns the price cap tariff with the default heat pump tariff.
func DefaultTariff() Tariff {
	return Tariff{
		Gas: GasTariff{
			StandingPencePerDay: PriceCapGasStanding,
			UnitPencePerKWh:     PriceCapGasUnit,
		},
		Electricity: FlatTariff{
			StandingPencePerDay: PriceCapElecStanding,
			UnitPencePerKWh:     PriceCapElecUnit,
		},
		HeatPump: DefaultHeatPumpTariff(PriceCapElecStanding),
	}
}

// DefaultHeatPumpTariff is a three-rate tariff modelled on Cosy Octopus:
// 6 off-peak hours at 60% of the standard rate, 3 peak hours at 160%.
func DefaultHeatPumpTariff(standing float64) ThreeBandTariff {
	return ThreeBandTariff{
		StandingPencePerDay: standing,
		StandardPencePerKWh: PriceCapElecUnit,
		OffPeak: Band{
			UnitPencePerKWh: 0.6 * PriceCapElecUnit,
			HoursPerDay:     6,
			OtherShare:      0.2,
		},
		Peak: Band{
			UnitPencePerKWh: 1.6 * PriceCapElecUnit,
			HoursPerDay:     3,
			OtherShare:      0.2,
		},
		OffPeakHeatDemandFactor: HeatPumpOffPeakHeatDemandFactor,
	}
}

// ScenarioElectricity returns the electricity tariff billed in a heat pump
// scenario.
func (t Tariff) ScenarioElectricity(switchToHeatPump bool) ElectricityTariff {
	if switchToHeatPump && t.HeatPump != nil {
		return t.HeatPump
	}
	return t.Electricity
}

type electricityJSON struct {
	Kind  TariffKind        `json:"kind"`
	Rates ElectricityTariff `json:"rates"`
}

func tagElectricity(e ElectricityTariff) *electricityJSON {
	if e == nil {
		return nil
	}
	return &electricityJSON{Kind: e.Kind(), Rates: e}
}

// MarshalJSON tags each electricity tariff with its kind.
func (t Tariff) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Gas         GasTariff        `json:"gas"`
		Electricity *electricityJSON `json:"electricity,omitempty"`
		HeatPump    *electricityJSON `json:"heat_pump,omitempty"`
	}{
		Gas:         t.Gas,
		Electricity: tagElectricity(t.Electricity),
		HeatPump:    tagElectricity(t.HeatPump),
	})
}

type taggedElectricityJSON struct {
	Kind  TariffKind      `json:"kind"`
	Rates json.RawMessage `json:"rates"`
}

func untagElectricity(raw *taggedElectricityJSON) (ElectricityTariff, error) {
	if raw == nil {
		return nil, nil
	}
	switch raw.Kind {
	case TariffFlat:
		var t FlatTariff
		if err := json.Unmarshal(raw.Rates, &t); err != nil {
			return nil, err
		}
		return t, nil
	case TariffTwoBand:
		var t TwoBandTariff
		if err := json.Unmarshal(raw.Rates, &t); err != nil {
			return nil, err
		}
		return t, nil
	case TariffThreeBand:
		var t ThreeBandTariff
		if err := json.Unmarshal(raw.Rates, &t); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("unknown electricity tariff kind %q", raw.Kind)
}

// UnmarshalJSON restores each electricity tariff from its kind tag.
func (t *Tariff) UnmarshalJSON(data []byte) error {
	var doc struct {
		Gas         GasTariff              `json:"gas"`
		Electricity *taggedElectricityJSON `json:"electricity"`
		HeatPump    *taggedElectricityJSON `json:"heat_pump"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	elec, err := untagElectricity(doc.Electricity)
	if err != nil {
		return fmt.Errorf("electricity: %w", err)
	}
	hp, err := untagElectricity(doc.HeatPump)
	if err != nil {
		return fmt.Errorf("heat_pump: %w", err)
	}
	*t = Tariff{Gas: doc.Gas, Electricity: elec, HeatPump: hp}
	return nil
}

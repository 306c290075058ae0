package entity

import (
	"fmt"
	"math"

	"github.com/heatpump-estimator/hp-estimator-go/internal/shared/types"
)

// Input bounds applied at the boundary before any calculation.
const (
	MaxAnnualKWh       = 100000
	MaxLitresPerDay    = 1000
	MaxCookKWhPerWeek  = 100
	MaxEVKWhPerCharge  = 100
	MaxChargesPerWeek  = 10
	MaxEfficiency      = 1.0
	MinCOP             = 0.1
	MaxCOP             = 10
	MaxPencePrice      = 100
	MinTempRiseC       = 1
	MaxTempRiseC       = 100
	MinBandHours       = 1
	MaxBandHours       = 12
	HoursPerDay        = 24
	MaxMeasureFraction = 1.0
)

// Inputs is the immutable configuration of one estimate.
type Inputs struct {
	Household HouseholdProfile `json:"household"`
	Devices   DeviceParameters `json:"devices"`
	Tariff    Tariff           `json:"tariff"`
	Carbon    CarbonIntensity  `json:"carbon"`
	Policy    PolicyToggles    `json:"policy"`
}

// DefaultInputs returns the starting point used when no file or flags are given.
func DefaultInputs() Inputs {
	return Inputs{
		Household: HouseholdProfile{
			ElecTotalKWh:         3000,
			GasTotalKWh:          12000,
			HotWaterLitresPerDay: 350,
			HotWaterSource:       HotWaterGas,
		},
		Devices: DefaultDeviceParameters(),
		Tariff:  DefaultTariff(),
		Carbon:  DefaultCarbonIntensity(),
		Policy: PolicyToggles{
			DisconnectGas: true,
			SwitchTariff:  true,
			PeakShutoff:   true,
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Clamp returns a copy with every numeric field forced into its bounds.
func (in Inputs) Clamp() Inputs {
	out := in

	h := &out.Household
	h.ElecTotalKWh = clamp(h.ElecTotalKWh, 0, MaxAnnualKWh)
	h.GasTotalKWh = clamp(h.GasTotalKWh, 0, MaxAnnualKWh)
	h.HotWaterLitresPerDay = clamp(h.HotWaterLitresPerDay, 0, MaxLitresPerDay)
	h.GasCookKWhPerWeek = clamp(h.GasCookKWhPerWeek, 0, MaxCookKWhPerWeek)
	if h.EV != nil {
		ev := *h.EV
		ev.KWhPerCharge = clamp(ev.KWhPerCharge, 0, MaxEVKWhPerCharge)
		ev.ChargesPerWeek = clamp(ev.ChargesPerWeek, 0, MaxChargesPerWeek)
		h.EV = &ev
	}
	if h.Secondary != nil {
		sec := *h.Secondary
		sec.AnnualKWh = clamp(sec.AnnualKWh, 0, MaxAnnualKWh)
		h.Secondary = &sec
	}

	d := &out.Devices
	d.BoilerHeatingEff = clamp(d.BoilerHeatingEff, 0, MaxEfficiency)
	d.BoilerHotWaterEff = clamp(d.BoilerHotWaterEff, 0, MaxEfficiency)
	d.ImmersionEff = clamp(d.ImmersionEff, 0, MaxEfficiency)
	d.TempRiseC = clamp(d.TempRiseC, MinTempRiseC, MaxTempRiseC)
	tiers := make([]TierPerformance, len(d.Tiers))
	for i, t := range d.Tiers {
		t.SCOP = clamp(t.SCOP, MinCOP, MaxCOP)
		t.HotWaterCOP = clamp(t.HotWaterCOP, MinCOP, MaxCOP)
		tiers[i] = t
	}
	d.Tiers = tiers

	t := &out.Tariff
	t.Gas.StandingPencePerDay = clamp(t.Gas.StandingPencePerDay, 0, MaxPencePrice)
	t.Gas.UnitPencePerKWh = clamp(t.Gas.UnitPencePerKWh, 0, MaxPencePrice)
	t.Electricity = clampElectricity(t.Electricity)
	t.HeatPump = clampElectricity(t.HeatPump)

	out.Policy.EfficiencyBoost = clamp(out.Policy.EfficiencyBoost, 0, MaxEfficiencyBoost)
	return out
}

func clampBand(b Band, maxShare float64) Band {
	b.UnitPencePerKWh = clamp(b.UnitPencePerKWh, 0, MaxPencePrice)
	b.HoursPerDay = clamp(b.HoursPerDay, MinBandHours, MaxBandHours)
	b.OtherShare = clamp(b.OtherShare, 0, maxShare)
	return b
}

func clampElectricity(e ElectricityTariff) ElectricityTariff {
	switch t := e.(type) {
	case FlatTariff:
		t.StandingPencePerDay = clamp(t.StandingPencePerDay, 0, MaxPencePrice)
		t.UnitPencePerKWh = clamp(t.UnitPencePerKWh, 0, MaxPencePrice)
		return t
	case TwoBandTariff:
		t.StandingPencePerDay = clamp(t.StandingPencePerDay, 0, MaxPencePrice)
		t.StandardPencePerKWh = clamp(t.StandardPencePerKWh, 0, MaxPencePrice)
		t.OffPeak = clampBand(t.OffPeak, 1)
		t.OffPeakHeatDemandFactor = clamp(t.OffPeakHeatDemandFactor, 0, 1)
		return t
	case ThreeBandTariff:
		t.StandingPencePerDay = clamp(t.StandingPencePerDay, 0, MaxPencePrice)
		t.StandardPencePerKWh = clamp(t.StandardPencePerKWh, 0, MaxPencePrice)
		t.OffPeak = clampBand(t.OffPeak, 1)
		// peak share can only take what off-peak leaves
		t.Peak = clampBand(t.Peak, 1-t.OffPeak.OtherShare)
		t.OffPeakHeatDemandFactor = clamp(t.OffPeakHeatDemandFactor, 0, 1)
		return t
	}
	return e
}

// Validate rejects inputs the calculator cannot evaluate. It is meant to run
// after Clamp.
func (in Inputs) Validate() error {
	switch in.Household.HotWaterSource {
	case HotWaterGas, HotWaterElectric:
	default:
		return fmt.Errorf("%w: %q", types.ErrUnknownHotWaterSource, in.Household.HotWaterSource)
	}
	if sec := in.Household.Secondary; sec != nil {
		switch sec.Type {
		case SecondaryGas, SecondaryElectric, SecondaryOther:
		default:
			return fmt.Errorf("%w: %q", types.ErrUnknownSecondaryHeat, sec.Type)
		}
		switch sec.Disposition {
		case SecondaryRetained, SecondaryRemoved:
		default:
			return fmt.Errorf("%w: disposition %q", types.ErrUnknownSecondaryHeat, sec.Disposition)
		}
	}

	d := in.Devices
	effs := []struct {
		name string
		v    float64
	}{
		{"boiler heating efficiency", d.BoilerHeatingEff},
		{"boiler hot water efficiency", d.BoilerHotWaterEff},
		{"immersion heater efficiency", d.ImmersionEff},
	}
	for _, e := range effs {
		if e.v <= 0 {
			return fmt.Errorf("%w: %s is %v", types.ErrInvalidEfficiency, e.name, e.v)
		}
	}
	if len(d.Tiers) == 0 {
		return types.ErrNoTiers
	}
	seen := make(map[InstallTier]bool, len(d.Tiers))
	for _, t := range d.Tiers {
		if seen[t.Tier] {
			return fmt.Errorf("%w: %s", types.ErrDuplicateTier, t.Tier)
		}
		seen[t.Tier] = true
		if t.SCOP <= 0 || t.HotWaterCOP <= 0 {
			return fmt.Errorf("%w: %s SCOP %v, COP %v", types.ErrInvalidEfficiency, t.Tier, t.SCOP, t.HotWaterCOP)
		}
	}

	if in.Tariff.Electricity == nil {
		return fmt.Errorf("%w: electricity tariff missing", types.ErrInvalidTariff)
	}
	for _, e := range []ElectricityTariff{in.Tariff.Electricity, in.Tariff.HeatPump} {
		if err := validateElectricity(e); err != nil {
			return err
		}
	}
	return nil
}

func validateElectricity(e ElectricityTariff) error {
	switch t := e.(type) {
	case TwoBandTariff:
		if t.OffPeak.HoursPerDay >= HoursPerDay {
			return fmt.Errorf("%w: off-peak %v h", types.ErrInvalidTariff, t.OffPeak.HoursPerDay)
		}
	case ThreeBandTariff:
		if t.OffPeak.HoursPerDay+t.Peak.HoursPerDay > HoursPerDay {
			return fmt.Errorf("%w: off-peak %v h + peak %v h", types.ErrInvalidTariff,
				t.OffPeak.HoursPerDay, t.Peak.HoursPerDay)
		}
		// heating is spread over the non-peak hours when the heat pump is
		// switched off at peak, so those hours must carry some demand
		if t.StandardHours()+t.OffPeakHeatDemandFactor*t.OffPeak.HoursPerDay <= 0 {
			return fmt.Errorf("%w: no hours left for heating outside peak", types.ErrInvalidTariff)
		}
	}
	return nil
}

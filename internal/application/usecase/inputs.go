package usecase

import (
	"fmt"
	"strings"

	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"
	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/repository"
	"github.com/heatpump-estimator/hp-estimator-go/internal/shared/types"
)

// Defaults for tariffs described only by their type.
const (
	defaultOffPeakRatio = 0.6
	defaultPeakRatio    = 1.6
	defaultOffPeakHours = 6
	defaultPeakHours    = 3
	twoBandOtherShare   = 0.3
	threeBandOtherShare = 0.2
)

// ReportSettings controls exports and publication.
type ReportSettings struct {
	Name    string
	Types   []string
	Dir     string
	Storage repository.StorageTarget
}

// Publish reports whether exported files go to S3.
func (r ReportSettings) Publish() bool {
	return r.Storage.Bucket != ""
}

// inputResolver layers config sources on top of the defaults.
type inputResolver struct {
	inputs        entity.Inputs
	report        ReportSettings
	measures      []string
	customSaving  *float64
	hpStandingSet bool
}

// ResolveInputs builds the run inputs from the defaults, then each layer in
// order. Later layers win field by field. The result is clamped and validated.
func ResolveInputs(layers ...types.Config) (entity.Inputs, ReportSettings, error) {
	r := &inputResolver{
		inputs: entity.DefaultInputs(),
		report: ReportSettings{Types: []string{"csv"}},
	}

	for _, layer := range layers {
		if err := r.apply(layer); err != nil {
			return entity.Inputs{}, ReportSettings{}, err
		}
	}

	boost, err := efficiencyBoost(r.measures, r.customSaving)
	if err != nil {
		return entity.Inputs{}, ReportSettings{}, err
	}
	r.inputs.Policy.EfficiencyBoost = boost

	if !r.hpStandingSet {
		r.inputs.Tariff.HeatPump = withStanding(r.inputs.Tariff.HeatPump, r.inputs.Tariff.Electricity.StandingCharge())
	}

	inputs := r.inputs.Clamp()
	if err := inputs.Validate(); err != nil {
		return entity.Inputs{}, ReportSettings{}, err
	}
	return inputs, r.report, nil
}

func (r *inputResolver) apply(cfg types.Config) error {
	h := &r.inputs.Household
	hc := cfg.Household
	setFloat(&h.ElecTotalKWh, hc.ElecKWh)
	setFloat(&h.GasTotalKWh, hc.GasKWh)
	setFloat(&h.HotWaterLitresPerDay, hc.HotWaterLitres)
	if hc.HotWaterSource != nil {
		h.HotWaterSource = entity.HotWaterSource(strings.ToLower(*hc.HotWaterSource))
	}
	setBool(&h.CookWithGas, hc.CookWithGas)
	setFloat(&h.GasCookKWhPerWeek, hc.CookKWhPerWeek)
	setBool(&h.RenewableElectricity, hc.Renewable)
	if hc.EVKWhPerCharge != nil || hc.EVChargesPerWeek != nil {
		ev := entity.EVCharging{}
		if h.EV != nil {
			ev = *h.EV
		}
		setFloat(&ev.KWhPerCharge, hc.EVKWhPerCharge)
		setFloat(&ev.ChargesPerWeek, hc.EVChargesPerWeek)
		h.EV = &ev
	}
	if cfg.SecondaryHeat != nil {
		h.Secondary = applySecondary(h.Secondary, *cfg.SecondaryHeat)
	}

	d := &r.inputs.Devices
	setFloat(&d.BoilerHeatingEff, cfg.Devices.BoilerHeatingEff)
	setFloat(&d.BoilerHotWaterEff, cfg.Devices.BoilerHotWaterEff)
	setFloat(&d.ImmersionEff, cfg.Devices.ImmersionEff)
	setFloat(&d.TempRiseC, cfg.Devices.TempRiseC)
	for _, tc := range cfg.Tiers {
		tiers, err := applyTier(d.Tiers, tc)
		if err != nil {
			return err
		}
		d.Tiers = tiers
	}

	t := &r.inputs.Tariff
	setFloat(&t.Gas.StandingPencePerDay, cfg.Tariff.GasStanding)
	setFloat(&t.Gas.UnitPencePerKWh, cfg.Tariff.GasUnit)
	if cfg.Tariff.Electricity != nil {
		elec, err := applyElectricity(t.Electricity, *cfg.Tariff.Electricity, entity.NightOffPeakHeatDemandFactor)
		if err != nil {
			return fmt.Errorf("electricity tariff: %w", err)
		}
		t.Electricity = elec
	}
	if cfg.HeatPumpTariff != nil {
		hp, err := applyElectricity(t.HeatPump, *cfg.HeatPumpTariff, entity.HeatPumpOffPeakHeatDemandFactor)
		if err != nil {
			return fmt.Errorf("heat pump tariff: %w", err)
		}
		t.HeatPump = hp
		if cfg.HeatPumpTariff.Standing != nil {
			r.hpStandingSet = true
		}
	}

	p := &r.inputs.Policy
	pc := cfg.Policy
	if pc.Measures != nil {
		r.measures = pc.Measures
	}
	if pc.CustomSaving != nil {
		r.customSaving = pc.CustomSaving
	}
	setBool(&p.DisconnectGas, pc.DisconnectGas)
	setBool(&p.SwitchTariff, pc.SwitchTariff)
	setBool(&p.PeakShutoff, pc.PeakShutoff)
	setBool(&p.FreeSummerHotWater, pc.FreeSummerHotWater)

	rc := cfg.Report
	setString(&r.report.Name, rc.Name)
	if len(rc.Types) > 0 {
		r.report.Types = rc.Types
	}
	setString(&r.report.Dir, rc.Dir)
	setString(&r.report.Storage.Bucket, rc.S3Bucket)
	setString(&r.report.Storage.Prefix, rc.S3Prefix)
	setString(&r.report.Storage.Profile, rc.AWSProfile)
	setString(&r.report.Storage.Region, rc.AWSRegion)
	return nil
}

func applySecondary(cur *entity.SecondaryHeatSource, c types.SecondaryHeatConfig) *entity.SecondaryHeatSource {
	if strings.EqualFold(c.Type, "none") {
		return nil
	}
	sec := entity.SecondaryHeatSource{Disposition: entity.SecondaryRetained}
	if cur != nil {
		sec = *cur
	}
	if c.Type != "" {
		sec.Type = entity.SecondaryHeatType(strings.ToLower(c.Type))
	}
	if c.Removed != nil {
		sec.Disposition = entity.SecondaryRetained
		if *c.Removed {
			sec.Disposition = entity.SecondaryRemoved
		}
	}
	setFloat(&sec.AnnualKWh, c.AnnualKWh)
	return &sec
}

// applyTier updates the named tier or appends a new one. A new tier needs
// both figures.
func applyTier(tiers []entity.TierPerformance, c types.TierConfig) ([]entity.TierPerformance, error) {
	out := append([]entity.TierPerformance(nil), tiers...)
	for i := range out {
		if strings.EqualFold(string(out[i].Tier), c.Name) {
			setFloat(&out[i].SCOP, c.SCOP)
			setFloat(&out[i].HotWaterCOP, c.HotWaterCOP)
			return out, nil
		}
	}
	if c.Name == "" || c.SCOP == nil || c.HotWaterCOP == nil {
		return nil, fmt.Errorf("%w: new tier %q needs a name, scop and hot_water_cop", types.ErrInvalidEfficiency, c.Name)
	}
	return append(out, entity.TierPerformance{
		Tier:        entity.InstallTier(c.Name),
		SCOP:        *c.SCOP,
		HotWaterCOP: *c.HotWaterCOP,
	}), nil
}

func parseTariffKind(s string) (entity.TariffKind, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "_", "-")) {
	case "flat", "single", "standard":
		return entity.TariffFlat, nil
	case "two-band", "two-rate", "economy7", "economy-7":
		return entity.TariffTwoBand, nil
	case "three-band", "three-rate":
		return entity.TariffThreeBand, nil
	}
	return "", fmt.Errorf("%w: %q", types.ErrUnknownTariffKind, s)
}

// newTariff builds a tariff of the given kind whose bands are priced
// relative to the standard unit rate.
func newTariff(kind entity.TariffKind, standing, unit, factor float64) entity.ElectricityTariff {
	switch kind {
	case entity.TariffTwoBand:
		return entity.TwoBandTariff{
			StandingPencePerDay: standing,
			StandardPencePerKWh: unit,
			OffPeak: entity.Band{
				UnitPencePerKWh: defaultOffPeakRatio * unit,
				HoursPerDay:     defaultOffPeakHours,
				OtherShare:      twoBandOtherShare,
			},
			OffPeakHeatDemandFactor: factor,
		}
	case entity.TariffThreeBand:
		return entity.ThreeBandTariff{
			StandingPencePerDay: standing,
			StandardPencePerKWh: unit,
			OffPeak: entity.Band{
				UnitPencePerKWh: defaultOffPeakRatio * unit,
				HoursPerDay:     defaultOffPeakHours,
				OtherShare:      threeBandOtherShare,
			},
			Peak: entity.Band{
				UnitPencePerKWh: defaultPeakRatio * unit,
				HoursPerDay:     defaultPeakHours,
				OtherShare:      threeBandOtherShare,
			},
			OffPeakHeatDemandFactor: factor,
		}
	}
	return entity.FlatTariff{StandingPencePerDay: standing, UnitPencePerKWh: unit}
}

// applyElectricity overlays a tariff description on base. Changing the type
// rebuilds the bands priced from the standard rate.
func applyElectricity(base entity.ElectricityTariff, c types.ElectricityConfig, factor float64) (entity.ElectricityTariff, error) {
	if base == nil {
		base = newTariff(entity.TariffFlat, entity.PriceCapElecStanding, entity.PriceCapElecUnit, factor)
	}

	kind := base.Kind()
	if c.Type != "" {
		k, err := parseTariffKind(c.Type)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	standing, unit := base.StandingCharge(), base.StandardUnit()
	setFloat(&standing, c.Standing)
	setFloat(&unit, c.Unit)

	if kind != base.Kind() {
		base = newTariff(kind, standing, unit, factorOf(base, factor))
	}

	hasOffPeak := c.OffPeakUnit != nil || c.OffPeakHours != nil || c.OffPeakShare != nil || c.OffPeakHeatDemandFactor != nil
	hasPeak := c.PeakUnit != nil || c.PeakHours != nil || c.PeakShare != nil

	switch t := base.(type) {
	case entity.FlatTariff:
		if hasOffPeak || hasPeak {
			return nil, fmt.Errorf("%w: a flat tariff has no off-peak or peak band", types.ErrInvalidTariff)
		}
		t.StandingPencePerDay, t.UnitPencePerKWh = standing, unit
		return t, nil
	case entity.TwoBandTariff:
		if hasPeak {
			return nil, fmt.Errorf("%w: peak band needs a three-band tariff", types.ErrInvalidTariff)
		}
		t.StandingPencePerDay, t.StandardPencePerKWh = standing, unit
		applyBand(&t.OffPeak, c.OffPeakUnit, c.OffPeakHours, c.OffPeakShare)
		setFloat(&t.OffPeakHeatDemandFactor, c.OffPeakHeatDemandFactor)
		return t, nil
	case entity.ThreeBandTariff:
		t.StandingPencePerDay, t.StandardPencePerKWh = standing, unit
		applyBand(&t.OffPeak, c.OffPeakUnit, c.OffPeakHours, c.OffPeakShare)
		applyBand(&t.Peak, c.PeakUnit, c.PeakHours, c.PeakShare)
		setFloat(&t.OffPeakHeatDemandFactor, c.OffPeakHeatDemandFactor)
		return t, nil
	}
	return nil, fmt.Errorf("%w: %T", types.ErrUnknownTariffKind, base)
}

func factorOf(t entity.ElectricityTariff, fallback float64) float64 {
	switch t := t.(type) {
	case entity.TwoBandTariff:
		return t.OffPeakHeatDemandFactor
	case entity.ThreeBandTariff:
		return t.OffPeakHeatDemandFactor
	}
	return fallback
}

func applyBand(b *entity.Band, unit, hours, share *float64) {
	setFloat(&b.UnitPencePerKWh, unit)
	setFloat(&b.HoursPerDay, hours)
	setFloat(&b.OtherShare, share)
}

func withStanding(t entity.ElectricityTariff, standing float64) entity.ElectricityTariff {
	switch t := t.(type) {
	case entity.FlatTariff:
		t.StandingPencePerDay = standing
		return t
	case entity.TwoBandTariff:
		t.StandingPencePerDay = standing
		return t
	case entity.ThreeBandTariff:
		t.StandingPencePerDay = standing
		return t
	}
	return t
}

// efficiencyBoost sums the selected measures. "custom" adds customSaving, or
// DefaultCustomSaving when none is given. A set customSaving applies on its
// own too.
func efficiencyBoost(ids []string, customSaving *float64) (float64, error) {
	var reductions []float64
	custom := customSaving != nil
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		if id == entity.CustomMeasureID {
			custom = true
			continue
		}
		m, ok := entity.LookupMeasure(id)
		if !ok {
			return 0, fmt.Errorf("%w: %q", types.ErrUnknownMeasure, id)
		}
		reductions = append(reductions, m.Reduction)
	}
	if custom {
		saving := entity.DefaultCustomSaving
		if customSaving != nil {
			saving = *customSaving
		}
		reductions = append(reductions, clampFraction(saving))
	}
	return entity.SumReductions(reductions), nil
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > entity.MaxMeasureFraction {
		return entity.MaxMeasureFraction
	}
	return v
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

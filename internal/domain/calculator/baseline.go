package calculator

import (
	"fmt"
	"math"

	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"
)

// Baseline is the Current case plus the splits handed to each scenario.
type Baseline struct {
	Usage    entity.UsageBreakdown
	Cost     entity.CostBreakdown
	Splits   entity.EnergySplits
	Warnings []string
}

// ComputeBaseline disaggregates the household's annual totals into end uses.
// Inputs are expected to be clamped and validated.
func ComputeBaseline(p entity.HouseholdProfile, d entity.DeviceParameters, ci entity.Intensity, t entity.Tariff) Baseline {
	var warnings []string

	var gasHW, elecHW float64
	if p.HotWaterIsGas() {
		gasHW = p.HotWaterLitresPerDay * DaysPerYear * EnergyPerLitre(d.TempRiseC, d.BoilerHotWaterEff)
	} else {
		elecHW = p.HotWaterLitresPerDay * DaysPerYear * EnergyPerLitre(d.TempRiseC, d.ImmersionEff)
	}

	gasCook := p.GasCookAnnualKWh()

	gasHeat := p.GasTotalKWh - gasHW - gasCook
	if gasHeat < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"hot water (%.0f kWh) and cooking (%.0f kWh) exceed total gas use (%.0f kWh); gas heating set to zero",
			gasHW, gasCook, p.GasTotalKWh))
		gasHeat = 0
	}

	var elecHeat float64
	if sec := p.Secondary; sec != nil && sec.Type == entity.SecondaryElectric {
		elecHeat = sec.AnnualKWh
	}

	ev := math.Min(p.EVAnnualKWh(), p.ElecTotalKWh)
	nonEV := p.ElecTotalKWh - ev

	before := elecHeat + elecHW
	elecHeat, elecHW, other := reconcileElectricity(nonEV, elecHeat, elecHW)
	if elecHeat+elecHW < before {
		warnings = append(warnings, fmt.Sprintf(
			"electric heating and hot water exceed electricity use excluding EV (%.0f kWh); reduced to fit",
			nonEV))
	}

	splits := entity.EnergySplits{
		GasHeatingKWh:   gasHeat,
		ElecHeatingKWh:  elecHeat,
		GasHotWaterKWh:  gasHW,
		ElecHotWaterKWh: elecHW,
		GasCookingKWh:   gasCook,
		OtherElecKWh:    other,
		EVKWh:           ev,
	}

	usage := newUsage(entity.CurrentCase, ci, []entity.CategoryUsage{
		{Category: entity.CategoryHeating, GasKWh: gasHeat, ElecKWh: elecHeat},
		{Category: entity.CategoryHotWater, GasKWh: gasHW, ElecKWh: elecHW},
		{Category: entity.CategoryCooking, GasKWh: gasCook},
		{Category: entity.CategoryEV, ElecKWh: ev},
		{Category: entity.CategoryOtherElec, ElecKWh: other},
	})
	usage.EnergyTotalKWh = p.ElecTotalKWh + p.GasTotalKWh

	elec := t.Electricity
	cost := entity.NewCostBreakdown(entity.CurrentCase,
		annualStanding(t.Gas.StandingPencePerDay),
		p.GasTotalKWh*t.Gas.UnitPencePerKWh/PencePerPound,
		annualStanding(elec.StandingCharge()),
		(nonEV*OtherUnitRate(elec)+ev*EVUnitRate(elec))/PencePerPound,
	)

	return Baseline{Usage: usage, Cost: cost, Splits: splits, Warnings: warnings}
}

// reconcileElectricity fits electric heating and hot water inside the
// available electricity. Total electricity is authoritative: any shortfall
// comes off the larger of the two, then off the other if that is not
// enough. Nothing changes when they already fit.
func reconcileElectricity(available, heat, hw float64) (float64, float64, float64) {
	other := available - heat - hw
	if other >= 0 {
		return heat, hw, other
	}
	shortfall := -other
	if hw > heat {
		hw -= shortfall
		if hw < 0 {
			heat += hw
			hw = 0
		}
	} else {
		heat -= shortfall
		if heat < 0 {
			hw += heat
			heat = 0
		}
	}
	return heat, hw, 0
}

// newUsage fills in energy and emissions per category and their totals.
func newUsage(caseName string, ci entity.Intensity, cats []entity.CategoryUsage) entity.UsageBreakdown {
	u := entity.UsageBreakdown{Case: caseName, Categories: cats}
	for i := range u.Categories {
		c := &u.Categories[i]
		c.EnergyKWh = c.GasKWh + c.ElecKWh
		c.EmissionsKg = ci.Emissions(c.GasKWh, c.ElecKWh)
		u.EnergyTotalKWh += c.EnergyKWh
		u.EmissionsTotalKg += c.EmissionsKg
	}
	return u
}

package calculator

import "github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"

// Scenario is one heat pump installation case.
type Scenario struct {
	Usage entity.UsageBreakdown
	Cost  entity.CostBreakdown
}

// ComputeScenario projects the baseline splits onto a heat pump installation
// of the given tier. tariff is the household's tariff; the heat pump tariff
// replaces its electricity side when the policy switches tariff.
func ComputeScenario(
	s entity.EnergySplits,
	p entity.HouseholdProfile,
	d entity.DeviceParameters,
	tier entity.TierPerformance,
	policy entity.PolicyToggles,
	ci entity.Intensity,
	tariff entity.Tariff,
) Scenario {
	caseName := tier.CaseLabel()

	elecHeat, gasHeat := projectHeating(p.Secondary, heatingInput{
		gasHeat:   s.GasHeatingKWh,
		boost:     policy.EfficiencyBoost,
		boilerEff: d.BoilerHeatingEff,
		scop:      tier.SCOP,
	})

	var elecHW float64
	if p.HotWaterIsGas() {
		elecHW = s.GasHotWaterKWh * d.BoilerHotWaterEff / tier.HotWaterCOP
	} else {
		elecHW = s.ElecHotWaterKWh * d.ImmersionEff / tier.HotWaterCOP
	}

	gasCook, elecCook := s.GasCookingKWh, 0.0
	if policy.DisconnectGas {
		gasCook, elecCook = 0, s.GasCookingKWh
	}

	usage := newUsage(caseName, ci, []entity.CategoryUsage{
		{Category: entity.CategoryHeating, GasKWh: gasHeat, ElecKWh: elecHeat},
		{Category: entity.CategoryHotWater, ElecKWh: elecHW},
		{Category: entity.CategoryCooking, GasKWh: gasCook, ElecKWh: elecCook},
		{Category: entity.CategoryEV, ElecKWh: s.EVKWh},
		{Category: entity.CategoryOtherElec, ElecKWh: s.OtherElecKWh},
	})

	var gasStanding float64
	if !policy.DisconnectGas {
		gasStanding = annualStanding(tariff.Gas.StandingPencePerDay)
	}

	elec := tariff.ScenarioElectricity(policy.SwitchTariff)
	elecUnit := scenarioElecUnitCost(elec, scenarioLoads{
		heat:     elecHeat,
		hotWater: elecHW,
		cooking:  elecCook,
		ev:       s.EVKWh,
		other:    s.OtherElecKWh,
	}, policy.PeakShutoff, policy.FreeSummerHotWater)

	cost := entity.NewCostBreakdown(caseName,
		gasStanding,
		(gasHeat+gasCook)*tariff.Gas.UnitPencePerKWh/PencePerPound,
		annualStanding(elec.StandingCharge()),
		elecUnit,
	)
	return Scenario{Usage: usage, Cost: cost}
}

package calculator

import (
	"math"

	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"
)

// heatingInput carries what the heating rules need for one tier.
type heatingInput struct {
	gasHeat   float64 // current boiler heating, kWh of gas
	secondary float64 // annual kWh of the secondary source
	boost     float64 // fractional demand reduction from retrofit measures
	boilerEff float64
	scop      float64
}

// heatingRule returns the scenario's electric and remaining gas heating.
type heatingRule func(in heatingInput) (elec, gas float64)

// heatPumpOnly moves all boiler heating to the heat pump.
func heatPumpOnly(in heatingInput) (float64, float64) {
	return (1 - in.boost) * in.gasHeat * in.boilerEff / in.scop, 0
}

type secondaryKey struct {
	kind        entity.SecondaryHeatType
	disposition entity.SecondaryDisposition
}

// heatingRules is keyed on the secondary source. A retained gas source keeps
// burning its share; a retained electric source keeps its own consumption;
// removed sources are absorbed by the heat pump. Sources of other fuels are
// outside the model unless removed.
var heatingRules = map[secondaryKey]heatingRule{
	{entity.SecondaryGas, entity.SecondaryRetained}: func(in heatingInput) (float64, float64) {
		// The secondary's gas is part of the boiler heating residual. It is
		// capped at that residual so heating kWh stay non-negative; this is
		// the only clamp applied to a projected scenario.
		kept := math.Min(in.secondary, in.gasHeat)
		return (1 - in.boost) * (in.gasHeat - kept) * in.boilerEff / in.scop, kept
	},
	{entity.SecondaryElectric, entity.SecondaryRetained}: func(in heatingInput) (float64, float64) {
		return in.secondary + (1-in.boost)*in.gasHeat*in.boilerEff/in.scop, 0
	},
	{entity.SecondaryOther, entity.SecondaryRetained}: heatPumpOnly,
	{entity.SecondaryElectric, entity.SecondaryRemoved}: func(in heatingInput) (float64, float64) {
		return (1 - in.boost) * (in.gasHeat*in.boilerEff + in.secondary) / in.scop, 0
	},
	// same efficiency as the boiler
	{entity.SecondaryGas, entity.SecondaryRemoved}: heatPumpOnly,
	// not part of the gas total, assumed to burn at boiler efficiency
	{entity.SecondaryOther, entity.SecondaryRemoved}: func(in heatingInput) (float64, float64) {
		return (1 - in.boost) * (in.gasHeat + in.secondary) * in.boilerEff / in.scop, 0
	},
}

func projectHeating(sec *entity.SecondaryHeatSource, in heatingInput) (elec, gas float64) {
	if sec == nil {
		return heatPumpOnly(in)
	}
	in.secondary = sec.AnnualKWh
	rule, ok := heatingRules[secondaryKey{sec.Type, sec.Disposition}]
	if !ok {
		return heatPumpOnly(in)
	}
	return rule(in)
}

package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// BuildComparison sets every case's totals against the first case, which is
// Current. Money is rounded to pence, energy and emissions to whole units and
// percentages to one decimal place.
func BuildComparison(cases []entity.CaseResult) []entity.CaseComparison {
	if len(cases) == 0 {
		return nil
	}

	base := cases[0]
	baseCost := decimal.NewFromFloat(base.Cost.Total)
	baseEmissions := decimal.NewFromFloat(base.Usage.EmissionsTotalKg)
	baseEnergy := decimal.NewFromFloat(base.Usage.EnergyTotalKWh)

	out := make([]entity.CaseComparison, 0, len(cases))
	for _, c := range cases {
		cost := decimal.NewFromFloat(c.Cost.Total)
		emissions := decimal.NewFromFloat(c.Usage.EmissionsTotalKg)
		energy := decimal.NewFromFloat(c.Usage.EnergyTotalKWh)

		out = append(out, entity.CaseComparison{
			Case:               c.Name(),
			CostTotal:          cost.Round(2),
			CostChange:         cost.Sub(baseCost).Round(2),
			CostChangePct:      percentChange(baseCost, cost),
			EmissionsTotal:     emissions.Round(0),
			EmissionsChange:    emissions.Sub(baseEmissions).Round(0),
			EmissionsChangePct: percentChange(baseEmissions, emissions),
			EnergyTotal:        energy.Round(0),
			EnergyChange:       energy.Sub(baseEnergy).Round(0),
			EnergyChangePct:    percentChange(baseEnergy, energy),
		})
	}
	return out
}

// percentChange is zero when there is nothing to compare against.
func percentChange(from, to decimal.Decimal) decimal.Decimal {
	if from.IsZero() {
		return decimal.Zero
	}
	return to.Sub(from).Div(from).Mul(hundred).Round(1)
}

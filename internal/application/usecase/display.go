package usecase

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/calculator"
	"github.com/heatpump-estimator/hp-estimator-go/internal/domain/entity"
	"github.com/heatpump-estimator/hp-estimator-go/internal/shared/types"
)

// displayResult prints the cost, energy and emissions tables followed by
// the comparison charts.
func (uc *EstimateUseCase) displayResult(result entity.EstimateResult) {
	uc.console.Println()
	uc.console.Print(uc.costTable(result).Render())
	uc.console.Println()
	uc.console.Print(uc.usageTable(result, "kWh", func(cu entity.CategoryUsage) float64 { return cu.EnergyKWh },
		func(u entity.UsageBreakdown) float64 { return u.EnergyTotalKWh }).Render())
	uc.console.Println()
	uc.console.Print(uc.usageTable(result, "kg CO2", func(cu entity.CategoryUsage) float64 { return cu.EmissionsKg },
		func(u entity.UsageBreakdown) float64 { return u.EmissionsTotalKg }).Render())
	uc.console.Println()
	uc.console.Print(uc.comparisonTable(result.Comparison).Render())

	cost := make([]types.CaseTotal, 0, len(result.Cases))
	energy := make([]types.CaseTotal, 0, len(result.Cases))
	emissions := make([]types.CaseTotal, 0, len(result.Cases))
	for _, c := range result.Cases {
		cost = append(cost, types.CaseTotal{Case: c.Name(), Value: c.Cost.Total})
		energy = append(energy, types.CaseTotal{Case: c.Name(), Value: c.Usage.EnergyTotalKWh})
		emissions = append(emissions, types.CaseTotal{Case: c.Name(), Value: c.Usage.EmissionsTotalKg})
	}
	uc.console.DisplayComparisonBars("Annual energy cost", "£", cost)
	uc.console.DisplayComparisonBars("Annual energy use", "kWh", energy)
	uc.console.DisplayComparisonBars("Annual emissions", "kg CO2", emissions)

	uc.console.Printf("%s\n", scenarioNote(result.Inputs))
}

// scenarioNote summarises the policy behind the heat pump cases.
func scenarioNote(in entity.Inputs) string {
	p := in.Policy
	note := fmt.Sprintf("Heat pump cases are billed on the %s tariff",
		in.Tariff.ScenarioElectricity(p.SwitchTariff).Kind())
	if p.DisconnectGas {
		note += " with gas disconnected"
	} else {
		note += " with the gas standing charge kept"
	}
	if p.EfficiencyBoost > 0 {
		note += fmt.Sprintf(", after a %.0f%% heating demand reduction", p.EfficiencyBoost*100)
	}
	return note + "."
}

func (uc *EstimateUseCase) pounds(v float64) string {
	return uc.printer.Sprintf("£%.2f", v)
}

func (uc *EstimateUseCase) whole(v float64) string {
	return uc.printer.Sprintf("%.0f", v)
}

// costTable cria a tabela de custos anuais por caso.
func (uc *EstimateUseCase) costTable(result entity.EstimateResult) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("Case")
	for _, ct := range entity.ChargeTypes {
		table.AddColumn(string(ct))
	}
	table.AddColumn("Total")

	for _, c := range result.Cases {
		cells := []interface{}{c.Name()}
		for _, ct := range entity.ChargeTypes {
			cells = append(cells, uc.pounds(c.Cost.Get(ct)))
		}
		cells = append(cells, pterm.Bold.Sprint(uc.pounds(c.Cost.Total)))
		table.AddRow(cells...)
	}
	return table
}

// usageTable shows one value per present category. Categories that are zero
// in every case are left out.
func (uc *EstimateUseCase) usageTable(
	result entity.EstimateResult,
	unit string,
	value func(entity.CategoryUsage) float64,
	total func(entity.UsageBreakdown) float64,
) types.TableInterface {
	categories := result.PresentCategories()

	table := uc.console.CreateTable()
	table.AddColumn("Case")
	for _, cat := range categories {
		table.AddColumn(fmt.Sprintf("%s (%s)", cat, unit))
	}
	table.AddColumn(fmt.Sprintf("Total (%s)", unit))

	for _, c := range result.Cases {
		cells := []interface{}{c.Name()}
		for _, cat := range categories {
			cells = append(cells, uc.whole(value(c.Usage.Get(cat))))
		}
		cells = append(cells, pterm.Bold.Sprint(uc.whole(total(c.Usage))))
		table.AddRow(cells...)
	}
	return table
}

func (uc *EstimateUseCase) comparisonTable(comparison []entity.CaseComparison) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("Case")
	table.AddColumn("Annual cost")
	table.AddColumn("Cost change")
	table.AddColumn("Energy (kWh)")
	table.AddColumn("Energy change")
	table.AddColumn("Emissions (kg CO2)")
	table.AddColumn("Emissions change")

	for i, c := range comparison {
		if i == 0 {
			table.AddRow(c.Case, uc.printer.Sprintf("£%s", c.CostTotal.StringFixed(2)), "-",
				uc.printer.Sprintf("%d", c.EnergyTotal.IntPart()), "-",
				uc.printer.Sprintf("%d", c.EmissionsTotal.IntPart()), "-")
			continue
		}
		table.AddRow(
			c.Case,
			uc.printer.Sprintf("£%s", c.CostTotal.StringFixed(2)),
			colourChange(c.CostChange, 2, c.CostChangePct, "£"),
			uc.printer.Sprintf("%d", c.EnergyTotal.IntPart()),
			colourChange(c.EnergyChange, 0, c.EnergyChangePct, ""),
			uc.printer.Sprintf("%d", c.EmissionsTotal.IntPart()),
			colourChange(c.EmissionsChange, 0, c.EmissionsChangePct, ""),
		)
	}
	return table
}

// colourChange shows increases in red and decreases in green.
func colourChange(change decimal.Decimal, places int32, pct decimal.Decimal, prefix string) string {
	sign := ""
	switch change.Sign() {
	case 1:
		sign = "+"
	case -1:
		sign = "-"
	}
	text := fmt.Sprintf("%s%s%s (%s%%)", sign, prefix, change.Abs().StringFixed(places), pct.StringFixed(1))
	switch change.Sign() {
	case 1:
		return pterm.FgRed.Sprint(text)
	case -1:
		return pterm.FgGreen.Sprint(text)
	}
	return text
}

func (uc *EstimateUseCase) displayDemandSplits(title string, t entity.ElectricityTariff) {
	uc.console.LogInfo("%s (%s)", title, t.Kind())

	table := uc.console.CreateTable()
	table.AddColumn("Demand")
	switch t.Kind() {
	case entity.TariffFlat:
		table.AddColumn("Standard")
	case entity.TariffTwoBand:
		table.AddColumn("Off-peak")
		table.AddColumn("Standard")
	default:
		table.AddColumn("Off-peak")
		table.AddColumn("Standard")
		table.AddColumn("Peak")
	}
	table.AddColumn("Rate (p/kWh)")

	pct := func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) }
	for _, s := range calculator.DemandSplits(t) {
		cells := []interface{}{s.Use}
		switch t.Kind() {
		case entity.TariffFlat:
			cells = append(cells, pct(s.Shares.Standard))
		case entity.TariffTwoBand:
			cells = append(cells, pct(s.Shares.OffPeak), pct(s.Shares.Standard))
		default:
			cells = append(cells, pct(s.Shares.OffPeak), pct(s.Shares.Standard), pct(s.Shares.Peak))
		}
		cells = append(cells, fmt.Sprintf("%.2f", s.Shares.Rate(t)))
		table.AddRow(cells...)
	}
	uc.console.Print(table.Render())
	uc.console.Println()
}

func (uc *EstimateUseCase) displayReference() {
	uc.console.LogInfo("Typical annual consumption by house size (no EV)")
	houses := uc.console.CreateTable()
	houses.AddColumn("Bedrooms")
	houses.AddColumn("Electricity (kWh)")
	houses.AddColumn("Gas (kWh)")
	for _, h := range entity.TypicalHouseUsage {
		houses.AddRow(h.Bedrooms, uc.whole(h.ElecKWh), uc.whole(h.GasKWh))
	}
	uc.console.Print(houses.Render())
	uc.console.Println()

	uc.console.LogInfo("Hot water per use")
	water := uc.console.CreateTable()
	water.AddColumn("Activity")
	water.AddColumn("Litres")
	for _, w := range entity.HotWaterUses {
		water.AddRow(w.Activity, uc.whole(w.Litres))
	}
	uc.console.Print(water.Render())
	uc.console.Println()

	uc.console.LogInfo("Gas per cooking use")
	cooking := uc.console.CreateTable()
	cooking.AddColumn("Appliance")
	cooking.AddColumn("kWh")
	for _, c := range entity.CookingUses {
		cooking.AddRow(c.Appliance, fmt.Sprintf("%.1f", c.KWh))
	}
	uc.console.Print(cooking.Render())
	uc.console.Println()

	uc.console.LogInfo("Efficiency measures")
	measures := uc.console.CreateTable()
	measures.AddColumn("ID")
	measures.AddColumn("Measure")
	measures.AddColumn("Heating demand reduction")
	for _, m := range entity.EfficiencyMeasures {
		measures.AddRow(m.ID, m.Label, fmt.Sprintf("%.0f%%", m.Reduction*100))
	}
	measures.AddRow(entity.CustomMeasureID, "Your own estimate (--custom-saving)", fmt.Sprintf("%.0f%% unless set", entity.DefaultCustomSaving*100))
	uc.console.Print(measures.Render())
	uc.console.Println()

	ci := entity.DefaultCarbonIntensity()
	uc.console.LogInfo("Carbon intensity (SAP 10.2)")
	carbon := uc.console.CreateTable()
	carbon.AddColumn("Fuel")
	carbon.AddColumn("kg CO2 / kWh")
	carbon.AddRow("Gas", fmt.Sprintf("%.3f", ci.GasKgPerKWh))
	carbon.AddRow("Grid electricity", fmt.Sprintf("%.3f", ci.GridElecKgPerKWh))
	carbon.AddRow("Renewable electricity", fmt.Sprintf("%.3f", ci.RenewableElecKgPerKWh))
	uc.console.Print(carbon.Render())
	uc.console.Println()
}

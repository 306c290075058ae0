package entity

// EnergyRow is one line of the usage table handed to reporting.
type EnergyRow struct {
	Case        string   `json:"case"`
	Category    Category `json:"category"`
	EnergyKWh   float64  `json:"energy_kwh"`
	EmissionsKg float64  `json:"emissions_kg"`
}

// CostRow is one line of the cost table handed to reporting.
type CostRow struct {
	Case   string     `json:"case"`
	Charge ChargeType `json:"charge"`
	Cost   float64    `json:"cost"`
}

// Rows flattens the breakdown. Zero-valued categories are kept; callers that
// render charts drop them with NonZeroEnergyRows.
func (u UsageBreakdown) Rows() []EnergyRow {
	rows := make([]EnergyRow, 0, len(u.Categories))
	for _, cu := range u.Categories {
		rows = append(rows, EnergyRow{
			Case:        u.Case,
			Category:    cu.Category,
			EnergyKWh:   cu.EnergyKWh,
			EmissionsKg: cu.EmissionsKg,
		})
	}
	return rows
}

// Rows flattens the bill.
func (c CostBreakdown) Rows() []CostRow {
	rows := make([]CostRow, 0, len(c.Charges))
	for _, ch := range c.Charges {
		rows = append(rows, CostRow{Case: c.Case, Charge: ch.Type, Cost: ch.Amount})
	}
	return rows
}

// NonZeroEnergyRows drops rows whose energy and emissions are both zero;
// those are "not present" for the household.
func NonZeroEnergyRows(rows []EnergyRow) []EnergyRow {
	out := make([]EnergyRow, 0, len(rows))
	for _, r := range rows {
		if r.EnergyKWh == 0 && r.EmissionsKg == 0 {
			continue
		}
		out = append(out, r)
	}
	return out
}

// NonZeroCostRows drops zero-valued bill lines.
func NonZeroCostRows(rows []CostRow) []CostRow {
	out := make([]CostRow, 0, len(rows))
	for _, r := range rows {
		if r.Cost == 0 {
			continue
		}
		out = append(out, r)
	}
	return out
}

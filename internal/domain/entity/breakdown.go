package entity

// Category is an end use of energy.
type Category string

const (
	CategoryHeating   Category = "Heating"
	CategoryHotWater  Category = "Hot water"
	CategoryCooking   Category = "Cooking"
	CategoryEV        Category = "EV"
	CategoryOtherElec Category = "Other Elec."
)

// Categories is the display order of end uses.
var Categories = []Category{
	CategoryHeating,
	CategoryHotWater,
	CategoryCooking,
	CategoryEV,
	CategoryOtherElec,
}

// CategoryUsage is the energy and emissions of one end use.
type CategoryUsage struct {
	Category    Category `json:"category"`
	GasKWh      float64  `json:"gas_kwh"`
	ElecKWh     float64  `json:"elec_kwh"`
	EnergyKWh   float64  `json:"energy_kwh"`
	EmissionsKg float64  `json:"emissions_kg"`
}

// UsageBreakdown is the end-use split of one case.
type UsageBreakdown struct {
	Case             string          `json:"case"`
	Categories       []CategoryUsage `json:"categories"`
	EnergyTotalKWh   float64         `json:"energy_total_kwh"`
	EmissionsTotalKg float64         `json:"emissions_total_kg"`
}

// Get returns the usage of a category, or a zero entry if it is absent.
func (u UsageBreakdown) Get(c Category) CategoryUsage {
	for _, cu := range u.Categories {
		if cu.Category == c {
			return cu
		}
	}
	return CategoryUsage{Category: c}
}

// GasKWh sums gas use over all categories.
func (u UsageBreakdown) GasKWh() float64 {
	total := 0.0
	for _, cu := range u.Categories {
		total += cu.GasKWh
	}
	return total
}

// ElecKWh sums electricity use over all categories.
func (u UsageBreakdown) ElecKWh() float64 {
	total := 0.0
	for _, cu := range u.Categories {
		total += cu.ElecKWh
	}
	return total
}

// ChargeType is a line on the energy bill.
type ChargeType string

const (
	ChargeGasStanding  ChargeType = "Gas standing"
	ChargeGasUnit      ChargeType = "Gas unit"
	ChargeElecStanding ChargeType = "Elec. standing"
	ChargeElecUnit     ChargeType = "Elec. unit"
)

// ChargeTypes is the display order of bill lines.
var ChargeTypes = []ChargeType{
	ChargeGasStanding,
	ChargeGasUnit,
	ChargeElecStanding,
	ChargeElecUnit,
}

// Charge is an annual amount in pounds.
type Charge struct {
	Type   ChargeType `json:"type"`
	Amount float64    `json:"amount"`
}

// CostBreakdown is the annual bill of one case.
type CostBreakdown struct {
	Case    string   `json:"case"`
	Charges []Charge `json:"charges"`
	Total   float64  `json:"total"`
}

// Get returns the amount for a charge type, zero if absent.
func (c CostBreakdown) Get(t ChargeType) float64 {
	for _, ch := range c.Charges {
		if ch.Type == t {
			return ch.Amount
		}
	}
	return 0
}

// NewCostBreakdown builds a breakdown in display order with its total.
func NewCostBreakdown(caseName string, gasStanding, gasUnit, elecStanding, elecUnit float64) CostBreakdown {
	charges := []Charge{
		{Type: ChargeGasStanding, Amount: gasStanding},
		{Type: ChargeGasUnit, Amount: gasUnit},
		{Type: ChargeElecStanding, Amount: elecStanding},
		{Type: ChargeElecUnit, Amount: elecUnit},
	}
	return CostBreakdown{
		Case:    caseName,
		Charges: charges,
		Total:   gasStanding + gasUnit + elecStanding + elecUnit,
	}
}

// EnergySplits are the current-case energies by fuel and end use, handed
// from the baseline to every heat pump scenario.
type EnergySplits struct {
	GasHeatingKWh   float64 `json:"gas_heating_kwh"`
	ElecHeatingKWh  float64 `json:"elec_heating_kwh"`
	GasHotWaterKWh  float64 `json:"gas_hot_water_kwh"`
	ElecHotWaterKWh float64 `json:"elec_hot_water_kwh"`
	GasCookingKWh   float64 `json:"gas_cooking_kwh"`
	OtherElecKWh    float64 `json:"other_elec_kwh"`
	EVKWh           float64 `json:"ev_kwh"`
}

// CurrentCase is the label of the pre-heat-pump case.
const CurrentCase = "Current"

package entity

// CarbonIntensity holds emission factors in kg CO2 per kWh.
// Values are from SAP 10.2 (December 2021).
type CarbonIntensity struct {
	GasKgPerKWh           float64 `json:"gas_kg_per_kwh"`
	GridElecKgPerKWh      float64 `json:"grid_elec_kg_per_kwh"`
	RenewableElecKgPerKWh float64 `json:"renewable_elec_kg_per_kwh"`
}

// Intensity is the pair of factors in force for one run.
type Intensity struct {
	Gas         float64 `json:"gas"`
	Electricity float64 `json:"electricity"`
}

// DefaultCarbonIntensity returns the SAP 10.2 factors.
func DefaultCarbonIntensity() CarbonIntensity {
	return CarbonIntensity{
		GasKgPerKWh:           0.21,
		GridElecKgPerKWh:      0.136,
		RenewableElecKgPerKWh: 0,
	}
}

// Select picks the electricity factor for the household's tariff.
func (c CarbonIntensity) Select(renewable bool) Intensity {
	elec := c.GridElecKgPerKWh
	if renewable {
		elec = c.RenewableElecKgPerKWh
	}
	return Intensity{Gas: c.GasKgPerKWh, Electricity: elec}
}

// Emissions returns kg CO2 for the given gas and electricity use.
func (i Intensity) Emissions(gasKWh, elecKWh float64) float64 {
	return gasKWh*i.Gas + elecKWh*i.Electricity
}
